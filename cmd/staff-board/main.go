package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/board"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/config"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/session"
)

func main() {
	email := flag.String("email", "", "staff account email")
	password := flag.String("password", "", "staff account password")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("Starting staff-board...")

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "--email and --password are required")
		os.Exit(2)
	}

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	client, err := api.NewClient(cfg.App.APIBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create API client")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessionStore := session.NewStore(client)
	user, err := sessionStore.StaffSignIn(ctx, *email, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("Staff sign-in failed")
	}
	fmt.Printf("Signed in as %s (staff)\n", user.Email)

	orderBoard := board.New(client, log.With().Str("component", "board").Logger())

	// Первый fetch происходит сразу, дальше по таймеру.
	stopPolling := orderBoard.StartPolling(ctx, cfg.App.PollInterval)
	defer stopPolling()

	run(ctx, orderBoard)

	log.Info().Msg("Staff-board stopped.")
}

func run(ctx context.Context, orderBoard *board.Board) {
	fmt.Println("Staff board. Commands: all | new | set <order-id> <status> | refresh | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("staff> ")
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "all":
			all, _ := orderBoard.Snapshot()
			printOrders("All orders", all)
		case "new":
			_, recent := orderBoard.Snapshot()
			printOrders("New orders (last hour)", recent)
		case "set":
			if len(fields) != 3 {
				fmt.Println("usage: set <order-id> <status>")
				continue
			}
			status, err := api.ParseOrderStatus(fields[2])
			if err != nil {
				fmt.Printf("Unknown status %q, expected one of: %v\n", fields[2], api.OrderStatuses())
				continue
			}
			if err := orderBoard.UpdateStatus(ctx, fields[1], status); err != nil {
				fmt.Printf("Update failed: %v\n", err)
				continue
			}
			fmt.Println("Status updated.")
		case "refresh":
			if err := orderBoard.Refresh(ctx); err != nil {
				fmt.Printf("Refresh failed, showing last known orders: %v\n", err)
			}
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q\n", fields[0])
		}
	}
}

func printOrders(title string, orders []api.Order) {
	fmt.Println(title)
	if len(orders) == 0 {
		fmt.Println("  (none)")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTABLE\tTOTAL\tSTATUS\tEMAIL\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\t%s\t%s\n",
			o.ID, o.TableNumber, o.TotalAmount, o.Status, o.Email,
			o.CreatedAt.Local().Format("15:04:05"))
	}
	tw.Flush()
}
