package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/cart"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/checkout"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/config"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/menu"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/session"
)

type app struct {
	client   *api.Client
	cart     *cart.Store
	session  *session.Store
	checkout *checkout.Service
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("Starting customer-app...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	client, err := api.NewClient(cfg.App.APIBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create API client")
	}

	cartStore := cart.NewStore(cart.NewFileStorage(cfg.App.CartStorage))
	sessionStore := session.NewStore(client)

	a := &app{
		client:   client,
		cart:     cartStore,
		session:  sessionStore,
		checkout: checkout.NewService(cartStore, sessionStore, client),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a.run(ctx)

	log.Info().Msg("Customer-app stopped.")
}

func (a *app) run(ctx context.Context) {
	fmt.Println("Restaurant ordering. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
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
		case "help":
			printHelp()
		case "signup":
			a.signUp(ctx, fields[1:])
		case "signin":
			a.signIn(ctx, fields[1:])
		case "signout":
			a.session.SignOut(ctx)
			fmt.Println("Signed out.")
		case "whoami":
			if user, ok := a.session.Current(); ok {
				fmt.Printf("Signed in as %s\n", user.Email)
			} else {
				fmt.Println("Not signed in.")
			}
		case "menu":
			a.printMenu(ctx)
		case "add":
			a.addToCart(ctx, fields[1:])
		case "cart":
			a.printCart()
		case "qty":
			a.setQuantity(fields[1:])
		case "remove":
			if len(fields) != 2 {
				fmt.Println("usage: remove <item-id>")
				continue
			}
			a.cart.RemoveItem(fields[1])
		case "table":
			a.setTable(fields[1:])
		case "checkout":
			a.confirmOrder(ctx)
		case "orders":
			a.printPendingOrders(ctx)
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q, type 'help'.\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  signup <email> <password>   create a customer account
  signin <email> <password>   sign in
  signout                     sign out
  whoami                      show the current user
  menu                        list menu items
  add <item-id> <quantity>    add a menu item to the cart
  cart                        show the cart and total
  qty <item-id> <quantity>    change a line's quantity (0 removes it)
  remove <item-id>            remove a line
  table <number>              choose a table
  checkout                    place the order
  orders                      list your pending orders
  quit                        exit`)
}

func (a *app) signUp(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: signup <email> <password>")
		return
	}
	if err := a.session.SignUp(ctx, args[0], args[1]); err != nil {
		fmt.Printf("Sign-up failed: %v\n", err)
		return
	}
	fmt.Println("Account created, sign in to continue.")
}

func (a *app) signIn(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: signin <email> <password>")
		return
	}
	user, err := a.session.SignIn(ctx, args[0], args[1])
	if err != nil {
		fmt.Printf("Sign-in failed: %v\n", err)
		return
	}
	fmt.Printf("Signed in as %s\n", user.Email)
}

func (a *app) printMenu(ctx context.Context) {
	items := menu.Fetch(ctx, a.client)
	if len(items) == 0 {
		fmt.Println("The menu is empty right now.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", it.ID, it.Name, it.Price, it.Category)
	}
	tw.Flush()
}

func (a *app) addToCart(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: add <item-id> <quantity>")
		return
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil || quantity <= 0 {
		// Та же проверка, что и в меню: нулевое количество не добавляем.
		fmt.Println("Quantity must be a positive integer.")
		return
	}

	for _, it := range menu.Fetch(ctx, a.client) {
		if it.ID == args[0] {
			a.cart.AddItem(cart.Item{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: quantity})
			fmt.Printf("Added %d × %s\n", quantity, it.Name)
			return
		}
	}
	fmt.Printf("No menu item with id %q\n", args[0])
}

func (a *app) printCart() {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\n", it.ID, it.Name, it.Price, it.Quantity)
	}
	tw.Flush()

	if tableNo, ok := a.cart.TableNumber(); ok {
		fmt.Printf("Table: %d\n", tableNo)
	}
	fmt.Printf("Total: %.2f\n", a.cart.TotalAmount())
}

func (a *app) setQuantity(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: qty <item-id> <quantity>")
		return
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("Quantity must be an integer.")
		return
	}
	a.checkout.SetQuantity(args[0], quantity)
}

func (a *app) setTable(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: table <number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		fmt.Println("Table number must be a positive integer.")
		return
	}
	a.cart.SetTableNumber(n)
}

func (a *app) confirmOrder(ctx context.Context) {
	result, err := a.checkout.Confirm(ctx)
	if err != nil {
		fmt.Printf("Could not place the order: %v\n", err)
		return
	}
	fmt.Printf("Order placed! Id %s, total %.2f. Returning to home.\n",
		result.Order.ID, result.Order.TotalAmount)
}

func (a *app) printPendingOrders(ctx context.Context) {
	user, ok := a.session.Current()
	if !ok {
		fmt.Println("Sign in to see your orders.")
		return
	}

	orders, err := a.client.PendingOrders(ctx, user.Email)
	if err != nil {
		fmt.Printf("Could not fetch your orders: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Println("No pending orders.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTABLE\tTOTAL\tSTATUS\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\t%s\n",
			o.ID, o.TableNumber, o.TotalAmount, o.Status, o.CreatedAt.Local().Format("15:04:05"))
	}
	tw.Flush()
}
