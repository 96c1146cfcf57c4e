package menu

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
)

// MenuAPI is the slice of the remote client the menu view needs.
type MenuAPI interface {
	FetchMenu(ctx context.Context) ([]api.MenuItem, error)
}

// Fetch returns the current menu, degrading to an empty list when the
// remote call fails so browsing still renders something.
func Fetch(ctx context.Context, menuAPI MenuAPI) []api.MenuItem {
	items, err := menuAPI.FetchMenu(ctx)
	if err != nil {
		log.Error().Err(err).Msg("menu: failed to fetch menu items")
		return []api.MenuItem{}
	}
	return items
}
