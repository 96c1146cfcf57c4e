package stub

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
)

// Server is an in-memory stand-in for the remote restaurant API, used
// for local development and for exercising the client packages in
// tests. It implements exactly the endpoints the client calls; there is
// no persistence and no business rules beyond what the client observes.
type Server struct {
	mu       sync.Mutex
	users    map[string]account // customer accounts by email
	staff    map[string]account // staff accounts by email
	sessions map[string]api.User
	orders   []api.Order
	menu     []api.MenuItem

	validate *validator.Validate
}

type account struct {
	User     api.User
	Password string
}

const sessionCookieName = "session"

func NewServer() *Server {
	return &Server{
		users:    make(map[string]account),
		staff:    make(map[string]account),
		sessions: make(map[string]api.User),
		validate: validator.New(),
	}
}

// SeedMenu replaces the menu the stub serves.
func (s *Server) SeedMenu(items []api.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = append([]api.MenuItem(nil), items...)
}

// SeedStaff registers a staff account for the staff login endpoint.
func (s *Server) SeedStaff(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff[email] = account{
		User:     api.User{ID: newID(), Email: email, IsStaff: true},
		Password: password,
	}
}

// SeedOrders preloads orders, mostly for tests of the staff board.
func (s *Server) SeedOrders(orders []api.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]api.Order(nil), orders...)
}

// RegisterRoutes mounts every endpoint of the remote API contract onto
// the given router.
func (s *Server) RegisterRoutes(router chi.Router) {
	router.Post("/api/customer/auth/login", s.handleLogin)
	router.Post("/api/customer/auth/register", s.handleRegister)
	router.Get("/api/customer/auth/refetch", s.handleRefetch)
	router.Get("/api/customer/auth/logout", s.handleLogout)
	router.Post("/api/staff/auth/login", s.handleStaffLogin)
	router.Get("/menu", s.handleMenu)
	router.Post("/order/api/orders", s.handleCreateOrder)
	router.Get("/order/pending/{email}", s.handlePendingOrders)
	router.Get("/order/api/allorders", s.handleAllOrders)
	router.Put("/order/api/orders/{id}/status", s.handleUpdateStatus)
}

func newID() string {
	return uuid.Must(uuid.NewV4()).String()
}
