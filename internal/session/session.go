package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
)

// ErrNotSignedIn is reported when there is no authenticated user for
// the current session.
var ErrNotSignedIn = errors.New("not signed in")

// User is the signed-in account as the client sees it.
type User struct {
	ID      string
	Email   string
	IsStaff bool
}

// AuthAPI is the slice of the remote client the session store needs.
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) error
	Register(ctx context.Context, creds api.Credentials) error
	RefetchUser(ctx context.Context) (*api.User, error)
	Logout(ctx context.Context) error
	StaffLogin(ctx context.Context, creds api.Credentials) (*api.User, error)
}

type signInRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type signUpRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Store holds the current user for the session. It is the client-side
// mirror of the server's cookie session: the cookie itself lives in the
// API client's jar, the Store only tracks who the cookie belongs to.
type Store struct {
	mu       sync.Mutex
	user     *User
	authAPI  AuthAPI
	validate *validator.Validate
}

func NewStore(authAPI AuthAPI) *Store {
	return &Store{
		authAPI:  authAPI,
		validate: validator.New(),
	}
}

// SignIn authenticates a customer. Credentials are validated before any
// network call; validation failures never reach the wire.
func (s *Store) SignIn(ctx context.Context, email, password string) (*User, error) {
	if err := s.validate.Struct(signInRequest{Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	if err := s.authAPI.Login(ctx, api.Credentials{Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// The login response only sets the session cookie; the user itself
	// comes from a follow-up refetch, as in the browser client.
	return s.Refetch(ctx)
}

// SignUp registers a new customer account. It does not sign the user
// in; the caller follows up with SignIn.
func (s *Store) SignUp(ctx context.Context, email, password string) error {
	if err := s.validate.Struct(signUpRequest{Email: email, Password: password}); err != nil {
		return fmt.Errorf("invalid credentials: %w", err)
	}

	if err := s.authAPI.Register(ctx, api.Credentials{Email: email, Password: password}); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	return nil
}

// StaffSignIn authenticates against the staff endpoint and marks the
// session as a staff session.
func (s *Store) StaffSignIn(ctx context.Context, email, password string) (*User, error) {
	if err := s.validate.Struct(signInRequest{Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	u, err := s.authAPI.StaffLogin(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("staff login failed: %w", err)
	}

	user := &User{ID: u.ID, Email: u.Email, IsStaff: true}
	s.set(user)
	return user, nil
}

// Refetch asks the server who the session cookie belongs to. Any
// failure clears the local user and reports ErrNotSignedIn: an expired
// cookie and a transport error look the same to the views.
func (s *Store) Refetch(ctx context.Context) (*User, error) {
	u, err := s.authAPI.RefetchUser(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session: refetch failed, treating as signed out")
		s.set(nil)
		return nil, ErrNotSignedIn
	}

	user := &User{ID: u.ID, Email: u.Email, IsStaff: u.IsStaff}
	s.set(user)
	return user, nil
}

// SignOut clears the session. The logout request is best effort: the
// local user is dropped even when the call fails.
func (s *Store) SignOut(ctx context.Context) {
	if err := s.authAPI.Logout(ctx); err != nil {
		log.Warn().Err(err).Msg("session: logout request failed")
	}
	s.set(nil)
}

// Current returns a copy of the signed-in user, if any.
func (s *Store) Current() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func (s *Store) set(u *User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}
