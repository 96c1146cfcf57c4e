package stub

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var requestPayload registerRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode register payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := s.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[requestPayload.Email]; exists {
		respondWithError(w, http.StatusConflict, "Email already exists")
		return
	}

	acc := account{
		User:     api.User{ID: newID(), Email: requestPayload.Email},
		Password: requestPayload.Password,
	}
	s.users[requestPayload.Email] = acc

	respondWithJSON(w, http.StatusCreated, acc.User)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var requestPayload credentialsRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode login payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := s.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.users[requestPayload.Email]
	if !ok || acc.Password != requestPayload.Password {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	s.startSessionLocked(w, acc.User)
	respondWithJSON(w, http.StatusOK, acc.User)
}

func (s *Server) handleStaffLogin(w http.ResponseWriter, r *http.Request) {
	var requestPayload credentialsRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode staff login payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := s.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.staff[requestPayload.Email]
	if !ok || acc.Password != requestPayload.Password {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	s.startSessionLocked(w, acc.User)
	respondWithJSON(w, http.StatusOK, acc.User)
}

func (s *Server) handleRefetch(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.sessions[cookie.Value]
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		s.mu.Lock()
		delete(s.sessions, cookie.Value)
		s.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := append([]api.MenuItem(nil), s.menu...)
	s.mu.Unlock()

	respondWithJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var requestPayload api.CreateOrderRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode create order payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if len(requestPayload.Items) == 0 {
		respondWithError(w, http.StatusBadRequest, "Order must contain at least one item")
		return
	}
	if requestPayload.TableNumber <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid table number")
		return
	}
	if requestPayload.Email == "" {
		respondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}
	for _, item := range requestPayload.Items {
		if item.Quantity <= 0 {
			respondWithError(w, http.StatusBadRequest, "Item quantity must be greater than zero")
			return
		}
		if item.Price < 0 {
			respondWithError(w, http.StatusBadRequest, "Item price cannot be negative")
			return
		}
	}

	order := api.Order{
		ID:          newID(),
		TableNumber: requestPayload.TableNumber,
		Items:       requestPayload.Items,
		TotalAmount: requestPayload.TotalAmount,
		Status:      api.StatusPending,
		Email:       requestPayload.Email,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	respondWithJSON(w, http.StatusCreated, order)
}

func (s *Server) handlePendingOrders(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "Email parameter cannot be empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]api.Order, 0)
	for _, o := range s.orders {
		if o.Email == email && o.Status == api.StatusPending {
			pending = append(pending, o)
		}
	}

	respondWithJSON(w, http.StatusOK, pending)
}

func (s *Server) handleAllOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	orders := append([]api.Order(nil), s.orders...)
	s.mu.Unlock()

	respondWithJSON(w, http.StatusOK, orders)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Id parameter cannot be empty")
		return
	}

	var requestPayload updateStatusRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode update status payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	status, err := api.ParseOrderStatus(requestPayload.Status)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			respondWithJSON(w, http.StatusOK, s.orders[i])
			return
		}
	}

	respondWithError(w, http.StatusNotFound, "Order not found")
}

// startSessionLocked mints a session token, remembers who it belongs to
// and sets the cookie. Caller holds s.mu.
func (s *Server) startSessionLocked(w http.ResponseWriter, user api.User) {
	token := newID()
	s.sessions[token] = user
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
