package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/voltshop/internal/common"
	"github.com/dmitrijs2005/voltshop/internal/server/orders"
	"github.com/go-chi/chi/v5"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type messageRequest struct {
	Body string `json:"body"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil || in.Username == "" || in.Password == "" {
		writeDetail(w, http.StatusBadRequest, "username and password are required")
		return
	}

	pair, err := s.users.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "no active account found with the given credentials")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(r, &in); err != nil || in.Refresh == "" {
		writeDetail(w, http.StatusBadRequest, "refresh is required")
		return
	}

	pair, err := s.users.RefreshToken(r.Context(), in.Refresh)
	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenReused) {
			s.logger.Warn(r.Context(), "rejected reused refresh token")
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.List(r.Context(), r.URL.Query().Get("q")))
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.orders.List(r.Context(), userIDFrom(r.Context())))
}

func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	var in orders.PlaceRequest
	if err := decodeStrict(r, &in); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed order")
		return
	}

	o, err := s.orders.Place(r.Context(), userIDFrom(r.Context()), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.messages.List(r.Context(), userIDFrom(r.Context())))
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	var in messageRequest
	if err := decodeStrict(r, &in); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed message")
		return
	}

	userID := userIDFrom(r.Context())
	user, err := s.users.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	m, err := s.messages.Send(r.Context(), userID, user.UserName, in.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}
