package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"friendbook/pkg/claims"
	"friendbook/pkg/contact"
)

const (
	typeError   string = "error"
	typeMessage string = "message"
	muxVarEmail string = "email"
)

type CreateForm struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
}

type FriendHandler struct {
	Service contact.ServiceContact
	Logger  *slog.Logger
}

func NewFriendHandler(service contact.ServiceContact, logger *slog.Logger) *FriendHandler {
	return &FriendHandler{
		Service: service,
		Logger:  logger,
	}
}

// GetAllFriends returns the whole store as an indented JSON object keyed
// by email.
func (h *FriendHandler) GetAllFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("list friends", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed to list friends")
		return
	}

	resp, err := json.MarshalIndent(friends, "", "    ")
	if err != nil {
		h.Logger.Error("failed to serialize friends", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		h.Logger.Error("failed to write response to client", "error", err)
	}
}

func (h *FriendHandler) GetFriendByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)[muxVarEmail]

	friend, err := h.Service.Get(email)
	if errors.Is(err, contact.ErrNotFound) {
		// soft outcome: missing records report at 200, only auth fails hard
		writeText(w, h.Logger, "The requested friend does not exist.")
		return
	}
	if err != nil {
		h.Logger.Error("get friend", "error", err, muxVarEmail, email)
		writeError(w, http.StatusInternalServerError, typeError, "failed to get friend")
		return
	}

	writeJSON(w, h.Logger, friend)
}

func (h *FriendHandler) CreateFriend(w http.ResponseWriter, r *http.Request) {
	var req CreateForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	var tokenClaims claims.Claims
	if ok := getClaimsFromContext(w, r, &tokenClaims); !ok {
		return
	}

	if req.Email == "" {
		writeText(w, h.Logger, "Unable to create/update friend. Check provided email.")
		return
	}

	err := h.Service.CreateOrReplace(req.Email, contact.Contact{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		h.Logger.Error("create friend", "error", err, muxVarEmail, req.Email)
		writeError(w, http.StatusInternalServerError, typeError, "failed to create friend")
		return
	}

	if ok := writeText(w, h.Logger, fmt.Sprintf("The friend %s was created.", req.FirstName)); ok {
		h.Logger.Info("friend created", muxVarEmail, req.Email)
	}
}

func (h *FriendHandler) UpdateFriend(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)[muxVarEmail]

	var upd contact.Update
	if ok := DecodeJSONBody(w, r, &upd); !ok {
		return
	}

	var tokenClaims claims.Claims
	if ok := getClaimsFromContext(w, r, &tokenClaims); !ok {
		return
	}

	_, err := h.Service.Update(email, upd)
	if errors.Is(err, contact.ErrNotFound) {
		writeText(w, h.Logger, fmt.Sprintf("Can't find the friend with email=%s", email))
		return
	}
	if err != nil {
		h.Logger.Error("update friend", "error", err, muxVarEmail, email)
		writeError(w, http.StatusInternalServerError, typeError, "failed to update friend")
		return
	}

	if ok := writeText(w, h.Logger, fmt.Sprintf("The friend with email=%s was updated", email)); ok {
		h.Logger.Info("friend updated", muxVarEmail, email)
	}
}

// DeleteFriend removes the record if present. Deleting an absent email is
// a no-op and still confirms.
func (h *FriendHandler) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)[muxVarEmail]

	var tokenClaims claims.Claims
	if ok := getClaimsFromContext(w, r, &tokenClaims); !ok {
		return
	}

	if err := h.Service.Delete(email); err != nil {
		h.Logger.Error("delete friend", "error", err, muxVarEmail, email)
		writeError(w, http.StatusInternalServerError, typeError, "failed to delete friend")
		return
	}

	if ok := writeText(w, h.Logger, fmt.Sprintf("The friend with %s email was deleted.", email)); ok {
		h.Logger.Info("friend deleted", muxVarEmail, email)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(resp); err != nil {
		logger.Error("failed to write response to client", "error", err)
		return false
	}
	return true
}

func writeText(w http.ResponseWriter, logger *slog.Logger, msg string) bool {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(msg)); err != nil {
		logger.Error("failed to write response to client", "error", err)
		return false
	}
	return true
}

func getClaimsFromContext(w http.ResponseWriter, r *http.Request, c *claims.Claims) bool {
	val, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims)
	if !ok || val == nil {
		writeError(w, http.StatusForbidden, typeMessage, "The user is not logged in!")
		return false
	}
	*c = *val
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
