package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"friendbook/pkg/claims"
	"friendbook/pkg/session"
	"friendbook/pkg/user"

	jwt "github.com/dgrijalva/jwt-go"
)

const tokenTTL = time.Hour

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserHandler struct {
	Service  user.ServiceInterface
	Sessions *session.Manager
	Secret   string
	Logger   *slog.Logger
}

func NewUserHandler(service user.ServiceInterface, sessions *session.Manager, secret string, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service:  service,
		Sessions: sessions,
		Secret:   secret,
		Logger:   logger,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusNotFound, "There was an error registering user. Please try again.")
		return
	}

	_, err := h.Service.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrUserExists) {
			writeMessage(w, http.StatusNotFound, "User exists already. Please, proceed to login.")
			return
		}
		h.Logger.Error("register", "error", err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeMessage(w, http.StatusOK, "User was successfully created! You can login now.")
	h.Logger.Info("register", "user", req.Username)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusNotFound, "Error logging in: Missing username/password.")
		return
	}

	u, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid login: check username & password")
			return
		}
		h.Logger.Error("login", "error", err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tokenString, err := h.generateToken(u.Password)
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if _, err := h.Sessions.Bind(w, r, u.Username, tokenString); err != nil {
		h.Logger.Error("session bind", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := fmt.Fprintf(w, "User %s, was successfully logged in.", u.Username); err != nil {
		h.Logger.Error("failed to write login response", slog.Any("err", err))
		return
	}
	h.Logger.Info("login", "user", u.Username)
}

// generateToken mints the 1-hour access token bound into the session. The
// payload carries the login password verbatim; clients depend on that.
func (h *UserHandler) generateToken(password string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims.Claims{
		Data: password,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenTTL).Unix(),
		},
	})
	return token.SignedString([]byte(h.Secret))
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, typeError, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, "bad json")
		return false
	}

	return true
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeError(w, status, typeMessage, msg)
}
