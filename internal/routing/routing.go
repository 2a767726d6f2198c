package routing

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"friendbook/pkg/contact"
	"friendbook/pkg/handlers"
	"friendbook/pkg/middleware"
	"friendbook/pkg/session"
	"friendbook/pkg/user"
)

// Deps carries everything the route table needs; main assembles it from
// config so the whole table is testable with in-memory stores.
type Deps struct {
	Users     user.Repository
	Contacts  contact.Repository
	Sessions  *session.Manager
	JWTSecret string
	Logger    *slog.Logger
}

func InitRoutes(r *mux.Router, deps Deps) {

	userService := user.NewService(deps.Users)
	userHandler := handlers.NewUserHandler(userService, deps.Sessions, deps.JWTSecret, deps.Logger)

	contactService := &contact.ContactService{Repo: deps.Contacts}
	friendHandler := handlers.NewFriendHandler(contactService, deps.Logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	/* auth routers, no gate */
	r.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	r.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")

	/* friends routers, session + token gate on every route */
	friendsRouter := r.PathPrefix("/friends").Subrouter()
	friendsRouter.Use(middleware.CheckAuth(deps.Sessions, deps.JWTSecret))

	friendsRouter.HandleFunc("/", friendHandler.GetAllFriends).Methods("GET")
	friendsRouter.HandleFunc("/", friendHandler.CreateFriend).Methods("POST")
	friendsRouter.HandleFunc("/{email}", friendHandler.GetFriendByEmail).Methods("GET")
	friendsRouter.HandleFunc("/{email}", friendHandler.UpdateFriend).Methods("PUT")
	friendsRouter.HandleFunc("/{email}", friendHandler.DeleteFriend).Methods("DELETE")
}

func StartServer(r *mux.Router, addr string) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
