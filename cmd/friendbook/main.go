package main

import (
	"log"

	"friendbook/internal/config"
	"friendbook/internal/database"
	"friendbook/internal/logger"
	"friendbook/internal/routing"
	"friendbook/pkg/contact"
	"friendbook/pkg/middleware"
	"friendbook/pkg/session"
	"friendbook/pkg/user"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logger.Load()

	var userRepo user.Repository
	var contactRepo contact.Repository

	switch cfg.Storage.Driver {
	case "memory":
		userRepo = user.NewMemoryRepo()
		contactRepo = contact.NewMemoryRepo()
	case "sqlite3", "mysql":
		db, err := database.Load(cfg.Storage.Driver, cfg.Storage.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		userRepo = user.NewSQLRepo(db)
		contactRepo = contact.NewSQLRepo(db)
	default:
		log.Fatalf("unsupported storage driver: %s", cfg.Storage.Driver)
	}

	sessionRepo, err := session.NewRepo(session.Config{
		Store:         cfg.Session.Store,
		RedisAddr:     cfg.Session.RedisAddr,
		RedisPassword: cfg.Session.RedisPassword,
		RedisDB:       cfg.Session.RedisDB,
	})
	if err != nil {
		log.Fatal(err)
	}

	r := mux.NewRouter()
	r.Use(middleware.Panic(logger))

	routing.InitRoutes(r, routing.Deps{
		Users:     userRepo,
		Contacts:  contactRepo,
		Sessions:  session.NewManager(sessionRepo, cfg.Session.TTL),
		JWTSecret: cfg.JWTSecret,
		Logger:    logger,
	})

	routing.StartServer(r, cfg.Addr)
}
