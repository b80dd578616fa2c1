package main

import (
	"context"
	"log"
	"os"

	"github.com/gorilla/mux"

	"perfilapp/internal/config"
	"perfilapp/internal/logger"
	"perfilapp/internal/mongo"
	"perfilapp/internal/routing"
	"perfilapp/pkg/randoms"
	"perfilapp/pkg/session"
	"perfilapp/pkg/user"
)

func main() {
	config.Load() // load env vars from .env

	db := mongo.LoadDB()
	logger := logger.Load()

	userRepo := user.NewMongoRepo(db)
	if err := userRepo.EnsureIndexes(); err != nil {
		log.Fatal("Cannot create user indexes:", err)
	}
	sessionRepo := session.NewMongoRepo(db)
	if err := sessionRepo.EnsureIndexes(); err != nil {
		log.Fatal("Cannot create session indexes:", err)
	}

	worker := randoms.NewWorker()
	go worker.Run(context.Background())

	r := mux.NewRouter()
	err := routing.InitRoutes(r, routing.Deps{
		Users:         userRepo,
		Sessions:      sessionRepo,
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Worker:        worker,
		Logger:        logger,
	})
	if err != nil {
		log.Fatal("Cannot init routes:", err)
	}
	routing.ServeStaticFiles(r)
	routing.StartServer(r, config.Port())
}
