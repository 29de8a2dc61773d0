package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/GradTrack/GT-Backend/internal/applications"
	"github.com/GradTrack/GT-Backend/internal/auth"
	"github.com/GradTrack/GT-Backend/internal/config"
	"github.com/GradTrack/GT-Backend/internal/contacts"
	"github.com/GradTrack/GT-Backend/internal/db"
	"github.com/GradTrack/GT-Backend/routes"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	store, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := auth.Init(store); err != nil {
		log.Fatal("Failed to init auth tables: ", err)
	}
	if err := contacts.Init(store); err != nil {
		log.Fatal("Failed to init contact tables: ", err)
	}
	if err := applications.Init(store); err != nil {
		log.Fatal("Failed to init application tables: ", err)
	}
	log.Println("Database schema ready")

	server := http.Server{
		Handler: routes.New(store, cfg),
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	log.Printf("Server listening on port :%d...", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Println("Server closed: ", err)
	}

	if err := db.Close(store); err != nil {
		log.Println("Failed to close database: ", err)
	}
}
