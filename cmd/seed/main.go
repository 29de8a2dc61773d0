package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/GradTrack/GT-Backend/internal/applications"
	"github.com/GradTrack/GT-Backend/internal/auth"
	"github.com/GradTrack/GT-Backend/internal/config"
	"github.com/GradTrack/GT-Backend/internal/contacts"
	"github.com/GradTrack/GT-Backend/internal/db"
	"github.com/GradTrack/GT-Backend/internal/seeds"
)

var (
	fixturePath = flag.String("fixture", "seeds/demo.yaml", "Path to the YAML fixture")
	dryRun      = flag.Bool("dry-run", false, "Parse + validate only; no DB writes")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	fx, err := seeds.Load(*fixturePath)
	if err != nil {
		log.Fatalf("Fixture error: %v", err)
	}
	fmt.Printf("Loaded fixture %s: user %s, %d contacts, %d applications\n",
		*fixturePath, fx.User.Email, len(fx.Contacts), len(fx.Applications))

	if *dryRun {
		fmt.Println("Dry run complete. No changes made.")
		return
	}

	cfg, err := config.Load(nil)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	store, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer db.Close(store)

	if err := auth.Init(store); err != nil {
		log.Fatalf("Migration error: %v", err)
	}
	if err := contacts.Init(store); err != nil {
		log.Fatalf("Migration error: %v", err)
	}
	if err := applications.Init(store); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	if err := seeds.Run(store, fx); err != nil {
		log.Fatalf("Seed error: %v", err)
	}
	fmt.Println("✓ Seed complete")
}
