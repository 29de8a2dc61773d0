package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbcheck pings the Postgres store and prints per-table row counts. Useful
// for verifying a deployment target before pointing the server at it.

var dsn = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")

var tables = []string{"users", "phd_contacts", "masters_apps"}

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()
	if *dsn == "" {
		log.Fatal("--dsn not provided and DATABASE_URL not set")
	}

	conn, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		log.Fatalf("ping failed: %v", err)
	}
	fmt.Println("✓ Connection OK")

	for _, table := range tables {
		var count int64
		err := conn.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count)
		if err != nil {
			fmt.Printf("  %-14s missing (%v)\n", table, err)
			continue
		}
		fmt.Printf("  %-14s %d rows\n", table, count)
	}
}
