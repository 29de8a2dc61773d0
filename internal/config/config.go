package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Password storage schemes. Sha256 matches the legacy tracker databases;
// bcrypt is the opt-in upgraded scheme.
const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

type Config struct {
	Port           int
	DatabaseURL    string
	SQLitePath     string
	PublicDir      string
	PasswordScheme string
}

// Load parses CLI flags with environment-variable fallback. When DatabaseURL
// is empty the server runs against the embedded SQLite store at SQLitePath.
func Load(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("gt-backend", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Postgres URL (empty = embedded SQLite)")
	fs.StringVar(&cfg.SQLitePath, "sqlite", "", "SQLite file path for the embedded store")
	fs.StringVar(&cfg.PublicDir, "public", "", "Directory of static assets")
	fs.StringVar(&cfg.PasswordScheme, "scheme", "", "Password scheme (sha256 or bcrypt)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, fmt.Errorf("invalid PORT env variable: %q", portStr)
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = os.Getenv("SQLITE_PATH")
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "tracker.db"
	}

	if cfg.PublicDir == "" {
		cfg.PublicDir = os.Getenv("PUBLIC_DIR")
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}

	if cfg.PasswordScheme == "" {
		cfg.PasswordScheme = os.Getenv("PASSWORD_SCHEME")
	}
	if cfg.PasswordScheme == "" {
		cfg.PasswordScheme = SchemeSHA256
	}
	if cfg.PasswordScheme != SchemeSHA256 && cfg.PasswordScheme != SchemeBcrypt {
		return Config{}, fmt.Errorf("unknown password scheme %q (want sha256 or bcrypt)", cfg.PasswordScheme)
	}

	return cfg, nil
}
