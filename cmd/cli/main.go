// Command cli is an operator tool that creates a user account directly
// against the database, for bootstrapping an installation without going
// through the HTTP API.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/yourorg/todokeeper/internal/server/config"
	"github.com/yourorg/todokeeper/internal/server/repositories/repomanager"
	"github.com/yourorg/todokeeper/internal/server/services"
	"github.com/yourorg/todokeeper/internal/server/validation"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func run(ctx context.Context, username, email string) error {
	password, err := promptPassword("Enter password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Repeat password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if errs := validation.Registration(username, email, password); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", e.Field, e.Message)
		}
		return fmt.Errorf("validation failed")
	}

	cfg := config.LoadConfig()

	m, err := repomanager.NewPostgresRepositoryManager()
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	user, err := services.NewUserService(db, m, cfg).Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Created user %s (id=%d)\n", user.Username, user.ID)
	return nil
}

func main() {

	username := flag.String("u", "", "username for the new account")
	email := flag.String("e", "", "email for the new account")
	flag.Parse()

	if *username == "" || *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	if err := run(context.Background(), *username, *email); err != nil {
		log.Fatalf("%v", err)
	}

}
