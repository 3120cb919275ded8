package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opsdesk/opsdesk-backend-go/internal/config"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/user"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/opsdesk/opsdesk-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

var seedUsers = []struct {
	Name     string
	Email    string
	Password string
}{
	{Name: "Admin", Email: "admin@opsdesk.local", Password: "admin12345"},
	{Name: "Alice Tan", Email: "alice@opsdesk.local", Password: "alice12345"},
	{Name: "Bob Kurniawan", Email: "bob@opsdesk.local", Password: "bob1234567"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}

		created, err := userRepo.Create(ctx, user.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: string(hash),
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				fmt.Printf("Skipping %s, already exists\n", su.Email)
				continue
			}
			log.Fatal("Failed to seed user:", err)
		}
		fmt.Printf("Seeded %s (%s)\n", created.Email, created.ID)
	}
}
