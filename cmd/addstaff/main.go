// Command addstaff creates a back-office login from the command line.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/melodia-school/melodia-back/internal/auth"
	"github.com/melodia-school/melodia-back/internal/config"
	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/internal/models"
)

func main() {
	email := flag.String("email", "", "staff email (required)")
	password := flag.String("password", "", "initial password (required)")
	name := flag.String("name", "", "full name")
	role := flag.String("role", "operator", "operator or admin")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	_ = godotenv.Load()
	cfg := config.Load()
	if err := db.Init(cfg.Database.DSN()); err != nil {
		log.Fatalf("connect database: %v", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	staff := models.Staff{
		Email:        *email,
		PasswordHash: hash,
		FullName:     *name,
		Role:         *role,
	}
	if err := db.CreateStaff(context.Background(), &staff); err != nil {
		log.Fatalf("create staff: %v", err)
	}
	log.Printf("staff %s created (id %d)", staff.Email, staff.ID)
}
