// Command seed-admin creates (or repairs) the bootstrap admin account so a
// fresh deployment has someone who can approve registrations.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayushkamni/desi-premium/internal/config"
	"github.com/ayushkamni/desi-premium/internal/database"
	"github.com/ayushkamni/desi-premium/internal/logger"
	"github.com/ayushkamni/desi-premium/internal/models"
	"github.com/ayushkamni/desi-premium/internal/repository"
	"github.com/ayushkamni/desi-premium/internal/services"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "path to config file")
		name       = flag.String("name", "Super Admin", "admin display name")
		email      = flag.String("email", "", "admin email (required)")
		password   = flag.String("password", "", "admin password (required, min 8 chars)")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zlog, err := logger.New(cfg.App.Env == "development")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	db, client, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, zlog)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer func() { _ = client.Disconnect(ctx) }()

	users := repository.NewMongoUserRepo(db, cfg.Mongo.UsersCollection)
	addr := services.NormalizeEmail(*email)

	existing, err := users.FindByEmail(ctx, addr)
	switch {
	case err == nil:
		// Account exists: make sure it is an admin.
		if existing.IsAdmin() {
			zlog.Infof("admin %s already exists", addr)
			return
		}
		if err := users.Promote(ctx, existing.ID.Hex()); err != nil {
			log.Fatalf("promote existing user: %v", err)
		}
		zlog.Infof("existing user %s promoted to admin", addr)
	case errors.Is(err, repository.ErrNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), cfg.Security.PasswordHashCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		u := &models.User{
			Name:         *name,
			Email:        addr,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			IsApproved:   true,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		zlog.Infof("admin %s created", addr)
	default:
		log.Fatalf("lookup admin: %v", err)
	}
}
