// Command useradd creates an account that can sign in through /oauth/token.
// Accounts are only ever created this way.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/todoism/todoism-go/internal/config"
	"github.com/todoism/todoism-go/internal/crypto"
	"github.com/todoism/todoism-go/internal/logger"
	"github.com/todoism/todoism-go/internal/repository"
	"github.com/todoism/todoism-go/internal/service"
	"go.uber.org/zap"
)

func main() {
	username := flag.String("username", "", "name of the new user (required)")
	password := flag.String("password", "", "password for the new user; generated and printed when empty")
	length := flag.Int("length", 16, "length of a generated password")
	flag.Parse()

	if *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	generated := *password == ""
	if generated {
		*password, err = crypto.GeneratePassword(*length)
		if err != nil {
			log.Fatal("generate password", zap.Error(err))
		}
	}

	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := repository.Migrate(ctx, db, cfg.DatabaseDriver); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	signer := crypto.NewTokenSigner(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(repository.NewUserRepository(db), signer)

	user, err := auth.Register(ctx, *username, *password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			log.Fatal("username already taken", zap.String("username", *username))
		}
		log.Fatal("create user", zap.Error(err))
	}

	log.Info("user created", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	if generated {
		fmt.Printf("password: %s\n", *password)
	}
}
