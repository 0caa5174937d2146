package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin creates the initial admin account from config if it doesn't
// exist yet. A user that already exists is left untouched.
func (c *Client) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	if _, err := c.GetUserByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("bootstrap lookup admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap hash password: %w", err)
	}

	admin := User{
		FullName: "Admin",
		Email:    email,
		Password: string(hash),
		IsAdmin:  true,
	}
	if err := c.CreateUser(ctx, &admin); err != nil {
		return fmt.Errorf("bootstrap create admin: %w", err)
	}

	log.Info("created admin account", "email", email)
	return nil
}
