package database

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// User represents a registered account.
// Password holds the bcrypt hash, never the plaintext, and is excluded from
// JSON serialization.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	FullName  string    `gorm:"not null" json:"fullName"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	IsSponsor bool      `gorm:"not null;default:false" json:"isSponsor"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Conferences []Conference `gorm:"many2many:conference_conferential_user;constraint:OnDelete:CASCADE" json:"-"`
}

// CreateUser inserts a new user. The email must not be taken yet.
func (c *Client) CreateUser(ctx context.Context, user *User) error {
	var count int64
	if err := c.db.WithContext(ctx).Model(&User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		log.Error("failed to check email uniqueness", "error", err)
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	if err := c.db.WithContext(ctx).Create(user).Error; err != nil {
		log.Error("failed to create user", "error", err)
		return err
	}
	return nil
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by email", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by id", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users ordered by identifier ascending.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		log.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user and any conference membership rows.
func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.First(&user, id).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Error("failed to get user for deletion", "error", err)
			}
			return err
		}
		if err := tx.Select(clause.Associations).Delete(&user).Error; err != nil {
			log.Error("failed to delete user", "error", err)
			return err
		}
		return nil
	})
}
