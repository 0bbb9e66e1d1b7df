package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a console user. Store access and roles live in
// store_users; the user row itself only carries identity and session state.
type User struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name" gorm:"size:100;not null" validate:"required,min=2,max=100"`
	Email     string     `json:"email" gorm:"size:100;uniqueIndex;not null" validate:"required,email"`
	Password  string     `json:"-" gorm:"size:255;not null" validate:"required,min=6"`
	Token     string     `json:"-" gorm:"size:255;uniqueIndex"` // Authentication token (hidden from JSON)
	TokenExp  *time.Time `json:"-" gorm:"index"`                // Token expiration time
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Memberships []StoreUser `json:"memberships,omitempty" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook assigns a uuid and hashes the password before saving
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return nil
}

// BeforeUpdate hook to hash password before updating
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Password") && u.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return nil
}

// CheckPassword verifies if the provided password matches the user's password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// GenerateToken creates a new authentication token for the user
func (u *User) GenerateToken() error {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return err
	}

	u.Token = hex.EncodeToString(tokenBytes)
	// Sessions last 24 hours
	expirationTime := time.Now().Add(24 * time.Hour)
	u.TokenExp = &expirationTime

	return nil
}

// IsTokenValid checks if the user's token is still valid
func (u *User) IsTokenValid() bool {
	if u.Token == "" || u.TokenExp == nil {
		return false
	}
	return time.Now().Before(*u.TokenExp)
}

// ClearToken removes the authentication token
func (u *User) ClearToken() {
	u.Token = ""
	u.TokenExp = nil
}

// ToSafeUser returns user data without sensitive information
func (u *User) ToSafeUser() map[string]interface{} {
	return map[string]interface{}{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"memberships": u.Memberships,
		"created_at":  u.CreatedAt,
		"updated_at":  u.UpdatedAt,
	}
}

// RoleInStore returns the user's role in the given store, or false when the
// user is not a member.
func (u *User) RoleInStore(storeID string) (StoreRole, bool) {
	for _, m := range u.Memberships {
		if m.StoreID == storeID {
			return m.Role, true
		}
	}
	return "", false
}
