package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreRole represents a user's role inside a store
type StoreRole string

const (
	StoreRoleStaff      StoreRole = "STAFF"
	StoreRoleAdmin      StoreRole = "ADMIN"
	StoreRoleSuperAdmin StoreRole = "SUPER_ADMIN"
)

// CanManageCatalog reports whether the role may upload to the store catalog
// or change store settings.
func (r StoreRole) CanManageCatalog() bool {
	return r == StoreRoleAdmin || r == StoreRoleSuperAdmin
}

// Store represents a single shop location. Every catalog entry, device,
// intake file and setting belongs to exactly one store.
type Store struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null" validate:"required,min=2,max=100"`
	StoreCode string    `json:"store_code" gorm:"size:20;uniqueIndex;not null" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Store model
func (Store) TableName() string {
	return "stores"
}

// BeforeCreate hook assigns a uuid primary key
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// StoreUser links a user to a store with a role. The (store, user) pair is
// the authorization boundary for every session-authenticated endpoint.
type StoreUser struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	StoreID   string    `json:"store_id" gorm:"type:uuid;not null;uniqueIndex:idx_store_user"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_store_user"`
	Role      StoreRole `json:"role" gorm:"type:varchar(20);not null;default:'STAFF'" validate:"required,oneof=STAFF ADMIN SUPER_ADMIN"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Store Store `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}

// TableName specifies the table name for StoreUser model
func (StoreUser) TableName() string {
	return "store_users"
}
