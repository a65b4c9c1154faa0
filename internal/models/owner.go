package models

import "time"

// Roles carried in session tokens
const (
	RoleOwner    = "owner"
	RoleSalesman = "salesman"
)

// Owner represents the shop owner account stored under the "user" key.
// There is exactly one owner per installation.
type Owner struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OwnerRegistration represents the data needed to set up the owner account
type OwnerRegistration struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Mobile   string `json:"mobile" validate:"required,mobile"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// OwnerLogin represents owner login credentials
type OwnerLogin struct {
	Mobile   string `json:"mobile" validate:"required,mobile"`
	Password string `json:"password" validate:"required,max=128"`
}
