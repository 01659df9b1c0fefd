package tables

import (
	"time"

	"github.com/google/uuid"
)

type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type User struct {
	tableName    struct{}  `bun:"table:users,alias:u"`
	Id           uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Username     string    `json:"username" bun:"username,unique,notnull"`
	Email        string    `json:"email" bun:"email,unique,notnull"`
	PasswordHash string    `json:"-" bun:"password_hash,notnull"`
	Role         string    `json:"role" bun:"role,notnull,default:'user'"`

	// Phone is the OTP channel; checkout is refused while it is empty.
	Phone    string `json:"phone" bun:"phone"`
	IsSeller bool   `json:"is_seller" bun:"is_seller,notnull,default:false"`

	Addresses []*Address `json:"addresses,omitempty" bun:"rel:has-many,join:id=user_id"`

	LastLogin time.Time `json:"last_login" bun:"last_login,default:now()"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}

type Address struct {
	tableName  struct{}  `bun:"table:addresses,alias:a"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId     uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	Name       string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Street     string    `bun:"street,notnull" json:"street" validate:"required"`
	City       string    `bun:"city,notnull" json:"city" validate:"required"`
	State      string    `bun:"state" json:"state,omitempty"`
	PostalCode string    `bun:"postal_code,notnull" json:"postal_code" validate:"required"`
	Country    string    `bun:"country,notnull" json:"country" validate:"required"`
	IsDefault  bool      `bun:"is_default,notnull,default:false" json:"is_default"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt  time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
