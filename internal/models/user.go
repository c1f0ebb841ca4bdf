package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleMember is the only role the service issues. There is no role
// differentiation; every authenticated user carries this value.
const RoleMember = 2

type User struct {
	ID    int64  `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string `db:"password" json:"-"`
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   int    `json:"role"`
	jwt.RegisteredClaims
}
