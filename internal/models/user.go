package models

import "time"

type User struct {
	ID           int    `json:"id"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // nunca sai na API
	Role         string `json:"role"` // admin | user

	// refresh armazenado no banco
	RefreshToken     *string    `json:"-"` // string opaca
	RefreshExpiresAt *time.Time `json:"-"` // validade
	RefreshRevoked   bool       `json:"-"` // caso precise revogar

	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
