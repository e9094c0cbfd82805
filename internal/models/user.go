package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// for registration
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,e164"`
}

type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
}

type RequestOTPResponse struct {
	Sent           bool   `json:"sent"`
	Message        string `json:"message,omitempty"`
	RemainingTries int    `json:"remaining_tries,omitempty"`
	RetryAfter     int    `json:"retry_after,omitempty"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code" validate:"required,numeric,min=4,max=8"`
}

// VerifyOTPResult is what the upstream auth service hands back.
type VerifyOTPResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
	User      *User  `json:"user,omitempty"`
}

// JWT claims structure
type Claims struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    string    `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}
