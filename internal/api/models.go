package api

import (
	"github.com/bukness/bukness-api/internal/domain"
)

// Request/response structures. JSON field names are capitalized because they
// are part of the API's historical wire format.

// UserPayload defines the body for the registration and profile update
// endpoints. The field rules live in userPayloadErrors, which evaluates each
// one independently so every broken rule is reported.
type UserPayload struct {
	Name     string      `json:"Name"`
	Password string      `json:"Password"`
	Email    string      `json:"Email"`
	Birthday domain.Date `json:"Birthday"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Name     string `json:"Name"     validate:"required"`
	Password string `json:"Password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint:
// the authenticated user and a bearer token for subsequent requests.
type LoginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// FieldError describes a single failed validation rule, in the shape the
// API has always produced.
type FieldError struct {
	Value    interface{} `json:"value"`
	Msg      string      `json:"msg"`
	Param    string      `json:"param"`
	Location string      `json:"location"`
}

// ValidationErrorResponse is the 422 body listing every failed rule, not
// just the first.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
