// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"printshop/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a customer.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterShopOwnerInput defines the data required to register a shop owner.
// The shop itself is created afterwards through ShopUsecase.CreateShop.
type RegisterShopOwnerInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the ID token returned by Google Sign-In.
type GoogleLoginInput struct {
	Credential string
}

// --- Output DTOs ---

// AuthOutput is returned by every operation that opens a session.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines account registration and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)
	RegisterShopOwner(ctx context.Context, input *RegisterShopOwnerInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*AuthOutput, error)
	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
