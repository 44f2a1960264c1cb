package contracts

import (
	"context"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
)

// AuthGatewayClient talks to the external auth/profile REST API. The bearer
// token it returns is treated as an opaque credential.
type AuthGatewayClient interface {
	Login(ctx context.Context, email, password string) (authToken string, err error)
	Register(ctx context.Context, request *requests.RegisterUser) (authToken string, err error)
	GetUser(ctx context.Context, authToken, email string) (*models.UserProfile, error)
	UpdateUser(ctx context.Context, authToken, email string, profile *models.UserProfile) error
}

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.LoginResponse, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, sessionID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdateProfile) (*models.UserProfile, error)
}
