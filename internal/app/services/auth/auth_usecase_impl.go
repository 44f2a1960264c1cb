package auth

import (
	"context"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthUsecase exchanges gateway credentials for local sessions. The upstream
// bearer token is never handed to clients; it lives inside the session
// record and the client gets a signed token carrying only the session id.
type AuthUsecase struct {
	gateway contracts.AuthGatewayClient
	redis   contracts.RedisRepository
	config  *config.InternalConfig
	log     *zap.Logger
}

func NewAuthUsecase(
	gatewayClient contracts.AuthGatewayClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		gateway: gatewayClient,
		redis:   redisRepository,
		config:  internalConfig,
		log:     logger,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.LoginResponse, error) {
	utils.SanitizeRegisterUserRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	authToken, err := u.gateway.Register(ctx, request)
	if err != nil {
		return nil, err
	}

	return u.openSession(ctx, request.Email, request.Name, request.Phone, request.Role, authToken)
}

func (u *AuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginResponse, error) {
	utils.SanitizeLoginUserRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	authToken, err := u.gateway.Login(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	profile, err := u.gateway.GetUser(ctx, authToken, request.Email)
	if err != nil {
		return nil, err
	}

	return u.openSession(ctx, request.Email, profile.Name, profile.Phone, constvars.RolePatient, authToken)
}

func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.redis.Delete(ctx, constvars.SessionKeyPrefix+sessionID); err != nil {
		return err
	}
	u.log.Info("session closed", zap.String(constvars.LoggingSessionIDKey, sessionID))
	return nil
}

func (u *AuthUsecase) GetProfile(ctx context.Context, sessionID string) (*models.UserProfile, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.gateway.GetUser(ctx, session.AuthToken, session.Email)
}

func (u *AuthUsecase) UpdateProfile(ctx context.Context, sessionID string, request *requests.UpdateProfile) (*models.UserProfile, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		Name:  request.Name,
		Phone: request.Phone,
		Email: session.Email,
	}
	if err := u.gateway.UpdateUser(ctx, session.AuthToken, session.Email, profile); err != nil {
		return nil, err
	}

	// Mirror the new values into the session so later reads do not serve
	// the pre-update name.
	session.Name = request.Name
	session.Phone = request.Phone
	if err := u.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return profile, nil
}

func (u *AuthUsecase) openSession(ctx context.Context, email, name, phone, role, authToken string) (*responses.LoginResponse, error) {
	expTime := time.Duration(u.config.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: uuid.NewString(),
		Email:     email,
		Name:      name,
		Phone:     phone,
		Role:      role,
		AuthToken: authToken,
		ExpiresAt: time.Now().Add(expTime),
	}
	if err := u.saveSession(ctx, session); err != nil {
		return nil, err
	}

	signedToken, err := utils.GenerateJWT(session.SessionID, u.config.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	u.log.Info("session opened",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String("role", role),
	)

	return &responses.LoginResponse{
		Token: signedToken,
		Email: email,
		Name:  name,
		Role:  role,
	}, nil
}

func (u *AuthUsecase) saveSession(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	return u.redis.Set(ctx, constvars.SessionKeyPrefix+session.SessionID, session, ttl)
}

func (u *AuthUsecase) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	raw, err := u.redis.Get(ctx, constvars.SessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(raw), session); err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	return session, nil
}
