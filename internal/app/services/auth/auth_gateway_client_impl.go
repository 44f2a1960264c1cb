package auth

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// authGatewayClient calls the external auth/profile REST API. Rejections
// arrive in two shapes: {"error": "..."} for business failures and
// {"errors": [{"param", "msg"}]} for field validation failures; both map to
// a client-facing message verbatim.
type authGatewayClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

type gatewayTokenResponse struct {
	AuthToken string `json:"authtoken"`
}

type gatewayErrorResponse struct {
	Error  string              `json:"error"`
	Errors []gatewayFieldError `json:"errors"`
}

type gatewayFieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

func NewAuthGatewayClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AuthGatewayClient {
	return &authGatewayClient{
		baseURL: strings.TrimRight(internalConfig.AuthAPI.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.AuthAPI.TimeoutSeconds) * time.Second,
		},
		log: logger,
	}
}

func (c *authGatewayClient) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	return c.postForToken(ctx, "/api/auth/login", payload)
}

func (c *authGatewayClient) Register(ctx context.Context, request *requests.RegisterUser) (string, error) {
	payload := map[string]string{
		"name":     request.Name,
		"phone":    request.Phone,
		"email":    request.Email,
		"password": request.Password,
		"role":     request.Role,
	}
	return c.postForToken(ctx, "/api/auth/register", payload)
}

func (c *authGatewayClient) GetUser(ctx context.Context, authToken, email string) (*models.UserProfile, error) {
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/user", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setAuthHeaders(httpRequest, authToken, email)

	body, err := c.send(httpRequest)
	if err != nil {
		return nil, err
	}

	profile := new(models.UserProfile)
	if err := json.Unmarshal(body, profile); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return profile, nil
}

func (c *authGatewayClient) UpdateUser(ctx context.Context, authToken, email string, profile *models.UserProfile) error {
	body, err := json.Marshal(profile)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/auth/user", bytes.NewReader(body))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	c.setAuthHeaders(httpRequest, authToken, email)

	_, err = c.send(httpRequest)
	return err
}

func (c *authGatewayClient) postForToken(ctx context.Context, path string, payload map[string]string) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	responseBody, err := c.send(httpRequest)
	if err != nil {
		return "", err
	}

	tokenResponse := new(gatewayTokenResponse)
	if err := json.Unmarshal(responseBody, tokenResponse); err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	if tokenResponse.AuthToken == "" {
		return "", exceptions.ErrAuthGatewayRejected(
			fmt.Errorf("gateway returned 200 without authtoken"),
			constvars.ErrClientAuthFailed,
		)
	}
	return tokenResponse.AuthToken, nil
}

func (c *authGatewayClient) setAuthHeaders(httpRequest *http.Request, authToken, email string) {
	httpRequest.Header.Set(constvars.HeaderAuthorization, constvars.AuthBearerPrefix+authToken)
	httpRequest.Header.Set(constvars.HeaderEmail, email)
}

func (c *authGatewayClient) send(httpRequest *http.Request) ([]byte, error) {
	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		c.log.Warn("auth gateway unreachable",
			zap.String(constvars.LoggingEndpointKey, httpRequest.URL.String()),
			zap.Error(err),
		)
		return nil, exceptions.ErrAuthGatewayUnreachable(err)
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, exceptions.ErrAuthGatewayUnreachable(err)
	}

	if httpResponse.StatusCode >= http.StatusBadRequest {
		return nil, c.rejectionError(httpResponse.StatusCode, body)
	}
	return body, nil
}

// rejectionError extracts the upstream failure message so the caller sees
// the gateway's own wording, falling back to a generic message when the
// payload is not one of the known shapes.
func (c *authGatewayClient) rejectionError(statusCode int, body []byte) error {
	rejection := new(gatewayErrorResponse)
	if err := json.Unmarshal(body, rejection); err == nil {
		if rejection.Error != "" {
			return exceptions.ErrAuthGatewayRejected(
				fmt.Errorf("gateway status %d: %s", statusCode, rejection.Error),
				rejection.Error,
			)
		}
		if len(rejection.Errors) > 0 {
			first := rejection.Errors[0]
			return exceptions.ErrAuthGatewayRejected(
				fmt.Errorf("gateway status %d: %s: %s", statusCode, first.Param, first.Msg),
				first.Msg,
			)
		}
	}
	return exceptions.ErrAuthGatewayRejected(
		fmt.Errorf("gateway status %d: %s", statusCode, string(body)),
		constvars.ErrClientAuthFailed,
	)
}
