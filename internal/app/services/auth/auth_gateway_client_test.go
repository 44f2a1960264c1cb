package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGatewayClient(serverURL string) *authGatewayClient {
	internalConfig := &config.InternalConfig{
		AuthAPI: config.AuthAPI{BaseURL: serverURL, TimeoutSeconds: 2},
	}
	return NewAuthGatewayClient(internalConfig, zap.NewNop()).(*authGatewayClient)
}

func TestLoginReturnsAuthToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])
		assert.Equal(t, "secret123", body["password"])

		w.Write([]byte(`{"authtoken":"tok-abc"}`))
	}))
	defer server.Close()

	client := newTestGatewayClient(server.URL)
	token, err := client.Login(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestLoginRejectionShapes(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		clientMessage string
	}{
		{
			name:          "single error field",
			status:        http.StatusUnauthorized,
			body:          `{"error":"Invalid credentials"}`,
			clientMessage: "Invalid credentials",
		},
		{
			name:          "field errors array",
			status:        http.StatusBadRequest,
			body:          `{"errors":[{"param":"email","msg":"Please enter a valid email"},{"param":"password","msg":"too short"}]}`,
			clientMessage: "Please enter a valid email",
		},
		{
			name:          "unrecognized body",
			status:        http.StatusBadGateway,
			body:          `upstream blew up`,
			clientMessage: constvars.ErrClientAuthFailed,
		},
		{
			name:          "ok status without token",
			status:        http.StatusOK,
			body:          `{}`,
			clientMessage: constvars.ErrClientAuthFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestGatewayClient(server.URL)
			_, err := client.Login(context.Background(), "jane@example.com", "bad")
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
			assert.Equal(t, tt.clientMessage, customErr.ClientMessage)
		})
	}
}

func TestGetUserSendsAuthHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/user", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get(constvars.HeaderAuthorization))
		assert.Equal(t, "jane@example.com", r.Header.Get(constvars.HeaderEmail))

		w.Write([]byte(`{"name":"Jane Roe","phone":"1234567890","email":"jane@example.com"}`))
	}))
	defer server.Close()

	client := newTestGatewayClient(server.URL)
	profile, err := client.GetUser(context.Background(), "tok-abc", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", profile.Name)
	assert.Equal(t, "1234567890", profile.Phone)
}

func TestUpdateUserSendsProfileBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get(constvars.HeaderAuthorization))

		var profile models.UserProfile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&profile))
		assert.Equal(t, "Jane Updated", profile.Name)

		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestGatewayClient(server.URL)
	err := client.UpdateUser(context.Background(), "tok-abc", "jane@example.com", &models.UserProfile{
		Name:  "Jane Updated",
		Phone: "0987654321",
		Email: "jane@example.com",
	})
	assert.NoError(t, err)
}

func TestGatewayUnreachableMapsToBadGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestGatewayClient(server.URL)
	_, err := client.Login(context.Background(), "jane@example.com", "secret123")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}
