package middlewares

import (
	"context"
	"net/http"
	"strings"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// Authentication resolves the bearer token to a live session and stashes
// both the session id and the session record in the request context.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, constvars.AuthBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := strings.TrimPrefix(header, constvars.AuthBearerPrefix)

		sessionID, err := utils.ParseJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		raw, err := m.RedisRepository.Get(r.Context(), constvars.SessionKeyPrefix+sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if raw == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
			return
		}

		session := new(models.Session)
		if err := json.Unmarshal([]byte(raw), session); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionIDKey, sessionID)
		ctx = context.WithValue(ctx, constvars.ContextSessionDataKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
