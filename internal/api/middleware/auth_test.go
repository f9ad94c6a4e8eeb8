package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduleService/pkg/logger"
)

const testSecret = "test-secret"

func issueToken(secret string, adminID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    adminID.String(),
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func protectedHandler(t *testing.T, wantID uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetAdminID(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantID, id)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthAcceptsCookieAndBearer(t *testing.T) {
	adminID := uuid.New()
	token, err := issueToken(testSecret, adminID, "admin@salon.test", time.Hour)
	require.NoError(t, err)

	h := Auth(testSecret, "", logger.NewNop())(protectedHandler(t, adminID))

	cookieReq := httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil)
	cookieReq.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: token})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, cookieReq)
	assert.Equal(t, http.StatusOK, w.Code)

	bearerReq := httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil)
	bearerReq.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, bearerReq)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRejects(t *testing.T) {
	adminID := uuid.New()
	expired, err := issueToken(testSecret, adminID, "admin@salon.test", -time.Minute)
	require.NoError(t, err)
	foreign, err := issueToken("other-secret", adminID, "admin@salon.test", time.Hour)
	require.NoError(t, err)
	badID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: "42"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing"},
		{name: "expired", header: "Bearer " + expired},
		{name: "wrong secret", header: "Bearer " + foreign},
		{name: "non uuid id", header: "Bearer " + badID},
		{name: "garbage", header: "Bearer not-a-token"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})
	h := Auth(testSecret, DefaultCookieName, logger.NewNop())(next)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/closed-dates", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAdminIDContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetAdminID(r.Context())
	assert.False(t, ok)

	adminID := uuid.New()
	id, ok := GetAdminID(WithAdminID(r.Context(), adminID))
	assert.True(t, ok)
	assert.Equal(t, adminID, id)
}
