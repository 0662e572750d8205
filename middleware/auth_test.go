package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"locallink/config"
	"locallink/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func newAuthRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{Auth()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		principal, _ := PrincipalFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": principal.ID, "role": principal.Role})
	})
	r.GET("/protected", chain...)
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAcceptsValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newAuthRouter()

	token := signToken(t, "test-secret", jwt.MapClaims{"sub": "user-1", "role": models.RoleSeeker})
	w := request(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
}

func TestAuthRejectsBadTokens(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newAuthRouter()

	cases := map[string]string{
		"missing header":  "",
		"not bearer":      "Basic abc",
		"empty token":     "Bearer ",
		"wrong secret":    "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"sub": "user-1", "role": models.RoleSeeker}),
		"missing subject": "Bearer " + signToken(t, "test-secret", jwt.MapClaims{"role": models.RoleSeeker}),
		"missing role":    "Bearer " + signToken(t, "test-secret", jwt.MapClaims{"sub": "user-1"}),
	}
	for name, header := range cases {
		if w := request(r, header); w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", name, w.Code)
		}
	}
}

func TestRequireRole(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newAuthRouter(RequireRole(models.RoleAdmin))

	seekerToken := signToken(t, "test-secret", jwt.MapClaims{"sub": "user-1", "role": models.RoleSeeker})
	if w := request(r, "Bearer "+seekerToken); w.Code != http.StatusForbidden {
		t.Errorf("seeker on admin route: status = %d, want 403", w.Code)
	}

	adminToken := signToken(t, "test-secret", jwt.MapClaims{"sub": "admin-1", "role": models.RoleAdmin})
	if w := request(r, "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want 200", w.Code)
	}
}
