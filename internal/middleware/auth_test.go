package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"visitreg/internal/config"
	"visitreg/internal/dto"
	"visitreg/internal/infra"
	"visitreg/internal/model"
	"visitreg/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Single-user repository stub, enough to drive the auth service.
type singleUserRepo struct{ user *model.User }

func (r *singleUserRepo) Create(_ context.Context, _ *model.User) error { return nil }

func (r *singleUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *singleUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// newAuthFixture builds a real auth service over in-memory stores, logs the
// seeded user in, and returns the service plus a live bearer token.
func newAuthFixture(t *testing.T, role string) (service.AuthService, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &singleUserRepo{user: &model.User{
		ID: uuid.New(), Name: "Fixture User", Email: "fixture@example.com",
		PasswordHash: string(hash), Role: role,
	}}
	svc := service.NewAuthService(repo, infra.NewMemoryTokenStore(), &config.Config{BcryptCost: bcrypt.MinCost})

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "fixture@example.com", Password: "password123",
	})
	require.NoError(t, err)
	return svc, resp.AccessToken
}

func newProtectedRouter(auth service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/", TokenAuth(auth))
	protected.GET("/me", func(c *gin.Context) {
		identity := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"role": identity.Role})
	})
	protected.DELETE("/admin-only", RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenAuth_MissingHeader(t *testing.T) {
	auth, _ := newAuthFixture(t, model.RoleAgent)
	r := newProtectedRouter(auth)

	w := doRequest(r, http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuth_MalformedHeader(t *testing.T) {
	auth, token := newAuthFixture(t, model.RoleAgent)
	r := newProtectedRouter(auth)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token "+token) // wrong scheme
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuth_UnknownToken(t *testing.T) {
	auth, _ := newAuthFixture(t, model.RoleAgent)
	r := newProtectedRouter(auth)

	w := doRequest(r, http.MethodGet, "/me", "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuth_ValidToken(t *testing.T) {
	auth, token := newAuthFixture(t, model.RoleAgent)
	r := newProtectedRouter(auth)

	w := doRequest(r, http.MethodGet, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"agent"`)
}

func TestTokenAuth_RevokedTokenRejected(t *testing.T) {
	auth, token := newAuthFixture(t, model.RoleAgent)
	r := newProtectedRouter(auth)

	// Token works before logout.
	w := doRequest(r, http.MethodGet, "/me", token)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, auth.Logout(context.Background(), token))

	// And is rejected after.
	w = doRequest(r, http.MethodGet, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_AgentForbidden(t *testing.T) {
	auth, token := newAuthFixture(t, model.RoleAgent)
	r := newProtectedRouter(auth)

	w := doRequest(r, http.MethodDelete, "/admin-only", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	auth, token := newAuthFixture(t, model.RoleAdmin)
	r := newProtectedRouter(auth)

	w := doRequest(r, http.MethodDelete, "/admin-only", token)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
