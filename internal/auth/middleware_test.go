package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/user"
	"bloghub/models"
)

type stubUserStore struct {
	users map[uint]*models.User
}

func (s *stubUserStore) Register(email, password, name string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserStore) Authenticate(email, password string) (*models.User, error) {
	return nil, user.ErrInvalidCredentials
}

func (s *stubUserStore) ByID(id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newTestRouter(store user.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(store))
	r.GET("/whoami", func(c *gin.Context) {
		if u := CurrentUser(c); u != nil {
			c.String(http.StatusOK, u.Email)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret_key_for_jwt")

	alice := &models.User{Email: "alice@example.com", Name: "Alice"}
	alice.ID = 1
	store := &stubUserStore{users: map[uint]*models.User{1: alice}}
	r := newTestRouter(store)

	t.Run("No cookie means anonymous", func(t *testing.T) {
		w := get(r, "/whoami")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("Valid session cookie resolves the user", func(t *testing.T) {
		token, err := IssueToken(1)
		require.NoError(t, err)

		w := get(r, "/whoami", &http.Cookie{Name: SessionCookieName, Value: token})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice@example.com", w.Body.String())
	})

	t.Run("Invalid token falls back to anonymous", func(t *testing.T) {
		w := get(r, "/whoami", &http.Cookie{Name: SessionCookieName, Value: "bogus"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("Token for a deleted user falls back to anonymous", func(t *testing.T) {
		token, err := IssueToken(999)
		require.NoError(t, err)

		w := get(r, "/whoami", &http.Cookie{Name: SessionCookieName, Value: token})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret_key_for_jwt")

	admin := &models.User{Email: "admin@example.com", Name: "Admin", IsAdmin: true}
	admin.ID = 1
	regular := &models.User{Email: "bob@example.com", Name: "Bob"}
	regular.ID = 2
	store := &stubUserStore{users: map[uint]*models.User{1: admin, 2: regular}}
	r := newTestRouter(store)

	t.Run("Anonymous gets 403", func(t *testing.T) {
		w := get(r, "/admin")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Non-admin gets 403", func(t *testing.T) {
		token, err := IssueToken(2)
		require.NoError(t, err)

		w := get(r, "/admin", &http.Cookie{Name: SessionCookieName, Value: token})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin passes", func(t *testing.T) {
		token, err := IssueToken(1)
		require.NoError(t, err)

		w := get(r, "/admin", &http.Cookie{Name: SessionCookieName, Value: token})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})
}
