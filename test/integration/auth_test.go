package integration_test

import (
	"net/http"
	"testing"

	"membrostotal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	user, _ := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")

	t.Run("valid credentials", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth", "", map[string]string{
			"email":    user.Email,
			"password": helpers.DefaultPassword,
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Token string `json:"token"`
			User  struct {
				ID    uint   `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		}
		decode(t, body, &out)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, user.ID, out.User.ID)
		assert.Equal(t, user.Email, out.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth", "", map[string]string{
			"email":    user.Email,
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("unknown email", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth", "", map[string]string{
			"email":    "nobody@membros.dev",
			"password": helpers.DefaultPassword,
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("inactive user is rejected", func(t *testing.T) {
		inactive, _ := helpers.CreateUser(t, ts.DB, "inativo@membros.dev", "Inativo", "")
		require.NoError(t, ts.DB.Model(inactive).Update("status", "inactive").Error)

		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth", "", map[string]string{
			"email":    inactive.Email,
			"password": helpers.DefaultPassword,
		})
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth", "", map[string]string{
			"email": "admin@membros.dev",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
