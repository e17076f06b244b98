package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"membrostotal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCRUD(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	_, employeeToken := helpers.CreateUser(t, ts.DB, "colab@membros.dev", "Colab", "employee")

	var createdID uint

	t.Run("admin creates user", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/users", adminToken, map[string]interface{}{
			"email":     "novo@membros.dev",
			"password":  "senha-nova-123",
			"firstName": "Novo",
			"lastName":  "Usuário",
			"profile":   "employee",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		var out struct {
			Success bool `json:"success"`
			ID      uint `json:"id"`
		}
		decode(t, body, &out)
		assert.True(t, out.Success)
		require.NotZero(t, out.ID)
		createdID = out.ID
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/users", adminToken, map[string]interface{}{
			"email":     "novo@membros.dev",
			"password":  "senha-nova-123",
			"firstName": "Duplicado",
			"profile":   "employee",
		})
		assert.Equal(t, http.StatusConflict, res.StatusCode)
	})

	t.Run("admin gets user by id", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/users/%d", createdID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Email    string `json:"email"`
			FullName string `json:"fullName"`
			Profile  struct {
				Name string `json:"name"`
			} `json:"profile"`
		}
		decode(t, body, &out)
		assert.Equal(t, "novo@membros.dev", out.Email)
		assert.Equal(t, "Novo Usuário", out.FullName)
		assert.Equal(t, "employee", out.Profile.Name)
	})

	t.Run("admin lists users with pagination meta", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users?page=1&per_page=2", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Data []struct {
				ID uint `json:"id"`
			} `json:"data"`
			Meta struct {
				Total       int64 `json:"total"`
				CurrentPage int   `json:"currentPage"`
				PerPage     int   `json:"perPage"`
			} `json:"meta"`
		}
		decode(t, body, &out)
		assert.Len(t, out.Data, 2)
		assert.Equal(t, int64(3), out.Meta.Total)
		assert.Equal(t, 1, out.Meta.CurrentPage)
		assert.Equal(t, 2, out.Meta.PerPage)
	})

	t.Run("beyond-range page returns empty data", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users?page=99", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Data []interface{} `json:"data"`
			Meta struct {
				Total int64 `json:"total"`
			} `json:"meta"`
		}
		decode(t, body, &out)
		assert.Empty(t, out.Data)
		assert.Equal(t, int64(3), out.Meta.Total)
	})

	t.Run("admin updates user", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/users/%d", createdID), adminToken, map[string]interface{}{
			"firstName": "Renomeado",
			"status":    "inactive",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/users/%d", createdID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var out struct {
			FirstName string `json:"firstName"`
			Status    string `json:"status"`
		}
		decode(t, body, &out)
		assert.Equal(t, "Renomeado", out.FirstName)
		assert.Equal(t, "inactive", out.Status)
	})

	t.Run("non-admin cannot reach admin routes", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)

		res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/users/%d", createdID), employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("admin deletes user", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/users/%d", createdID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/users/%d", createdID), adminToken, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("admin lists profiles", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/profiles", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out []struct {
			Name string `json:"name"`
		}
		decode(t, body, &out)
		require.Len(t, out, 3)
	})
}

func TestMeEndpoints(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	user, token := helpers.CreateUser(t, ts.DB, "eu@membros.dev", "Eu", "employee")

	t.Run("get me", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/me", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		}
		decode(t, body, &out)
		assert.Equal(t, user.ID, out.ID)
		assert.Equal(t, user.Email, out.Email)
	})

	t.Run("update me", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/me", token, map[string]interface{}{
			"lastName": "Sobrenome",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/me", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var out struct {
			FullName string `json:"fullName"`
		}
		decode(t, body, &out)
		assert.Equal(t, "Eu Sobrenome", out.FullName)
	})

	t.Run("change password requires current password", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/me/password", token, map[string]string{
			"currentPassword": "errada",
			"newPassword":     "outra-senha-123",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/me/password", token, map[string]string{
			"currentPassword": helpers.DefaultPassword,
			"newPassword":     "outra-senha-123",
		})
		require.Equal(t, http.StatusOK, res.StatusCode)

		// Old password no longer works.
		res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth", "", map[string]string{
			"email":    user.Email,
			"password": helpers.DefaultPassword,
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

		res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth", "", map[string]string{
			"email":    user.Email,
			"password": "outra-senha-123",
		})
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}
