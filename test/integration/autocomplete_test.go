package integration_test

import (
	"net/http"
	"testing"

	"membrostotal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutocomplete(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	user, employeeToken := helpers.CreateUser(t, ts.DB, "colab@membros.dev", "Colab", "employee")
	helpers.CreateUser(t, ts.DB, "expert@membros.dev", "Expert", "expert")

	_ = createSuccess(t, ts, adminToken, "/api/v1/admin/trainings", map[string]interface{}{
		"title": "Treinamento Base",
	})

	t.Run("returns only requested fields", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/autocomplete?fields=users,trainings", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Users []struct {
				ID    uint   `json:"id"`
				Label string `json:"label"`
			} `json:"users"`
			Experts   []interface{} `json:"experts"`
			Trainings []struct {
				Label string `json:"label"`
			} `json:"trainings"`
		}
		decode(t, body, &out)
		require.NotEmpty(t, out.Users)
		assert.Nil(t, out.Experts)
		require.Len(t, out.Trainings, 1)
		assert.Equal(t, "Treinamento Base", out.Trainings[0].Label)
	})

	t.Run("user options carry the full name", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/autocomplete?fields=users", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Users []struct {
				ID    uint   `json:"id"`
				Label string `json:"label"`
			} `json:"users"`
		}
		decode(t, body, &out)

		found := false
		for _, opt := range out.Users {
			if opt.ID == user.ID {
				found = true
				assert.Equal(t, user.FullName(), opt.Label)
			}
		}
		assert.True(t, found)
	})

	t.Run("experts lists only expert-profile users", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/autocomplete?fields=experts", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Experts []struct {
				Label string `json:"label"`
			} `json:"experts"`
		}
		decode(t, body, &out)
		require.Len(t, out.Experts, 1)
		assert.Equal(t, "Expert", out.Experts[0].Label)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/autocomplete?fields=bogus,profiles", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Profiles []struct {
				Label string `json:"label"`
			} `json:"profiles"`
		}
		decode(t, body, &out)
		assert.Len(t, out.Profiles, 3)
	})

	t.Run("empty fields yields empty object", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/autocomplete", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		assert.JSONEq(t, "{}", body)
	})

	t.Run("admin-only", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/autocomplete?fields=users", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})
}
