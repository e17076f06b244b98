package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"membrostotal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpertRequestIntake(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	_, employeeToken := helpers.CreateUser(t, ts.DB, "colab@membros.dev", "Colab", "employee")

	var requestID uint

	t.Run("public submit without token", func(t *testing.T) {
		requestID = createSuccess(t, ts, "", "/api/v1/expert-requests", map[string]interface{}{
			"name":      "Maria Especialista",
			"email":     "maria@exemplo.dev",
			"whatsapp":  "+5511999990000",
			"instagram": "@maria",
			"niche":     "marketing",
			"answers":   json.RawMessage(`{"experiencia":"5 anos","publico":"infoprodutores"}`),
		})
	})

	t.Run("name and email are required", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/expert-requests", "", map[string]interface{}{
			"email": "sem-nome@exemplo.dev",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("admin reads submissions with answers intact", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/expert-requests/%d", requestID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Name    string          `json:"name"`
			Email   string          `json:"email"`
			Answers json.RawMessage `json:"answers"`
		}
		decode(t, body, &out)
		assert.Equal(t, "Maria Especialista", out.Name)
		assert.Equal(t, "maria@exemplo.dev", out.Email)

		var answers map[string]string
		require.NoError(t, json.Unmarshal(out.Answers, &answers))
		assert.Equal(t, "5 anos", answers["experiencia"])
	})

	t.Run("non-admin cannot read submissions", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/expert-requests", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("admin deletes a submission", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/expert-requests/%d", requestID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/expert-requests/%d", requestID), adminToken, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestUtmIntake(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	_, employeeToken := helpers.CreateUser(t, ts.DB, "colab@membros.dev", "Colab", "employee")

	t.Run("public capture without token", func(t *testing.T) {
		_ = createSuccess(t, ts, "", "/api/v1/utm", map[string]interface{}{
			"utmSource":   "instagram",
			"utmMedium":   "bio",
			"utmCampaign": "lancamento-agosto",
			"extra":       json.RawMessage(`{"landing":"/oferta"}`),
		})
	})

	t.Run("admin lists captures", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/utm", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Data []struct {
				UtmSource   string `json:"utmSource"`
				UtmCampaign string `json:"utmCampaign"`
			} `json:"data"`
		}
		decode(t, body, &out)
		require.Len(t, out.Data, 1)
		assert.Equal(t, "instagram", out.Data[0].UtmSource)
		assert.Equal(t, "lancamento-agosto", out.Data[0].UtmCampaign)
	})

	t.Run("listing is admin-only", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/utm", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})
}
