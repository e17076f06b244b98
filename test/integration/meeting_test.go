package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"membrostotal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	invitee, inviteeToken := helpers.CreateUser(t, ts.DB, "convidado@membros.dev", "Convidado", "employee")
	_, strangerToken := helpers.CreateUser(t, ts.DB, "estranho@membros.dev", "Estranho", "employee")

	date := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	meetingID := createSuccess(t, ts, adminToken, "/api/v1/admin/meetings", map[string]interface{}{
		"title":       "Alinhamento semanal",
		"description": "Pauta aberta",
		"link":        "https://meet.membros.dev/alinhamento",
		"date":        date.Format(time.RFC3339),
		"userIds":     []uint{invitee.ID},
	})

	t.Run("create requires at least one invitee", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/meetings", adminToken, map[string]interface{}{
			"title":   "Vazia",
			"date":    date.Format(time.RFC3339),
			"userIds": []uint{},
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("invitee sees the meeting", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/meetings", inviteeToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Data []struct {
				ID     uint   `json:"id"`
				Status string `json:"status"`
			} `json:"data"`
		}
		decode(t, body, &out)
		require.Len(t, out.Data, 1)
		assert.Equal(t, meetingID, out.Data[0].ID)
		assert.Equal(t, "pending", out.Data[0].Status)
	})

	t.Run("stranger cannot read it", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/meetings/%d", meetingID), strangerToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)

		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/meetings", strangerToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var out struct {
			Data []interface{} `json:"data"`
		}
		decode(t, body, &out)
		assert.Empty(t, out.Data)
	})

	t.Run("admin cancels a pending meeting", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/meetings/%d/cancel", meetingID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/meetings/%d", meetingID), inviteeToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var out struct {
			Status string `json:"status"`
		}
		decode(t, body, &out)
		assert.Equal(t, "canceled", out.Status)
	})

	t.Run("final meetings reject further transitions", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/meetings/%d/done", meetingID), adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}
