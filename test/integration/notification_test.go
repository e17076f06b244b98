package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"membrostotal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	target, targetToken := helpers.CreateUser(t, ts.DB, "alvo@membros.dev", "Alvo", "employee")
	_, bystanderToken := helpers.CreateUser(t, ts.DB, "outro@membros.dev", "Outro", "employee")

	var notificationID uint

	t.Run("admin notifies a user list", func(t *testing.T) {
		notificationID = createSuccess(t, ts, adminToken, "/api/v1/admin/notifications", map[string]interface{}{
			"title":       "Nova aula disponível",
			"description": "Confira o módulo 2",
			"userIds":     []uint{target.ID},
		})
	})

	t.Run("recipients list is empty without targets or all", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/notifications", adminToken, map[string]interface{}{
			"title":   "Sem destino",
			"userIds": []uint{},
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("target sees it unread", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications?unread=true", targetToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Data []struct {
				ID    uint   `json:"id"`
				Title string `json:"title"`
				Read  bool   `json:"read"`
			} `json:"data"`
		}
		decode(t, body, &out)
		require.Len(t, out.Data, 1)
		assert.Equal(t, notificationID, out.Data[0].ID)
		assert.Equal(t, "Nova aula disponível", out.Data[0].Title)
		assert.False(t, out.Data[0].Read)

		res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", targetToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var count struct {
			Unread int64 `json:"unread"`
		}
		decode(t, body, &count)
		assert.Equal(t, int64(1), count.Unread)
	})

	t.Run("bystander sees nothing", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", bystanderToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Data []interface{} `json:"data"`
		}
		decode(t, body, &out)
		assert.Empty(t, out.Data)
	})

	t.Run("mark as read clears the unread count", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/notifications/%d/read", notificationID), targetToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", targetToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var count struct {
			Unread int64 `json:"unread"`
		}
		decode(t, body, &count)
		assert.Zero(t, count.Unread)

		res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications?unread=true", targetToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var unread struct {
			Data []interface{} `json:"data"`
		}
		decode(t, body, &unread)
		assert.Empty(t, unread.Data)
	})

	t.Run("marking someone else's notification fails", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/notifications/%d/read", notificationID), bystanderToken, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("broadcast reaches every active user", func(t *testing.T) {
		_ = createSuccess(t, ts, adminToken, "/api/v1/admin/notifications", map[string]interface{}{
			"title": "Aviso geral",
			"all":   true,
		})

		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", bystanderToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var out struct {
			Data []struct {
				Title string `json:"title"`
			} `json:"data"`
		}
		decode(t, body, &out)
		require.Len(t, out.Data, 1)
		assert.Equal(t, "Aviso geral", out.Data[0].Title)
	})
}
