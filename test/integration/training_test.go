package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSuccess(t *testing.T, ts *helpers.TestServer, token, path string, payload interface{}) uint {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodPost, path, token, payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var out struct {
		ID uint `json:"id"`
	}
	decode(t, body, &out)
	require.NotZero(t, out.ID)
	return out.ID
}

func TestTrainingHierarchy(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	member, memberToken := helpers.CreateUser(t, ts.DB, "membro@membros.dev", "Membro", "employee")
	_, outsiderToken := helpers.CreateUser(t, ts.DB, "fora@membros.dev", "Fora", "employee")

	trainingID := createSuccess(t, ts, adminToken, "/api/v1/admin/trainings", map[string]interface{}{
		"title":       "Treinamento Completo",
		"description": "Do zero ao avançado",
		"order":       1,
	})
	moduleID := createSuccess(t, ts, adminToken, "/api/v1/admin/modules", map[string]interface{}{
		"trainingId": trainingID,
		"title":      "Módulo 1",
		"order":      1,
	})
	subModuleID := createSuccess(t, ts, adminToken, "/api/v1/admin/submodules", map[string]interface{}{
		"moduleId": moduleID,
		"title":    "Submódulo 1",
		"order":    1,
	})
	lessonID := createSuccess(t, ts, adminToken, "/api/v1/admin/lessons", map[string]interface{}{
		"subModuleId": subModuleID,
		"title":       "Aula 1",
		"content":     "https://videos.membros.dev/aula-1",
		"order":       1,
	})

	t.Run("child create validates parent", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/modules", adminToken, map[string]interface{}{
			"trainingId": 9999,
			"title":      "Órfão",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("grant users to training", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/trainings/%d/users", trainingID), adminToken, map[string]interface{}{
			"userIds": []uint{member.ID},
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)
	})

	t.Run("member sees granted training, outsider does not", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/trainings", memberToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var mine []struct {
			ID uint `json:"id"`
		}
		decode(t, body, &mine)
		require.Len(t, mine, 1)
		assert.Equal(t, trainingID, mine[0].ID)

		res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/trainings", outsiderToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var theirs []struct {
			ID uint `json:"id"`
		}
		decode(t, body, &theirs)
		assert.Empty(t, theirs)
	})

	t.Run("admin sees every training", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/trainings", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var all []struct {
			ID uint `json:"id"`
		}
		decode(t, body, &all)
		assert.Len(t, all, 1)
	})

	t.Run("module list requires training_id", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/modules", adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/modules?training_id=%d", trainingID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var mods []struct {
			ID uint `json:"id"`
		}
		decode(t, body, &mods)
		require.Len(t, mods, 1)
		assert.Equal(t, moduleID, mods[0].ID)
	})

	t.Run("lesson list by submodule", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/lessons?submodule_id=%d", subModuleID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var lessons []struct {
			ID      uint   `json:"id"`
			Content string `json:"content"`
		}
		decode(t, body, &lessons)
		require.Len(t, lessons, 1)
		assert.Equal(t, lessonID, lessons[0].ID)
		assert.Equal(t, "https://videos.membros.dev/aula-1", lessons[0].Content)
	})

	t.Run("non-admin cannot mutate content", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/trainings", memberToken, map[string]interface{}{
			"title": "Invasor",
		})
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("deleting training cascades the whole tree", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/trainings/%d", trainingID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var count int64
		require.NoError(t, ts.DB.Model(&models.Module{}).Count(&count).Error)
		assert.Zero(t, count)
		require.NoError(t, ts.DB.Model(&models.SubModule{}).Count(&count).Error)
		assert.Zero(t, count)
		require.NoError(t, ts.DB.Model(&models.Lesson{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
