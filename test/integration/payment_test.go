package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"membrostotal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	member, memberToken := helpers.CreateUser(t, ts.DB, "membro@membros.dev", "Membro", "employee")
	_, otherToken := helpers.CreateUser(t, ts.DB, "outro@membros.dev", "Outro", "employee")
	paymentType := helpers.FirstPaymentType(t, ts.DB)

	var paymentID uint

	t.Run("member creates own payment", func(t *testing.T) {
		paymentID = createSuccess(t, ts, memberToken, "/api/v1/payments", map[string]interface{}{
			"paymentTypeId": paymentType.ID,
			"value":         150.50,
			"description":   "Mensalidade de agosto",
		})
	})

	t.Run("new payment starts pending", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/payments/%d", paymentID), memberToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			UserID uint    `json:"userId"`
			Status string  `json:"status"`
			Value  float64 `json:"value"`
		}
		decode(t, body, &out)
		assert.Equal(t, member.ID, out.UserID)
		assert.Equal(t, "pending", out.Status)
		assert.Equal(t, 150.50, out.Value)
	})

	t.Run("other user cannot read it", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/payments/%d", paymentID), otherToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("own list only shows own records", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/payments", otherToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Data []interface{} `json:"data"`
		}
		decode(t, body, &out)
		assert.Empty(t, out.Data)
	})

	t.Run("value must be positive", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/payments", memberToken, map[string]interface{}{
			"paymentTypeId": paymentType.ID,
			"value":         -10,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("cancel without reason is rejected", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/payments/%d/cancel", paymentID), adminToken, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("admin marks payment paid", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/payments/%d/pay", paymentID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/payments/%d", paymentID), memberToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var out struct {
			Status string  `json:"status"`
			PaidAt *string `json:"paidAt"`
		}
		decode(t, body, &out)
		assert.Equal(t, "paid", out.Status)
		assert.NotNil(t, out.PaidAt)
	})

	t.Run("terminal payment rejects further transitions", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/payments/%d/cancel", paymentID), adminToken, map[string]string{
			"reason": "Pagamento duplicado",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		res, _ = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/payments/%d/pay", paymentID), adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("admin list filters by status", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/payments?status=paid", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var out struct {
			Data []struct {
				ID uint `json:"id"`
			} `json:"data"`
			Meta struct {
				Total int64 `json:"total"`
			} `json:"meta"`
		}
		decode(t, body, &out)
		require.Len(t, out.Data, 1)
		assert.Equal(t, paymentID, out.Data[0].ID)
		assert.Equal(t, int64(1), out.Meta.Total)
	})
}

func TestPaymentRequestApproval(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	_, memberToken := helpers.CreateUser(t, ts.DB, "membro@membros.dev", "Membro", "employee")
	paymentType := helpers.FirstPaymentType(t, ts.DB)

	requestID := createSuccess(t, ts, memberToken, "/api/v1/payment-requests", map[string]interface{}{
		"paymentTypeId": paymentType.ID,
		"value":         300.0,
		"description":   "Reembolso de viagem",
	})

	t.Run("approve moves pending to approved", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/payment-requests/%d/approve", requestID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/payment-requests/%d", requestID), memberToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var out struct {
			Status string `json:"status"`
		}
		decode(t, body, &out)
		assert.Equal(t, "approved", out.Status)
	})

	t.Run("approve is pending-only", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/payment-requests/%d/approve", requestID), adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("approved request can be paid", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/payment-requests/%d/pay", requestID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
	})
}

func TestRefundLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, adminToken := helpers.CreateAdmin(t, ts.DB, "admin@membros.dev")
	_, memberToken := helpers.CreateUser(t, ts.DB, "membro@membros.dev", "Membro", "employee")
	paymentType := helpers.FirstPaymentType(t, ts.DB)

	refundID := createSuccess(t, ts, memberToken, "/api/v1/refunds", map[string]interface{}{
		"paymentTypeId": paymentType.ID,
		"value":         80.0,
		"description":   "Estorno parcial",
	})

	t.Run("cancel records the reason", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/refunds/%d/cancel", refundID), adminToken, map[string]string{
			"reason": "Solicitação indevida",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/refunds/%d", refundID), memberToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var out struct {
			Status       string `json:"status"`
			CancelReason string `json:"cancelReason"`
		}
		decode(t, body, &out)
		assert.Equal(t, "cancelled", out.Status)
		assert.Equal(t, "Solicitação indevida", out.CancelReason)
	})

	t.Run("cancelled refund cannot be paid", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/refunds/%d/pay", refundID), adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}
