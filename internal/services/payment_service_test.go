package services

import (
	"testing"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardNotTerminal(t *testing.T) {
	assert.NoError(t, guardNotTerminal(models.PaymentStatusPending, "payment"))
	assert.NoError(t, guardNotTerminal(models.PaymentStatusApproved, "payment"))

	for _, status := range []models.PaymentStatus{
		models.PaymentStatusPaid,
		models.PaymentStatusCancelled,
	} {
		err := guardNotTerminal(status, "payment")
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
		assert.Contains(t, appErr.Message, string(status))
	}
}

func TestRequireCancelReason(t *testing.T) {
	assert.NoError(t, requireCancelReason("Pagamento duplicado", "payment"))

	for _, reason := range []string{"", "   ", "\t\n"} {
		err := requireCancelReason(reason, "payment")
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
	}
}
