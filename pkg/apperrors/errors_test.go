package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("no rows in result set")
	appErr := ErrNotFound(cause)

	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.True(t, Is(appErr, cause))

	var target *AppError
	require.True(t, As(appErr, &target))
	assert.Same(t, appErr, target)
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	inner := ErrInvalidStatus("payment", "Registro já está em status final: paid")

	appErr, ok := AsAppError(inner)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidStatus, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := InternalError(errors.New("dial tcp: connection refused"))
	appErr.Details = map[string]string{"campo": "mensagem"}

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, string(CodeInternalError), out["code"])
	assert.NotContains(t, out, "HTTPCode")
	assert.NotContains(t, string(raw), "connection refused")
}

func TestValidationErrorCarriesFieldMap(t *testing.T) {
	details := map[string]string{"email": "Campo obrigatório"}
	appErr := ValidationError(details)

	assert.Equal(t, CodeValidationFailed, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}
