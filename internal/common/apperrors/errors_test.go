// internal/common/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *StandardError
		want int
	}{
		{"malformed request", NewMalformedRequestError("bad", ""), http.StatusBadRequest},
		{"field validation", NewFieldValidationError("email", "Email inválido"), http.StatusBadRequest},
		{"photo missing", NewPhotoMissingError("front"), http.StatusBadRequest},
		{"rate limit", NewRateLimitError(), http.StatusTooManyRequests},
		{"telegram send", NewTelegramSendError(nil), http.StatusInternalServerError},
		{"image decode", NewImageDecodeError("back", errors.New("boom")), http.StatusInternalServerError},
		{"internal", NewInternalError(nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestCallerFacingMessages(t *testing.T) {
	assert.Equal(t, "Foto selfie é obrigatória", NewPhotoMissingError("selfie").Message)
	assert.Equal(t, "Erro ao enviar para o Telegram", NewTelegramSendError(errors.New("dial tcp")).Message)
	assert.Equal(t, "Muitas requisições. Tente novamente mais tarde.", NewRateLimitError().Message)
	assert.Equal(t, "Erro interno do servidor", NewInternalError(errors.New("oops")).Message)
}

func TestDetailsStayOutOfMessage(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:443: connection refused")
	e := NewTelegramSendError(cause)

	assert.Equal(t, cause.Error(), e.Details)
	assert.NotContains(t, e.Message, "dial tcp")
	assert.True(t, e.Retryable)
}

func TestFieldValidationCarriesField(t *testing.T) {
	e := NewFieldValidationError("phone", "Número de telefone inválido")

	assert.Equal(t, ErrCodeFieldValidationFailed, e.Code)
	assert.Equal(t, "phone", e.Metadata["field"])
	assert.False(t, e.Retryable)
	assert.False(t, e.Timestamp.IsZero())
}

func TestErrorString(t *testing.T) {
	e := NewMalformedRequestError("Nenhum dado recebido", "")

	assert.Equal(t, "StandardError[MALFORMED_REQUEST]: Nenhum dado recebido", e.Error())
}
