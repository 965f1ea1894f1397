package response

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/logger"
)

// JSON sends payload as a JSON response
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Error sends {"error": message}
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Message sends {"message": message}
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// Text sends a plaintext body
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// Failure writes err as {"error": ...} with the status of its apperror kind.
// Internal errors are logged and replaced by internalMsg.
func Failure(ctx context.Context, w http.ResponseWriter, err error, internalMsg string) {
	writeFailure(ctx, w, err, internalMsg, Error)
}

// FailureMessage is Failure with a {"message": ...} body
func FailureMessage(ctx context.Context, w http.ResponseWriter, err error, internalMsg string) {
	writeFailure(ctx, w, err, internalMsg, Message)
}

func writeFailure(ctx context.Context, w http.ResponseWriter, err error, internalMsg string, write func(http.ResponseWriter, int, string)) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(ctx).Err(err).Msg(internalMsg)
		write(w, status, internalMsg)
		return
	}
	write(w, status, apperror.PublicMessage(err))
}
