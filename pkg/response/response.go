package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope for transport-level failures (malformed
// requests, rate limits). GraphQL execution results are serialized by the
// GraphQL layer itself and never pass through here.
type APIResponse struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Message   string    `json:"message"`
	Error     any       `json:"error,omitempty"`
}

func Error(ctx *gin.Context, status int, message string, err any) APIResponse {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Message:   message,
		Error:     err,
	}
}
