package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/gatherly/gatherly/internal/interface/middleware"
)

// DebugModule exposes process metrics for operators.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP
	rl := middleware.RateLimit(rate.Limit(2), 5, middleware.KeyByIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
