package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gatherly/gatherly/internal/graph"
)

// BearerToken copies the Authorization header value verbatim into the
// request context for resolvers to consume. No validation happens here; the
// authorization gate runs inside each resolver's transaction.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		c.Request = c.Request.WithContext(graph.WithToken(c.Request.Context(), token))
		c.Next()
	}
}
