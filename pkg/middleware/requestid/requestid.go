// Package requestid tags every request with a correlation id so access log
// lines and error envelopes can be tied back to a single call.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header carries the correlation id on both the request and the response.
const Header = "X-Request-ID"

const ctxKey = "request_id"

// Middleware reuses an inbound X-Request-ID when the caller supplied one and
// mints a fresh UUID otherwise. The id is echoed on the response so clients
// can quote it when reporting a failure.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ctxKey, id)
		c.Writer.Header().Set(Header, id)

		c.Next()
	}
}

// Value returns the id assigned to the current request, or an empty string
// when the middleware never ran.
func Value(c *gin.Context) string {
	v, ok := c.Get(ctxKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
