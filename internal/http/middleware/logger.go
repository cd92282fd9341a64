package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one access line per request after the handler chain
// runs. When RequireAuth has resolved an account the user id is
// appended, so booking activity can be traced per user.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		line := fmt.Sprintf("[HTTP] request_id=%s method=%s path=%s status=%d bytes=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.Writer.Size(),
			float64(time.Since(start).Microseconds())/1000.0,
			c.ClientIP(),
		)
		if uid := GetUserID(c); uid != "" {
			line += " user_id=" + uid
		}
		log.Print(line)
	}
}
