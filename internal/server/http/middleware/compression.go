package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest transparently handles gzip encoded requests. When limit
// is positive the decompressed body is capped at limit bytes.
func DecompressRequest(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(strings.ToLower(c.GetHeader("Content-Encoding")), "gzip") {
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = reader
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, reader, limit)
		}
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
