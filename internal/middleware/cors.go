package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// CORS opens the API to the browser frontend. The catalog is public, so
// a wildcard origin is acceptable here.
func CORS() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
