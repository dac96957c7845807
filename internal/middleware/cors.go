package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS lets the visitor dashboard SPA call the API from another origin.
// Content-Disposition is exposed so the browser sees the export filename.
// Deployments that terminate CORS at a reverse proxy can drop this middleware
// in router.New.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")
		c.Header("Access-Control-Max-Age", "3600")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
