package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// JSON writes payload with the given status, marked no-store.
func JSON(c *gin.Context, status int, payload any) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, payload)
}

// OK writes payload as a 200 response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}

// HTML writes a static page.
func HTML(c *gin.Context, page []byte) {
	c.Data(http.StatusOK, htmlContentType, page)
}
