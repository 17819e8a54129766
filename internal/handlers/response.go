package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RenderError is the generic failure page for storage and session errors
// that nothing upstream can recover from.
func RenderError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"title": "Something went wrong",
	})
}
