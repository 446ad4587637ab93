package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Redirect finishes a form post with post/redirect/get. Any acknowledgment
// was already queued as a flash cookie by the session notifier.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
