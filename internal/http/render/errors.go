package render

import (
	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/http/middleware"
	"cameronstore.com/app/templates/pages"
)

func ErrorPage(c *gin.Context, status int, msg string) {
	Component(c, status, pages.Error(status, msg, middleware.GetRequestID(c)))
}
