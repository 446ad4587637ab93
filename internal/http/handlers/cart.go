package handlers

import (
	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/http/middleware"
	"cameronstore.com/app/internal/shared/apperr"
)

// AddToCart handles POST /cart/add. The acknowledgment reaches the visitor
// as a flash set by the session's notifier.
func (h *StorefrontHandler) AddToCart(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	p, ok := h.lookupProduct(c)
	if !ok {
		return
	}
	if err := sess.AddToCart(c.Request.Context(), p); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	h.finish(c, sess)
}
