package handlers

import "github.com/gin-gonic/gin"

// NavStore handles POST /nav/home and POST /nav/store.
func (h *StorefrontHandler) NavStore(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	sess.ViewStore()
	h.finish(c, sess)
}

// NavCart handles POST /nav/cart.
func (h *StorefrontHandler) NavCart(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	sess.ViewCart()
	h.finish(c, sess)
}
