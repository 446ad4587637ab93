package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/http/middleware"
	"cameronstore.com/app/internal/http/validation"
	"cameronstore.com/app/internal/modules/products"
	"cameronstore.com/app/internal/shared/apperr"
)

type productInput struct {
	ProductID int `form:"product_id" binding:"required,gt=0"`
}

// lookupProduct binds product_id and resolves it against the catalog. On
// failure the error has already been handed to the error handler.
func (h *StorefrontHandler) lookupProduct(c *gin.Context) (products.Product, bool) {
	var in productInput
	if err := c.ShouldBind(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Choose a product.", validation.FromBindError(err, &in)))
		return products.Product{}, false
	}
	p, err := h.Catalog.GetByID(c.Request.Context(), in.ProductID)
	if errors.Is(err, products.ErrNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Product not found.", err))
		return products.Product{}, false
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return products.Product{}, false
	}
	return p, true
}

// SelectProduct handles POST /products/select - opens the detail view.
func (h *StorefrontHandler) SelectProduct(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	p, ok := h.lookupProduct(c)
	if !ok {
		return
	}
	sess.SelectProduct(&p)
	h.finish(c, sess)
}

// BackToStore handles POST /products/back.
func (h *StorefrontHandler) BackToStore(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	sess.SelectProduct(nil)
	h.finish(c, sess)
}
