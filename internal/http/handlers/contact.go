package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/http/validation"
	"cameronstore.com/app/internal/modules/storefront"
	"cameronstore.com/app/pkg/view"
)

type contactInput struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

// Contact handles POST /contact. The message is acknowledged and dropped.
func (h *StorefrontHandler) Contact(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var in contactInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderPage(c, sess, http.StatusBadRequest, func(p *view.StorefrontPage) {
			p.Contact = view.ContactForm{Name: in.Name, Email: in.Email, Message: in.Message}
			p.ContactErrors = errs
		})
		return
	}

	form := storefront.ContactForm{Name: in.Name, Email: in.Email, Message: in.Message}
	sess.SubmitContact(c.Request.Context(), &form)
	h.finish(c, sess)
}
