package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/http/middleware"
	"cameronstore.com/app/internal/http/validation"
	"cameronstore.com/app/internal/shared/apperr"
	"cameronstore.com/app/pkg/view"
)

type signupInput struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required,email"`
}

// Signup handles POST /signup. Invalid input re-renders the gate with the
// entered values; blank-after-trim input is silently ignored.
func (h *StorefrontHandler) Signup(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var in signupInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderPage(c, sess, http.StatusBadRequest, func(p *view.StorefrontPage) {
			p.Signup = view.SignupForm{Name: in.Name, Email: in.Email}
			p.SignupErrors = errs
		})
		return
	}

	if _, err := sess.SubmitSignup(c.Request.Context(), in.Name, in.Email); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	h.finish(c, sess)
}

// SkipSignup handles POST /signup/skip.
func (h *StorefrontHandler) SkipSignup(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	sess.SkipSignup()
	h.finish(c, sess)
}
