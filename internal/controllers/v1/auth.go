package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-budget/backend/internal/auth"
	"github.com/smart-budget/backend/internal/httputil"
)

// RegisterInput is the data needed to create a user.
type RegisterInput struct {
	Name   string `json:"name" example:"Jo Doe"`                                      // Name of the user
	Email  string `json:"email" example:"jo@example.com"`                             // Email address, used to log in
	Avatar string `json:"avatar" example:"https://example.com/avatar.png" default:""` // URL of an avatar image
}

// LoginInput is the data needed to log in.
type LoginInput struct {
	Email string `json:"email" example:"jo@example.com"` // Email address of the user
}

type SessionResponse struct {
	Data  *auth.Session `json:"data"`                                                          // The user and its token
	Error *string       `json:"error" example:"a user with this email address already exists"` // The error, if any occurred
}

// RegisterAuthRoutes registers the routes for registration, login and
// logout with the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsAuth)
	r.POST("/register", co.Register)
	r.OPTIONS("/login", OptionsAuth)
	r.POST("/login", co.Login)
	r.OPTIONS("/logout", OptionsAuth)
	r.POST("/logout", co.Authenticate, co.Logout)
}

// OptionsAuth returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Auth
//	@Success		204
//	@Router			/v1/auth/register [options]
//	@Router			/v1/auth/login [options]
//	@Router			/v1/auth/logout [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Register creates a user and logs it in
//
//	@Summary		Register
//	@Description	Creates a user with the default categories and returns it together with a token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	SessionResponse
//	@Failure		400		{object}	SessionResponse
//	@Failure		409		{object}	SessionResponse
//	@Failure		500		{object}	SessionResponse
//	@Param			user	body		RegisterInput	true	"User"
//	@Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var input RegisterInput
	err := httputil.BindData(c, &input)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	session, err := co.Auth.Register(input.Name, input.Email, input.Avatar)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: &session})
}

// Login issues a new token for a user
//
//	@Summary		Login
//	@Description	Returns the user with the email address and a new token. Earlier tokens of the user stop working.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	SessionResponse
//	@Failure		404		{object}	SessionResponse
//	@Failure		500		{object}	SessionResponse
//	@Param			login	body		LoginInput	true	"Login"
//	@Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var input LoginInput
	err := httputil.BindData(c, &input)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	session, err := co.Auth.Login(input.Email)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &session})
}

// Logout invalidates the token of the user
//
//	@Summary		Logout
//	@Description	Invalidates the token used for the request
//	@Tags			Auth
//	@Success		204
//	@Failure		401	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Security		Bearer
//	@Router			/v1/auth/logout [post]
func (co Controller) Logout(c *gin.Context) {
	err := co.Auth.Logout(currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
