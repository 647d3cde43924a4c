package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/models"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Name   string `json:"name" example:"Jo Doe"`                                      // Name of the user
	Avatar string `json:"avatar" example:"https://example.com/avatar.png" default:""` // URL of an avatar image
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/me"` // The user itself
}

type User struct {
	models.User
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	return User{
		User: model,
		Links: UserLinks{
			Self: fmt.Sprintf("%s/v1/users/me", c.GetString(httputil.ContextURL)),
		},
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                            // Data for the user
	Error *string `json:"error" example:"the token is invalid or expired"` // The error, if any occurred
}

// RegisterUserRoutes registers the routes for the authenticated user with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/me", OptionsUserMe)
	r.GET("/me", co.GetUserMe)
	r.PATCH("/me", co.UpdateUserMe)
}

// OptionsUserMe returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Users
//	@Success		204
//	@Security		Bearer
//	@Router			/v1/users/me [options]
func OptionsUserMe(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, PATCH")
	c.Status(http.StatusNoContent)
}

// GetUserMe returns the authenticated user
//
//	@Summary		Get user
//	@Description	Returns the user the token belongs to
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	httpError
//	@Security		Bearer
//	@Router			/v1/users/me [get]
func (co Controller) GetUserMe(c *gin.Context) {
	data := newUser(c, currentUser(c))
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// UpdateUserMe updates name and avatar of the authenticated user
//
//	@Summary		Update user
//	@Description	Updates name and avatar of the user the token belongs to. The email address cannot be changed.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	UserResponse
//	@Failure		401		{object}	httpError
//	@Failure		500		{object}	UserResponse
//	@Param			user	body		UserEditable	true	"User"
//	@Security		Bearer
//	@Router			/v1/users/me [patch]
func (co Controller) UpdateUserMe(c *gin.Context) {
	user := currentUser(c)

	// Start from the current values so that omitted fields stay unchanged
	editable := UserEditable{Name: user.Name, Avatar: user.Avatar}
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	user.Name = editable.Name
	user.Avatar = editable.Avatar
	user.Normalize()

	err = user.Validate()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	user, err = co.Repo.Users.Update(user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
