package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/models"
)

type ThemeObject struct {
	Theme models.Theme `json:"theme" example:"dark"` // light or dark
}

type ThemeResponse struct {
	Data  *ThemeObject `json:"data"`                                        // The theme
	Error *string      `json:"error" example:"theme must be light or dark"` // The error, if any occurred
}

// RegisterPreferenceRoutes registers the routes for preferences with
// the RouterGroup that is passed.
func (co Controller) RegisterPreferenceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/theme", OptionsTheme)
	r.GET("/theme", co.GetTheme)
	r.PUT("/theme", co.SetTheme)
}

// OptionsTheme returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Preferences
//	@Success		204
//	@Security		Bearer
//	@Router			/v1/preferences/theme [options]
func OptionsTheme(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// GetTheme returns the theme
//
//	@Summary		Get theme
//	@Description	Returns the color theme, light if none has been set
//	@Tags			Preferences
//	@Produce		json
//	@Success		200	{object}	ThemeResponse
//	@Failure		500	{object}	ThemeResponse
//	@Security		Bearer
//	@Router			/v1/preferences/theme [get]
func (co Controller) GetTheme(c *gin.Context) {
	theme, err := co.Repo.Preferences.Theme()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ThemeResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Data: &ThemeObject{Theme: theme}})
}

// SetTheme sets the theme
//
//	@Summary		Set theme
//	@Description	Sets the color theme
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	ThemeResponse
//	@Failure		400		{object}	ThemeResponse
//	@Failure		500		{object}	ThemeResponse
//	@Param			theme	body		ThemeObject	true	"Theme"
//	@Security		Bearer
//	@Router			/v1/preferences/theme [put]
func (co Controller) SetTheme(c *gin.Context) {
	var data ThemeObject
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ThemeResponse{
			Error: &s,
		})
		return
	}

	err = co.Repo.Preferences.SetTheme(data.Theme)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ThemeResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Data: &data})
}
