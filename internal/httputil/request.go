// Package httputil contains helpers shared by the HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ContextURL is the key for the base URL of the API in the gin context.
const ContextURL = "baseURL"

// BindData binds the JSON body of the request to data, which must be a pointer.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		texts := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			texts = append(texts, ValidationErrorToText(e))
		}
		return fmt.Errorf("%w: %s", ErrInvalidBody, strings.Join(texts, ", "))
	}

	var jsonUnmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &jsonUnmarshalTypeError) {
		return fmt.Errorf("%w: %s has the wrong type", ErrInvalidBody, jsonUnmarshalTypeError.Field)
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// ValidationErrorToText returns a readable message for a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
	case "email":
		return "Invalid email format"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
