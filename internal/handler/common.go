package handler // handler defines http handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to Echo's Validator
// interface.  Each mutating operation binds into a dedicated request
// struct whose `validate` tags describe the contract; violations are
// rejected at the boundary before any repository runs.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns the validator wired into the Echo instance.
func NewValidator() *Validator { return &Validator{v: validator.New()} }

// Validate implements echo.Validator.  Validation failures come back
// as plain errors; handlers translate them into 400 responses.
func (vl *Validator) Validate(i interface{}) error {
	if err := vl.v.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("invalid field %q (%s)", f.Field(), f.Tag())
		}
		return err
	}
	return nil
}

// getUserID extracts the authenticated user's id placed in the context
// by the Authenticate middleware.
func getUserID(c echo.Context) (string, error) {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("missing user_id in context")
}

// bindAndValidate binds the request body into v and runs validation,
// writing the 400 response itself on failure.  It returns false when
// the caller should stop.
func bindAndValidate(c echo.Context, v interface{}) bool {
	if err := c.Bind(v); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		return false
	}
	if err := c.Validate(v); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		return false
	}
	return true
}
