package handler

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dtroode/videoflix-server/internal/apierrors"
	"github.com/dtroode/videoflix-server/internal/password"
)

// passwordRules bounds the byte length, since bcrypt rejects anything longer.
var passwordRules = []validation.Rule{
	validation.Required,
	validation.By(maxBytes(password.MaxBytes)),
}

func maxBytes(limit int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > limit {
			return fmt.Errorf("must be no more than %d bytes long", limit)
		}
		return nil
	}
}

type registerRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ConfirmedPassword string `json:"confirmed_password"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.Password, passwordRules...),
		validation.Field(&r.ConfirmedPassword, validation.Required),
	)
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

func (r passwordResetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type passwordConfirmRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r passwordConfirmRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewPassword, passwordRules...),
		validation.Field(&r.ConfirmPassword, validation.Required),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// validationError converts ozzo field errors into an API validation error.
func validationError(err error) error {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return apierrors.NewErrValidation(map[string]string{"body": err.Error()})
	}

	fields := make(map[string]string, len(fieldErrs))
	for name, fieldErr := range fieldErrs {
		fields[name] = fieldErr.Error()
	}
	return apierrors.NewErrValidation(fields)
}
