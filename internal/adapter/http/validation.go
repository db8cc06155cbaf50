package http

import (
	"math"

	"github.com/go-playground/validator/v10"

	"trustlend-backend/pkg/id"
)

// FieldError is one human-readable validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the error payload shape for every non-2xx response.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// validID guards path params and headers before any query runs.
func validID(s string) bool { return id.Valid(s) }

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// public identifiers: account/offer/contract/request ids
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return id.Valid(fl.Field().String())
	})
	// whole currency units carried as float64
	_ = v.RegisterValidation("intlike", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-math.Round(f)) < 1e-9
	})
	// interest rates: at most 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "hex32":
		return "must be 32-char lowercase hex"
	case "intlike":
		return "must be an integer value"
	case "dec2":
		return "must have at most 2 decimal places"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "min":
		return "must have at least " + e.Param() + " items"
	case "max":
		return "must have at most " + e.Param() + " items"
	default:
		return e.Tag() + " validation failed"
	}
}

// ToFieldErrors flattens validator.ValidationErrors into the response shape.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: e.Field(), Message: messageFor(e)})
	}
	return out
}
