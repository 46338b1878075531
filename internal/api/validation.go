package api

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Human-readable rule messages, kept byte-for-byte compatible with what the
// API has always returned.
const (
	msgNameLength   = "Username longer than 5 characters is required"
	msgNameAlphanum = "Username contains non alphanumeric characters - not allowed."
	msgPassword     = "Password is required"
	msgEmail        = "Email does not appear to be valid"
)

// newValidator builds the request validator with the custom username rule
// registered.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("alphanumspace", isAlphanumOrSpace)
	return v
}

// isAlphanumOrSpace allows letters, digits, and spaces only.
func isAlphanumOrSpace(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' {
			return false
		}
	}
	return true
}

// userPayloadErrors runs every registration rule independently and returns
// one FieldError per broken rule. The rules are checked with Var rather than
// a single Struct pass because a field breaking several rules at once, a
// too-short Name carrying punctuation say, must report all of them; Struct
// validation stops at the first failing tag per field.
func userPayloadErrors(v *validator.Validate, req UserPayload) []FieldError {
	checks := []struct {
		field string
		value string
		tag   string
		msg   string
	}{
		{"Name", req.Name, "min=5", msgNameLength},
		{"Name", req.Name, "required,alphanumspace", msgNameAlphanum},
		{"Password", req.Password, "required", msgPassword},
		{"Email", req.Email, "required,email", msgEmail},
	}

	var out []FieldError
	for _, c := range checks {
		if err := v.Var(c.value, c.tag); err != nil {
			out = append(out, FieldError{
				Value:    echoValue(c.field, c.value),
				Msg:      c.msg,
				Param:    c.field,
				Location: "body",
			})
		}
	}
	return out
}

// echoValue returns the submitted value for the error payload. Passwords are
// never echoed back, even invalid ones.
func echoValue(field, value string) interface{} {
	if field == "Password" {
		return ""
	}
	return value
}
