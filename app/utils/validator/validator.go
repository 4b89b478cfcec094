package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"studio/app/domain"
)

// phonePattern accepts the loose international formats customers actually
// type: optional +, optional parentheses groups, separators.
var phonePattern = regexp.MustCompile(`^[\+]?[(]?[0-9]{1,4}[)]?[-\s\.]?[(]?[0-9]{1,4}[)]?[-\s\.]?[0-9]{1,9}$`)

// namePattern allows letters, spaces and Latin-accented characters,
// including the diaeresis (Agüero).
var namePattern = regexp.MustCompile(`^[a-zA-ZáéíóúüÁÉÍÓÚÜñÑ\s]+$`)

var (
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
	hasSymbol = regexp.MustCompile(`[^a-zA-Z0-9]`)
	nonDigits = regexp.MustCompile(`\D`)
)

// SignInPayload is the sign-in form shape.
type SignInPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignUpPayload is the sign-up form shape. The avatar file is optional; the
// cross-field password match is checked at struct level and always reported
// on the confirmPassword path.
type SignUpPayload struct {
	FullName        string               `json:"fullName" validate:"required,min=2,max=100,person_name"`
	Email           string               `json:"email" validate:"required,email"`
	Phone           string               `json:"phone" validate:"required,intl_phone"`
	Password        string               `json:"password" validate:"required,min=6,max=100,signup_password"`
	ConfirmPassword string               `json:"confirmPassword" validate:"required"`
	Avatar          *domain.AvatarUpload `json:"avatar"`
}

// Validator validates auth form payloads against the declarative schemas.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the sign-in/sign-up rules registered.
func New() *Validator {
	validate := validator.New()

	// Report errors under the client-side field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidators(validate)
	validate.RegisterStructValidation(signUpStructRules, SignUpPayload{})

	return &Validator{validate: validate}
}

// ValidateSignIn checks a sign-in payload. Returns nil when valid; never
// mutates the input.
func (v *Validator) ValidateSignIn(payload SignInPayload) domain.ValidationErrors {
	return v.collect(v.validate.Struct(payload))
}

// ValidateSignUp checks a sign-up payload. Returns nil when valid; never
// mutates the input.
func (v *Validator) ValidateSignUp(payload SignUpPayload) domain.ValidationErrors {
	return v.collect(v.validate.Struct(payload))
}

func (v *Validator) collect(err error) domain.ValidationErrors {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ValidationErrors{{Path: "", Message: err.Error()}}
	}

	out := make(domain.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{
			Path:    fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func signUpStructRules(sl validator.StructLevel) {
	payload := sl.Current().Interface().(SignUpPayload)

	// Cross-field rule: attached to confirmPassword, never password
	if payload.ConfirmPassword != "" && payload.Password != payload.ConfirmPassword {
		sl.ReportError(payload.ConfirmPassword, "confirmPassword", "ConfirmPassword", "password_match", "")
	}

	if payload.Avatar != nil {
		if len(payload.Avatar.Data) > domain.AvatarMaxSize {
			sl.ReportError(payload.Avatar, "avatar", "Avatar", "avatar_size", "")
		} else if !domain.IsAllowedAvatarType(payload.Avatar.ContentType) {
			sl.ReportError(payload.Avatar, "avatar", "Avatar", "avatar_type", "")
		}
	}
}

func registerCustomValidators(validate *validator.Validate) {
	// Loose international phone format that also normalizes (digits only)
	// to a length of 10 to 15
	validate.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		phone := fl.Field().String()
		if !phonePattern.MatchString(phone) {
			return false
		}
		digits := nonDigits.ReplaceAllString(phone, "")
		return len(digits) >= 10 && len(digits) <= 15
	})

	// Letters, spaces and Latin-accented characters only
	validate.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})

	// At least one uppercase, one lowercase and one digit
	validate.RegisterValidation("signup_password", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		return hasUpper.MatchString(password) &&
			hasLower.MatchString(password) &&
			hasDigit.MatchString(password)
	})
}

// messageFor maps a failed rule to the message the form shows inline.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "email":
			return "Email is required"
		case "password":
			return "Password is required"
		case "fullName":
			return "Full name is required"
		case "phone":
			return "Phone number is required"
		case "confirmPassword":
			return "Please confirm your password"
		}
		return fe.Field() + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		switch fe.Field() {
		case "password":
			return "Password must be at least 6 characters"
		case "fullName":
			return "Full name must be at least 2 characters"
		}
		return fe.Field() + " is too short"
	case "max":
		switch fe.Field() {
		case "password":
			return "Password must be less than 100 characters"
		case "fullName":
			return "Full name must be less than 100 characters"
		}
		return fe.Field() + " is too long"
	case "person_name":
		return "Full name can only contain letters and spaces"
	case "intl_phone":
		return "Invalid phone number"
	case "signup_password":
		return "Password must contain at least one uppercase letter, one lowercase letter and one number"
	case "password_match":
		return "Passwords don't match"
	case "avatar_size":
		return "Image size must be less than 5MB"
	case "avatar_type":
		return "Image must be JPEG, PNG, or WebP"
	default:
		return fe.Field() + " is invalid"
	}
}

// PasswordStrength scores a candidate password 0..5 for the sign-up form's
// strength meter: length thresholds, character classes, symbols.
func PasswordStrength(password string) int {
	if password == "" {
		return 0
	}

	strength := 0
	if len(password) >= 6 {
		strength++
	}
	if len(password) >= 8 {
		strength++
	}
	if hasLower.MatchString(password) {
		strength++
	}
	if hasUpper.MatchString(password) {
		strength++
	}
	if hasDigit.MatchString(password) {
		strength++
	}
	if hasSymbol.MatchString(password) {
		strength++
	}

	if strength > 5 {
		strength = 5
	}
	return strength
}
