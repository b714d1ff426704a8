package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// WhitelistTag is the struct tag that applies ValidateInput to a string field.
const WhitelistTag = "whitelist"

// Letters, Latin-1 Supplement letters (× and ÷ excluded), digits, whitespace, hyphen and slash.
// RE2 \s is ASCII only, so the Unicode spaces browsers treat as whitespace
// (no-break space among them) are listed explicitly.
var whitelistPattern = regexp.MustCompile(`^[A-Za-z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}0-9\-/` + unicodeSpaces + `]+$`)

const unicodeSpaces = `\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// ValidateInput reports whether s is non-empty and made only of whitelisted characters.
func ValidateInput(s string) bool {
	return whitelistPattern.MatchString(s)
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// The tag is a package constant; registration cannot fail.
	_ = v.RegisterValidation(WhitelistTag, func(fl validator.FieldLevel) bool {
		return ValidateInput(fl.Field().String())
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case WhitelistTag:
				errors[field] = field + " contains forbidden characters"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
