package validation

import (
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/worachetdee/lifenovelRN/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// UTF8 validates that a string is well-formed UTF-8.
var UTF8 = validation.NewStringRuleWithError(
	utf8.ValidString,
	validation.NewError("validation_utf8", "must be valid UTF-8 text"),
)

// MaxBytes limits the encoded size of a string.
func MaxBytes(n int) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool { return len(s) <= n },
		validation.NewError("validation_max_bytes", "is too large"),
	)
}

// OriginList validates a comma-separated list of CORS origins. Each entry
// must be "*" or carry an explicit scheme such as https:// or capacitor://.
var OriginList = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, origin := range strings.Split(s, ",") {
			origin = strings.TrimSpace(origin)
			if origin == "" || origin == "*" {
				continue
			}
			scheme, host, found := strings.Cut(origin, "://")
			if !found || scheme == "" || host == "" {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_origin_list", "origins must be '*' or include a scheme such as https://"),
)
