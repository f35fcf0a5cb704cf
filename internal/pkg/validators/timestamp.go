package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var timestampPattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

// TimestampValidation validates transcript timestamps in M:SS or H:MM:SS form.
func TimestampValidation(fl validator.FieldLevel) bool {
	return timestampPattern.MatchString(fl.Field().String())
}

// StatusValidation validates the lecture processing status field.
func StatusValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "scanned", "processing", "processed", "failed", "published":
		return true
	default:
		return false
	}
}
