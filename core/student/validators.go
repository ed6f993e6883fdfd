package student

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/mzalendo/shule/core"
)

var (
	enrollCodeTag   = "enrollcode"
	enrollCodeText  = "invalid enrollment code"
	enrollCodeRegex = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

func init() {
	_ = core.Validate.RegisterValidation(enrollCodeTag, enrollCodeValidation)
	core.RegisterCustomTranslation(enrollCodeTag, enrollCodeText)
}

// enrollCodeValidation allows codes like "ENR-001".
func enrollCodeValidation(fl validator.FieldLevel) bool {
	return enrollCodeRegex.MatchString(fl.Field().String())
}
