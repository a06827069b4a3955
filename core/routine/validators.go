package routine

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
)

const DateLayout = "2006-01-02"

var (
	examDateTag  = "examdate"
	examDateText = "dates must be formatted as YYYY-MM-DD"
)

// InitValidators registers the routine validators. core.InitValidators must run first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(examDateTag, examDateValidation)
	core.RegisterCustomTranslation(validate, translator, examDateTag, examDateText)
}

// Custom Validators

// examDateValidation checks that a date is a calendar day in DateLayout.
func examDateValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		_, err := time.Parse(DateLayout, str)
		return err == nil
	}
	return false
}
