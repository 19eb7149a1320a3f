package validation

import (
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	defaultOnce       sync.Once
	defaultValidate   *validator.Validate
	defaultTranslator ut.Translator
)

// New creates a validator with the english translations registered so
// failures read as "AuthToken is a required field" rather than raw tags.
func New() (*validator.Validate, ut.Translator) {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = enTranslations.RegisterDefaultTranslations(validate, translator)

	return validate, translator
}

// Default returns a shared validator and translator, both are safe for
// concurrent use once created.
func Default() (*validator.Validate, ut.Translator) {
	defaultOnce.Do(func() {
		defaultValidate, defaultTranslator = New()
	})

	return defaultValidate, defaultTranslator
}

func TranslateError(err error, trans ut.Translator) (errs []string) {
	if err == nil {
		return nil
	}

	validationErrors := validator.ValidationErrors{}

	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			translatedErr := e.Translate(trans)
			errs = append(errs, translatedErr)
		}
	}

	return errs
}
