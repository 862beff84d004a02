// Package validation checks candidate contact-form submissions. It is
// pure: the same candidate always yields the same field errors, all
// rules are evaluated independently, and nothing is mutated.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/locales/ar"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	arTranslations "github.com/go-playground/validator/v10/translations/ar"

	"github.com/newrayan/leads-service/internal/domain"
)

// Kuwait phone numbers after separator stripping: an 8-digit local
// number whose first digit is 1-9, optionally prefixed by +965, 965
// or a single leading zero.
var kuwaitPhoneRegex = regexp.MustCompile(`^(\+965|965|0)?[1-9][0-9]{7}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "\t", "")

// FieldErrors maps a candidate field name to a user-facing message.
type FieldErrors map[string]string

// ValidationError carries per-field messages back to the caller.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Arabic messages shown inline on the contact form.
const (
	msgNameRequired    = "الاسم مطلوب"
	msgPhoneRequired   = "رقم الهاتف مطلوب"
	msgPhoneFormat     = "رقم الهاتف غير صحيح (مثال: 99123456 أو 96599123456)"
	msgServiceRequired = "يرجى اختيار الخدمة المطلوبة"
)

type candidateRules struct {
	Name            string `validate:"required"`
	PhoneNumber     string `validate:"required,kwphone"`
	SelectedService string `validate:"required"`
}

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	arabic := ar.New()
	uni := ut.New(arabic, arabic)
	translator, _ = uni.GetTranslator("ar")

	if err := arTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic("validation: failed to register translations: " + err.Error())
	}

	if err := validate.RegisterValidation("kwphone", func(fl validator.FieldLevel) bool {
		return kuwaitPhoneRegex.MatchString(CleanPhone(fl.Field().String()))
	}); err != nil {
		panic("validation: failed to register kwphone rule: " + err.Error())
	}
}

// CleanPhone strips whitespace, hyphens and parentheses from a raw
// phone string. The cleaned form is what the format rule sees.
func CleanPhone(raw string) string {
	return phoneSeparators.Replace(raw)
}

// Validate evaluates every rule against the candidate and collects
// all failures; no rule short-circuits another field.
func Validate(candidate domain.SubmissionCandidate) FieldErrors {
	rules := candidateRules{
		Name:            strings.TrimSpace(candidate.Name),
		PhoneNumber:     strings.TrimSpace(candidate.PhoneNumber),
		SelectedService: strings.TrimSpace(candidate.SelectedService),
	}

	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"_": err.Error()}
	}

	fields := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.StructField() {
		case "Name":
			fields["name"] = msgNameRequired
		case "PhoneNumber":
			if fe.Tag() == "required" {
				fields["phoneNumber"] = msgPhoneRequired
			} else {
				fields["phoneNumber"] = msgPhoneFormat
			}
		case "SelectedService":
			fields["selectedService"] = msgServiceRequired
		default:
			fields[fe.StructField()] = fe.Translate(translator)
		}
	}

	return fields
}
