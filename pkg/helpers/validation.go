package helpers

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var viewRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// CustomValidator wraps go-playground validator with calendar rules
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a validator that knows the locale and view rules
// and reports fields by their json names
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("locale", validateLocale)
	v.RegisterValidation("view", validateView)

	return &CustomValidator{validate: v}
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// ValidationFields returns localized messages keyed by field for a validation
// error, or nil when err is not one
func ValidationFields(err error, locale string) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = FormatValidationError(fe, locale)
	}
	return fields
}

// validateLocale accepts BCP 47 tags and POSIX-style ids such as fa_IR
func validateLocale(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return false
	}
	_, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	return err == nil
}

// validateView validates calendar view identifiers such as timeGridWeek
func validateView(fl validator.FieldLevel) bool {
	return viewRegex.MatchString(fl.Field().String())
}

// LocaleTranslations holds validation message templates for a locale
type LocaleTranslations struct {
	Required string
	Min      string
	Max      string
	Locale   string
	Timezone string
	View     string
	Invalid  string
}

var translations = map[string]LocaleTranslations{
	"en": {
		Required: "The %s field is required",
		Min:      "The %s field must have at least %s items",
		Max:      "The %s field must not exceed %s items",
		Locale:   "The %s field must be a valid locale",
		Timezone: "The %s field must be a valid IANA timezone",
		View:     "The %s field must be a calendar view name",
		Invalid:  "The %s field is invalid",
	},
	"fa": {
		Required: "فیلد %s الزامی است",
		Min:      "فیلد %s باید حداقل %s مورد داشته باشد",
		Max:      "فیلد %s نباید بیشتر از %s مورد داشته باشد",
		Locale:   "فیلد %s باید یک زبان معتبر باشد",
		Timezone: "فیلد %s باید یک منطقه زمانی معتبر باشد",
		View:     "فیلد %s باید نام یک نمای تقویم باشد",
		Invalid:  "فیلد %s نامعتبر است",
	},
}

// GetLocaleTranslations returns translations for a locale, or English
func GetLocaleTranslations(locale string) LocaleTranslations {
	base := strings.ToLower(strings.SplitN(strings.ReplaceAll(locale, "_", "-"), "-", 2)[0])
	if t, ok := translations[base]; ok {
		return t
	}
	return translations["en"]
}

// FormatValidationError formats a validator.FieldError into a localized error message
func FormatValidationError(fe validator.FieldError, locale string) string {
	t := GetLocaleTranslations(locale)
	fieldName := strings.ReplaceAll(strings.ToLower(fe.Field()), "_", " ")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf(t.Required, fieldName)
	case "min":
		return fmt.Sprintf(t.Min, fieldName, fe.Param())
	case "max":
		return fmt.Sprintf(t.Max, fieldName, fe.Param())
	case "locale":
		return fmt.Sprintf(t.Locale, fieldName)
	case "timezone":
		return fmt.Sprintf(t.Timezone, fieldName)
	case "view":
		return fmt.Sprintf(t.View, fieldName)
	default:
		return fmt.Sprintf(t.Invalid, fieldName)
	}
}
