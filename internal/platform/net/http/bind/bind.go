// Package bind decodes request query parameters into tagged structs and
// validates them with a shared validator whose messages come from the same
// universal-translator the rest of the service uses
package bind

import (
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "reltime/internal/platform/errors"
	"reltime/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and query tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer query tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := queryName(fld); name != "" {
				return name
			}
			return fld.Name
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerShort(v, trans, "datetime", "{0} must be an RFC3339 timestamp")
		registerShort(v, trans, "numeric", "{0} must be an integer")
		registerShort(v, trans, "boolean", "{0} must be true or false")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// Struct validates v and maps the first failure to a Validation error carrying the field
func Struct(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// ParseQuery fills the string fields of T tagged `query:"name"` from the URL
// query and validates the result
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return dst, perr.Internalf("bind: %T is not a struct", dst)
	}

	q := r.URL.Query()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		fld := rt.Field(i)
		name := queryName(fld)
		if name == "" || fld.Type.Kind() != reflect.String || !fld.IsExported() {
			continue
		}
		rv.Field(i).SetString(strings.TrimSpace(q.Get(name)))
	}

	if err := Struct(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return "", inv.Error()
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

func queryName(fld reflect.StructField) string {
	tag := fld.Tag.Get("query")
	if tag == "-" {
		return ""
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// registerShort overrides the message for tag with a one-parameter template
func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field())
			return msg
		},
	)
}
