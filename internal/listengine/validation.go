package listengine

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the dashboard's custom tags registered:
//
//	simpleemail  something@domain.tld, no whitespace
//	notblank     non-empty after trimming spaces
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate = v
	})
	return validate
}

// ValidateRecord runs struct tag validation and converts failures into a *ValidationError.
// A field may carry `label:"Monthly price"` to name it in messages, and `msg:"..."`
// to replace the generated message entirely.
func ValidateRecord(record any) error {
	err := Validator().Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	typ := reflect.TypeOf(record)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if _, seen := out.Fields[fe.Field()]; seen {
			continue
		}
		out.Fields[fe.Field()] = message(typ, fe)
	}
	return out
}

func message(typ reflect.Type, fe validator.FieldError) string {
	label := fe.Field()
	if sf, ok := typ.FieldByName(fe.StructField()); ok {
		if msg := sf.Tag.Get("msg"); msg != "" {
			return msg
		}
		if l := sf.Tag.Get("label"); l != "" {
			label = l
		}
	}
	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "simpleemail", "email":
		return "Please enter a valid email address"
	case "gt":
		return label + " must be greater than " + fe.Param()
	case "gte", "min":
		return label + " must be at least " + fe.Param()
	case "lte", "max":
		return label + " must be at most " + fe.Param()
	case "oneof":
		return label + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return label + " is invalid"
	}
}

// RegisterOneOf adds a tag that accepts only the listed values. Unlike oneof it
// allows values containing spaces. Call it from package init only.
func RegisterOneOf(tag string, allowed []string) {
	allowed = slices.Clone(allowed)
	if err := Validator().RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("listengine: register %s: %v", tag, err))
	}
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
