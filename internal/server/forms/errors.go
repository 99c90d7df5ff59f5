// Package forms declares the HTML forms of the back office, binds them via
// gin and turns validation failures into user facing messages.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field names a form input and its human label, in display order.
type Field struct {
	Key   string
	Label string
}

// FieldError is a single validation failure. An empty Field marks a
// form-level error.
type FieldError struct {
	Field   string
	Label   string
	Message string
}

type Errors []FieldError

func (e *Errors) Add(field, label, msg string) {
	*e = append(*e, FieldError{Field: field, Label: label, Message: msg})
}

func (e *Errors) AddGeneral(msg string) {
	*e = append(*e, FieldError{Message: msg})
}

func (e Errors) Any() bool { return len(e) > 0 }

func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Messages renders one notification per error, "Error: ..." for form-level
// errors and "Error in <label>: ..." for field errors.
func (e Errors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		if fe.Field == "" {
			out = append(out, "Error: "+fe.Message)
			continue
		}
		out = append(out, fmt.Sprintf("Error in %s: %s", fe.Label, fe.Message))
	}
	return out
}

// AuthMessages renders every error as "Error: ...", the way the account
// pages report them.
func (e Errors) AuthMessages() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, "Error: "+fe.Message)
	}
	return out
}

// Described is implemented by every form of this package.
type Described interface {
	Fields() []Field
}

// Collect merges the result of gin binding with errors found by the form's
// own checks and orders them the way the fields are displayed. Form-level
// errors go first.
func Collect(form Described, bindErr error, extra Errors) Errors {
	var errs Errors
	if bindErr != nil {
		errs = FromBinding(form, bindErr)
	}
	errs = append(errs, extra...)

	fields := form.Fields()
	order := make(map[string]int, len(fields))
	for i, f := range fields {
		order[f.Key] = i + 1
	}
	sort.SliceStable(errs, func(i, j int) bool {
		return order[errs[i].Field] < order[errs[j].Field]
	})
	return errs
}

// FromBinding translates an error returned by gin's ShouldBind for form.
func FromBinding(form Described, err error) Errors {
	var errs Errors

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.AddGeneral("The submitted form could not be read.")
		return errs
	}

	labels := make(map[string]string)
	for _, f := range form.Fields() {
		labels[f.Key] = f.Label
	}

	for _, fe := range verrs {
		key := formKey(form, fe.StructField())
		errs.Add(key, labels[key], message(fe))
	}
	return errs
}

func formKey(form any, structField string) string {
	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if sf, ok := t.FieldByName(structField); ok {
		if tag := sf.Tag.Get("form"); tag != "" {
			return tag
		}
	}
	return structField
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), length(fe.Value()))
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters (it has %d).", fe.Param(), length(fe.Value()))
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "eqfield":
		return "You must type the same password each time."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	default:
		return "Enter a valid value."
	}
}

func length(v any) int {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s)
	}
	return 0
}
