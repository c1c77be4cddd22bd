package experience

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// timePattern matches a 24-hour "HH:MM" clock string.
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// FieldErrors maps a form field name to its human-readable validation messages.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// First returns the first message for a field, or "" if the field is clean.
// Templates use this to show one message next to each input.
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// CreateForm carries the raw string fields of a submitted create-experience
// form. It is validated server-side regardless of any client pre-check, since
// client-side checks are not trustworthy.
type CreateForm struct {
	Title       string `json:"title" form:"title" validate:"required,min=5,max=100"`
	Description string `json:"description" form:"description" validate:"required,min=10,max=500"`
	Date        string `json:"date" form:"date" validate:"required,iso8601"`
	Time        string `json:"time" form:"time" validate:"required,hhmm"`
	Location    string `json:"location" form:"location" validate:"required,min=3,max=100"`
	Category    string `json:"category" form:"category" validate:"required,category"`
	ImageURL    string `json:"imageUrl" form:"imageUrl" validate:"omitempty,url"`
}

// validate is the shared validator instance. Custom rules cover the fields
// the generic tags cannot express: ISO-8601 dates, HH:MM times, and the
// fixed category set (case-insensitive).
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
		return timePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "iso8601", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.RFC3339, fl.Field().String())
		return err == nil
	})
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return IsValidCategory(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate applies the acceptance rules to the raw form input.
// PRE: f holds raw strings as received from the form submission
// POST: on success returns the normalized content fields (Date parsed to UTC,
// empty ImageURL left absent) and a nil error map; on failure returns a
// field-keyed message map and no partial record
func (f CreateForm) Validate() (Experience, FieldErrors) {
	if err := validate.Struct(f); err != nil {
		fieldErrs := FieldErrors{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fieldErrs.Add(fe.Field(), messageFor(fe))
			}
		} else {
			fieldErrs.Add("form", "Invalid data provided. Please check the form.")
		}
		return Experience{}, fieldErrs
	}

	date, err := time.Parse(time.RFC3339, f.Date)
	if err != nil {
		// Unreachable when the iso8601 rule passed; kept as a guard for the
		// parse result crossing into the store.
		fieldErrs := FieldErrors{}
		fieldErrs.Add("date", "The provided date could not be processed.")
		return Experience{}, fieldErrs
	}

	return Experience{
		Title:       f.Title,
		Description: f.Description,
		Date:        date.UTC(),
		Time:        f.Time,
		Location:    f.Location,
		Category:    f.Category,
		ImageURL:    f.ImageURL,
	}, nil
}

// messageFor translates a validator error into the message shown next to the
// offending field.
func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		switch fe.Tag() {
		case "max":
			return "Title must be at most 100 characters."
		default:
			return "Title must be at least 5 characters."
		}
	case "description":
		switch fe.Tag() {
		case "max":
			return "Description must be at most 500 characters."
		default:
			return "Description must be at least 10 characters."
		}
	case "date":
		return "Invalid date format. Expected ISO 8601 string."
	case "time":
		return "Invalid time format (HH:MM)."
	case "location":
		switch fe.Tag() {
		case "max":
			return "Location must be at most 100 characters."
		default:
			return "Location must be at least 3 characters."
		}
	case "category":
		return "Invalid category selected."
	case "imageUrl":
		return "Please enter a valid URL."
	}
	return "Invalid value."
}
