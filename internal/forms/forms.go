// Package forms parses submitted form values into typed inputs and validates
// them before anything is written.
package forms

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	msgRequired    = "This field is required."
	msgChoice      = "Not a valid choice."
	msgPhone       = "Invalid phone number format."
	msgURL         = "Invalid URL."
	msgInteger     = "Not a valid integer value."
	msgDateTime    = "Not a valid datetime value."
	maxNameLength  = 255
	maxFieldLength = 120
	maxLongLength  = 500
)

// Form is implemented by every typed input.
type Form interface {
	Validate() Errors
}

// Errors maps a field name to its messages in the order they were found.
type Errors map[string][]string

// Add records a message for field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// First returns the first message of each field, ordered by field name.
func (e Errors) First() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			messages = append(messages, msgs[0])
		}
	}
	return messages
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field, msgs := range e {
		if len(msgs) > 0 {
			fields = append(fields, field+": "+msgs[0])
		}
	}
	sort.Strings(fields)
	return "invalid form: " + strings.Join(fields, "; ")
}

// Check validates f and returns its Errors as an error, or nil when f is valid.
func Check(f Form) error {
	if errs := f.Validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

var phonePattern = regexp.MustCompile(`^\d{3}-?\d{3}-?\d{4}$`)

func requireText(errs Errors, field, value string, max int) {
	if value == "" {
		errs.Add(field, msgRequired)
		return
	}
	checkLength(errs, field, value, max)
}

func checkLength(errs Errors, field, value string, max int) {
	if len([]rune(value)) > max {
		errs.Add(field, "Field cannot be longer than "+strconv.Itoa(max)+" characters.")
	}
}

func checkPhone(errs Errors, field, value string) {
	if !phonePattern.MatchString(value) {
		errs.Add(field, msgPhone)
	}
}

func checkState(errs Errors, field, value string) {
	if !IsState(value) {
		errs.Add(field, msgChoice)
	}
}

func checkURL(errs Errors, field, value string, max int) {
	if value == "" {
		return
	}
	if len(value) > max {
		errs.Add(field, "Field cannot be longer than "+strconv.Itoa(max)+" characters.")
		return
	}
	u, err := url.ParseRequestURI(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs.Add(field, msgURL)
	}
}

func checkGenres(errs Errors, field string, tags []string) {
	if len(tags) == 0 {
		errs.Add(field, msgRequired)
		return
	}
	for _, tag := range tags {
		if !IsGenre(tag) {
			errs.Add(field, msgChoice)
			return
		}
	}
}

func text(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func list(values url.Values, key string) []string {
	var out []string
	for _, v := range values[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// checked mirrors an HTML checkbox: present means true, except explicit "n"/"false"/"off".
func checked(values url.Values, key string) bool {
	raw, ok := values[key]
	if !ok {
		return false
	}
	if len(raw) == 0 {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(raw[len(raw)-1])) {
	case "n", "no", "false", "off", "0":
		return false
	}
	return true
}

func boolValue(b bool) string {
	if b {
		return "y"
	}
	return ""
}
