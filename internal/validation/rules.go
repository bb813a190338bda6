// Package validation checks untrusted form input against the entity form
// contracts and returns either a normalized draft value or a field-keyed
// error map. Rules are evaluated independently per field and never
// short-circuit, so a caller can render every violation at once.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Errors maps a field path to the list of human-readable messages for it.
// Nested fields use dot-joined path segments (none of the current form
// shapes nest, but FieldPath keeps the mechanism available).
type Errors map[string][]string

func (e Errors) add(field, message string) {
	e[field] = append(e[field], message)
}

// FieldPath joins path segments into a dot-separated error-map key.
func FieldPath(segments ...string) string {
	return strings.Join(segments, ".")
}

// Error wraps a non-empty Errors map so services can return validation
// failures through a plain error value.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	return "validation failed"
}

// generalField is the reserved key used when the validation engine itself
// fails unexpectedly.
const generalField = "general"

// stringRule is one independently evaluated check on a string field.
type stringRule struct {
	ok      func(string) bool
	message string
}

func required(message string) stringRule {
	return stringRule{ok: func(s string) bool { return s != "" }, message: message}
}

// maxLen limits by character count, not bytes, so multibyte input is not
// penalized for its encoding.
func maxLen(n int, message string) stringRule {
	return stringRule{ok: func(s string) bool { return utf8.RuneCountInString(s) <= n }, message: message}
}

func match(re *regexp.Regexp, message string) stringRule {
	return stringRule{ok: re.MatchString, message: message}
}

var (
	registrationNumberRegexp = regexp.MustCompile(`^[A-Z0-9-]+$`)
	phoneRegexp              = regexp.MustCompile(`^\+?[0-9\s()-]+$`)
	emailRegexp              = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// checkString runs every rule against the value and records all violations.
func checkString(errs Errors, field, value string, rules ...stringRule) {
	for _, r := range rules {
		if !r.ok(value) {
			errs.add(field, r.message)
		}
	}
}

// checkUUID records a violation unless the value is a canonical 36-char UUID.
func checkUUID(errs Errors, field, value, message string) {
	if len(value) != 36 {
		errs.add(field, message)
		return
	}
	if _, err := uuid.Parse(value); err != nil {
		errs.add(field, message)
	}
}

// dateOnOrAfterToday reports whether the raw date parses and falls on
// today's calendar date or later. Both sides are reduced to local
// midnight so time-of-day never affects the comparison.
func dateOnOrAfterToday(raw string, now time.Time) (time.Time, bool) {
	d, err := time.ParseInLocation("2006-01-02", raw, now.Location())
	if err != nil {
		if d, err = time.Parse(time.RFC3339, raw); err != nil {
			return time.Time{}, false
		}
		d = d.In(now.Location())
	}
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day, !day.Before(today)
}

// guard recovers from a panic inside a validator and degrades it to a
// single generic error, so malformed input can never take the caller down.
func guard(errs *Errors) {
	if r := recover(); r != nil {
		*errs = Errors{generalField: {"Validation failed"}}
	}
}
