// Package validation implements the declarative per-field rule sets run
// before handler logic. Each field carries an ordered list of predicate +
// message pairs; every violated rule contributes one {field, message} entry
// and all failures are aggregated rather than stopping at the first.
package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yourorg/todokeeper/internal/server/models"
)

// FieldError is a single violated rule, shaped for the error envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule pairs a pure predicate with the message reported when it fails.
type Rule struct {
	Check   func(value string) bool
	Message string
}

var (
	usernameCharset = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
)

const passwordSpecials = "@$!%*?&"

func apply(field, value string, rules []Rule, errs []FieldError) []FieldError {
	for _, r := range rules {
		if !r.Check(value) {
			errs = append(errs, FieldError{Field: field, Message: r.Message})
		}
	}
	return errs
}

func notEmpty(v string) bool { return v != "" }

// Length bounds count characters, not bytes, matching the column limits.
func lengthBetween(min, max int) func(string) bool {
	return func(v string) bool {
		n := utf8.RuneCountInString(v)
		return n >= min && n <= max
	}
}

func minLength(min int) func(string) bool {
	return func(v string) bool { return utf8.RuneCountInString(v) >= min }
}

func validEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	return err == nil && addr.Address == v
}

// passwordStrong mirrors the registration strength rule: at least one
// lowercase letter, one uppercase letter, one digit and one of @$!%*?&,
// with no characters outside that set.
func passwordStrong(v string) bool {
	if !passwordCharset.MatchString(v) {
		return false
	}
	return strings.ContainsAny(v, "abcdefghijklmnopqrstuvwxyz") &&
		strings.ContainsAny(v, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") &&
		strings.ContainsAny(v, "0123456789") &&
		strings.ContainsAny(v, passwordSpecials)
}

func validStatus(v string) bool {
	return models.TodoStatus(v).Valid()
}

var usernameRules = []Rule{
	{notEmpty, "Username is required"},
	{lengthBetween(3, 20), "Username must be between 3 and 20 characters"},
	{usernameCharset.MatchString, "Username can only contain letters, numbers, and underscores"},
}

var emailRules = []Rule{
	{notEmpty, "Email is required"},
	{validEmail, "Invalid email format"},
}

var registrationPasswordRules = []Rule{
	{notEmpty, "Password is required"},
	{minLength(8), "Password must be at least 8 characters long"},
	{passwordStrong, "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"},
}

var loginPasswordRules = []Rule{
	{notEmpty, "Password is required"},
}

var titleRules = []Rule{
	{notEmpty, "Title is required"},
	{lengthBetween(3, 100), "Title must be between 3 and 100 characters"},
}

var statusRules = []Rule{
	{validStatus, "Status must be one of: pending, completed"},
}

// NormalizeEmail trims and lowercases an address before comparison/storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Registration validates the register payload. Inputs are trimmed before the
// rules run; the email is expected to be normalized by the caller.
func Registration(username, email, password string) []FieldError {
	var errs []FieldError
	errs = apply("username", strings.TrimSpace(username), usernameRules, errs)
	errs = apply("email", strings.TrimSpace(email), emailRules, errs)
	errs = apply("password", strings.TrimSpace(password), registrationPasswordRules, errs)
	return errs
}

// Login validates the login payload. The password gets no strength check
// here; it is compared against the stored hash anyway.
func Login(email, password string) []FieldError {
	var errs []FieldError
	errs = apply("email", strings.TrimSpace(email), emailRules, errs)
	errs = apply("password", strings.TrimSpace(password), loginPasswordRules, errs)
	return errs
}

// TodoCreate validates the create payload. Status is optional; when present
// it must be a known enum value.
func TodoCreate(title string, status *string) []FieldError {
	var errs []FieldError
	errs = apply("title", strings.TrimSpace(title), titleRules, errs)
	if status != nil {
		errs = apply("status", *status, statusRules, errs)
	}
	return errs
}

// TodoUpdate validates the partial update payload. Both fields are optional
// but bound by the same rules when present.
func TodoUpdate(title *string, status *string) []FieldError {
	var errs []FieldError
	if title != nil {
		errs = apply("title", strings.TrimSpace(*title), titleRules[1:], errs)
	}
	if status != nil {
		errs = apply("status", *status, statusRules, errs)
	}
	return errs
}
