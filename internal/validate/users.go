// Package validate holds input checks that run before service calls.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 8
	passwordMaxLen = 128
	emailMaxLen    = 150

	passwordSpecialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"
)

// Registration checks a self-registration or admin creation request.
func Registration(username, email, password string, reserved []string) error {
	errs := model.FieldErrors{}
	if msg := usernameProblem(username, reserved); msg != "" {
		errs["username"] = msg
	}
	if msg := emailProblem(email); msg != "" {
		errs["email"] = msg
	}
	if msg := passwordProblem(password); msg != "" {
		errs["password"] = msg
	}
	return result(errs)
}

// AdminUpdate checks the shape of an admin partial update.
func AdminUpdate(u model.AdminUserUpdate, reserved []string) error {
	if u.Empty() {
		return model.NewBadProvidedDataError(model.FieldErrors{"Provided data": "No fields provided to update."})
	}

	errs := model.FieldErrors{}
	if u.Username.Present() {
		name, ok := u.Username.Value()
		if !ok {
			errs["username"] = "Username can't be null"
		} else if msg := usernameProblem(name, reserved); msg != "" {
			errs["username"] = msg
		}
	}
	if u.Role.Present() {
		raw, _ := u.Role.Value()
		if _, err := model.ParseRole(raw); err != nil {
			errs["role"] = fmt.Sprintf("Invalid role: %s", raw)
		}
	}
	if u.IsActive.IsNull() {
		errs["is_active"] = "is_active can't be null"
	}
	if v, ok := u.Avatar.Value(); ok {
		errs["avatar"] = fmt.Sprintf("Invalid optional avatar field value: %s. Only null value is allowed.", v)
	}
	return result(errs)
}

// PasswordChange checks a self-service password change before the current password is verified.
func PasswordChange(current, next string) error {
	if current == "" {
		return model.NewBadProvidedDataError(model.FieldErrors{"old_password": "Old password is required to change password"})
	}
	if next == "" {
		return model.NewBadProvidedDataError(model.FieldErrors{"new_password": "New password can't be empty"})
	}
	if next == current {
		return model.NewBadProvidedDataError(model.FieldErrors{"new_password": "New password can't be the same as the old one"})
	}
	return nil
}

// Password checks password strength.
func Password(password string) error {
	if msg := passwordProblem(password); msg != "" {
		return model.NewBadProvidedDataError(model.FieldErrors{"password": msg})
	}
	return nil
}

func result(errs model.FieldErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return model.NewBadProvidedDataError(errs)
}

func usernameProblem(username string, reserved []string) string {
	n := utf8.RuneCountInString(strings.TrimSpace(username))
	if n < usernameMinLen || n > usernameMaxLen {
		return fmt.Sprintf("Username must be between %d and %d characters", usernameMinLen, usernameMaxLen)
	}
	lower := strings.ToLower(strings.TrimSpace(username))
	for _, r := range reserved {
		if lower == strings.ToLower(r) {
			return "This username is reserved and cannot be used"
		}
	}
	return ""
}

func emailProblem(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required"
	}
	if len(email) > emailMaxLen {
		return fmt.Sprintf("Email must be at most %d characters", emailMaxLen)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "Invalid email address"
	}
	return ""
}

func passwordProblem(password string) string {
	n := utf8.RuneCountInString(password)
	if n < passwordMinLen || n > passwordMaxLen {
		return fmt.Sprintf("Password must be between %d and %d characters", passwordMinLen, passwordMaxLen)
	}

	var problems []string
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		problems = append(problems, "must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		problems = append(problems, "must contain at least one number")
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		problems = append(problems, "must contain at least one special character")
	}
	return strings.Join(problems, "; ")
}
