package validate

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

const (
	contactNameMaxLen  = 50
	contactPhoneMaxLen = 40
)

// Contact checks a complete contact for create and overwrite. today is the current calendar date.
func Contact(in model.ContactInput, today time.Time) error {
	errs := model.FieldErrors{}
	for field, v := range map[string]string{model.FieldFirstName: in.FirstName, model.FieldLastName: in.LastName} {
		if msg := nameProblem(v); msg != "" {
			errs[field] = msg
		}
	}
	if strings.TrimSpace(in.FirstName) == "" && strings.TrimSpace(in.LastName) == "" {
		errs["name"] = msgNameRequired
	}
	if msg := emailProblem(in.Email); msg != "" {
		errs[model.FieldEmail] = msg
	}
	if msg := phoneProblem(in.PhoneNumber); msg != "" {
		errs[model.FieldPhoneNumber] = msg
	}
	if msg := birthdateProblem(in.Birthdate, today); msg != "" {
		errs[model.FieldBirthdate] = msg
	}
	return result(errs)
}

// ContactUpdate checks the fields present in a partial update. Whether a name survives the
// merge with the stored contact is checked by ContactNames once the stored contact is known.
func ContactUpdate(u model.ContactUpdate, today time.Time) error {
	if u.Empty() {
		return model.NewBadProvidedDataError(model.FieldErrors{"fields": "At least one field must be provided for update"})
	}

	errs := model.FieldErrors{}
	checkString := func(field string, o model.Optional[string], problem func(string) string) {
		if !o.Present() {
			return
		}
		v, ok := o.Value()
		if !ok {
			errs[field] = field + " can't be null"
			return
		}
		if msg := problem(v); msg != "" {
			errs[field] = msg
		}
	}
	checkString(model.FieldFirstName, u.FirstName, nameProblem)
	checkString(model.FieldLastName, u.LastName, nameProblem)
	checkString(model.FieldEmail, u.Email, emailProblem)
	checkString(model.FieldPhoneNumber, u.PhoneNumber, phoneProblem)
	checkString(model.FieldInfo, u.Info, func(string) string { return "" })

	if u.Birthdate.Present() {
		if b, ok := u.Birthdate.Value(); !ok {
			errs[model.FieldBirthdate] = "birthdate can't be null"
		} else if msg := birthdateProblem(b, today); msg != "" {
			errs[model.FieldBirthdate] = msg
		}
	}
	return result(errs)
}

// ContactNames checks the names a contact ends up with after a partial update.
func ContactNames(first, last string, u model.ContactUpdate) error {
	if strings.TrimSpace(first) != "" || strings.TrimSpace(last) != "" {
		return nil
	}
	errs := model.FieldErrors{"name": msgNameRequired}
	if u.FirstName.Present() {
		errs[model.FieldFirstName] = "first_name can't be empty"
	}
	if u.LastName.Present() {
		errs[model.FieldLastName] = "last_name can't be empty"
	}
	return model.NewBadProvidedDataError(errs)
}

const msgNameRequired = "At least first_name or last_name must be provided"

func nameProblem(name string) string {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > contactNameMaxLen {
		return fmt.Sprintf("Name must be at most %d characters", contactNameMaxLen)
	}
	return ""
}

func phoneProblem(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "Phone number is required"
	}
	if utf8.RuneCountInString(phone) > contactPhoneMaxLen {
		return fmt.Sprintf("Phone number must be at most %d characters", contactPhoneMaxLen)
	}
	return ""
}

func birthdateProblem(b, today time.Time) string {
	if b.IsZero() {
		return "Birthdate is required"
	}
	if b.After(today) {
		return "Birthdate cannot be in the future"
	}
	return ""
}
