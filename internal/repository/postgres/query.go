package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

const userColumns = `u.id, u.username, u.email, u.hashed_password, u.role, u.avatar,
	u.is_active, u.is_email_confirmed, u.created_at, u.updated_at`

const contactColumns = `c.id, c.user_id, c.first_name, c.last_name, c.email, c.phone_number,
	c.birthdate, c.info, c.created_at, c.updated_at`

const contactOrder = ` ORDER BY lower(c.first_name), lower(c.last_name), c.birthdate, c.id`

// updatableContactColumns is the whitelist for contact updates.
var updatableContactColumns = []string{
	model.FieldFirstName,
	model.FieldLastName,
	model.FieldEmail,
	model.FieldPhoneNumber,
	model.FieldBirthdate,
	model.FieldInfo,
}

// updatableColumns is the whitelist for UpdateByID, in the order they are written.
var updatableColumns = []string{
	model.FieldUsername,
	model.FieldEmail,
	model.FieldHashedPassword,
	model.FieldRole,
	model.FieldIsActive,
	model.FieldAvatar,
}

// args accumulates positional query arguments.
type args []any

func (a *args) add(v any) string {
	*a = append(*a, v)
	return fmt.Sprintf("$%d", len(*a))
}

func buildUserWhere(f model.UserFilters, a *args) string {
	conds := []string{}

	if f.ExcludeSuperadmins {
		conds = append(conds, "u.role <> 'superadmin'")
	}
	if f.HideInactiveAdmins {
		conds = append(conds, "NOT (u.role = 'admin' AND u.is_active = FALSE)")
	}
	if f.ExcludeUserID != nil {
		conds = append(conds, "u.id <> "+a.add(*f.ExcludeUserID))
	}
	if f.Username != "" {
		conds = append(conds, "u.username ILIKE '%' || "+a.add(escapeLike(f.Username))+" || '%'")
	}
	if f.Email != "" {
		conds = append(conds, "u.email ILIKE '%' || "+a.add(escapeLike(f.Email))+" || '%'")
	}
	if f.Role != nil {
		conds = append(conds, "u.role = "+a.add(string(*f.Role)))
	}
	if f.IsActive != nil {
		conds = append(conds, "u.is_active = "+a.add(*f.IsActive))
	}

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func buildUserOrder(f model.UserFilters) string {
	order := ` ORDER BY CASE u.role WHEN 'admin' THEN 1 WHEN 'moderator' THEN 2 WHEN 'user' THEN 3 ELSE 99 END`
	if f.InactiveLast {
		order += ", u.is_active DESC"
	}
	return order + ", lower(u.username)"
}

// buildUserUpdate returns the SET clause for the whitelisted fields present in fields.
// Unknown names are ignored. ok is false when nothing is left to write.
func buildUserUpdate(fields model.UserFields, a *args) (set string, ok bool) {
	return buildSet(updatableColumns, fields, a)
}

// buildContactUpdate is buildUserUpdate for contacts.
func buildContactUpdate(fields model.ContactFields, a *args) (set string, ok bool) {
	return buildSet(updatableContactColumns, fields, a)
}

func buildSet(columns []string, fields map[string]any, a *args) (string, bool) {
	parts := []string{}
	for _, col := range columns {
		v, present := fields[col]
		if !present {
			continue
		}
		if r, isRole := v.(model.Role); isRole {
			v = string(r)
		}
		parts = append(parts, col+" = "+a.add(v))
	}
	if len(parts) == 0 {
		return "", false
	}
	parts = append(parts, "updated_at = now()")
	return strings.Join(parts, ", "), true
}

func buildContactWhere(ownerID int64, f model.ContactFilters, a *args) string {
	conds := []string{"c.user_id = " + a.add(ownerID)}
	if f.FirstName != "" {
		conds = append(conds, "c.first_name ILIKE '%' || "+a.add(escapeLike(f.FirstName))+" || '%'")
	}
	if f.LastName != "" {
		conds = append(conds, "c.last_name ILIKE '%' || "+a.add(escapeLike(f.LastName))+" || '%'")
	}
	if f.Email != "" {
		conds = append(conds, "c.email ILIKE '%' || "+a.add(escapeLike(f.Email))+" || '%'")
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

const (
	birthMonth = "EXTRACT(MONTH FROM c.birthdate)"
	birthDay   = "EXTRACT(DAY FROM c.birthdate)"
)

// buildBirthdayWindow matches birthdays whose month and day fall between from and to inclusive,
// ignoring the birth year. The window may wrap over the new year but must be shorter than a year.
// Feb 29 birthdays are kept when the window ends on Feb 28 of a common year.
func buildBirthdayWindow(from, to time.Time, a *args) string {
	first := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)

	var conds []string
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		lo, hi := 1, 31
		if m.Equal(first) {
			lo = from.Day()
		}
		if m.Equal(last) {
			hi = to.Day()
			if m.Month() == time.February && hi == 28 && !isLeap(m.Year()) {
				hi = 29
			}
		}

		cond := birthMonth + " = " + a.add(int(m.Month()))
		if lo > 1 || hi < 31 {
			cond += " AND " + birthDay + " BETWEEN " + a.add(lo) + " AND " + a.add(hi)
		}
		conds = append(conds, "("+cond+")")
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// buildBirthdayOrder sorts by month and day starting at the month of from, so a window
// crossing the new year lists December before January.
func buildBirthdayOrder(from time.Time, a *args) string {
	return " ORDER BY (" + birthMonth + " < " + a.add(int(from.Month())) + "), " +
		birthMonth + ", " + birthDay + ", lower(c.first_name), lower(c.last_name), c.id"
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
