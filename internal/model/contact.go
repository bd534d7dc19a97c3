package model

import (
	"context"
	"log/slog"
	"time"
)

// DateLayout is the wire and storage layout of calendar dates such as birthdates.
const DateLayout = "2006-01-02"

// ContactStore defines persistence operations for contacts. Every operation is scoped to the
// owning user: a contact of another owner behaves exactly like a missing one.
type ContactStore interface {
	Create(ctx context.Context, ownerID int64, in ContactInput) (Contact, error)
	GetByID(ctx context.Context, ownerID, id int64) (Contact, error)
	Count(ctx context.Context, ownerID int64, filters ContactFilters) (int, error)
	List(ctx context.Context, ownerID int64, filters ContactFilters, page Pagination) ([]Contact, error)
	ListBirthdaysBetween(ctx context.Context, ownerID int64, from, to time.Time, page Pagination) ([]Contact, int, error)
	UpdateByID(ctx context.Context, ownerID, id int64, fields ContactFields) (Contact, error)
	RemoveByID(ctx context.Context, ownerID, id int64) (Contact, error)
}

// ContactCache keeps single contact snapshots keyed by owner and contact id.
// Implementations never fail the caller.
type ContactCache interface {
	GetContact(ctx context.Context, ownerID, contactID int64) (Contact, bool)
	SetContact(ctx context.Context, contact Contact)
	InvalidateContact(ctx context.Context, ownerID, contactID int64)
}

// Contact is an address book entry owned by a user.
type Contact struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Birthdate   time.Time `json:"birthdate"`
	Info        string    `json:"info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LogValue keeps contact personal data out of log records.
func (c Contact) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("id", c.ID),
		slog.Int64("owner_id", c.UserID),
	)
}

// ContactInput is a complete contact as written by create and overwrite.
type ContactInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Birthdate   time.Time
	Info        string
}

// ContactUpdate is a partial contact update. Null is not accepted for any field.
type ContactUpdate struct {
	FirstName   Optional[string]
	LastName    Optional[string]
	Email       Optional[string]
	PhoneNumber Optional[string]
	Birthdate   Optional[time.Time]
	Info        Optional[string]
}

// Empty reports whether no field was provided.
func (u ContactUpdate) Empty() bool {
	return !u.FirstName.Present() && !u.LastName.Present() && !u.Email.Present() &&
		!u.PhoneNumber.Present() && !u.Birthdate.Present() && !u.Info.Present()
}

// Updatable contact columns.
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldPhoneNumber = "phone_number"
	FieldBirthdate   = "birthdate"
	FieldInfo        = "info"
)

// ContactFields maps column names to new values for a contact update.
// Stores ignore names they do not know.
type ContactFields map[string]any

// ContactFilters narrows contact listings. Matching is case-insensitive and partial.
type ContactFilters struct {
	FirstName string
	LastName  string
	Email     string
}

// UpcomingBirthday is a contact together with the day its birthday is celebrated.
type UpcomingBirthday struct {
	Contact         Contact
	CelebrationDate time.Time
}
