package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/validate"
)

const (
	// DefaultBirthdayWindowDays is how far ahead UpcomingBirthdays looks by default.
	DefaultBirthdayWindowDays = 7
	maxBirthdayWindowDays     = 364
)

// Contact manages the address book of a user. Every operation is scoped to the owner passed in.
type Contact struct {
	store        model.ContactStore
	contactCache model.ContactCache
	countCache   model.ContactsCountCache
	windowDays   int
	feb29ToFeb28 bool
	now          func() time.Time
	logger       *logger.Logger
}

// ContactOption configures optional Contact collaborators.
type ContactOption func(*Contact)

// WithContactCache enables read-through caching of single contacts.
func WithContactCache(c model.ContactCache) ContactOption {
	return func(s *Contact) { s.contactCache = c }
}

// WithOwnerCountCache keeps the per-owner contact count cache in sync with writes.
func WithOwnerCountCache(c model.ContactsCountCache) ContactOption {
	return func(s *Contact) { s.countCache = c }
}

// WithBirthdayWindow sets the upcoming birthdays horizon in days and where Feb 29 birthdays
// are celebrated in common years: Feb 28 when moveToFeb28 is set, Mar 1 otherwise.
func WithBirthdayWindow(days int, moveToFeb28 bool) ContactOption {
	return func(s *Contact) {
		if days > 0 && days <= maxBirthdayWindowDays {
			s.windowDays = days
		}
		s.feb29ToFeb28 = moveToFeb28
	}
}

func withClock(now func() time.Time) ContactOption {
	return func(s *Contact) { s.now = now }
}

func NewContact(store model.ContactStore, logger *logger.Logger, opts ...ContactOption) *Contact {
	s := &Contact{
		store:        store,
		windowDays:   DefaultBirthdayWindowDays,
		feb29ToFeb28: true,
		now:          time.Now,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create adds a contact to the owner's address book.
func (s *Contact) Create(ctx context.Context, owner model.User, in model.ContactInput) (model.Contact, error) {
	in = trimContact(in)
	if err := validate.Contact(in, s.today()); err != nil {
		return model.Contact{}, err
	}

	contact, err := s.store.Create(ctx, owner.ID, in)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	s.logger.Debug("Contact service: contact created", "owner", owner, "contact", contact)

	s.cacheContact(ctx, contact)
	s.invalidateCount(ctx, owner.ID)

	return contact, nil
}

// List returns a page of the owner's contacts matching filters and the number of matches.
func (s *Contact) List(
	ctx context.Context,
	owner model.User,
	filters model.ContactFilters,
	page model.Pagination,
) ([]model.Contact, int, error) {
	total, err := s.store.Count(ctx, owner.ID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	if total == 0 {
		return []model.Contact{}, 0, nil
	}

	contacts, err := s.store.List(ctx, owner.ID, filters, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}

	return contacts, total, nil
}

// UpcomingBirthdays returns the owner's contacts whose birthday falls within the configured
// window starting today, ordered by the day each birthday is celebrated.
func (s *Contact) UpcomingBirthdays(
	ctx context.Context,
	owner model.User,
	page model.Pagination,
) ([]model.UpcomingBirthday, int, error) {
	from := s.today()
	to := from.AddDate(0, 0, s.windowDays)

	contacts, total, err := s.store.ListBirthdaysBetween(ctx, owner.ID, from, to, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list upcoming birthdays: %w", err)
	}

	result := make([]model.UpcomingBirthday, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, model.UpcomingBirthday{
			Contact:         c,
			CelebrationDate: CelebrationDate(c.Birthdate, celebrationYear(c.Birthdate, from), s.feb29ToFeb28),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.CelebrationDate.Equal(b.CelebrationDate) {
			return a.CelebrationDate.Before(b.CelebrationDate)
		}
		if !a.Contact.Birthdate.Equal(b.Contact.Birthdate) {
			return a.Contact.Birthdate.Before(b.Contact.Birthdate)
		}
		if fa, fb := strings.ToLower(a.Contact.FirstName), strings.ToLower(b.Contact.FirstName); fa != fb {
			return fa < fb
		}
		return strings.ToLower(a.Contact.LastName) < strings.ToLower(b.Contact.LastName)
	})

	return result, total, nil
}

// Get returns one of the owner's contacts, reading the cache first.
func (s *Contact) Get(ctx context.Context, owner model.User, contactID int64) (model.Contact, error) {
	if s.contactCache != nil {
		if contact, ok := s.contactCache.GetContact(ctx, owner.ID, contactID); ok {
			s.logger.Debug("Contact service: contact cache hit", "owner_id", owner.ID, "contact_id", contactID)
			return contact, nil
		}
		s.logger.Debug("Contact service: contact cache miss", "owner_id", owner.ID, "contact_id", contactID)
	}

	contact, err := s.store.GetByID(ctx, owner.ID, contactID)
	if err != nil {
		return model.Contact{}, wrapStoreErr("failed to get contact", err)
	}

	s.cacheContact(ctx, contact)

	return contact, nil
}

// Overwrite replaces every field of one of the owner's contacts.
func (s *Contact) Overwrite(
	ctx context.Context,
	owner model.User,
	contactID int64,
	in model.ContactInput,
) (model.Contact, error) {
	in = trimContact(in)
	if err := validate.Contact(in, s.today()); err != nil {
		return model.Contact{}, err
	}

	contact, err := s.store.UpdateByID(ctx, owner.ID, contactID, model.ContactFields{
		model.FieldFirstName:   in.FirstName,
		model.FieldLastName:    in.LastName,
		model.FieldEmail:       in.Email,
		model.FieldPhoneNumber: in.PhoneNumber,
		model.FieldBirthdate:   in.Birthdate,
		model.FieldInfo:        in.Info,
	})
	if err != nil {
		return model.Contact{}, wrapStoreErr("failed to overwrite contact", err)
	}

	s.logger.Debug("Contact service: contact overwritten", "owner", owner, "contact", contact)

	s.cacheContact(ctx, contact)

	return contact, nil
}

// Update applies a partial update to one of the owner's contacts. The contact must keep at
// least one non-empty name after the update.
func (s *Contact) Update(
	ctx context.Context,
	owner model.User,
	contactID int64,
	update model.ContactUpdate,
) (model.Contact, error) {
	if err := validate.ContactUpdate(update, s.today()); err != nil {
		return model.Contact{}, err
	}

	fields := model.ContactFields{}
	setString := func(field string, o model.Optional[string]) {
		if v, ok := o.Value(); ok {
			fields[field] = strings.TrimSpace(v)
		}
	}
	setString(model.FieldFirstName, update.FirstName)
	setString(model.FieldLastName, update.LastName)
	setString(model.FieldEmail, update.Email)
	setString(model.FieldPhoneNumber, update.PhoneNumber)
	setString(model.FieldInfo, update.Info)
	if b, ok := update.Birthdate.Value(); ok {
		fields[model.FieldBirthdate] = b
	}

	if update.FirstName.Present() || update.LastName.Present() {
		current, err := s.store.GetByID(ctx, owner.ID, contactID)
		if err != nil {
			return model.Contact{}, wrapStoreErr("failed to get contact", err)
		}
		first, last := current.FirstName, current.LastName
		if v, ok := fields[model.FieldFirstName].(string); ok {
			first = v
		}
		if v, ok := fields[model.FieldLastName].(string); ok {
			last = v
		}
		if err := validate.ContactNames(first, last, update); err != nil {
			return model.Contact{}, err
		}
	}

	contact, err := s.store.UpdateByID(ctx, owner.ID, contactID, fields)
	if err != nil {
		return model.Contact{}, wrapStoreErr("failed to update contact", err)
	}

	s.logger.Debug("Contact service: contact updated", "owner", owner, "contact", contact)

	s.cacheContact(ctx, contact)

	return contact, nil
}

// Remove deletes one of the owner's contacts and returns its last state.
func (s *Contact) Remove(ctx context.Context, owner model.User, contactID int64) (model.Contact, error) {
	contact, err := s.store.RemoveByID(ctx, owner.ID, contactID)
	if err != nil {
		return model.Contact{}, wrapStoreErr("failed to remove contact", err)
	}

	s.logger.Debug("Contact service: contact removed", "owner", owner, "contact", contact)

	if s.contactCache != nil {
		s.contactCache.InvalidateContact(ctx, owner.ID, contactID)
	}
	s.invalidateCount(ctx, owner.ID)

	return contact, nil
}

// CelebrationDate returns the day a birthday is celebrated in year. Feb 29 birthdays move to
// Feb 28 or Mar 1 in common years and weekend birthdays move to the following Monday.
func CelebrationDate(birthdate time.Time, year int, feb29ToFeb28 bool) time.Time {
	month, day := birthdate.Month(), birthdate.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		if feb29ToFeb28 {
			day = 28
		} else {
			month, day = time.March, 1
		}
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	switch d.Weekday() {
	case time.Saturday:
		d = d.AddDate(0, 0, 2)
	case time.Sunday:
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// celebrationYear is the year of the next birthday on or after from.
func celebrationYear(birthdate, from time.Time) int {
	if birthdate.Month() < from.Month() || (birthdate.Month() == from.Month() && birthdate.Day() < from.Day()) {
		return from.Year() + 1
	}
	return from.Year()
}

func (s *Contact) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Contact) cacheContact(ctx context.Context, contact model.Contact) {
	if s.contactCache != nil {
		s.contactCache.SetContact(ctx, contact)
	}
}

func (s *Contact) invalidateCount(ctx context.Context, ownerID int64) {
	if s.countCache != nil {
		s.countCache.InvalidateContactsCount(ctx, ownerID)
	}
}

func trimContact(in model.ContactInput) model.ContactInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Info = strings.TrimSpace(in.Info)
	return in
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
