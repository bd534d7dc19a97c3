package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/apierror"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

// ContactService defines the address book operations exposed over the API.
type ContactService interface {
	Create(ctx context.Context, owner model.User, in model.ContactInput) (model.Contact, error)
	List(ctx context.Context, owner model.User, filters model.ContactFilters, page model.Pagination) ([]model.Contact, int, error)
	UpcomingBirthdays(ctx context.Context, owner model.User, page model.Pagination) ([]model.UpcomingBirthday, int, error)
	Get(ctx context.Context, owner model.User, contactID int64) (model.Contact, error)
	Overwrite(ctx context.Context, owner model.User, contactID int64, in model.ContactInput) (model.Contact, error)
	Update(ctx context.Context, owner model.User, contactID int64, update model.ContactUpdate) (model.Contact, error)
	Remove(ctx context.Context, owner model.User, contactID int64) (model.Contact, error)
}

var _ ContactsServer = (*Contacts)(nil)

// Contacts handles gRPC endpoints for the address book of the authenticated user.
type Contacts struct {
	contacts       ContactService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewContacts(contacts ContactService, contextManager model.ContextManager, logger *logger.Logger) *Contacts {
	return &Contacts{
		contacts:       contacts,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create adds a contact. email, phone_number and birthdate are required along with at
// least one of first_name and last_name.
func (h *Contacts) Create(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	owner, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	input, err := contactInput(newRequest(in))
	if err != nil {
		return nil, apierror.ToStatus(err)
	}

	contact, err := h.contacts.Create(ctx, owner, input)
	if err != nil {
		h.logError("creation failed", err, "owner", owner)
		return nil, contactStatus(err)
	}

	h.logger.Info("Contacts handler: contact created", "owner", owner, "contact", contact)

	return contactToStruct(contact), nil
}

// List returns a page of contacts filtered by partial first_name, last_name and email.
func (h *Contacts) List(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	owner, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	page := pageOf(req)
	filters := model.ContactFilters{
		FirstName: strings.TrimSpace(req.str("first_name")),
		LastName:  strings.TrimSpace(req.str("last_name")),
		Email:     strings.TrimSpace(req.str("email")),
	}
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	contacts, total, err := h.contacts.List(ctx, owner, filters, page)
	if err != nil {
		h.logError("listing failed", err, "owner", owner)
		return nil, contactStatus(err)
	}

	items := make([]*structpb.Value, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, structpb.NewStructValue(contactToStruct(c)))
	}
	return pageStruct(total, page, items), nil
}

// UpcomingBirthdays returns a page of contacts celebrating soon, each with its celebration_date.
func (h *Contacts) UpcomingBirthdays(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	owner, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	page := pageOf(req)
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	rows, total, err := h.contacts.UpcomingBirthdays(ctx, owner, page)
	if err != nil {
		h.logError("upcoming birthdays failed", err, "owner", owner)
		return nil, contactStatus(err)
	}

	items := make([]*structpb.Value, 0, len(rows))
	for _, row := range rows {
		items = append(items, structpb.NewStructValue(upcomingBirthdayToStruct(row)))
	}
	return pageStruct(total, page, items), nil
}

func (h *Contacts) Get(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	owner, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	id := req.id("contact_id")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	contact, err := h.contacts.Get(ctx, owner, id)
	if err != nil {
		h.logError("lookup failed", err, "owner", owner, "contact_id", id)
		return nil, contactStatus(err)
	}

	return contactToStruct(contact), nil
}

// Overwrite replaces every field of a contact. It takes the same fields as Create.
func (h *Contacts) Overwrite(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	owner, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	id := req.id("contact_id")
	input, err := contactInput(req)
	if err != nil {
		return nil, apierror.ToStatus(err)
	}

	contact, err := h.contacts.Overwrite(ctx, owner, id, input)
	if err != nil {
		h.logError("overwrite failed", err, "owner", owner, "contact_id", id)
		return nil, contactStatus(err)
	}

	h.logger.Info("Contacts handler: contact overwritten", "owner", owner, "contact", contact)

	return contactToStruct(contact), nil
}

// Update changes only the fields present in the request.
func (h *Contacts) Update(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	owner, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	id := req.id("contact_id")
	update := model.ContactUpdate{
		FirstName:   req.optionalString(model.FieldFirstName),
		LastName:    req.optionalString(model.FieldLastName),
		Email:       req.optionalString(model.FieldEmail),
		PhoneNumber: req.optionalString(model.FieldPhoneNumber),
		Birthdate:   req.optionalDate(model.FieldBirthdate),
		Info:        req.optionalString(model.FieldInfo),
	}
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	contact, err := h.contacts.Update(ctx, owner, id, update)
	if err != nil {
		h.logError("update failed", err, "owner", owner, "contact_id", id)
		return nil, contactStatus(err)
	}

	h.logger.Info("Contacts handler: contact updated", "owner", owner, "contact", contact)

	return contactToStruct(contact), nil
}

// Delete removes a contact and returns its last state.
func (h *Contacts) Delete(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	owner, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	id := req.id("contact_id")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	contact, err := h.contacts.Remove(ctx, owner, id)
	if err != nil {
		h.logError("deletion failed", err, "owner", owner, "contact_id", id)
		return nil, contactStatus(err)
	}

	h.logger.Info("Contacts handler: contact deleted", "owner", owner, "contact", contact)

	return contactToStruct(contact), nil
}

func (h *Contacts) currentUser(ctx context.Context) (model.User, error) {
	user, ok := h.contextManager.GetUserFromContext(ctx)
	if !ok {
		return model.User{}, status.Error(codes.Unauthenticated, apierror.MessageInvalidToken)
	}
	return user, nil
}

func (h *Contacts) logError(msg string, err error, args ...any) {
	logError(h.logger, "Contacts handler: "+msg, err, args...)
}

// contactInput reads a complete contact and reports every field problem of req at once.
func contactInput(req *request) (model.ContactInput, error) {
	in := model.ContactInput{
		FirstName:   req.str(model.FieldFirstName),
		LastName:    req.str(model.FieldLastName),
		Email:       req.requiredString(model.FieldEmail),
		PhoneNumber: req.requiredString(model.FieldPhoneNumber),
		Birthdate:   req.date(model.FieldBirthdate),
		Info:        req.str(model.FieldInfo),
	}
	if _, failed := req.errs[model.FieldBirthdate]; !failed && in.Birthdate.IsZero() {
		req.errs[model.FieldBirthdate] = "birthdate is required"
	}
	return in, req.err()
}

func contactStatus(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return status.Error(codes.NotFound, apierror.MessageContactNotFound)
	}
	return apierror.ToStatus(err)
}

func pageOf(req *request) model.Pagination {
	return model.Pagination{
		Skip:  req.intOr("skip", 0),
		Limit: req.intOr("limit", model.DefaultPageLimit),
	}.Normalize()
}

func pageStruct(total int, page model.Pagination, items []*structpb.Value) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"total": structpb.NewNumberValue(float64(total)),
		"skip":  structpb.NewNumberValue(float64(page.Skip)),
		"limit": structpb.NewNumberValue(float64(page.Limit)),
		"items": structpb.NewListValue(&structpb.ListValue{Values: items}),
	}}
}
