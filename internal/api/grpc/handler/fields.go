package handler

import (
	"fmt"
	"math"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

// request reads typed fields out of a Struct and collects field problems on the way.
type request struct {
	fields map[string]*structpb.Value
	errs   model.FieldErrors
}

func newRequest(in *structpb.Struct) *request {
	return &request{fields: in.GetFields(), errs: model.FieldErrors{}}
}

// err returns the collected problems as a BadProvidedDataError.
func (r *request) err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return model.NewBadProvidedDataError(r.errs)
}

func (r *request) has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

func (r *request) isNull(name string) bool {
	v, ok := r.fields[name]
	if !ok {
		return false
	}
	_, null := v.GetKind().(*structpb.Value_NullValue)
	return null
}

// str returns the field as a string. Absent and null fields yield "".
func (r *request) str(name string) string {
	v, ok := r.fields[name]
	if !ok || r.isNull(name) {
		return ""
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		r.errs[name] = fmt.Sprintf("%s must be a string", name)
		return ""
	}
	return s.StringValue
}

// requiredString is str with a presence check.
func (r *request) requiredString(name string) string {
	s := r.str(name)
	if _, failed := r.errs[name]; failed {
		return ""
	}
	if strings.TrimSpace(s) == "" {
		r.errs[name] = fmt.Sprintf("%s is required", name)
	}
	return s
}

func (r *request) boolPtr(name string) *bool {
	v, ok := r.fields[name]
	if !ok || r.isNull(name) {
		return nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		r.errs[name] = fmt.Sprintf("%s must be a boolean", name)
		return nil
	}
	return &b.BoolValue
}

func (r *request) int64Ptr(name string) *int64 {
	v, ok := r.fields[name]
	if !ok || r.isNull(name) {
		return nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > 1<<53 {
		r.errs[name] = fmt.Sprintf("%s must be an integer", name)
		return nil
	}
	i := int64(n.NumberValue)
	return &i
}

// intOr returns the integer field or def when absent.
func (r *request) intOr(name string, def int) int {
	p := r.int64Ptr(name)
	if p == nil {
		return def
	}
	return int(*p)
}

// id returns a required positive identifier.
func (r *request) id(name string) int64 {
	p := r.int64Ptr(name)
	if p == nil {
		if _, failed := r.errs[name]; !failed {
			r.errs[name] = fmt.Sprintf("%s is required", name)
		}
		return 0
	}
	if *p <= 0 {
		r.errs[name] = fmt.Sprintf("%s must be positive", name)
	}
	return *p
}

// optionalString distinguishes an absent field, an explicit null and a value.
func (r *request) optionalString(name string) model.Optional[string] {
	if !r.has(name) {
		return model.Optional[string]{}
	}
	if r.isNull(name) {
		return model.Null[string]()
	}
	s := r.str(name)
	if _, failed := r.errs[name]; failed {
		return model.Optional[string]{}
	}
	return model.Some(s)
}

func (r *request) optionalBool(name string) model.Optional[bool] {
	if !r.has(name) {
		return model.Optional[bool]{}
	}
	if r.isNull(name) {
		return model.Null[bool]()
	}
	b := r.boolPtr(name)
	if b == nil {
		return model.Optional[bool]{}
	}
	return model.Some(*b)
}

// date returns the field parsed as a calendar date. Absent and null fields yield the zero time.
func (r *request) date(name string) time.Time {
	s := r.str(name)
	if s == "" {
		return time.Time{}
	}
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		r.errs[name] = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name)
		return time.Time{}
	}
	return d
}

func (r *request) optionalDate(name string) model.Optional[time.Time] {
	if !r.has(name) {
		return model.Optional[time.Time]{}
	}
	if r.isNull(name) {
		return model.Null[time.Time]()
	}
	d := r.date(name)
	if _, failed := r.errs[name]; failed {
		return model.Optional[time.Time]{}
	}
	return model.Some(d)
}

func stringOrNull(s *string) *structpb.Value {
	if s == nil {
		return structpb.NewNullValue()
	}
	return structpb.NewStringValue(*s)
}

func boolOrNull(b *bool) *structpb.Value {
	if b == nil {
		return structpb.NewNullValue()
	}
	return structpb.NewBoolValue(*b)
}

func intOrNull(n *int) *structpb.Value {
	if n == nil {
		return structpb.NewNullValue()
	}
	return structpb.NewNumberValue(float64(*n))
}

func timeOrNull(t *time.Time) *structpb.Value {
	if t == nil || t.IsZero() {
		return structpb.NewNullValue()
	}
	return structpb.NewStringValue(t.UTC().Format(time.RFC3339))
}

func userToStruct(u model.User) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":                 structpb.NewNumberValue(float64(u.ID)),
		"username":           structpb.NewStringValue(u.Username),
		"email":              structpb.NewStringValue(u.Email),
		"role":               structpb.NewStringValue(string(u.Role)),
		"avatar":             stringOrNull(u.Avatar),
		"is_active":          structpb.NewBoolValue(u.IsActive),
		"is_email_confirmed": structpb.NewBoolValue(u.IsEmailConfirmed),
		"created_at":         timeOrNull(&u.CreatedAt),
		"updated_at":         timeOrNull(&u.UpdatedAt),
	}}
}

func userWithStatsToStruct(u model.UserWithStats) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":                 structpb.NewNumberValue(float64(u.ID)),
		"username":           structpb.NewStringValue(u.Username),
		"email":              structpb.NewStringValue(u.Email),
		"role":               structpb.NewStringValue(string(u.Role)),
		"avatar":             stringOrNull(u.Avatar),
		"is_active":          boolOrNull(u.IsActive),
		"is_email_confirmed": boolOrNull(u.IsEmailConfirmed),
		"contacts_count":     intOrNull(u.ContactsCount),
		"created_at":         timeOrNull(u.CreatedAt),
		"updated_at":         timeOrNull(u.UpdatedAt),
	}}
}

func contactToStruct(c model.Contact) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":           structpb.NewNumberValue(float64(c.ID)),
		"first_name":   structpb.NewStringValue(c.FirstName),
		"last_name":    structpb.NewStringValue(c.LastName),
		"email":        structpb.NewStringValue(c.Email),
		"phone_number": structpb.NewStringValue(c.PhoneNumber),
		"birthdate":    structpb.NewStringValue(c.Birthdate.Format(model.DateLayout)),
		"info":         structpb.NewStringValue(c.Info),
		"created_at":   timeOrNull(&c.CreatedAt),
		"updated_at":   timeOrNull(&c.UpdatedAt),
	}}
}

func upcomingBirthdayToStruct(b model.UpcomingBirthday) *structpb.Struct {
	s := contactToStruct(b.Contact)
	s.Fields["celebration_date"] = structpb.NewStringValue(b.CelebrationDate.Format(model.DateLayout))
	return s
}

func tokenPairToStruct(p model.TokenPair) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"access_token":  structpb.NewStringValue(p.AccessToken),
		"refresh_token": structpb.NewStringValue(p.RefreshToken),
		"token_type":    structpb.NewStringValue(p.TokenType),
	}}
}

func messageStruct(msg string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"message": structpb.NewStringValue(msg),
	}}
}
