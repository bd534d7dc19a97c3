package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

var today = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

func validContact() model.ContactInput {
	return model.ContactInput{
		FirstName:   "Ann",
		LastName:    "Doe",
		Email:       "ann@example.com",
		PhoneNumber: "+380501234567",
		Birthdate:   time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC),
	}
}

func TestContact(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ContactInput)
		want   model.FieldErrors
	}{
		{name: "valid", mutate: func(*model.ContactInput) {}},
		{name: "last name only", mutate: func(in *model.ContactInput) { in.FirstName = "" }},
		{name: "born today", mutate: func(in *model.ContactInput) { in.Birthdate = today }},
		{
			name:   "no names",
			mutate: func(in *model.ContactInput) { in.FirstName, in.LastName = " ", "" },
			want:   model.FieldErrors{"name": "At least first_name or last_name must be provided"},
		},
		{
			name:   "future birthdate",
			mutate: func(in *model.ContactInput) { in.Birthdate = today.AddDate(0, 0, 1) },
			want:   model.FieldErrors{"birthdate": "Birthdate cannot be in the future"},
		},
		{
			name:   "missing birthdate",
			mutate: func(in *model.ContactInput) { in.Birthdate = time.Time{} },
			want:   model.FieldErrors{"birthdate": "Birthdate is required"},
		},
		{
			name: "bad contact channels",
			mutate: func(in *model.ContactInput) {
				in.Email = "nope"
				in.PhoneNumber = ""
			},
			want: model.FieldErrors{"email": "Invalid email address", "phone_number": "Phone number is required"},
		},
		{
			name:   "long name",
			mutate: func(in *model.ContactInput) { in.LastName = strings.Repeat("x", 51) },
			want:   model.FieldErrors{"last_name": "Name must be at most 50 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validContact()
			tt.mutate(&in)
			err := Contact(in, today)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, fieldsOf(t, err))
		})
	}
}

func TestContactUpdate(t *testing.T) {
	fields := fieldsOf(t, ContactUpdate(model.ContactUpdate{}, today))
	assert.Equal(t, "At least one field must be provided for update", fields["fields"])

	require.NoError(t, ContactUpdate(model.ContactUpdate{FirstName: model.Some("")}, today))
	require.NoError(t, ContactUpdate(model.ContactUpdate{Info: model.Some("friend")}, today))

	fields = fieldsOf(t, ContactUpdate(model.ContactUpdate{
		Email:       model.Null[string](),
		PhoneNumber: model.Some(strings.Repeat("1", 41)),
		Birthdate:   model.Some(today.AddDate(1, 0, 0)),
	}, today))
	assert.Equal(t, model.FieldErrors{
		"email":        "email can't be null",
		"phone_number": "Phone number must be at most 40 characters",
		"birthdate":    "Birthdate cannot be in the future",
	}, fields)
}

func TestContactNames(t *testing.T) {
	require.NoError(t, ContactNames("", "Doe", model.ContactUpdate{FirstName: model.Some("")}))

	fields := fieldsOf(t, ContactNames("", "", model.ContactUpdate{FirstName: model.Some(""), LastName: model.Some(" ")}))
	assert.Equal(t, model.FieldErrors{
		"name":       "At least first_name or last_name must be provided",
		"first_name": "first_name can't be empty",
		"last_name":  "last_name can't be empty",
	}, fields)

	fields = fieldsOf(t, ContactNames("", "", model.ContactUpdate{FirstName: model.Some("")}))
	assert.NotContains(t, fields, "last_name")
}
