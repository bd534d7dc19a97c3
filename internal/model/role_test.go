package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "user", want: RoleUser},
		{in: " Admin ", want: RoleAdmin},
		{in: "MODERATOR", want: RoleModerator},
		{in: "superadmin", want: RoleSuperadmin},
		{in: "", wantErr: true},
		{in: "root", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_Order(t *testing.T) {
	for i := 1; i < len(Roles); i++ {
		assert.True(t, Roles[i].AtLeast(Roles[i-1]))
		assert.False(t, Roles[i-1].AtLeast(Roles[i]))
	}
	assert.False(t, Role("ghost").Valid())
	assert.True(t, RoleUser.AtLeast(Role("ghost")))
}

func TestOptional_States(t *testing.T) {
	var absent Optional[string]
	assert.False(t, absent.Present())
	assert.False(t, absent.IsNull())

	null := Null[string]()
	assert.True(t, null.Present())
	assert.True(t, null.IsNull())
	_, ok := null.Value()
	assert.False(t, ok)

	set := Some("x")
	v, ok := set.Value()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.False(t, set.IsNull())
}

func TestAdminUserUpdate_Empty(t *testing.T) {
	assert.True(t, AdminUserUpdate{}.Empty())

	u := AdminUserUpdate{IsActive: Some(true), Avatar: Null[string]()}
	assert.False(t, u.Empty())
	assert.Equal(t, []string{FieldIsActive, FieldAvatar}, u.Provided())
}

func TestStructuredErrors(t *testing.T) {
	var err error = NewConflictError(FieldErrors{"username": "taken", "email": "registered"})
	assert.ErrorIs(t, err, ErrUserConflict)
	assert.Equal(t, "user conflict: email: registered; username: taken", err.Error())

	err = NewBadProvidedDataError(FieldErrors{"role": "Invalid role: x"})
	assert.ErrorIs(t, err, ErrBadProvidedData)

	err = &PermissionDeniedError{Reason: "self_delete", Message: "Users cannot delete themselves"}
	assert.ErrorIs(t, err, ErrPermissionDenied)
	var denied *PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "self_delete", denied.Reason)
}

func TestNewUserWithStats(t *testing.T) {
	u := User{ID: 7, Username: "john", Email: "j@x.io", Role: RoleAdmin, IsActive: true}

	full := NewUserWithStats(u, 3, true)
	require.NotNil(t, full.ContactsCount)
	assert.Equal(t, 3, *full.ContactsCount)
	require.NotNil(t, full.IsActive)
	assert.True(t, *full.IsActive)

	redacted := NewUserWithStats(u, 3, false)
	assert.Nil(t, redacted.ContactsCount)
	assert.Nil(t, redacted.IsActive)
	assert.Nil(t, redacted.CreatedAt)
	assert.Equal(t, "john", redacted.Username)
}

func TestPagination_Normalize(t *testing.T) {
	assert.Equal(t, Pagination{Skip: 0, Limit: DefaultPageLimit}, Pagination{Skip: -1}.Normalize())
	assert.Equal(t, Pagination{Skip: 5, Limit: MaxPageLimit}, Pagination{Skip: 5, Limit: 1000}.Normalize())
}
