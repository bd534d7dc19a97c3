package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

func TestBuildUserWhere(t *testing.T) {
	role := model.RoleModerator
	active := false
	excluded := int64(7)

	tests := []struct {
		name     string
		filters  model.UserFilters
		wantSQL  string
		wantArgs args
	}{
		{
			name:    "no filters",
			wantSQL: "",
		},
		{
			name:    "admin scope",
			filters: model.UserFilters{ExcludeSuperadmins: true, HideInactiveAdmins: true},
			wantSQL: " WHERE u.role <> 'superadmin' AND NOT (u.role = 'admin' AND u.is_active = FALSE)",
		},
		{
			name: "all filters",
			filters: model.UserFilters{
				ExcludeSuperadmins: true,
				ExcludeUserID:      &excluded,
				Username:           "jo_hn",
				Email:              "example",
				Role:               &role,
				IsActive:           &active,
			},
			wantSQL: " WHERE u.role <> 'superadmin' AND u.id <> $1" +
				" AND u.username ILIKE '%' || $2 || '%'" +
				" AND u.email ILIKE '%' || $3 || '%'" +
				" AND u.role = $4 AND u.is_active = $5",
			wantArgs: args{int64(7), `jo\_hn`, "example", "moderator", false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := args{}
			got := buildUserWhere(tt.filters, &a)
			assert.Equal(t, tt.wantSQL, got)
			if tt.wantArgs == nil {
				assert.Empty(t, a)
			} else {
				assert.Equal(t, tt.wantArgs, a)
			}
		})
	}
}

func TestBuildUserOrder(t *testing.T) {
	assert.Contains(t, buildUserOrder(model.UserFilters{}), "END, lower(u.username)")
	assert.Contains(t, buildUserOrder(model.UserFilters{InactiveLast: true}), "END, u.is_active DESC, lower(u.username)")
}

func TestBuildUserUpdate(t *testing.T) {
	t.Run("whitelisted fields only", func(t *testing.T) {
		a := args{}
		set, ok := buildUserUpdate(model.UserFields{
			model.FieldRole:     model.RoleAdmin,
			model.FieldIsActive: false,
			"id":                99,
			"created_at":        "now",
		}, &a)

		assert.True(t, ok)
		assert.Equal(t, "role = $1, is_active = $2, updated_at = now()", set)
		assert.Equal(t, args{"admin", false}, a)
	})

	t.Run("nothing to write", func(t *testing.T) {
		a := args{}
		_, ok := buildUserUpdate(model.UserFields{"unknown": 1}, &a)
		assert.False(t, ok)
		assert.Empty(t, a)
	})

	t.Run("null avatar", func(t *testing.T) {
		a := args{}
		set, ok := buildUserUpdate(model.UserFields{model.FieldAvatar: (*string)(nil)}, &a)
		assert.True(t, ok)
		assert.Equal(t, "avatar = $1, updated_at = now()", set)
		assert.Len(t, a, 1)
	})
}

func TestBuildContactWhere(t *testing.T) {
	a := args{}
	assert.Equal(t, " WHERE c.user_id = $1", buildContactWhere(4, model.ContactFilters{}, &a))
	assert.Equal(t, args{int64(4)}, a)

	a = args{}
	got := buildContactWhere(4, model.ContactFilters{FirstName: "an", LastName: "d%e", Email: "mail"}, &a)
	assert.Equal(t, " WHERE c.user_id = $1"+
		" AND c.first_name ILIKE '%' || $2 || '%'"+
		" AND c.last_name ILIKE '%' || $3 || '%'"+
		" AND c.email ILIKE '%' || $4 || '%'", got)
	assert.Equal(t, args{int64(4), "an", `d\%e`, "mail"}, a)
}

func TestBuildContactUpdate(t *testing.T) {
	birthdate := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	a := args{}
	set, ok := buildContactUpdate(model.ContactFields{
		model.FieldLastName:  "Doe",
		model.FieldBirthdate: birthdate,
		"user_id":            9,
	}, &a)

	assert.True(t, ok)
	assert.Equal(t, "last_name = $1, birthdate = $2, updated_at = now()", set)
	assert.Equal(t, args{"Doe", birthdate}, a)

	_, ok = buildContactUpdate(model.ContactFields{"user_id": 9}, &args{})
	assert.False(t, ok)
}

func TestBuildBirthdayWindow(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	month := "EXTRACT(MONTH FROM c.birthdate)"
	days := "EXTRACT(DAY FROM c.birthdate)"

	tests := []struct {
		name     string
		from, to time.Time
		wantSQL  string
		wantArgs args
	}{
		{
			name:     "same month",
			from:     day(2025, time.March, 3),
			to:       day(2025, time.March, 10),
			wantSQL:  "((" + month + " = $1 AND " + days + " BETWEEN $2 AND $3))",
			wantArgs: args{3, 3, 10},
		},
		{
			name: "spans two months",
			from: day(2025, time.January, 28),
			to:   day(2025, time.February, 4),
			wantSQL: "((" + month + " = $1 AND " + days + " BETWEEN $2 AND $3)" +
				" OR (" + month + " = $4 AND " + days + " BETWEEN $5 AND $6))",
			wantArgs: args{1, 28, 31, 2, 1, 4},
		},
		{
			name: "wraps the new year",
			from: day(2025, time.December, 28),
			to:   day(2026, time.January, 4),
			wantSQL: "((" + month + " = $1 AND " + days + " BETWEEN $2 AND $3)" +
				" OR (" + month + " = $4 AND " + days + " BETWEEN $5 AND $6))",
			wantArgs: args{12, 28, 31, 1, 1, 4},
		},
		{
			name:     "common year keeps leap day birthdays",
			from:     day(2025, time.February, 22),
			to:       day(2025, time.February, 28),
			wantSQL:  "((" + month + " = $1 AND " + days + " BETWEEN $2 AND $3))",
			wantArgs: args{2, 22, 29},
		},
		{
			name:     "window ending before the last day of the month",
			from:     day(2025, time.April, 1),
			to:       day(2025, time.April, 30),
			wantSQL:  "((" + month + " = $1 AND " + days + " BETWEEN $2 AND $3))",
			wantArgs: args{4, 1, 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := args{}
			assert.Equal(t, tt.wantSQL, buildBirthdayWindow(tt.from, tt.to, &a))
			assert.Equal(t, tt.wantArgs, a)
		})
	}
}

func TestBuildBirthdayOrder(t *testing.T) {
	a := args{}
	got := buildBirthdayOrder(time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC), &a)
	assert.Equal(t, " ORDER BY (EXTRACT(MONTH FROM c.birthdate) < $1), EXTRACT(MONTH FROM c.birthdate),"+
		" EXTRACT(DAY FROM c.birthdate), lower(c.first_name), lower(c.last_name), c.id", got)
	assert.Equal(t, args{12}, a)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_a\\b`, escapeLike(`100%_a\b`))
}
