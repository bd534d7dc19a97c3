package model

import (
	"context"
	"log/slog"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user NewUser) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdateByID(ctx context.Context, id int64, fields UserFields) (User, error)
	RemoveByID(ctx context.Context, id int64) (User, error)
	ConfirmEmailIfUnconfirmed(ctx context.Context, id int64) (User, error)
	Count(ctx context.Context, filters UserFilters) (int, error)
	List(ctx context.Context, filters UserFilters, page Pagination) ([]UserWithCount, error)
	CountContacts(ctx context.Context, userID int64) (int, error)
}

// UserProvider is the part of the user service that sessions depend on.
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (User, error)
	ValidateCredentials(ctx context.Context, username, password string) (User, error)
	ConfirmEmail(ctx context.Context, userID int64, email string) (User, error)
}

// User is a stored account snapshot.
type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	HashedPassword   string    `json:"hashed_password"`
	Role             Role      `json:"role"`
	Avatar           *string   `json:"avatar"`
	IsActive         bool      `json:"is_active"`
	IsEmailConfirmed bool      `json:"is_email_confirmed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LogValue keeps password hashes and emails out of log records.
func (u User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("id", u.ID),
		slog.String("username", u.Username),
		slog.String("role", string(u.Role)),
	)
}

// AvatarURL returns the avatar reference or an empty string.
func (u User) AvatarURL() string {
	if u.Avatar == nil {
		return ""
	}
	return *u.Avatar
}

// NewUser holds the fields required to insert a user.
type NewUser struct {
	Username       string
	Email          string
	HashedPassword string
	Role           Role
	Avatar         *string
	IsActive       bool
}

// Updatable user columns.
const (
	FieldUsername       = "username"
	FieldEmail          = "email"
	FieldHashedPassword = "hashed_password"
	FieldRole           = "role"
	FieldIsActive       = "is_active"
	FieldAvatar         = "avatar"
)

// UserFields maps column names to new values for a partial update.
// Stores ignore names they do not know.
type UserFields map[string]any

// UserWithCount is a listing row as returned by the store.
type UserWithCount struct {
	User          User
	ContactsCount int
}

// UserWithStats is a listing row after visibility rules were applied.
// Redacted rows carry nil personal fields.
type UserWithStats struct {
	ID               int64      `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Role             Role       `json:"role"`
	Avatar           *string    `json:"avatar"`
	IsEmailConfirmed *bool      `json:"is_email_confirmed"`
	IsActive         *bool      `json:"is_active"`
	ContactsCount    *int       `json:"contacts_count"`
	CreatedAt        *time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// NewUserWithStats builds a listing row, hiding personal data when full is false.
func NewUserWithStats(u User, contactsCount int, full bool) UserWithStats {
	row := UserWithStats{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Avatar:   u.Avatar,
	}
	if !full {
		return row
	}

	confirmed, active := u.IsEmailConfirmed, u.IsActive
	created, updated := u.CreatedAt, u.UpdatedAt
	row.IsEmailConfirmed = &confirmed
	row.IsActive = &active
	row.ContactsCount = &contactsCount
	row.CreatedAt = &created
	row.UpdatedAt = &updated
	return row
}

// UserFilters narrows user listings and counts.
type UserFilters struct {
	Username      string
	Email         string
	Role          *Role
	IsActive      *bool
	InactiveLast  bool
	ExcludeUserID *int64

	// Requester scope, filled by the service from the role policy.
	ExcludeSuperadmins bool
	HideInactiveAdmins bool
}

// Pagination limits a listing window.
type Pagination struct {
	Skip  int
	Limit int
}

// Normalize clamps pagination into sane bounds.
func (p Pagination) Normalize() Pagination {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

const (
	// DefaultPageLimit is used when a listing does not specify a limit.
	DefaultPageLimit = 20
	// MaxPageLimit caps listing windows.
	MaxPageLimit = 100
)

// AdminUserUpdate is a partial update issued through the admin path.
type AdminUserUpdate struct {
	Username Optional[string]
	Role     Optional[string]
	IsActive Optional[bool]
	// Avatar only accepts an explicit null which resets it to the default avatar.
	Avatar Optional[string]
}

// Empty reports whether no field was provided.
func (u AdminUserUpdate) Empty() bool {
	return !u.Username.Present() && !u.Role.Present() && !u.IsActive.Present() && !u.Avatar.Present()
}

// Provided lists the names of provided fields, used in audit logs.
func (u AdminUserUpdate) Provided() []string {
	var names []string
	if u.Username.Present() {
		names = append(names, FieldUsername)
	}
	if u.Role.Present() {
		names = append(names, FieldRole)
	}
	if u.IsActive.Present() {
		names = append(names, FieldIsActive)
	}
	if u.Avatar.Present() {
		names = append(names, FieldAvatar)
	}
	return names
}

// AdminUpdateResult is returned by an admin update.
type AdminUpdateResult struct {
	User        User
	AvatarReset bool
	// OldAvatar is set when AvatarReset is true so the caller can clean up the previous file.
	OldAvatar *string
}

// AdminDeleteResult is returned by an admin deletion.
type AdminDeleteResult struct {
	User   User
	Avatar *string
}

// UserView is a single user looked up through the admin path.
type UserView struct {
	User     User
	ShowFull bool
}
