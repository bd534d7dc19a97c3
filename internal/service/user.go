package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/policy"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/validate"
)

// Placeholder bootstrap credentials shipped in example env files. They are never accepted.
const (
	DefaultSuperadminEmail    = "superadmin@example.com"
	DefaultSuperadminPassword = "your_superadmin_secret_password"
)

// conflictInit is the conflict field reported when the bootstrap superadmin is already there.
const conflictInit = "init"

var _ model.UserProvider = (*User)(nil)

// User manages user accounts.
type User struct {
	store      model.UserStore
	hasher     model.PasswordHasher
	avatars    model.AvatarResolver
	userCache  model.UserCache
	countCache model.ContactsCountCache
	logger     *logger.Logger
}

// UserOption configures optional User collaborators.
type UserOption func(*User)

// WithUserCache enables read-through caching of user snapshots.
func WithUserCache(c model.UserCache) UserOption {
	return func(s *User) { s.userCache = c }
}

// WithContactsCountCache enables caching of contact counts.
func WithContactsCountCache(c model.ContactsCountCache) UserOption {
	return func(s *User) { s.countCache = c }
}

// NewUser creates a User service. Caches are optional; without them every read hits the store.
func NewUser(
	store model.UserStore,
	hasher model.PasswordHasher,
	avatars model.AvatarResolver,
	logger *logger.Logger,
	opts ...UserOption,
) *User {
	s := &User{
		store:   store,
		hasher:  hasher,
		avatars: avatars,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSuperuser creates the bootstrap superadmin account.
func (s *User) CreateSuperuser(ctx context.Context, username, email, password string) (model.User, error) {
	switch {
	case email == "":
		return model.User{}, model.NewBadProvidedDataError(model.FieldErrors{"email": "Email for superadmin is empty or missing."})
	case email == DefaultSuperadminEmail:
		return model.User{}, fmt.Errorf("%w: email for superadmin is a default email", model.ErrInvalidCredentials)
	case password == "":
		return model.User{}, fmt.Errorf("%w: password for superadmin is empty or missing", model.ErrInvalidCredentials)
	case password == DefaultSuperadminPassword:
		return model.User{}, fmt.Errorf("%w: password for superadmin is a default password", model.ErrInvalidCredentials)
	}

	_, err := s.store.GetByUsername(ctx, username)
	if err == nil {
		return model.User{}, model.NewConflictError(model.FieldErrors{conflictInit: "Superuser already exists"})
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return s.create(ctx, nil, username, email, password, model.RoleSuperadmin, true)
}

// SuperuserExists reports whether err is the CreateSuperuser conflict for an already seeded
// superadmin. Other conflicts, such as the configured email belonging to another account, are not.
func SuperuserExists(err error) bool {
	var conflict *model.ConflictError
	if !errors.As(err, &conflict) {
		return false
	}
	_, ok := conflict.Fields[conflictInit]
	return ok
}

// Register creates a regular active account.
func (s *User) Register(ctx context.Context, username, email, password string) (model.User, error) {
	return s.create(ctx, nil, username, email, password, model.RoleUser, true)
}

// CreateByAdmin creates an account on behalf of creator. An empty role means a regular user
// and a nil isActive means active.
func (s *User) CreateByAdmin(
	ctx context.Context,
	creator model.User,
	username, email, password, role string,
	isActive *bool,
) (model.User, error) {
	if role == "" {
		role = string(model.RoleUser)
	}
	r, err := parseRole(role)
	if err != nil {
		return model.User{}, err
	}

	if err := policy.CanCreate(creator.Role, r).Err(); err != nil {
		s.logger.Warn("User service: creation forbidden",
			"creator", creator,
			"username", username,
			"role", r,
			"error", err.Error())
		return model.User{}, err
	}

	active := true
	if isActive != nil {
		active = *isActive
	}

	return s.create(ctx, &creator, username, email, password, r, active)
}

func (s *User) create(
	ctx context.Context,
	creator *model.User,
	username, email, password string,
	role model.Role,
	isActive bool,
) (model.User, error) {
	conflicts := model.FieldErrors{}

	_, err := s.store.GetByUsername(ctx, username)
	switch {
	case err == nil:
		conflicts["username"] = "Username is already taken"
	case !errors.Is(err, model.ErrNotFound):
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	_, err = s.store.GetByEmail(ctx, email)
	switch {
	case err == nil:
		conflicts["email"] = "User with such Email is already registered"
	case !errors.Is(err, model.ErrNotFound):
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if len(conflicts) > 0 {
		return model.User{}, model.NewConflictError(conflicts)
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var avatar *string
	if url, ok := s.avatars.ResolveDefault(email); ok {
		avatar = &url
	} else {
		s.logger.Debug("User service: no default avatar resolved", "username", username)
	}

	user, err := s.store.Create(ctx, model.NewUser{
		Username:       username,
		Email:          strings.ToLower(strings.TrimSpace(email)),
		HashedPassword: hash,
		Role:           role,
		Avatar:         avatar,
		IsActive:       isActive,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if creator != nil {
		s.logger.Info("User service: user created", "creator", *creator, "user", user)
	} else {
		s.logger.Info("User service: user created", "user", user)
	}

	s.cacheUser(ctx, user)

	return user, nil
}

// GetByID returns a user, reading the cache first.
func (s *User) GetByID(ctx context.Context, id int64) (model.User, error) {
	if s.userCache != nil {
		if user, ok := s.userCache.GetUser(ctx, id); ok {
			s.logger.Debug("User service: user cache hit", "user_id", id)
			return user, nil
		}
		s.logger.Debug("User service: user cache miss", "user_id", id)
	} else {
		s.logger.Debug("User service: user cache skipped", "user_id", id)
	}

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, wrapStoreErr("failed to get user by id", err)
	}

	s.cacheUser(ctx, user)

	return user, nil
}

// GetByIDForAdmin returns a user as seen by requester. Users the requester may not see at all
// are reported as model.ErrNotFound.
func (s *User) GetByIDForAdmin(ctx context.Context, requester model.User, id int64) (model.UserView, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return model.UserView{}, err
	}

	switch policy.CanView(policy.SubjectOf(requester), policy.SubjectOf(user)) {
	case policy.Hidden:
		s.logger.Warn("User service: attempt to view hidden user",
			"requester", requester,
			"target_id", user.ID)
		return model.UserView{}, model.ErrNotFound
	case policy.Redacted:
		return model.UserView{User: user, ShowFull: false}, nil
	case policy.Full:
		return model.UserView{User: user, ShowFull: true}, nil
	}
	return model.UserView{}, model.ErrNotFound
}

// GetByUsername returns a user by case-insensitive username and warms the cache.
func (s *User) GetByUsername(ctx context.Context, username string) (model.User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return model.User{}, wrapStoreErr("failed to get user by username", err)
	}
	s.cacheUser(ctx, user)
	return user, nil
}

// GetByEmail returns a user by case-insensitive email and warms the cache.
func (s *User) GetByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, wrapStoreErr("failed to get user by email", err)
	}
	s.cacheUser(ctx, user)
	return user, nil
}

// ValidateCredentials returns the user when password matches.
func (s *User) ValidateCredentials(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("%w: user %q does not exist", model.ErrInvalidCredentials, username)
	}
	if err != nil {
		return model.User{}, err
	}

	if !s.hasher.Verify(ctx, password, user.HashedPassword) {
		return model.User{}, fmt.Errorf("%w: invalid password for user %q", model.ErrInvalidCredentials, username)
	}

	return user, nil
}

// UpdateAvatar stores a new avatar reference for user. A nil avatar clears it.
func (s *User) UpdateAvatar(ctx context.Context, user model.User, avatar *string) (model.User, error) {
	var value any
	if avatar != nil {
		trimmed := strings.TrimSpace(*avatar)
		value = &trimmed
	} else {
		value = (*string)(nil)
	}

	updated, err := s.store.UpdateByID(ctx, user.ID, model.UserFields{model.FieldAvatar: value})
	if err != nil {
		return model.User{}, wrapStoreErr("failed to update avatar", err)
	}

	s.logger.Debug("User service: avatar changed",
		"user", user,
		"old", user.AvatarURL(),
		"new", updated.AvatarURL())

	s.cacheUser(ctx, updated)

	return updated, nil
}

// UpdatePassword changes the password of user after verifying the current one.
func (s *User) UpdatePassword(ctx context.Context, user model.User, current, next string) (model.User, error) {
	if err := validate.PasswordChange(current, next); err != nil {
		return model.User{}, err
	}

	if !s.hasher.Verify(ctx, current, user.HashedPassword) {
		s.logger.Warn("User service: current password mismatch on password change, token may be compromised",
			"user", user)
		return model.User{}, fmt.Errorf("%w: incorrect current password", model.ErrInvalidCredentials)
	}

	hash, err := s.hasher.Hash(ctx, next)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.store.UpdateByID(ctx, user.ID, model.UserFields{model.FieldHashedPassword: hash})
	if err != nil {
		return model.User{}, wrapStoreErr("failed to update password", err)
	}

	s.logger.Debug("User service: password updated", "user", user)

	s.cacheUser(ctx, updated)

	return updated, nil
}

// UpdateByAdmin applies a partial update to another user. Fields equal to their current value are
// dropped; when nothing is left the current state is returned without touching the store or cache.
func (s *User) UpdateByAdmin(
	ctx context.Context,
	requester model.User,
	targetID int64,
	update model.AdminUserUpdate,
) (model.AdminUpdateResult, error) {
	if update.Empty() {
		return model.AdminUpdateResult{}, model.NewBadProvidedDataError(model.FieldErrors{"Provided data": "No fields provided to update."})
	}

	var newRole model.Role
	if update.Role.Present() {
		raw, _ := update.Role.Value()
		r, err := parseRole(raw)
		if err != nil {
			return model.AdminUpdateResult{}, err
		}
		newRole = r
	}

	if err := validate.AdminUpdate(update, nil); err != nil {
		return model.AdminUpdateResult{}, err
	}

	target, err := s.store.GetByID(ctx, targetID)
	if err != nil {
		return model.AdminUpdateResult{}, wrapStoreErr("failed to get user by id", err)
	}

	if err := policy.CanUpdate(policy.SubjectOf(requester), policy.SubjectOf(target)).Err(); err != nil {
		s.logger.Warn("User service: update forbidden",
			"requester", requester,
			"target", target,
			"fields", update.Provided(),
			"error", err.Error())
		return model.AdminUpdateResult{}, err
	}

	fields := model.UserFields{}

	if username, ok := update.Username.Value(); ok && username != target.Username {
		if err := policy.CanChangeUsername(requester.Role).Err(); err != nil {
			return model.AdminUpdateResult{}, err
		}
		if err := s.ensureUsernameFree(ctx, username, target.ID); err != nil {
			return model.AdminUpdateResult{}, err
		}
		fields[model.FieldUsername] = username
	}

	if newRole != "" && newRole != target.Role {
		if err := policy.CanChangeRole(requester.Role, target.Role, newRole).Err(); err != nil {
			s.logger.Warn("User service: role change forbidden",
				"requester", requester,
				"target", target,
				"new_role", newRole)
			return model.AdminUpdateResult{}, err
		}
		fields[model.FieldRole] = newRole
	}

	if active, ok := update.IsActive.Value(); ok && active != target.IsActive {
		fields[model.FieldIsActive] = active
	}

	newAvatar := target.Avatar
	if update.Avatar.IsNull() {
		newAvatar = nil
		if url, ok := s.avatars.ResolveDefault(target.Email); ok {
			newAvatar = &url
		}
		if !sameAvatar(target.Avatar, newAvatar) {
			fields[model.FieldAvatar] = newAvatar
		}
	}

	if len(fields) == 0 {
		s.logger.Debug("User service: admin update has no changes, skipping write",
			"requester", requester,
			"target", target)
		return model.AdminUpdateResult{User: target}, nil
	}

	updated, err := s.store.UpdateByID(ctx, target.ID, fields)
	if err != nil {
		return model.AdminUpdateResult{}, wrapStoreErr("failed to update user", err)
	}

	s.logger.Info("User service: user updated by admin",
		"requester", requester,
		"target", updated,
		"fields", fieldNames(fields))

	s.cacheUser(ctx, updated)

	result := model.AdminUpdateResult{User: updated}
	if update.Avatar.IsNull() && target.Avatar != nil && !sameAvatar(target.Avatar, newAvatar) {
		result.AvatarReset = true
		result.OldAvatar = target.Avatar
	}

	return result, nil
}

// DeleteByAdmin permanently removes another user and returns the removed snapshot
// with its avatar so the caller can clean up stored files.
func (s *User) DeleteByAdmin(ctx context.Context, requester model.User, targetID int64) (model.AdminDeleteResult, error) {
	target, err := s.store.GetByID(ctx, targetID)
	if err != nil {
		return model.AdminDeleteResult{}, wrapStoreErr("failed to get user by id", err)
	}

	if err := policy.CanDelete(policy.SubjectOf(requester), policy.SubjectOf(target)).Err(); err != nil {
		s.logger.Warn("User service: deletion forbidden",
			"requester", requester,
			"target", target,
			"error", err.Error())
		return model.AdminDeleteResult{}, err
	}

	deleted, err := s.store.RemoveByID(ctx, target.ID)
	if err != nil {
		return model.AdminDeleteResult{}, wrapStoreErr("failed to remove user", err)
	}

	s.logger.Info("User service: user deleted", "requester", requester, "deleted", deleted)

	if s.userCache != nil {
		s.userCache.InvalidateUser(ctx, target.ID)
	}
	if s.countCache != nil {
		s.countCache.InvalidateContactsCount(ctx, target.ID)
	}

	return model.AdminDeleteResult{User: deleted, Avatar: target.Avatar}, nil
}

// ConfirmEmail marks the email of userID as confirmed when it still matches email.
func (s *User) ConfirmEmail(ctx context.Context, userID int64, email string) (model.User, error) {
	user, err := s.store.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("%w: user %d not found", model.ErrInvalidCredentials, userID)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !policy.IsActive(user.Role, user.IsActive) {
		s.logger.Warn("User service: attempt to confirm email of inactive user", "user", user)
		return model.User{}, model.ErrUserInactive
	}

	if !strings.EqualFold(user.Email, email) {
		return model.User{}, fmt.Errorf("%w: token email does not match current user email", model.ErrInvalidCredentials)
	}

	if user.IsEmailConfirmed {
		return model.User{}, model.ErrAlreadyConfirmed
	}

	confirmed, err := s.store.ConfirmEmailIfUnconfirmed(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		// A concurrent request confirmed it first.
		return model.User{}, model.ErrAlreadyConfirmed
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to confirm email: %w", err)
	}

	s.logger.Info("User service: email confirmed", "user", confirmed)

	s.cacheUser(ctx, confirmed)

	return confirmed, nil
}

// ListUsers returns a page of users visible to requester and the total number of matches.
// Each row is redacted independently according to what requester may see of it.
func (s *User) ListUsers(
	ctx context.Context,
	requester model.User,
	page model.Pagination,
	filters model.UserFilters,
) ([]model.UserWithStats, int, error) {
	scope := policy.ListScopeFor(requester.Role)
	filters.ExcludeSuperadmins = scope.ExcludeSuperadmins
	filters.HideInactiveAdmins = scope.HideInactiveAdmins

	total, err := s.store.Count(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	if total == 0 {
		return []model.UserWithStats{}, 0, nil
	}

	rows, err := s.store.List(ctx, filters, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	requesterSubject := policy.SubjectOf(requester)
	result := make([]model.UserWithStats, 0, len(rows))
	for _, row := range rows {
		switch policy.CanView(requesterSubject, policy.SubjectOf(row.User)) {
		case policy.Hidden:
			continue
		case policy.Redacted:
			result = append(result, model.NewUserWithStats(row.User, row.ContactsCount, false))
		case policy.Full:
			result = append(result, model.NewUserWithStats(row.User, row.ContactsCount, true))
		}
	}

	return result, total, nil
}

// GetContactsCount returns the number of contacts owned by userID, reading the cache first.
func (s *User) GetContactsCount(ctx context.Context, userID int64) (int, error) {
	if s.countCache != nil {
		if count, ok := s.countCache.GetContactsCount(ctx, userID); ok {
			s.logger.Debug("User service: contacts count cache hit", "user_id", userID)
			return count, nil
		}
		s.logger.Debug("User service: contacts count cache miss", "user_id", userID)
	} else {
		s.logger.Debug("User service: contacts count cache skipped", "user_id", userID)
	}

	count, err := s.store.CountContacts(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	if s.countCache != nil {
		s.countCache.SetContactsCount(ctx, userID, count)
	}

	return count, nil
}

func (s *User) ensureUsernameFree(ctx context.Context, username string, ownerID int64) error {
	existing, err := s.store.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to get user by username: %w", err)
	case existing.ID != ownerID:
		return model.NewConflictError(model.FieldErrors{"username": "Username is already taken"})
	}
	return nil
}

func (s *User) cacheUser(ctx context.Context, user model.User) {
	if s.userCache != nil {
		s.userCache.SetUser(ctx, user)
	}
}

func parseRole(raw string) (model.Role, error) {
	r, err := model.ParseRole(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidRole,
			model.NewBadProvidedDataError(model.FieldErrors{"role": fmt.Sprintf("Invalid role: %s", raw)}))
	}
	return r, nil
}

func wrapStoreErr(msg string, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func sameAvatar(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func fieldNames(fields model.UserFields) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	return names
}
