package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/apierror"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/avatar"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/policy"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/validate"
)

const (
	// MaxAvatarBytes caps uploaded avatar images.
	MaxAvatarBytes = 2 << 20

	avatarCleanupTimeout = 30 * time.Second
)

var _ UsersServer = (*Users)(nil)

// Users handles gRPC endpoints for the authenticated user and for user management.
type Users struct {
	users          UserService
	resolver       model.AvatarResolver
	avatars        model.AvatarStorage
	contextManager model.ContextManager
	reserved       []string
	background     func(task func())
	logger         *logger.Logger
}

// UsersOption configures optional Users collaborators.
type UsersOption func(*Users)

// WithAvatarStorage enables avatar uploads and cleanup of replaced avatars.
func WithAvatarStorage(s model.AvatarStorage) UsersOption {
	return func(h *Users) { h.avatars = s }
}

// WithBackground replaces the runner used for out of band work such as avatar cleanup.
func WithBackground(run func(task func())) UsersOption {
	return func(h *Users) { h.background = run }
}

// NewUsers creates a new Users handler.
func NewUsers(
	users UserService,
	resolver model.AvatarResolver,
	contextManager model.ContextManager,
	reserved []string,
	logger *logger.Logger,
	opts ...UsersOption,
) *Users {
	h := &Users{
		users:          users,
		resolver:       resolver,
		contextManager: contextManager,
		reserved:       reserved,
		background:     func(task func()) { go task() },
		logger:         logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Me returns the authenticated user.
func (h *Users) Me(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return userToStruct(user), nil
}

// ChangePassword replaces the password of the authenticated user after checking the current one.
func (h *Users) ChangePassword(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	current := req.str("old_password")
	next := req.str("new_password")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}
	if next != "" {
		if err := validate.Password(next); err != nil {
			return nil, apierror.ToStatus(err)
		}
	}

	if _, err := h.users.UpdatePassword(ctx, user, current, next); err != nil {
		h.logError("password change failed", err, "user", user)
		return nil, apierror.ToStatus(err)
	}

	h.logger.Info("Users handler: password changed", "user", user)

	return messageStruct(MessagePasswordUpdated), nil
}

// UpdateAvatar stores an uploaded image and makes it the avatar of the authenticated user.
// The request carries content_type and base64 encoded data.
func (h *Users) UpdateAvatar(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if h.avatars == nil {
		return nil, status.Error(codes.Unavailable, "Avatar upload is not available")
	}

	req := newRequest(in)
	contentType := strings.TrimSpace(req.requiredString("content_type"))
	encoded := req.requiredString("data")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apierror.ToStatus(model.NewBadProvidedDataError(model.FieldErrors{"data": "data must be base64 encoded"}))
	}
	if len(data) > MaxAvatarBytes {
		return nil, apierror.ToStatus(model.NewBadProvidedDataError(model.FieldErrors{
			"file": fmt.Sprintf("File is too large. Max size is %d bytes", MaxAvatarBytes),
		}))
	}

	url, err := h.avatars.UploadAvatar(ctx, user.ID, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		h.logError("avatar upload failed", err, "user", user)
		return nil, apierror.ToStatus(err)
	}

	updated, err := h.users.UpdateAvatar(ctx, user, &url)
	if err != nil {
		h.logError("avatar update failed", err, "user", user)
		h.cleanupAvatar(ctx, &url)
		return nil, apierror.ToStatus(err)
	}

	h.logger.Info("Users handler: avatar uploaded", "user", user)

	if user.Avatar != nil && *user.Avatar != url {
		h.cleanupAvatar(ctx, user.Avatar)
	}

	return userToStruct(updated), nil
}

// ResetAvatar replaces the avatar of the authenticated user with the generated default.
func (h *Users) ResetAvatar(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	var next *string
	if url, ok := h.resolver.ResolveDefault(user.Email); ok {
		next = &url
	}

	updated, err := h.users.UpdateAvatar(ctx, user, next)
	if err != nil {
		h.logError("avatar reset failed", err, "user", user)
		return nil, apierror.ToStatus(err)
	}

	if user.Avatar != nil && (next == nil || *next != *user.Avatar) {
		h.cleanupAvatar(ctx, user.Avatar)
	}

	return userToStruct(updated), nil
}

// ContactsCount returns the number of contacts of the authenticated user, or of user_id when
// the caller may see other users. The count is part of the full view only: a target the caller
// sees redacted is refused with PermissionDenied.
func (h *Users) ContactsCount(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	target := req.int64Ptr("user_id")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	userID := user.ID
	if target != nil && *target != user.ID {
		if err := policy.CheckRole(user.Role, policy.ModeratorRoles...).Err(); err != nil {
			return nil, apierror.ToStatus(err)
		}
		view, err := h.users.GetByIDForAdmin(ctx, user, *target)
		if err != nil {
			h.logError("contacts count lookup failed", err, "user", user, "target_id", *target)
			return nil, apierror.ToStatus(err)
		}
		if !view.ShowFull {
			h.logger.Warn("Users handler: contacts count of a redacted user requested", "user", user, "target_id", *target)
			return nil, apierror.ToStatus(policy.Denied(policy.ReasonRedactedView).Err())
		}
		userID = *target
	}

	count, err := h.users.GetContactsCount(ctx, userID)
	if err != nil {
		h.logError("contacts count failed", err, "user_id", userID)
		return nil, apierror.ToStatus(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"user_id":        structpb.NewNumberValue(float64(userID)),
		"contacts_count": structpb.NewNumberValue(float64(count)),
	}}, nil
}

// List returns a filtered page of users visible to the caller.
func (h *Users) List(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	page := pageOf(req)
	filters := model.UserFilters{
		Username:     strings.TrimSpace(req.str("username")),
		Email:        strings.TrimSpace(req.str("email")),
		IsActive:     req.boolPtr("is_active"),
		InactiveLast: boolValue(req.boolPtr("inactive_last")),
	}
	if raw := req.str("role"); raw != "" {
		role, err := model.ParseRole(raw)
		if err != nil {
			req.errs["role"] = fmt.Sprintf("Invalid role: %s", raw)
		} else {
			filters.Role = &role
		}
	}
	if boolValue(req.boolPtr("exclude_me")) {
		filters.ExcludeUserID = &user.ID
	}
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	rows, total, err := h.users.ListUsers(ctx, user, page, filters)
	if err != nil {
		h.logError("listing failed", err, "user", user)
		return nil, apierror.ToStatus(err)
	}

	items := make([]*structpb.Value, 0, len(rows))
	for _, row := range rows {
		items = append(items, structpb.NewStructValue(userWithStatsToStruct(row)))
	}
	return pageStruct(total, page, items), nil
}

// Get returns one user, redacted according to what the caller may see.
func (h *Users) Get(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	id := req.id("user_id")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	view, err := h.users.GetByIDForAdmin(ctx, user, id)
	if err != nil {
		h.logError("lookup failed", err, "user", user, "target_id", id)
		return nil, apierror.ToStatus(err)
	}

	if view.ShowFull {
		return userToStruct(view.User), nil
	}
	return userWithStatsToStruct(model.NewUserWithStats(view.User, 0, false)), nil
}

// Create registers an account on behalf of the caller.
func (h *Users) Create(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	username := strings.TrimSpace(req.str("username"))
	email := strings.TrimSpace(req.str("email"))
	password := req.str("password")
	role := req.str("role")
	isActive := req.boolPtr("is_active")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	if err := validate.Registration(username, email, password, h.reserved); err != nil {
		return nil, apierror.ToStatus(err)
	}

	created, err := h.users.CreateByAdmin(ctx, user, username, email, password, role, isActive)
	if err != nil {
		h.logError("creation failed", err, "user", user, "username", username)
		return nil, apierror.ToStatus(err)
	}

	h.logger.Info("Users handler: user created", "creator", user, "user", created)

	return userToStruct(created), nil
}

// Update applies a partial update to another user. A field set to null differs from an absent one:
// avatar null resets the avatar, other nulls are rejected.
func (h *Users) Update(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	id := req.id("user_id")
	update := model.AdminUserUpdate{
		Username: req.optionalString("username"),
		Role:     req.optionalString("role"),
		IsActive: req.optionalBool("is_active"),
		Avatar:   req.optionalString("avatar"),
	}
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}
	if err := validate.AdminUpdate(update, h.reserved); err != nil {
		return nil, apierror.ToStatus(err)
	}

	result, err := h.users.UpdateByAdmin(ctx, user, id, update)
	if err != nil {
		h.logError("update failed", err, "user", user, "target_id", id)
		return nil, apierror.ToStatus(err)
	}

	if result.AvatarReset {
		h.cleanupAvatar(ctx, result.OldAvatar)
	}

	out := userToStruct(result.User)
	out.Fields["avatar_reset"] = structpb.NewBoolValue(result.AvatarReset)
	return out, nil
}

// Delete removes another user permanently.
func (h *Users) Delete(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	user, err := h.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	req := newRequest(in)
	id := req.id("user_id")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	result, err := h.users.DeleteByAdmin(ctx, user, id)
	if err != nil {
		h.logError("deletion failed", err, "user", user, "target_id", id)
		return nil, apierror.ToStatus(err)
	}

	h.logger.Info("Users handler: user deleted", "requester", user, "user", result.User)

	h.cleanupAvatar(ctx, result.Avatar)

	return userToStruct(result.User), nil
}

func (h *Users) currentUser(ctx context.Context) (model.User, error) {
	user, ok := h.contextManager.GetUserFromContext(ctx)
	if !ok {
		return model.User{}, status.Error(codes.Unauthenticated, apierror.MessageInvalidToken)
	}
	return user, nil
}

// cleanupAvatar schedules deletion of an uploaded avatar. Generated avatars are left alone.
func (h *Users) cleanupAvatar(ctx context.Context, url *string) {
	if h.avatars == nil || url == nil || *url == "" || avatar.IsGravatar(*url) {
		return
	}

	target := *url
	h.background(func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), avatarCleanupTimeout)
		defer cancel()

		if err := h.avatars.DeleteByURL(ctx, target); err != nil {
			h.logger.Warn("Users handler: failed to delete avatar",
				"url", target,
				"error", err.Error())
		}
	})
}

func (h *Users) logError(msg string, err error, args ...any) {
	logError(h.logger, "Users handler: "+msg, err, args...)
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
