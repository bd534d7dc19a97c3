package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/mocks"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/testutil"
)

type userDeps struct {
	store      *mocks.UserStore
	hasher     *mocks.PasswordHasher
	avatars    *mocks.AvatarResolver
	userCache  *mocks.UserCache
	countCache *mocks.ContactsCountCache
}

func newUserService(t *testing.T) (*User, userDeps) {
	t.Helper()
	d := userDeps{
		store:      mocks.NewUserStore(t),
		hasher:     mocks.NewPasswordHasher(t),
		avatars:    mocks.NewAvatarResolver(t),
		userCache:  mocks.NewUserCache(t),
		countCache: mocks.NewContactsCountCache(t),
	}
	s := NewUser(d.store, d.hasher, d.avatars, testutil.MakeNoopLogger(),
		WithUserCache(d.userCache),
		WithContactsCountCache(d.countCache))
	return s, d
}

func strPtr(s string) *string { return &s }

var errDB = errors.New("db is down")

func TestUser_Register(t *testing.T) {
	ctx := context.Background()
	s, d := newUserService(t)

	d.store.On("GetByUsername", ctx, "john").Return(model.User{}, model.ErrNotFound)
	d.store.On("GetByEmail", ctx, "John@Example.com").Return(model.User{}, model.ErrNotFound)
	d.hasher.On("Hash", ctx, "Secret#123").Return("hashed", nil)
	d.avatars.On("ResolveDefault", "John@Example.com").Return("https://avatar/john", true)

	created := model.User{ID: 1, Username: "john", Email: "john@example.com", Role: model.RoleUser, IsActive: true}
	d.store.On("Create", ctx, model.NewUser{
		Username:       "john",
		Email:          "john@example.com",
		HashedPassword: "hashed",
		Role:           model.RoleUser,
		Avatar:         strPtr("https://avatar/john"),
		IsActive:       true,
	}).Return(created, nil)
	d.userCache.On("SetUser", ctx, created).Return()

	got, err := s.Register(ctx, "john", "John@Example.com", "Secret#123")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUser_Register_ConflictReportsBothFields(t *testing.T) {
	ctx := context.Background()
	s, d := newUserService(t)

	d.store.On("GetByUsername", ctx, "john").Return(model.User{ID: 1}, nil)
	d.store.On("GetByEmail", ctx, "john@example.com").Return(model.User{ID: 2}, nil)

	_, err := s.Register(ctx, "john", "john@example.com", "Secret#123")
	require.ErrorIs(t, err, model.ErrUserConflict)

	var conflict *model.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Len(t, conflict.Fields, 2)
	assert.Contains(t, conflict.Fields, "username")
	assert.Contains(t, conflict.Fields, "email")
	d.store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUser_Register_StoreFailure(t *testing.T) {
	ctx := context.Background()
	s, d := newUserService(t)

	d.store.On("GetByUsername", ctx, "john").Return(model.User{}, errDB)

	_, err := s.Register(ctx, "john", "john@example.com", "Secret#123")
	require.ErrorIs(t, err, errDB)
}

func TestUser_CreateByAdmin(t *testing.T) {
	ctx := context.Background()
	admin := model.User{ID: 1, Username: "boss", Role: model.RoleAdmin, IsActive: true}
	superadmin := model.User{ID: 2, Username: "root", Role: model.RoleSuperadmin, IsActive: true}

	t.Run("admin cannot create moderator", func(t *testing.T) {
		s, _ := newUserService(t)
		_, err := s.CreateByAdmin(ctx, admin, "mod", "mod@example.com", "Secret#123", "moderator", nil)
		require.ErrorIs(t, err, model.ErrPermissionDenied)
	})

	t.Run("nobody creates superadmin", func(t *testing.T) {
		s, _ := newUserService(t)
		_, err := s.CreateByAdmin(ctx, superadmin, "root2", "root2@example.com", "Secret#123", "superadmin", nil)
		require.ErrorIs(t, err, model.ErrPermissionDenied)
	})

	t.Run("invalid role", func(t *testing.T) {
		s, _ := newUserService(t)
		_, err := s.CreateByAdmin(ctx, superadmin, "x", "x@example.com", "Secret#123", "owner", nil)
		require.ErrorIs(t, err, model.ErrInvalidRole)

		var bad *model.BadProvidedDataError
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, "Invalid role: owner", bad.Fields["role"])
	})

	t.Run("superadmin creates inactive moderator", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByUsername", ctx, "mod").Return(model.User{}, model.ErrNotFound)
		d.store.On("GetByEmail", ctx, "mod@example.com").Return(model.User{}, model.ErrNotFound)
		d.hasher.On("Hash", ctx, "Secret#123").Return("hashed", nil)
		d.avatars.On("ResolveDefault", "mod@example.com").Return("", false)

		created := model.User{ID: 9, Username: "mod", Role: model.RoleModerator}
		d.store.On("Create", ctx, mock.MatchedBy(func(u model.NewUser) bool {
			return u.Role == model.RoleModerator && !u.IsActive && u.Avatar == nil
		})).Return(created, nil)
		d.userCache.On("SetUser", ctx, created).Return()

		inactive := false
		got, err := s.CreateByAdmin(ctx, superadmin, "mod", "mod@example.com", "Secret#123", "Moderator", &inactive)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})
}

func TestUser_CreateSuperuser(t *testing.T) {
	ctx := context.Background()

	t.Run("default credentials rejected", func(t *testing.T) {
		s, _ := newUserService(t)
		_, err := s.CreateSuperuser(ctx, "root", DefaultSuperadminEmail, "Secret#123")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)

		_, err = s.CreateSuperuser(ctx, "root", "root@corp.com", DefaultSuperadminPassword)
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("already exists", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByUsername", ctx, "root").Return(model.User{ID: 1}, nil)

		_, err := s.CreateSuperuser(ctx, "root", "root@corp.com", "Secret#123")
		require.ErrorIs(t, err, model.ErrUserConflict)
		assert.True(t, SuperuserExists(err))
	})

	t.Run("email owned by another account", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByUsername", ctx, "root").Return(model.User{}, model.ErrNotFound)
		d.store.On("GetByEmail", ctx, "root@corp.com").Return(model.User{ID: 7, Username: "ann"}, nil)

		_, err := s.CreateSuperuser(ctx, "root", "root@corp.com", "Secret#123")
		require.ErrorIs(t, err, model.ErrUserConflict)
		assert.False(t, SuperuserExists(err))

		var conflict *model.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, conflict.Fields, "email")
	})
}

func TestSuperuserExists(t *testing.T) {
	assert.False(t, SuperuserExists(nil))
	assert.False(t, SuperuserExists(errDB))
	assert.False(t, SuperuserExists(model.NewConflictError(model.FieldErrors{"username": "taken"})))
	assert.True(t, SuperuserExists(fmt.Errorf("seed: %w", model.NewConflictError(model.FieldErrors{"init": "exists"}))))
}

func TestUser_GetByID_Cache(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: 3, Username: "ann"}

	t.Run("hit skips store", func(t *testing.T) {
		s, d := newUserService(t)
		d.userCache.On("GetUser", ctx, int64(3)).Return(user, true)

		got, err := s.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("miss falls back to store and warms cache", func(t *testing.T) {
		s, d := newUserService(t)
		d.userCache.On("GetUser", ctx, int64(3)).Return(model.User{}, false)
		d.store.On("GetByID", ctx, int64(3)).Return(user, nil)
		d.userCache.On("SetUser", ctx, user).Return()

		got, err := s.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("no cache configured", func(t *testing.T) {
		store := mocks.NewUserStore(t)
		store.On("GetByID", ctx, int64(3)).Return(user, nil)
		s := NewUser(store, mocks.NewPasswordHasher(t), mocks.NewAvatarResolver(t), testutil.MakeNoopLogger())

		got, err := s.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("not found", func(t *testing.T) {
		s, d := newUserService(t)
		d.userCache.On("GetUser", ctx, int64(3)).Return(model.User{}, false)
		d.store.On("GetByID", ctx, int64(3)).Return(model.User{}, model.ErrNotFound)

		_, err := s.GetByID(ctx, 3)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUser_GetByIDForAdmin(t *testing.T) {
	ctx := context.Background()
	admin := model.User{ID: 1, Role: model.RoleAdmin, IsActive: true}

	tests := []struct {
		name     string
		target   model.User
		wantErr  error
		wantFull bool
	}{
		{name: "superadmin hidden", target: model.User{ID: 2, Role: model.RoleSuperadmin}, wantErr: model.ErrNotFound},
		{name: "peer admin redacted", target: model.User{ID: 3, Role: model.RoleAdmin}, wantFull: false},
		{name: "user full", target: model.User{ID: 4, Role: model.RoleUser}, wantFull: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := newUserService(t)
			d.userCache.On("GetUser", ctx, tt.target.ID).Return(tt.target, true)

			view, err := s.GetByIDForAdmin(ctx, admin, tt.target.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFull, view.ShowFull)
			assert.Equal(t, tt.target, view.User)
		})
	}
}

func TestUser_ValidateCredentials(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: 1, Username: "john", HashedPassword: "hash"}

	t.Run("ok", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByUsername", ctx, "john").Return(user, nil)
		d.userCache.On("SetUser", ctx, user).Return()
		d.hasher.On("Verify", ctx, "pw", "hash").Return(true)

		got, err := s.ValidateCredentials(ctx, "john", "pw")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("wrong password", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByUsername", ctx, "john").Return(user, nil)
		d.userCache.On("SetUser", ctx, user).Return()
		d.hasher.On("Verify", ctx, "bad", "hash").Return(false)

		_, err := s.ValidateCredentials(ctx, "john", "bad")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByUsername", ctx, "nobody").Return(model.User{}, model.ErrNotFound)

		_, err := s.ValidateCredentials(ctx, "nobody", "pw")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestUser_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: 1, HashedPassword: "old-hash"}

	t.Run("same password rejected", func(t *testing.T) {
		s, _ := newUserService(t)
		_, err := s.UpdatePassword(ctx, user, "Secret#123", "Secret#123")
		require.ErrorIs(t, err, model.ErrBadProvidedData)
	})

	t.Run("mismatch", func(t *testing.T) {
		s, d := newUserService(t)
		d.hasher.On("Verify", ctx, "wrong", "old-hash").Return(false)

		_, err := s.UpdatePassword(ctx, user, "wrong", "Secret#456")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("ok", func(t *testing.T) {
		s, d := newUserService(t)
		d.hasher.On("Verify", ctx, "Secret#123", "old-hash").Return(true)
		d.hasher.On("Hash", ctx, "Secret#456").Return("new-hash", nil)

		updated := model.User{ID: 1, HashedPassword: "new-hash"}
		d.store.On("UpdateByID", ctx, int64(1), model.UserFields{model.FieldHashedPassword: "new-hash"}).Return(updated, nil)
		d.userCache.On("SetUser", ctx, updated).Return()

		got, err := s.UpdatePassword(ctx, user, "Secret#123", "Secret#456")
		require.NoError(t, err)
		assert.Equal(t, "new-hash", got.HashedPassword)
	})
}

func TestUser_UpdateByAdmin_NoOp(t *testing.T) {
	ctx := context.Background()
	s, d := newUserService(t)

	requester := model.User{ID: 1, Role: model.RoleAdmin, IsActive: true}
	target := model.User{ID: 5, Username: "ann", Role: model.RoleUser, IsActive: true}
	d.store.On("GetByID", ctx, int64(5)).Return(target, nil)

	res, err := s.UpdateByAdmin(ctx, requester, 5, model.AdminUserUpdate{IsActive: model.Some(true)})
	require.NoError(t, err)
	assert.Equal(t, target, res.User)
	assert.False(t, res.AvatarReset)

	d.store.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	d.userCache.AssertNotCalled(t, "SetUser", mock.Anything, mock.Anything)
}

func TestUser_UpdateByAdmin_Deactivate(t *testing.T) {
	ctx := context.Background()
	s, d := newUserService(t)

	requester := model.User{ID: 1, Role: model.RoleAdmin, IsActive: true}
	target := model.User{ID: 5, Username: "ann", Role: model.RoleUser, IsActive: true}
	updated := target
	updated.IsActive = false

	d.store.On("GetByID", ctx, int64(5)).Return(target, nil)
	d.store.On("UpdateByID", ctx, int64(5), model.UserFields{model.FieldIsActive: false}).Return(updated, nil)
	d.userCache.On("SetUser", ctx, updated).Return()

	res, err := s.UpdateByAdmin(ctx, requester, 5, model.AdminUserUpdate{IsActive: model.Some(false)})
	require.NoError(t, err)
	assert.False(t, res.User.IsActive)
}

func TestUser_UpdateByAdmin_AvatarReset(t *testing.T) {
	ctx := context.Background()
	requester := model.User{ID: 1, Role: model.RoleSuperadmin, IsActive: true}

	t.Run("different default resets", func(t *testing.T) {
		s, d := newUserService(t)
		target := model.User{ID: 5, Email: "ann@example.com", Role: model.RoleUser, Avatar: strPtr("https://cdn/ann.png")}
		updated := target
		updated.Avatar = strPtr("https://gravatar/ann")

		d.store.On("GetByID", ctx, int64(5)).Return(target, nil)
		d.avatars.On("ResolveDefault", "ann@example.com").Return("https://gravatar/ann", true)
		d.store.On("UpdateByID", ctx, int64(5), mock.MatchedBy(func(f model.UserFields) bool {
			v, ok := f[model.FieldAvatar].(*string)
			return ok && v != nil && *v == "https://gravatar/ann" && len(f) == 1
		})).Return(updated, nil)
		d.userCache.On("SetUser", ctx, updated).Return()

		res, err := s.UpdateByAdmin(ctx, requester, 5, model.AdminUserUpdate{Avatar: model.Null[string]()})
		require.NoError(t, err)
		assert.True(t, res.AvatarReset)
		require.NotNil(t, res.OldAvatar)
		assert.Equal(t, "https://cdn/ann.png", *res.OldAvatar)
	})

	t.Run("same default is a no-op", func(t *testing.T) {
		s, d := newUserService(t)
		target := model.User{ID: 5, Email: "ann@example.com", Role: model.RoleUser, Avatar: strPtr("https://gravatar/ann")}

		d.store.On("GetByID", ctx, int64(5)).Return(target, nil)
		d.avatars.On("ResolveDefault", "ann@example.com").Return("https://gravatar/ann", true)

		res, err := s.UpdateByAdmin(ctx, requester, 5, model.AdminUserUpdate{Avatar: model.Null[string]()})
		require.NoError(t, err)
		assert.False(t, res.AvatarReset)
		assert.Nil(t, res.OldAvatar)
		d.store.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-null avatar rejected", func(t *testing.T) {
		s, _ := newUserService(t)
		_, err := s.UpdateByAdmin(ctx, requester, 5, model.AdminUserUpdate{Avatar: model.Some("https://evil")})
		require.ErrorIs(t, err, model.ErrBadProvidedData)
	})
}

func TestUser_UpdateByAdmin_Denied(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		requester model.User
		target    model.User
		update    model.AdminUserUpdate
		wantErr   error
	}{
		{
			name:    "empty update",
			update:  model.AdminUserUpdate{},
			wantErr: model.ErrBadProvidedData,
		},
		{
			name:      "invalid role",
			requester: model.User{ID: 1, Role: model.RoleSuperadmin},
			update:    model.AdminUserUpdate{Role: model.Some("owner")},
			wantErr:   model.ErrInvalidRole,
		},
		{
			name:      "admin updates admin",
			requester: model.User{ID: 1, Role: model.RoleAdmin},
			target:    model.User{ID: 2, Role: model.RoleAdmin, IsActive: true},
			update:    model.AdminUserUpdate{IsActive: model.Some(false)},
			wantErr:   model.ErrPermissionDenied,
		},
		{
			name:      "self update",
			requester: model.User{ID: 2, Role: model.RoleSuperadmin},
			target:    model.User{ID: 2, Role: model.RoleSuperadmin},
			update:    model.AdminUserUpdate{IsActive: model.Some(false)},
			wantErr:   model.ErrPermissionDenied,
		},
		{
			name:      "admin changes role",
			requester: model.User{ID: 1, Role: model.RoleAdmin},
			target:    model.User{ID: 2, Role: model.RoleUser},
			update:    model.AdminUserUpdate{Role: model.Some("moderator")},
			wantErr:   model.ErrPermissionDenied,
		},
		{
			name:      "admin renames",
			requester: model.User{ID: 1, Role: model.RoleAdmin},
			target:    model.User{ID: 2, Username: "ann", Role: model.RoleUser},
			update:    model.AdminUserUpdate{Username: model.Some("anna")},
			wantErr:   model.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := newUserService(t)
			if tt.target.ID != 0 {
				d.store.On("GetByID", ctx, tt.target.ID).Return(tt.target, nil)
			}

			_, err := s.UpdateByAdmin(ctx, tt.requester, tt.target.ID, tt.update)
			require.ErrorIs(t, err, tt.wantErr)
			d.store.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUser_UpdateByAdmin_RenameConflict(t *testing.T) {
	ctx := context.Background()
	s, d := newUserService(t)

	requester := model.User{ID: 1, Role: model.RoleSuperadmin}
	target := model.User{ID: 2, Username: "ann", Role: model.RoleUser}
	d.store.On("GetByID", ctx, int64(2)).Return(target, nil)
	d.store.On("GetByUsername", ctx, "bob").Return(model.User{ID: 3, Username: "bob"}, nil)

	_, err := s.UpdateByAdmin(ctx, requester, 2, model.AdminUserUpdate{Username: model.Some("bob")})
	require.ErrorIs(t, err, model.ErrUserConflict)
}

func TestUser_DeleteByAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("ok invalidates caches", func(t *testing.T) {
		s, d := newUserService(t)
		requester := model.User{ID: 1, Role: model.RoleAdmin}
		target := model.User{ID: 2, Role: model.RoleUser, Avatar: strPtr("https://cdn/2.png")}

		d.store.On("GetByID", ctx, int64(2)).Return(target, nil)
		d.store.On("RemoveByID", ctx, int64(2)).Return(target, nil)
		d.userCache.On("InvalidateUser", ctx, int64(2)).Return()
		d.countCache.On("InvalidateContactsCount", ctx, int64(2)).Return()

		res, err := s.DeleteByAdmin(ctx, requester, 2)
		require.NoError(t, err)
		assert.Equal(t, target, res.User)
		assert.Equal(t, "https://cdn/2.png", *res.Avatar)
	})

	t.Run("self delete denied", func(t *testing.T) {
		s, d := newUserService(t)
		requester := model.User{ID: 1, Role: model.RoleSuperadmin}
		d.store.On("GetByID", ctx, int64(1)).Return(requester, nil)

		_, err := s.DeleteByAdmin(ctx, requester, 1)
		require.ErrorIs(t, err, model.ErrPermissionDenied)
	})

	t.Run("missing target", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByID", ctx, int64(9)).Return(model.User{}, model.ErrNotFound)

		_, err := s.DeleteByAdmin(ctx, model.User{ID: 1, Role: model.RoleSuperadmin}, 9)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUser_ConfirmEmail(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: 4, Email: "ann@example.com", Role: model.RoleUser, IsActive: true}

	t.Run("ok", func(t *testing.T) {
		s, d := newUserService(t)
		confirmed := user
		confirmed.IsEmailConfirmed = true

		d.store.On("GetByID", ctx, int64(4)).Return(user, nil)
		d.store.On("ConfirmEmailIfUnconfirmed", ctx, int64(4)).Return(confirmed, nil)
		d.userCache.On("SetUser", ctx, confirmed).Return()

		got, err := s.ConfirmEmail(ctx, 4, "ann@example.com")
		require.NoError(t, err)
		assert.True(t, got.IsEmailConfirmed)
	})

	t.Run("concurrent confirmation loses the race", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByID", ctx, int64(4)).Return(user, nil)
		d.store.On("ConfirmEmailIfUnconfirmed", ctx, int64(4)).Return(model.User{}, model.ErrNotFound)

		_, err := s.ConfirmEmail(ctx, 4, "ann@example.com")
		require.ErrorIs(t, err, model.ErrAlreadyConfirmed)
		d.userCache.AssertNotCalled(t, "SetUser", mock.Anything, mock.Anything)
	})

	t.Run("already confirmed", func(t *testing.T) {
		s, d := newUserService(t)
		confirmed := user
		confirmed.IsEmailConfirmed = true
		d.store.On("GetByID", ctx, int64(4)).Return(confirmed, nil)

		_, err := s.ConfirmEmail(ctx, 4, "ann@example.com")
		require.ErrorIs(t, err, model.ErrAlreadyConfirmed)
	})

	t.Run("email mismatch", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByID", ctx, int64(4)).Return(user, nil)

		_, err := s.ConfirmEmail(ctx, 4, "old@example.com")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("inactive", func(t *testing.T) {
		s, d := newUserService(t)
		inactive := user
		inactive.IsActive = false
		d.store.On("GetByID", ctx, int64(4)).Return(inactive, nil)

		_, err := s.ConfirmEmail(ctx, 4, "ann@example.com")
		require.ErrorIs(t, err, model.ErrUserInactive)
	})

	t.Run("unknown user", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("GetByID", ctx, int64(4)).Return(model.User{}, model.ErrNotFound)

		_, err := s.ConfirmEmail(ctx, 4, "ann@example.com")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestUser_ListUsers(t *testing.T) {
	ctx := context.Background()
	admin := model.User{ID: 1, Role: model.RoleAdmin}

	t.Run("redacts per row", func(t *testing.T) {
		s, d := newUserService(t)
		wantFilters := model.UserFilters{ExcludeSuperadmins: true, HideInactiveAdmins: true}

		d.store.On("Count", ctx, wantFilters).Return(3, nil)
		d.store.On("List", ctx, wantFilters, model.Pagination{Skip: 0, Limit: model.DefaultPageLimit}).Return([]model.UserWithCount{
			{User: model.User{ID: 1, Role: model.RoleAdmin, IsActive: true}, ContactsCount: 1},
			{User: model.User{ID: 2, Role: model.RoleAdmin, IsActive: true}, ContactsCount: 2},
			{User: model.User{ID: 3, Role: model.RoleUser, IsActive: true}, ContactsCount: 3},
			{User: model.User{ID: 4, Role: model.RoleSuperadmin, IsActive: true}, ContactsCount: 4},
		}, nil)

		rows, total, err := s.ListUsers(ctx, admin, model.Pagination{}, model.UserFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, rows, 3)

		require.NotNil(t, rows[0].ContactsCount)
		assert.Nil(t, rows[1].ContactsCount)
		require.NotNil(t, rows[2].ContactsCount)
		assert.Equal(t, 3, *rows[2].ContactsCount)
	})

	t.Run("empty count skips listing", func(t *testing.T) {
		s, d := newUserService(t)
		d.store.On("Count", ctx, mock.Anything).Return(0, nil)

		rows, total, err := s.ListUsers(ctx, admin, model.Pagination{}, model.UserFilters{})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, rows)
		d.store.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUser_GetContactsCount(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		s, d := newUserService(t)
		d.countCache.On("GetContactsCount", ctx, int64(1)).Return(7, true)

		n, err := s.GetContactsCount(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 7, n)
	})

	t.Run("miss", func(t *testing.T) {
		s, d := newUserService(t)
		d.countCache.On("GetContactsCount", ctx, int64(1)).Return(0, false)
		d.store.On("CountContacts", ctx, int64(1)).Return(5, nil)
		d.countCache.On("SetContactsCount", ctx, int64(1), 5).Return()

		n, err := s.GetContactsCount(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})
}
