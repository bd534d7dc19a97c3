package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

var (
	su  = model.RoleSuperadmin
	adm = model.RoleAdmin
	mod = model.RoleModerator
	usr = model.RoleUser
)

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(usr, true))
	assert.False(t, IsActive(usr, false))
	assert.False(t, IsActive(adm, false))
	assert.True(t, IsActive(su, false))

	assert.True(t, CheckActive(model.User{Role: su}).Allowed)
	d := CheckActive(model.User{Role: mod})
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonInactive, d.Reason)
}

func TestCheckEmailConfirmed(t *testing.T) {
	assert.True(t, CheckEmailConfirmed(model.User{Role: usr, IsEmailConfirmed: true}).Allowed)
	assert.True(t, CheckEmailConfirmed(model.User{Role: su}).Allowed)

	for _, role := range []model.Role{usr, mod, adm} {
		d := CheckEmailConfirmed(model.User{Role: role})
		assert.False(t, d.Allowed, role)
		assert.Equal(t, ReasonEmailNotConfirmed, d.Reason)
	}
}

func TestDenied(t *testing.T) {
	d := Denied(ReasonRedactedView)
	assert.False(t, d.Allowed)
	assert.Equal(t, "Statistics of this user are not visible to you", d.Reason.Message())
}

func TestCheckRole(t *testing.T) {
	assert.True(t, CheckRole(mod, ModeratorRoles...).Allowed)
	assert.False(t, CheckRole(usr, ModeratorRoles...).Allowed)
	assert.False(t, CheckRole(mod, AdminRoles...).Allowed)
	assert.True(t, CheckRole(su, SuperadminRoles...).Allowed)
}

func TestCanCreate(t *testing.T) {
	tests := []struct {
		creator, target model.Role
		want            Reason
	}{
		{su, usr, ""},
		{su, mod, ""},
		{su, adm, ""},
		{su, su, ReasonSuperadminCreation},
		{adm, usr, ""},
		{adm, mod, ReasonAdminCreation},
		{adm, adm, ReasonAdminCreation},
		{adm, su, ReasonSuperadminCreation},
		{mod, usr, ReasonModeratorCreation},
		{usr, usr, ReasonUserCreation},
	}

	for _, tt := range tests {
		t.Run(string(tt.creator)+"->"+string(tt.target), func(t *testing.T) {
			d := CanCreate(tt.creator, tt.target)
			assert.Equal(t, tt.want == "", d.Allowed)
			assert.Equal(t, tt.want, d.Reason)
		})
	}
}

func TestCanUpdate(t *testing.T) {
	tests := []struct {
		name      string
		requester Subject
		target    Subject
		want      Reason
	}{
		{"self via admin path", Subject{1, su}, Subject{1, su}, ReasonSelfUpdate},
		{"admin self", Subject{2, adm}, Subject{2, adm}, ReasonSelfUpdate},
		{"superadmin target", Subject{1, su}, Subject{9, su}, ReasonSuperadminProtected},
		{"admin on superadmin", Subject{2, adm}, Subject{1, su}, ReasonSuperadminProtected},
		{"user caller", Subject{3, usr}, Subject{4, usr}, ReasonUpdateNotAllowed},
		{"moderator caller", Subject{3, mod}, Subject{4, usr}, ReasonUpdateNotAllowed},
		{"admin on admin", Subject{2, adm}, Subject{5, adm}, ReasonAdminPeerUpdate},
		{"admin on moderator", Subject{2, adm}, Subject{5, mod}, ""},
		{"admin on user", Subject{2, adm}, Subject{5, usr}, ""},
		{"superadmin on admin", Subject{1, su}, Subject{5, adm}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanUpdate(tt.requester, tt.target)
			assert.Equal(t, tt.want == "", d.Allowed)
			assert.Equal(t, tt.want, d.Reason)
		})
	}
}

func TestCanUpdate_AdminNeverUpdatesAdmin(t *testing.T) {
	for rid := int64(1); rid <= 3; rid++ {
		for tid := int64(1); tid <= 3; tid++ {
			d := CanUpdate(Subject{rid, adm}, Subject{tid, adm})
			assert.False(t, d.Allowed, "requester %d target %d", rid, tid)
		}
	}
}

func TestCanChangeFields(t *testing.T) {
	assert.True(t, CanChangeUsername(su).Allowed)
	assert.Equal(t, ReasonUsernameChange, CanChangeUsername(adm).Reason)

	assert.True(t, CanChangeRole(su, usr, adm).Allowed)
	assert.True(t, CanChangeRole(su, adm, su).Allowed)
	assert.Equal(t, ReasonRoleChange, CanChangeRole(adm, usr, mod).Reason)
	assert.Equal(t, ReasonSuperadminRoleChange, CanChangeRole(su, su, adm).Reason)
}

func TestCanView(t *testing.T) {
	tests := []struct {
		name      string
		requester Subject
		target    Subject
		want      Visibility
	}{
		{"superadmin self", Subject{1, su}, Subject{1, su}, Full},
		{"other superadmin", Subject{1, su}, Subject{2, su}, Hidden},
		{"admin on superadmin", Subject{3, adm}, Subject{1, su}, Hidden},
		{"admin on admin", Subject{3, adm}, Subject{4, adm}, Redacted},
		{"admin self", Subject{3, adm}, Subject{3, adm}, Full},
		{"admin on moderator", Subject{3, adm}, Subject{5, mod}, Full},
		{"moderator on user", Subject{5, mod}, Subject{6, usr}, Full},
		{"moderator on admin", Subject{5, mod}, Subject{3, adm}, Redacted},
		{"superadmin on admin", Subject{1, su}, Subject{3, adm}, Full},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.requester, tt.target))
		})
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name      string
		requester Subject
		target    Subject
		want      Reason
	}{
		{"superadmin deletes admin", Subject{1, su}, Subject{2, adm}, ""},
		{"superadmin deletes moderator", Subject{1, su}, Subject{2, mod}, ""},
		{"superadmin deletes superadmin", Subject{1, su}, Subject{2, su}, ReasonSuperadminDelete},
		{"admin deletes user", Subject{2, adm}, Subject{3, usr}, ""},
		{"admin deletes moderator", Subject{2, adm}, Subject{3, mod}, ReasonAdminPeerDelete},
		{"admin deletes admin", Subject{2, adm}, Subject{3, adm}, ReasonAdminPeerDelete},
		{"moderator deletes user", Subject{2, mod}, Subject{3, usr}, ReasonDeleteNotAllowed},
		{"user deletes user", Subject{2, usr}, Subject{3, usr}, ReasonDeleteNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanDelete(tt.requester, tt.target)
			assert.Equal(t, tt.want == "", d.Allowed)
			assert.Equal(t, tt.want, d.Reason)
		})
	}
}

func TestCanDelete_NeverSelf(t *testing.T) {
	for _, r := range model.Roles {
		for _, tr := range model.Roles {
			d := CanDelete(Subject{7, r}, Subject{7, tr})
			assert.False(t, d.Allowed)
			assert.Equal(t, ReasonSelfDelete, d.Reason)
		}
	}
}

func TestDecision_Err(t *testing.T) {
	require.NoError(t, allow.Err())

	err := deny(ReasonSelfDelete).Err()
	require.ErrorIs(t, err, model.ErrPermissionDenied)
	var denied *model.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "self_delete", denied.Reason)
	assert.Equal(t, "Users cannot delete themselves", denied.Message)
}

func TestListScopeFor(t *testing.T) {
	assert.Equal(t, ListScope{ExcludeSuperadmins: true, HideInactiveAdmins: true}, ListScopeFor(adm))
	assert.Equal(t, ListScope{ExcludeSuperadmins: true}, ListScopeFor(su))
}
