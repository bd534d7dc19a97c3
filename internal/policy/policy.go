// Package policy holds the role permission matrix. Every function is pure.
package policy

import "github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"

// Reason names why an action was denied.
type Reason string

const (
	ReasonSuperadminCreation   Reason = "superadmin_creation"
	ReasonModeratorCreation    Reason = "moderator_cannot_create"
	ReasonAdminCreation        Reason = "admin_creates_only_users"
	ReasonUserCreation         Reason = "user_cannot_create"
	ReasonSelfUpdate           Reason = "self_update"
	ReasonSuperadminProtected  Reason = "superadmin_protected"
	ReasonUpdateNotAllowed     Reason = "update_not_allowed"
	ReasonAdminPeerUpdate      Reason = "admin_peer_update"
	ReasonUsernameChange       Reason = "username_change_restricted"
	ReasonRoleChange           Reason = "role_change_restricted"
	ReasonSuperadminRoleChange Reason = "superadmin_role_change"
	ReasonSelfDelete           Reason = "self_delete"
	ReasonDeleteNotAllowed     Reason = "delete_not_allowed"
	ReasonAdminPeerDelete      Reason = "admin_peer_delete"
	ReasonSuperadminDelete     Reason = "superadmin_delete"
	ReasonRoleNotAllowed       Reason = "role_not_allowed"
	ReasonInactive             Reason = "inactive_user"
	ReasonRedactedView         Reason = "redacted_view"
	ReasonEmailNotConfirmed    Reason = "email_not_confirmed"
)

var messages = map[Reason]string{
	ReasonSuperadminCreation:   "Creating of superadmin is restricted",
	ReasonModeratorCreation:    "Moderators are not allowed to create users",
	ReasonAdminCreation:        "Admins can only create regular users",
	ReasonUserCreation:         "Users are not allowed to create users",
	ReasonSelfUpdate:           "Self-update is not allowed via admin endpoint. Use self-service instead.",
	ReasonSuperadminProtected:  "Update of superadmin user is not allowed.",
	ReasonUpdateNotAllowed:     "Users and moderators are not allowed to update users",
	ReasonAdminPeerUpdate:      "Admins cannot modify other admins",
	ReasonUsernameChange:       "Only superadmin can change usernames",
	ReasonRoleChange:           "Only superadmin can change user roles",
	ReasonSuperadminRoleChange: "Superadmin cannot change another superadmin's role",
	ReasonSelfDelete:           "Users cannot delete themselves",
	ReasonDeleteNotAllowed:     "Users and moderators are not allowed to delete users",
	ReasonAdminPeerDelete:      "Admins can only delete regular users",
	ReasonSuperadminDelete:     "Superadmin cannot delete another superadmin",
	ReasonRoleNotAllowed:       "Insufficient role for this operation",
	ReasonInactive:             "Inactive user",
	ReasonRedactedView:         "Statistics of this user are not visible to you",
	ReasonEmailNotConfirmed:    "Email verification required",
}

// Message returns a caller facing description of the reason.
func (r Reason) Message() string {
	if m, ok := messages[r]; ok {
		return m
	}
	return "Operation is not permitted"
}

// Decision is the outcome of a policy check. Reason is empty when Allowed is true.
type Decision struct {
	Allowed bool
	Reason  Reason
}

var allow = Decision{Allowed: true}

func deny(r Reason) Decision {
	return Decision{Reason: r}
}

// Denied returns a denial for r. Callers use it when the decision was already taken elsewhere,
// e.g. a view that came back redacted.
func Denied(r Reason) Decision {
	return deny(r)
}

// Err converts a denial into a *model.PermissionDeniedError, or returns nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &model.PermissionDeniedError{Reason: string(d.Reason), Message: d.Reason.Message()}
}

// Subject identifies a participant of a user management action.
type Subject struct {
	ID   int64
	Role model.Role
}

// SubjectOf returns the policy subject of u.
func SubjectOf(u model.User) Subject {
	return Subject{ID: u.ID, Role: u.Role}
}

// Groups of roles allowed to reach moderator and admin level operations.
var (
	ModeratorRoles  = []model.Role{model.RoleModerator, model.RoleAdmin, model.RoleSuperadmin}
	AdminRoles      = []model.Role{model.RoleAdmin, model.RoleSuperadmin}
	SuperadminRoles = []model.Role{model.RoleSuperadmin}
)

// IsActive reports whether an account may act. Superadmins are always active so they cannot be locked out.
func IsActive(role model.Role, isActive bool) bool {
	return isActive || role == model.RoleSuperadmin
}

// CheckActive returns a denial for inactive accounts.
func CheckActive(u model.User) Decision {
	if IsActive(u.Role, u.IsActive) {
		return allow
	}
	return deny(ReasonInactive)
}

// HasRole reports whether role is one of allowed.
func HasRole(role model.Role, allowed ...model.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// CheckEmailConfirmed refuses sign-in for accounts whose email was never confirmed.
// Superadmins are exempt, the bootstrap account has no mailbox to confirm.
func CheckEmailConfirmed(u model.User) Decision {
	if u.IsEmailConfirmed || u.Role == model.RoleSuperadmin {
		return allow
	}
	return deny(ReasonEmailNotConfirmed)
}

// CheckRole returns a denial when role is not one of allowed.
func CheckRole(role model.Role, allowed ...model.Role) Decision {
	if HasRole(role, allowed...) {
		return allow
	}
	return deny(ReasonRoleNotAllowed)
}

// CanCreate decides whether creator may create an account with the target role.
func CanCreate(creator, target model.Role) Decision {
	if target == model.RoleSuperadmin {
		return deny(ReasonSuperadminCreation)
	}

	switch creator {
	case model.RoleSuperadmin:
		return allow
	case model.RoleAdmin:
		if target == model.RoleUser {
			return allow
		}
		return deny(ReasonAdminCreation)
	case model.RoleModerator:
		return deny(ReasonModeratorCreation)
	case model.RoleUser:
		return deny(ReasonUserCreation)
	}
	return deny(ReasonRoleNotAllowed)
}

// CanUpdate decides whether requester may update target through the admin path.
func CanUpdate(requester, target Subject) Decision {
	if requester.ID == target.ID {
		return deny(ReasonSelfUpdate)
	}
	if target.Role == model.RoleSuperadmin {
		return deny(ReasonSuperadminProtected)
	}

	switch requester.Role {
	case model.RoleSuperadmin:
		return allow
	case model.RoleAdmin:
		if target.Role == model.RoleAdmin {
			return deny(ReasonAdminPeerUpdate)
		}
		return allow
	case model.RoleModerator, model.RoleUser:
		return deny(ReasonUpdateNotAllowed)
	}
	return deny(ReasonRoleNotAllowed)
}

// CanChangeUsername decides whether requester may rename other users.
func CanChangeUsername(requester model.Role) Decision {
	if requester == model.RoleSuperadmin {
		return allow
	}
	return deny(ReasonUsernameChange)
}

// CanChangeRole decides whether requester may move a user from current to next role.
func CanChangeRole(requester, current, next model.Role) Decision {
	if requester != model.RoleSuperadmin {
		return deny(ReasonRoleChange)
	}
	if current == model.RoleSuperadmin && next != model.RoleSuperadmin {
		return deny(ReasonSuperadminRoleChange)
	}
	return allow
}

// Visibility is how much of a user record a requester may see.
type Visibility int

const (
	// Hidden means the record must not be revealed at all.
	Hidden Visibility = iota
	// Redacted exposes identity fields only.
	Redacted
	// Full exposes every field.
	Full
)

// CanView decides how much of target the requester may see.
func CanView(requester, target Subject) Visibility {
	if target.Role == model.RoleSuperadmin && requester.ID != target.ID {
		return Hidden
	}
	if CanViewFull(requester, target) {
		return Full
	}
	return Redacted
}

// CanViewFull reports whether requester may see the personal data of target.
func CanViewFull(requester, target Subject) bool {
	if requester.Role == model.RoleSuperadmin || requester.ID == target.ID {
		return true
	}

	switch target.Role {
	case model.RoleModerator, model.RoleUser:
		return true
	case model.RoleAdmin, model.RoleSuperadmin:
		return false
	}
	return false
}

// CanDelete decides whether requester may delete target.
func CanDelete(requester, target Subject) Decision {
	if requester.ID == target.ID {
		return deny(ReasonSelfDelete)
	}

	switch requester.Role {
	case model.RoleSuperadmin:
		if target.Role == model.RoleSuperadmin {
			return deny(ReasonSuperadminDelete)
		}
		return allow
	case model.RoleAdmin:
		if target.Role == model.RoleUser {
			return allow
		}
		return deny(ReasonAdminPeerDelete)
	case model.RoleModerator, model.RoleUser:
		return deny(ReasonDeleteNotAllowed)
	}
	return deny(ReasonRoleNotAllowed)
}

// ListScope describes which rows a listing query must exclude for a requester.
type ListScope struct {
	ExcludeSuperadmins bool
	HideInactiveAdmins bool
}

// ListScopeFor returns the listing exclusions for requester.
func ListScopeFor(requester model.Role) ListScope {
	return ListScope{
		ExcludeSuperadmins: true,
		HideInactiveAdmins: requester == model.RoleAdmin,
	}
}
