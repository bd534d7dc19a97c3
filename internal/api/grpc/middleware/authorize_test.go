package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcctx "github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/context"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/policy"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/testutil"
)

func TestAuthorize_UnaryServerInterceptor(t *testing.T) {
	t.Parallel()

	const adminMethod = "/contacts.v1.Users/Delete"
	rules := map[string][]model.Role{adminMethod: policy.AdminRoles}

	tests := []struct {
		name     string
		method   string
		user     *model.User
		wantCode codes.Code
	}{
		{name: "no rule", method: "/contacts.v1.Users/Me", user: &model.User{Role: model.RoleUser}, wantCode: codes.OK},
		{name: "allowed", method: adminMethod, user: &model.User{Role: model.RoleAdmin}, wantCode: codes.OK},
		{name: "denied", method: adminMethod, user: &model.User{Role: model.RoleModerator}, wantCode: codes.PermissionDenied},
		{name: "no user", method: adminMethod, wantCode: codes.Unauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := grpcctx.NewManager()
			a := NewAuthorize(rules, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.user != nil {
				ctx = cm.SetUserToContext(ctx, *tt.user)
			}

			called := false
			handler := func(ctx context.Context, req any) (any, error) {
				called = true
				return "ok", nil
			}

			_, err := a.UnaryServerInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: tt.method}, handler)
			assert.Equal(t, tt.wantCode, status.Code(err))
			assert.Equal(t, tt.wantCode == codes.OK, called)
		})
	}
}
