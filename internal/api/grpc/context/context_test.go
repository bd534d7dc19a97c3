package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

func TestManager_SetAndGetUser(t *testing.T) {
	m := NewManager()
	user := model.User{ID: 3, Username: "ann", Role: model.RoleAdmin}
	ctx := m.SetUserToContext(stdctx.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_GetUser_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetUserFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_SetUser_Overrides(t *testing.T) {
	m := NewManager()
	ctx := m.SetUserToContext(stdctx.Background(), model.User{ID: 1})
	ctx = m.SetUserToContext(ctx, model.User{ID: 2})

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
}
