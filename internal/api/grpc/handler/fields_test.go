package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

func TestRequest_OptionalString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fields      map[string]any
		wantPresent bool
		wantNull    bool
		wantValue   string
		wantErr     bool
	}{
		{name: "absent", fields: map[string]any{}},
		{name: "null", fields: map[string]any{"username": nil}, wantPresent: true, wantNull: true},
		{name: "value", fields: map[string]any{"username": "ann"}, wantPresent: true, wantValue: "ann"},
		{name: "empty string is a value", fields: map[string]any{"username": ""}, wantPresent: true},
		{name: "wrong type", fields: map[string]any{"username": true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := newRequest(mustStruct(t, tt.fields))
			got := req.optionalString("username")

			assert.Equal(t, tt.wantPresent, got.Present())
			assert.Equal(t, tt.wantNull, got.IsNull())
			v, _ := got.Value()
			assert.Equal(t, tt.wantValue, v)
			if tt.wantErr {
				assert.ErrorIs(t, req.err(), model.ErrBadProvidedData)
			} else {
				assert.NoError(t, req.err())
			}
		})
	}
}

func TestRequest_OptionalBool(t *testing.T) {
	t.Parallel()

	req := newRequest(mustStruct(t, map[string]any{"a": false, "b": nil, "c": "yes"}))

	a := req.optionalBool("a")
	v, ok := a.Value()
	assert.True(t, ok)
	assert.False(t, v)

	assert.True(t, req.optionalBool("b").IsNull())
	assert.False(t, req.optionalBool("c").Present())
	assert.False(t, req.optionalBool("missing").Present())
	assert.Error(t, req.err())
}

func TestRequest_ID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  map[string]any
		want    int64
		wantErr string
	}{
		{name: "integer", fields: map[string]any{"user_id": 42}, want: 42},
		{name: "missing", fields: map[string]any{}, wantErr: "user_id is required"},
		{name: "fraction", fields: map[string]any{"user_id": 4.2}, wantErr: "user_id must be an integer"},
		{name: "string", fields: map[string]any{"user_id": "42"}, wantErr: "user_id must be an integer"},
		{name: "negative", fields: map[string]any{"user_id": -1}, want: -1, wantErr: "user_id must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := newRequest(mustStruct(t, tt.fields))
			assert.Equal(t, tt.want, req.id("user_id"))
			if tt.wantErr == "" {
				assert.Empty(t, req.errs)
				return
			}
			assert.Equal(t, tt.wantErr, req.errs["user_id"])
		})
	}
}

func TestRequest_NilStruct(t *testing.T) {
	t.Parallel()

	req := newRequest(nil)
	assert.Equal(t, "", req.str("username"))
	assert.Equal(t, 20, req.intOr("limit", 20))
	assert.Nil(t, req.boolPtr("is_active"))
	assert.NoError(t, req.err())
}

func TestUserToStruct(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	avatar := "https://www.gravatar.com/avatar/x"
	out := userToStruct(model.User{
		ID:             5,
		Username:       "ann",
		Email:          "ann@example.com",
		HashedPassword: "secret-hash",
		Role:           model.RoleModerator,
		Avatar:         &avatar,
		IsActive:       true,
		CreatedAt:      created,
	})

	require.NotContains(t, out.Fields, "hashed_password")
	assert.Equal(t, float64(5), out.Fields["id"].GetNumberValue())
	assert.Equal(t, "moderator", out.Fields["role"].GetStringValue())
	assert.Equal(t, avatar, out.Fields["avatar"].GetStringValue())
	assert.Equal(t, "2025-03-01T10:00:00Z", out.Fields["created_at"].GetStringValue())
	assert.IsType(t, &structpb.Value_NullValue{}, out.Fields["updated_at"].GetKind())
}
