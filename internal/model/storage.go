package model

import (
	"context"
	"io"
)

// AvatarStorage keeps uploaded avatar images.
type AvatarStorage interface {
	UploadAvatar(ctx context.Context, userID int64, contentType string, data io.Reader, size int64) (string, error)
	DeleteByURL(ctx context.Context, url string) error
}

// AvatarResolver produces a default avatar for an email address.
type AvatarResolver interface {
	ResolveDefault(email string) (string, bool)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(ctx context.Context, plain string) (string, error)
	Verify(ctx context.Context, plain, hash string) bool
}
