package model

import "context"

// UserCache keeps user snapshots keyed by user id. Implementations never fail the caller.
type UserCache interface {
	GetUser(ctx context.Context, userID int64) (User, bool)
	SetUser(ctx context.Context, user User)
	InvalidateUser(ctx context.Context, userID int64)
}

// ContactsCountCache keeps per-user contact counts. Implementations never fail the caller.
type ContactsCountCache interface {
	GetContactsCount(ctx context.Context, userID int64) (int, bool)
	SetContactsCount(ctx context.Context, userID int64, count int)
	InvalidateContactsCount(ctx context.Context, userID int64)
}
