package model

import "context"

// EmailConfirmationJob asks the mailer to send a confirmation link.
type EmailConfirmationJob struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// EmailPublisher hands confirmation jobs to the mail pipeline.
type EmailPublisher interface {
	PublishEmailConfirmation(ctx context.Context, job EmailConfirmationJob) error
}
