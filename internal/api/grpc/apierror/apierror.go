// Package apierror converts domain errors into gRPC statuses.
package apierror

import (
	"context"
	"errors"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

// Caller facing messages.
const (
	MessageInvalidToken       = "Could not validate credentials"
	MessageMissingToken       = "Missing authorization token"
	MessageInvalidCredentials = "Incorrect username or password"
	MessageInactive           = "Inactive user"
	MessageAlreadyConfirmed   = "Your email is already confirmed"
	MessageEmailNotConfirmed  = "Email verification required"
	MessageNotFound           = "User not found or action is not allowed"
	MessageContactNotFound    = "Contact not found"
	MessageInvalidInput       = "Invalid input data"
	MessageConflict           = "User already exists"
	MessageInternal           = "Internal server error"
)

// ToStatus maps err onto a gRPC status error. Errors that already carry a status are returned as is.
// Unknown errors become codes.Internal with a generic message.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var (
		conflict *model.ConflictError
		bad      *model.BadProvidedDataError
		denied   *model.PermissionDeniedError
	)

	switch {
	case errors.As(err, &bad):
		return withFieldViolations(codes.InvalidArgument, MessageInvalidInput, bad.Fields)
	case errors.Is(err, model.ErrInvalidRole):
		return status.Error(codes.InvalidArgument, model.ErrInvalidRole.Error())
	case errors.As(err, &conflict):
		return withFieldViolations(codes.AlreadyExists, MessageConflict, conflict.Fields)
	case errors.As(err, &denied):
		return withReason(codes.PermissionDenied, denied.Message, denied.Reason)
	case errors.Is(err, model.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, MessageInvalidToken)
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, MessageInvalidCredentials)
	case errors.Is(err, model.ErrEmailNotConfirmed):
		return status.Error(codes.Unauthenticated, MessageEmailNotConfirmed)
	case errors.Is(err, model.ErrUserInactive):
		return status.Error(codes.PermissionDenied, MessageInactive)
	case errors.Is(err, model.ErrAlreadyConfirmed):
		return status.Error(codes.FailedPrecondition, MessageAlreadyConfirmed)
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, MessageNotFound)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	return status.Error(codes.Internal, MessageInternal)
}

func withFieldViolations(code codes.Code, msg string, fields model.FieldErrors) error {
	st := status.New(code, msg)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	br := &errdetails.BadRequest{}
	for _, name := range names {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       name,
			Description: fields[name],
		})
	}

	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

func withReason(code codes.Code, msg, reason string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: "contacts.v1",
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// FieldViolations extracts the field map from a status produced by ToStatus.
func FieldViolations(err error) model.FieldErrors {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	fields := model.FieldErrors{}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.GetFieldViolations() {
				fields[v.GetField()] = v.GetDescription()
			}
		}
	}
	return fields
}
