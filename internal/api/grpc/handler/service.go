package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Service names.
const (
	AuthServiceName     = "contacts.v1.Auth"
	UsersServiceName    = "contacts.v1.Users"
	ContactsServiceName = "contacts.v1.Contacts"
)

// FullMethod returns the gRPC method path used by interceptors.
func FullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// AuthServer is the unauthenticated part of the API.
type AuthServer interface {
	Register(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Refresh(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ConfirmEmail(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	RequestEmailConfirmation(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

// UsersServer serves the authenticated user endpoints.
type UsersServer interface {
	Me(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ChangePassword(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	UpdateAvatar(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ResetAvatar(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ContactsCount(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	List(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Get(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Create(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Update(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Delete(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

// ContactsServer serves the address book of the authenticated user.
type ContactsServer interface {
	Create(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	List(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	UpcomingBirthdays(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Get(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Overwrite(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Update(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Delete(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

// AuthServiceDesc describes contacts.v1.Auth.
var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(AuthServiceName, "Register", AuthServer.Register),
		unary(AuthServiceName, "Login", AuthServer.Login),
		unary(AuthServiceName, "Refresh", AuthServer.Refresh),
		unary(AuthServiceName, "ConfirmEmail", AuthServer.ConfirmEmail),
		unary(AuthServiceName, "RequestEmailConfirmation", AuthServer.RequestEmailConfirmation),
	},
	Streams: []grpc.StreamDesc{},
}

// UsersServiceDesc describes contacts.v1.Users.
var UsersServiceDesc = grpc.ServiceDesc{
	ServiceName: UsersServiceName,
	HandlerType: (*UsersServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(UsersServiceName, "Me", UsersServer.Me),
		unary(UsersServiceName, "ChangePassword", UsersServer.ChangePassword),
		unary(UsersServiceName, "UpdateAvatar", UsersServer.UpdateAvatar),
		unary(UsersServiceName, "ResetAvatar", UsersServer.ResetAvatar),
		unary(UsersServiceName, "ContactsCount", UsersServer.ContactsCount),
		unary(UsersServiceName, "List", UsersServer.List),
		unary(UsersServiceName, "Get", UsersServer.Get),
		unary(UsersServiceName, "Create", UsersServer.Create),
		unary(UsersServiceName, "Update", UsersServer.Update),
		unary(UsersServiceName, "Delete", UsersServer.Delete),
	},
	Streams: []grpc.StreamDesc{},
}

// ContactsServiceDesc describes contacts.v1.Contacts.
var ContactsServiceDesc = grpc.ServiceDesc{
	ServiceName: ContactsServiceName,
	HandlerType: (*ContactsServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ContactsServiceName, "Create", ContactsServer.Create),
		unary(ContactsServiceName, "List", ContactsServer.List),
		unary(ContactsServiceName, "UpcomingBirthdays", ContactsServer.UpcomingBirthdays),
		unary(ContactsServiceName, "Get", ContactsServer.Get),
		unary(ContactsServiceName, "Overwrite", ContactsServer.Overwrite),
		unary(ContactsServiceName, "Update", ContactsServer.Update),
		unary(ContactsServiceName, "Delete", ContactsServer.Delete),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterAuthServer registers the Auth service on s.
func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

// RegisterUsersServer registers the Users service on s.
func RegisterUsersServer(s grpc.ServiceRegistrar, srv UsersServer) {
	s.RegisterService(&UsersServiceDesc, srv)
}

// RegisterContactsServer registers the Contacts service on s.
func RegisterContactsServer(s grpc.ServiceRegistrar, srv ContactsServer) {
	s.RegisterService(&ContactsServiceDesc, srv)
}

func unary[S any](service, method string, call func(S, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodDesc {
	fullMethod := FullMethod(service, method)

	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
