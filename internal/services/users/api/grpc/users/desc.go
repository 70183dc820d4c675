package users

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully-qualified gRPC service name, also used for
	// health checks.
	ServiceName = "userboard.users.v1.UserService"

	listUsersMethod  = "/" + ServiceName + "/ListUsers"
	deleteUserMethod = "/" + ServiceName + "/DeleteUser"
)

// UserServiceServer is the server API for the users service.
//
// ListUsers returns one struct per user with the fields id, name (omitted
// when empty), email, post_count and comment_count. DeleteUser takes the
// user id and returns a struct with a boolean success field.
type UserServiceServer interface {
	ListUsers(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	DeleteUser(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// RegisterUserServiceServer registers srv on registrar.
func RegisterUserServiceServer(registrar grpc.ServiceRegistrar, srv UserServiceServer) {
	registrar.RegisterService(&UserServiceDesc, srv)
}

func listUsersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).ListUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listUsersMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).ListUsers(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).DeleteUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: deleteUserMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).DeleteUser(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// UserServiceDesc describes the users service for grpc.Server.
var UserServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListUsers", Handler: listUsersHandler},
		{MethodName: "DeleteUser", Handler: deleteUserHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "userboard/users/v1/users.proto",
}
