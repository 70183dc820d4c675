package users

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls the users service over a gRPC connection.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a users client on conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// ListUsers fetches and decodes every user summary.
func (c *Client) ListUsers(ctx context.Context, opts ...grpc.CallOption) ([]Summary, error) {
	if c == nil || c.conn == nil {
		return nil, fmt.Errorf("users client is not configured")
	}
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, listUsersMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return DecodeSummaries(out)
}

// DeleteUser asks the service to delete userID and validates the result.
// Remote status errors are returned unchanged so callers can read their
// localized message.
func (c *Client) DeleteUser(ctx context.Context, userID string, opts ...grpc.CallOption) (DeleteResult, error) {
	if c == nil || c.conn == nil {
		return DeleteResult{}, fmt.Errorf("users client is not configured")
	}
	out := new(structpb.Struct)
	in := wrapperspb.String(strings.TrimSpace(userID))
	if err := c.conn.Invoke(ctx, deleteUserMethod, in, out, opts...); err != nil {
		return DeleteResult{}, err
	}
	return DecodeDeleteResult(out)
}
