package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/userboard/internal/platform/timeouts"
	"github.com/louisbranch/userboard/internal/services/admin/userlist"
	usersservice "github.com/louisbranch/userboard/internal/services/users/api/grpc/users"
	"google.golang.org/grpc"
)

// errUsersUnavailable reports that no users connection exists yet.
var errUsersUnavailable = errors.New("users service is not connected")

// UsersGateway reads and deletes users for the admin view.
type UsersGateway interface {
	ListUsers(ctx context.Context) ([]userlist.Record, error)
	DeleteUser(ctx context.Context, userID string) (userlist.DeleteResult, error)
}

// UsersGatewayProvider supplies the current gateway. It returns nil until
// the users service is reachable.
type UsersGatewayProvider interface {
	UsersGateway() UsersGateway
}

// usersClient is the slice of the users gRPC client the gateway needs.
type usersClient interface {
	ListUsers(ctx context.Context, opts ...grpc.CallOption) ([]usersservice.Summary, error)
	DeleteUser(ctx context.Context, userID string, opts ...grpc.CallOption) (usersservice.DeleteResult, error)
}

// grpcUsersGateway adapts the users gRPC client to records.
type grpcUsersGateway struct {
	client usersClient
}

func newUsersGateway(client usersClient) UsersGateway {
	return grpcUsersGateway{client: client}
}

func (g grpcUsersGateway) ListUsers(ctx context.Context) ([]userlist.Record, error) {
	if g.client == nil {
		return nil, errUsersUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()

	summaries, err := g.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]userlist.Record, 0, len(summaries))
	for _, summary := range summaries {
		records = append(records, recordFromSummary(summary))
	}
	return records, nil
}

func (g grpcUsersGateway) DeleteUser(ctx context.Context, userID string) (userlist.DeleteResult, error) {
	if g.client == nil {
		return userlist.DeleteResult{}, errUsersUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()

	result, err := g.client.DeleteUser(ctx, userID)
	if err != nil {
		return userlist.DeleteResult{}, err
	}
	return userlist.DeleteResult{Success: result.Success}, nil
}

func recordFromSummary(summary usersservice.Summary) userlist.Record {
	return userlist.Record{
		ID:           summary.ID,
		Name:         strings.TrimSpace(summary.Name),
		Email:        summary.Email,
		PostCount:    userlist.NormalizeCount(summary.PostCount),
		CommentCount: userlist.NormalizeCount(summary.CommentCount),
	}
}
