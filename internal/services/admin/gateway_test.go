package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/userboard/internal/services/admin/userlist"
	usersservice "github.com/louisbranch/userboard/internal/services/users/api/grpc/users"
)

type fakeUsersClient struct {
	summaries   []usersservice.Summary
	listErr     error
	result      usersservice.DeleteResult
	deleteErr   error
	deletedID   string
	hadDeadline bool
}

func (f *fakeUsersClient) ListUsers(ctx context.Context, _ ...grpc.CallOption) ([]usersservice.Summary, error) {
	_, f.hadDeadline = ctx.Deadline()
	return f.summaries, f.listErr
}

func (f *fakeUsersClient) DeleteUser(ctx context.Context, userID string, _ ...grpc.CallOption) (usersservice.DeleteResult, error) {
	_, f.hadDeadline = ctx.Deadline()
	f.deletedID = userID
	return f.result, f.deleteErr
}

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestGatewayListUsersNormalizesSummaries(t *testing.T) {
	client := &fakeUsersClient{summaries: []usersservice.Summary{
		{ID: "u-1", Name: " Ada ", Email: "ada@example.com", PostCount: int64Ptr(3), CommentCount: int64Ptr(1)},
		{ID: "u-2", Email: "anon@example.com"},
		{ID: "u-3", Name: "Neg", PostCount: int64Ptr(-4), CommentCount: int64Ptr(0)},
	}}

	records, err := newUsersGateway(client).ListUsers(context.Background())
	require.NoError(t, err)
	assert.True(t, client.hadDeadline)
	assert.Equal(t, []userlist.Record{
		{ID: "u-1", Name: "Ada", Email: "ada@example.com", PostCount: 3, CommentCount: 1},
		{ID: "u-2", Email: "anon@example.com"},
		{ID: "u-3", Name: "Neg"},
	}, records)
}

func TestGatewayListUsersEmpty(t *testing.T) {
	records, err := newUsersGateway(&fakeUsersClient{}).ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestGatewayListUsersPassesErrors(t *testing.T) {
	remote := status.Error(codes.Unavailable, "Network down")
	_, err := newUsersGateway(&fakeUsersClient{listErr: remote}).ListUsers(context.Background())
	assert.Equal(t, remote, err)
}

func TestGatewayDeleteUser(t *testing.T) {
	tests := []struct {
		name   string
		result usersservice.DeleteResult
		want   userlist.DeleteResult
	}{
		{name: "success", result: usersservice.DeleteResult{Success: boolPtr(true)}, want: userlist.DeleteResult{Success: boolPtr(true)}},
		{name: "not successful", result: usersservice.DeleteResult{Success: boolPtr(false)}, want: userlist.DeleteResult{Success: boolPtr(false)}},
		{name: "absent", result: usersservice.DeleteResult{}, want: userlist.DeleteResult{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeUsersClient{result: tc.result}
			got, err := newUsersGateway(client).DeleteUser(context.Background(), "u-1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "u-1", client.deletedID)
			assert.True(t, client.hadDeadline)
		})
	}
}

func TestGatewayDeleteUserPassesErrors(t *testing.T) {
	remote := status.Error(codes.NotFound, "User not found")
	_, err := newUsersGateway(&fakeUsersClient{deleteErr: remote}).DeleteUser(context.Background(), "u-1")
	assert.Equal(t, remote, err)
}

func TestGatewayWithoutClient(t *testing.T) {
	gateway := newUsersGateway(nil)

	_, err := gateway.ListUsers(context.Background())
	assert.ErrorIs(t, err, errUsersUnavailable)

	_, err = gateway.DeleteUser(context.Background(), "u-1")
	assert.ErrorIs(t, err, errUsersUnavailable)
}
