package users

import (
	"context"
	"net"
	"testing"

	apperrors "github.com/louisbranch/userboard/internal/platform/errors"
	"github.com/louisbranch/userboard/internal/services/users/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// scriptedServer returns canned payloads to exercise client validation.
type scriptedServer struct {
	list   *structpb.ListValue
	result *structpb.Struct
	err    error
}

func (s *scriptedServer) ListUsers(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return s.list, s.err
}

func (s *scriptedServer) DeleteUser(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return s.result, s.err
}

func startClient(t *testing.T, srv UserServiceServer) *Client {
	t.Helper()
	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterUserServiceServer(server, srv)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewClient(conn)
}

func TestClientRoundTripWithService(t *testing.T) {
	store := &fakeStore{summaries: []storage.UserSummary{
		{User: storage.User{ID: "u-1", Email: "anon@example.com"}, PostCount: 1},
	}}
	client := startClient(t, NewService(store))

	summaries, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "u-1", summaries[0].ID)
	assert.Empty(t, summaries[0].Name)
	require.NotNil(t, summaries[0].PostCount)
	assert.EqualValues(t, 1, *summaries[0].PostCount)

	result, err := client.DeleteUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.NotNil(t, result.Success)
	assert.True(t, *result.Success)
	assert.Equal(t, []string{"u-1"}, store.deleted)
}

func TestClientCarriesLocale(t *testing.T) {
	client := startClient(t, NewService(&fakeStore{deleteErr: storage.ErrNotFound}))

	ctx := WithLocale(context.Background(), "pt-BR")
	_, err := client.DeleteUser(ctx, "u-404")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Usuário não encontrado", apperrors.UserMessage(err))
}

func TestClientRejectsMalformedSuccess(t *testing.T) {
	client := startClient(t, &scriptedServer{result: &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldSuccess: structpb.NewNumberValue(1),
	}}})

	_, err := client.DeleteUser(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClientAbsentSuccess(t *testing.T) {
	client := startClient(t, &scriptedServer{result: &structpb.Struct{}})

	result, err := client.DeleteUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Nil(t, result.Success)
}

func TestClientPassesRemoteErrors(t *testing.T) {
	client := startClient(t, &scriptedServer{err: status.Error(codes.Unavailable, "Network down")})

	_, err := client.DeleteUser(context.Background(), "u-1")
	require.Error(t, err)
	assert.Equal(t, "Network down", apperrors.UserMessage(err))
}

func TestNilClient(t *testing.T) {
	var client *Client
	_, err := client.ListUsers(context.Background())
	assert.Error(t, err)
	_, err = client.DeleteUser(context.Background(), "u-1")
	assert.Error(t, err)
}
