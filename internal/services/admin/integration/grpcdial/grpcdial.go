// Package grpcdial connects the admin surface to the users service.
package grpcdial

import (
	"context"
	"log"
	"strings"
	"time"

	platformgrpc "github.com/louisbranch/userboard/internal/platform/grpc"
	"github.com/louisbranch/userboard/internal/platform/timeouts"
	usersservice "github.com/louisbranch/userboard/internal/services/users/api/grpc/users"
	sharedgrpcdial "github.com/louisbranch/userboard/internal/services/shared/grpcdial"
	"google.golang.org/grpc"
)

// UsersClients contains the users client created by a successful dial.
type UsersClients struct {
	Conn   *grpc.ClientConn
	Client *usersservice.Client
}

func normalizeTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return timeouts.GRPCDial
	}
	return timeout
}

// DialUsers dials the users gRPC endpoint and waits for the users service
// to report SERVING. An empty addr returns zero clients. dialer may be nil.
func DialUsers(ctx context.Context, dialer platformgrpc.Dialer, addr string, timeout time.Duration, opts ...grpc.DialOption) (UsersClients, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return UsersClients{}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	timeout = normalizeTimeout(timeout)

	logf := func(format string, args ...any) {
		log.Printf("admin users "+format, args...)
	}
	dialOpts := append(platformgrpc.DefaultClientDialOptions(), opts...)
	conn, err := sharedgrpcdial.DialWithHealth(ctx, dialer, addr, usersservice.ServiceName, timeout, "admin users", logf, dialOpts...)
	if err != nil {
		return UsersClients{}, err
	}
	return UsersClients{
		Conn:   conn,
		Client: usersservice.NewClient(conn),
	}, nil
}
