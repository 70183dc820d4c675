// Package grpcdial labels dial failures for service-specific dial helpers.
package grpcdial

import (
	"context"
	"errors"
	"fmt"
	"time"

	platformgrpc "github.com/louisbranch/userboard/internal/platform/grpc"
	gogrpc "google.golang.org/grpc"
)

// DialWithHealth dials a service endpoint, waits for service to report
// SERVING, and normalizes connect/health errors into service-labeled
// messages for startup callers. dialer may be nil.
func DialWithHealth(
	ctx context.Context,
	dialer platformgrpc.Dialer,
	addr string,
	service string,
	timeout time.Duration,
	serviceLabel string,
	logf func(string, ...any),
	opts ...gogrpc.DialOption,
) (*gogrpc.ClientConn, error) {
	conn, err := platformgrpc.DialWithHealth(ctx, dialer, addr, service, timeout, logf, opts...)
	if err != nil {
		return nil, NormalizeDialError(serviceLabel, addr, err)
	}
	return conn, nil
}

// NormalizeDialError maps platform DialError stages into stable startup error
// messages.
func NormalizeDialError(serviceLabel, addr string, err error) error {
	var dialErr *platformgrpc.DialError
	if errors.As(err, &dialErr) {
		if dialErr.Stage == platformgrpc.DialStageHealth {
			return fmt.Errorf("%s gRPC health check failed for %s: %w", serviceLabel, addr, dialErr.Err)
		}
		return fmt.Errorf("dial %s gRPC %s: %w", serviceLabel, addr, dialErr.Err)
	}
	return fmt.Errorf("dial %s gRPC %s: %w", serviceLabel, addr, err)
}
