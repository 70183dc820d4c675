package grpc

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func TestDialWithHealthSuccess(t *testing.T) {
	addr, _, stop := startHealthServer(t, grpc_health_v1.HealthCheckResponse_SERVING)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, err := DialWithHealth(ctx, nil, addr, "", time.Second, nil, DefaultClientDialOptions()...)
	if err != nil {
		t.Fatalf("dial with health: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close conn: %v", err)
	}
}

func TestDialWithHealthReturnsHealthStageWhenNotServing(t *testing.T) {
	addr, _, stop := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	conn, err := DialWithHealth(ctx, nil, addr, "", time.Second, nil, DefaultClientDialOptions()...)
	if conn != nil {
		_ = conn.Close()
		t.Fatal("expected nil connection on error")
	}
	var dialErr *DialError
	if !errors.As(err, &dialErr) {
		t.Fatalf("expected DialError, got %T", err)
	}
	if dialErr.Stage != DialStageHealth {
		t.Fatalf("stage = %q, want %q", dialErr.Stage, DialStageHealth)
	}
}

func TestDialWithHealthReturnsConnectStage(t *testing.T) {
	dialer := DialerFunc(func(_ context.Context, _ string, _ ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		return nil, fmt.Errorf("dial failure")
	})

	_, err := DialWithHealth(context.Background(), dialer, "unused", "", time.Second, nil)
	var dialErr *DialError
	if !errors.As(err, &dialErr) {
		t.Fatalf("expected DialError, got %T", err)
	}
	if dialErr.Stage != DialStageConnect {
		t.Fatalf("stage = %q, want %q", dialErr.Stage, DialStageConnect)
	}
	if dialErr.Unwrap() == nil {
		t.Fatal("expected wrapped cause")
	}
}

func TestDialErrorNilSafe(t *testing.T) {
	var err *DialError
	if err.Error() == "" {
		t.Fatal("expected message for nil error")
	}
	if err.Unwrap() != nil {
		t.Fatal("expected nil unwrap")
	}
}

func TestConnectWithRetryStopsAfterSuccess(t *testing.T) {
	var attempts atomic.Int32
	var got *gogrpc.ClientConn
	want := &gogrpc.ClientConn{}

	ConnectWithRetry(context.Background(), func(context.Context) (*gogrpc.ClientConn, error) {
		if attempts.Add(1) < 2 {
			return nil, errors.New("not yet")
		}
		return want, nil
	}, func(conn *gogrpc.ClientConn) {
		got = conn
	}, nil)

	if attempts.Load() != 2 {
		t.Fatalf("attempts = %d, want 2", attempts.Load())
	}
	if got != want {
		t.Fatal("expected connected callback with dialed connection")
	}
}

func TestConnectWithRetryReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	ConnectWithRetry(ctx, func(context.Context) (*gogrpc.ClientConn, error) {
		return nil, errors.New("unreachable")
	}, func(*gogrpc.ClientConn) {
		called = true
	}, nil)

	if called {
		t.Fatal("connected should not be called after cancel")
	}
}
