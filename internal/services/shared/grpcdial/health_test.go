package grpcdial

import (
	"errors"
	"testing"

	platformgrpc "github.com/louisbranch/userboard/internal/platform/grpc"
)

func TestNormalizeDialError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "health stage",
			err:  &platformgrpc.DialError{Stage: platformgrpc.DialStageHealth, Err: cause},
			want: "admin users gRPC health check failed for localhost:1: boom",
		},
		{
			name: "connect stage",
			err:  &platformgrpc.DialError{Stage: platformgrpc.DialStageConnect, Err: cause},
			want: "dial admin users gRPC localhost:1: boom",
		},
		{
			name: "plain error",
			err:  cause,
			want: "dial admin users gRPC localhost:1: boom",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeDialError("admin users", "localhost:1", tc.err)
			if got.Error() != tc.want {
				t.Fatalf("error = %q, want %q", got.Error(), tc.want)
			}
			if !errors.Is(got, cause) {
				t.Fatalf("expected wrapped cause, got %v", got)
			}
		})
	}
}
