package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := Wrap(CodeUserNotFound, "user u-1 not found", stderrors.New("no rows"))
	if !stderrors.Is(err, New(CodeUserNotFound, "")) {
		t.Fatal("expected code match")
	}
	if stderrors.Is(err, New(CodeUserIDRequired, "")) {
		t.Fatal("unexpected match for different code")
	}
	if err.Unwrap() == nil {
		t.Fatal("expected wrapped cause")
	}
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("delete: %w", New(CodeUserIDRequired, "missing id"))
	if got := GetCode(wrapped); got != CodeUserIDRequired {
		t.Fatalf("GetCode = %q, want %q", got, CodeUserIDRequired)
	}
	if got := GetCode(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("GetCode = %q, want %q", got, CodeUnknown)
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := map[Code]codes.Code{
		CodeUserIDRequired:     codes.InvalidArgument,
		CodeUserNotFound:       codes.NotFound,
		CodeStorageUnavailable: codes.Unavailable,
		CodeUnknown:            codes.Internal,
	}
	for code, want := range tests {
		if got := code.GRPCCode(); got != want {
			t.Fatalf("%s.GRPCCode() = %v, want %v", code, got, want)
		}
	}
}

func TestToLocalizedGRPCStatusRoundTrip(t *testing.T) {
	err := New(CodeUserNotFound, "user u-1 not found").ToLocalizedGRPCStatus("pt-BR")

	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
	if got := UserMessage(err); got != "Usuário não encontrado" {
		t.Fatalf("UserMessage = %q", got)
	}
	if got := ReasonFromStatus(err); got != CodeUserNotFound {
		t.Fatalf("ReasonFromStatus = %q, want %q", got, CodeUserNotFound)
	}
}

func TestUserMessageFallbacks(t *testing.T) {
	if got := UserMessage(nil); got != "" {
		t.Fatalf("UserMessage(nil) = %q, want empty", got)
	}
	if got := UserMessage(status.Error(codes.Unavailable, "Network down")); got != "Network down" {
		t.Fatalf("UserMessage(status) = %q", got)
	}
	if got := UserMessage(stderrors.New("  plain failure ")); got != "plain failure" {
		t.Fatalf("UserMessage(plain) = %q", got)
	}
	if got := UserMessage(stderrors.New("")); got != "" {
		t.Fatalf("UserMessage(empty) = %q, want empty", got)
	}
}

func TestLocalizeCode(t *testing.T) {
	tests := []struct {
		locale string
		code   Code
		want   string
	}{
		{locale: "", code: CodeUserIDRequired, want: "Id is required"},
		{locale: "en-US", code: CodeUserNotFound, want: "User not found"},
		{locale: "pt-BR", code: CodeUserIDRequired, want: "O id é obrigatório"},
		{locale: "fr-FR", code: CodeUserNotFound, want: "User not found"},
		{locale: "en-US", code: Code("NOT_IN_CATALOG"), want: "Something went wrong"},
	}
	for _, tc := range tests {
		if got := LocalizeCode(tc.locale, tc.code); got != tc.want {
			t.Fatalf("LocalizeCode(%q, %q) = %q, want %q", tc.locale, tc.code, got, tc.want)
		}
	}
}
