package users

import (
	"context"
	"strings"

	"github.com/louisbranch/userboard/internal/platform/errors"
	"google.golang.org/grpc/metadata"
)

// LocaleMetadataKey carries the caller's preferred locale so error messages
// come back translated.
const LocaleMetadataKey = "x-userboard-locale"

// WithLocale returns ctx with locale attached to outgoing gRPC metadata.
func WithLocale(ctx context.Context, locale string) context.Context {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, LocaleMetadataKey, locale)
}

// LocaleFromIncoming returns the resolved caller locale, or the base locale.
func LocaleFromIncoming(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return errors.BaseLocale
	}
	values := md.Get(LocaleMetadataKey)
	if len(values) == 0 {
		return errors.BaseLocale
	}
	return errors.ResolveLocale(values[0]).String()
}
