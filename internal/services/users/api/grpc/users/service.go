// Package users exposes the users gRPC service and its client.
package users

import (
	"context"
	stderrors "errors"
	"log"
	"strings"

	apperrors "github.com/louisbranch/userboard/internal/platform/errors"
	"github.com/louisbranch/userboard/internal/services/users/storage"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Wire field names shared by the service and the client.
const (
	fieldID           = "id"
	fieldName         = "name"
	fieldEmail        = "email"
	fieldPostCount    = "post_count"
	fieldCommentCount = "comment_count"
	fieldSuccess      = "success"
)

// Service exposes users.v1 gRPC operations.
type Service struct {
	store storage.Store
}

// NewService creates a users service backed by store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// ListUsers returns every user summary in storage order.
func (s *Service) ListUsers(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	locale := LocaleFromIncoming(ctx)
	if s == nil || s.store == nil {
		return nil, apperrors.New(apperrors.CodeStorageUnavailable, "users store is not configured").ToLocalizedGRPCStatus(locale)
	}

	summaries, err := s.store.ListUserSummaries(ctx)
	if err != nil {
		log.Printf("list users: %v", err)
		return nil, apperrors.Wrap(apperrors.CodeStorageUnavailable, "list users", err).ToLocalizedGRPCStatus(locale)
	}

	values := make([]*structpb.Value, 0, len(summaries))
	for _, summary := range summaries {
		values = append(values, structpb.NewStructValue(summaryToStruct(summary)))
	}
	return &structpb.ListValue{Values: values}, nil
}

// DeleteUser removes one user and everything it owns.
func (s *Service) DeleteUser(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	locale := LocaleFromIncoming(ctx)
	userID := strings.TrimSpace(in.GetValue())
	if userID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDRequired, "user id is required").ToLocalizedGRPCStatus(locale)
	}
	if s == nil || s.store == nil {
		return nil, apperrors.New(apperrors.CodeStorageUnavailable, "users store is not configured").ToLocalizedGRPCStatus(locale)
	}

	if err := s.store.DeleteUser(ctx, userID); err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.WithMetadata(apperrors.CodeUserNotFound, "user not found", map[string]string{
				"UserID": userID,
			}).ToLocalizedGRPCStatus(locale)
		}
		log.Printf("delete user %s: %v", userID, err)
		return nil, apperrors.Wrap(apperrors.CodeStorageUnavailable, "delete user", err).ToLocalizedGRPCStatus(locale)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldSuccess: structpb.NewBoolValue(true),
	}}, nil
}

func summaryToStruct(summary storage.UserSummary) *structpb.Struct {
	fields := map[string]*structpb.Value{
		fieldID:           structpb.NewStringValue(summary.ID),
		fieldEmail:        structpb.NewStringValue(summary.Email),
		fieldPostCount:    structpb.NewNumberValue(float64(summary.PostCount)),
		fieldCommentCount: structpb.NewNumberValue(float64(summary.CommentCount)),
	}
	if name := strings.TrimSpace(summary.Name); name != "" {
		fields[fieldName] = structpb.NewStringValue(name)
	}
	return &structpb.Struct{Fields: fields}
}

var _ UserServiceServer = (*Service)(nil)
