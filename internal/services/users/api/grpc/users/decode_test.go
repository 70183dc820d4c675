package users

import (
	"errors"
	"math"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"
)

func TestDecodeSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		fields       map[string]*structpb.Value
		wantErr      bool
		wantName     string
		wantPosts    *int64
		wantComments *int64
	}{
		{
			name: "full record",
			fields: map[string]*structpb.Value{
				fieldID:           structpb.NewStringValue("u-1"),
				fieldName:         structpb.NewStringValue("Ada"),
				fieldEmail:        structpb.NewStringValue("ada@example.com"),
				fieldPostCount:    structpb.NewNumberValue(3),
				fieldCommentCount: structpb.NewNumberValue(7),
			},
			wantName:     "Ada",
			wantPosts:    int64Ptr(3),
			wantComments: int64Ptr(7),
		},
		{
			name: "missing optional fields",
			fields: map[string]*structpb.Value{
				fieldID:    structpb.NewStringValue("u-2"),
				fieldEmail: structpb.NewStringValue("anon@example.com"),
			},
		},
		{
			name: "null count",
			fields: map[string]*structpb.Value{
				fieldID:        structpb.NewStringValue("u-3"),
				fieldPostCount: structpb.NewNullValue(),
			},
		},
		{
			name: "string count",
			fields: map[string]*structpb.Value{
				fieldPostCount: structpb.NewStringValue("3"),
			},
			wantErr: true,
		},
		{
			name: "infinite count",
			fields: map[string]*structpb.Value{
				fieldCommentCount: structpb.NewNumberValue(math.Inf(1)),
			},
			wantErr: true,
		},
		{
			name: "numeric name",
			fields: map[string]*structpb.Value{
				fieldName: structpb.NewNumberValue(1),
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeSummary(&structpb.Struct{Fields: tc.fields})
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedResponse) {
					t.Fatalf("err = %v, want %v", err, ErrMalformedResponse)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode summary: %v", err)
			}
			if got.Name != tc.wantName {
				t.Fatalf("name = %q, want %q", got.Name, tc.wantName)
			}
			assertCount(t, "post_count", got.PostCount, tc.wantPosts)
			assertCount(t, "comment_count", got.CommentCount, tc.wantComments)
		})
	}
}

func TestDecodeSummariesKeepsOrder(t *testing.T) {
	t.Parallel()

	list := &structpb.ListValue{Values: []*structpb.Value{
		structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{fieldID: structpb.NewStringValue("b")}}),
		structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{fieldID: structpb.NewStringValue("a")}}),
	}}
	got, err := DecodeSummaries(list)
	if err != nil {
		t.Fatalf("decode summaries: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("summaries = %+v, want [b a]", got)
	}
}

func TestDecodeSummariesRejectsNonObject(t *testing.T) {
	t.Parallel()

	list := &structpb.ListValue{Values: []*structpb.Value{structpb.NewStringValue("nope")}}
	if _, err := DecodeSummaries(list); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("err = %v, want %v", err, ErrMalformedResponse)
	}
}

func TestDecodeSummariesNilList(t *testing.T) {
	t.Parallel()

	got, err := DecodeSummaries(nil)
	if err != nil {
		t.Fatalf("decode nil list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("summaries = %d, want 0", len(got))
	}
}

func TestDecodeDeleteResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		result      *structpb.Struct
		wantErr     bool
		wantSuccess *bool
	}{
		{name: "nil result"},
		{name: "absent success", result: &structpb.Struct{}},
		{
			name:   "null success",
			result: &structpb.Struct{Fields: map[string]*structpb.Value{fieldSuccess: structpb.NewNullValue()}},
		},
		{
			name:        "true",
			result:      &structpb.Struct{Fields: map[string]*structpb.Value{fieldSuccess: structpb.NewBoolValue(true)}},
			wantSuccess: boolPtr(true),
		},
		{
			name:        "false",
			result:      &structpb.Struct{Fields: map[string]*structpb.Value{fieldSuccess: structpb.NewBoolValue(false)}},
			wantSuccess: boolPtr(false),
		},
		{
			name:    "string success",
			result:  &structpb.Struct{Fields: map[string]*structpb.Value{fieldSuccess: structpb.NewStringValue("true")}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeDeleteResult(tc.result)
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedResponse) {
					t.Fatalf("err = %v, want %v", err, ErrMalformedResponse)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode delete result: %v", err)
			}
			switch {
			case tc.wantSuccess == nil && got.Success != nil:
				t.Fatalf("success = %v, want absent", *got.Success)
			case tc.wantSuccess != nil && (got.Success == nil || *got.Success != *tc.wantSuccess):
				t.Fatalf("success = %v, want %v", got.Success, *tc.wantSuccess)
			}
		})
	}
}

func assertCount(t *testing.T, field string, got, want *int64) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Fatalf("%s = %d, want absent", field, *got)
	case want != nil && (got == nil || *got != *want):
		t.Fatalf("%s = %v, want %d", field, got, *want)
	}
}

func int64Ptr(value int64) *int64 { return &value }

func boolPtr(value bool) *bool { return &value }
