package users

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// ErrMalformedResponse marks a response whose shape does not match the
// users service contract.
var ErrMalformedResponse = errors.New("malformed users service response")

// Summary is one user as reported by the users service. Optional fields are
// nil when the service omitted them.
type Summary struct {
	ID           string
	Name         string
	Email        string
	PostCount    *int64
	CommentCount *int64
}

// DeleteResult is the outcome of DeleteUser. Success is nil when the
// service did not report one.
type DeleteResult struct {
	Success *bool
}

// DecodeSummaries converts a ListUsers response into summaries, keeping
// service order.
func DecodeSummaries(list *structpb.ListValue) ([]Summary, error) {
	values := list.GetValues()
	summaries := make([]Summary, 0, len(values))
	for idx, value := range values {
		record := value.GetStructValue()
		if record == nil {
			return nil, fmt.Errorf("%w: user %d is not an object", ErrMalformedResponse, idx)
		}
		summary, err := DecodeSummary(record)
		if err != nil {
			return nil, fmt.Errorf("user %d: %w", idx, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// DecodeSummary converts one user struct. Missing strings decode as empty
// and missing counts as nil.
func DecodeSummary(record *structpb.Struct) (Summary, error) {
	var (
		summary Summary
		err     error
	)
	fields := record.GetFields()
	if summary.ID, err = optionalString(fields, fieldID); err != nil {
		return Summary{}, err
	}
	if summary.Name, err = optionalString(fields, fieldName); err != nil {
		return Summary{}, err
	}
	if summary.Email, err = optionalString(fields, fieldEmail); err != nil {
		return Summary{}, err
	}
	if summary.PostCount, err = optionalCount(fields, fieldPostCount); err != nil {
		return Summary{}, err
	}
	if summary.CommentCount, err = optionalCount(fields, fieldCommentCount); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// DecodeDeleteResult validates a DeleteUser response. An absent success
// field yields a nil Success; a present non-boolean one is malformed.
func DecodeDeleteResult(result *structpb.Struct) (DeleteResult, error) {
	value, ok := result.GetFields()[fieldSuccess]
	if !ok || isNull(value) {
		return DeleteResult{}, nil
	}
	boolValue, ok := value.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return DeleteResult{}, fmt.Errorf("%w: %s is not a boolean", ErrMalformedResponse, fieldSuccess)
	}
	success := boolValue.BoolValue
	return DeleteResult{Success: &success}, nil
}

func optionalString(fields map[string]*structpb.Value, key string) (string, error) {
	value, ok := fields[key]
	if !ok || isNull(value) {
		return "", nil
	}
	stringValue, ok := value.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformedResponse, key)
	}
	return stringValue.StringValue, nil
}

func optionalCount(fields map[string]*structpb.Value, key string) (*int64, error) {
	value, ok := fields[key]
	if !ok || isNull(value) {
		return nil, nil
	}
	numberValue, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a number", ErrMalformedResponse, key)
	}
	number := numberValue.NumberValue
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return nil, fmt.Errorf("%w: %s is not finite", ErrMalformedResponse, key)
	}
	count := int64(math.Trunc(number))
	return &count, nil
}

func isNull(value *structpb.Value) bool {
	if value == nil {
		return true
	}
	_, null := value.GetKind().(*structpb.Value_NullValue)
	return null
}
