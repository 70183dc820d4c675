package userlist

import (
	"context"
	"log"
	"strings"
	"sync/atomic"

	apperrors "github.com/louisbranch/userboard/internal/platform/errors"
	platformotel "github.com/louisbranch/userboard/internal/platform/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DeleteResult is what the remote delete action reports. Success is nil
// when the action did not say.
type DeleteResult struct {
	Success *bool
}

// Succeeded reports whether the result is an explicit success.
func (r DeleteResult) Succeeded() bool {
	return r.Success != nil && *r.Success
}

// DeleteAction removes a user remotely.
type DeleteAction interface {
	DeleteUser(ctx context.Context, userID string) (DeleteResult, error)
}

// DeleteActionFunc adapts a function to DeleteAction.
type DeleteActionFunc func(ctx context.Context, userID string) (DeleteResult, error)

// DeleteUser calls fn.
func (fn DeleteActionFunc) DeleteUser(ctx context.Context, userID string) (DeleteResult, error) {
	return fn(ctx, userID)
}

// Refresher re-fetches the users view after a mutation.
type Refresher interface {
	Refresh(ctx context.Context)
}

// RefresherFunc adapts a function to Refresher.
type RefresherFunc func(ctx context.Context)

// Refresh calls fn.
func (fn RefresherFunc) Refresh(ctx context.Context) {
	fn(ctx)
}

// Refreshers fans a refresh out to every member in order.
type Refreshers []Refresher

// Refresh calls each non-nil member.
func (rs Refreshers) Refresh(ctx context.Context) {
	for _, r := range rs {
		if r != nil {
			r.Refresh(ctx)
		}
	}
}

// Notifier surfaces toasts to the operator.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Messages are the fixed, already localized texts the controller emits.
type Messages struct {
	IDRequired   string
	Deleted      string
	DeleteFailed string
}

// DefaultMessages are the English texts.
var DefaultMessages = Messages{
	IDRequired:   "Id is required",
	Deleted:      "User deleted successfully",
	DeleteFailed: "Failed to delete user",
}

func (m Messages) withDefaults() Messages {
	if strings.TrimSpace(m.IDRequired) == "" {
		m.IDRequired = DefaultMessages.IDRequired
	}
	if strings.TrimSpace(m.Deleted) == "" {
		m.Deleted = DefaultMessages.Deleted
	}
	if strings.TrimSpace(m.DeleteFailed) == "" {
		m.DeleteFailed = DefaultMessages.DeleteFailed
	}
	return m
}

// Outcome classifies how a Delete call ended.
type Outcome int

const (
	// OutcomeRejected means the id was empty and no remote call was made.
	OutcomeRejected Outcome = iota
	// OutcomeDeleted means the action succeeded and the view was refreshed.
	OutcomeDeleted
	// OutcomeNotDeleted means the action returned without success.
	OutcomeNotDeleted
	// OutcomeFailed means the action returned an error.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeNotDeleted:
		return "not_deleted"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Controller runs the delete interaction for one users view.
type Controller struct {
	action    DeleteAction
	refresher Refresher
	notifier  Notifier
	messages  Messages
	tracer    trace.Tracer
	inFlight  atomic.Int64
}

// NewController builds a controller. A nil refresher is allowed; a nil
// notifier drops notices.
func NewController(action DeleteAction, refresher Refresher, notifier Notifier, messages Messages) *Controller {
	return &Controller{
		action:    action,
		refresher: refresher,
		notifier:  notifier,
		messages:  messages.withDefaults(),
		tracer:    platformotel.Tracer("userboard/admin/userlist"),
	}
}

// Loading reports whether a deletion is pending.
func (c *Controller) Loading() bool {
	return c.inFlight.Load() > 0
}

// Delete removes the user with id and reports how it went.
func (c *Controller) Delete(ctx context.Context, id string) Outcome {
	id = strings.TrimSpace(id)
	if id == "" {
		c.notifyError(c.messages.IDRequired)
		return OutcomeRejected
	}

	c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	ctx, span := c.tracer.Start(ctx, "userlist.delete", trace.WithAttributes(attribute.String("user.id", id)))
	defer span.End()

	if c.action == nil {
		log.Printf("delete user %s: delete action is not configured", id)
		span.SetStatus(codes.Error, "delete action is not configured")
		c.notifyError(c.messages.DeleteFailed)
		return OutcomeFailed
	}

	result, err := c.action.DeleteUser(ctx, id)
	if err != nil {
		log.Printf("delete user %s: %v", id, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		c.notifyError(ErrorMessage(err, c.messages.DeleteFailed))
		return OutcomeFailed
	}
	if !result.Succeeded() {
		// Product has not decided what an unsuccessful result should show.
		if result.Success == nil {
			log.Printf("delete user %s: result carried no success flag", id)
		} else {
			log.Printf("delete user %s: result reported success=false", id)
		}
		span.SetAttributes(attribute.String("userlist.outcome", OutcomeNotDeleted.String()))
		return OutcomeNotDeleted
	}

	if c.refresher != nil {
		c.refresher.Refresh(ctx)
	}
	if c.notifier != nil {
		c.notifier.Success(c.messages.Deleted)
	}
	span.SetAttributes(attribute.String("userlist.outcome", OutcomeDeleted.String()))
	return OutcomeDeleted
}

func (c *Controller) notifyError(message string) {
	if c.notifier != nil {
		c.notifier.Error(message)
	}
}

// ErrorMessage returns the best message carried by err, or fallback when
// it carries none.
func ErrorMessage(err error, fallback string) string {
	if message := apperrors.UserMessage(err); message != "" {
		return message
	}
	return fallback
}
