package workflow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/evermorehealth/portal/internal/domain"
	"github.com/evermorehealth/portal/internal/forms"
)

// Outcome is the result of one submission attempt.
type Outcome struct {
	// Errors holds field errors; when non-empty no backend call was made.
	Errors forms.Errors
	// Banner is the message for the dismissible error banner.
	Banner string
	// Err is the underlying failure, nil on success.
	Err error
}

// OK reports whether the submission succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Submit runs the shared submit contract:
//  1. validate again, never trusting errors computed earlier,
//  2. stop without calling the backend when there is any field error,
//  3. claim the busy guard for key, rejecting a concurrent submit,
//  4. run call and translate its failure into a banner message.
func Submit(ctx context.Context, guard *Guard, key string, validate func() forms.Errors, call func(ctx context.Context) error) Outcome {
	if errs := validate(); errs.Any() {
		return Outcome{Errors: errs, Err: domain.ErrValidation}
	}

	release, ok := guard.TryAcquire(key)
	if !ok {
		return Outcome{
			Errors: forms.Errors{},
			Banner: domain.UserMessage(domain.ErrRequestInFlight, domain.GenericFailureMessage),
			Err:    domain.ErrRequestInFlight,
		}
	}
	defer release()

	if err := call(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Debug("Submission abandoned by client", "key", key)
		}
		return Outcome{
			Errors: forms.Errors{},
			Banner: domain.UserMessage(err, domain.GenericFailureMessage),
			Err:    err,
		}
	}
	return Outcome{Errors: forms.Errors{}}
}
