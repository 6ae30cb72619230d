package workflow

import (
	"context"
	"time"

	"github.com/evermorehealth/portal/internal/domain"
	"github.com/evermorehealth/portal/internal/forms"
)

// Forgot-password steps.
const (
	StepEmail    = 1
	StepCode     = 2
	StepPassword = 3
)

// ResetFlow is the persisted state of the forgot-password form between requests.
type ResetFlow struct {
	Step     int
	Email    string
	Code     string
	ResendAt time.Time
	DebugOTP string
	Notice   string
}

// NewResetFlow returns a flow at the first step.
func NewResetFlow() ResetFlow {
	return ResetFlow{Step: StepEmail}
}

// Normalize repairs a flow decoded from an old or tampered session.
func (f *ResetFlow) Normalize() {
	if f.Step < StepEmail || f.Step > StepPassword {
		*f = NewResetFlow()
	}
	if f.Step > StepEmail && f.Email == "" {
		*f = NewResetFlow()
	}
}

// Back moves to the previous step, keeping what was collected so far.
func (f *ResetFlow) Back() {
	switch f.Step {
	case StepPassword:
		f.Step = StepCode
	case StepCode:
		f.Step = StepEmail
	}
	f.Notice = ""
}

// Recovery drives ResetFlow transitions against the backend.
type Recovery struct {
	auth     domain.Authenticator
	guard    *Guard
	cooldown *Cooldown
}

// NewRecovery creates a Recovery.
func NewRecovery(auth domain.Authenticator, guard *Guard, cooldown *Cooldown) *Recovery {
	return &Recovery{auth: auth, guard: guard, cooldown: cooldown}
}

// Cooldown exposes the resend cooldown for rendering the countdown.
func (r *Recovery) Cooldown() *Cooldown {
	return r.cooldown
}

// RequestCode asks the backend for a code and moves 1→2, starting the resend cooldown.
func (r *Recovery) RequestCode(ctx context.Context, key string, flow *ResetFlow, form forms.ResetForm) Outcome {
	if flow.Step != StepEmail {
		return invalidStep()
	}
	var res *domain.ForgotPasswordResult
	out := Submit(ctx, r.guard, key,
		func() forms.Errors { return forms.ValidateResetStep(StepEmail, form) },
		func(ctx context.Context) (err error) {
			res, err = r.auth.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: form.Email})
			return err
		})
	if !out.OK() {
		return out
	}

	flow.Step = StepCode
	flow.Email = form.Email
	flow.Code = ""
	r.applyResult(flow, res)
	return out
}

// Resend asks for another code while at step 2, once the cooldown has elapsed.
func (r *Recovery) Resend(ctx context.Context, key string, flow *ResetFlow) Outcome {
	if flow.Step != StepCode {
		return invalidStep()
	}
	if !r.cooldown.Elapsed(flow.ResendAt) {
		return Outcome{
			Errors: forms.Errors{},
			Banner: domain.UserMessage(domain.ErrCooldownActive, domain.GenericFailureMessage),
			Err:    domain.ErrCooldownActive,
		}
	}
	var res *domain.ForgotPasswordResult
	out := Submit(ctx, r.guard, key,
		func() forms.Errors { return forms.Errors{} },
		func(ctx context.Context) (err error) {
			res, err = r.auth.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: flow.Email})
			return err
		})
	if out.OK() {
		r.applyResult(flow, res)
	}
	return out
}

// SubmitCode records the code and moves 2→3. There is no backend endpoint to
// check a code on its own, so any non-empty code advances; the backend judges
// it when the new password is submitted.
func (r *Recovery) SubmitCode(flow *ResetFlow, form forms.ResetForm) Outcome {
	if flow.Step != StepCode {
		return invalidStep()
	}
	if errs := forms.ValidateResetStep(StepCode, form); errs.Any() {
		return Outcome{Errors: errs, Err: domain.ErrValidation}
	}
	flow.Code = form.Code
	flow.Step = StepPassword
	flow.Notice = ""
	return Outcome{Errors: forms.Errors{}}
}

// Reset submits the code and new password and returns the flow to step 1 on success.
func (r *Recovery) Reset(ctx context.Context, key string, flow *ResetFlow, form forms.ResetForm) Outcome {
	if flow.Step != StepPassword {
		return invalidStep()
	}
	out := Submit(ctx, r.guard, key,
		func() forms.Errors { return forms.ValidateResetStep(StepPassword, form) },
		func(ctx context.Context) error {
			_, err := r.auth.ResetPassword(ctx, domain.ResetPasswordRequest{
				Email:       flow.Email,
				OTP:         flow.Code,
				NewPassword: form.Password,
			})
			return err
		})
	if out.OK() {
		*flow = NewResetFlow()
	}
	return out
}

func (r *Recovery) applyResult(flow *ResetFlow, res *domain.ForgotPasswordResult) {
	flow.ResendAt = r.cooldown.Start()
	flow.Notice = "If an account exists for that email, we sent a verification code."
	flow.DebugOTP = ""
	if res != nil {
		if res.Message != "" {
			flow.Notice = res.Message
		}
		flow.DebugOTP = res.DebugOTP
	}
}

func invalidStep() Outcome {
	return Outcome{
		Errors: forms.Errors{},
		Banner: "That step has expired. Please start again.",
		Err:    domain.ErrInvalidStep,
	}
}
