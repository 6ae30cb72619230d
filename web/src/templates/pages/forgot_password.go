package pages

import (
	"fmt"
	"strconv"

	"github.com/evermorehealth/portal/internal/view/dto/auth"
	"github.com/evermorehealth/portal/internal/workflow"
	"github.com/evermorehealth/portal/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const (
	formReset = "reset"

	// ResendControlID is the element id of the resend button or countdown.
	ResendControlID = "resend-control"
)

var stepTitles = map[int]string{
	workflow.StepEmail:    "Find your account",
	workflow.StepCode:     "Enter your code",
	workflow.StepPassword: "Choose a new password",
}

// ForgotPassword renders the current step of password recovery.
func ForgotPassword(d auth.ForgotPasswordData) g.Node {
	step := d.Flow.Step
	return authCard("Reset your password", fmt.Sprintf("Step %d of 3", step),
		H2(Class("text-lg font-semibold mb-4"), g.Text(stepTitles[step])),
		components.Banner("reset-banner", d.Banner),
		components.Notice(d.Flow.Notice),
		Form(
			ID("reset-form"),
			Method("post"),
			Action("/forgot-password"),
			g.Attr("novalidate"),
			Input(Type("hidden"), Name("step"), Value(strconv.Itoa(step))),
			resetStep(d),
		),
		P(
			Class("text-sm mt-4"),
			A(Href("/login"), Class("underline"), g.Text("Back to sign in")),
		),
	)
}

func resetStep(d auth.ForgotPasswordData) g.Node {
	switch d.Flow.Step {
	case workflow.StepCode:
		return g.Group([]g.Node{
			P(Class("text-sm mb-4"), g.Text("We sent a code to "), Strong(g.Text(d.Flow.Email)), g.Text(".")),
			g.If(d.Flow.DebugOTP != "", P(
				Class("debug-otp text-xs bg-amber-50 border border-amber-300 rounded p-2 mb-4"),
				g.Text("Development code: "), Code(g.Text(d.Flow.DebugOTP)),
			)),
			components.Field(components.FieldProps{
				Form: formReset, Name: "code", Label: "Verification code",
				Value: d.Form.Code, Error: d.Errors.Get("code"), AutoComplete: "one-time-code",
			}),
			actionButton("code", "Continue", true),
			Div(
				Class("flex justify-between items-center mt-3 text-sm"),
				actionButton("back", "Use a different email", false),
				ResendControl(d.Remaining),
			),
		})
	case workflow.StepPassword:
		return g.Group([]g.Node{
			components.Field(components.FieldProps{
				Form: formReset, Name: "password", Label: "New password", Type: "password",
				Error: d.Errors.Get("password"), AutoComplete: "new-password",
			}),
			components.Field(components.FieldProps{
				Form: formReset, Name: "password2", Label: "Confirm new password", Type: "password",
				Error: d.Errors.Get("password2"), AutoComplete: "new-password",
			}),
			actionButton("reset", "Update password", true),
			Div(
				Class("flex justify-between mt-3 text-sm"),
				actionButton("back", "Back", false),
				actionButton("restart", "Start over", false),
			),
		})
	default:
		return g.Group([]g.Node{
			components.Field(components.FieldProps{
				Form: formReset, Name: "email", Label: "Email", Type: "email",
				Value: d.Form.Email, Error: d.Errors.Get("email"), AutoComplete: "email",
			}),
			actionButton("request", "Send code", true),
		})
	}
}

func actionButton(action, label string, primary bool) g.Node {
	class := "btn-link underline"
	if primary {
		class = "btn-primary w-full"
	}
	return Button(Type("submit"), Name("action"), Value(action), Class(class), g.Text(label))
}

// ResendControl renders the resend button, or a countdown that refreshes
// itself every second until the cooldown is over.
func ResendControl(remaining int) g.Node {
	if remaining > 0 {
		return Span(
			ID(ResendControlID),
			Class("text-slate-500"),
			Aria("live", "polite"),
			hx.Get("/forgot-password/cooldown"),
			hx.Trigger("every 1s"),
			hx.Swap("outerHTML"),
			g.Textf("Resend code in %ds", remaining),
		)
	}
	return Span(ID(ResendControlID), actionButton("resend", "Resend code", false))
}
