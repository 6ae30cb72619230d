package pages

import (
	"bytes"
	"testing"
	"time"

	"github.com/evermorehealth/portal/internal/content"
	"github.com/evermorehealth/portal/internal/forms"
	"github.com/evermorehealth/portal/internal/view/dto/auth"
	"github.com/evermorehealth/portal/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestLogin(t *testing.T) {
	out := render(t, Login(auth.LoginData{
		Form:   forms.LoginForm{Email: "jane@evermore.test", Password: "hunter22"},
		Errors: forms.Errors{"password": forms.MsgRequired},
		Banner: "Invalid credentials",
		Next:   "/portal",
	}))
	assert.Contains(t, out, `action="/login"`)
	assert.Contains(t, out, `hx-post="/login/validate"`)
	assert.Contains(t, out, `value="jane@evermore.test"`)
	assert.NotContains(t, out, "hunter22")
	assert.Contains(t, out, "Invalid credentials")
	assert.Contains(t, out, `name="next" value="/portal"`)
	assert.NotContains(t, out, `name="attempted"`)
}

func TestSignup(t *testing.T) {
	out := render(t, Signup(auth.SignupData{
		Form:      forms.SignupForm{FirstName: "Jane"},
		Errors:    forms.Errors{"agree": forms.MsgAgree},
		Attempted: true,
		Strength:  forms.PasswordStrength("abc"),
	}))
	assert.Contains(t, out, `value="Jane"`)
	assert.Contains(t, out, forms.MsgAgree)
	assert.Contains(t, out, `name="attempted" value="true"`)
	assert.Contains(t, out, "Password strength: Too weak")
}

func TestForgotPassword_Steps(t *testing.T) {
	out := render(t, ForgotPassword(auth.ForgotPasswordData{Flow: workflow.NewResetFlow()}))
	assert.Contains(t, out, "Step 1 of 3")
	assert.Contains(t, out, `value="request"`)

	flow := workflow.ResetFlow{Step: workflow.StepCode, Email: "jane@evermore.test", ResendAt: time.Now(), DebugOTP: "123456"}
	out = render(t, ForgotPassword(auth.ForgotPasswordData{Flow: flow, Remaining: 12}))
	assert.Contains(t, out, "Step 2 of 3")
	assert.Contains(t, out, "Development code")
	assert.Contains(t, out, "Resend code in 12s")
	assert.Contains(t, out, `hx-trigger="every 1s"`)
	assert.NotContains(t, out, `value="resend"`)

	flow.DebugOTP = ""
	out = render(t, ForgotPassword(auth.ForgotPasswordData{Flow: flow}))
	assert.NotContains(t, out, "Development code")
	assert.Contains(t, out, `value="resend"`)

	flow.Step = workflow.StepPassword
	out = render(t, ForgotPassword(auth.ForgotPasswordData{Flow: flow}))
	assert.Contains(t, out, "Step 3 of 3")
	assert.Contains(t, out, `value="reset"`)
	assert.Contains(t, out, `value="restart"`)
}

func TestListings(t *testing.T) {
	jobs := []content.Job{
		{ID: "rn", Title: "Registered Nurse", Department: "Nursing"},
		{ID: "pharm", Title: "Pharmacist", Department: "Pharmacy"},
	}
	out := render(t, Careers(NewListing(jobs, "nurse", "")))
	assert.Contains(t, out, "1 open position<")
	assert.Contains(t, out, `href="/careers/rn"`)
	assert.NotContains(t, out, "/careers/pharm")
	assert.Contains(t, out, `<option value="Pharmacy">`)

	out = render(t, Careers(NewListing(jobs, "", "Pharmacy")))
	assert.Contains(t, out, `<option value="Pharmacy" selected>`)
}

func TestEmergencyListsOnlyEmergencyDepartments(t *testing.T) {
	out := render(t, Emergency([]content.Location{
		{ID: "a", Name: "Downtown", Emergency: true, Phone: "(555) 010-1000"},
		{ID: "b", Name: "East Clinic"},
	}))
	assert.Contains(t, out, "Downtown")
	assert.NotContains(t, out, "East Clinic")
	assert.Contains(t, out, `href="tel:(555) 010-1000"`)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a · c", join(" · ", "a", "", "c"))
	assert.Equal(t, "", join(" · "))
}
