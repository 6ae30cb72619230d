package pages

import (
	"github.com/evermorehealth/portal/internal/view/dto/auth"
	"github.com/evermorehealth/portal/web/src/templates/components"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	formLogin  = "login"
	formSignup = "signup"
)

// LoginFields lists the fields swapped by login live validation.
var LoginFields = []string{"email", "password"}

// SignupFields lists the fields swapped by signup live validation.
var SignupFields = []string{"firstName", "lastName", "email", "phone", "dob", "password", "password2", "agree"}

func authCard(title, subtitle string, children ...g.Node) g.Node {
	return Div(
		Class("max-w-md mx-auto bg-white rounded-xl shadow p-8"),
		H1(Class("text-2xl font-extrabold mb-1"), g.Text(title)),
		g.If(subtitle != "", P(Class("text-slate-600 mb-6"), g.Text(subtitle))),
		g.Group(children),
	)
}

// Login renders the sign-in form.
func Login(d auth.LoginData) g.Node {
	return authCard("Sign in", "Access your Evermore patient portal.",
		components.Banner("login-banner", d.Banner),
		Form(
			ID("login-form"),
			Method("post"),
			Action("/login"),
			g.Attr("novalidate"),
			components.LiveValidation("/login/validate"),
			components.Attempted(d.Attempted),
			g.If(d.Next != "", Input(Type("hidden"), Name("next"), Value(d.Next))),
			components.Field(components.FieldProps{
				Form: formLogin, Name: "email", Label: "Email", Type: "email",
				Value: d.Form.Email, Error: d.Errors.Get("email"), AutoComplete: "email",
			}),
			components.Field(components.FieldProps{
				Form: formLogin, Name: "password", Label: "Password", Type: "password",
				Error: d.Errors.Get("password"), AutoComplete: "current-password",
			}),
			components.Checkbox(components.CheckboxProps{
				Form: formLogin, Name: "remember", Label: "Keep me signed in on this device", Checked: d.Form.Remember,
			}),
			components.SubmitButton("Sign in"),
		),
		Div(
			Class("flex justify-between text-sm mt-4"),
			A(Href("/forgot-password"), Class("underline"), g.Text("Forgot password?")),
			A(Href("/signup"), Class("underline"), g.Text("Create an account")),
		),
	)
}

// Signup renders the account creation form.
func Signup(d auth.SignupData) g.Node {
	f := d.Form
	field := func(name, label, typ, value, autocomplete string) g.Node {
		return components.Field(components.FieldProps{
			Form: formSignup, Name: name, Label: label, Type: typ,
			Value: value, Error: d.Errors.Get(name), AutoComplete: autocomplete,
		})
	}
	return authCard("Create your account", "It takes about two minutes.",
		components.Banner("signup-banner", d.Banner),
		Form(
			ID("signup-form"),
			Method("post"),
			Action("/signup"),
			g.Attr("novalidate"),
			components.LiveValidation("/signup/validate"),
			components.Attempted(d.Attempted),
			Div(
				Class("grid grid-cols-2 gap-3"),
				field("firstName", "First name", "text", f.FirstName, "given-name"),
				field("lastName", "Last name", "text", f.LastName, "family-name"),
			),
			field("email", "Email", "email", f.Email, "email"),
			field("phone", "Phone", "tel", f.Phone, "tel"),
			field("dob", "Date of birth", "date", f.DOB, "bday"),
			field("password", "Password", "password", "", "new-password"),
			components.StrengthMeter(d.Strength, false),
			field("password2", "Confirm password", "password", "", "new-password"),
			components.Field(components.FieldProps{
				Form: formSignup, Name: "insurance", Label: "Insurance member ID (optional)",
				Value: f.Insurance, Hint: "You can add this later from your portal.",
			}),
			components.Checkbox(components.CheckboxProps{
				Form: formSignup, Name: "agree", Checked: f.Agree, Error: d.Errors.Get("agree"),
				Label: "I agree to the Terms of use and Privacy notice",
			}),
			components.Checkbox(components.CheckboxProps{
				Form: formSignup, Name: "marketing", Checked: f.Marketing,
				Label: "Send me health tips and Evermore news",
			}),
			components.SubmitButton("Create account"),
		),
		P(
			Class("text-sm mt-4"),
			g.Text("Already have an account? "),
			A(Href("/login"), Class("underline"), g.Text("Sign in")),
		),
	)
}

// VerifyEmail renders the result of an email verification link.
func VerifyEmail(d auth.VerifyEmailData) g.Node {
	if d.OK {
		return authCard("Email verified", d.Message,
			A(Href("/portal"), Class("btn-primary block text-center"), g.Text("Continue to your portal")),
		)
	}
	return authCard("We could not verify your email", "",
		components.Banner("verify-banner", d.Message),
		P(
			Class("text-sm"),
			g.Text("The link may have expired. "),
			A(Href("/login"), Class("underline"), g.Text("Sign in")),
			g.Text(" to request a new one."),
		),
	)
}

// Portal renders the signed-in landing page.
func Portal() g.Node {
	return g.Group([]g.Node{
		H1(Class("text-3xl font-extrabold mb-6"), g.Text("Your portal")),
		Div(
			Class("grid gap-6 md:grid-cols-3"),
			quickLink("Appointments", "Schedule, reschedule or check in for a visit.", "/locations"),
			quickLink("Help", "Questions about bills, records or your account.", "/help"),
			quickLink("Emergency", "If this is an emergency, call 911.", "/emergency"),
		),
	})
}

// ErrorPage renders a plain error page.
func ErrorPage(status int, message string) g.Node {
	return Div(
		Class("max-w-lg mx-auto text-center py-16"),
		P(Class("text-6xl font-extrabold text-teal-700"), g.Textf("%d", status)),
		P(Class("text-xl my-4"), g.Text(message)),
		A(Href("/"), Class("underline"), g.Text("Back to the home page")),
	)
}
