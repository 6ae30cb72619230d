// Package components holds the small gomponents building blocks shared by pages.
package components

import (
	"github.com/evermorehealth/portal/internal/forms"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// FieldProps describes one labelled input.
type FieldProps struct {
	Form         string
	Name         string
	Label        string
	Type         string
	Value        string
	Error        string
	AutoComplete string
	Placeholder  string
	Hint         string
}

// ErrorID is the element id of a field's error slot. Live validation swaps
// these by id.
func ErrorID(form, field string) string {
	return form + "-" + field + "-error"
}

// Field renders a label, an input and its error slot. Password values are never echoed.
func Field(p FieldProps) g.Node {
	inputID := p.Form + "-" + p.Name
	if p.Type == "" {
		p.Type = "text"
	}
	value := p.Value
	if p.Type == "password" {
		value = ""
	}
	return Div(
		Class("field mb-4"),
		Label(For(inputID), Class("block text-sm font-medium mb-1"), g.Text(p.Label)),
		Input(
			ID(inputID),
			Name(p.Name),
			Type(p.Type),
			Class("w-full border rounded px-3 py-2"),
			g.If(value != "", Value(value)),
			g.If(p.AutoComplete != "", AutoComplete(p.AutoComplete)),
			g.If(p.Placeholder != "", Placeholder(p.Placeholder)),
			g.If(p.Error != "", Aria("invalid", "true")),
			Aria("describedby", ErrorID(p.Form, p.Name)),
		),
		g.If(p.Hint != "", P(Class("text-xs text-slate-500 mt-1"), g.Text(p.Hint))),
		FieldError(p.Form, p.Name, p.Error, false),
	)
}

// CheckboxProps describes one labelled checkbox.
type CheckboxProps struct {
	Form    string
	Name    string
	Label   string
	Checked bool
	Error   string
}

// Checkbox renders a checkbox with its label and error slot.
func Checkbox(p CheckboxProps) g.Node {
	inputID := p.Form + "-" + p.Name
	return Div(
		Class("field mb-4"),
		Label(
			For(inputID), Class("inline-flex items-center gap-2 text-sm"),
			Input(
				ID(inputID), Name(p.Name), Type("checkbox"), Value("true"),
				g.If(p.Checked, Checked()),
				Aria("describedby", ErrorID(p.Form, p.Name)),
			),
			g.Text(p.Label),
		),
		FieldError(p.Form, p.Name, p.Error, false),
	)
}

// FieldError renders the error slot of a field. With oob set it is an
// out-of-band swap for the live validation response.
func FieldError(form, field, msg string, oob bool) g.Node {
	return P(
		ID(ErrorID(form, field)),
		Class("field-error text-sm text-red-700 mt-1"),
		g.If(msg != "", Role("alert")),
		g.If(oob, hx.SwapOOB("true")),
		g.Text(msg),
	)
}

// FieldErrorsOOB renders out-of-band error slots for every listed field, so
// fixed fields are cleared as well as new errors shown.
func FieldErrorsOOB(form string, fields []string, errs forms.Errors) g.Node {
	return g.Map(fields, func(field string) g.Node {
		return FieldError(form, field, errs.Get(field), true)
	})
}

// LiveValidation makes a form post its values to url while the user types.
// The response only carries out-of-band swaps.
func LiveValidation(url string) g.Node {
	return g.Group([]g.Node{
		hx.Post(url),
		hx.Trigger("input changed delay:300ms, change"),
		hx.Swap("none"),
	})
}

// Attempted marks a form as submitted at least once, which turns on error display.
func Attempted(attempted bool) g.Node {
	return g.If(attempted, Input(Type("hidden"), Name("attempted"), Value("true")))
}

// SubmitButton renders the primary submit button.
func SubmitButton(label string, extra ...g.Node) g.Node {
	return Button(
		Type("submit"),
		Class("btn-primary w-full"),
		g.Group(extra),
		g.Text(label),
	)
}
