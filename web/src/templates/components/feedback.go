package components

import (
	"github.com/evermorehealth/portal/internal/forms"
	"github.com/evermorehealth/portal/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Banner renders the dismissible error banner above a form.
func Banner(id, msg string) g.Node {
	if msg == "" {
		return Div(ID(id))
	}
	return Div(
		ID(id),
		Role("alert"),
		Class("banner bg-red-50 border border-red-300 text-red-800 rounded p-3 mb-4 flex justify-between"),
		Span(g.Text(msg)),
		Button(
			Type("button"),
			Class("ml-4 font-bold"),
			Aria("label", "Dismiss"),
			g.Attr("onclick", "this.parentElement.remove()"),
			g.Text("×"),
		),
	)
}

// Notice renders an informational message.
func Notice(msg string) g.Node {
	return g.If(msg != "", Div(
		Role("status"),
		Class("bg-teal-50 border border-teal-300 text-teal-900 rounded p-3 mb-4"),
		g.Text(msg),
	))
}

// Flashes renders one-shot flash messages.
func Flashes(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return Div(
		Class("mb-6 space-y-2"),
		g.Map(f.Success, func(m string) g.Node {
			return Div(Role("status"), Class("flash-success bg-green-50 border border-green-300 rounded p-3"), g.Text(m))
		}),
		g.Map(f.Error, func(m string) g.Node {
			return Div(Role("alert"), Class("flash-error bg-red-50 border border-red-300 rounded p-3"), g.Text(m))
		}),
	)
}

// StrengthMeterID is the element id of the signup password strength meter.
const StrengthMeterID = "password-strength"

// StrengthMeter renders the derived password strength.
func StrengthMeter(s forms.Strength, oob bool) g.Node {
	return Div(
		ID(StrengthMeterID),
		Class("strength text-xs mb-4"),
		Aria("live", "polite"),
		g.If(oob, hx.SwapOOB("true")),
		Div(
			Class("flex gap-1 mb-1"),
			g.Map([]int{1, 2, 3, 4}, func(i int) g.Node {
				if int(s) >= i {
					return Span(Class("h-1 flex-1 bg-teal-600 rounded"))
				}
				return Span(Class("h-1 flex-1 bg-slate-200 rounded"))
			}),
		),
		Span(g.Textf("Password strength: %s", s.Label())),
	)
}
