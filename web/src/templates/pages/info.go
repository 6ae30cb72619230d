package pages

import (
	"github.com/evermorehealth/portal/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Emergency renders emergency guidance and the sites with an emergency department.
func Emergency(locations []content.Location) g.Node {
	var eds []content.Location
	for _, l := range locations {
		if l.Emergency {
			eds = append(eds, l)
		}
	}
	return Article(
		Class("bg-white shadow rounded-xl p-10"),
		H1(Class("text-4xl font-extrabold text-red-700 mb-4"), g.Text("Emergency information")),
		P(Class("text-xl font-semibold mb-4"), g.Text("If you think you are having a medical emergency, call 911 now.")),
		Ul(
			Class("list-disc pl-6 mb-6 space-y-1"),
			Li(g.Text("Chest pain, trouble breathing, or signs of stroke: call 911. Do not drive yourself.")),
			Li(g.Text("Poisoning: call Poison Control at 1-800-222-1222.")),
			Li(g.Text("Mental health crisis: call or text 988.")),
		),
		H2(Class("text-2xl font-bold mb-3"), g.Text("Emergency departments")),
		Ul(
			Class("space-y-3"),
			g.Map(eds, func(l content.Location) g.Node {
				return Li(
					Strong(g.Text(l.Name)),
					g.Text(" · "+l.Address+" · "),
					A(Href("tel:"+l.Phone), Class("underline"), g.Text(l.Phone)),
				)
			}),
		),
		P(
			Class("mt-6 text-sm text-slate-500"),
			g.Text("The patient portal is not monitored for emergencies. Do not use it to report urgent symptoms."),
		),
	)
}

type legalSection struct {
	Heading string
	Body    string
}

var privacySections = []legalSection{
	{"What we collect", "Account details you give us at signup: name, email, phone, date of birth and, if provided, insurance information."},
	{"How we use it", "To verify your identity, secure your account and connect you with your records. We never sell personal information."},
	{"Cookies", "We set one sign-in cookie that keeps you signed in and a session cookie for security. Neither is used for advertising."},
	{"Your choices", "You can ask us to correct or export your information through the help center."},
}

var termsSections = []legalSection{
	{"Using the portal", "The portal is for you or a person you are authorized to act for. Keep your password private."},
	{"Not for emergencies", "Messages are answered during business hours. Call 911 in an emergency."},
	{"Availability", "We may pause the portal for maintenance and will post notice in advance when we can."},
}

// Privacy renders the privacy notice.
func Privacy() g.Node {
	return legalPage("Privacy notice", privacySections)
}

// Terms renders the terms of use.
func Terms() g.Node {
	return legalPage("Terms of use", termsSections)
}

func legalPage(title string, sections []legalSection) g.Node {
	return Article(
		Class("bg-white shadow rounded-xl p-10 prose max-w-none"),
		H1(Class("text-3xl font-extrabold mb-6"), g.Text(title)),
		g.Map(sections, func(s legalSection) g.Node {
			return Section(
				Class("mb-6"),
				H2(Class("text-xl font-bold mb-2"), g.Text(s.Heading)),
				P(g.Text(s.Body)),
			)
		}),
	)
}
