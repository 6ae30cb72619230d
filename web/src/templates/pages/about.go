package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type pillar struct {
	Title string
	Body  string
}

var aboutPillars = []pillar{
	{"Community owned", "Evermore is a not-for-profit system governed by a board of local residents, clinicians and patients."},
	{"Connected care", "Four campuses and a network of clinics share one record, so your care team always sees the full picture."},
	{"Open about results", "We publish our quality and safety audits every quarter, including the ones we are still working to improve."},
}

// AboutContent is the main content of the About page.
func AboutContent() g.Node {
	return Article(
		Class("bg-white shadow rounded-xl p-10"),
		H1(Class("text-4xl font-extrabold text-teal-700 mb-4 border-b pb-2"), g.Text("About Evermore Hospitals")),
		P(
			Class("text-slate-700 mb-6 leading-relaxed"),
			g.Text("Evermore has cared for this region since 1921. Today more than 9,000 nurses, physicians and staff serve patients across our hospitals, urgent care centers and primary care clinics."),
		),
		Div(
			Class("grid gap-4 md:grid-cols-3"),
			g.Map(aboutPillars, func(p pillar) g.Node {
				return Div(
					Class("p-6 bg-slate-50 rounded-lg shadow"),
					H2(Class("font-bold text-xl mb-2"), g.Text(p.Title)),
					P(Class("text-slate-700"), g.Text(p.Body)),
				)
			}),
		),
		P(
			Class("mt-8 pt-4 border-t text-sm text-slate-500"),
			g.Text("Looking to join us? "),
			A(Href("/careers"), Class("underline"), g.Text("See open positions")),
			g.Text("."),
		),
	)
}
