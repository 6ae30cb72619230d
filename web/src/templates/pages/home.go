package pages

import (
	"github.com/evermorehealth/portal/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Home renders the landing page. It highlights the latest news and the
// emergency locations from the catalog.
func Home(signedIn bool, cat *content.Catalog) g.Node {
	return g.Group([]g.Node{
		Section(
			Class("hero bg-teal-700 text-white rounded-xl p-10 mb-10"),
			H1(Class("text-4xl font-extrabold mb-3"), g.Text("Care that stays with you")),
			P(Class("text-lg mb-6 max-w-2xl"), g.Text("Find a doctor, check in on your results, and manage appointments in the Evermore patient portal.")),
			Div(
				Class("flex flex-wrap gap-3"),
				g.If(signedIn, A(Href("/portal"), Class("btn-primary"), g.Text("Go to my portal"))),
				g.If(!signedIn, A(Href("/signup"), Class("btn-primary"), g.Text("Create your account"))),
				g.If(!signedIn, A(Href("/login"), Class("btn-secondary"), g.Text("Sign in"))),
				A(Href("/locations"), Class("btn-secondary"), g.Text("Find a location")),
			),
		),
		Section(
			Class("grid gap-6 md:grid-cols-3 mb-10"),
			quickLink("Emergency care", "Open 24 hours at our emergency departments.", "/emergency"),
			quickLink("Careers", "Nursing, physician and support roles across every campus.", "/careers"),
			quickLink("Help center", "Answers about billing, records and your account.", "/help"),
		),
		latestNews(cat),
	})
}

func quickLink(title, body, href string) g.Node {
	return A(
		Href(href),
		Class("block bg-white rounded-lg shadow p-6 hover:shadow-lg"),
		H2(Class("font-bold text-xl mb-2"), g.Text(title)),
		P(Class("text-slate-600"), g.Text(body)),
	)
}

func latestNews(cat *content.Catalog) g.Node {
	if cat == nil || len(cat.News) == 0 {
		return nil
	}
	news := cat.News
	if len(news) > 3 {
		news = news[:3]
	}
	return Section(
		H2(Class("text-2xl font-bold mb-4"), g.Text("Evermore Now")),
		Ul(
			Class("space-y-3"),
			g.Map(news, func(p content.Post) g.Node {
				return Li(
					A(Href("/evermore-now/"+p.ID), Class("font-semibold hover:text-teal-700"), g.Text(p.Title)),
					Span(Class("text-sm text-slate-500 ml-2"), g.Text(p.Date)),
				)
			}),
		),
	)
}
