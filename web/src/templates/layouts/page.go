package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/evermorehealth/portal/internal/view"
	"github.com/evermorehealth/portal/web/src/templates/components"
	g "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Props carries the per-request data the layout needs.
type Props struct {
	Title string
	// Path is the request path, used to highlight the current section.
	Path     string
	Flash    view.FlashData
	SignedIn bool
}

// Page wraps page content in the site chrome. The content is a templ
// component so pages built either way can share the layout.
func Page(p Props, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Document(p, view.AdaptTemplToGomponentCtx(ctx, content)).Render(w)
	})
}

// Document is the full HTML page around body.
func Document(p Props, body g.Node) g.Node {
	return gc.HTML5(gc.HTML5Props{
		Title:       CalculateTitle(p.Title),
		Description: "Evermore Hospitals: care, locations, careers and the patient portal.",
		Language:    "en",
		Head: []g.Node{
			Link(Rel("stylesheet"), Href("/static/css/site.css")),
			Script(Src("https://cdn.tailwindcss.com")),
			Script(Src("https://unpkg.com/htmx.org@2.0.4"), Defer()),
		},
		Body: []g.Node{
			Class("min-h-screen flex flex-col bg-slate-50 text-slate-800"),
			EmergencyStrip(),
			header(p),
			Main(
				ID("main"),
				Class("flex-1 container mx-auto px-4 py-8"),
				components.Flashes(p.Flash),
				body,
			),
			// Detail views are swapped in here as modals.
			Div(ID("modal")),
			footer(),
		},
	})
}

// EmergencyStrip is the always-visible emergency notice.
func EmergencyStrip() g.Node {
	return Div(
		Class("bg-red-700 text-white text-sm text-center py-1"),
		g.Text("In a medical emergency call 911 or go to the nearest emergency department. "),
		A(Href("/emergency"), Class("underline font-semibold"), g.Text("Emergency information")),
	)
}

func header(p Props) g.Node {
	return Header(
		Class("bg-white shadow"),
		Nav(
			Class("container mx-auto px-4 py-3 flex flex-wrap items-center gap-4"),
			Aria("label", "Primary"),
			A(Href("/"), Class("text-xl font-extrabold text-teal-700 mr-4"), g.Text(SiteName)),
			Ul(
				Class("flex flex-wrap gap-3 text-sm"),
				g.Map(primaryNav, func(l navLink) g.Node {
					return Li(A(
						Href(l.Href),
						gc.Classes{
							"font-semibold text-teal-700": isActive(p.Path, l.Href),
							"hover:text-teal-700":         !isActive(p.Path, l.Href),
						},
						g.If(isActive(p.Path, l.Href), Aria("current", "page")),
						g.Text(l.Label),
					))
				}),
			),
			Div(Class("ml-auto flex gap-2 text-sm"), accountLinks(p.SignedIn)),
		),
	)
}

func accountLinks(signedIn bool) g.Node {
	if signedIn {
		return g.Group([]g.Node{
			A(Href("/portal"), Class("btn-secondary"), g.Text("My portal")),
			Form(
				Method("post"), Action("/logout"),
				Button(Type("submit"), Class("btn-link"), g.Text("Sign out")),
			),
		})
	}
	return g.Group([]g.Node{
		A(Href("/login"), Class("btn-secondary"), g.Text("Sign in")),
		A(Href("/signup"), Class("btn-primary"), g.Text("Create account")),
	})
}

func footer() g.Node {
	return Footer(
		Class("bg-slate-900 text-slate-300 text-sm"),
		Div(
			Class("container mx-auto px-4 py-6 flex flex-wrap gap-4 items-center"),
			Span(g.Text("© Evermore Hospitals")),
			Ul(
				Class("flex flex-wrap gap-4"),
				g.Map(footerNav, func(l navLink) g.Node {
					return Li(A(Href(l.Href), Class("hover:text-white"), g.Text(l.Label)))
				}),
			),
		),
	)
}
