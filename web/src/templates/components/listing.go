package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ResultsID is the element id of a listing's result set.
const ResultsID = "results"

// SearchProps describes a listing's filter bar.
type SearchProps struct {
	Action      string
	Query       string
	Category    string
	Categories  []string
	Placeholder string
	// CategoryLabel names the select, e.g. "Department".
	CategoryLabel string
}

// SearchBar renders the query and category filters. It works as a plain GET
// form; with htmx it refreshes only the result set as the user types.
func SearchBar(p SearchProps) g.Node {
	return Form(
		Method("get"),
		Action(p.Action),
		Role("search"),
		Class("flex flex-wrap gap-3 mb-6"),
		hx.Get(p.Action),
		hx.Trigger("input changed delay:300ms from:find input, change from:find select"),
		hx.Target("#"+ResultsID),
		hx.Select("#"+ResultsID),
		hx.Swap("outerHTML"),
		hx.PushURL("true"),
		Input(
			Type("search"), Name("q"), Value(p.Query),
			Placeholder(p.Placeholder),
			Aria("label", "Search"),
			Class("flex-1 border rounded px-3 py-2"),
		),
		Select(
			Name("category"),
			Aria("label", p.CategoryLabel),
			Class("border rounded px-3 py-2"),
			Option(Value(""), g.Textf("All %s", p.CategoryLabel)),
			g.Map(p.Categories, func(c string) g.Node {
				return Option(Value(c), g.If(c == p.Category, Selected()), g.Text(c))
			}),
		),
		Button(Type("submit"), Class("btn-secondary"), g.Text("Search")),
	)
}

// Results wraps a result set. count is the number of matches shown.
func Results(count int, noun string, items g.Node) g.Node {
	return Section(
		ID(ResultsID),
		Aria("live", "polite"),
		P(Class("text-sm text-slate-500 mb-3"), g.Textf("%d %s", count, pluralize(count, noun))),
		g.If(count == 0, P(Class("empty text-slate-600"), g.Text("No results match your search. Try different words or clear the filters."))),
		Ul(Class("grid gap-4 md:grid-cols-2"), items),
	)
}

// CardProps describes one result card linking to a detail view.
type CardProps struct {
	Href     string
	Title    string
	Subtitle string
	Summary  string
	Tags     []string
}

// Card renders a result card. The link opens the detail as a modal with
// htmx and as a page without it.
func Card(p CardProps) g.Node {
	return Li(
		Class("card bg-white rounded-lg shadow p-5"),
		H3(
			Class("font-bold text-lg"),
			A(
				Href(p.Href),
				hx.Get(p.Href),
				hx.Target("#modal"),
				hx.Swap("innerHTML"),
				Class("hover:text-teal-700"),
				g.Text(p.Title),
			),
		),
		g.If(p.Subtitle != "", P(Class("text-sm text-slate-500"), g.Text(p.Subtitle))),
		g.If(p.Summary != "", P(Class("mt-2 text-slate-700"), g.Text(p.Summary))),
		Tags(p.Tags),
	)
}

// Tags renders a row of tag chips.
func Tags(tags []string) g.Node {
	if len(tags) == 0 {
		return nil
	}
	return Ul(
		Class("flex flex-wrap gap-2 mt-3"),
		g.Map(tags, func(t string) g.Node {
			return Li(Class("text-xs bg-slate-100 rounded px-2 py-1"), g.Text(t))
		}),
	)
}

// Detail is a record's detail view. It renders as a modal for htmx requests
// and as a standalone panel otherwise.
type Detail struct {
	Title string
	Body  []g.Node
}

// NewDetail creates a Detail.
func NewDetail(title string, body ...g.Node) Detail {
	return Detail{Title: title, Body: body}
}

// Modal renders the detail as a dialog fragment for the #modal slot.
func (d Detail) Modal() g.Node {
	return Div(
		Class("modal fixed inset-0 bg-black/40 flex items-center justify-center p-4"),
		Role("dialog"),
		Aria("modal", "true"),
		Aria("label", d.Title),
		Div(
			Class("bg-white rounded-lg shadow-xl max-w-2xl w-full p-6 max-h-full overflow-y-auto"),
			Div(
				Class("flex justify-between items-start mb-4"),
				H2(Class("text-2xl font-bold"), g.Text(d.Title)),
				Button(
					Type("button"),
					Aria("label", "Close"),
					Class("text-2xl leading-none"),
					g.Attr("onclick", "document.getElementById('modal').innerHTML=''"),
					g.Text("×"),
				),
			),
			g.Group(d.Body),
		),
	)
}

// Page renders the detail as a standalone article with a link back to its list.
func (d Detail) Page(backHref, backLabel string) g.Node {
	return Article(
		Class("bg-white rounded-lg shadow p-8 max-w-3xl"),
		A(Href(backHref), Class("text-sm underline"), g.Text("← "+backLabel)),
		H1(Class("text-3xl font-extrabold my-4"), g.Text(d.Title)),
		g.Group(d.Body),
	)
}

// DefinitionList renders label/value pairs, skipping empty values.
func DefinitionList(pairs ...[2]string) g.Node {
	return Dl(
		Class("grid grid-cols-3 gap-2 text-sm mb-4"),
		g.Map(pairs, func(p [2]string) g.Node {
			if p[1] == "" {
				return nil
			}
			return g.Group([]g.Node{
				Dt(Class("font-semibold"), g.Text(p[0])),
				Dd(Class("col-span-2"), g.Text(p[1])),
			})
		}),
	)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
