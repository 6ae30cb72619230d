package pages

import (
	"strings"

	"github.com/evermorehealth/portal/internal/content"
	"github.com/evermorehealth/portal/web/src/templates/components"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Listing is a filtered view over one catalog collection.
type Listing[T content.Searchable] struct {
	Items      []T
	Query      string
	Category   string
	Categories []string
}

// NewListing filters items by query and category and collects the categories
// for the filter bar.
func NewListing[T content.Searchable](items []T, query, category string) Listing[T] {
	return Listing[T]{
		Items:      content.Filter(items, query, category),
		Query:      query,
		Category:   category,
		Categories: content.Categories(items),
	}
}

func listingPage(title, intro string, search components.SearchProps, results g.Node) g.Node {
	return g.Group([]g.Node{
		H1(Class("text-3xl font-extrabold mb-2"), g.Text(title)),
		P(Class("text-slate-600 mb-6"), g.Text(intro)),
		components.SearchBar(search),
		results,
	})
}

// Careers renders the job listing.
func Careers(l Listing[content.Job]) g.Node {
	return listingPage(
		"Careers",
		"Join the people who make Evermore a place to heal.",
		components.SearchProps{Action: "/careers", Query: l.Query, Category: l.Category, Categories: l.Categories, Placeholder: "Search jobs", CategoryLabel: "departments"},
		components.Results(len(l.Items), "open position", g.Map(l.Items, func(j content.Job) g.Node {
			return components.Card(components.CardProps{
				Href:     "/careers/" + j.ID,
				Title:    j.Title,
				Subtitle: join(" · ", j.Department, j.Location, j.Schedule),
				Summary:  j.Summary,
				Tags:     j.Tags,
			})
		})),
	)
}

// JobDetail renders one job.
func JobDetail(j content.Job) components.Detail {
	return components.NewDetail(j.Title,
		components.DefinitionList(
			[2]string{"Department", j.Department},
			[2]string{"Location", j.Location},
			[2]string{"Schedule", j.Schedule},
		),
		P(Class("mb-4"), g.Text(j.Summary)),
		g.If(len(j.Duties) > 0, g.Group([]g.Node{
			H3(Class("font-bold mb-2"), g.Text("What you will do")),
			Ul(Class("list-disc pl-6"), g.Map(j.Duties, func(d string) g.Node { return Li(g.Text(d)) })),
		})),
		components.Tags(j.Tags),
	)
}

// Locations renders the location finder.
func Locations(l Listing[content.Location]) g.Node {
	return listingPage(
		"Locations",
		"Hospitals, urgent care and clinics near you.",
		components.SearchProps{Action: "/locations", Query: l.Query, Category: l.Category, Categories: l.Categories, Placeholder: "Search by name or service", CategoryLabel: "regions"},
		components.Results(len(l.Items), "location", g.Map(l.Items, func(loc content.Location) g.Node {
			subtitle := loc.Address
			if loc.Emergency {
				subtitle = join(" · ", loc.Address, "Emergency department")
			}
			return components.Card(components.CardProps{
				Href:     "/locations/" + loc.ID,
				Title:    loc.Name,
				Subtitle: subtitle,
				Summary:  loc.Hours,
				Tags:     loc.Services,
			})
		})),
	)
}

// LocationDetail renders one location.
func LocationDetail(l content.Location) components.Detail {
	emergency := "No"
	if l.Emergency {
		emergency = "Yes, open 24 hours"
	}
	return components.NewDetail(l.Name,
		components.DefinitionList(
			[2]string{"Region", l.Region},
			[2]string{"Address", l.Address},
			[2]string{"Phone", l.Phone},
			[2]string{"Hours", l.Hours},
			[2]string{"Emergency department", emergency},
		),
		components.Tags(l.Services),
	)
}

// Help renders the help center FAQ.
func Help(l Listing[content.FAQ]) g.Node {
	return listingPage(
		"Help center",
		"Answers to common questions about your account, bills and records.",
		components.SearchProps{Action: "/help", Query: l.Query, Category: l.Category, Categories: l.Categories, Placeholder: "Search questions", CategoryLabel: "topics"},
		components.Results(len(l.Items), "question", g.Map(l.Items, func(f content.FAQ) g.Node {
			return components.Card(components.CardProps{
				Href:     "/help/" + f.ID,
				Title:    f.Question,
				Subtitle: f.Category,
				Tags:     f.Tags,
			})
		})),
	)
}

// FAQDetail renders one answer.
func FAQDetail(f content.FAQ) components.Detail {
	return components.NewDetail(f.Question,
		P(Class("mb-4"), g.Text(f.Answer)),
		P(Class("text-sm text-slate-500"), g.Text("Topic: "+f.Category)),
	)
}

// Quality renders the published audit results.
func Quality(l Listing[content.Audit]) g.Node {
	return listingPage(
		"Quality and safety",
		"Every quarter we publish how we measure up, including where we fall short.",
		components.SearchProps{Action: "/quality", Query: l.Query, Category: l.Category, Categories: l.Categories, Placeholder: "Search audits", CategoryLabel: "categories"},
		components.Results(len(l.Items), "audit", g.Map(l.Items, func(a content.Audit) g.Node {
			return components.Card(components.CardProps{
				Href:     "/quality/" + a.ID,
				Title:    a.Title,
				Subtitle: join(" · ", a.Category, a.Period, a.Score),
				Summary:  a.Summary,
				Tags:     a.Tags,
			})
		})),
	)
}

// AuditDetail renders one audit.
func AuditDetail(a content.Audit) components.Detail {
	return components.NewDetail(a.Title,
		components.DefinitionList(
			[2]string{"Category", a.Category},
			[2]string{"Period", a.Period},
			[2]string{"Result", a.Score},
		),
		P(g.Text(a.Summary)),
	)
}

// Research renders published studies.
func Research(l Listing[content.Post]) g.Node {
	return postListing("Research", "Studies led by Evermore clinicians and scientists.", "/research", "study", "fields", l)
}

// EvermoreNow renders the news feed.
func EvermoreNow(l Listing[content.Post]) g.Node {
	return postListing("Evermore Now", "News from across our hospitals and community.", "/evermore-now", "story", "categories", l)
}

func postListing(title, intro, base, noun, categoryLabel string, l Listing[content.Post]) g.Node {
	return listingPage(
		title, intro,
		components.SearchProps{Action: base, Query: l.Query, Category: l.Category, Categories: l.Categories, Placeholder: "Search " + strings.ToLower(title), CategoryLabel: categoryLabel},
		components.Results(len(l.Items), noun, g.Map(l.Items, func(p content.Post) g.Node {
			return components.Card(components.CardProps{
				Href:     base + "/" + p.ID,
				Title:    p.Title,
				Subtitle: join(" · ", p.Category, p.Date),
				Summary:  p.Summary,
				Tags:     p.Tags,
			})
		})),
	)
}

// PostDetail renders one research or news post.
func PostDetail(p content.Post) components.Detail {
	return components.NewDetail(p.Title,
		components.DefinitionList(
			[2]string{"Published", p.Date},
			[2]string{"Category", p.Category},
			[2]string{"Authors", strings.Join(p.Authors, ", ")},
		),
		P(Class("mb-4 font-medium"), g.Text(p.Summary)),
		g.If(p.Body != "", P(g.Text(p.Body))),
		components.Tags(p.Tags),
	)
}

// join joins the non-empty parts with sep.
func join(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
