package handlers

import (
	"net/http"

	"github.com/evermorehealth/portal/internal/content"
	"github.com/evermorehealth/portal/internal/session"
	"github.com/evermorehealth/portal/web/src/templates/components"
	"github.com/evermorehealth/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// PagesHandler serves the public informational pages from the content catalog.
type PagesHandler struct {
	store *content.Store
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(store *content.Store) *PagesHandler {
	return &PagesHandler{store: store}
}

// HomeGet renders the landing page (GET /).
func (h *PagesHandler) HomeGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "", pages.Home(session.Token(c) != "", h.store.Catalog()))
}

// AboutGet renders the about page.
func (h *PagesHandler) AboutGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "About", pages.AboutContent())
}

// EmergencyGet renders emergency information.
func (h *PagesHandler) EmergencyGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Emergency information", pages.Emergency(h.store.Catalog().Locations))
}

// PrivacyGet renders the privacy notice.
func (h *PagesHandler) PrivacyGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Privacy", pages.Privacy())
}

// TermsGet renders the terms of use.
func (h *PagesHandler) TermsGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Terms", pages.Terms())
}

// CareersGet renders the job listing.
func (h *PagesHandler) CareersGet(c echo.Context) error {
	l := pages.NewListing(h.store.Catalog().Jobs, c.QueryParam("q"), c.QueryParam("category"))
	return renderPage(c, http.StatusOK, "Careers", pages.Careers(l))
}

// CareerDetail renders one job.
func (h *PagesHandler) CareerDetail(c echo.Context) error {
	return detail(c, h.store.Catalog().Jobs, pages.JobDetail, "/careers", "All careers")
}

// LocationsGet renders the location finder.
func (h *PagesHandler) LocationsGet(c echo.Context) error {
	l := pages.NewListing(h.store.Catalog().Locations, c.QueryParam("q"), c.QueryParam("category"))
	return renderPage(c, http.StatusOK, "Locations", pages.Locations(l))
}

// LocationDetail renders one location.
func (h *PagesHandler) LocationDetail(c echo.Context) error {
	return detail(c, h.store.Catalog().Locations, pages.LocationDetail, "/locations", "All locations")
}

// HelpGet renders the help center.
func (h *PagesHandler) HelpGet(c echo.Context) error {
	l := pages.NewListing(h.store.Catalog().FAQs, c.QueryParam("q"), c.QueryParam("category"))
	return renderPage(c, http.StatusOK, "Help center", pages.Help(l))
}

// HelpDetail renders one answer.
func (h *PagesHandler) HelpDetail(c echo.Context) error {
	return detail(c, h.store.Catalog().FAQs, pages.FAQDetail, "/help", "Help center")
}

// QualityGet renders the quality and safety audits.
func (h *PagesHandler) QualityGet(c echo.Context) error {
	l := pages.NewListing(h.store.Catalog().Audits, c.QueryParam("q"), c.QueryParam("category"))
	return renderPage(c, http.StatusOK, "Quality and safety", pages.Quality(l))
}

// QualityDetail renders one audit.
func (h *PagesHandler) QualityDetail(c echo.Context) error {
	return detail(c, h.store.Catalog().Audits, pages.AuditDetail, "/quality", "All audits")
}

// ResearchGet renders the research listing.
func (h *PagesHandler) ResearchGet(c echo.Context) error {
	l := pages.NewListing(h.store.Catalog().Research, c.QueryParam("q"), c.QueryParam("category"))
	return renderPage(c, http.StatusOK, "Research", pages.Research(l))
}

// ResearchDetail renders one study.
func (h *PagesHandler) ResearchDetail(c echo.Context) error {
	return detail(c, h.store.Catalog().Research, pages.PostDetail, "/research", "All research")
}

// NewsGet renders the Evermore Now feed.
func (h *PagesHandler) NewsGet(c echo.Context) error {
	l := pages.NewListing(h.store.Catalog().News, c.QueryParam("q"), c.QueryParam("category"))
	return renderPage(c, http.StatusOK, "Evermore Now", pages.EvermoreNow(l))
}

// NewsDetail renders one story.
func (h *PagesHandler) NewsDetail(c echo.Context) error {
	return detail(c, h.store.Catalog().News, pages.PostDetail, "/evermore-now", "All stories")
}

// detail looks up the :id record and renders it as an htmx modal fragment or,
// for a direct visit, as a full page.
func detail[T content.Searchable](c echo.Context, items []T, view func(T) components.Detail, back, backLabel string) error {
	item, ok := content.Find(items, c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Page not found")
	}
	d := view(item)
	if isHTMX(c) {
		return renderFragment(c, http.StatusOK, d.Modal())
	}
	return renderPage(c, http.StatusOK, d.Title, d.Page(back, backLabel))
}

// HealthGet is the liveness probe (GET /health).
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
