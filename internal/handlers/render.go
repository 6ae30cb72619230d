package handlers

import (
	"net/http"
	"strings"

	"github.com/evermorehealth/portal/internal/session"
	"github.com/evermorehealth/portal/internal/view"
	"github.com/evermorehealth/portal/web/src/templates/components"
	"github.com/evermorehealth/portal/web/src/templates/layouts"
	"github.com/evermorehealth/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	hxhttp "maragu.dev/gomponents-htmx/http"
)

// renderPage wraps content in the Base layout and renders it.
func renderPage(c echo.Context, status int, title string, content g.Node) error {
	// 1. Wrap the Gomponents content so it can travel as a templ component.
	pageContent := view.AdaptGomponentToTempl(content)

	// 2. Collect what the layout needs from the request, consuming flashes.
	props := layouts.Props{
		Title:    title,
		Path:     c.Request().URL.Path,
		Flash:    view.GetFlashData(c),
		SignedIn: session.Token(c) != "",
	}

	// 3. Render through the universal renderer via c.Render().
	return c.Render(status, "", layouts.Page(props, pageContent))
}

// renderFragment renders a bare node for htmx swaps.
func renderFragment(c echo.Context, status int, node g.Node) error {
	return c.Render(status, "", node)
}

// isHTMX reports whether the request came from htmx.
func isHTMX(c echo.Context) bool {
	return hxhttp.IsRequest(c.Request().Header)
}

// RenderError renders the error page, or a JSON body under /api.
func RenderError(c echo.Context, status int, message string) error {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return c.JSON(status, StatusResponse{OK: false, Message: message})
	}
	if isHTMX(c) {
		return renderFragment(c, status, components.Banner("error-banner", message))
	}
	return renderPage(c, status, http.StatusText(status), pages.ErrorPage(status, message))
}
