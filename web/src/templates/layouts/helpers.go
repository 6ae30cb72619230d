package layouts

// SiteName is appended to every page title.
const SiteName = "Evermore Hospitals"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + SiteName
	}
	return SiteName
}

// navLink is one entry in the primary navigation.
type navLink struct {
	Label string
	Href  string
}

var primaryNav = []navLink{
	{"About", "/about"},
	{"Locations", "/locations"},
	{"Careers", "/careers"},
	{"Quality & Safety", "/quality"},
	{"Research", "/research"},
	{"Evermore Now", "/evermore-now"},
	{"Help", "/help"},
}

var footerNav = []navLink{
	{"Privacy", "/privacy"},
	{"Terms", "/terms"},
	{"Emergency information", "/emergency"},
	{"Help center", "/help"},
}

// isActive reports whether href is the current section.
func isActive(current, href string) bool {
	if href == "/" {
		return current == "/"
	}
	return current == href || len(current) > len(href) && current[:len(href)+1] == href+"/"
}
