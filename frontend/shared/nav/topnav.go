package nav

import (
	stdhtml "html"
	"net/http"
	"strings"

	sessioncontext "gasdesk/frontend/shared/context"
	"gasdesk/infrastructure/rbac"
	"gasdesk/models"
)

// TopNavData is shared with page renderers.
type TopNavData struct {
	Username     string
	RoleLabel    string
	IsSuperAdmin bool
}

func BuildTopNavData(session models.Session) TopNavData {
	return TopNavData{
		Username:     session.Username,
		RoleLabel:    rbac.RoleLabel(session.Role),
		IsSuperAdmin: session.Role == rbac.RoleSuperAdmin,
	}
}

type navLink struct {
	href  string
	label string
}

var links = []navLink{
	{href: "/desk/agency", label: "Agency"},
	{href: "/desk/users", label: "Users"},
	{href: "/desk/categories", label: "Categories"},
	{href: "/desk/settings/godowns", label: "Godowns"},
	{href: "/desk/settings/general", label: "Settings"},
	{href: "/desk/stock/add", label: "Add Stock"},
	{href: "/desk/plant-receipt", label: "Plant Receipt"},
	{href: "/desk/ekyc", label: "eKYC"},
}

// FromRequest renders the navigation bar for the request session, or an
// empty string when no session is attached.
func FromRequest(r *http.Request) string {
	session, ok := sessioncontext.GetSessionFromContext(r.Context())
	if !ok {
		return ""
	}
	return RenderTopNav(BuildTopNavData(session))
}

// RenderTopNav renders the console navigation bar.
func RenderTopNav(data TopNavData) string {
	var b strings.Builder
	b.WriteString(`<nav class="topnav"><span class="brand">Gasdesk</span><ul>`)
	for _, l := range links {
		b.WriteString(`<li><a href="` + l.href + `">` + l.label + `</a></li>`)
	}
	if data.IsSuperAdmin {
		b.WriteString(`<li><a class="danger" href="/desk/agency-delete">Delete Agency</a></li>`)
	}
	b.WriteString(`</ul><span class="who">` + stdhtml.EscapeString(data.Username) + ` (` + stdhtml.EscapeString(data.RoleLabel) + `)</span>`)
	b.WriteString(`<form method="POST" action="/logout" class="inline"><button type="submit">Logout</button></form></nav>`)
	return b.String()
}
