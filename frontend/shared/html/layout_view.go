package html

import (
	"fmt"
	stdhtml "html"

	"github.com/a-h/templ"
)

// Esc escapes user-controlled text for interpolation into view markup.
func Esc(s string) string {
	return stdhtml.EscapeString(s)
}

// Document wraps a rendered body in the console chrome and returns a
// component ready to render onto the response.
func Document(title, navHTML, body string) templ.Component {
	page := fmt.Sprintf(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | Gasdesk</title>
<link rel="stylesheet" href="/assets/app.css">
</head>
<body>
%s
<main class="content">
%s
</main>
%s
</body>
</html>`, Esc(title), navHTML, body, CSRFFormScript())
	return templ.Raw(page)
}

// Bare renders a body without the console chrome, for the login and
// registration screens.
func Bare(title, body string) templ.Component {
	page := fmt.Sprintf(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | Gasdesk</title>
<link rel="stylesheet" href="/assets/app.css">
</head>
<body class="bare">
%s
%s
</body>
</html>`, Esc(title), body, CSRFFormScript())
	return templ.Raw(page)
}

// StatusBanner renders the redirect-carried status or error message, or
// nothing when both are empty.
func StatusBanner(status, errorMessage string) string {
	if errorMessage != "" {
		return `<div class="banner banner-error">` + Esc(errorMessage) + `</div>`
	}
	if status != "" {
		return `<div class="banner banner-ok">` + Esc(status) + `</div>`
	}
	return ""
}
