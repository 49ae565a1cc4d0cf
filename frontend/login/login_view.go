package login

import (
	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
)

// GetLoginScreen renders the operator login form.
func GetLoginScreen(errorMessage string) templ.Component {
	body := html.StatusBanner("", errorMessage) + `
<section class="card narrow">
  <h1>Operator Login</h1>
  <form method="POST" action="/login">
    <label>Username
      <input type="text" name="username" autocomplete="username" required>
    </label>
    <label>Password
      <input type="password" name="password" autocomplete="current-password" required>
    </label>
    <button type="submit" class="btn-primary">Sign in</button>
  </form>
  <p class="hint">New agency? <a href="/register">Register here</a>.</p>
</section>`
	return html.Bare("Login", body)
}
