// Package landing holds the interaction state of the landing page and the
// actions that change it. It knows nothing about HTTP or HTML.
package landing

import "FrontendMastery/internal/notify"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	SubscribedTitle       = "Success!"
	SubscribedDescription = "You'll be notified about future launches and updates."
	CheckoutTitle         = "Redirecting to checkout..."
	CheckoutDescription   = "You'll be redirected to complete your purchase."
)

// State is everything the page components read. The zero value is the
// state of a freshly loaded page.
type State struct {
	Dark     bool   `json:"dark,omitempty"`
	MenuOpen bool   `json:"menu_open,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (s State) Theme() Theme {
	if s.Dark {
		return ThemeDark
	}
	return ThemeLight
}

// Page applies user actions to a State and reports notifications through
// the injected Notifier.
type Page struct {
	state  State
	notify notify.Notifier
}

func New(state State, n notify.Notifier) *Page {
	return &Page{state: state, notify: n}
}

func (p *Page) State() State { return p.state }

func (p *Page) ToggleTheme() {
	p.state.Dark = !p.state.Dark
}

func (p *Page) ToggleMobileMenu() {
	p.state.MenuOpen = !p.state.MenuOpen
}

// SetEmail replaces the email input value. No format validation is done.
func (p *Page) SetEmail(value string) {
	p.state.Email = value
}

// SubmitEmail confirms the signup and clears the input. With an empty input
// it does nothing and returns false.
func (p *Page) SubmitEmail() bool {
	if p.state.Email == "" {
		return false
	}
	p.notify.Notify(SubscribedTitle, SubscribedDescription)
	p.state.Email = ""
	return true
}

// Purchase announces the checkout. There is no real checkout behind it.
func (p *Page) Purchase() {
	p.notify.Notify(CheckoutTitle, CheckoutDescription)
}
