package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Paths the page form posts to.
const (
	ActionTheme     = "/actions/theme"
	ActionMenu      = "/actions/menu"
	ActionSubscribe = "/actions/subscribe"
	ActionPurchase  = "/actions/purchase"
)

// Section ids the browser scrolls back to after an action re-renders the page.
const (
	sectionHero      = "hero"
	sectionGetAccess = "get-access"
	sectionSignup    = "signup"
)

// at points action back at a section of the page. The fragment never reaches
// the server, so routing is unaffected.
func at(action, section string) string {
	return action + "#" + section
}

// actionButton submits the page form to action. Only the subscribe button
// runs the browser's required-field check.
func actionButton(action, class, label string, children ...g.Node) g.Node {
	path, _, _ := strings.Cut(action, "#")
	nodes := []g.Node{
		h.Type("submit"),
		g.Attr("form", pageFormID),
		g.Attr("formaction", action),
		h.Class(class),
		g.Attr("aria-label", label),
	}
	if path != ActionSubscribe {
		nodes = append(nodes, g.Attr("formnovalidate"))
	}
	return h.Button(append(nodes, children...)...)
}

// inertButton is a button with no behavior behind it.
func inertButton(class string, children ...g.Node) g.Node {
	return h.Button(append([]g.Node{h.Type("button"), h.Class(class)}, children...)...)
}
