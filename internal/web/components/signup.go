package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	// EmailFieldName is the form field carrying the email input value.
	EmailFieldName = "email"
	// EmailMaxLength bounds the email input, in characters.
	EmailMaxLength = 4096
)

// Signup is the email capture form. The input is controlled: its value is
// always the one held in Props.State.
func Signup(p Props) g.Node {
	return h.Section(
		h.ID(sectionSignup),
		h.Class("container mx-auto px-8 py-20"),
		h.Div(
			h.Class("bg-white dark:bg-slate-800 rounded-3xl p-12 text-center shadow-xl fade-in-up"),
			icon("lucide:mail", "h-12 w-12 text-blue-600 dark:text-blue-400 mx-auto mb-6"),
			h.H2(h.Class("text-3xl font-semibold text-slate-900 dark:text-white mb-4"), g.Text("Stay Updated")),
			h.P(
				h.Class("text-xl text-slate-600 dark:text-slate-300 mb-8 max-w-2xl mx-auto"),
				g.Text("Get notified about new cheatsheets, updates, and exclusive developer resources."),
			),
			h.Div(
				h.Class("max-w-md mx-auto flex gap-4"),
				h.Input(
					h.Type("email"),
					h.Name(EmailFieldName),
					h.Value(p.State.Email),
					h.Placeholder("Enter your email"),
					g.Attr("maxlength", strconv.Itoa(EmailMaxLength)),
					g.Attr("form", pageFormID),
					g.Attr("aria-label", "Email address"),
					g.Attr("required"),
					h.Class("flex-1 rounded-md border border-slate-300 dark:border-slate-600 bg-white dark:bg-slate-900 px-3 py-2"),
				),
				actionButton(at(ActionSubscribe, sectionSignup),
					"rounded-md bg-blue-600 hover:bg-blue-700 px-4 py-2 text-white",
					"Subscribe",
					g.Text("Subscribe"),
				),
			),
		),
	)
}
