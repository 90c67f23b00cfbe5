// Package components renders the landing page. Every component reads the
// shared Props; none of them holds state of its own.
package components

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"FrontendMastery/internal/content"
	"FrontendMastery/internal/landing"
	"FrontendMastery/internal/notify"
	"FrontendMastery/internal/viewstate"
)

// Props is the state container handed to every component.
type Props struct {
	State         landing.State
	Token         string
	Notifications []notify.Event
	Now           time.Time
}

const pageFormID = "page"

func Page(p Props) g.Node {
	htmlClass := "scroll-smooth"
	if p.State.Theme() == landing.ThemeDark {
		htmlClass += " dark"
	}
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Class(htmlClass),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(content.ProductName)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
				h.Script(g.Raw(`tailwind.config = { darkMode: "class" }`)),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("https://code.iconify.design/3/3.1.1/iconify.min.js")),
			),
			h.Body(
				h.Class("min-h-screen"),
				pageForm(p),
				h.Div(
					h.Class("bg-gradient-to-br from-slate-50 via-blue-50 to-indigo-50 dark:from-slate-900 dark:via-slate-800 dark:to-slate-900 transition-colors duration-500"),
					Header(p),
					h.Main(
						Hero(),
						Features(),
						Contents(),
						Testimonials(),
						CallToAction(),
						Signup(p),
					),
					Footer(),
				),
				Toasts(p),
			),
		),
	)
}

// pageForm is the single form every action button submits. The hidden
// button comes first so that pressing Enter in the email field subscribes.
func pageForm(p Props) g.Node {
	return g.El("form",
		h.ID(pageFormID),
		h.Method("post"),
		h.Action(at(ActionSubscribe, sectionSignup)),
		h.Input(h.Type("hidden"), h.Name(viewstate.FieldName), h.Value(p.Token)),
		h.Button(
			h.Type("submit"),
			g.Attr("formaction", at(ActionSubscribe, sectionSignup)),
			g.Attr("hidden"),
			g.Attr("tabindex", "-1"),
			g.Attr("aria-hidden", "true"),
		),
	)
}

func icon(name, class string) g.Node {
	return h.Span(h.Class("iconify "+class), g.Attr("data-icon", name), g.Attr("aria-hidden", "true"))
}
