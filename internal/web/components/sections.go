package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"FrontendMastery/internal/content"
)

func Features() g.Node {
	return h.Section(
		h.ID("features"),
		h.Class("container mx-auto px-8 py-20"),
		h.Div(
			h.Class("text-center mb-16 fade-in-up"),
			h.H2(h.Class("text-4xl font-semibold text-slate-900 dark:text-white mb-4"), g.Text("Everything You Need to Level Up")),
			h.P(h.Class("text-xl text-slate-600 dark:text-slate-300 max-w-2xl mx-auto"), g.Text("From beginner-friendly basics to advanced optimization techniques")),
		),
		h.Div(
			h.Class("grid md:grid-cols-3 gap-8"),
			g.Group(g.Map(content.Features, featureCard)),
		),
	)
}

func featureCard(f content.Feature) g.Node {
	return h.Div(
		h.Class("h-full rounded-xl bg-white dark:bg-slate-800 p-8 text-center hover:shadow-xl transition-all duration-300 fade-in-up"),
		h.Div(
			h.Class("inline-flex items-center justify-center w-16 h-16 bg-blue-100 dark:bg-blue-900 text-blue-600 dark:text-blue-400 rounded-2xl mb-6"),
			icon(f.Icon, "h-8 w-8"),
		),
		h.H3(h.Class("text-xl font-semibold text-slate-900 dark:text-white mb-4"), g.Text(f.Title)),
		h.P(h.Class("text-slate-600 dark:text-slate-300"), g.Text(f.Description)),
	)
}

func Contents() g.Node {
	return h.Section(
		h.ID("inside"),
		h.Class("container mx-auto px-8 py-20"),
		h.Div(
			h.Class("bg-white dark:bg-slate-800 rounded-3xl p-12 shadow-2xl fade-in-up"),
			h.Div(
				h.Class("grid lg:grid-cols-2 gap-12 items-center"),
				h.Div(
					h.H2(h.Class("text-4xl font-semibold text-slate-900 dark:text-white mb-6"), g.Text("What's Inside the Cheatsheet?")),
					h.Ul(
						h.Class("space-y-4"),
						g.Group(g.Map(content.Inside, func(item string) g.Node {
							return h.Li(
								h.Class("flex items-center space-x-3"),
								icon("lucide:check", "h-5 w-5 text-green-500 flex-shrink-0"),
								h.Span(h.Class("text-slate-700 dark:text-slate-300"), g.Text(item)),
							)
						})),
					),
				),
				h.Div(
					h.Class("relative bg-gradient-to-br from-slate-100 to-slate-200 dark:from-slate-700 dark:to-slate-800 rounded-2xl p-8 text-center"),
					icon("lucide:book-open", "h-16 w-16 text-blue-600 dark:text-blue-400 mx-auto mb-4"),
					h.H3(h.Class("text-2xl font-semibold text-slate-900 dark:text-white mb-2"), g.Text("20+ Pages")),
					h.P(h.Class("text-slate-600 dark:text-slate-300"), g.Text("of curated content")),
				),
			),
		),
	)
}

func Testimonials() g.Node {
	return h.Section(
		h.ID("testimonials"),
		h.Class("container mx-auto px-8 py-20"),
		h.Div(
			h.Class("text-center mb-16 fade-in-up"),
			h.H2(h.Class("text-4xl font-semibold text-slate-900 dark:text-white mb-4"), g.Text("Loved by Developers")),
		),
		h.Div(
			h.Class("grid md:grid-cols-3 gap-8"),
			g.Group(g.Map(content.Testimonials, testimonialCard)),
		),
	)
}

func testimonialCard(t content.Testimonial) g.Node {
	stars := make([]g.Node, t.Rating)
	for i := range stars {
		stars[i] = icon("lucide:star", "h-5 w-5 text-yellow-400")
	}
	return g.El("figure",
		h.Class("h-full rounded-xl bg-white dark:bg-slate-800 shadow-lg p-8 fade-in-up"),
		h.Div(h.Class("flex mb-4"), g.Attr("aria-label", fmt.Sprintf("%d out of 5 stars", t.Rating)), g.Group(stars)),
		g.El("blockquote", h.Class("text-slate-700 dark:text-slate-300 mb-6 italic"), g.Text("\""+t.Content+"\"")),
		g.El("figcaption",
			h.Div(h.Class("font-semibold text-slate-900 dark:text-white"), g.Text(t.Name)),
			h.Div(h.Class("text-sm text-slate-500 dark:text-slate-400"), g.Text(t.Role)),
		),
	)
}
