package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"FrontendMastery/internal/content"
)

func Hero() g.Node {
	return h.Section(
		h.ID(sectionHero),
		h.Class("container mx-auto px-8 py-20"),
		h.Div(
			h.Class("grid lg:grid-cols-2 gap-12 items-center"),
			h.Div(
				h.Class("space-y-8"),
				h.Span(
					h.Class("inline-flex items-center rounded-full bg-blue-100 text-blue-700 dark:bg-blue-900 dark:text-blue-300 px-4 py-2 text-sm"),
					icon("lucide:zap", "h-4 w-4 mr-2"),
					g.Text("Digital Download • Instant Access"),
				),
				h.H1(
					h.Class("text-5xl lg:text-6xl font-semibold text-slate-900 dark:text-white leading-tight"),
					g.Text("Code Faster, "),
					h.Span(h.Class("text-transparent bg-clip-text bg-gradient-to-r from-blue-600 to-purple-600"), g.Text("Smarter")),
					g.Text(", Cleaner"),
				),
				h.P(
					h.Class("text-xl text-slate-600 dark:text-slate-300 leading-relaxed"),
					g.Text("Master frontend development with our comprehensive cheatsheet. "),
					h.Strong(h.Class("text-slate-800 dark:text-white"), g.Text("100+ essential tips")),
					g.Text(", code snippets, and shortcuts for HTML, CSS, JavaScript, and Tailwind CSS — all in one beautifully designed 20+ page PDF."),
				),
				h.Div(
					h.Class("flex flex-col sm:flex-row gap-4"),
					actionButton(at(ActionPurchase, sectionHero),
						"inline-flex items-center justify-center rounded-md bg-gradient-to-r from-blue-600 to-purple-600 hover:from-blue-700 hover:to-purple-700 text-white px-8 py-4 text-lg font-semibold shadow-lg hover:shadow-xl transition-all duration-300",
						"Download now",
						icon("lucide:download", "h-5 w-5 mr-2"),
						g.Textf("Download Now for %s", content.Price),
					),
					inertButton("inline-flex items-center justify-center rounded-md border-2 border-slate-300 dark:border-slate-600 hover:bg-slate-50 dark:hover:bg-slate-800 px-8 py-4 text-lg",
						icon("lucide:book-open", "h-5 w-5 mr-2"),
						g.Text("Preview Sample"),
					),
				),
			),
			h.Div(
				h.Class("relative"),
				h.Div(
					h.Class("bg-white dark:bg-slate-800 shadow-2xl overflow-hidden rounded-2xl p-8"),
					h.Div(
						h.Class("bg-gradient-to-br from-slate-900 to-slate-700 rounded-lg p-6 text-green-400 font-mono text-sm"),
						h.Div(
							h.Class("flex items-center space-x-2 mb-4"),
							h.Div(h.Class("w-3 h-3 bg-red-500 rounded-full")),
							h.Div(h.Class("w-3 h-3 bg-yellow-500 rounded-full")),
							h.Div(h.Class("w-3 h-3 bg-green-500 rounded-full")),
						),
						h.Div(
							h.Class("space-y-2"),
							g.Group(g.Map(content.PreviewSnippet, func(line string) g.Node {
								return h.Div(g.Text(line))
							})),
							h.Div(h.Class("text-blue-400"), g.Text("/* Perfect centering! */")),
						),
					),
					h.Div(
						h.Class("mt-6 space-y-3"),
						h.Div(h.Class("h-2 bg-slate-200 dark:bg-slate-700 rounded w-3/4")),
						h.Div(h.Class("h-2 bg-slate-200 dark:bg-slate-700 rounded w-1/2")),
						h.Div(h.Class("h-2 bg-slate-200 dark:bg-slate-700 rounded w-5/6")),
					),
				),
			),
		),
	)
}
