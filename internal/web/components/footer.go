package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"FrontendMastery/internal/content"
)

func Footer() g.Node {
	return h.Footer(
		h.Class("container mx-auto px-8 py-12 text-center text-slate-600 dark:text-slate-400"),
		h.Div(
			h.Class("flex items-center justify-center space-x-2 mb-4"),
			icon("lucide:code-2", "h-6 w-6 text-blue-600 dark:text-blue-400"),
			h.Span(h.Class("font-semibold"), g.Text(content.ProductName)),
		),
		h.P(g.Textf("© %d %s. All rights reserved.", content.Year, content.Brand)),
	)
}
