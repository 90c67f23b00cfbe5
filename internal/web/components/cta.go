package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"FrontendMastery/internal/content"
)

func CallToAction() g.Node {
	return h.Section(
		h.ID(sectionGetAccess),
		h.Class("container mx-auto px-8 py-20"),
		h.Div(
			h.Class("bg-gradient-to-r from-blue-600 to-purple-600 rounded-3xl p-12 text-center text-white fade-in-up"),
			h.H2(h.Class("text-4xl lg:text-5xl font-semibold mb-6"), g.Text("Ready to Master Frontend Development?")),
			h.P(
				h.Class("text-xl mb-8 opacity-90 max-w-2xl mx-auto"),
				g.Text("Join thousands of developers who have already leveled up their skills. Get instant access to your digital download."),
			),
			h.Div(
				h.Class("flex flex-col sm:flex-row gap-4 justify-center"),
				actionButton(at(ActionPurchase, sectionGetAccess),
					"inline-flex items-center justify-center rounded-md bg-white text-blue-600 hover:bg-slate-100 px-8 py-4 text-lg font-semibold shadow-lg hover:shadow-xl transition-all duration-300",
					"Get instant access",
					icon("lucide:download", "h-5 w-5 mr-2"),
					g.Textf("Get Instant Access - %s", content.Price),
				),
			),
			h.P(h.Class("text-sm mt-4 opacity-75"), g.Text("30-day money-back guarantee • Instant download • PDF format")),
		),
	)
}
