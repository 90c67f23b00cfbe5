package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"FrontendMastery/internal/content"
	"FrontendMastery/internal/landing"
)

const toggleClass = "p-2 rounded-lg bg-white dark:bg-slate-800 shadow-md hover:shadow-lg transition-all duration-300"

func Header(p Props) g.Node {
	return h.Header(
		h.Class("container mx-auto px-8 py-6 border-b-2 border-blue-500"),
		h.Div(
			h.Class("flex justify-between items-center"),
			h.Div(
				h.Class("flex items-center space-x-2"),
				icon("lucide:code-2", "h-8 w-8 text-blue-600 dark:text-blue-400"),
				h.Span(h.Class("text-xl font-semibold text-slate-800 dark:text-white"), g.Text(content.Brand)),
			),
			h.Nav(
				h.Class("hidden lg:flex items-center space-x-8"),
				g.Attr("aria-label", "Primary"),
				h.Div(
					h.Class("flex items-center space-x-6"),
					navLinks(""),
				),
				h.Div(
					h.Class("flex items-center space-x-4"),
					authButtons(),
					themeToggle(p.State),
				),
			),
			h.Div(
				h.Class("lg:hidden flex items-center space-x-4"),
				themeToggle(p.State),
				menuToggle(p.State),
			),
		),
		g.If(p.State.MenuOpen, mobileNav()),
	)
}

func navLinks(extra string) g.Node {
	class := "text-slate-600 dark:text-slate-300 hover:text-blue-600 dark:hover:text-blue-400 transition-colors duration-200"
	if extra != "" {
		class += " " + extra
	}
	return g.Group(g.Map(content.NavLinks, func(l content.Link) g.Node {
		return h.A(h.Href(l.Href), h.Class(class), g.Text(l.Name))
	}))
}

func authButtons() g.Node {
	return g.Group([]g.Node{
		inertButton("inline-flex items-center rounded-md border border-slate-300 px-3 py-1.5 text-sm",
			icon("lucide:log-in", "h-4 w-4 mr-2"), g.Text("Login")),
		inertButton("inline-flex items-center rounded-md bg-blue-600 hover:bg-blue-700 px-3 py-1.5 text-sm text-white",
			icon("lucide:user-plus", "h-4 w-4 mr-2"), g.Text("Sign Up")),
	})
}

func themeToggle(s landing.State) g.Node {
	if s.Theme() == landing.ThemeDark {
		return actionButton(ActionTheme, toggleClass, "Switch to light mode",
			icon("lucide:sun", "h-5 w-5 text-yellow-500"))
	}
	return actionButton(ActionTheme, toggleClass, "Switch to dark mode",
		icon("lucide:moon", "h-5 w-5 text-slate-600"))
}

func menuToggle(s landing.State) g.Node {
	if s.MenuOpen {
		return actionButton(ActionMenu, toggleClass, "Close menu",
			g.Attr("aria-expanded", "true"),
			icon("lucide:x", "h-5 w-5 text-slate-600 dark:text-slate-300"))
	}
	return actionButton(ActionMenu, toggleClass, "Open menu",
		g.Attr("aria-expanded", "false"),
		icon("lucide:menu", "h-5 w-5 text-slate-600 dark:text-slate-300"))
}

func mobileNav() g.Node {
	return h.Nav(
		h.ID("mobile-nav"),
		h.Class("lg:hidden mt-6 pb-6 border-t border-slate-200 dark:border-slate-700 pt-6"),
		g.Attr("aria-label", "Mobile"),
		h.Div(
			h.Class("flex flex-col space-y-4"),
			navLinks("py-2"),
			h.Div(
				h.Class("flex flex-col space-y-3 pt-4"),
				authButtons(),
			),
		),
	)
}
