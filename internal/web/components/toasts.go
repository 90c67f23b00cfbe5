package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"FrontendMastery/internal/notify"
)

// Toasts lists the active notifications. Each one fades out in the browser
// once its remaining display time has elapsed.
func Toasts(p Props) g.Node {
	return h.Ol(
		h.ID("toasts"),
		h.Class("toasts"),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		g.Group(g.Map(p.Notifications, func(e notify.Event) g.Node {
			return toast(e, p)
		})),
	)
}

func toast(e notify.Event, p Props) g.Node {
	remaining := e.Remaining(p.Now)
	return h.Li(
		h.Class("toast"),
		g.Attr("data-id", e.ID),
		g.Attr("style", fmt.Sprintf("animation-delay: %dms", remaining.Milliseconds())),
		h.Div(h.Class("toast-title"), g.Text(e.Title)),
		g.If(e.Description != "", h.Div(h.Class("toast-description"), g.Text(e.Description))),
	)
}
