package landing

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/a-h/templ"

	"FrontendMastery/internal/landing"
	"FrontendMastery/internal/middleware"
	"FrontendMastery/internal/notify"
	"FrontendMastery/internal/viewstate"
	"FrontendMastery/internal/web/components"
)

// Handler serves the landing page and the actions posted from it. Each
// request rebuilds the page from the posted view state, applies one action
// and answers with the re-rendered page.
type Handler struct {
	codec       *viewstate.Codec
	log         *slog.Logger
	notifyTTL   time.Duration
	notifyLimit int
	now         func() time.Time
}

type Option func(*Handler)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

func New(codec *viewstate.Codec, log *slog.Logger, notifyTTL time.Duration, notifyLimit int, opts ...Option) *Handler {
	h := &Handler{
		codec:       codec,
		log:         log,
		notifyTTL:   notifyTTL,
		notifyLimit: notifyLimit,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Index renders a fresh page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	d := notify.New(h.notifyTTL, h.notifyLimit, notify.WithClock(h.now))
	h.render(w, r, landing.State{}, d)
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(p *landing.Page, log *slog.Logger) {
		p.ToggleTheme()
		log.Debug("theme_toggled", "theme", p.State().Theme())
	})
}

func (h *Handler) ToggleMobileMenu(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(p *landing.Page, log *slog.Logger) {
		p.ToggleMobileMenu()
		log.Debug("menu_toggled", "open", p.State().MenuOpen)
	})
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(p *landing.Page, log *slog.Logger) {
		if !p.SubmitEmail() {
			log.Debug("subscribe_ignored", "reason", "empty email")
			return
		}
		log.Info("subscribed")
	})
}

func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(p *landing.Page, log *slog.Logger) {
		p.Purchase()
		log.Info("purchase_requested")
	})
}

func (h *Handler) act(w http.ResponseWriter, r *http.Request, action func(*landing.Page, *slog.Logger)) {
	log := h.log.With("request_id", middleware.RequestIDFromContext(r.Context()))
	if err := r.ParseForm(); err != nil {
		log.Warn("bad_form", "error", err)
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	view, err := h.codec.Decode(r.PostForm.Get(viewstate.FieldName))
	if err != nil {
		// A stale or forged token only costs the visitor their page state.
		log.Warn("view_state_rejected", "error", err)
		view = viewstate.View{}
	}

	d := notify.New(h.notifyTTL, h.notifyLimit,
		notify.WithClock(h.now),
		notify.WithEvents(view.Notifications),
	)
	page := landing.New(view.State, d)
	// The email field rides along with every action, like a change event
	// fired before the click.
	if _, ok := r.PostForm[components.EmailFieldName]; ok {
		page.SetEmail(emailValue(r.PostForm.Get(components.EmailFieldName)))
	}
	action(page, log)

	w.Header().Set("Cache-Control", "no-store")
	h.render(w, r, page.State(), d)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, state landing.State, d *notify.Dispatcher) {
	now := d.Now()
	events := d.Active(now)
	token, err := h.codec.Encode(viewstate.View{State: state, Notifications: events})
	if err != nil {
		h.log.Error("view_state_encode_failed", "error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	props := components.Props{
		State:         state,
		Token:         token,
		Notifications: events,
		Now:           now,
	}
	templ.Handler(components.Component(components.Page(props)),
		templ.WithErrorHandler(h.renderError),
	).ServeHTTP(w, r)
}

func (h *Handler) renderError(r *http.Request, err error) http.Handler {
	h.log.Error("render_failed", "error", err,
		"request_id", middleware.RequestIDFromContext(r.Context()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	})
}

// emailValue cuts the posted value to the input's maxlength. Invalid UTF-8
// is replaced up front so the rendered input and the token agree.
func emailValue(s string) string {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	if utf8.RuneCountInString(s) <= components.EmailMaxLength {
		return s
	}
	return string([]rune(s)[:components.EmailMaxLength])
}
