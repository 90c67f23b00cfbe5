package landing

import (
	"testing"

	"FrontendMastery/internal/notify"
)

type recorder struct {
	titles       []string
	descriptions []string
}

func (r *recorder) Notify(title, description string) {
	r.titles = append(r.titles, title)
	r.descriptions = append(r.descriptions, description)
}

func TestZeroStateIsFreshPage(t *testing.T) {
	var s State
	if s.Theme() != ThemeLight || s.MenuOpen || s.Email != "" {
		t.Fatalf("unexpected zero state %+v", s)
	}
}

func TestToggleThemeIsInvolution(t *testing.T) {
	for _, start := range []State{{}, {Dark: true}, {MenuOpen: true, Email: "x"}} {
		p := New(start, &recorder{})
		p.ToggleTheme()
		if p.State().Dark == start.Dark {
			t.Fatalf("toggle did not flip theme from %+v", start)
		}
		p.ToggleTheme()
		if p.State() != start {
			t.Fatalf("expected %+v after two toggles, got %+v", start, p.State())
		}
	}
}

func TestThemeFollowsFlag(t *testing.T) {
	p := New(State{}, &recorder{})
	p.ToggleTheme()
	if p.State().Theme() != ThemeDark {
		t.Fatalf("expected dark theme")
	}
}

func TestToggleMobileMenuIsInvolution(t *testing.T) {
	for _, start := range []State{{}, {MenuOpen: true}, {Dark: true}} {
		p := New(start, &recorder{})
		p.ToggleMobileMenu()
		if p.State().MenuOpen == start.MenuOpen {
			t.Fatalf("toggle did not flip menu from %+v", start)
		}
		if p.State().Dark != start.Dark {
			t.Fatalf("menu toggle changed theme")
		}
		p.ToggleMobileMenu()
		if p.State() != start {
			t.Fatalf("expected %+v after two toggles, got %+v", start, p.State())
		}
	}
}

func TestSetEmailAcceptsAnything(t *testing.T) {
	p := New(State{}, &recorder{})
	for _, v := range []string{"a@b.com", "not an email", " ", ""} {
		p.SetEmail(v)
		if p.State().Email != v {
			t.Fatalf("expected %q, got %q", v, p.State().Email)
		}
	}
}

func TestSubmitEmailNonEmpty(t *testing.T) {
	for _, v := range []string{"a@b.com", "x", "malformed@", " "} {
		rec := &recorder{}
		p := New(State{Dark: true}, rec)
		p.SetEmail(v)
		if !p.SubmitEmail() {
			t.Fatalf("submit of %q should be accepted", v)
		}
		if len(rec.titles) != 1 || rec.titles[0] != SubscribedTitle || rec.descriptions[0] != SubscribedDescription {
			t.Fatalf("expected one success notification, got %v", rec.titles)
		}
		if p.State().Email != "" {
			t.Fatalf("email should be cleared, got %q", p.State().Email)
		}
		if !p.State().Dark {
			t.Fatalf("submit changed theme")
		}
	}
}

func TestSubmitEmailEmptyIsNoop(t *testing.T) {
	rec := &recorder{}
	start := State{MenuOpen: true}
	p := New(start, rec)
	if p.SubmitEmail() {
		t.Fatalf("empty submit should be rejected")
	}
	if len(rec.titles) != 0 {
		t.Fatalf("expected no notification, got %v", rec.titles)
	}
	if p.State() != start {
		t.Fatalf("state changed: %+v", p.State())
	}
}

func TestPurchaseNeverMutatesState(t *testing.T) {
	for _, start := range []State{{}, {Dark: true, MenuOpen: true, Email: "typed"}} {
		rec := &recorder{}
		p := New(start, rec)
		p.Purchase()
		if len(rec.titles) != 1 || rec.titles[0] != CheckoutTitle || rec.descriptions[0] != CheckoutDescription {
			t.Fatalf("expected one checkout notification, got %v", rec.titles)
		}
		if p.State() != start {
			t.Fatalf("purchase mutated state: %+v", p.State())
		}
	}
}

func TestScenarioTypeThenSubmit(t *testing.T) {
	rec := &recorder{}
	p := New(State{}, rec)
	p.SetEmail("a@b.com")
	p.SubmitEmail()
	if len(rec.titles) != 1 || rec.titles[0] != "Success!" {
		t.Fatalf("expected one Success! notification, got %v", rec.titles)
	}
	if p.State().Email != "" {
		t.Fatalf("field should be empty")
	}
}

func TestScenarioHeroThenCTAPurchase(t *testing.T) {
	var titles []string
	p := New(State{}, notify.NotifierFunc(func(title, _ string) { titles = append(titles, title) }))
	p.Purchase()
	p.Purchase()
	if len(titles) != 2 || titles[0] != "Redirecting to checkout..." || titles[1] != "Redirecting to checkout..." {
		t.Fatalf("expected two checkout notifications, got %v", titles)
	}
}
