package notify

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestNotifyStampsEvent(t *testing.T) {
	clk := newClock()
	d := New(5*time.Second, 3, WithClock(clk.now))
	d.Notify("Success!", "done")

	got := d.Active(clk.now())
	if len(got) != 1 {
		t.Fatalf("expected 1 active event, got %d", len(got))
	}
	e := got[0]
	if e.ID == "" {
		t.Fatalf("expected event id")
	}
	if e.Title != "Success!" || e.Description != "done" {
		t.Fatalf("unexpected event %+v", e)
	}
	if !e.CreatedAt.Equal(clk.now()) || !e.ExpiresAt.Equal(clk.now().Add(5*time.Second)) {
		t.Fatalf("unexpected timestamps %+v", e)
	}
	if e.Remaining(clk.now()) != 5*time.Second {
		t.Fatalf("remaining: %v", e.Remaining(clk.now()))
	}
}

func TestActiveIsFIFO(t *testing.T) {
	clk := newClock()
	d := New(time.Minute, 5, WithClock(clk.now))
	for _, title := range []string{"a", "b", "c"} {
		d.Notify(title, "")
		clk.advance(time.Second)
	}
	got := d.Active(clk.now())
	if len(got) != 3 || got[0].Title != "a" || got[1].Title != "b" || got[2].Title != "c" {
		t.Fatalf("expected FIFO order, got %+v", got)
	}
	if got[0].ID == got[1].ID {
		t.Fatalf("event ids must be unique")
	}
}

func TestLimitEvictsOldest(t *testing.T) {
	clk := newClock()
	d := New(time.Minute, 2, WithClock(clk.now))
	d.Notify("a", "")
	d.Notify("b", "")
	d.Notify("c", "")
	got := d.Active(clk.now())
	if len(got) != 2 || got[0].Title != "b" || got[1].Title != "c" {
		t.Fatalf("expected [b c], got %+v", got)
	}
}

func TestEventsExpire(t *testing.T) {
	clk := newClock()
	d := New(5*time.Second, 3, WithClock(clk.now))
	d.Notify("a", "")
	clk.advance(3 * time.Second)
	d.Notify("b", "")
	clk.advance(2 * time.Second)

	got := d.Active(clk.now())
	if len(got) != 1 || got[0].Title != "b" {
		t.Fatalf("expected only b to remain, got %+v", got)
	}
	clk.advance(3 * time.Second)
	if got := d.Active(clk.now()); len(got) != 0 {
		t.Fatalf("expected all expired, got %+v", got)
	}
}

func TestWithEventsDropsExpiredAndTrims(t *testing.T) {
	clk := newClock()
	now := clk.now()
	carried := []Event{
		{ID: "1", Title: "old", ExpiresAt: now.Add(-time.Second)},
		{ID: "2", Title: "x", ExpiresAt: now.Add(time.Second)},
		{ID: "3", Title: "y", ExpiresAt: now.Add(2 * time.Second)},
		{ID: "4", Title: "z", ExpiresAt: now.Add(3 * time.Second)},
	}
	d := New(time.Second, 2, WithClock(clk.now), WithEvents(carried))
	got := d.Active(now)
	if len(got) != 2 || got[0].ID != "3" || got[1].ID != "4" {
		t.Fatalf("expected [3 4], got %+v", got)
	}
	if carried[0].ID != "1" || carried[1].ID != "2" {
		t.Fatalf("caller slice must not be modified: %+v", carried)
	}
}

func TestNotifierFunc(t *testing.T) {
	var titles []string
	var n Notifier = NotifierFunc(func(title, _ string) { titles = append(titles, title) })
	n.Notify("one", "")
	n.Notify("two", "")
	if len(titles) != 2 || titles[0] != "one" || titles[1] != "two" {
		t.Fatalf("unexpected calls %v", titles)
	}
}
