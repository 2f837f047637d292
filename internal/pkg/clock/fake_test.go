package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func TestFake_AdvanceFiresDueCallbacksInOrder(t *testing.T) {
	c := Fake(epoch)

	var order []string
	c.AfterFunc(2*time.Minute, func() { order = append(order, "second") })
	c.AfterFunc(1*time.Minute, func() { order = append(order, "first") })
	c.AfterFunc(10*time.Minute, func() { order = append(order, "late") })

	c.Advance(5 * time.Minute)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected firing order: %v", order)
	}
	if got := c.Now(); !got.Equal(epoch.Add(5 * time.Minute)) {
		t.Errorf("expected clock at +5m, got %v", got)
	}
	if c.Pending() != 1 {
		t.Errorf("expected 1 pending timer, got %d", c.Pending())
	}
}

func TestFake_CallbackSeesItsDeadline(t *testing.T) {
	c := Fake(epoch)

	var seen time.Time
	c.AfterFunc(90*time.Second, func() { seen = c.Now() })
	c.Advance(time.Hour)

	if !seen.Equal(epoch.Add(90 * time.Second)) {
		t.Errorf("callback saw %v, want deadline", seen)
	}
}

func TestFake_RearmingCallbackFiresEachPeriod(t *testing.T) {
	c := Fake(epoch)

	fired := 0
	var arm func()
	arm = func() {
		c.AfterFunc(time.Minute, func() {
			fired++
			arm()
		})
	}
	arm()

	c.Advance(3 * time.Minute)

	if fired != 3 {
		t.Errorf("expected 3 firings, got %d", fired)
	}
}

func TestFake_StopPreventsFiring(t *testing.T) {
	c := Fake(epoch)

	fired := false
	timer := c.AfterFunc(time.Minute, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("first Stop should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}
	c.Advance(time.Hour)
	if fired {
		t.Error("stopped timer fired")
	}
}
