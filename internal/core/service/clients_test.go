package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
)

type infoInput = ports.ClientInfoInput

// infoFor returns an update that leaves c unchanged, after mutate.
func infoFor(c *domain.Client, mutate func(*infoInput)) infoInput {
	in := infoInput{
		Name:             c.Name,
		Gender:           c.Gender,
		Bed:              c.Bed,
		ChecksEnabled:    c.ChecksEnabled,
		ApprovedContacts: c.ApprovedContacts,
		WakeupTime:       c.WakeupTime,
		ReturnTime:       c.ReturnTime,
		PropertyHeld:     map[string]bool{},
	}
	for k, v := range c.PropertyHeld {
		in.PropertyHeld[k] = v
	}
	if mutate != nil {
		mutate(&in)
	}
	return in
}

// ---------------------------------------------------------------------------
// AddClient
// ---------------------------------------------------------------------------

func TestAddClient_Intake(t *testing.T) {
	h := newHarness(t)

	c, err := h.engine.AddClient(context.Background(), "  A. Rivera ", "Female")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clients := h.engine.Clients()
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	if c.Name != "A. Rivera" {
		t.Errorf("name must be trimmed, got %q", c.Name)
	}
	if c.Location != domain.LocationGroupRoom {
		t.Errorf("new client in %q, want Group Room", c.Location)
	}
	for _, k := range domain.PropertyKeys {
		held, ok := c.PropertyHeld[k]
		if !ok || held {
			t.Errorf("property %s must default to false", k)
		}
	}
	if got := h.activity.last(); got != "INTAKE A. Rivera" {
		t.Errorf("expected intake line, got %q", got)
	}
	if h.repo.saves != 1 || len(h.repo.stored) != 1 {
		t.Errorf("expected one snapshot with the new client, got saves=%d stored=%d", h.repo.saves, len(h.repo.stored))
	}
}

func TestAddClient_RequiresNameAndGender(t *testing.T) {
	cases := []struct{ name, gender string }{
		{"", "Female"},
		{"   ", "Female"},
		{"Ana", ""},
		{"Ana", "Robot"},
	}
	for _, tc := range cases {
		h := newHarness(t)

		_, err := h.engine.AddClient(context.Background(), tc.name, tc.gender)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%q/%q: expected ErrInvalidInput, got %v", tc.name, tc.gender, err)
		}
		if len(h.engine.Clients()) != 0 || len(h.activity.entries) != 0 || h.repo.saves != 0 {
			t.Errorf("%q/%q: rejected intake must leave no trace", tc.name, tc.gender)
		}
		if len(h.dispatcher.warnings) != 1 {
			t.Errorf("%q/%q: expected one operator warning, got %v", tc.name, tc.gender, h.dispatcher.warnings)
		}
	}
}

func TestAddClient_PersistFailureDoesNotFail(t *testing.T) {
	h := newHarness(t)
	h.repo.saveErr = errors.New("read-only filesystem")
	h.activity.appendErr = errors.New("read-only filesystem")

	if _, err := h.engine.AddClient(context.Background(), "Ana", "Female"); err != nil {
		t.Fatalf("write failures must not fail the operation: %v", err)
	}
	if len(h.engine.Clients()) != 1 {
		t.Error("client must still be tracked")
	}
}

// ---------------------------------------------------------------------------
// UpdateClientInfo
// ---------------------------------------------------------------------------

func TestUpdateClientInfo_DiffLine(t *testing.T) {
	h := newHarness(t)
	c := h.add(t, "Ana", "Female")

	updated, err := h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, func(in *infoInput) {
		in.Name = "Ana B."
		in.Gender = "Transgender Female"
		in.PropertyHeld["Tray"] = true
	}))
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := "Updated Ana B.'s info: name from Ana to Ana B.; gender changed; property Tray changed"
	if got := h.activity.last(); got != want {
		t.Errorf("diff line:\n got %q\nwant %q", got, want)
	}
	if updated.Name != "Ana B." || !updated.PropertyHeld["Tray"] {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestUpdateClientInfo_EveryFieldNamed(t *testing.T) {
	h := newHarness(t)
	c := h.add(t, "Ana", "Female")

	_, err := h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, func(in *infoInput) {
		in.Bed = "FD 2"
		in.ChecksEnabled = true
		in.ApprovedContacts = "Mom 555-0100"
		in.WakeupTime = "07:00"
		in.PropertyHeld["Money"] = true
		in.PropertyHeld["Sharps"] = true
	}))
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := "Updated Ana's info: bed changed; checks changed; contacts changed; wakeup_time changed; property Sharps changed; property Money changed"
	if got := h.activity.last(); got != want {
		t.Errorf("diff line:\n got %q\nwant %q", got, want)
	}
}

func TestUpdateClientInfo_NoChangeNoLine(t *testing.T) {
	h := newHarness(t)
	c := h.add(t, "Ana", "Female")
	lines, saves := len(h.activity.entries), h.repo.saves

	if _, err := h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, nil)); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(h.activity.entries) != lines {
		t.Errorf("unchanged update must not log, got %v", h.activity.messages()[lines:])
	}
	if h.repo.saves != saves+1 {
		t.Error("successful update must persist")
	}
}

func TestUpdateClientInfo_BedConflictRejected(t *testing.T) {
	h := newHarness(t)
	x := h.add(t, "Xavi", "Male")
	y := h.add(t, "Yara", "Female")

	if _, err := h.engine.UpdateClientInfo(context.Background(), x.ID, infoFor(x, func(in *infoInput) {
		in.Bed = "MD 1"
	})); err != nil {
		t.Fatalf("assign MD 1 to X: %v", err)
	}
	lines, saves := len(h.activity.entries), h.repo.saves

	_, err := h.engine.UpdateClientInfo(context.Background(), y.ID, infoFor(y, func(in *infoInput) {
		in.Bed = "MD 1"
		in.Name = "Yara Q."
	}))
	if !errors.Is(err, domain.ErrBedTaken) {
		t.Fatalf("expected ErrBedTaken, got %v", err)
	}

	if got := h.get(t, x.ID).Bed; got != "MD 1" {
		t.Errorf("X must keep MD 1, got %q", got)
	}
	if got := h.get(t, y.ID); got.Bed != "" || got.Name != "Yara" {
		t.Errorf("rejected update must not apply partially: %+v", got)
	}
	if len(h.activity.entries) != lines || h.repo.saves != saves {
		t.Error("rejected update must not log or persist")
	}
	if slices.Contains(h.engine.AvailableBeds(""), "MD 1") {
		t.Error("AvailableBeds must exclude MD 1")
	}
	if !slices.Contains(h.engine.AvailableBeds("MD 1"), "MD 1") {
		t.Error("AvailableBeds(MD 1) must offer MD 1")
	}
	h.assertInvariants(t)
}

func TestUpdateClientInfo_KeepOwnBed(t *testing.T) {
	h := newHarness(t)
	c := h.add(t, "Ana", "Female")
	c, _ = h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, func(in *infoInput) { in.Bed = "FD 3" }))

	if _, err := h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, func(in *infoInput) {
		in.ChecksEnabled = true
	})); err != nil {
		t.Fatalf("re-saving a client's own bed must succeed: %v", err)
	}
}

func TestUpdateClientInfo_BedNoneUnassigns(t *testing.T) {
	h := newHarness(t)
	c := h.add(t, "Ana", "Female")
	c, _ = h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, func(in *infoInput) { in.Bed = "CR 1" }))

	c, err := h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, func(in *infoInput) { in.Bed = "None" }))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.Bed != "" {
		t.Errorf("bed = %q, want unassigned", c.Bed)
	}
}

func TestUpdateClientInfo_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*infoInput)
		want   error
	}{
		{"unknown bed", func(in *infoInput) { in.Bed = "ZZ 9" }, domain.ErrUnknownBed},
		{"empty name", func(in *infoInput) { in.Name = " " }, domain.ErrInvalidInput},
		{"unknown gender", func(in *infoInput) { in.Gender = "?" }, domain.ErrInvalidInput},
		{"bad wakeup", func(in *infoInput) { in.WakeupTime = "25:00" }, domain.ErrInvalidTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			c := h.add(t, "Ana", "Female")

			_, err := h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, tc.mutate))
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
			if len(h.dispatcher.warnings) != 1 {
				t.Errorf("expected one operator warning, got %v", h.dispatcher.warnings)
			}
		})
	}
}

func TestUpdateClientInfo_ReturnTimeOnlyWhileAway(t *testing.T) {
	h := newHarness(t)
	c := h.add(t, "Ana", "Female")

	c, _ = h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, func(in *infoInput) {
		in.ReturnTime = "15:00"
	}))
	if c.ReturnTime != "" {
		t.Errorf("return time must be ignored outside Away, got %q", c.ReturnTime)
	}

	h.dispatcher.returnTime, h.dispatcher.returnOK = "14:30", true
	_, _ = h.engine.MoveClient(context.Background(), c.ID, away)
	c = h.get(t, c.ID)

	c, err := h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, func(in *infoInput) {
		in.ReturnTime = "16:00"
	}))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.ReturnTime != "16:00" {
		t.Errorf("return time = %q, want 16:00", c.ReturnTime)
	}
	if got := h.activity.last(); got != "Updated Ana's info: return_time changed" {
		t.Errorf("unexpected diff line %q", got)
	}
	h.assertInvariants(t)
}

func TestUpdateClientInfo_UnknownClient(t *testing.T) {
	h := newHarness(t)

	_, err := h.engine.UpdateClientInfo(context.Background(), "ghost", infoInput{Name: "x", Gender: "Male"})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// DischargeClient / AvailableBeds
// ---------------------------------------------------------------------------

func TestDischargeClient(t *testing.T) {
	h := newHarness(t)
	c := h.add(t, "Ana", "Female")
	c, _ = h.engine.UpdateClientInfo(context.Background(), c.ID, infoFor(c, func(in *infoInput) { in.Bed = "FD 1" }))
	_, _ = h.engine.MoveClient(context.Background(), c.ID, "Shower")

	if err := h.engine.DischargeClient(context.Background(), c.ID); err != nil {
		t.Fatalf("discharge: %v", err)
	}

	if len(h.engine.Clients()) != 0 {
		t.Error("client must be removed")
	}
	if got := h.activity.last(); got != "DISCHARGE Ana" {
		t.Errorf("unexpected log line %q", got)
	}
	if _, armed := h.sched.ShowerTimer(c.ID); armed {
		t.Error("shower timer must be cancelled")
	}
	if !slices.Contains(h.engine.AvailableBeds(""), "FD 1") {
		t.Error("bed must be freed")
	}
	if len(h.repo.stored) != 0 {
		t.Error("snapshot must no longer contain the client")
	}

	h.clock.Advance(time.Hour)
	if len(h.dispatcher.showersEnded) != 0 {
		t.Error("discharged client must not get a shower notice")
	}

	if err := h.engine.DischargeClient(context.Background(), c.ID); !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("second discharge: expected ErrClientNotFound, got %v", err)
	}
}

func TestAvailableBeds_CatalogOrder(t *testing.T) {
	h := newHarness(t)

	beds := h.engine.AvailableBeds("")
	if !slices.Equal(beds, domain.DefaultBeds()) {
		t.Errorf("expected the full catalog, got %v", beds)
	}
	if len(beds) != 20 {
		t.Errorf("expected 20 beds, got %d", len(beds))
	}
}

// ---------------------------------------------------------------------------
// RecordEvent
// ---------------------------------------------------------------------------

func TestRecordEvent(t *testing.T) {
	h := newHarness(t)

	if err := h.engine.RecordEvent(context.Background(), "Incident", " raised voices on the patio "); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := h.activity.last(); got != "Event Incident: raised voices on the patio" {
		t.Errorf("unexpected line %q", got)
	}

	if err := h.engine.RecordEvent(context.Background(), "Visitor", ""); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := h.activity.last(); got != "Event Visitor" {
		t.Errorf("unexpected line %q", got)
	}

	if err := h.engine.RecordEvent(context.Background(), "Visitor", "hi\n[2026-03-02 09:30:00] DISCHARGE Bob"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := h.activity.last(); got != "Event Visitor: hi [2026-03-02 09:30:00] DISCHARGE Bob" {
		t.Errorf("line breaks must be flattened, got %q", got)
	}

	for _, bad := range []string{"", "Party"} {
		if err := h.engine.RecordEvent(context.Background(), bad, "x"); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("type %q: expected ErrInvalidInput, got %v", bad, err)
		}
	}
}
