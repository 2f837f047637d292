package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

type stubFeed struct {
	notices []domain.Notice
	limit   int
}

func (f *stubFeed) Recent(limit int) []domain.Notice {
	f.limit = limit
	return f.notices
}

func TestEventHandler_Record(t *testing.T) {
	var gotType, gotComments string
	stub := &stubEngine{
		eventFn: func(_ context.Context, eventType, comments string) error {
			gotType, gotComments = eventType, comments
			return nil
		},
	}
	h := NewEventHandler(stub, &stubFeed{})

	c, rec := newContext(http.MethodPost, "/v1/events", `{"type":"Visitor","comments":"Sister dropped off clothes"}`)
	if err := h.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotType != "Visitor" || gotComments != "Sister dropped off clothes" {
		t.Fatalf("unexpected args %q %q", gotType, gotComments)
	}
}

func TestEventHandler_Record_UnknownType(t *testing.T) {
	h := NewEventHandler(&stubEngine{}, &stubFeed{})

	c, _ := newContext(http.MethodPost, "/v1/events", `{"type":"Party"}`)
	if code := httpCode(t, h.Record(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestEventHandler_Record_CommentTooLong(t *testing.T) {
	stub := &stubEngine{
		eventFn: func(context.Context, string, string) error {
			t.Fatal("engine must not be called")
			return nil
		},
	}
	h := NewEventHandler(stub, &stubFeed{})

	body := `{"type":"Other","comments":"` + strings.Repeat("x", 2001) + `"}`
	c, _ := newContext(http.MethodPost, "/v1/events", body)
	if code := httpCode(t, h.Record(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestEventHandler_Record_EngineError(t *testing.T) {
	stub := &stubEngine{
		eventFn: func(context.Context, string, string) error { return domain.ErrInvalidInput },
	}
	h := NewEventHandler(stub, &stubFeed{})

	c, _ := newContext(http.MethodPost, "/v1/events", `{"type":"Other"}`)
	if err := h.Record(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEventHandler_RecentLogs(t *testing.T) {
	ts := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)
	stub := &stubEngine{logs: []domain.LogEntry{{Timestamp: ts, Message: "INTAKE Ana"}}}
	h := NewEventHandler(stub, &stubFeed{})

	c, rec := newContext(http.MethodGet, "/v1/logs/recent", "")
	if err := h.RecentLogs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp recentLogsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Line != "[2026-03-02 10:15:00] INTAKE Ana" {
		t.Fatalf("unexpected logs %+v", resp.Data)
	}
}

func TestEventHandler_Notices(t *testing.T) {
	feed := &stubFeed{notices: []domain.Notice{
		{Kind: domain.NoticeCheckDue, ClientName: "Ana", Message: "Check on Ana"},
	}}
	h := NewEventHandler(&stubEngine{}, feed)

	c, rec := newContext(http.MethodGet, "/v1/notices?limit=5", "")
	if err := h.Notices(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if feed.limit != 5 {
		t.Fatalf("expected limit 5, got %d", feed.limit)
	}
	var resp noticesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Kind != "check_due" || resp.Data[0].Message != "Check on Ana" {
		t.Fatalf("unexpected notices %+v", resp.Data)
	}
}

func TestEventHandler_Notices_BadLimit(t *testing.T) {
	h := NewEventHandler(&stubEngine{}, &stubFeed{})

	for _, q := range []string{"abc", "-1"} {
		c, _ := newContext(http.MethodGet, "/v1/notices?limit="+q, "")
		if code := httpCode(t, h.Notices(c)); code != http.StatusBadRequest {
			t.Fatalf("limit=%s: expected 400, got %d", q, code)
		}
	}
}
