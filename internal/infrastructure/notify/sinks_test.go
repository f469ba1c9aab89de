package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flex_billing/internal/domain/entities"

	"github.com/segmentio/analytics-go/v3"
)

func TestEventMessage(t *testing.T) {
	ts := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)
	msg, err := eventMessage(entities.DomainEvent{
		ID:        "ev-1",
		Type:      "order",
		Action:    "placed",
		Customer:  entities.EventCustomer{ID: "cus-1"},
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(msg.Key) != "cus-1" || !msg.Time.Equal(ts) {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if string(msg.Headers[0].Value) != "order/placed" || string(msg.Headers[1].Value) != "ev-1" {
		t.Fatalf("unexpected headers: %+v", msg.Headers)
	}
	var decoded entities.DomainEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil || decoded.Action != "placed" {
		t.Fatalf("unexpected payload %s err=%v", msg.Value, err)
	}
}

func TestSlackNotifier_PostMessage(t *testing.T) {
	var gotChannel, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat.postMessage" {
			http.NotFound(w, r)
			return
		}
		_ = r.ParseForm()
		gotChannel = r.PostForm.Get("channel")
		gotText = r.PostForm.Get("text")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true,"channel":"C1","ts":"1700000000.000100"}`)
	}))
	defer srv.Close()

	n := NewSlackNotifier("xoxb-test", srv.URL+"/")
	if err := n.PostMessage(context.Background(), "orders", "Order VRB1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotChannel != "orders" || gotText != "Order VRB1001" {
		t.Fatalf("unexpected post channel=%q text=%q", gotChannel, gotText)
	}
}

func TestSlackNotifier_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":false,"error":"channel_not_found"}`)
	}))
	defer srv.Close()

	err := NewSlackNotifier("xoxb-test", srv.URL+"/").PostMessage(context.Background(), "nope", "hi")
	if err == nil || !strings.Contains(err.Error(), "channel_not_found") {
		t.Fatalf("expected channel_not_found, got %v", err)
	}
}

func TestSegmentClient_TrackIsDelivered(t *testing.T) {
	bodies := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies <- string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewSegmentClient("write-key", analytics.Config{Endpoint: srv.URL, BatchSize: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.TrackEvent(context.Background(), "ada@example.com", "Placed Order", map[string]any{"$value": 24.95}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	select {
	case body := <-bodies:
		if !strings.Contains(body, `"Placed Order"`) || !strings.Contains(body, "ada@example.com") {
			t.Fatalf("unexpected batch: %s", body)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no batch delivered")
	}
}
