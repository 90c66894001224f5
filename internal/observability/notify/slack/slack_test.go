package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nextgen-academy/academy-api/internal/observability/notify"
)

func samplePayload() notify.AdmissionReceivedPayload {
	return notify.AdmissionReceivedPayload{
		AdmissionID: "a1",
		Applicant:   "Jane Doe",
		Email:       "jane@example.com",
		Course:      "Web Development",
		SubmittedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewClientRequiresWebhookURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for missing webhook url")
	}
}

func TestSendAdmissionReceived(t *testing.T) {
	t.Parallel()

	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewClient(Config{WebhookURL: srv.URL, Channel: "#admissions"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if err := client.SendAdmissionReceived(context.Background(), samplePayload()); err != nil {
		t.Fatalf("SendAdmissionReceived: %v", err)
	}

	text, _ := received["text"].(string)
	for _, want := range []string{"New admission application", "a1", "Jane Doe", "Web Development", "2026-03-01T10:00:00Z"} {
		if !strings.Contains(text, want) {
			t.Fatalf("message text missing %q:\n%s", want, text)
		}
	}
	if received["channel"] != "#admissions" {
		t.Fatalf("channel = %v, want #admissions", received["channel"])
	}
}

func TestSendAdmissionReceivedEscapesMarkup(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{WebhookURL: "https://example.com/hook"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	payload := samplePayload()
	payload.Applicant = "<script>&"
	msg := client.formatMessage(payload)
	text, _ := msg["text"].(string)
	if strings.Contains(text, "<script>") {
		t.Fatalf("markup was not escaped:\n%s", text)
	}
	if !strings.Contains(text, "&lt;script&gt;&amp;") {
		t.Fatalf("expected escaped markup in:\n%s", text)
	}
}

func TestSendAdmissionReceivedRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewClient(Config{WebhookURL: srv.URL, RetryLimit: 2})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if err := client.SendAdmissionReceived(context.Background(), samplePayload()); err != nil {
		t.Fatalf("SendAdmissionReceived: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 webhook calls, got %d", got)
	}
}

func TestSendAdmissionReceivedSurfacesWebhookError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	client, err := NewClient(Config{WebhookURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	err = client.SendAdmissionReceived(context.Background(), samplePayload())
	if err == nil {
		t.Fatal("expected webhook error")
	}
	if !strings.Contains(err.Error(), "invalid_payload") {
		t.Fatalf("unexpected error: %v", err)
	}
}
