package hub

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamereviews/internal/service"
)

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

// connect opens a stream and returns a reader positioned after the
// connection comment
func connect(t *testing.T, ctx context.Context, url string) *bufio.Reader {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatalf("failed to read greeting: %v", err)
	}
	if line != ": connected\n" {
		t.Fatalf("unexpected greeting %q", line)
	}
	return reader
}

func readData(t *testing.T, reader *bufio.Reader) string {
	t.Helper()
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("stream ended: %v", err)
		}
		if strings.HasPrefix(line, "data: ") {
			return strings.TrimSuffix(strings.TrimPrefix(line, "data: "), "\n")
		}
	}
}

func TestHubBroadcast(t *testing.T) {
	h := New()
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	reader := connect(t, ctx, srv.URL)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	h.Broadcast(service.Event{
		Type:    service.EventCommentDeleted,
		Payload: map[string]int64{"comment_id": 4},
	})

	got := readData(t, reader)
	want := `{"type":"comment_deleted","payload":{"comment_id":4}}`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestHubRelay(t *testing.T) {
	h := New()
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus := service.NewEventBus()
	go h.Run(ctx)
	go h.Relay(ctx, bus)

	reader := connect(t, ctx, srv.URL)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	// Relay subscribes asynchronously; publish until the event arrives
	done := make(chan string, 1)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			if strings.HasPrefix(line, "data: ") {
				done <- line
				return
			}
		}
	}()

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case got := <-done:
			if !strings.Contains(got, `"type":"review_votes_updated"`) {
				t.Errorf("unexpected event %s", got)
			}
			return
		case <-ticker.C:
			bus.Publish(service.Event{Type: service.EventReviewVotesUpdated})
		case <-timeout:
			t.Fatal("relayed event never arrived")
		}
	}
}

func TestHubDisconnect(t *testing.T) {
	h := New()
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	reqCtx, reqCancel := context.WithCancel(ctx)
	connect(t, reqCtx, srv.URL)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	reqCancel()
	waitFor(t, func() bool { return h.ClientCount() == 0 })
}

func TestHubStopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := New()
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 after shutdown, got %d", rec.Code)
	}
}
