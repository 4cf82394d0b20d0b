package main

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
)

// ### Start - fixed configs (no change)
// The expected results below depend on these values.
const (
	burstSize  = 40 // events sent in one burst
	sourceName = "e2e-worker"
)

var kinds = []string{"restart", "restart", "oom", "oom"}

// ### End - fixed configs

type eventRequest struct {
	SourceName string `json:"sourceName"`
	Kind       string `json:"kind"`
	Detail     string `json:"detail"`
	OccurredAt string `json:"occurredAt"`
}

type sinkRequest struct {
	receivedAt time.Time
	text       string
}

// main runs the e2e scenario: 001_burst_digest
//
// Start the server with a webhook sink pointing at this scenario, for example:
//
//	DIGEST_DISPATCH_ENDPOINT_URL=http://localhost:9099/hook \
//	DIGEST_DISPATCH_DEBOUNCE_SECONDS=3 \
//	DIGEST_DISPATCH_MAX_EVENTS_PER_DISPATCH=25 \
//	go run ./cmd/server
//
// What it tests:
//   - Event ingestion via POST /events from parallel producers
//   - A burst inside one debounce window collapses into exactly one sink request
//   - The per-dispatch cap keeps the first events and reports the rest as suppressed
//   - The sink acknowledgment contract ("ok") is honored
//
// Expected results:
//   - Every POST /events returns 202 Accepted
//   - The sink receives exactly one request within debounce + 2s
//   - The payload starts with the display header and ends with "15 messages have been suppressed."
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the notify-digest server
	sinkAddr := "localhost:9099"       // Address the fake webhook sink listens on
	parallel := 4                      // Number of concurrent producers
	maxEvents := 25                    // Must match dispatch.max_events_per_dispatch of the server
	waitFor := 8 * time.Second         // How long to wait for the digest after the burst

	fmt.Println("Starting e2e scenario: 001_burst_digest")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("SINK_ADDR: %s\n", sinkAddr)
	fmt.Printf("BURST_SIZE: %d\n", burstSize)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	var (
		mu       sync.Mutex
		received []sinkRequest
	)
	listener, err := net.Listen("tcp", sinkAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to listen on %s: %v\n", sinkAddr, err)
		os.Exit(1)
	}
	sink := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Text string `json:"text"`
			}
			raw, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(raw, &body); err != nil {
				http.Error(w, "bad payload", http.StatusBadRequest)
				return
			}
			mu.Lock()
			received = append(received, sinkRequest{receivedAt: time.Now(), text: body.Text})
			mu.Unlock()
			_, _ = w.Write([]byte("ok"))
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() { _ = sink.Serve(listener) }()
	defer sink.Close()

	// Send the burst
	startTime := time.Now()
	var accepted, failed atomic.Int64
	jobs := make(chan int, burstSize)
	for i := 0; i < burstSize; i++ {
		jobs <- i
	}
	close(jobs)

	client := &http.Client{Timeout: 10 * time.Second}
	var wg sync.WaitGroup
	for p := 0; p < parallel; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := sendEvent(client, baseURL, i); err != nil {
					failed.Add(1)
					fmt.Fprintf(os.Stderr, "ERROR: event %d: %v\n", i, err)
					continue
				}
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()
	fmt.Printf("Burst sent in %v: accepted=%d failed=%d\n", time.Since(startTime), accepted.Load(), failed.Load())

	// Wait for the digest
	time.Sleep(waitFor)

	mu.Lock()
	defer mu.Unlock()

	ok := true
	if failed.Load() > 0 {
		fmt.Fprintf(os.Stderr, "FAIL: %d events were not accepted\n", failed.Load())
		ok = false
	}
	if len(received) != 1 {
		fmt.Fprintf(os.Stderr, "FAIL: expected 1 sink request, got %d\n", len(received))
		ok = false
	}
	if len(received) > 0 {
		text := received[0].text
		fmt.Printf("Digest received after %v:\n%s\n", received[0].receivedAt.Sub(startTime), text)

		wantNotice := fmt.Sprintf("%d messages have been suppressed.", burstSize-maxEvents)
		if !strings.HasPrefix(text, "*[") {
			fmt.Fprintf(os.Stderr, "FAIL: payload does not start with the display header\n")
			ok = false
		}
		if !strings.HasSuffix(strings.TrimSpace(text), wantNotice) {
			fmt.Fprintf(os.Stderr, "FAIL: payload does not end with %q\n", wantNotice)
			ok = false
		}
	}

	if !ok {
		os.Exit(1)
	}
	fmt.Println("PASS")
}

func sendEvent(client *http.Client, baseURL string, i int) error {
	body, err := json.Marshal(eventRequest{
		SourceName: sourceName,
		Kind:       kinds[i%len(kinds)],
		Detail:     fmt.Sprintf("event #%d", i),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	resp, err := client.Post(baseURL+"/events", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
