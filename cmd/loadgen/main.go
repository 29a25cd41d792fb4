// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
)

// Fires concurrent badge requests at a running server so the per-key
// increment contract can be observed end to end: n requests against one
// key must leave the rendered count at exactly n.
func main() {
	server := flag.String("server", "http://localhost:3030", "server base URL")
	key := flag.String("key", "loadtest", "resource key to hammer")
	n := flag.Int("n", 100, "number of concurrent requests")
	flag.Parse()

	var ok, failed atomic.Int64
	var wg sync.WaitGroup

	log.Printf("firing %d concurrent requests for key %q...", *n, *key)

	for i := 0; i < *n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(*server + "/" + url.PathEscape(*key))
			if err != nil {
				failed.Add(1)
				return
			}
			defer resp.Body.Close()
			_, _ = io.Copy(io.Discard, resp.Body)
			if resp.StatusCode != http.StatusOK {
				failed.Add(1)
				return
			}
			ok.Add(1)
		}()
	}
	wg.Wait()

	log.Printf("done: %d ok, %d failed", ok.Load(), failed.Load())

	resp, err := http.Get(*server + "/api/v1/stats")
	if err != nil {
		log.Fatalf("stats request failed: %v", err)
	}
	defer resp.Body.Close()
	stats, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("reading stats failed: %v", err)
	}
	log.Printf("server stats: %s", stats)
}
