package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numAuthors   = 8
	maxMessages  = 200
)

var authors = []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace", "Heidi"}

var words = []string{
	"hello", "there", "meeting", "tomorrow", "coffee", "project", "deadline",
	"weekend", "dinner", "movie", "great", "thanks", "awesome", "lunch",
	"running", "late", "traffic", "работа", "okay", "sure",
}

var emojis = []string{"😀", "😂", "🎉", "🚀", "❤", "👍", "🔥", "☀"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== Chatalyzer Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Authors: %d | Max messages per transcript: %d\n\n", numAuthors, maxMessages)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Unique transcripts, every request misses the cache
	fmt.Println("\n--- Phase 1: Unique transcripts (POST /api/analyze/text) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doText(rng, transcript(rng, rng.Intn(maxMessages)+1))
	})

	// Phase 2: Mixed endpoints with a shared transcript pool (cache-friendly)
	fmt.Println("\n--- Phase 2: Mixed load (text/upload/file/health) ---")
	pool := make([]string, 50)
	seedRng := rand.New(rand.NewSource(42))
	for i := range pool {
		pool[i] = transcript(seedRng, seedRng.Intn(maxMessages)+1)
	}
	runPhase(testDuration, func(rng *rand.Rand) result {
		content := pool[rng.Intn(len(pool))]
		r := rng.Float64()
		switch {
		case r < 0.50:
			return doText(rng, content)
		case r < 0.70:
			return doUpload(content)
		case r < 0.90:
			return doFile(content)
		default:
			return doHealth()
		}
	})

	// Phase 3: Cache-hot load, small pool hammered from all workers
	fmt.Println("\n--- Phase 3: Cache-hot load (5 transcripts) ---")
	hot := pool[:5]
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doText(rng, hot[rng.Intn(len(hot))])
	})
}

func transcript(rng *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		day := rng.Intn(28) + 1
		month := rng.Intn(12) + 1
		hour := rng.Intn(12) + 1
		minute := rng.Intn(60)
		ampm := "AM"
		if rng.Intn(2) == 1 {
			ampm = "PM"
		}
		author := authors[rng.Intn(numAuthors)]

		var text string
		switch rng.Intn(10) {
		case 0:
			text = "<Media omitted>"
		case 1:
			text = emojis[rng.Intn(len(emojis))]
		default:
			nWords := rng.Intn(8) + 1
			parts := make([]string, nWords)
			for j := range parts {
				parts[j] = words[rng.Intn(len(words))]
			}
			text = strings.Join(parts, " ")
		}

		fmt.Fprintf(&sb, "%d/%d/24, %d:%02d %s - %s: %s\n", month, day, hour, minute, ampm, author, text)
	}
	return sb.String()
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-28s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 94))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-28s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 94))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doText(rng *rand.Rand, content string) result {
	body := map[string]string{"content": content}
	data, _ := json.Marshal(body)

	target := baseURL + "/api/analyze/text"
	if rng.Float64() < 0.3 {
		target += fmt.Sprintf("?k=%d", rng.Intn(20)+1)
	}

	start := time.Now()
	resp, err := httpClient.Post(target, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /api/analyze/text", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /api/analyze/text", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doUpload(content string) result {
	form := url.Values{"content": {content}}

	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/api/analyze/upload",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /api/analyze/upload", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /api/analyze/upload", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doFile(content string) result {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("chatFile", "chat.txt")
	if err != nil {
		return result{"POST /api/analyze", 0, 0, true}
	}
	fw.Write([]byte(content))
	w.Close()

	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/api/analyze", w.FormDataContentType(), &buf)
	lat := time.Since(start)
	if err != nil {
		return result{"POST /api/analyze", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /api/analyze", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doHealth() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/health")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /health", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /health", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
