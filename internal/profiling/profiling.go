package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU profiler for frame-level insights.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("renderer.RenderScript")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	for k := range frameTotals {
		delete(frameTotals, k)
	}
	mu.Unlock()
}

// TopN formats the top N durations recorded during the current frame,
// largest first, e.g. "renderer.RenderScript:4.2ms, registry.BindAll:0.1ms".
func TopN(n int) string {
	mu.Lock()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(frameTotals))
	for k, v := range frameTotals {
		list = append(list, pair{name: k, dur: v})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms", list[i].name, ms))
	}
	return strings.Join(parts, ", ")
}
