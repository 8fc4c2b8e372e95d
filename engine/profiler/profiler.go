package profiler

import (
	"log"
	"runtime"
	"time"
)

// FrameStats carries one frame's pipeline counters into the profiler.
type FrameStats struct {
	// Fetched is the number of candidates the fetch stage produced.
	Fetched int
	// Culled is the number of candidates rejected by visibility.
	Culled int
	// Drawn is the number of draw submissions issued.
	Drawn int
	// Dropped is the number of items no material bucket matched.
	Dropped int
}

// Profiler tracks frame rate, per-frame pipeline counters, and memory
// statistics for performance monitoring. Outputs stats to the log at a
// configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	// Accumulated pipeline counters since the last log line.
	fetched int
	culled  int
	drawn   int
	dropped int
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
}

// Tick should be called once per frame with the frame's pipeline counters.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, per-frame drawn/culled/dropped averages, heap
// usage, allocation rate, GC count/pause times, total memory.
//
// Parameters:
//   - stats: the frame's pipeline counters
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(stats FrameStats) bool {
	p.frameCount++
	p.fetched += stats.Fetched
	p.culled += stats.Culled
	p.drawn += stats.Drawn
	p.dropped += stats.Dropped

	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed >= p.updateInterval {
		fps := float64(p.frameCount) / elapsed.Seconds()
		frames := float64(p.frameCount)

		runtime.ReadMemStats(&p.memStats)
		// Alloc: Bytes of allocated heap objects (live memory)
		// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
		// Sys: Total bytes of memory obtained from the OS (actual process footprint)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024

		// Calculate allocation rate (MB/sec)
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

		// Calculate GC pause stats (last pause and max recent pause)
		gcCount := p.memStats.NumGC
		var lastPauseUs, maxPauseUs uint64
		if gcCount > 0 {
			// PauseNs is a circular buffer of last 256 GC pauses
			lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

			// Find max pause since last tick
			startIdx := p.lastGCCount
			if gcCount-startIdx > 256 {
				startIdx = gcCount - 256
			}
			for i := startIdx; i < gcCount; i++ {
				pause := p.memStats.PauseNs[i%256] / 1000
				if pause > maxPauseUs {
					maxPauseUs = pause
				}
			}
		}

		log.Printf("[Profiler] FPS: %.2f | Drawn/f: %.1f | Culled/f: %.1f | Dropped/f: %.1f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			fps, float64(p.drawn)/frames, float64(p.culled)/frames, float64(p.dropped)/frames,
			allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

		p.frameCount = 0
		p.fetched = 0
		p.culled = 0
		p.drawn = 0
		p.dropped = 0
		p.lastTime = currentTime
		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
		return true
	}

	return false
}
