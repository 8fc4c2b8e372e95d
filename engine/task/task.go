package task

import (
	"fmt"
	"time"
)

// JobTiming records how long one job took during the most recent Run.
type JobTiming struct {
	// Name is the job's diagnostic name.
	Name string
	// Duration is the wall time the job's Run took.
	Duration time.Duration
}

// Task is an ordered sequence of jobs executed once per frame. Insertion
// order is the execution order and defines the chain of data dependencies;
// jobs are assembled once and reused every frame. A Task must not be run
// concurrently from two goroutines; independent Task instances that share
// no Varying slots may run in parallel.
type Task[C any] struct {
	jobs []*Job[C]

	timingEnabled bool
	timings       []JobTiming
}

// NewTask creates a Task containing the given jobs, in order.
//
// Parameters:
//   - jobs: the initial job chain, in execution order
//
// Returns:
//   - *Task[C]: the new task
func NewTask[C any](jobs ...*Job[C]) *Task[C] {
	t := &Task[C]{}
	for _, j := range jobs {
		t.AddJob(j)
	}
	return t
}

// AddJob appends a job to the end of the chain and returns it, so the
// caller can immediately wire its output slot into the next job.
//
// Parameters:
//   - job: the job to append (must not be nil)
//
// Returns:
//   - *Job[C]: the appended job
func (t *Task[C]) AddJob(job *Job[C]) *Job[C] {
	if job == nil {
		panic("task: AddJob requires a non-nil job")
	}
	t.jobs = append(t.jobs, job)
	return job
}

// Jobs returns a copy of the job chain in execution order.
//
// Returns:
//   - []*Job[C]: the jobs
func (t *Task[C]) Jobs() []*Job[C] {
	out := make([]*Job[C], len(t.jobs))
	copy(out, t.jobs)
	return out
}

// Len returns the number of jobs in the chain.
//
// Returns:
//   - int: the job count
func (t *Task[C]) Len() int {
	return len(t.jobs)
}

// Run executes every job in insertion order, synchronously, to completion.
// No job is skipped or reordered; a panic from stage logic propagates to
// the caller with jobs already run having produced their side effects.
//
// Parameters:
//   - ctx: the frame context handed to every job
func (t *Task[C]) Run(ctx C) {
	if !t.timingEnabled {
		for _, j := range t.jobs {
			j.Run(ctx)
		}
		return
	}

	t.timings = t.timings[:0]
	for _, j := range t.jobs {
		start := time.Now()
		j.Run(ctx)
		t.timings = append(t.timings, JobTiming{Name: j.Name(), Duration: time.Since(start)})
	}
}

// EnableTiming turns per-job wall-time capture on or off. Timings from the
// most recent Run are available through JobTimings.
//
// Parameters:
//   - enabled: true to capture per-job timings
func (t *Task[C]) EnableTiming(enabled bool) {
	t.timingEnabled = enabled
}

// JobTimings returns a copy of the per-job timings captured during the most
// recent Run with timing enabled.
//
// Returns:
//   - []JobTiming: the captured timings, in execution order
func (t *Task[C]) JobTimings() []JobTiming {
	out := make([]JobTiming, len(t.timings))
	copy(out, t.timings)
	return out
}

// Validate walks the chain in order and verifies that every job's input
// slot is produced by an earlier job's output, so a mis-wired pipeline is
// rejected at assembly time instead of reading a stale or never-written
// slot mid-frame.
//
// Returns:
//   - error: a description of the first unwired input found, or nil
func (t *Task[C]) Validate() error {
	written := make(map[*varyingCell]string, len(t.jobs))
	for _, j := range t.jobs {
		if in := j.Input(); !in.IsEmpty() {
			if _, ok := written[in.cell]; !ok {
				return fmt.Errorf("task: job %q reads a %s slot no prior job writes",
					j.Name(), in.TypeName())
			}
		}
		if out := j.Output(); !out.IsEmpty() {
			written[out.cell] = j.Name()
		}
	}
	return nil
}
