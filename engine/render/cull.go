package render

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/task"
)

// CullItems filters the candidate list down to the bounds passing the
// frame's visibility test. Input order is preserved, so the stage's output
// is deterministic whether the tests run serially or on the worker pool.
type CullItems struct {
	// cullPool fans the per-bound visibility tests out across goroutines
	// for large candidate lists. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	cullPool          worker.DynamicWorkerPool
	cullWorkers       int
	parallelThreshold int

	visible []bool // reusable visibility flags, resized per frame
}

var _ task.StageWithInputOutput[Context, scene.ItemBounds, scene.ItemBounds] = &CullItems{}

// NewCullItems creates a cull stage configured with the provided options.
//
// Parameters:
//   - options: functional options to further configure the stage
//
// Returns:
//   - *CullItems: the new stage
func NewCullItems(options ...CullItemsBuilderOption) *CullItems {
	c := &CullItems{
		cullWorkers:       max(runtime.NumCPU()-1, 1),
		parallelThreshold: 1024,
	}
	for _, option := range options {
		option(c)
	}

	// Initialize the pool after options so WithCullWorkers can override the
	// default. Queue size of 256 accommodates typical chunk counts with headroom.
	c.cullPool = worker.NewDynamicWorkerPool(c.cullWorkers, 256, 1*time.Second)
	return c
}

// Run tests every candidate bound against the frame's visibility predicate
// and writes the survivors, in input order, to the output slot.
func (c *CullItems) Run(ctx Context, in scene.ItemBounds, out *scene.ItemBounds) {
	*out = (*out)[:0]
	rctx := ctx.Render

	if len(in) < c.parallelThreshold {
		for _, ib := range in {
			if rctx.CullTest(ib.Bound) {
				*out = append(*out, ib)
			}
		}
		rctx.ItemsCulled += len(in) - len(*out)
		return
	}

	if cap(c.visible) < len(in) {
		c.visible = make([]bool, len(in))
	}
	visible := c.visible[:len(in)]

	// Parallel phase computes independent flags only; the serial compaction
	// below keeps the output in input order. A WaitGroup provides the
	// per-frame barrier since pool.Wait() blocks until workers idle-exit,
	// which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	chunk := (len(in) + c.cullWorkers - 1) / c.cullWorkers
	taskID := 0
	for start := 0; start < len(in); start += chunk {
		end := min(start+chunk, len(in))
		wg.Add(1)
		lo, hi := start, end
		id := taskID
		taskID++
		c.cullPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					visible[i] = rctx.CullTest(in[i].Bound)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i := range in {
		if visible[i] {
			*out = append(*out, in[i])
		}
	}
	rctx.ItemsCulled += len(in) - len(*out)
}
