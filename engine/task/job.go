package task

import "fmt"

// Stage is the no-I/O stage shape: side effects only, nothing flows through
// slots.
type Stage[C any] interface {
	Run(ctx C)
}

// StageWithInput is the input-only stage shape: reads one slot.
type StageWithInput[C, I any] interface {
	Run(ctx C, input I)
}

// StageWithOutput is the output-only stage shape: writes one slot in place.
type StageWithOutput[C, O any] interface {
	Run(ctx C, output *O)
}

// StageWithInputOutput is the input+output stage shape: reads one slot and
// writes another (possibly the same cell further down a chain).
type StageWithInputOutput[C, I, O any] interface {
	Run(ctx C, input I, output *O)
}

// jobConcept is the shape-erased execution path behind a Job. Exactly one
// concrete concept is chosen per job at construction and never replaced.
type jobConcept[C any] interface {
	run(ctx C)
	input() Varying
	output() Varying
}

// Job is one named pipeline stage. Its shape — which of the four stage
// interfaces it wraps and which slots it touches — is fixed by the
// constructor used and never changes; Run dispatches to exactly that
// shape's execution path. Jobs raise no errors of their own: stage logic
// reports its failures to the context collaborator.
type Job[C any] struct {
	name    string
	concept jobConcept[C]
}

// Name returns the job's diagnostic name.
//
// Returns:
//   - string: the name given at construction
func (j *Job[C]) Name() string {
	return j.name
}

// Input returns the job's input slot, or the empty Varying for shapes
// without one. Diagnostic use.
//
// Returns:
//   - Varying: the input slot
func (j *Job[C]) Input() Varying {
	return j.concept.input()
}

// Output returns the job's output slot, or the empty Varying for shapes
// without one. Wire it as the next job's input to chain stages.
//
// Returns:
//   - Varying: the output slot
func (j *Job[C]) Output() Varying {
	return j.concept.output()
}

// Run executes the job's stage against the frame context, reading and
// writing its slots per the shape fixed at construction.
//
// Parameters:
//   - ctx: the frame context passed through the whole chain
func (j *Job[C]) Run(ctx C) {
	j.concept.run(ctx)
}

// NewJob creates a no-I/O job.
//
// Parameters:
//   - name: the diagnostic name
//   - stage: the stage logic (must not be nil)
//
// Returns:
//   - *Job[C]: the new job
func NewJob[C any](name string, stage Stage[C]) *Job[C] {
	if stage == nil {
		panic(fmt.Sprintf("task: NewJob %q requires a non-nil stage", name))
	}
	return &Job[C]{name: name, concept: &noIOConcept[C]{stage: stage}}
}

// NewJobWithInput creates an input-only job reading the given slot. The
// slot must already be bound to payload type I; a mis-typed or empty slot
// panics here, at assembly time, rather than mid-frame.
//
// Parameters:
//   - name: the diagnostic name
//   - stage: the stage logic (must not be nil)
//   - input: the slot the stage reads
//
// Returns:
//   - *Job[C]: the new job
func NewJobWithInput[C, I any](name string, stage StageWithInput[C, I], input Varying) *Job[C] {
	if stage == nil {
		panic(fmt.Sprintf("task: NewJobWithInput %q requires a non-nil stage", name))
	}
	bindInput[I](input, name)
	return &Job[C]{name: name, concept: &inputConcept[C, I]{stage: stage, in: input}}
}

// NewJobWithOutput creates an output-only job. The output slot is allocated
// here, initialized to O's zero value, so it reads well-defined even before
// the first frame writes it.
//
// Parameters:
//   - name: the diagnostic name
//   - stage: the stage logic (must not be nil)
//
// Returns:
//   - *Job[C]: the new job
func NewJobWithOutput[C, O any](name string, stage StageWithOutput[C, O]) *Job[C] {
	if stage == nil {
		panic(fmt.Sprintf("task: NewJobWithOutput %q requires a non-nil stage", name))
	}
	var zero O
	return &Job[C]{name: name, concept: &outputConcept[C, O]{stage: stage, out: NewVarying(zero)}}
}

// NewJobWithInputOutput creates an input+output job reading the given slot
// and writing a freshly allocated output slot initialized to O's zero
// value. The input slot must already be bound to payload type I.
//
// Parameters:
//   - name: the diagnostic name
//   - stage: the stage logic (must not be nil)
//   - input: the slot the stage reads
//
// Returns:
//   - *Job[C]: the new job
func NewJobWithInputOutput[C, I, O any](name string, stage StageWithInputOutput[C, I, O], input Varying) *Job[C] {
	if stage == nil {
		panic(fmt.Sprintf("task: NewJobWithInputOutput %q requires a non-nil stage", name))
	}
	bindInput[I](input, name)
	var zero O
	return &Job[C]{name: name, concept: &inputOutputConcept[C, I, O]{
		stage: stage,
		in:    input,
		out:   NewVarying(zero),
	}}
}

// bindInput validates an input slot's binding against the declared payload
// type and records the job as a consumer.
func bindInput[I any](input Varying, jobName string) {
	if input.IsEmpty() {
		panic(fmt.Sprintf("task: job %q wired to an empty input varying", jobName))
	}
	if !holdsPayload[I](input) {
		var zero I
		panic(fmt.Sprintf("task: job %q expects input %T but varying holds %s",
			jobName, zero, input.TypeName()))
	}
	input.addConsumer(jobName)
}

type noIOConcept[C any] struct {
	stage Stage[C]
}

func (c *noIOConcept[C]) run(ctx C)       { c.stage.Run(ctx) }
func (c *noIOConcept[C]) input() Varying  { return Varying{} }
func (c *noIOConcept[C]) output() Varying { return Varying{} }

type inputConcept[C, I any] struct {
	stage StageWithInput[C, I]
	in    Varying
}

func (c *inputConcept[C, I]) run(ctx C)       { c.stage.Run(ctx, Get[I](c.in)) }
func (c *inputConcept[C, I]) input() Varying  { return c.in }
func (c *inputConcept[C, I]) output() Varying { return Varying{} }

type outputConcept[C, O any] struct {
	stage StageWithOutput[C, O]
	out   Varying
}

func (c *outputConcept[C, O]) run(ctx C)       { c.stage.Run(ctx, Edit[O](c.out)) }
func (c *outputConcept[C, O]) input() Varying  { return Varying{} }
func (c *outputConcept[C, O]) output() Varying { return c.out }

type inputOutputConcept[C, I, O any] struct {
	stage StageWithInputOutput[C, I, O]
	in    Varying
	out   Varying
}

func (c *inputOutputConcept[C, I, O]) run(ctx C) {
	c.stage.Run(ctx, Get[I](c.in), Edit[O](c.out))
}
func (c *inputOutputConcept[C, I, O]) input() Varying  { return c.in }
func (c *inputOutputConcept[C, I, O]) output() Varying { return c.out }
