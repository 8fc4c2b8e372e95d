package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameLog is the test frame context: stages record their execution on it.
type frameLog struct {
	calls []string
}

type markStage struct{ name string }

func (s *markStage) Run(ctx *frameLog) {
	ctx.calls = append(ctx.calls, s.name)
}

type intSource struct{ value int }

func (s *intSource) Run(ctx *frameLog, out *int) {
	ctx.calls = append(ctx.calls, "source")
	*out = s.value
}

type intDoubler struct{}

func (s *intDoubler) Run(ctx *frameLog, in int, out *int) {
	ctx.calls = append(ctx.calls, "doubler")
	*out = in * 2
}

type intSink struct{ got []int }

func (s *intSink) Run(ctx *frameLog, in int) {
	ctx.calls = append(ctx.calls, "sink")
	s.got = append(s.got, in)
}

func TestVaryingCopiesShareOneCell(t *testing.T) {
	v := NewVarying(41)
	w := v

	*Edit[int](v) = 42
	assert.Equal(t, 42, Get[int](w))
	assert.Equal(t, "int", w.TypeName())
}

func TestVaryingTypeIsBoundAtConstruction(t *testing.T) {
	v := NewVarying(7)

	assert.PanicsWithValue(t,
		"task: varying holds int but Get requested string",
		func() { Get[string](v) })
	assert.PanicsWithValue(t,
		"task: varying holds int but Edit requested string",
		func() { Edit[string](v) })
}

func TestVaryingEmptyAccessPanics(t *testing.T) {
	var v Varying
	assert.True(t, v.IsEmpty())
	assert.PanicsWithValue(t, "task: Get on empty varying", func() { Get[int](v) })
}

func TestTaskRunsJobsInInsertionOrder(t *testing.T) {
	tk := NewTask(
		NewJob[*frameLog]("first", &markStage{name: "first"}),
		NewJob[*frameLog]("second", &markStage{name: "second"}),
		NewJob[*frameLog]("third", &markStage{name: "third"}),
	)

	ctx := &frameLog{}
	tk.Run(ctx)
	tk.Run(ctx)

	assert.Equal(t, []string{"first", "second", "third", "first", "second", "third"}, ctx.calls)
}

func TestJobChainFlowsThroughVaryings(t *testing.T) {
	src := &intSource{value: 21}
	sink := &intSink{}

	tk := NewTask[*frameLog]()
	srcJob := tk.AddJob(NewJobWithOutput[*frameLog, int]("source", src))
	dblJob := tk.AddJob(NewJobWithInputOutput[*frameLog, int, int]("doubler", &intDoubler{}, srcJob.Output()))
	tk.AddJob(NewJobWithInput[*frameLog, int]("sink", sink, dblJob.Output()))

	require.NoError(t, tk.Validate())

	ctx := &frameLog{}
	tk.Run(ctx)

	assert.Equal(t, []string{"source", "doubler", "sink"}, ctx.calls)
	assert.Equal(t, []int{42}, sink.got)

	// Output slots persist between frames and are rewritten in place.
	src.value = 3
	tk.Run(ctx)
	assert.Equal(t, []int{42, 6}, sink.got)
}

func TestJobShapesExposeTheirSlots(t *testing.T) {
	tk := NewTask[*frameLog]()
	noIO := tk.AddJob(NewJob[*frameLog]("mark", &markStage{name: "mark"}))
	out := tk.AddJob(NewJobWithOutput[*frameLog, int]("source", &intSource{}))

	assert.True(t, noIO.Input().IsEmpty())
	assert.True(t, noIO.Output().IsEmpty())
	assert.True(t, out.Input().IsEmpty())
	assert.False(t, out.Output().IsEmpty())
	assert.Equal(t, "int", out.Output().TypeName())
}

func TestInputWiringRejectsWrongPayloadType(t *testing.T) {
	stringSlot := NewVarying("not an int")

	assert.Panics(t, func() {
		NewJobWithInput[*frameLog, int]("sink", &intSink{}, stringSlot)
	})
	assert.Panics(t, func() {
		NewJobWithInput[*frameLog, int]("sink", &intSink{}, Varying{})
	})
}

func TestNilStagePanics(t *testing.T) {
	assert.Panics(t, func() { NewJob[*frameLog]("broken", nil) })
	assert.Panics(t, func() { NewTask[*frameLog]().AddJob(nil) })
}

func TestConsumersRecordWiringOrder(t *testing.T) {
	tk := NewTask[*frameLog]()
	srcJob := tk.AddJob(NewJobWithOutput[*frameLog, int]("source", &intSource{}))
	tk.AddJob(NewJobWithInput[*frameLog, int]("sinkA", &intSink{}, srcJob.Output()))
	tk.AddJob(NewJobWithInput[*frameLog, int]("sinkB", &intSink{}, srcJob.Output()))

	assert.Equal(t, []string{"sinkA", "sinkB"}, srcJob.Output().Consumers())
}

func TestValidateRejectsUnwiredInput(t *testing.T) {
	orphan := NewVarying(0)

	tk := NewTask[*frameLog]()
	tk.AddJob(NewJobWithInput[*frameLog, int]("sink", &intSink{}, orphan))

	err := tk.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `job "sink"`)
}

func TestValidateAcceptsProperChain(t *testing.T) {
	tk := NewTask[*frameLog]()
	srcJob := tk.AddJob(NewJobWithOutput[*frameLog, int]("source", &intSource{}))
	tk.AddJob(NewJobWithInput[*frameLog, int]("sink", &intSink{}, srcJob.Output()))
	assert.NoError(t, tk.Validate())
}

func TestJobTimingsCaptureEveryJob(t *testing.T) {
	tk := NewTask(
		NewJob[*frameLog]("first", &markStage{name: "first"}),
		NewJob[*frameLog]("second", &markStage{name: "second"}),
	)
	tk.EnableTiming(true)
	tk.Run(&frameLog{})

	timings := tk.JobTimings()
	require.Len(t, timings, 2)
	assert.Equal(t, "first", timings[0].Name)
	assert.Equal(t, "second", timings[1].Name)
}
