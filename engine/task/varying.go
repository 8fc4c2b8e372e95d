// package task implements the per-frame dataflow core of the render engine:
// type-erased Varying slots, Jobs wrapping one stage each in one of four
// input/output shapes, and Tasks that run an ordered job chain once per
// frame. The package is generic over the context type, so it carries no
// rendering types of its own.
package task

import "fmt"

// varyingCell is the shared storage behind a Varying. The payload is always
// held as a *T for the type bound at construction, so every typed access is
// a checked assertion against that binding.
type varyingCell struct {
	value     any
	typeName  string
	consumers []string
}

// Varying is a type-erased data slot connecting two pipeline stages. The
// payload type is bound irrevocably at construction; all copies of a Varying
// share the same underlying cell, so a value written through one copy is
// observed through every other. The zero Varying is the empty slot.
type Varying struct {
	cell *varyingCell
}

// NewVarying creates a slot bound to the payload type T, holding the given
// initial value.
//
// Parameters:
//   - initial: the initial payload value
//
// Returns:
//   - Varying: the new slot
func NewVarying[T any](initial T) Varying {
	v := initial
	return Varying{cell: &varyingCell{
		value:    &v,
		typeName: fmt.Sprintf("%T", initial),
	}}
}

// IsEmpty reports whether the slot is the empty Varying (no bound payload).
//
// Returns:
//   - bool: true if no payload type is bound
func (v Varying) IsEmpty() bool {
	return v.cell == nil
}

// TypeName returns the name of the bound payload type, or "" for the empty
// slot. Diagnostic use only.
//
// Returns:
//   - string: the bound type name
func (v Varying) TypeName() string {
	if v.cell == nil {
		return ""
	}
	return v.cell.typeName
}

// Consumers returns the names of the jobs that read this slot, in wiring
// order. Diagnostic use only; the list never controls lifetime.
//
// Returns:
//   - []string: the consumer job names
func (v Varying) Consumers() []string {
	if v.cell == nil {
		return nil
	}
	out := make([]string, len(v.cell.consumers))
	copy(out, v.cell.consumers)
	return out
}

// addConsumer records a consuming job name on the slot.
func (v Varying) addConsumer(name string) {
	v.cell.consumers = append(v.cell.consumers, name)
}

// Get returns the slot's current value. T must be the exact payload type
// bound at construction; any other type panics with a diagnostic naming
// both types.
//
// Parameters:
//   - v: the slot to read
//
// Returns:
//   - T: the current payload value
func Get[T any](v Varying) T {
	return *payload[T](v, "Get")
}

// Edit returns a mutable pointer to the slot's value, for in-place writes
// that remain visible to every holder of the slot. T must be the exact
// payload type bound at construction; any other type panics with a
// diagnostic naming both types.
//
// Parameters:
//   - v: the slot to edit
//
// Returns:
//   - *T: a pointer to the payload value
func Edit[T any](v Varying) *T {
	return payload[T](v, "Edit")
}

// payload resolves the typed storage behind a slot, failing fast on an
// empty slot or a type mismatch.
func payload[T any](v Varying, op string) *T {
	if v.cell == nil {
		panic(fmt.Sprintf("task: %s on empty varying", op))
	}
	p, ok := v.cell.value.(*T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("task: varying holds %s but %s requested %T", v.cell.typeName, op, zero))
	}
	return p
}

// holdsPayload reports whether the slot is bound to payload type T.
func holdsPayload[T any](v Varying) bool {
	if v.cell == nil {
		return false
	}
	_, ok := v.cell.value.(*T)
	return ok
}
