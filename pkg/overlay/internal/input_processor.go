package internal

import (
	"github.com/BrandonKowalski/overlay/pkg/overlay/constants"
)

// Filter rewrites the value polled for a binding before it is diffed.
type Filter func(b *Binding, val int16) int16

// PrimeBinds records the current value of every binding without emitting events.
func PrimeBinds(src InputSource, binds []Binding) {
	for i := range binds {
		binds[i].Prime(binds[i].Read(src))
	}
}

// PollBinds polls every binding once, diffs it against its last seen value
// and emits the resulting event. Each binding yields at most one event per call.
func PollBinds(src InputSource, binds []Binding, filter Filter, emit func(b *Binding, ev Event)) {
	for i := range binds {
		b := &binds[i]
		val := b.Read(src)
		if filter != nil {
			val = filter(b, val)
		}
		if ev, ok := b.Update(val); ok {
			emit(b, ev)
		}
	}
}

// Processor turns the polled state of a fixed binding table into events for
// an intercepting screen. The first Poll after Reset only primes the cache so
// inputs still held from before the screen opened never fire.
type Processor struct {
	source  InputSource
	binds   []Binding
	primed  bool
	pointer struct {
		x, y int16
	}
}

// NewProcessor creates a processor over a copy of binds.
func NewProcessor(src InputSource, binds []Binding) *Processor {
	own := make([]Binding, len(binds))
	copy(own, binds)
	return &Processor{source: src, binds: own}
}

// Reset makes the next Poll prime instead of emitting.
func (p *Processor) Reset() {
	p.primed = false
}

// Binds returns the processor's binding table.
func (p *Processor) Binds() []Binding {
	return p.binds
}

// Poll emits the events for every input that changed since the previous call.
// Pointer coordinates are polled as a pair and produce a single MouseMove.
// It reports whether this call only primed the cache.
func (p *Processor) Poll(emit func(Event)) bool {
	px := p.source.Poll(0, constants.DevicePointer, 0, constants.PointerX)
	py := p.source.Poll(0, constants.DevicePointer, 0, constants.PointerY)

	if !p.primed {
		p.primed = true
		PrimeBinds(p.source, p.binds)
		p.pointer.x, p.pointer.y = px, py
		GetInternalLogger().Debug("Primed intercept bindings", "count", len(p.binds))
		return true
	}

	if px != p.pointer.x || py != p.pointer.y {
		p.pointer.x, p.pointer.y = px, py
		emit(Event{Type: constants.EventMouseMove, Value: int(px), Value2: int(py)})
	}

	PollBinds(p.source, p.binds, nil, func(_ *Binding, ev Event) {
		emit(ev)
	})
	return false
}

// Pointer returns the last polled absolute pointer position.
func (p *Processor) Pointer() (x, y int16) {
	return p.pointer.x, p.pointer.y
}
