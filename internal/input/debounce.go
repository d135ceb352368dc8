// Package input filters raw button levels into stable press events.
package input

import (
	"github.com/smartroom/controller/internal/clock"
	"github.com/smartroom/controller/internal/model"
)

// DebounceWindowMs is how long a raw level must hold before it is promoted
// to the stable level. Contact bounce settles well inside this.
const DebounceWindowMs = 35

// Button tracks one physical button through the debounce filter. Created
// once at startup and polled every fast-cadence tick.
type Button struct {
	id           model.ButtonID
	raw          bool
	stable       bool
	lastChangeMs uint64
}

func NewButton(id model.ButtonID) *Button {
	return &Button{id: id}
}

// Poll feeds one raw sample (true = pressed) at the given timebase value.
// A promotion from released to pressed yields exactly one PressEvent;
// releases and re-samples yield nil. Any raw change restarts the window, so
// no event can be emitted faster than the debounce window.
func (b *Button) Poll(raw bool, nowMs uint64) *model.PressEvent {
	if raw != b.raw {
		b.raw = raw
		b.lastChangeMs = nowMs
		return nil
	}
	if raw == b.stable {
		return nil
	}
	if clock.Elapsed(nowMs, b.lastChangeMs) < DebounceWindowMs {
		return nil
	}
	b.stable = raw
	if b.stable {
		return &model.PressEvent{Button: b.id, AtMs: nowMs}
	}
	return nil
}

// Stable returns the debounced logical level.
func (b *Button) Stable() bool {
	return b.stable
}
