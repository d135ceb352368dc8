// Package nighteditor implements the on-device state machine for editing the
// night window with the board's buttons. The night button advances the
// editor through its cycle; while editing, the mode and light buttons are
// repurposed as decrement and increment.
package nighteditor

import (
	"github.com/rs/zerolog/log"

	"github.com/smartroom/controller/internal/model"
)

type Editor struct {
	state model.EditState
	draft model.EditBuffer
}

func New() *Editor {
	return &Editor{state: model.EditOff}
}

func (e *Editor) State() model.EditState {
	return e.state
}

func (e *Editor) Draft() model.EditBuffer {
	return e.draft
}

// Editing reports whether the editor currently owns the mode/light buttons.
func (e *Editor) Editing() bool {
	return e.state != model.EditOff
}

// Advance moves the editor one step through Off -> EditingStart ->
// EditingEnd -> Off. Entering the editor seeds the draft from the committed
// window. Completing the cycle returns the draft as the window to commit;
// every other step returns nil. There is no cancel path.
func (e *Editor) Advance(committed model.NightWindow) *model.NightWindow {
	switch e.state {
	case model.EditOff:
		e.draft = model.EditBuffer{
			DraftStart: committed.StartHour,
			DraftEnd:   committed.EndHour,
		}
		e.state = model.EditEditingStart
		log.Info().Int("draft_start", e.draft.DraftStart).Int("draft_end", e.draft.DraftEnd).Msg("Night editor opened")
		return nil
	case model.EditEditingStart:
		e.state = model.EditEditingEnd
		return nil
	default: // EditingEnd
		e.state = model.EditOff
		w := model.NightWindow{StartHour: e.draft.DraftStart, EndHour: e.draft.DraftEnd}
		log.Info().Int("start_hour", w.StartHour).Int("end_hour", w.EndHour).Msg("Night window committed")
		return &w
	}
}

// Increment bumps the hour under edit by one, wrapping 23 -> 0. Returns
// false when the editor is closed.
func (e *Editor) Increment() bool {
	return e.adjust(1)
}

// Decrement lowers the hour under edit by one, wrapping 0 -> 23. Returns
// false when the editor is closed.
func (e *Editor) Decrement() bool {
	return e.adjust(-1)
}

func (e *Editor) adjust(delta int) bool {
	switch e.state {
	case model.EditEditingStart:
		e.draft.DraftStart = model.WrapHour(e.draft.DraftStart + delta)
	case model.EditEditingEnd:
		e.draft.DraftEnd = model.WrapHour(e.draft.DraftEnd + delta)
	default:
		return false
	}
	return true
}
