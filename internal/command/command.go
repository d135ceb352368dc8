// Package command applies the line protocol's short tokens to the system
// state. Parsing mechanics live with the transport; this package owns the
// effects. Tokens are case-sensitive; anything unrecognized is a no-op.
package command

import (
	"github.com/rs/zerolog/log"

	"github.com/smartroom/controller/internal/model"
	"github.com/smartroom/controller/internal/state"
)

// Protocol tokens.
const (
	TokModeAuto       = "MA"
	TokModeManual     = "ML"
	TokLEDOn          = "LO"
	TokLEDOff         = "LOF"
	TokNightStartInc  = "SNI"
	TokNightStartDec  = "SND"
	TokNightEndInc    = "SI"
	TokNightEndDec    = "SD"
	TokInterval1000   = "I"
	TokInterval2500   = "I2"
	TokInterval5000   = "I5"
	TokInterval10000  = "I1"
)

// Apply executes one token against the state. Returns false for unrecognized
// tokens, which are ignored by design. Night-window tokens adjust the
// committed window directly; they bypass the on-device editor.
func Apply(token string, st *state.SystemState) bool {
	switch token {
	case TokModeAuto:
		st.SetMode(model.ModeAuto)
	case TokModeManual:
		st.SetMode(model.ModeManual)
	case TokLEDOn:
		st.ManualLED = true
	case TokLEDOff:
		st.ManualLED = false
	case TokNightStartInc:
		st.NightWindow.StartHour = model.WrapHour(st.NightWindow.StartHour + 1)
	case TokNightStartDec:
		st.NightWindow.StartHour = model.WrapHour(st.NightWindow.StartHour - 1)
	case TokNightEndInc:
		st.NightWindow.EndHour = model.WrapHour(st.NightWindow.EndHour + 1)
	case TokNightEndDec:
		st.NightWindow.EndHour = model.WrapHour(st.NightWindow.EndHour - 1)
	case TokInterval1000:
		st.ReportIntervalMs = 1000
	case TokInterval2500:
		st.ReportIntervalMs = 2500
	case TokInterval5000:
		st.ReportIntervalMs = 5000
	case TokInterval10000:
		st.ReportIntervalMs = 10000
	default:
		log.Debug().Str("token", token).Msg("Ignoring unrecognized command")
		return false
	}
	log.Info().Str("token", token).Msg("Command applied")
	return true
}
