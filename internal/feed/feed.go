// Package feed emits the one-line status reports consumed by the serial
// companion and the MQTT bridge.
package feed

import (
	"fmt"

	"github.com/smartroom/controller/internal/model"
)

// Publisher delivers one status line per report cadence. Implementations
// must not block the control loop for long; errors are logged, never fatal.
type Publisher interface {
	Publish(line string) error
	Close() error
}

// FormatStatusLine renders the newline-terminated status line:
//
//	DATA,t=23.5,h=45.0,ldr=512,time=14:03:22,mode=AUTO,led=1,buzz=0,int=1000,nst=22,nend=6
//
// led and buzz are the post-alarm-override output flags.
func FormatStatusLine(s model.Snapshot) string {
	return fmt.Sprintf("DATA,t=%.1f,h=%.1f,ldr=%d,time=%s,mode=%s,led=%d,buzz=%d,int=%d,nst=%d,nend=%d\n",
		s.Readings.TempC,
		s.Readings.Humidity,
		s.Readings.Light,
		s.WallTime.Format("15:04:05"),
		s.Mode,
		boolFlag(s.LEDOn),
		boolFlag(s.BuzzerOn),
		s.ReportIntervalMs,
		s.NightWindow.StartHour,
		s.NightWindow.EndHour,
	)
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
