package task

// Default daily window.
const (
	DefaultWakeUpTime = "08:00"
	DefaultSleepTime  = "22:00"
)

// DailySettings holds the user's daily scheduling window.
type DailySettings struct {
	WakeUpTime string // "HH:MM"
	SleepTime  string // "HH:MM"
}

// DefaultSettings returns the stock wake/sleep window.
func DefaultSettings() DailySettings {
	return DailySettings{
		WakeUpTime: DefaultWakeUpTime,
		SleepTime:  DefaultSleepTime,
	}
}

// Window returns the wake and sleep times in minutes since midnight.
// A sleep time at or before the wake time is read as past midnight, so
// wake 08:00 / sleep 02:00 yields an 18 hour window ending at minute 1560.
func (s DailySettings) Window() (wake, sleep int) {
	wake = TimeToMinutes(s.WakeUpTime)
	sleep = TimeToMinutes(s.SleepTime)
	if sleep <= wake {
		sleep += 24 * 60
	}
	return wake, sleep
}

// WindowMinutes returns the length of the daily window in minutes.
func (s DailySettings) WindowMinutes() int {
	wake, sleep := s.Window()
	return sleep - wake
}
