package rollbar

import "fmt"

// Level is the severity of a report. Levels are ordered, LevelDebug being
// the least severe and LevelCritical the most.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelWarning:  "warning",
	LevelError:    "error",
	LevelCritical: "critical",
}

// String returns the wire representation of the level, as expected by the
// Rollbar item API.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return fmt.Sprintf("level(%d)", int(l))
}

func (l Level) valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel returns the level for a wire string such as "warning".
func ParseLevel(s string) (Level, error) {
	for level, name := range levelNames {
		if name == s {
			return level, nil
		}
	}

	return 0, fmt.Errorf("unknown level %q", s)
}
