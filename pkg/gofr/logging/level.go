package logging

import (
	"encoding/json"
	"strings"
)

// Level orders entries by severity. A logger drops the entries below its level.
type Level int

const (
	DEBUG Level = iota + 1
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{DEBUG: "DEBUG", INFO: "INFO", WARN: "WARN", ERROR: "ERROR", FATAL: "FATAL"}

func (l Level) String() string {
	return levelNames[l]
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// GetLevelFromString parses a LOG_LEVEL value, ignoring case. Unknown values give INFO.
func GetLevelFromString(s string) Level {
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return l
		}
	}

	return INFO
}

// color is the 256-color code of the level tag on a terminal.
func (l Level) color() uint {
	const (
		red    = 31
		yellow = 33
		cyan   = 36
		white  = 37
	)

	switch l {
	case ERROR, FATAL:
		return red
	case WARN:
		return yellow
	case DEBUG, INFO:
		return cyan
	}

	return white
}
