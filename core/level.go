package core

import "strings"

// Level represents the severity of a log message. Higher values are more
// severe and more likely to be logged.
type Level int32

const (
	// VerboseLevel for everything that does not fit a higher level.
	VerboseLevel Level = iota + 1
	// DebugLevel for the minimal set of events needed to reconstruct the
	// execution path.
	DebugLevel
	// InfoLevel for significant life cycle events and major state
	// transitions.
	InfoLevel
	// WarnLevel for events that usually should not happen and change
	// application behavior for some period of time.
	WarnLevel
	// ErrorLevel for unexpected events the process can recover from.
	ErrorLevel
	// FatalLevel for unexpected events the process cannot recover from.
	FatalLevel
)

// NoneLevel sits above every real level. Assigning it to a threshold
// disallows every message.
const NoneLevel Level = 0xFFFF

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case NoneLevel:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. Unknown strings parse to
// InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "VERBOSE":
		return VerboseLevel
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "FATAL":
		return FatalLevel
	case "NONE":
		return NoneLevel
	default:
		return InfoLevel
	}
}
