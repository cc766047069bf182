package logger

import "strings"

const (
	// LevelDebug represents the debug severity level name.
	LevelDebug = "DEBUG"
	// LevelInfo represents the info severity level name.
	LevelInfo = "INFO"
	// LevelWarn represents the warning severity level name.
	LevelWarn = "WARN"
	// LevelError represents the error severity level name.
	LevelError = "ERROR"
)

var allowedLevels = map[string]string{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var allowedStatus = map[string]struct{}{
	"ok":    {},
	"fail":  {},
	"skip":  {},
	"error": {},
}

var allowedOutcome = map[string]struct{}{
	"ok":        {},
	"fail":      {},
	"rejected":  {},
	"cancelled": {},
}

func normalizeLevel(level string) string {
	if level == "" {
		return LevelInfo
	}
	if mapped, ok := allowedLevels[strings.ToLower(level)]; ok {
		return mapped
	}
	return strings.ToUpper(level)
}

// normalizeStatus lowercases known statuses and leaves unknown ones as written.
func normalizeStatus(status string) string {
	lowered := strings.ToLower(strings.TrimSpace(status))
	if _, ok := allowedStatus[lowered]; ok {
		return lowered
	}
	return status
}

func normalizeOutcome(outcome string) (string, bool) {
	outcome = strings.ToLower(strings.TrimSpace(outcome))
	_, ok := allowedOutcome[outcome]
	return outcome, ok
}

var defaultKeyOrder = []string{
	"ts",
	"level",
	"component",
	"event",
	"status",
	"rid",
	"rid_full",
	"ts_unix_nano",
	"update_id",
	"user_id",
	"chat_id",
	"chat_type",
	"handler",
	"command",
	"intent",
	"outcome",
	"duration_ms",
	"messages",
	"payload",
	"username",
	"mention",
	"group_id",
	"thread_id",
	"mode",
	"listen",
	"public_url",
	"commands",
	"users",
	"err",
	"error_kind",
	"err_code",
	"cause",
	"attempt",
	"delay_ms",
}
