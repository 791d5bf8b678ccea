package model

type Message struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
	LevelInfo     = "INFO"
)

const (
	CodeUnknownAction      = "UNKNOWN_ACTION"
	CodeUnknownScenario    = "UNKNOWN_SCENARIO"
	CodeUnknownCategory    = "UNKNOWN_CATEGORY"
	CodeInvalidProperties  = "INVALID_PROPERTIES"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInputClamped       = "INPUT_CLAMPED"
	CodeSimulationComplete = "SIMULATION_COMPLETE"
	CodeBookmarkSaved      = "BOOKMARK_SAVED"
	CodeBookmarkRemoved    = "BOOKMARK_REMOVED"
)
