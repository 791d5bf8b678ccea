package model

import (
	"what-if-engine/internal/format"
	"what-if-engine/internal/jsonpatch"
)

type ActionResponse struct {
	Metadata ActionMetadata `json:"metadata"`
	Result   ActionResult   `json:"result"`
}

type ActionMetadata struct {
	BatchID     string `json:"batch_id"`
	SessionID   string `json:"session_id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	DurationMs  int64  `json:"duration_ms"`
	Outcome     string `json:"outcome"`
}

type ActionResult struct {
	Messages   []Message         `json:"messages"`
	Actions    []ProcessedAction `json:"actions"`
	Session    SessionView       `json:"session"`
	StatePatch jsonpatch.Patch   `json:"state_patch"`
}

type ProcessedAction struct {
	Action         Action `json:"action"`
	MessageIndexes []int  `json:"message_indexes,omitempty"`
}

type EvaluateResponse struct {
	Scenario string       `json:"scenario"`
	Input    any          `json:"input"`
	Clamped  bool         `json:"clamped"`
	Results  format.Table `json:"results"`
	Messages []Message    `json:"messages"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
