package model

import json "github.com/goccy/go-json"

type ActionRequest struct {
	Actions []Action `json:"actions"`
	Format  string   `json:"format,omitempty"`
}

type Action struct {
	ActionID   string          `json:"action_id"`
	ActionName string          `json:"action_name"`
	Properties json.RawMessage `json:"properties,omitempty"`
}

type EvaluateRequest struct {
	Input  json.RawMessage `json:"input"`
	Format string          `json:"format,omitempty"`
}
