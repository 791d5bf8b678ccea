package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"what-if-engine/internal/actions"
	"what-if-engine/internal/format"
	"what-if-engine/internal/jsonpatch"
	"what-if-engine/internal/model"
	"what-if-engine/internal/session"
)

// Process runs a batch of actions against state. Actions are applied in
// order; the first CRITICAL message stops the batch and the state reached by
// the earlier actions is kept. The returned State is what the caller should
// store.
func Process(sessionID string, req *model.ActionRequest, m *session.Machine, state session.State) (*model.ActionResponse, session.State, error) {
	start := time.Now()

	f, err := format.ByName(req.Format)
	if err != nil {
		return nil, state, err
	}

	initialView, err := View(sessionID, m, state, f)
	if err != nil {
		return nil, state, err
	}

	var allMessages []model.Message
	var processed []model.ProcessedAction
	outcome := model.OutcomeSuccess
	hasCritical := false

	for _, act := range req.Actions {
		handler, ok := actions.Get(act.ActionName)
		if !ok {
			msg := model.Message{
				ID:      len(allMessages),
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownAction,
				Message: fmt.Sprintf("Unknown action: %s", act.ActionName),
			}
			allMessages = append(allMessages, msg)
			processed = append(processed, model.ProcessedAction{
				Action:         act,
				MessageIndexes: []int{msg.ID},
			})
			outcome = model.OutcomeFailure
			break
		}

		// Validate
		var msgIndexes []int
		for _, vm := range handler.Validate(m, state, &act) {
			vm.ID = len(allMessages)
			allMessages = append(allMessages, vm)
			msgIndexes = append(msgIndexes, vm.ID)
			if vm.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		if hasCritical {
			outcome = model.OutcomeFailure
			processed = append(processed, model.ProcessedAction{Action: act, MessageIndexes: msgIndexes})
			break
		}

		// Apply
		next, applyMsgs := handler.Apply(m, state, &act)
		for _, am := range applyMsgs {
			am.ID = len(allMessages)
			allMessages = append(allMessages, am)
			msgIndexes = append(msgIndexes, am.ID)
			if am.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		processed = append(processed, model.ProcessedAction{Action: act, MessageIndexes: msgIndexes})

		if hasCritical {
			outcome = model.OutcomeFailure
			break
		}
		state = next
	}

	endView, err := View(sessionID, m, state, f)
	if err != nil {
		return nil, state, err
	}
	patch, err := jsonpatch.Between(initialView, endView)
	if err != nil {
		return nil, state, fmt.Errorf("state patch: %w", err)
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.Message{}
	}
	if processed == nil {
		processed = []model.ProcessedAction{}
	}
	if patch == nil {
		patch = jsonpatch.Patch{}
	}

	return &model.ActionResponse{
		Metadata: model.ActionMetadata{
			BatchID:     uuid.New().String(),
			SessionID:   sessionID,
			StartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CompletedAt: now.Format(time.RFC3339),
			DurationMs:  elapsed.Milliseconds(),
			Outcome:     outcome,
		},
		Result: model.ActionResult{
			Messages:   allMessages,
			Actions:    processed,
			Session:    endView,
			StatePatch: patch,
		},
	}, state, nil
}
