// Package handler exposes the scenario registry and session store over
// fasthttp.
package handler

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/fasthttp/router"
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"what-if-engine/internal/engine"
	"what-if-engine/internal/export"
	"what-if-engine/internal/format"
	"what-if-engine/internal/model"
	"what-if-engine/internal/scenario"
	"what-if-engine/internal/session"
)

type Handler struct {
	store  *session.Store
	logger *zap.Logger
	now    func() time.Time
	router *router.Router
}

func New(store *session.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{store: store, logger: logger, now: time.Now}

	r := router.New()
	r.GET("/health", h.health)
	r.GET("/categories", h.listCategories)
	r.GET("/scenarios", h.listScenarios)
	r.GET("/scenarios/{id}", h.getScenario)
	r.POST("/scenarios/{id}/evaluate", h.evaluate)
	r.POST("/sessions", h.createSession)
	r.GET("/sessions/{id}", h.getSession)
	r.DELETE("/sessions/{id}", h.deleteSession)
	r.POST("/sessions/{id}/actions", h.processActions)
	r.GET("/sessions/{id}/export", h.exportSession)
	r.GET("/sessions/{id}/clipboard", h.clipboard)
	r.NotFound = func(ctx *fasthttp.RequestCtx) {
		writeError(ctx, fasthttp.StatusNotFound, "Route not found")
	}
	r.MethodNotAllowed = func(ctx *fasthttp.RequestCtx) {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	}
	h.router = r

	return h
}

// Handle is the fasthttp.RequestHandler for the whole API.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	h.router.Handler(ctx)
	h.logger.Info("request",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
}

// pathID is the {id} segment of the matched route.
func pathID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue("id").(string)
	return id
}

func (h *Handler) health(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]any{"status": "ok", "sessions": h.store.Len()})
}

func (h *Handler) registry() *scenario.Registry {
	return h.store.Machine().Registry()
}

func (h *Handler) listCategories(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, engine.Categories(h.registry().Categories()))
}

func (h *Handler) listScenarios(ctx *fasthttp.RequestCtx) {
	filter := string(ctx.QueryArgs().Peek("category"))
	if filter == "" {
		filter = scenario.AllCategories
	}
	list, err := h.registry().List(filter)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, engine.Scenarios(list))
}

func (h *Handler) getScenario(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	sc, err := h.registry().Get(id)
	if err != nil {
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, engine.Scenario(sc))
}

// evaluate runs one scenario without a session. The input may be a JSON
// number or text; when omitted the scenario's default is used.
func (h *Handler) evaluate(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	sc, err := h.registry().Get(id)
	if err != nil {
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
		return
	}

	var req model.EvaluateRequest
	if body := bytes.TrimSpace(ctx.PostBody()); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	f, err := format.ByName(req.Format)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	in, err := decodeInput(sc, req.Input)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	ev, err := sc.Evaluate(in)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	msgs := []model.Message{}
	if ev.Clamped {
		msgs = append(msgs, model.Message{
			Level:   model.LevelWarning,
			Code:    model.CodeInputClamped,
			Message: fmt.Sprintf("Input %v is outside the allowed range; evaluated %v instead", ev.Requested.Number, ev.Input.Number),
		})
	}

	rv := engine.Results(h.registry(), ev, f)
	writeJSON(ctx, fasthttp.StatusOK, model.EvaluateResponse{
		Scenario: rv.Scenario,
		Input:    rv.Input,
		Clamped:  rv.Clamped,
		Results:  rv.Results,
		Messages: msgs,
	})
}

func decodeInput(sc *scenario.Scenario, raw json.RawMessage) (scenario.Input, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return sc.Input.Default, nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return sc.Input.Parse(text)
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return scenario.Input{}, fmt.Errorf("%w: %s", scenario.ErrInvalidInput, raw)
	}
	return scenario.NumberInput(v), nil
}

func (h *Handler) createSession(ctx *fasthttp.RequestCtx) {
	f, ok := formatter(ctx)
	if !ok {
		return
	}
	id, s := h.store.Create()
	h.writeView(ctx, fasthttp.StatusCreated, id, s, f)
}

func (h *Handler) getSession(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	f, ok := formatter(ctx)
	if !ok {
		return
	}
	s, err := h.store.Get(id)
	if err != nil {
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
		return
	}
	h.writeView(ctx, fasthttp.StatusOK, id, s, f)
}

func (h *Handler) deleteSession(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if !h.store.Delete(id) {
		writeError(ctx, fasthttp.StatusNotFound, session.ErrNotFound.Error())
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) writeView(ctx *fasthttp.RequestCtx, status int, id string, s session.State, f format.Formatter) {
	view, err := engine.View(id, h.store.Machine(), s, f)
	if err != nil {
		h.logger.Error("render session", zap.String("session_id", id), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, status, view)
}

func (h *Handler) processActions(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	var req model.ActionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Actions) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one action is required")
		return
	}

	var resp *model.ActionResponse
	_, err := h.store.Update(id, func(s session.State) (session.State, error) {
		r, next, err := engine.Process(id, &req, h.store.Machine(), s)
		resp = r
		return next, err
	})
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
		return
	case errors.Is(err, format.ErrUnknownFormat):
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Error("process actions", zap.String("session_id", id), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Debug("actions processed",
		zap.String("session_id", id),
		zap.String("batch_id", resp.Metadata.BatchID),
		zap.String("outcome", resp.Metadata.Outcome),
		zap.Int("actions", len(resp.Result.Actions)),
	)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// evaluated loads a session whose results are showing. Exports are only
// offered for visible results.
func (h *Handler) evaluated(ctx *fasthttp.RequestCtx, id string) (*scenario.Scenario, *scenario.Evaluation, bool) {
	s, err := h.store.Get(id)
	if err != nil {
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
		return nil, nil, false
	}
	if !s.ResultsVisible() {
		writeError(ctx, fasthttp.StatusConflict, "No results to export; evaluate first")
		return nil, nil, false
	}
	sc, ev, err := h.store.Machine().Current(s)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return nil, nil, false
	}
	return sc, ev, true
}

func (h *Handler) exportSession(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	kind, err := export.ParseKind(string(ctx.QueryArgs().Peek("format")))
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	f, err := format.ByName(string(ctx.QueryArgs().Peek("results")))
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	sc, ev, ok := h.evaluated(ctx, id)
	if !ok {
		return
	}

	doc := export.NewDocument(sc, ev, f, h.now())
	var buf bytes.Buffer
	if err := export.Write(&buf, kind, doc); err != nil {
		h.logger.Error("export", zap.String("session_id", id), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName(kind)))
	ctx.SetContentType(kind.ContentType())
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(buf.Bytes())
}

func (h *Handler) clipboard(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	f, ok := formatter(ctx)
	if !ok {
		return
	}
	_, ev, ok := h.evaluated(ctx, id)
	if !ok {
		return
	}

	body, err := export.Clipboard(f.Format(ev.Results))
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

// formatter reads the ?format= query argument.
func formatter(ctx *fasthttp.RequestCtx) (format.Formatter, bool) {
	f, err := format.ByName(string(ctx.QueryArgs().Peek("format")))
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return nil, false
	}
	return f, true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":500,"message":"encode response"}`)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
