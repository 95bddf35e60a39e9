package api

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/farhanashraf/domain-assistants/internal/agent"
	"github.com/farhanashraf/domain-assistants/internal/api/middleware"
	"github.com/farhanashraf/domain-assistants/internal/assistant"
	"github.com/rs/zerolog"
)

type Handler struct {
	registry *assistant.Registry
	pipeline *agent.Pipeline
	logger   *zerolog.Logger
}

func NewHandler(registry *assistant.Registry, pipeline *agent.Pipeline, logger *zerolog.Logger) *Handler {
	return &Handler{
		registry: registry,
		pipeline: pipeline,
		logger:   logger,
	}
}

// POST /api/v1/assistants/{domain}/chat
func (h *Handler) Chat(req *restful.Request, resp *restful.Response) {
	domain := req.PathParameter("domain")
	asst, ok := h.registry.Get(domain)
	if !ok {
		middleware.HandleError(resp, middleware.ErrUnknownAssistant, http.StatusNotFound)
		return
	}

	var chatRequest ChatRequest
	if err := req.ReadEntity(&chatRequest); err != nil {
		h.logger.Error().Err(err).Msg("failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if err := chatRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("domain", domain).
		Int("message_length", len(chatRequest.Message)).
		Msg("handling chat message")

	ctx := req.Request.Context()
	result, err := h.pipeline.HandleMessage(ctx, asst, chatRequest.Message)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadGateway)
		return
	}

	h.logger.Info().
		Str("request_id", result.RequestID).
		Str("domain", result.Domain).
		Str("outcome", string(result.Outcome)).
		Msg("chat message handled")

	_ = resp.WriteHeaderAndEntity(http.StatusOK, ChatResponse{
		RequestID: result.RequestID,
		Domain:    result.Domain,
		Outcome:   result.Outcome,
		Reply:     result.Reply,
		Model:     result.Model,
	})
}

// GET /api/v1/assistants
func (h *Handler) ListAssistants(req *restful.Request, resp *restful.Response) {
	assistants := h.registry.List()
	infos := make([]AssistantInfo, 0, len(assistants))
	for _, a := range assistants {
		infos = append(infos, AssistantInfo{Name: a.Name(), Welcome: a.Welcome()})
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, infos)
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	_ = resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
