package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/farhanashraf/domain-assistants/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/assistants").
			To(handler.ListAssistants).
			Doc("List available assistants").
			Metadata(restfulspec.KeyOpenAPITags, []string{"assistants"}).
			Writes([]AssistantInfo{}).
			Returns(200, "OK", []AssistantInfo{}))

	ws.
		Route(ws.POST("/assistants/{domain}/chat").
			To(handler.Chat).
			Doc("Send one message to an assistant").
			Metadata(restfulspec.KeyOpenAPITags, []string{"chat"}).
			Param(ws.PathParameter("domain", "Assistant domain (finance, health, travel)").DataType("string")).
			Reads(ChatRequest{}).
			Writes(ChatResponse{}).
			Returns(200, "OK", ChatResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Assistant Not Found", middleware.ErrorResponse{}).
			Returns(502, "Model Service Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
