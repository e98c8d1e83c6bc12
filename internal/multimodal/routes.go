package multimodal

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/minatoaquaMK2/LightRAG/internal/auth"
	"github.com/minatoaquaMK2/LightRAG/internal/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler, guard *auth.Guard) {
	ws := new(restful.WebService)

	ws.
		Path("/multimodal").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Combined authorization runs before every multimodal route.
	ws.Filter(guard.Filter)

	ws.
		Route(ws.POST("/query").
			To(handler.Query).
			Doc("Run a multimodal query against the knowledge base").
			Metadata(restfulspec.KeyOpenAPITags, []string{"multimodal"}).
			Reads(MultimodalQueryRequest{}).
			Writes(MultimodalQueryResponse{}).
			Returns(200, "OK", MultimodalQueryResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(401, "Unauthorized", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/process-document").
			To(handler.ProcessDocument).
			Doc("Process a multimodal document already on the server filesystem").
			Metadata(restfulspec.KeyOpenAPITags, []string{"multimodal"}).
			Reads(DocumentProcessRequest{}).
			Writes(DocumentProcessResponse{}).
			Returns(200, "OK", DocumentProcessResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(401, "Unauthorized", middleware.ErrorResponse{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/upload-and-process").
			To(handler.UploadAndProcess).
			Consumes("multipart/form-data").
			Doc("Upload a multimodal document and process it in one step").
			Metadata(restfulspec.KeyOpenAPITags, []string{"multimodal"}).
			Writes(DocumentProcessResponse{}).
			Returns(200, "OK", DocumentProcessResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(401, "Unauthorized", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)

	// Health stays outside the guard so probes work without credentials.
	health := new(restful.WebService)

	health.
		Path("/health").
		Produces(restful.MIME_JSON)

	health.
		Route(health.GET("").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	container.Add(health)
}
