package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/avibiton/waltz/internal/core/services"
)

type Handler struct {
	decoratorSvc *services.FlowDecoratorService
	flowSvc      *services.LogicalFlowService
}

func New(decoratorSvc *services.FlowDecoratorService, flowSvc *services.LogicalFlowService) *Handler {
	return &Handler{
		decoratorSvc: decoratorSvc,
		flowSvc:      flowSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Decorator Summaries
	r.GET("/decorator-summaries", h.SummarizeAllDecorators)
	r.POST("/decorator-summaries/inbound", h.SummarizeInboundDecorators)
	r.POST("/decorator-summaries/outbound", h.SummarizeOutboundDecorators)

	// Flow Id Grouping
	r.POST("/decorator-flow-ids", h.GroupFlowIDsByDataType)

	// Decorators
	r.POST("/decorators/search", h.SearchDecorators)
	r.PATCH("/decorators/rating", h.UpdateDecoratorRatings)

	// Logical Flows
	r.GET("/flows/:id", h.GetFlow)
	r.POST("/flows/search", h.SearchFlows)
	r.DELETE("/flows/:id/decorators", h.DeleteFlowDecorators)
}
