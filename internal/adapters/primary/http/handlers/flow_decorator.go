package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/avibiton/waltz/internal/adapters/primary/http/dto"
	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
)

func (h *Handler) SummarizeAllDecorators(c *gin.Context) {
	summaries, err := h.decoratorSvc.SummarizeAll(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("summarize all decorators failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summariesResponse(summaries))
}

func (h *Handler) SummarizeInboundDecorators(c *gin.Context) {
	var req dto.SelectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries, err := h.decoratorSvc.SummarizeInbound(c.Request.Context(), ports.IDSelector(req.AppIDs...))
	if err != nil {
		log.WithError(err).Error("summarize inbound decorators failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summariesResponse(summaries))
}

func (h *Handler) SummarizeOutboundDecorators(c *gin.Context) {
	var req dto.SelectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries, err := h.decoratorSvc.SummarizeOutbound(c.Request.Context(), ports.IDSelector(req.AppIDs...))
	if err != nil {
		log.WithError(err).Error("summarize outbound decorators failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summariesResponse(summaries))
}

func (h *Handler) GroupFlowIDsByDataType(c *gin.Context) {
	var req dto.SelectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grouped, err := h.decoratorSvc.FlowIDsByDataTypeAndDirection(c.Request.Context(), ports.IDSelector(req.AppIDs...))
	if err != nil {
		log.WithError(err).Error("group flow ids by data type failed")
		mapDomainError(c, err)
		return
	}

	items := dto.ToDataTypeDirectionGroups(grouped)
	c.JSON(http.StatusOK, dto.ListDataTypeDirectionGroupsResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) SearchDecorators(c *gin.Context) {
	var req dto.DecoratorSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decorators, err := h.decoratorSvc.FindByFlowIDs(c.Request.Context(), req.FlowIDs)
	if err != nil {
		log.WithError(err).Error("search decorators failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.FlowDecoratorResponse, 0, len(decorators))
	for _, decorator := range decorators {
		items = append(items, dto.ToFlowDecoratorResponse(decorator))
	}

	c.JSON(http.StatusOK, dto.ListFlowDecoratorsResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) UpdateDecoratorRatings(c *gin.Context) {
	var req dto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := domain.ParseAuthoritativenessRating(req.Rating)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	if len(req.DataTypeIDs) == 0 && len(req.FlowIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingCondition.Error()})
		return
	}

	conditions := make([]ports.Condition, 0, 2)
	if len(req.DataTypeIDs) > 0 {
		conditions = append(conditions, ports.And{Conditions: []ports.Condition{
			ports.Eq{Field: ports.FieldDecoratorKind, Value: domain.EntityKindDataType},
			ports.InIDs(ports.FieldDecoratorID, req.DataTypeIDs),
		}})
	}
	if len(req.FlowIDs) > 0 {
		conditions = append(conditions, ports.InIDs(ports.FieldFlowID, req.FlowIDs))
	}

	var condition ports.Condition = ports.And{Conditions: conditions}
	if len(conditions) == 1 {
		condition = conditions[0]
	}

	updated, err := h.decoratorSvc.UpdateRatings(c.Request.Context(), rating, condition)
	if err != nil {
		log.WithError(err).Error("update decorator ratings failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateRatingResponse{Updated: updated})
}

func (h *Handler) DeleteFlowDecorators(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flow id"})
		return
	}

	deleted, err := h.decoratorSvc.RemoveForFlow(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("delete flow decorators failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteDecoratorsResponse{Deleted: deleted})
}

func summariesResponse(summaries []domain.DecoratorRatingSummary) dto.ListDecoratorSummariesResponse {
	items := make([]dto.DecoratorRatingSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, dto.ToDecoratorRatingSummaryResponse(summary))
	}
	return dto.ListDecoratorSummariesResponse{
		Items: items,
		Total: len(items),
	}
}
