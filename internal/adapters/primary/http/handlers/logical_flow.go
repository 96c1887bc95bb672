package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/avibiton/waltz/internal/adapters/primary/http/dto"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
)

func (h *Handler) GetFlow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flow id"})
		return
	}

	flow, err := h.flowSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLogicalFlowResponse(flow))
}

func (h *Handler) SearchFlows(c *gin.Context) {
	var req dto.SelectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flows, err := h.flowSvc.FindBySelector(c.Request.Context(), ports.IDSelector(req.AppIDs...))
	if err != nil {
		log.WithError(err).Error("search flows failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.LogicalFlowResponse, 0, len(flows))
	for i := range flows {
		items = append(items, dto.ToLogicalFlowResponse(&flows[i]))
	}

	c.JSON(http.StatusOK, dto.ListLogicalFlowsResponse{
		Items: items,
		Total: len(items),
	})
}
