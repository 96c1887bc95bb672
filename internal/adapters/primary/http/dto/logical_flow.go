package dto

import (
	"time"

	"github.com/avibiton/waltz/internal/core/domain"
)

// ============================================================================
// Logical Flow DTOs
// ============================================================================

type LogicalFlowResponse struct {
	ID              int64              `json:"id"`
	Source          EntityReferenceDTO `json:"source"`
	Target          EntityReferenceDTO `json:"target"`
	LifecycleStatus string             `json:"lifecycle_status"`
	IsRemoved       bool               `json:"is_removed"`
	Provenance      string             `json:"provenance"`
	CreatedAt       time.Time          `json:"created_at"`
	LastUpdatedAt   time.Time          `json:"last_updated_at"`
	LastUpdatedBy   string             `json:"last_updated_by"`
}

type ListLogicalFlowsResponse struct {
	Items []LogicalFlowResponse `json:"items"`
	Total int                   `json:"total"`
}

func ToLogicalFlowResponse(flow *domain.LogicalFlow) LogicalFlowResponse {
	return LogicalFlowResponse{
		ID:              flow.ID,
		Source:          ToEntityReferenceDTO(flow.Source),
		Target:          ToEntityReferenceDTO(flow.Target),
		LifecycleStatus: string(flow.LifecycleStatus),
		IsRemoved:       flow.IsRemoved,
		Provenance:      flow.Provenance,
		CreatedAt:       flow.CreatedAt,
		LastUpdatedAt:   flow.LastUpdatedAt,
		LastUpdatedBy:   flow.LastUpdatedBy,
	}
}
