package dto

import (
	"sort"
	"time"

	"github.com/avibiton/waltz/internal/core/domain"
)

// ============================================================================
// Selector DTOs
// ============================================================================

// SelectorRequest scopes an aggregation to a set of application ids.
type SelectorRequest struct {
	AppIDs []int64 `json:"app_ids" binding:"required,min=1"`
}

// ============================================================================
// Decorator Summary DTOs
// ============================================================================

type EntityReferenceDTO struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

type DecoratorRatingSummaryResponse struct {
	Decorator EntityReferenceDTO `json:"decorator"`
	Rating    string             `json:"rating"`
	Count     int                `json:"count"`
}

type ListDecoratorSummariesResponse struct {
	Items []DecoratorRatingSummaryResponse `json:"items"`
	Total int                              `json:"total"`
}

func ToEntityReferenceDTO(ref domain.EntityReference) EntityReferenceDTO {
	return EntityReferenceDTO{
		Kind: string(ref.Kind),
		ID:   ref.ID,
	}
}

func ToDecoratorRatingSummaryResponse(summary domain.DecoratorRatingSummary) DecoratorRatingSummaryResponse {
	return DecoratorRatingSummaryResponse{
		Decorator: ToEntityReferenceDTO(summary.Decorator),
		Rating:    string(summary.Rating),
		Count:     summary.Count,
	}
}

// ============================================================================
// Decorator DTOs
// ============================================================================

type DecoratorSearchRequest struct {
	FlowIDs []int64 `json:"flow_ids" binding:"required,min=1"`
}

type FlowDecoratorResponse struct {
	ID            int64              `json:"id"`
	LogicalFlowID int64              `json:"logical_flow_id"`
	Decorator     EntityReferenceDTO `json:"decorator"`
	Rating        string             `json:"rating"`
	Provenance    string             `json:"provenance"`
	LastUpdatedAt time.Time          `json:"last_updated_at"`
	LastUpdatedBy string             `json:"last_updated_by"`
}

type ListFlowDecoratorsResponse struct {
	Items []FlowDecoratorResponse `json:"items"`
	Total int                     `json:"total"`
}

func ToFlowDecoratorResponse(decorator domain.LogicalFlowDecorator) FlowDecoratorResponse {
	return FlowDecoratorResponse{
		ID:            decorator.ID,
		LogicalFlowID: decorator.LogicalFlowID,
		Decorator:     ToEntityReferenceDTO(decorator.Decorator),
		Rating:        string(decorator.Rating),
		Provenance:    decorator.Provenance,
		LastUpdatedAt: decorator.LastUpdatedAt,
		LastUpdatedBy: decorator.LastUpdatedBy,
	}
}

// ============================================================================
// Rating Update DTOs
// ============================================================================

// UpdateRatingRequest scopes a bulk rating change. At least one of the
// scoping fields must be set; an unscoped update is rejected.
type UpdateRatingRequest struct {
	Rating      string  `json:"rating" binding:"required"`
	DataTypeIDs []int64 `json:"data_type_ids"`
	FlowIDs     []int64 `json:"flow_ids"`
}

type UpdateRatingResponse struct {
	Updated int64 `json:"updated"`
}

type DeleteDecoratorsResponse struct {
	Deleted int64 `json:"deleted"`
}

// ============================================================================
// Flow Direction Grouping DTOs
// ============================================================================

type DataTypeDirectionGroup struct {
	DataTypeID int64   `json:"data_type_id"`
	Direction  string  `json:"direction"`
	FlowIDs    []int64 `json:"flow_ids"`
}

type ListDataTypeDirectionGroupsResponse struct {
	Items []DataTypeDirectionGroup `json:"items"`
	Total int                      `json:"total"`
}

// ToDataTypeDirectionGroups flattens the grouped flow ids into a stable,
// sorted list for serialization.
func ToDataTypeDirectionGroups(grouped map[domain.DataTypeDirectionKey][]int64) []DataTypeDirectionGroup {
	groups := make([]DataTypeDirectionGroup, 0, len(grouped))
	for key, flowIDs := range grouped {
		groups = append(groups, DataTypeDirectionGroup{
			DataTypeID: key.DataTypeID,
			Direction:  string(key.Direction),
			FlowIDs:    flowIDs,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].DataTypeID != groups[j].DataTypeID {
			return groups[i].DataTypeID < groups[j].DataTypeID
		}
		return groups[i].Direction < groups[j].Direction
	})
	return groups
}
