package domain

import (
	"fmt"
	"time"
)

// ============================================================================
// Flow Direction
// ============================================================================

// FlowDirection classifies a logical flow relative to a selector set of
// application ids.
type FlowDirection string

const (
	DirectionInbound  FlowDirection = "INBOUND"
	DirectionOutbound FlowDirection = "OUTBOUND"
	DirectionIntra    FlowDirection = "INTRA"
)

// IsValid checks if the direction is valid
func (d FlowDirection) IsValid() bool {
	return d == DirectionInbound || d == DirectionOutbound || d == DirectionIntra
}

// ParseFlowDirection converts a stored value into a FlowDirection.
func ParseFlowDirection(s string) (FlowDirection, error) {
	d := FlowDirection(s)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFlowDirection, s)
	}
	return d, nil
}

// DirectionFor classifies a flow against a selector set: INTRA when both
// endpoints are in the set, OUTBOUND when only the source is, INBOUND
// otherwise.
func DirectionFor(sourceSelected, targetSelected bool) FlowDirection {
	switch {
	case sourceSelected && targetSelected:
		return DirectionIntra
	case sourceSelected:
		return DirectionOutbound
	default:
		return DirectionInbound
	}
}

// ============================================================================
// Entities
// ============================================================================

// LogicalFlow is a directed data-movement relationship between two catalog
// entities.
type LogicalFlow struct {
	ID              int64                 `json:"id"`
	Source          EntityReference       `json:"source"`
	Target          EntityReference       `json:"target"`
	LifecycleStatus EntityLifecycleStatus `json:"entity_lifecycle_status"`
	IsRemoved       bool                  `json:"is_removed"`
	Provenance      string                `json:"provenance"`
	CreatedAt       time.Time             `json:"created_at"`
	LastUpdatedAt   time.Time             `json:"last_updated_at"`
	LastUpdatedBy   string                `json:"last_updated_by"`
}

// Removed reports whether the flow is excluded from not-removed aggregations.
func (f *LogicalFlow) Removed() bool {
	return f.IsRemoved || f.LifecycleStatus == LifecycleRemoved
}
