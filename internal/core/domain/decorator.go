package domain

import (
	"fmt"
	"time"
)

// ============================================================================
// Authoritativeness
// ============================================================================

// AuthoritativenessRating is the confidence/ownership classification carried
// by a decorator on a flow.
type AuthoritativenessRating string

const (
	RatingNoOpinion   AuthoritativenessRating = "NO_OPINION"
	RatingDiscouraged AuthoritativenessRating = "DISCOURAGED"
	RatingSecondary   AuthoritativenessRating = "SECONDARY"
	RatingPrimary     AuthoritativenessRating = "PRIMARY"
)

// IsValid checks if the rating is valid
func (r AuthoritativenessRating) IsValid() bool {
	switch r {
	case RatingNoOpinion, RatingDiscouraged, RatingSecondary, RatingPrimary:
		return true
	}
	return false
}

// ParseAuthoritativenessRating converts a stored column value into an
// AuthoritativenessRating.
func ParseAuthoritativenessRating(s string) (AuthoritativenessRating, error) {
	r := AuthoritativenessRating(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	return r, nil
}

// ============================================================================
// Entities
// ============================================================================

// LogicalFlowDecorator tags a logical flow with a decorating entity (in
// practice a data type) and its authoritativeness rating. A decorator belongs
// to exactly one flow.
type LogicalFlowDecorator struct {
	ID            int64                   `json:"id"`
	LogicalFlowID int64                   `json:"logical_flow_id"`
	Decorator     EntityReference         `json:"decorator"`
	Rating        AuthoritativenessRating `json:"rating"`
	Provenance    string                  `json:"provenance"`
	LastUpdatedAt time.Time               `json:"last_updated_at"`
	LastUpdatedBy string                  `json:"last_updated_by"`
}

// ============================================================================
// Derived Projections
// ============================================================================

// DecoratorRatingSummary is a derived, read-only aggregate: how many flows in
// some filtered set carry a given decorator at a given rating. The count
// reflects the rows satisfying the filter at query time; it is never
// persisted.
type DecoratorRatingSummary struct {
	Decorator EntityReference         `json:"decorator"`
	Rating    AuthoritativenessRating `json:"rating"`
	Count     int                     `json:"count"`
}

// DataTypeDirectionKey groups flow ids by the data type decorating them and
// the direction of the flow relative to a selector set.
type DataTypeDirectionKey struct {
	DataTypeID int64         `json:"data_type_id"`
	Direction  FlowDirection `json:"direction"`
}
