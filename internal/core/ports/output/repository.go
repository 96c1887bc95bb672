package ports

import (
	"context"

	"github.com/avibiton/waltz/internal/core/domain"
)

// FlowDecoratorRepository is the data-access surface for logical flow
// decorators and their derived aggregations.
type FlowDecoratorRepository interface {
	// SummarizeInboundForSelector counts decorators per (kind, id, rating)
	// over not-removed flows whose target id is in the selector.
	SummarizeInboundForSelector(ctx context.Context, selector Selector) ([]domain.DecoratorRatingSummary, error)

	// SummarizeOutboundForSelector is the source-side counterpart.
	SummarizeOutboundForSelector(ctx context.Context, selector Selector) ([]domain.DecoratorRatingSummary, error)

	// SummarizeForAll counts decorators over every not-removed flow.
	SummarizeForAll(ctx context.Context) ([]domain.DecoratorRatingSummary, error)

	// FindByFlowIDs returns the decorators attached to the given flows.
	FindByFlowIDs(ctx context.Context, flowIDs []int64) ([]domain.LogicalFlowDecorator, error)

	// RemoveAllDecoratorsForFlowIDs bulk-deletes every decorator of every
	// given flow and returns the number of deleted rows.
	//
	// Deprecated: use RemoveDecoratorsForFlow. The bulk form is kept with
	// its unconditional semantics for callers that still rely on it.
	RemoveAllDecoratorsForFlowIDs(ctx context.Context, flowIDs []int64) (int64, error)

	// RemoveDecoratorsForFlow deletes the decorators of a single flow and
	// returns the number of deleted rows.
	RemoveDecoratorsForFlow(ctx context.Context, flowID int64) (int64, error)

	// UpdateRatingsByCondition sets the rating on every decorator row
	// matching the condition and returns the number of updated rows.
	UpdateRatingsByCondition(ctx context.Context, rating domain.AuthoritativenessRating, condition Condition) (int64, error)

	// FlowIDsByDataTypeAndDirection groups the ids of not-removed flows
	// touching the selector by decorating data type and flow direction.
	FlowIDsByDataTypeAndDirection(ctx context.Context, selector Selector) (map[domain.DataTypeDirectionKey][]int64, error)
}

// LogicalFlowRepository reads logical flow rows.
type LogicalFlowRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.LogicalFlow, error)

	// FindBySelector returns not-removed flows with either endpoint in the
	// selector.
	FindBySelector(ctx context.Context, selector Selector) ([]domain.LogicalFlow, error)
}
