package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
)

// FlowDecoratorService validates decorator aggregation and mutation requests
// before delegating to the repositories.
type FlowDecoratorService struct {
	decorators ports.FlowDecoratorRepository
	flows      ports.LogicalFlowRepository
}

func NewFlowDecoratorService(decorators ports.FlowDecoratorRepository, flows ports.LogicalFlowRepository) *FlowDecoratorService {
	return &FlowDecoratorService{decorators: decorators, flows: flows}
}

func (s *FlowDecoratorService) SummarizeInbound(ctx context.Context, selector ports.Selector) ([]domain.DecoratorRatingSummary, error) {
	if selector.IsZero() {
		return nil, domain.ErrEmptySelector
	}
	return s.decorators.SummarizeInboundForSelector(ctx, selector)
}

func (s *FlowDecoratorService) SummarizeOutbound(ctx context.Context, selector ports.Selector) ([]domain.DecoratorRatingSummary, error) {
	if selector.IsZero() {
		return nil, domain.ErrEmptySelector
	}
	return s.decorators.SummarizeOutboundForSelector(ctx, selector)
}

func (s *FlowDecoratorService) SummarizeAll(ctx context.Context) ([]domain.DecoratorRatingSummary, error) {
	return s.decorators.SummarizeForAll(ctx)
}

func (s *FlowDecoratorService) FindByFlowIDs(ctx context.Context, flowIDs []int64) ([]domain.LogicalFlowDecorator, error) {
	return s.decorators.FindByFlowIDs(ctx, flowIDs)
}

// RemoveAllForFlows bulk-deletes the decorators of every given flow without
// checking the flows exist. An empty list deletes nothing.
//
// Deprecated: use RemoveForFlow.
func (s *FlowDecoratorService) RemoveAllForFlows(ctx context.Context, flowIDs []int64) (int64, error) {
	if len(flowIDs) == 0 {
		return 0, nil
	}

	log.WithField("flows", len(flowIDs)).Warn("bulk decorator delete requested")
	return s.decorators.RemoveAllDecoratorsForFlowIDs(ctx, flowIDs)
}

// RemoveForFlow deletes the decorators of one flow. The flow must exist.
func (s *FlowDecoratorService) RemoveForFlow(ctx context.Context, flowID int64) (int64, error) {
	if flowID <= 0 {
		return 0, domain.ErrInvalidFlowID
	}
	if _, err := s.flows.GetByID(ctx, flowID); err != nil {
		return 0, err
	}

	deleted, err := s.decorators.RemoveDecoratorsForFlow(ctx, flowID)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"flow_id": flowID,
		"deleted": deleted,
	}).Info("removed flow decorators")
	return deleted, nil
}

// UpdateRatings sets the rating on every decorator matching the condition.
// A condition is mandatory so the update can never run unconditionally.
func (s *FlowDecoratorService) UpdateRatings(ctx context.Context, rating domain.AuthoritativenessRating, condition ports.Condition) (int64, error) {
	if !rating.IsValid() {
		return 0, domain.ErrInvalidRating
	}
	if condition == nil {
		return 0, domain.ErrMissingCondition
	}

	updated, err := s.decorators.UpdateRatingsByCondition(ctx, rating, condition)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"rating":  rating,
		"updated": updated,
	}).Info("updated decorator ratings")
	return updated, nil
}

func (s *FlowDecoratorService) FlowIDsByDataTypeAndDirection(ctx context.Context, selector ports.Selector) (map[domain.DataTypeDirectionKey][]int64, error) {
	if selector.IsZero() {
		return nil, domain.ErrEmptySelector
	}
	return s.decorators.FlowIDsByDataTypeAndDirection(ctx, selector)
}
