package services

import (
	"context"

	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
)

// LogicalFlowService reads logical flows.
type LogicalFlowService struct {
	flows ports.LogicalFlowRepository
}

func NewLogicalFlowService(flows ports.LogicalFlowRepository) *LogicalFlowService {
	return &LogicalFlowService{flows: flows}
}

func (s *LogicalFlowService) Get(ctx context.Context, id int64) (*domain.LogicalFlow, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidFlowID
	}
	return s.flows.GetByID(ctx, id)
}

func (s *LogicalFlowService) FindBySelector(ctx context.Context, selector ports.Selector) ([]domain.LogicalFlow, error) {
	if selector.IsZero() {
		return nil, domain.ErrEmptySelector
	}
	return s.flows.FindBySelector(ctx, selector)
}
