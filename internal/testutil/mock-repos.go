package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
)

// MockFlowDecoratorRepo is a mock of FlowDecoratorRepository.
type MockFlowDecoratorRepo struct {
	mock.Mock
}

func (m *MockFlowDecoratorRepo) SummarizeInboundForSelector(ctx context.Context, selector ports.Selector) ([]domain.DecoratorRatingSummary, error) {
	args := m.Called(ctx, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DecoratorRatingSummary), args.Error(1)
}

func (m *MockFlowDecoratorRepo) SummarizeOutboundForSelector(ctx context.Context, selector ports.Selector) ([]domain.DecoratorRatingSummary, error) {
	args := m.Called(ctx, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DecoratorRatingSummary), args.Error(1)
}

func (m *MockFlowDecoratorRepo) SummarizeForAll(ctx context.Context) ([]domain.DecoratorRatingSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DecoratorRatingSummary), args.Error(1)
}

func (m *MockFlowDecoratorRepo) FindByFlowIDs(ctx context.Context, flowIDs []int64) ([]domain.LogicalFlowDecorator, error) {
	args := m.Called(ctx, flowIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogicalFlowDecorator), args.Error(1)
}

func (m *MockFlowDecoratorRepo) RemoveAllDecoratorsForFlowIDs(ctx context.Context, flowIDs []int64) (int64, error) {
	args := m.Called(ctx, flowIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlowDecoratorRepo) RemoveDecoratorsForFlow(ctx context.Context, flowID int64) (int64, error) {
	args := m.Called(ctx, flowID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlowDecoratorRepo) UpdateRatingsByCondition(ctx context.Context, rating domain.AuthoritativenessRating, condition ports.Condition) (int64, error) {
	args := m.Called(ctx, rating, condition)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlowDecoratorRepo) FlowIDsByDataTypeAndDirection(ctx context.Context, selector ports.Selector) (map[domain.DataTypeDirectionKey][]int64, error) {
	args := m.Called(ctx, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.DataTypeDirectionKey][]int64), args.Error(1)
}

// MockLogicalFlowRepo is a mock of LogicalFlowRepository.
type MockLogicalFlowRepo struct {
	mock.Mock
}

func (m *MockLogicalFlowRepo) GetByID(ctx context.Context, id int64) (*domain.LogicalFlow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LogicalFlow), args.Error(1)
}

func (m *MockLogicalFlowRepo) FindBySelector(ctx context.Context, selector ports.Selector) ([]domain.LogicalFlow, error) {
	args := m.Called(ctx, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogicalFlow), args.Error(1)
}
