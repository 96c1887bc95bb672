package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
	"github.com/avibiton/waltz/internal/testutil"
)

func newDecoratorService() (*testutil.MockFlowDecoratorRepo, *testutil.MockLogicalFlowRepo, *FlowDecoratorService) {
	decorators := new(testutil.MockFlowDecoratorRepo)
	flows := new(testutil.MockLogicalFlowRepo)
	return decorators, flows, NewFlowDecoratorService(decorators, flows)
}

func TestFlowDecoratorService_SummarizeInbound(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	selector := ports.IDSelector(10, 20)
	expected := []domain.DecoratorRatingSummary{
		{
			Decorator: domain.EntityReference{Kind: domain.EntityKindDataType, ID: 5},
			Rating:    domain.RatingPrimary,
			Count:     3,
		},
	}
	decorators.On("SummarizeInboundForSelector", mock.Anything, selector).Return(expected, nil)

	summaries, err := svc.SummarizeInbound(context.Background(), selector)
	assert.NoError(t, err)
	assert.Equal(t, expected, summaries)
	decorators.AssertExpectations(t)
}

func TestFlowDecoratorService_SummarizeInbound_EmptySelector(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	_, err := svc.SummarizeInbound(context.Background(), ports.Selector{})
	assert.ErrorIs(t, err, domain.ErrEmptySelector)
	decorators.AssertNotCalled(t, "SummarizeInboundForSelector", mock.Anything, mock.Anything)
}

func TestFlowDecoratorService_SummarizeOutbound(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	selector := ports.IDSelector(10)
	decorators.On("SummarizeOutboundForSelector", mock.Anything, selector).
		Return([]domain.DecoratorRatingSummary{}, nil)

	_, err := svc.SummarizeOutbound(context.Background(), selector)
	assert.NoError(t, err)
	decorators.AssertExpectations(t)
	decorators.AssertNotCalled(t, "SummarizeInboundForSelector", mock.Anything, mock.Anything)
}

func TestFlowDecoratorService_SummarizeOutbound_EmptySelector(t *testing.T) {
	_, _, svc := newDecoratorService()

	_, err := svc.SummarizeOutbound(context.Background(), ports.Selector{})
	assert.ErrorIs(t, err, domain.ErrEmptySelector)
}

func TestFlowDecoratorService_SummarizeAll(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	expected := []domain.DecoratorRatingSummary{
		{
			Decorator: domain.EntityReference{Kind: domain.EntityKindDataType, ID: 7},
			Rating:    domain.RatingNoOpinion,
			Count:     12,
		},
	}
	decorators.On("SummarizeForAll", mock.Anything).Return(expected, nil)

	summaries, err := svc.SummarizeAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, summaries)
	decorators.AssertExpectations(t)
}

func TestFlowDecoratorService_FindByFlowIDs(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	expected := []domain.LogicalFlowDecorator{
		{
			ID:            1,
			LogicalFlowID: 42,
			Decorator:     domain.EntityReference{Kind: domain.EntityKindDataType, ID: 5},
			Rating:        domain.RatingSecondary,
		},
	}
	decorators.On("FindByFlowIDs", mock.Anything, []int64{42}).Return(expected, nil)

	found, err := svc.FindByFlowIDs(context.Background(), []int64{42})
	assert.NoError(t, err)
	assert.Equal(t, expected, found)
	decorators.AssertExpectations(t)
}

func TestFlowDecoratorService_RemoveAllForFlows(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	decorators.On("RemoveAllDecoratorsForFlowIDs", mock.Anything, []int64{1, 2, 3}).
		Return(int64(5), nil)

	deleted, err := svc.RemoveAllForFlows(context.Background(), []int64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
	decorators.AssertExpectations(t)
}

func TestFlowDecoratorService_RemoveAllForFlows_EmptyList(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	deleted, err := svc.RemoveAllForFlows(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	decorators.AssertNotCalled(t, "RemoveAllDecoratorsForFlowIDs", mock.Anything, mock.Anything)
}

func TestFlowDecoratorService_RemoveForFlow(t *testing.T) {
	decorators, flows, svc := newDecoratorService()

	flows.On("GetByID", mock.Anything, int64(42)).Return(&domain.LogicalFlow{ID: 42}, nil)
	decorators.On("RemoveDecoratorsForFlow", mock.Anything, int64(42)).Return(int64(3), nil)

	deleted, err := svc.RemoveForFlow(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	flows.AssertExpectations(t)
	decorators.AssertExpectations(t)
}

func TestFlowDecoratorService_RemoveForFlow_InvalidID(t *testing.T) {
	_, _, svc := newDecoratorService()

	_, err := svc.RemoveForFlow(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidFlowID)
}

func TestFlowDecoratorService_RemoveForFlow_FlowNotFound(t *testing.T) {
	decorators, flows, svc := newDecoratorService()

	flows.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrFlowNotFound)

	_, err := svc.RemoveForFlow(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrFlowNotFound)
	decorators.AssertNotCalled(t, "RemoveDecoratorsForFlow", mock.Anything, mock.Anything)
}

func TestFlowDecoratorService_UpdateRatings(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	condition := ports.InIDs(ports.FieldFlowID, []int64{1, 2})
	decorators.On("UpdateRatingsByCondition", mock.Anything, domain.RatingPrimary, condition).
		Return(int64(2), nil)

	updated, err := svc.UpdateRatings(context.Background(), domain.RatingPrimary, condition)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), updated)
	decorators.AssertExpectations(t)
}

func TestFlowDecoratorService_UpdateRatings_InvalidRating(t *testing.T) {
	_, _, svc := newDecoratorService()

	_, err := svc.UpdateRatings(context.Background(), domain.AuthoritativenessRating("GOLDEN"),
		ports.InIDs(ports.FieldFlowID, []int64{1}))
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestFlowDecoratorService_UpdateRatings_MissingCondition(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	_, err := svc.UpdateRatings(context.Background(), domain.RatingPrimary, nil)
	assert.ErrorIs(t, err, domain.ErrMissingCondition)
	decorators.AssertNotCalled(t, "UpdateRatingsByCondition", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlowDecoratorService_FlowIDsByDataTypeAndDirection(t *testing.T) {
	decorators, _, svc := newDecoratorService()

	selector := ports.IDSelector(10, 20)
	expected := map[domain.DataTypeDirectionKey][]int64{
		{DataTypeID: 5, Direction: domain.DirectionIntra}:    {1, 2},
		{DataTypeID: 5, Direction: domain.DirectionOutbound}: {3},
	}
	decorators.On("FlowIDsByDataTypeAndDirection", mock.Anything, selector).Return(expected, nil)

	grouped, err := svc.FlowIDsByDataTypeAndDirection(context.Background(), selector)
	assert.NoError(t, err)
	assert.Equal(t, expected, grouped)
	decorators.AssertExpectations(t)
}

func TestFlowDecoratorService_FlowIDsByDataTypeAndDirection_EmptySelector(t *testing.T) {
	_, _, svc := newDecoratorService()

	_, err := svc.FlowIDsByDataTypeAndDirection(context.Background(), ports.Selector{})
	assert.ErrorIs(t, err, domain.ErrEmptySelector)
}
