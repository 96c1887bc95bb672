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

func TestLogicalFlowService_Get(t *testing.T) {
	flows := new(testutil.MockLogicalFlowRepo)
	svc := NewLogicalFlowService(flows)

	expected := &domain.LogicalFlow{
		ID:              42,
		Source:          domain.EntityReference{Kind: domain.EntityKindApplication, ID: 10},
		Target:          domain.EntityReference{Kind: domain.EntityKindApplication, ID: 20},
		LifecycleStatus: domain.LifecycleActive,
	}
	flows.On("GetByID", mock.Anything, int64(42)).Return(expected, nil)

	flow, err := svc.Get(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, expected, flow)
	flows.AssertExpectations(t)
}

func TestLogicalFlowService_Get_InvalidID(t *testing.T) {
	flows := new(testutil.MockLogicalFlowRepo)
	svc := NewLogicalFlowService(flows)

	_, err := svc.Get(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidFlowID)
	flows.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestLogicalFlowService_Get_NotFound(t *testing.T) {
	flows := new(testutil.MockLogicalFlowRepo)
	svc := NewLogicalFlowService(flows)

	flows.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrFlowNotFound)

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrFlowNotFound)
}

func TestLogicalFlowService_FindBySelector(t *testing.T) {
	flows := new(testutil.MockLogicalFlowRepo)
	svc := NewLogicalFlowService(flows)

	selector := ports.IDSelector(10)
	expected := []domain.LogicalFlow{{ID: 1}, {ID: 2}}
	flows.On("FindBySelector", mock.Anything, selector).Return(expected, nil)

	found, err := svc.FindBySelector(context.Background(), selector)
	assert.NoError(t, err)
	assert.Equal(t, expected, found)
	flows.AssertExpectations(t)
}

func TestLogicalFlowService_FindBySelector_EmptySelector(t *testing.T) {
	flows := new(testutil.MockLogicalFlowRepo)
	svc := NewLogicalFlowService(flows)

	_, err := svc.FindBySelector(context.Background(), ports.Selector{})
	assert.ErrorIs(t, err, domain.ErrEmptySelector)
	flows.AssertNotCalled(t, "FindBySelector", mock.Anything, mock.Anything)
}
