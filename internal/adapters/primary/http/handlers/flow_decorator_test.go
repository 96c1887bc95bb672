package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avibiton/waltz/internal/adapters/primary/http/dto"
	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
	"github.com/avibiton/waltz/internal/core/services"
	"github.com/avibiton/waltz/internal/testutil"
)

func setupRouter() (*testutil.MockFlowDecoratorRepo, *testutil.MockLogicalFlowRepo, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	decorators := new(testutil.MockFlowDecoratorRepo)
	flows := new(testutil.MockLogicalFlowRepo)

	decoratorSvc := services.NewFlowDecoratorService(decorators, flows)
	flowSvc := services.NewLogicalFlowService(flows)

	h := New(decoratorSvc, flowSvc)
	r := gin.New()
	api := r.Group("/api/v1/flow-catalog")
	h.RegisterRoutes(api)

	return decorators, flows, r
}

func postJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSummarizeAllDecorators(t *testing.T) {
	decorators, _, r := setupRouter()

	summaries := []domain.DecoratorRatingSummary{
		{
			Decorator: domain.EntityReference{Kind: domain.EntityKindDataType, ID: 5},
			Rating:    domain.RatingPrimary,
			Count:     7,
		},
	}
	decorators.On("SummarizeForAll", mock.Anything).Return(summaries, nil)

	req, _ := http.NewRequest("GET", "/api/v1/flow-catalog/decorator-summaries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListDecoratorSummariesResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "DATA_TYPE", resp.Items[0].Decorator.Kind)
	assert.Equal(t, "PRIMARY", resp.Items[0].Rating)
	assert.Equal(t, 7, resp.Items[0].Count)
}

func TestSummarizeInboundDecorators(t *testing.T) {
	decorators, _, r := setupRouter()

	selector := ports.IDSelector(10, 20)
	decorators.On("SummarizeInboundForSelector", mock.Anything, selector).
		Return([]domain.DecoratorRatingSummary{}, nil)

	w := postJSON(r, "POST", "/api/v1/flow-catalog/decorator-summaries/inbound",
		dto.SelectorRequest{AppIDs: []int64{10, 20}})

	assert.Equal(t, http.StatusOK, w.Code)
	decorators.AssertExpectations(t)
}

func TestSummarizeInboundDecorators_MissingAppIDs(t *testing.T) {
	decorators, _, r := setupRouter()

	w := postJSON(r, "POST", "/api/v1/flow-catalog/decorator-summaries/inbound", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	decorators.AssertNotCalled(t, "SummarizeInboundForSelector", mock.Anything, mock.Anything)
}

func TestSummarizeInboundDecorators_EmptyAppIDs(t *testing.T) {
	_, _, r := setupRouter()

	w := postJSON(r, "POST", "/api/v1/flow-catalog/decorator-summaries/inbound",
		gin.H{"app_ids": []int64{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummarizeOutboundDecorators(t *testing.T) {
	decorators, _, r := setupRouter()

	selector := ports.IDSelector(10)
	decorators.On("SummarizeOutboundForSelector", mock.Anything, selector).
		Return([]domain.DecoratorRatingSummary{}, nil)

	w := postJSON(r, "POST", "/api/v1/flow-catalog/decorator-summaries/outbound",
		dto.SelectorRequest{AppIDs: []int64{10}})

	assert.Equal(t, http.StatusOK, w.Code)
	decorators.AssertExpectations(t)
	decorators.AssertNotCalled(t, "SummarizeInboundForSelector", mock.Anything, mock.Anything)
}

func TestGroupFlowIDsByDataType(t *testing.T) {
	decorators, _, r := setupRouter()

	grouped := map[domain.DataTypeDirectionKey][]int64{
		{DataTypeID: 5, Direction: domain.DirectionIntra}:    {1, 2},
		{DataTypeID: 5, Direction: domain.DirectionOutbound}: {3},
		{DataTypeID: 3, Direction: domain.DirectionInbound}:  {4},
	}
	decorators.On("FlowIDsByDataTypeAndDirection", mock.Anything, ports.IDSelector(10, 20)).
		Return(grouped, nil)

	w := postJSON(r, "POST", "/api/v1/flow-catalog/decorator-flow-ids",
		dto.SelectorRequest{AppIDs: []int64{10, 20}})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListDataTypeDirectionGroupsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)

	// Groups come back sorted by data type id, then direction.
	assert.Equal(t, int64(3), resp.Items[0].DataTypeID)
	assert.Equal(t, "INBOUND", resp.Items[0].Direction)
	assert.Equal(t, []int64{4}, resp.Items[0].FlowIDs)
	assert.Equal(t, "INTRA", resp.Items[1].Direction)
	assert.Equal(t, []int64{1, 2}, resp.Items[1].FlowIDs)
	assert.Equal(t, "OUTBOUND", resp.Items[2].Direction)
}

func TestSearchDecorators(t *testing.T) {
	decorators, _, r := setupRouter()

	found := []domain.LogicalFlowDecorator{
		{
			ID:            1,
			LogicalFlowID: 42,
			Decorator:     domain.EntityReference{Kind: domain.EntityKindDataType, ID: 5},
			Rating:        domain.RatingSecondary,
			Provenance:    "waltz",
		},
	}
	decorators.On("FindByFlowIDs", mock.Anything, []int64{42}).Return(found, nil)

	w := postJSON(r, "POST", "/api/v1/flow-catalog/decorators/search",
		dto.DecoratorSearchRequest{FlowIDs: []int64{42}})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListFlowDecoratorsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(42), resp.Items[0].LogicalFlowID)
	assert.Equal(t, "SECONDARY", resp.Items[0].Rating)
}

func TestUpdateDecoratorRatings(t *testing.T) {
	decorators, _, r := setupRouter()

	condition := ports.InIDs(ports.FieldFlowID, []int64{1, 2})
	decorators.On("UpdateRatingsByCondition", mock.Anything, domain.RatingPrimary, condition).
		Return(int64(2), nil)

	w := postJSON(r, "PATCH", "/api/v1/flow-catalog/decorators/rating",
		dto.UpdateRatingRequest{Rating: "PRIMARY", FlowIDs: []int64{1, 2}})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UpdateRatingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Updated)
	decorators.AssertExpectations(t)
}

func TestUpdateDecoratorRatings_BothScopes(t *testing.T) {
	decorators, _, r := setupRouter()

	decorators.On("UpdateRatingsByCondition", mock.Anything, domain.RatingDiscouraged, mock.Anything).
		Return(int64(1), nil)

	w := postJSON(r, "PATCH", "/api/v1/flow-catalog/decorators/rating",
		dto.UpdateRatingRequest{Rating: "DISCOURAGED", DataTypeIDs: []int64{5}, FlowIDs: []int64{1}})

	assert.Equal(t, http.StatusOK, w.Code)
	decorators.AssertExpectations(t)
}

func TestUpdateDecoratorRatings_NoScope(t *testing.T) {
	decorators, _, r := setupRouter()

	w := postJSON(r, "PATCH", "/api/v1/flow-catalog/decorators/rating",
		dto.UpdateRatingRequest{Rating: "PRIMARY"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	decorators.AssertNotCalled(t, "UpdateRatingsByCondition", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDecoratorRatings_InvalidRating(t *testing.T) {
	decorators, _, r := setupRouter()

	w := postJSON(r, "PATCH", "/api/v1/flow-catalog/decorators/rating",
		dto.UpdateRatingRequest{Rating: "GOLDEN", FlowIDs: []int64{1}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	decorators.AssertNotCalled(t, "UpdateRatingsByCondition", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteFlowDecorators(t *testing.T) {
	decorators, flows, r := setupRouter()

	flows.On("GetByID", mock.Anything, int64(42)).Return(&domain.LogicalFlow{ID: 42}, nil)
	decorators.On("RemoveDecoratorsForFlow", mock.Anything, int64(42)).Return(int64(3), nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/flow-catalog/flows/42/decorators", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DeleteDecoratorsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Deleted)
}

func TestDeleteFlowDecorators_FlowNotFound(t *testing.T) {
	decorators, flows, r := setupRouter()

	flows.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrFlowNotFound)

	req, _ := http.NewRequest("DELETE", "/api/v1/flow-catalog/flows/99/decorators", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	decorators.AssertNotCalled(t, "RemoveDecoratorsForFlow", mock.Anything, mock.Anything)
}

func TestDeleteFlowDecorators_InvalidID(t *testing.T) {
	_, _, r := setupRouter()

	req, _ := http.NewRequest("DELETE", "/api/v1/flow-catalog/flows/abc/decorators", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
