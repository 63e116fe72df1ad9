package handlers

import (
	"errors"
	"net/http"
	"testing"

	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/mocks"
	"crm-distribution-backend/internal/service"
	"crm-distribution-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OperatorHandlerTestSuite defines the test suite for OperatorHandler
type OperatorHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOperatorServiceInterface
	handler     *OperatorHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OperatorHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOperatorServiceInterface(suite.ctrl)

	suite.handler = NewOperatorHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	operators := v1.Group("/operators")
	{
		operators.GET("", suite.handler.ListOperators)
		operators.POST("", suite.handler.CreateOperator)
		operators.GET("/:id", suite.handler.GetOperator)
		operators.PUT("/:id", suite.handler.UpdateOperator)
		operators.DELETE("/:id", suite.handler.DeleteOperator)
		operators.GET("/:id/weights", suite.handler.GetOperatorWeights)
		operators.PUT("/:id/sources/:sourceId/weight", suite.handler.SetOperatorWeight)
	}
}

// TearDownTest cleans up after each test
func (suite *OperatorHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOperator_Success tests successful operator creation
func (suite *OperatorHandlerTestSuite) TestCreateOperator_Success() {
	requestBody := map[string]interface{}{
		"name":     "Alice Morgan",
		"max_load": 15,
	}

	expectedResponse := &service.OperatorResponse{
		ID:       uuid.New(),
		Name:     "Alice Morgan",
		IsActive: true,
		MaxLoad:  15,
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateOperatorRequest) (*service.OperatorResponse, error) {
			assert.Equal(suite.T(), "Alice Morgan", req.Name)
			assert.NotNil(suite.T(), req.MaxLoad)
			assert.Equal(suite.T(), 15, *req.MaxLoad)
			return expectedResponse, nil
		})

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/operators", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.OperatorResponse
	testutils.ParseJSONResponse(suite.T(), w, &response)
	assert.Equal(suite.T(), expectedResponse.ID, response.ID)
	assert.True(suite.T(), response.IsActive)
}

// TestCreateOperator_InvalidBody tests creation with a malformed payload
func (suite *OperatorHandlerTestSuite) TestCreateOperator_InvalidBody() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/operators", "not json")

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

// TestGetOperator_NotFound tests fetching a missing operator
func (suite *OperatorHandlerTestSuite) TestGetOperator_NotFound() {
	id := uuid.New()

	suite.mockService.EXPECT().
		GetByID(id).
		Return(nil, apperrors.ErrOperatorNotFound)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/operators/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "operator not found")
}

// TestGetOperator_InvalidUUID tests fetching with a malformed ID
func (suite *OperatorHandlerTestSuite) TestGetOperator_InvalidUUID() {
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/operators/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid operator ID")
}

// TestUpdateOperator_Success tests a partial operator update
func (suite *OperatorHandlerTestSuite) TestUpdateOperator_Success() {
	id := uuid.New()
	requestBody := map[string]interface{}{
		"is_active": false,
	}

	expectedResponse := &service.OperatorResponse{
		ID:       id,
		Name:     "Boris Ivanov",
		IsActive: false,
		MaxLoad:  10,
	}

	suite.mockService.EXPECT().
		Update(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateOperatorRequest) (*service.OperatorResponse, error) {
			assert.Nil(suite.T(), req.Name)
			assert.NotNil(suite.T(), req.IsActive)
			assert.False(suite.T(), *req.IsActive)
			return expectedResponse, nil
		})

	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/operators/"+id.String(), requestBody)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.OperatorResponse
	testutils.ParseJSONResponse(suite.T(), w, &response)
	assert.False(suite.T(), response.IsActive)
}

// TestUpdateOperator_NotFound tests updating a missing operator
func (suite *OperatorHandlerTestSuite) TestUpdateOperator_NotFound() {
	id := uuid.New()

	suite.mockService.EXPECT().
		Update(id, gomock.Any()).
		Return(nil, apperrors.ErrOperatorNotFound)

	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/operators/"+id.String(), map[string]interface{}{
		"name": "New Name",
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "operator not found")
}

// TestDeleteOperator_Success tests deleting an operator
func (suite *OperatorHandlerTestSuite) TestDeleteOperator_Success() {
	id := uuid.New()

	suite.mockService.EXPECT().
		Delete(id).
		Return(nil)

	w := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/operators/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), w, &response)
	assert.Contains(suite.T(), response["message"], "deleted")
}

// TestSetOperatorWeight_Success tests setting a weight for a source
func (suite *OperatorHandlerTestSuite) TestSetOperatorWeight_Success() {
	operatorID := uuid.New()
	sourceID := uuid.New()
	requestBody := map[string]interface{}{
		"weight": 2.5,
	}

	expectedResponse := &service.WeightResponse{
		OperatorID: operatorID,
		SourceID:   sourceID,
		Weight:     2.5,
	}

	suite.mockService.EXPECT().
		SetSourceWeight(operatorID, sourceID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, req *service.SetWeightRequest) (*service.WeightResponse, error) {
			assert.Equal(suite.T(), 2.5, req.Weight)
			return expectedResponse, nil
		})

	url := "/api/v1/operators/" + operatorID.String() + "/sources/" + sourceID.String() + "/weight"
	w := suite.httpSuite.MakeRequest(http.MethodPut, url, requestBody)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.WeightResponse
	testutils.ParseJSONResponse(suite.T(), w, &response)
	assert.Equal(suite.T(), 2.5, response.Weight)
	assert.Equal(suite.T(), sourceID, response.SourceID)
}

// TestSetOperatorWeight_SourceNotFound tests setting a weight for a missing source
func (suite *OperatorHandlerTestSuite) TestSetOperatorWeight_SourceNotFound() {
	operatorID := uuid.New()
	sourceID := uuid.New()

	suite.mockService.EXPECT().
		SetSourceWeight(operatorID, sourceID, gomock.Any()).
		Return(nil, apperrors.ErrSourceNotFound)

	url := "/api/v1/operators/" + operatorID.String() + "/sources/" + sourceID.String() + "/weight"
	w := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{"weight": 1.0})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "source not found")
}

// TestSetOperatorWeight_InvalidSourceUUID tests a malformed source ID in the path
func (suite *OperatorHandlerTestSuite) TestSetOperatorWeight_InvalidSourceUUID() {
	operatorID := uuid.New()

	url := "/api/v1/operators/" + operatorID.String() + "/sources/not-a-uuid/weight"
	w := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{"weight": 1.0})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid source ID")
}

// TestGetOperatorWeights_Success tests listing an operator's weights
func (suite *OperatorHandlerTestSuite) TestGetOperatorWeights_Success() {
	operatorID := uuid.New()
	weights := []service.WeightResponse{
		{OperatorID: operatorID, SourceID: uuid.New(), Weight: 3.0},
		{OperatorID: operatorID, SourceID: uuid.New(), Weight: 1.0},
	}

	suite.mockService.EXPECT().
		GetSourceWeights(operatorID).
		Return(weights, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/operators/"+operatorID.String()+"/weights", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []service.WeightResponse
	testutils.ParseJSONResponse(suite.T(), w, &response)
	assert.Len(suite.T(), response, 2)
}

// TestGetOperatorWeights_ServiceError tests an unexpected service failure
func (suite *OperatorHandlerTestSuite) TestGetOperatorWeights_ServiceError() {
	operatorID := uuid.New()

	suite.mockService.EXPECT().
		GetSourceWeights(operatorID).
		Return(nil, errors.New("database connection failed"))

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/operators/"+operatorID.String()+"/weights", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to get weights")
}

// TestOperatorHandlerTestSuite runs the test suite
func TestOperatorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OperatorHandlerTestSuite))
}
