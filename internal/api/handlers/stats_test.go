package handlers

import (
	"errors"
	"net/http"
	"testing"

	"crm-distribution-backend/internal/mocks"
	"crm-distribution-backend/internal/service"
	"crm-distribution-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StatsHandlerTestSuite defines the test suite for StatsHandler
type StatsHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockDistributionService *mocks.MockDistributionServiceInterface
	mockContactService      *mocks.MockContactServiceInterface
	handler                 *StatsHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *StatsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDistributionService = mocks.NewMockDistributionServiceInterface(suite.ctrl)
	suite.mockContactService = mocks.NewMockContactServiceInterface(suite.ctrl)

	suite.handler = NewStatsHandler(suite.mockDistributionService, suite.mockContactService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	stats := v1.Group("/stats")
	{
		stats.GET("/operator-load", suite.handler.GetOperatorLoadStats)
		stats.GET("/unprocessed-contacts", suite.handler.GetUnprocessedContacts)
	}
}

// TearDownTest cleans up after each test
func (suite *StatsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetOperatorLoadStats_Success tests the load stats endpoint
func (suite *StatsHandlerTestSuite) TestGetOperatorLoadStats_Success() {
	stats := []service.OperatorLoadStat{
		{
			OperatorID:     uuid.New(),
			OperatorName:   "Alice Morgan",
			IsActive:       true,
			MaxLoad:        10,
			CurrentLoad:    4,
			LoadPercentage: 40,
		},
		{
			OperatorID:     uuid.New(),
			OperatorName:   "Boris Ivanov",
			IsActive:       false,
			MaxLoad:        5,
			CurrentLoad:    0,
			LoadPercentage: 0,
		},
	}

	suite.mockDistributionService.EXPECT().
		GetOperatorLoadStats().
		Return(stats, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/stats/operator-load", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []service.OperatorLoadStat
	testutils.ParseJSONResponse(suite.T(), w, &response)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), "Alice Morgan", response[0].OperatorName)
	assert.InDelta(suite.T(), 40.0, response[0].LoadPercentage, 0.001)
}

// TestGetOperatorLoadStats_ServiceError tests an unexpected service failure
func (suite *StatsHandlerTestSuite) TestGetOperatorLoadStats_ServiceError() {
	suite.mockDistributionService.EXPECT().
		GetOperatorLoadStats().
		Return(nil, errors.New("database connection failed"))

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/stats/operator-load", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to get operator load stats")
}

// TestGetUnprocessedContacts_Success tests the unprocessed backlog endpoint
func (suite *StatsHandlerTestSuite) TestGetUnprocessedContacts_Success() {
	expected := &service.ContactListResponse{
		Contacts: []service.ContactResponse{
			{ID: uuid.New(), LeadID: uuid.New(), SourceID: uuid.New()},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockContactService.EXPECT().
		GetUnprocessed(1, 20).
		Return(expected, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/stats/unprocessed-contacts", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.ContactListResponse
	testutils.ParseJSONResponse(suite.T(), w, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Len(suite.T(), response.Contacts, 1)
}

// TestGetUnprocessedContacts_PaginationPassthrough tests explicit query params
func (suite *StatsHandlerTestSuite) TestGetUnprocessedContacts_PaginationPassthrough() {
	suite.mockContactService.EXPECT().
		GetUnprocessed(3, 50).
		Return(&service.ContactListResponse{Contacts: []service.ContactResponse{}, Page: 3, PageSize: 50}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/stats/unprocessed-contacts?page=3&page_size=50", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestStatsHandlerTestSuite runs the test suite
func TestStatsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}
