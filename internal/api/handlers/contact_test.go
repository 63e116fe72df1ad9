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

// ContactHandlerTestSuite defines the test suite for ContactHandler
type ContactHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockContactService      *mocks.MockContactServiceInterface
	mockDistributionService *mocks.MockDistributionServiceInterface
	handler                 *ContactHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ContactHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContactService = mocks.NewMockContactServiceInterface(suite.ctrl)
	suite.mockDistributionService = mocks.NewMockDistributionServiceInterface(suite.ctrl)

	suite.handler = NewContactHandler(suite.mockContactService, suite.mockDistributionService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	contacts := v1.Group("/contacts")
	{
		contacts.POST("/register", suite.handler.RegisterContact)
		contacts.GET("", suite.handler.ListContacts)
		contacts.GET("/:id", suite.handler.GetContact)
		contacts.POST("/:id/process", suite.handler.MarkContactProcessed)
	}
}

// TearDownTest cleans up after each test
func (suite *ContactHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegisterContact_Assigned tests registering a contact that gets an operator
func (suite *ContactHandlerTestSuite) TestRegisterContact_Assigned() {
	sourceID := uuid.New()
	operatorID := uuid.New()
	requestBody := map[string]interface{}{
		"external_id": "crm-42",
		"source_id":   sourceID.String(),
		"message":     "I need help with my order",
	}

	expectedResponse := &service.ContactResponse{
		ID:         uuid.New(),
		LeadID:     uuid.New(),
		SourceID:   sourceID,
		OperatorID: &operatorID,
		Message:    "I need help with my order",
	}

	suite.mockDistributionService.EXPECT().
		RegisterContact(gomock.Any(), gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/contacts/register", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.ContactResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.ID, response.ID)
	assert.NotNil(suite.T(), response.OperatorID)
	assert.Equal(suite.T(), operatorID, *response.OperatorID)
}

// TestRegisterContact_Queued tests registering a contact when no operator has capacity
func (suite *ContactHandlerTestSuite) TestRegisterContact_Queued() {
	sourceID := uuid.New()
	requestBody := map[string]interface{}{
		"phone":     "+15550001",
		"source_id": sourceID.String(),
	}

	expectedResponse := &service.ContactResponse{
		ID:       uuid.New(),
		LeadID:   uuid.New(),
		SourceID: sourceID,
	}

	suite.mockDistributionService.EXPECT().
		RegisterContact(gomock.Any(), gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/contacts/register", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.ContactResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Nil(suite.T(), response.OperatorID)
}

// TestRegisterContact_SourceNotFound tests registering against an unknown source
func (suite *ContactHandlerTestSuite) TestRegisterContact_SourceNotFound() {
	requestBody := map[string]interface{}{
		"external_id": "crm-42",
		"source_id":   uuid.New().String(),
	}

	suite.mockDistributionService.EXPECT().
		RegisterContact(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrSourceNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/contacts/register", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "source not found")
}

// TestRegisterContact_ValidationError tests that rejected input maps to 400
func (suite *ContactHandlerTestSuite) TestRegisterContact_ValidationError() {
	requestBody := map[string]interface{}{
		"email":     "not-an-email",
		"source_id": uuid.New().String(),
	}

	suite.mockDistributionService.EXPECT().
		RegisterContact(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("", "email must be a valid email address")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/contacts/register", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
}

// TestRegisterContact_TransientFailure tests exhausted assignment retries
func (suite *ContactHandlerTestSuite) TestRegisterContact_TransientFailure() {
	requestBody := map[string]interface{}{
		"external_id": "crm-42",
		"source_id":   uuid.New().String(),
	}

	suite.mockDistributionService.EXPECT().
		RegisterContact(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewTransientError("contact registration", errors.New("serialization conflict"))).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/contacts/register", requestBody)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(suite.T(), "1", recorder.Header().Get("Retry-After"))
}

// TestRegisterContact_InvalidBody tests malformed JSON
func (suite *ContactHandlerTestSuite) TestRegisterContact_InvalidBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/contacts/register", "not-a-json-object")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetContact_NotFound tests getting a missing contact
func (suite *ContactHandlerTestSuite) TestGetContact_NotFound() {
	contactID := uuid.New()

	suite.mockContactService.EXPECT().
		GetWithDetails(contactID).
		Return(nil, apperrors.ErrContactNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/contacts/"+contactID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "contact not found")
}

// TestGetContact_InvalidUUID tests a malformed contact id
func (suite *ContactHandlerTestSuite) TestGetContact_InvalidUUID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/contacts/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid contact ID")
}

// TestMarkContactProcessed_Success tests disposing of a contact
func (suite *ContactHandlerTestSuite) TestMarkContactProcessed_Success() {
	contactID := uuid.New()
	operatorID := uuid.New()
	expectedResponse := &service.ContactResponse{
		ID:          contactID,
		LeadID:      uuid.New(),
		SourceID:    uuid.New(),
		OperatorID:  &operatorID,
		IsProcessed: true,
	}

	suite.mockContactService.EXPECT().
		MarkProcessed(contactID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/contacts/"+contactID.String()+"/process", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ContactResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.IsProcessed)
}

// TestMarkContactProcessed_Conflict tests double disposal
func (suite *ContactHandlerTestSuite) TestMarkContactProcessed_Conflict() {
	contactID := uuid.New()

	suite.mockContactService.EXPECT().
		MarkProcessed(contactID).
		Return(nil, apperrors.ErrContactAlreadyProcessed).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/contacts/"+contactID.String()+"/process", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already processed")
}

// TestListContacts tests the paginated listing
func (suite *ContactHandlerTestSuite) TestListContacts() {
	expectedResponse := &service.ContactListResponse{
		Contacts: []service.ContactResponse{
			{ID: uuid.New(), LeadID: uuid.New(), SourceID: uuid.New()},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockContactService.EXPECT().
		GetAll(1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/contacts", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ContactListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Len(suite.T(), response.Contacts, 1)
}

func TestContactHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}
