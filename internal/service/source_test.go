package service_test

import (
	"testing"

	"crm-distribution-backend/internal/database/models"
	apperrors "crm-distribution-backend/internal/errors"
	"crm-distribution-backend/internal/mocks"
	"crm-distribution-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SourceServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSourceRepo  *mocks.MockSourceRepositoryInterface
	mockContactRepo *mocks.MockContactRepositoryInterface
	sourceService   *service.SourceService
	validator       *validator.Validate
}

func (suite *SourceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSourceRepo = mocks.NewMockSourceRepositoryInterface(suite.ctrl)
	suite.mockContactRepo = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.sourceService = service.NewSourceService(suite.mockSourceRepo, suite.mockContactRepo, suite.validator)
}

func (suite *SourceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SourceServiceTestSuite) TestCreate_Success() {
	req := &service.CreateSourceRequest{
		Name:        "telegram_bot",
		Description: "Telegram intake bot",
	}

	suite.mockSourceRepo.EXPECT().GetByName("telegram_bot").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSourceRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(source *models.Source) error {
		source.ID = uuid.New()
		return nil
	})

	resp, err := suite.sourceService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "telegram_bot", resp.Name)
	assert.Equal(suite.T(), "Telegram intake bot", resp.Description)
}

func (suite *SourceServiceTestSuite) TestCreate_DuplicateName() {
	existing := &models.Source{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "telegram_bot",
	}
	suite.mockSourceRepo.EXPECT().GetByName("telegram_bot").Return(existing, nil)

	resp, err := suite.sourceService.Create(&service.CreateSourceRequest{Name: "telegram_bot"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSourceExists)
}

func (suite *SourceServiceTestSuite) TestCreate_MissingName() {
	resp, err := suite.sourceService.Create(&service.CreateSourceRequest{})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *SourceServiceTestSuite) TestGetByID_NotFound() {
	sourceID := uuid.New()
	suite.mockSourceRepo.EXPECT().GetByID(sourceID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.sourceService.GetByID(sourceID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSourceNotFound)
}

func (suite *SourceServiceTestSuite) TestUpdate_Success() {
	sourceID := uuid.New()
	source := &models.Source{
		BaseModel:   models.BaseModel{ID: sourceID},
		Name:        "site_chat",
		Description: "old description",
	}
	suite.mockSourceRepo.EXPECT().GetByID(sourceID).Return(source, nil)
	suite.mockSourceRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.sourceService.Update(sourceID, &service.UpdateSourceRequest{Description: "new description"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new description", resp.Description)
	assert.Equal(suite.T(), "site_chat", resp.Name)
}

func (suite *SourceServiceTestSuite) TestDelete_NotFound() {
	sourceID := uuid.New()
	suite.mockSourceRepo.EXPECT().GetByID(sourceID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.sourceService.Delete(sourceID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSourceNotFound)
}

func (suite *SourceServiceTestSuite) TestDelete_Success() {
	sourceID := uuid.New()
	source := &models.Source{BaseModel: models.BaseModel{ID: sourceID}, Name: "site_chat"}
	suite.mockSourceRepo.EXPECT().GetByID(sourceID).Return(source, nil)
	suite.mockSourceRepo.EXPECT().Delete(sourceID).Return(nil)

	err := suite.sourceService.Delete(sourceID)

	assert.NoError(suite.T(), err)
}

func (suite *SourceServiceTestSuite) TestGetContacts_Success() {
	sourceID := uuid.New()
	source := &models.Source{BaseModel: models.BaseModel{ID: sourceID}, Name: "site_chat"}
	contacts := []models.Contact{
		{BaseModel: models.BaseModel{ID: uuid.New()}, LeadID: uuid.New(), SourceID: sourceID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, LeadID: uuid.New(), SourceID: sourceID},
	}
	suite.mockSourceRepo.EXPECT().GetByID(sourceID).Return(source, nil)
	suite.mockContactRepo.EXPECT().GetBySourceID(sourceID).Return(contacts, nil)

	resp, err := suite.sourceService.GetContacts(sourceID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
}

func TestSourceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SourceServiceTestSuite))
}
