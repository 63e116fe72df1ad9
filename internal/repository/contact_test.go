//go:build integration
// +build integration

package repository

import (
	"testing"

	"crm-distribution-backend/internal/database/models"
	"crm-distribution-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ContactRepositoryTestSuite tests the ContactRepository
type ContactRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ContactRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ContactRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewContactRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ContactRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ContactRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ContactRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert the referenced lead, source and operator
func (suite *ContactRepositoryTestSuite) createReferences() (*models.Lead, *models.Source, *models.Operator) {
	lead := suite.factories.Lead.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(lead).Error)

	source := suite.factories.Source.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(source).Error)

	operator := suite.factories.Operator.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(operator).Error)

	return lead, source, operator
}

// TestCreateQueuedContact tests that a contact without an operator round-trips
func (suite *ContactRepositoryTestSuite) TestCreateQueuedContact() {
	lead, source, _ := suite.createReferences()

	contact := suite.factories.Contact.Create(lead.ID, source.ID)
	suite.NoError(suite.repo.Create(contact))

	retrieved, err := suite.repo.GetByID(contact.ID)
	suite.NoError(err)
	suite.Nil(retrieved.OperatorID)
	suite.False(retrieved.IsProcessed)
	suite.Equal(lead.ID, retrieved.LeadID)
}

// TestGetByIDNotFound tests retrieving a non-existent contact
func (suite *ContactRepositoryTestSuite) TestGetByIDNotFound() {
	contact, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(contact)
}

// TestGetWithDetails tests that lead, source and operator are preloaded
func (suite *ContactRepositoryTestSuite) TestGetWithDetails() {
	lead, source, operator := suite.createReferences()

	contact := suite.factories.Contact.Assigned(lead.ID, source.ID, operator.ID)
	suite.NoError(suite.repo.Create(contact))

	retrieved, err := suite.repo.GetWithDetails(contact.ID)
	suite.NoError(err)
	suite.Equal(lead.ID, retrieved.Lead.ID)
	suite.Equal(source.Name, retrieved.Source.Name)
	suite.NotNil(retrieved.Operator)
	suite.Equal(operator.Name, retrieved.Operator.Name)
}

// TestMarkProcessed tests flipping the processed flag
func (suite *ContactRepositoryTestSuite) TestMarkProcessed() {
	lead, source, operator := suite.createReferences()

	contact := suite.factories.Contact.Assigned(lead.ID, source.ID, operator.ID)
	suite.NoError(suite.repo.Create(contact))

	processed, err := suite.repo.MarkProcessed(contact.ID)
	suite.NoError(err)
	suite.True(processed.IsProcessed)

	retrieved, err := suite.repo.GetByID(contact.ID)
	suite.NoError(err)
	suite.True(retrieved.IsProcessed)
}

// TestCountUnfinishedForOperator tests that only open assigned contacts count
func (suite *ContactRepositoryTestSuite) TestCountUnfinishedForOperator() {
	lead, source, operator := suite.createReferences()

	other := suite.factories.Operator.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	// Two open contacts for the operator
	suite.NoError(suite.repo.Create(suite.factories.Contact.Assigned(lead.ID, source.ID, operator.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Contact.Assigned(lead.ID, source.ID, operator.ID)))

	// Processed contacts no longer count toward load
	suite.NoError(suite.repo.Create(suite.factories.Contact.Processed(lead.ID, source.ID, operator.ID)))

	// Queued and other-operator contacts never count
	suite.NoError(suite.repo.Create(suite.factories.Contact.Create(lead.ID, source.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Contact.Assigned(lead.ID, source.ID, other.ID)))

	count, err := suite.repo.CountUnfinishedForOperator(operator.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	otherCount, err := suite.repo.CountUnfinishedForOperator(other.ID)
	suite.NoError(err)
	suite.Equal(int64(1), otherCount)
}

// TestGetUnprocessed tests the unprocessed backlog listing
func (suite *ContactRepositoryTestSuite) TestGetUnprocessed() {
	lead, source, operator := suite.createReferences()

	suite.NoError(suite.repo.Create(suite.factories.Contact.Create(lead.ID, source.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Contact.Assigned(lead.ID, source.ID, operator.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Contact.Processed(lead.ID, source.ID, operator.ID)))

	contacts, total, err := suite.repo.GetUnprocessed(10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(contacts, 2)
	for _, c := range contacts {
		suite.False(c.IsProcessed)
	}
}

// TestGetByLeadID tests listing a lead's contact history
func (suite *ContactRepositoryTestSuite) TestGetByLeadID() {
	lead, source, _ := suite.createReferences()

	otherLead := suite.factories.Lead.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherLead).Error)

	suite.NoError(suite.repo.Create(suite.factories.Contact.Create(lead.ID, source.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Contact.Create(lead.ID, source.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Contact.Create(otherLead.ID, source.ID)))

	contacts, err := suite.repo.GetByLeadID(lead.ID)
	suite.NoError(err)
	suite.Len(contacts, 2)
}

// TestContactRepositoryTestSuite runs the test suite
func TestContactRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContactRepositoryTestSuite))
}
