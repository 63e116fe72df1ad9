//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"crm-distribution-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadRepositoryTestSuite tests the LeadRepository
type LeadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LeadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeadRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LeadRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByExternalID tests creating a lead and finding it by external id
func (suite *LeadRepositoryTestSuite) TestCreateAndGetByExternalID() {
	lead := suite.factories.Lead.WithExternalID("crm-1001")

	err := suite.repo.Create(lead)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByExternalID("crm-1001")
	suite.NoError(err)
	suite.Equal(lead.ID, retrieved.ID)
	suite.Equal("crm-1001", *retrieved.ExternalID)
}

// TestCreateDuplicateExternalID tests that the external id unique index holds
func (suite *LeadRepositoryTestSuite) TestCreateDuplicateExternalID() {
	first := suite.factories.Lead.WithExternalID("crm-dup")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Lead.WithExternalID("crm-dup")
	err := suite.repo.Create(second)
	suite.Error(err)
}

// TestGetByExternalIDNotFound tests looking up an unknown external id
func (suite *LeadRepositoryTestSuite) TestGetByExternalIDNotFound() {
	lead, err := suite.repo.GetByExternalID("no-such-id")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(lead)
}

// TestFindByPhoneOrEmail_PhoneOnly tests matching on phone when email is absent
func (suite *LeadRepositoryTestSuite) TestFindByPhoneOrEmail_PhoneOnly() {
	lead := suite.factories.Lead.WithPhone("+1-555-0001")
	suite.NoError(suite.repo.Create(lead))

	phone := "+1-555-0001"
	retrieved, err := suite.repo.FindByPhoneOrEmail(&phone, nil)
	suite.NoError(err)
	suite.Equal(lead.ID, retrieved.ID)
}

// TestFindByPhoneOrEmail_EitherMatches tests that either identifier can match
func (suite *LeadRepositoryTestSuite) TestFindByPhoneOrEmail_EitherMatches() {
	lead := suite.factories.Lead.WithEmail("alice@example.com")
	suite.NoError(suite.repo.Create(lead))

	// Phone does not exist anywhere, email does
	phone := "+1-555-9999"
	email := "alice@example.com"
	retrieved, err := suite.repo.FindByPhoneOrEmail(&phone, &email)
	suite.NoError(err)
	suite.Equal(lead.ID, retrieved.ID)
}

// TestFindByPhoneOrEmail_OldestWins tests that ties resolve to the oldest lead
func (suite *LeadRepositoryTestSuite) TestFindByPhoneOrEmail_OldestWins() {
	phone := "+1-555-7777"

	older := suite.factories.Lead.WithPhone(phone)
	older.CreatedAt = time.Now().Add(-time.Hour)
	older.UpdatedAt = older.CreatedAt
	suite.NoError(suite.repo.Create(older))

	newer := suite.factories.Lead.WithPhone(phone)
	suite.NoError(suite.repo.Create(newer))

	retrieved, err := suite.repo.FindByPhoneOrEmail(&phone, nil)
	suite.NoError(err)
	suite.Equal(older.ID, retrieved.ID)
}

// TestFindByPhoneOrEmail_NoHints tests that empty hints never match anything
func (suite *LeadRepositoryTestSuite) TestFindByPhoneOrEmail_NoHints() {
	lead := suite.factories.Lead.Create()
	suite.NoError(suite.repo.Create(lead))

	retrieved, err := suite.repo.FindByPhoneOrEmail(nil, nil)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetAll tests listing leads with pagination
func (suite *LeadRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Lead.Create()))
	}

	leads, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(leads, 2)

	rest, total, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(rest, 1)
}

// TestLeadRepositoryTestSuite runs the test suite
func TestLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepositoryTestSuite))
}
