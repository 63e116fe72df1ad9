//go:build integration
// +build integration

package repository

import (
	"sort"
	"testing"

	"crm-distribution-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OperatorRepositoryTestSuite tests the OperatorRepository
type OperatorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OperatorRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OperatorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOperatorRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OperatorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OperatorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OperatorRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests creating and fetching an operator
func (suite *OperatorRepositoryTestSuite) TestCreateAndGetByID() {
	operator := suite.factories.Operator.WithMaxLoad(7)
	suite.NoError(suite.repo.Create(operator))

	retrieved, err := suite.repo.GetByID(operator.ID)
	suite.NoError(err)
	suite.Equal(operator.ID, retrieved.ID)
	suite.Equal(7, retrieved.MaxLoad)
	suite.True(retrieved.IsActive)
}

// TestGetByIDsForUpdate tests that locked reads come back in ascending id order
func (suite *OperatorRepositoryTestSuite) TestGetByIDsForUpdate() {
	ids := make([]uuid.UUID, 0, 3)
	for i := 0; i < 3; i++ {
		operator := suite.factories.Operator.Create()
		suite.NoError(suite.repo.Create(operator))
		ids = append(ids, operator.ID)
	}

	// Hand the ids over in an order the query must not preserve
	shuffled := []uuid.UUID{ids[2], ids[0], ids[1]}

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		operators, err := NewOperatorRepository(tx).GetByIDsForUpdate(shuffled)
		suite.NoError(err)
		suite.Len(operators, 3)

		suite.True(sort.SliceIsSorted(operators, func(i, j int) bool {
			return operators[i].ID.String() < operators[j].ID.String()
		}))
		return nil
	})
	suite.NoError(err)
}

// TestUpdate tests persisting operator changes
func (suite *OperatorRepositoryTestSuite) TestUpdate() {
	operator := suite.factories.Operator.Create()
	suite.NoError(suite.repo.Create(operator))

	operator.IsActive = false
	operator.MaxLoad = 3
	suite.NoError(suite.repo.Update(operator))

	retrieved, err := suite.repo.GetByID(operator.ID)
	suite.NoError(err)
	suite.False(retrieved.IsActive)
	suite.Equal(3, retrieved.MaxLoad)
}

// TestDelete tests removing an operator
func (suite *OperatorRepositoryTestSuite) TestDelete() {
	operator := suite.factories.Operator.Create()
	suite.NoError(suite.repo.Create(operator))

	suite.NoError(suite.repo.Delete(operator.ID))

	_, err := suite.repo.GetByID(operator.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetAll tests listing operators with pagination
func (suite *OperatorRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 4; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Operator.Create()))
	}

	operators, total, err := suite.repo.GetAll(3, 0)
	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(operators, 3)
}

// TestOperatorRepositoryTestSuite runs the test suite
func TestOperatorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OperatorRepositoryTestSuite))
}
