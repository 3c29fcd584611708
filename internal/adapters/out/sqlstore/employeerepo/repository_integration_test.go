package employeerepo_test

import (
	"context"
	"testing"
	"time"

	"opsworker/internal/adapters/out/sqlstore/employeerepo"
	"opsworker/internal/adapters/out/sqlstore/sqltest"
	"opsworker/internal/core/domain/model/staff"
	"opsworker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type EmployeeRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *sqltest.Database
	repository *employeerepo.GormEmployeeRepository
}

func (suite *EmployeeRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	database, err := sqltest.StartMySQL(ctx, time.UTC)
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(sqltest.Exec(database.DB, `CREATE TABLE Employee (
		EmpId VARCHAR(10) PRIMARY KEY,
		EmpHP VARCHAR(20) NULL,
		EmpJoinStatus VARCHAR(20),
		BranchId VARCHAR(3)
	)`))

	suite.repository = employeerepo.NewGormEmployeeRepository(database.DB)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(sqltest.Exec(suite.database.DB,
		`DELETE FROM Employee`,
		`INSERT INTO Employee VALUES
			('0201324', '62811111', 'PERMANENT', '020'),
			('0202171', NULL, 'CONTRACT', '020'),
			('0202999', '62899999', 'QUIT', '020'),
			('0623000', '62877777', 'PERMANENT', '062')`,
	))
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestListPhones() {
	records, err := suite.repository.ListPhones(context.Background())

	suite.Require().NoError(err)
	suite.Equal([]staff.PhoneRecord{
		{EmployeeID: "0201324", PhoneNumber: "62811111"},
		{EmployeeID: "0202171", PhoneNumber: ""},
	}, records)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestUpdatePhone() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.UpdatePhone(ctx, "0202171", "62822222"))

	var phone string
	suite.Require().NoError(suite.database.DB.Raw(`SELECT EmpHP FROM Employee WHERE EmpId = ?`, "0202171").Scan(&phone).Error)
	suite.Equal("62822222", phone)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestUpdatePhone_UnknownEmployee() {
	err := suite.repository.UpdatePhone(context.Background(), "0000000", "62822222")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestEmployeeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryIntegrationTestSuite))
}
