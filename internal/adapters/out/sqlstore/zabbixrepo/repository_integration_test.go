package zabbixrepo_test

import (
	"context"
	"testing"
	"time"

	"opsworker/internal/adapters/out/sqlstore/sqltest"
	"opsworker/internal/adapters/out/sqlstore/zabbixrepo"
	"opsworker/internal/core/domain/model/network"

	"github.com/stretchr/testify/suite"
)

// ZabbixRepositoryIntegrationTestSuite runs the monitoring queries against
// the PostgreSQL flavour of the Zabbix schema.
type ZabbixRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *sqltest.Database
	repository *zabbixrepo.GormZabbixRepository
	now        time.Time
}

func (suite *ZabbixRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := sqltest.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.now = time.Unix(1715666400, 0)
	recent := suite.now.Add(-time.Hour).Unix()
	old := suite.now.Add(-5 * time.Hour).Unix()

	suite.Require().NoError(sqltest.Exec(database.DB,
		`CREATE TABLE graphs (graphid BIGINT PRIMARY KEY, name VARCHAR(128))`,
		`CREATE TABLE graphs_items (gitemid BIGSERIAL PRIMARY KEY, graphid BIGINT, itemid BIGINT)`,
		`CREATE TABLE history_uint (itemid BIGINT, clock INTEGER, value NUMERIC(20, 0), ns INTEGER DEFAULT 0)`,
		`INSERT INTO graphs VALUES (1, 'acme'), (2, 'globex'), (3, 'initech')`,
		`INSERT INTO graphs_items (graphid, itemid) VALUES
			(1, 100), (1, 101),
			(2, 200),
			(3, 101), (3, 300)`,
	))
	suite.Require().NoError(database.DB.Exec(
		`INSERT INTO history_uint (itemid, clock, value) VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?), (?, ?, ?)`,
		101, recent, 2000000,
		101, recent, 3000000,
		200, old, 9000000,
		300, recent, 10,
	).Error)

	suite.repository = zabbixrepo.NewGormZabbixRepository(database.DB)
}

func (suite *ZabbixRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ZabbixRepositoryIntegrationTestSuite) TestExistingGraphs() {
	ids, err := suite.repository.ExistingGraphs(context.Background(), []network.GraphID{3, 9, 1})

	suite.Require().NoError(err)
	suite.Equal([]network.GraphID{3, 1}, ids)
}

func (suite *ZabbixRepositoryIntegrationTestSuite) TestOverSpeedGraphs() {
	ids, err := suite.repository.OverSpeedGraphs(
		context.Background(),
		[]network.GraphID{1, 2, 3},
		1000000,
		suite.now.Add(-4*time.Hour),
	)

	suite.Require().NoError(err)
	suite.Equal([]network.GraphID{1, 3}, ids)
}

func (suite *ZabbixRepositoryIntegrationTestSuite) TestOverSpeedGraphs_UnknownGraphs() {
	ids, err := suite.repository.OverSpeedGraphs(context.Background(), []network.GraphID{42}, 0, suite.now)

	suite.Require().NoError(err)
	suite.Empty(ids)
}

func TestZabbixRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ZabbixRepositoryIntegrationTestSuite))
}
