// Package sqlstore opens the relational stores the worker reads and owns the
// unit of work over the billing database.
//
// Three databases are involved:
//   - NIS, the billing system (employees, subscriptions, graph links, contacts)
//   - DBZ, the ticketing system (tickets, PIC assignments, engineer roster)
//   - Zabbix, the monitoring database (graphs, items, traffic history)
//
// Each is opened from its own Config and may run on MySQL or PostgreSQL.
//
// Example:
//
//	db, err := sqlstore.Open(sqlstore.Config{
//	    Driver:   sqlstore.DriverMySQL,
//	    Host:     "nis.internal",
//	    Port:     3306,
//	    User:     "worker",
//	    Password: "secret",
//	    Name:     "nis",
//	}, loc)
//	if err != nil {
//	    return err
//	}
package sqlstore

import (
	"fmt"
	"net/url"
	"time"

	"opsworker/internal/pkg/errs"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config locates one database.
type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DSN renders the driver-specific connection string. Timestamps without a
// zone are read in loc.
func (c Config) DSN(loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}
	switch c.Driver {
	case DriverMySQL, "":
		cfg := mysqldriver.NewConfig()
		cfg.User = c.User
		cfg.Passwd = c.Password
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
		cfg.DBName = c.Name
		cfg.ParseTime = true
		cfg.Loc = loc
		return cfg.FormatDSN(), nil
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
			Path:     "/" + c.Name,
			RawQuery: url.Values{"sslmode": {"disable"}, "TimeZone": {loc.String()}}.Encode(),
		}
		return u.String(), nil
	default:
		return "", errs.NewValueIsInvalidError("driver")
	}
}

// Open connects to the database described by cfg.
func Open(cfg Config, loc *time.Location) (*gorm.DB, error) {
	dsn, err := cfg.DSN(loc)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	if cfg.Driver == DriverPostgres {
		dialector = postgres.Open(dsn)
	} else {
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database %q: %w", cfg.Driver, cfg.Name, err)
	}
	return db, nil
}

// Close releases the connection pool of db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
