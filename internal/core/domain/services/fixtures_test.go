package services_test

import (
	"testing"
	"time"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var jakarta = mustLoadLocation("Asia/Jakarta")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// at returns 2024-05-14 hh:mm in Jakarta, the date of every fixture day.
func at(hh, mm int) time.Time {
	return time.Date(2024, 5, 14, hh, mm, 0, 0, jakarta)
}

func yesterday(hh, mm int) time.Time {
	return at(hh, mm).AddDate(0, 0, -1)
}

func ptr(t time.Time) *time.Time { return &t }

func fixtureDay(t *testing.T) kernel.OperativeDay {
	t.Helper()
	day, err := kernel.NewOperativeDay(at(13, 0), "08:30", jakarta)
	require.NoError(t, err)
	return day
}

type nicknames map[engineer.EmployeeID]string

func (n nicknames) Nickname(id engineer.EmployeeID) (string, bool) {
	nick, ok := n[id]
	return nick, ok
}
