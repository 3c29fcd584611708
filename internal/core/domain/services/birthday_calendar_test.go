package services_test

import (
	"testing"
	"time"

	"opsworker/internal/core/domain/model/staff"
	"opsworker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirthdayCalendar_NextWeek(t *testing.T) {
	calendar := services.NewBirthdayCalendar(jakarta)
	// Tuesday 14 May 2024; next week is Sunday 19 through Saturday 25 May.
	now := at(10, 0)

	born := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	employees := []staff.Employee{
		{FullName: "Saturday", ActiveStatus: "Active", DateOfBirth: born(1990, time.May, 25)},
		{FullName: "Sunday", ActiveStatus: "Active", DateOfBirth: born(1985, time.May, 19)},
		{FullName: "This week", ActiveStatus: "Active", DateOfBirth: born(1991, time.May, 16)},
		{FullName: "Week after", ActiveStatus: "Active", DateOfBirth: born(1992, time.May, 26)},
		{FullName: "Intern", ActiveStatus: "Active", JoinStatus: "Internship", DateOfBirth: born(2000, time.May, 20)},
		{FullName: "Gone", ActiveStatus: "Inactive", DateOfBirth: born(1980, time.May, 21)},
		{FullName: "Unknown", ActiveStatus: "Active"},
	}

	got := calendar.NextWeek(employees, now)

	require.Len(t, got, 2)
	assert.Equal(t, "05-19 Sunday", got[0].Label())
	assert.Equal(t, "05-25 Saturday", got[1].Label())
	assert.Equal(t, time.Date(2024, 5, 19, 0, 0, 0, 0, jakarta), got[0].On)
}

func TestBirthdayCalendar_NextWeekFromSunday(t *testing.T) {
	calendar := services.NewBirthdayCalendar(jakarta)
	sunday := time.Date(2024, 5, 19, 9, 0, 0, 0, jakarta)

	got := calendar.NextWeek([]staff.Employee{
		{FullName: "Today", ActiveStatus: "Active", DateOfBirth: time.Date(1990, 5, 19, 0, 0, 0, 0, time.UTC)},
		{FullName: "Next Sunday", ActiveStatus: "Active", DateOfBirth: time.Date(1990, 5, 26, 0, 0, 0, 0, time.UTC)},
	}, sunday)

	require.Len(t, got, 1)
	assert.Equal(t, "Next Sunday", got[0].Employee.FullName)
}
