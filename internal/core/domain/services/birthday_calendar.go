package services

import (
	"slices"
	"time"

	"opsworker/internal/core/domain/model/staff"
)

// Birthday is an employee's next birthday.
type Birthday struct {
	Employee staff.Employee
	On       time.Time
}

// Label renders the birthday as "MM-DD Full Name".
func (b Birthday) Label() string {
	return b.Employee.DateOfBirth.Format("01-02") + " " + b.Employee.FullName
}

// BirthdayCalendar finds birthdays in the coming calendar week, which runs
// from the next Sunday through the following Saturday.
type BirthdayCalendar struct {
	loc *time.Location
}

// NewBirthdayCalendar creates a calendar reading dates in loc.
func NewBirthdayCalendar(loc *time.Location) BirthdayCalendar {
	if loc == nil {
		loc = time.Local
	}
	return BirthdayCalendar{loc: loc}
}

// NextWeek returns the active, non-intern employees whose birthday falls in
// the week after now, sorted by date. Employees without a date of birth are
// skipped.
func (c BirthdayCalendar) NextWeek(employees []staff.Employee, now time.Time) []Birthday {
	local := now.In(c.loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
	sunday := today.AddDate(0, 0, 7-int(today.Weekday()))

	type monthDay struct {
		m time.Month
		d int
	}
	window := make(map[monthDay]time.Time, 7)
	for i := 0; i < 7; i++ {
		day := sunday.AddDate(0, 0, i)
		window[monthDay{day.Month(), day.Day()}] = day
	}

	var out []Birthday
	for _, e := range employees {
		if !e.IsActive() || e.IsIntern() || e.DateOfBirth.IsZero() {
			continue
		}
		if on, ok := window[monthDay{e.DateOfBirth.Month(), e.DateOfBirth.Day()}]; ok {
			out = append(out, Birthday{Employee: e, On: on})
		}
	}

	slices.SortStableFunc(out, func(a, b Birthday) int {
		return a.On.Compare(b.On)
	})
	return out
}
