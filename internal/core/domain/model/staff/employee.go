// Package staff models employees as listed by the HR system.
package staff

import (
	"strings"
	"time"

	"opsworker/internal/core/domain/model/kernel"
)

const (
	activeStatus     = "active"
	internshipStatus = "Internship"
)

// Employee is one HR record.
type Employee struct {
	EmployeeID   string
	FullName     string
	WhatsApp     string
	MobilePhone  string
	ActiveStatus string
	JoinStatus   string

	// DateOfBirth is a civil date; only year, month and day are meaningful.
	DateOfBirth time.Time
}

// IsActive reports whether HR lists the employee as active.
func (e Employee) IsActive() bool {
	return strings.EqualFold(e.ActiveStatus, activeStatus)
}

// IsIntern reports whether the employee joined as an intern.
func (e Employee) IsIntern() bool {
	return e.JoinStatus == internshipStatus
}

// Phone is the normalized WhatsApp number, falling back to the mobile number.
// It is empty when neither is set.
func (e Employee) Phone() string {
	raw := e.WhatsApp
	if raw == "" {
		raw = e.MobilePhone
	}
	return kernel.NormalizePhoneNumber(raw)
}

// PhoneRecord is an employee phone number as stored in the billing system.
type PhoneRecord struct {
	EmployeeID  string
	PhoneNumber string
}
