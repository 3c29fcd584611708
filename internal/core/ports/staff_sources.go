package ports

import (
	"context"

	"opsworker/internal/core/domain/model/staff"
)

// HRDirectory reads employee records from the HR system.
type HRDirectory interface {
	// ListFieldBranchEmployees returns the employees of the field branches,
	// active or not.
	ListFieldBranchEmployees(ctx context.Context) ([]staff.Employee, error)

	// ListActiveEmployees returns every active employee.
	ListActiveEmployees(ctx context.Context) ([]staff.Employee, error)
}

// EmployeePhoneRepository reads and writes employee phone numbers in the
// billing system.
type EmployeePhoneRepository interface {
	// ListPhones returns the phone of every current employee of the branch.
	ListPhones(ctx context.Context) ([]staff.PhoneRecord, error)

	// UpdatePhone sets the phone number of one employee.
	UpdatePhone(ctx context.Context, employeeID, phone string) error
}
