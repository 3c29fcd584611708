// Package employeerepo reads and writes employee phone numbers in the
// billing database.
package employeerepo

import (
	"context"

	"opsworker/internal/core/domain/model/staff"
	"opsworker/internal/pkg/errs"

	"gorm.io/gorm"
)

const branchID = "020"

type phoneRecordDTO struct {
	EmployeeID  string `gorm:"column:employeeId"`
	PhoneNumber string `gorm:"column:phoneNumber"`
}

// GormEmployeeRepository implements ports.EmployeePhoneRepository.
type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// ListPhones returns the phone of every employee of the branch that has not
// quit.
func (r *GormEmployeeRepository) ListPhones(ctx context.Context) ([]staff.PhoneRecord, error) {
	var dtos []phoneRecordDTO
	if err := r.db.WithContext(ctx).Raw(`
		SELECT EmpId employeeId, IFNULL(EmpHP, '') phoneNumber
		FROM Employee
		WHERE BranchId = ? AND NOT (EmpJoinStatus = 'QUIT')
		ORDER BY EmpId
	`, branchID).Scan(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]staff.PhoneRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, staff.PhoneRecord{EmployeeID: dto.EmployeeID, PhoneNumber: dto.PhoneNumber})
	}
	return records, nil
}

// UpdatePhone sets the phone of employeeID.
func (r *GormEmployeeRepository) UpdatePhone(ctx context.Context, employeeID, phone string) error {
	if employeeID == "" {
		return errs.NewValueIsRequiredError("employeeID")
	}

	result := r.db.WithContext(ctx).Exec(`UPDATE Employee SET EmpHP = ? WHERE EmpId = ?`, phone, employeeID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", employeeID)
	}
	return nil
}
