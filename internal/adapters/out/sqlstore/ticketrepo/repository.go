package ticketrepo

import (
	"context"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/kernel"
	"opsworker/internal/core/domain/model/ticket"

	"gorm.io/gorm"
)

// branchID is the branch whose tickets and engineers are dispatched.
const branchID = "020"

// fieldDepartmentID is the department of field engineers.
const fieldDepartmentID = "04"

// GormTicketRepository implements ports.TicketSource on the ticketing
// database.
type GormTicketRepository struct {
	db *gorm.DB
}

func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// FetchTicketRows returns every update of every open, pending or queued
// ticket of the branch that has a visit card and a PIC slot. The whole log is
// returned: only the newest row of each ticket is meaningful and it may
// predate day.
func (r *GormTicketRepository) FetchTicketRows(ctx context.Context, _ kernel.OperativeDay) ([]ticket.UpdateRow, error) {
	var dtos []updateRowDTO
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			tu.TtsId ticketId,
			t.AssignedNo picNo,
			t.VcId vcId,
			tu.UpdatedTime updatedTime,
			t.Status status,
			tu.Status updateStatus,
			t.VisitTime visitTime
		FROM TtsUpdate tu
		LEFT JOIN Tts t ON tu.TtsId = t.TtsId
		LEFT JOIN Employee e ON t.EmpId = e.EmpId
		WHERE t.Status IN ('Open', 'Pending', 'Call')
			AND t.VcId > 0
			AND t.AssignedNo > 0
			AND e.BranchId = ?
		ORDER BY tu.TtsId, tu.UpdatedTime DESC
	`, branchID).Scan(&dtos).Error; err != nil {
		return nil, err
	}

	rows := make([]ticket.UpdateRow, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, dto.toDomain())
	}
	return rows, nil
}

// FetchPicAssignments returns the PIC rows matching the given
// (ticket, slot) pairs.
func (r *GormTicketRepository) FetchPicAssignments(
	ctx context.Context,
	slots []ticket.PicSlot,
) ([]engineer.PicAssignment, error) {
	if len(slots) == 0 {
		return nil, nil
	}

	pairs := make([][]any, 0, len(slots))
	for _, s := range slots {
		pairs = append(pairs, []any{int64(s.TicketID), s.Slot})
	}

	var dtos []picAssignmentDTO
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			tp.TtsId ticketId,
			tp.AssignedNo assignedNo,
			tp.EmpId employeeId
		FROM TtsPIC tp
		WHERE (tp.TtsId, tp.AssignedNo) IN ?
		ORDER BY tp.TtsId, tp.EmpId
	`, pairs).Scan(&dtos).Error; err != nil {
		return nil, err
	}

	assignments := make([]engineer.PicAssignment, 0, len(dtos))
	for _, dto := range dtos {
		assignments = append(assignments, dto.toDomain())
	}
	return assignments, nil
}

// FetchRoster returns the field engineers of the branch that have not quit.
func (r *GormTicketRepository) FetchRoster(ctx context.Context) ([]engineer.RosterRow, error) {
	var dtos []rosterRowDTO
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			EmpId employeeId,
			CONCAT(EmpFName, ' ', EmpLName) name,
			VisitCardUserId visitcardUserId
		FROM Employee
		WHERE NOT EmpJoinStatus = 'QUIT'
			AND DisplayBranchId = ?
			AND DeptId = ?
		ORDER BY EmpId
	`, branchID, fieldDepartmentID).Scan(&dtos).Error; err != nil {
		return nil, err
	}

	rows := make([]engineer.RosterRow, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, dto.toDomain())
	}
	return rows, nil
}
