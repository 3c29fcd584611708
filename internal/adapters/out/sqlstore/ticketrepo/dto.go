// Package ticketrepo reads tickets, PIC assignments and the engineer roster
// from the ticketing database.
package ticketrepo

import (
	"database/sql"
	"time"

	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/ticket"
)

// updateRowDTO is one TtsUpdate row joined with its Tts ticket.
type updateRowDTO struct {
	TicketID     int64      `gorm:"column:ticketId"`
	PicNo        int        `gorm:"column:picNo"`
	VcID         int64      `gorm:"column:vcId"`
	UpdatedTime  time.Time  `gorm:"column:updatedTime"`
	Status       string     `gorm:"column:status"`
	UpdateStatus string     `gorm:"column:updateStatus"`
	VisitTime    *time.Time `gorm:"column:visitTime"`
}

func (d updateRowDTO) toDomain() ticket.UpdateRow {
	return ticket.UpdateRow{
		TicketID:     ticket.ID(d.TicketID),
		PicSlot:      d.PicNo,
		VisitCardID:  ticket.VisitCardID(d.VcID),
		UpdatedAt:    d.UpdatedTime,
		Status:       d.Status,
		UpdateStatus: d.UpdateStatus,
		VisitAt:      d.VisitTime,
	}
}

type picAssignmentDTO struct {
	TicketID   int64  `gorm:"column:ticketId"`
	AssignedNo int    `gorm:"column:assignedNo"`
	EmployeeID string `gorm:"column:employeeId"`
}

func (d picAssignmentDTO) toDomain() engineer.PicAssignment {
	return engineer.PicAssignment{
		TicketID:   ticket.ID(d.TicketID),
		Slot:       d.AssignedNo,
		EmployeeID: engineer.EmployeeID(d.EmployeeID),
	}
}

type rosterRowDTO struct {
	EmployeeID      string        `gorm:"column:employeeId"`
	Name            string        `gorm:"column:name"`
	VisitCardUserID sql.NullInt64 `gorm:"column:visitcardUserId"`
}

func (d rosterRowDTO) toDomain() engineer.RosterRow {
	return engineer.RosterRow{
		EmployeeID:      engineer.EmployeeID(d.EmployeeID),
		Name:            d.Name,
		VisitCardUserID: engineer.VisitCardUserID(d.VisitCardUserID.Int64),
	}
}
