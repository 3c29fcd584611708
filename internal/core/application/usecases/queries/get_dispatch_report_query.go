package queries

import (
	"errors"

	"opsworker/internal/pkg/guard"
)

var ErrGetDispatchReportQueryIsNotConstructed = errors.New(
	"GetDispatchReportQuery must be created via NewGetDispatchReportQuery constructor",
)

// GetDispatchReportQuery asks for the engineer dispatch report as of now.
type GetDispatchReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDispatchReportQuery() GetDispatchReportQuery {
	return GetDispatchReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDispatchReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchReportQueryIsNotConstructed)
}
