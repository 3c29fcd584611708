package commands_test

import (
	"errors"
	"testing"

	"opsworker/internal/core/application/usecases/commands"
	"opsworker/internal/core/domain/model/staff"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncEmployeePhonesCommandHandler_Handle(t *testing.T) {
	t.Run("should update only the phones HR knows differently", func(t *testing.T) {
		ctx := t.Context()
		phones := new(MockEmployeePhoneRepository)
		hr := new(MockHRDirectory)

		phones.On("ListPhones", ctx).Return([]staff.PhoneRecord{
			{EmployeeID: "0201324", PhoneNumber: "62811111"},
			{EmployeeID: "0202171", PhoneNumber: "0000"},
			{EmployeeID: "0202105", PhoneNumber: "0000"},
			{EmployeeID: "0202220", PhoneNumber: "0000"},
			{EmployeeID: "0202265", PhoneNumber: "0000"},
		}, nil).Once()
		hr.On("ListFieldBranchEmployees", ctx).Return([]staff.Employee{
			{EmployeeID: "0201324", WhatsApp: "0811111", ActiveStatus: "Active"},
			{EmployeeID: "0202171", MobilePhone: "0822-22", ActiveStatus: "Active"},
			{EmployeeID: "0202105", WhatsApp: "0833", ActiveStatus: "Inactive"},
			{EmployeeID: "0202220", WhatsApp: "0844", ActiveStatus: "Active"},
		}, nil).Once()
		phones.On("UpdatePhone", ctx, "0202171", "6282222").Return(errors.New("lock wait timeout")).Once()
		phones.On("UpdatePhone", ctx, "0202220", "62844").Return(nil).Once()

		handler := commands.NewSyncEmployeePhonesCommandHandler(phones, hr, discardLogger())
		err := handler.Handle(ctx, commands.NewSyncEmployeePhonesCommand())

		require.NoError(t, err)
		phones.AssertExpectations(t)
		phones.AssertNumberOfCalls(t, "UpdatePhone", 2)
	})

	t.Run("should fail when billing cannot be read", func(t *testing.T) {
		ctx := t.Context()
		phones := new(MockEmployeePhoneRepository)
		hr := new(MockHRDirectory)
		listErr := errors.New("connection refused")
		phones.On("ListPhones", ctx).Return([]staff.PhoneRecord(nil), listErr).Once()

		handler := commands.NewSyncEmployeePhonesCommandHandler(phones, hr, discardLogger())
		err := handler.Handle(ctx, commands.NewSyncEmployeePhonesCommand())

		require.ErrorIs(t, err, listErr)
		hr.AssertNotCalled(t, "ListFieldBranchEmployees", mock.Anything)
	})

	t.Run("should fail when HR cannot be read", func(t *testing.T) {
		ctx := t.Context()
		phones := new(MockEmployeePhoneRepository)
		hr := new(MockHRDirectory)
		hrErr := errors.New("401 unauthorized")
		phones.On("ListPhones", ctx).Return([]staff.PhoneRecord{}, nil).Once()
		hr.On("ListFieldBranchEmployees", ctx).Return([]staff.Employee(nil), hrErr).Once()

		handler := commands.NewSyncEmployeePhonesCommandHandler(phones, hr, discardLogger())
		err := handler.Handle(ctx, commands.NewSyncEmployeePhonesCommand())

		require.ErrorIs(t, err, hrErr)
	})
}
