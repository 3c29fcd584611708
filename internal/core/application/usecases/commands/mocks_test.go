package commands_test

import (
	"context"
	"log/slog"
	"time"

	"opsworker/internal/core/application/usecases/queries"
	"opsworker/internal/core/domain/model/alert"
	"opsworker/internal/core/domain/model/contact"
	"opsworker/internal/core/domain/model/network"
	"opsworker/internal/core/domain/model/staff"
	"opsworker/internal/core/domain/services"
	"opsworker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, to, msg string) error {
	args := m.Called(ctx, to, msg)
	return args.Error(0)
}

type MockDispatchReporter struct {
	mock.Mock
}

func (m *MockDispatchReporter) Handle(ctx context.Context, query queries.GetDispatchReportQuery) (services.DispatchReport, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(services.DispatchReport), args.Error(1)
}

type MockEmployeePhoneRepository struct {
	mock.Mock
}

func (m *MockEmployeePhoneRepository) ListPhones(ctx context.Context) ([]staff.PhoneRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]staff.PhoneRecord), args.Error(1)
}

func (m *MockEmployeePhoneRepository) UpdatePhone(ctx context.Context, employeeID, phone string) error {
	args := m.Called(ctx, employeeID, phone)
	return args.Error(0)
}

type MockHRDirectory struct {
	mock.Mock
}

func (m *MockHRDirectory) ListFieldBranchEmployees(ctx context.Context) ([]staff.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]staff.Employee), args.Error(1)
}

func (m *MockHRDirectory) ListActiveEmployees(ctx context.Context) ([]staff.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]staff.Employee), args.Error(1)
}

type MockGraphLinkRepository struct {
	mock.Mock
}

func (m *MockGraphLinkRepository) ListLinkedGraphIDs(ctx context.Context) ([]network.GraphID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]network.GraphID), args.Error(1)
}

func (m *MockGraphLinkRepository) ListBlockedSubscriberGraphs(ctx context.Context) ([]network.SubscriberGraph, error) {
	args := m.Called(ctx)
	return args.Get(0).([]network.SubscriberGraph), args.Error(1)
}

func (m *MockGraphLinkRepository) DeleteLinks(ctx context.Context, ids []network.GraphID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockGraphMonitor struct {
	mock.Mock
}

func (m *MockGraphMonitor) ExistingGraphs(ctx context.Context, ids []network.GraphID) ([]network.GraphID, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]network.GraphID), args.Error(1)
}

func (m *MockGraphMonitor) OverSpeedGraphs(
	ctx context.Context,
	ids []network.GraphID,
	threshold uint64,
	since time.Time,
) ([]network.GraphID, error) {
	args := m.Called(ctx, ids, threshold, since)
	return args.Get(0).([]network.GraphID), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GraphLinkRepository() ports.GraphLinkRepository {
	args := m.Called()
	return args.Get(0).(ports.GraphLinkRepository)
}

type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

type MockMetricFileWriter struct {
	mock.Mock
}

func (m *MockMetricFileWriter) WriteGauges(ctx context.Context, path string, family ports.GaugeFamily) error {
	args := m.Called(ctx, path, family)
	return args.Error(0)
}

type MockAlertSource struct {
	mock.Mock
}

func (m *MockAlertSource) FetchAlerts(ctx context.Context) ([]alert.Alert, error) {
	args := m.Called(ctx)
	return args.Get(0).([]alert.Alert), args.Error(1)
}

type MockSilenceSubmitter struct {
	mock.Mock
}

func (m *MockSilenceSubmitter) CreateSilence(ctx context.Context, s alert.Silence) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByPhone(ctx context.Context, phone string) (contact.Detail, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(contact.Detail), args.Error(1)
}

type MockContactSync struct {
	mock.Mock
}

func (m *MockContactSync) Sync(ctx context.Context, payload contact.SyncPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var jakarta = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		panic(err)
	}
	return loc
}()

type MockSupportQueue struct {
	mock.Mock
}

func (m *MockSupportQueue) FetchWaiting(ctx context.Context) ([]contact.Waiting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]contact.Waiting), args.Error(1)
}
