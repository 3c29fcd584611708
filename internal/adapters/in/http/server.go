// Package http exposes the operational HTTP surface: a health check, a way
// to run a job without going through the queue, and a preview of the
// dispatch report. Routes and bodies follow the contract in api/openapi.yaml.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"opsworker/internal/core/application/router"
	"opsworker/internal/core/application/usecases/queries"
	"opsworker/internal/core/domain/services"
	"opsworker/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Dispatcher runs one job.
type Dispatcher interface {
	Dispatch(ctx context.Context, job router.Job) error
}

// DispatchReporter builds the dispatch report.
type DispatchReporter interface {
	Handle(ctx context.Context, query queries.GetDispatchReportQuery) (services.DispatchReport, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the generated ServerInterface on top of the job router.
type Server struct {
	dispatcher Dispatcher
	reporter   DispatchReporter
}

// NewServer creates a Server. A nil reporter disables the report preview.
func NewServer(dispatcher Dispatcher, reporter DispatchReporter) *Server {
	return &Server{dispatcher: dispatcher, reporter: reporter}
}

// Register mounts the API routes on e behind the request validator, along
// with the Swagger UI under /swagger/.
func (s *Server) Register(e *echo.Echo) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load api contract: %w", err)
	}

	validator, err := RequestValidator(swagger)
	if err != nil {
		return err
	}
	if err := RegisterSwaggerUI(e, swagger); err != nil {
		return err
	}

	e.Use(validator)
	servers.RegisterHandlers(e, s)
	return nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// RunJob handles POST /api/v1/jobs - runs the job in the body and waits for
// it to finish.
func (s *Server) RunJob(ctx echo.Context) error {
	var body servers.RunJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	job := router.Job{
		Name:       body.Name,
		Notify:     body.Notify,
		Phone:      body.Phone,
		Attributes: body.Attributes,
		Contact:    body.Contact,
	}

	started := time.Now()
	err := s.dispatcher.Dispatch(ctx.Request().Context(), job)
	switch {
	case errors.Is(err, router.ErrUnknownJob):
		return ctx.JSON(http.StatusNotFound, servers.Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, router.ErrInvalidJob):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: err.Error()})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, servers.JobResult{
		Job:      job.Name,
		Duration: time.Since(started).Round(time.Millisecond).String(),
	})
}

// GetDispatchReport handles GET /api/v1/dispatch-report - builds the
// dispatch report without sending it. format=text returns the message as
// it would be delivered.
func (s *Server) GetDispatchReport(ctx echo.Context, params servers.GetDispatchReportParams) error {
	if s.reporter == nil {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Dispatch report preview is disabled",
		})
	}

	report, err := s.reporter.Handle(ctx.Request().Context(), queries.NewGetDispatchReportQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build dispatch report",
		})
	}

	if params.Format != nil && *params.Format == servers.Text {
		return ctx.String(http.StatusOK, report.Text)
	}

	response := servers.DispatchReport{
		Text:      report.Text,
		Engineers: len(report.Engineers),
		Anomalies: make([]servers.Anomaly, len(report.Anomalies)),
	}
	for i, a := range report.Anomalies {
		response.Anomalies[i] = servers.Anomaly{EmployeeId: a.EmployeeID.String(), Name: a.Name, Error: a.Err.Error()}
	}

	return ctx.JSON(http.StatusOK, response)
}
