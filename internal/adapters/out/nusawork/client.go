// Package nusawork reads employees and attendance from the Nusawork HR API.
//
// Every call fetches a short-lived bearer token from the token endpoint
// first.
package nusawork

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"opsworker/internal/adapters/out/httpclient"
	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/staff"
	"opsworker/internal/core/ports"
	"opsworker/internal/pkg/clock"
)

const api = "nusawork"

// fieldBranchIDs are the branches whose employees do field work.
var fieldBranchIDs = []string{"2", "3", "4", "5"}

const (
	attendanceBranchID     = "5"
	attendanceDepartmentID = "31"
	pageCount              = 10000
	dateLayout             = "2006-01-02"
)

var (
	_ ports.HRDirectory  = (*Client)(nil)
	_ ports.PresenceFeed = (*Client)(nil)
)

// Config holds the Nusawork endpoints.
type Config struct {
	TokenURL      string
	APIKey        string
	EmployeeURL   string
	AttendanceURL string
}

// Client is the Nusawork API client.
type Client struct {
	cfg    Config
	client *http.Client
	clock  clock.Clock
	loc    *time.Location
}

// NewClient creates a Client. Dates sent to the API are computed in loc.
// A nil client uses httpclient.New.
func NewClient(cfg Config, client *http.Client, clk clock.Clock, loc *time.Location) *Client {
	if client == nil {
		client = httpclient.New()
	}
	return &Client{cfg: cfg, client: client, clock: clk, loc: loc}
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (c *Client) token(ctx context.Context) (string, error) {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, c.cfg.TokenURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	var resp tokenResponse
	if err := httpclient.Do(c.client, api, req, &resp); err != nil {
		return "", fmt.Errorf("fetch token: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("fetch token: %s returned an empty token", api)
	}
	return resp.Token, nil
}

type employeeFilter struct {
	IDBranch     []string `json:"id_branch,omitempty"`
	ActiveStatus []string `json:"active_status,omitempty"`
}

type employeeQuery struct {
	Fields      employeeFilter `json:"fields"`
	PageCount   int            `json:"page_count"`
	Paginate    bool           `json:"paginate,omitempty"`
	MultiValue  bool           `json:"multi_value,omitempty"`
	CurrentPage int            `json:"currentPage,omitempty"`
	Periods     []string       `json:"periods,omitempty"`
}

type employeeDTO struct {
	EmployeeID   string `json:"employee_id"`
	FullName     string `json:"full_name"`
	ActiveStatus string `json:"active_status"`
	StatusJoin   string `json:"status_join"`
	WhatsApp     string `json:"whatsapp"`
	MobilePhone  string `json:"mobile_phone"`
	DateOfBirth  string `json:"date_of_birth"`
}

type employeeResponse struct {
	Data struct {
		List []employeeDTO `json:"list"`
	} `json:"data"`
}

// ListFieldBranchEmployees returns the employees of the field branches.
func (c *Client) ListFieldBranchEmployees(ctx context.Context) ([]staff.Employee, error) {
	return c.listEmployees(ctx, employeeQuery{
		Fields:     employeeFilter{IDBranch: fieldBranchIDs},
		PageCount:  pageCount,
		Paginate:   true,
		MultiValue: true,
	})
}

// ListActiveEmployees returns every employee active today.
func (c *Client) ListActiveEmployees(ctx context.Context) ([]staff.Employee, error) {
	today := c.clock.Now().In(c.loc).Format(dateLayout)
	return c.listEmployees(ctx, employeeQuery{
		Fields:      employeeFilter{ActiveStatus: []string{"active"}},
		PageCount:   pageCount,
		CurrentPage: 1,
		Periods:     []string{today, today},
	})
}

func (c *Client) listEmployees(ctx context.Context, q employeeQuery) ([]staff.Employee, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost, c.cfg.EmployeeURL, q)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var resp employeeResponse
	if err := httpclient.Do(c.client, api, req, &resp); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees := make([]staff.Employee, 0, len(resp.Data.List))
	for _, dto := range resp.Data.List {
		e, err := c.toEmployee(dto)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func (c *Client) toEmployee(dto employeeDTO) (staff.Employee, error) {
	e := staff.Employee{
		EmployeeID:   dto.EmployeeID,
		FullName:     dto.FullName,
		WhatsApp:     dto.WhatsApp,
		MobilePhone:  dto.MobilePhone,
		ActiveStatus: dto.ActiveStatus,
		JoinStatus:   dto.StatusJoin,
	}
	if dto.DateOfBirth != "" {
		dob, err := time.ParseInLocation(dateLayout, dto.DateOfBirth, c.loc)
		if err != nil {
			return staff.Employee{}, fmt.Errorf("employee %s: date of birth: %w", dto.EmployeeID, err)
		}
		e.DateOfBirth = dob
	}
	return e, nil
}

type attendanceResponse struct {
	Data struct {
		Data []struct {
			EmployeeID string `json:"employee_id"`
		} `json:"data"`
	} `json:"data"`
}

// FetchPresentEmployeeIDs returns the field engineers who are clocked in.
func (c *Client) FetchPresentEmployeeIDs(ctx context.Context) (engineer.IDSet, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(c.cfg.AttendanceURL)
	if err != nil {
		return nil, fmt.Errorf("attendance url: %w", err)
	}
	params := endpoint.Query()
	params.Set("status", "working,clock_out")
	params.Set("id_branch", attendanceBranchID)
	params.Set("id_department", attendanceDepartmentID)
	params.Set("sort_by", "name")
	params.Set("order_by", "asc")
	endpoint.RawQuery = params.Encode()

	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	var resp attendanceResponse
	if err := httpclient.Do(c.client, api, req, &resp); err != nil {
		return nil, fmt.Errorf("fetch attendance: %w", err)
	}

	present := engineer.NewIDSet()
	for _, row := range resp.Data.Data {
		present[engineer.EmployeeID(row.EmployeeID)] = struct{}{}
	}
	return present, nil
}
