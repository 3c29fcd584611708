// Package router maps queued jobs onto command handlers.
package router

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Job names accepted on the queue.
const (
	JobFetchEngineerTickets    = "fetchEngineerTickets"
	JobSyncEmployeePhones      = "syncEmployeeHP"
	JobDeleteDeadGraphLinks    = "delDeadGraphLink"
	JobOverSpeedMetrics        = "genOverSpeedBlockedSubscriberMetrics"
	JobGamasMetrics            = "genGamasMetrics"
	JobNusacontactQueueMetrics = "genNusacontactQueueMetrics"
	JobSyncContact             = "syncNusacontactCustomer"
	JobSilenceAlert            = "silenceAlert"
	JobNotifyNextWeekBirthdays = "notifyNextWeekBirthdays"
)

var (
	// ErrUnknownJob is returned for job names no handler is registered for.
	ErrUnknownJob = errors.New("unknown job")

	// ErrInvalidJob is returned for jobs that can never succeed as sent.
	ErrInvalidJob = errors.New("invalid job")
)

// Job is one message of the job queue. Only name is always required; the
// other fields are read by the jobs that need them.
type Job struct {
	Name       string `json:"name"`
	Notify     string `json:"notify,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Attributes string `json:"attributes,omitempty"`
	Contact    string `json:"contact,omitempty"`
}

// DecodeJob parses a queue message body.
func DecodeJob(body []byte) (Job, error) {
	var job Job
	if err := json.Unmarshal(body, &job); err != nil {
		return Job{}, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if job.Name == "" {
		return Job{}, fmt.Errorf("%w: name is required", ErrInvalidJob)
	}
	return job, nil
}

// Names lists every job name the router knows, in declaration order.
func Names() []string {
	return []string{
		JobFetchEngineerTickets,
		JobSyncEmployeePhones,
		JobDeleteDeadGraphLinks,
		JobOverSpeedMetrics,
		JobGamasMetrics,
		JobNusacontactQueueMetrics,
		JobSyncContact,
		JobSilenceAlert,
		JobNotifyNextWeekBirthdays,
	}
}
