package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"opsworker/internal/adapters/out/sqlstore"

	"github.com/joho/godotenv"
)

// Config is the worker configuration, read from the environment.
type Config struct {
	LogLevel slog.Level
	Location *time.Location
	DayStart string

	HTTPPort string

	AMQPURL        string
	JobQueue       string
	InitialBackoff time.Duration
	JobWorkers     int

	NISDB    sqlstore.Config
	DBZDB    sqlstore.Config
	ZabbixDB sqlstore.Config

	WANotificationURL    string
	WANotificationAPIKey string

	NusaworkTokenURL      string
	NusaworkTokenAPIKey   string
	NusaworkEmployeeURL   string
	NusaworkAttendanceURL string

	VisitCardSummaryURL string
	VisitCardToken      string

	SilenceAlertURL string

	OverSpeedMetricName     string
	OverSpeedMetricFilePath string
	OverSpeedThreshold      uint64
	OverSpeedWindow         time.Duration

	GamasPeriod         time.Duration
	GamasCountThreshold int
	GamasMaxAge         time.Duration
	GamasAlertURL       string
	GamasMetricName     string
	GamasMetricFilePath string

	NusacontactSyncURL         string
	NusacontactAPIKey          string
	NusacontactSyncMaxAttempts int

	NusacontactMetricsURL          string
	NusacontactQueueMetricName     string
	NusacontactQueueMetricFilePath string

	BirthdayPICPhones []string

	EngineerDirectoryFile string
	DispatchNotify        string

	Schedules ScheduleConfig
}

// ScheduleConfig holds the cron spec of every job the worker schedules
// itself. An empty spec leaves the job to the queue.
type ScheduleConfig struct {
	FetchEngineerTickets    string
	SyncEmployeePhones      string
	DeleteDeadGraphLinks    string
	OverSpeedMetrics        string
	GamasMetrics            string
	NusacontactQueueMetrics string
	NotifyNextWeekBirthdays string
}

// LoadConfig loads envFile into the environment, without overriding
// variables that are already set, and reads the configuration. A missing
// env file is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	r := envReader{}
	cfg := Config{
		DayStart: r.str("OPERATIVE_DAY_START", "08:30"),
		HTTPPort: r.str("HTTP_PORT", "8080"),

		AMQPURL:        r.str("AMQP_URL", "amqp://localhost"),
		JobQueue:       r.str("JOB_QUEUE", "job"),
		InitialBackoff: r.millis("BACKOFF_TIME_INIT", 16),
		JobWorkers:     r.integer("JOB_WORKERS", 4),

		NISDB:    r.database("NIS_DB"),
		DBZDB:    r.database("DBZ_DB"),
		ZabbixDB: r.database("ZABBIX_DB"),

		WANotificationURL:    r.str("WA_NOTIFICATION_API_URL", ""),
		WANotificationAPIKey: r.str("WA_NOTIFICATION_API_KEY", ""),

		NusaworkTokenURL:      r.str("NUSAWORK_TOKEN_API_URL", ""),
		NusaworkTokenAPIKey:   r.str("NUSAWORK_TOKEN_API_KEY", ""),
		NusaworkEmployeeURL:   r.str("NUSAWORK_EMPLOYEE_API_URL", ""),
		NusaworkAttendanceURL: r.str("NUSAWORK_ATTENDANCE_API_URL", ""),

		VisitCardSummaryURL: r.str("VISITCARD_SUMMARY_API_URL", ""),
		VisitCardToken:      r.str("VISITCARD_TOKEN", ""),

		SilenceAlertURL: r.str("SILENCE_ALERT_API_URL", ""),

		OverSpeedMetricName:     r.str("OVER_SPEED_BLOCKED_SUBSCRIBER_METRIC_NAME", "over_speed_blocked_subscriber"),
		OverSpeedMetricFilePath: r.str("OVER_SPEED_BLOCKED_SUBSCRIBER_METRIC_FILE_PATH", "/tmp/metric.txt"),
		OverSpeedThreshold:      r.unsigned("OVER_SPEED_BLOCKED_SUBSCRIBER_THRESHOLD", 1000000),
		OverSpeedWindow:         r.seconds("OVER_SPEED_BLOCKED_SUBSCRIBER_WINDOW_SECONDS", 4*60*60),

		GamasPeriod:         r.seconds("GAMAS_MASS_INCIDENT_PERIOD_SECONDS", 60),
		GamasCountThreshold: r.integer("GAMAS_MASS_INCIDENT_COUNT_THRESHOLD", 8),
		GamasMaxAge:         r.seconds("GAMAS_MAX_INCIDENT_AGE_SECONDS", 604800),
		GamasAlertURL:       r.str("GAMAS_ALERT_API_URL", "http://alertmanager.nusa.net.id:9093/api/v2/alerts/groups"),
		GamasMetricName:     r.str("GAMAS_METRIC_NAME", "gamas"),
		GamasMetricFilePath: r.str("GAMAS_METRIC_FILE_PATH", "/tmp/gamas.txt"),

		NusacontactSyncURL:         r.str("NUSACONTACT_SYNC_CONTACT_API_URL", ""),
		NusacontactAPIKey:          r.str("NUSACONTACT_API_KEY", ""),
		NusacontactSyncMaxAttempts: r.integer("NUSACONTACT_SYNC_CONTACT_MAX_ATTEMPTS", 8),

		NusacontactMetricsURL:          r.str("NUSACONTACT_METRICS_URL", ""),
		NusacontactQueueMetricName:     r.str("NUSACONTACT_QUEUE_METRIC_NAME", "nusacontact_queue"),
		NusacontactQueueMetricFilePath: r.str("NUSACONTACT_QUEUE_METRIC_FILE_PATH", "/tmp/nusacontact_queue.txt"),

		BirthdayPICPhones: r.stringList("BIRTHDAY_PIC_PHONES"),

		EngineerDirectoryFile: r.str("ENGINEER_DIRECTORY_FILE", ""),
		DispatchNotify:        r.str("DISPATCH_REPORT_NOTIFY", ""),

		Schedules: ScheduleConfig{
			FetchEngineerTickets:    r.str("SCHEDULE_FETCH_ENGINEER_TICKETS", ""),
			SyncEmployeePhones:      r.str("SCHEDULE_SYNC_EMPLOYEE_HP", ""),
			DeleteDeadGraphLinks:    r.str("SCHEDULE_DEL_DEAD_GRAPH_LINK", ""),
			OverSpeedMetrics:        r.str("SCHEDULE_OVER_SPEED_BLOCKED_SUBSCRIBER_METRICS", ""),
			GamasMetrics:            r.str("SCHEDULE_GAMAS_METRICS", ""),
			NusacontactQueueMetrics: r.str("SCHEDULE_NUSACONTACT_QUEUE_METRICS", ""),
			NotifyNextWeekBirthdays: r.str("SCHEDULE_NOTIFY_NEXT_WEEK_BIRTHDAYS", ""),
		},
	}

	level, err := parseLevel(r.str("LOG_LEVEL", "info"))
	if err != nil {
		r.errs = append(r.errs, err)
	}
	cfg.LogLevel = level

	loc, err := time.LoadLocation(r.str("TIMEZONE", "Asia/Jakarta"))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	cfg.Location = loc

	if cfg.Schedules.FetchEngineerTickets != "" && cfg.DispatchNotify == "" {
		r.errs = append(r.errs, errors.New("SCHEDULE_FETCH_ENGINEER_TICKETS needs DISPATCH_REPORT_NOTIFY"))
	}

	if cfg.Schedules.NusacontactQueueMetrics != "" && cfg.NusacontactMetricsURL == "" {
		r.errs = append(r.errs, errors.New("SCHEDULE_NUSACONTACT_QUEUE_METRICS needs NUSACONTACT_METRICS_URL"))
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// envReader reads typed variables and collects every parse error, so that
// all mistakes are reported at once.
type envReader struct {
	errs []error
}

func (r *envReader) str(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (r *envReader) integer(key string, def int) int {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (r *envReader) unsigned(key string, def uint64) uint64 {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (r *envReader) seconds(key string, def int) time.Duration {
	return time.Duration(r.integer(key, def)) * time.Second
}

func (r *envReader) millis(key string, def int) time.Duration {
	return time.Duration(r.integer(key, def)) * time.Millisecond
}

// stringList reads a JSON array of strings.
func (r *envReader) stringList(key string) []string {
	v := r.str(key, "[]")
	var list []string
	if err := json.Unmarshal([]byte(v), &list); err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return nil
	}
	return list
}

func (r *envReader) database(prefix string) sqlstore.Config {
	return sqlstore.Config{
		Driver:   r.str(prefix+"_DRIVER", sqlstore.DriverMySQL),
		Host:     r.str(prefix+"_HOST", "localhost"),
		Port:     r.integer(prefix+"_PORT", 3306),
		User:     r.str(prefix+"_USER", ""),
		Password: r.str(prefix+"_PASSWORD", ""),
		Name:     r.str(prefix+"_NAME", ""),
	}
}
