package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	amqpin "opsworker/internal/adapters/in/amqp"
	httpin "opsworker/internal/adapters/in/http"
	"opsworker/internal/adapters/out/alertmanager"
	"opsworker/internal/adapters/out/directory"
	"opsworker/internal/adapters/out/httpclient"
	"opsworker/internal/adapters/out/nusacontact"
	"opsworker/internal/adapters/out/nusawork"
	"opsworker/internal/adapters/out/sqlstore"
	"opsworker/internal/adapters/out/sqlstore/contactrepo"
	"opsworker/internal/adapters/out/sqlstore/employeerepo"
	"opsworker/internal/adapters/out/sqlstore/graphlinkrepo"
	"opsworker/internal/adapters/out/sqlstore/ticketrepo"
	"opsworker/internal/adapters/out/sqlstore/zabbixrepo"
	"opsworker/internal/adapters/out/textfile"
	"opsworker/internal/adapters/out/visitcard"
	"opsworker/internal/adapters/out/whatsapp"
	"opsworker/internal/core/application/router"
	"opsworker/internal/core/application/usecases/commands"
	"opsworker/internal/core/application/usecases/queries"
	"opsworker/internal/core/domain/services"
	"opsworker/internal/jobs"
	"opsworker/internal/pkg/clock"

	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived dependencies and builds the handlers
// from them.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger
	clock  clock.Clock

	nisDB    *gorm.DB
	dbzDB    *gorm.DB
	zabbixDB *gorm.DB

	httpClient *http.Client
	directory  *directory.Directory
	notifier   *whatsapp.Notifier
	hr         *nusawork.Client
	alerts     *alertmanager.Client
}

// NewCompositionRoot opens the databases and loads the engineer directory.
// Close releases what it opened.
func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	dir, err := directory.Load(cfg.EngineerDirectoryFile)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		clock:      clock.Real(),
		httpClient: httpclient.New(),
		directory:  dir,
	}

	dbs := []struct {
		name string
		cfg  sqlstore.Config
		dst  **gorm.DB
	}{
		{"nis", cfg.NISDB, &c.nisDB},
		{"dbz", cfg.DBZDB, &c.dbzDB},
		{"zabbix", cfg.ZabbixDB, &c.zabbixDB},
	}
	for _, d := range dbs {
		db, err := sqlstore.Open(d.cfg, cfg.Location)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("open %s database: %w", d.name, err)
		}
		*d.dst = db
	}

	c.notifier = whatsapp.NewNotifier(cfg.WANotificationURL, cfg.WANotificationAPIKey, c.httpClient)
	c.hr = nusawork.NewClient(nusawork.Config{
		TokenURL:      cfg.NusaworkTokenURL,
		APIKey:        cfg.NusaworkTokenAPIKey,
		EmployeeURL:   cfg.NusaworkEmployeeURL,
		AttendanceURL: cfg.NusaworkAttendanceURL,
	}, c.httpClient, c.clock, cfg.Location)
	c.alerts = alertmanager.NewClient(cfg.GamasAlertURL, cfg.SilenceAlertURL, c.httpClient)

	return c, nil
}

// Close closes the databases.
func (c *CompositionRoot) Close() {
	for _, db := range []*gorm.DB{c.nisDB, c.dbzDB, c.zabbixDB} {
		if db == nil {
			continue
		}
		if err := sqlstore.Close(db); err != nil {
			c.logger.Warn("close database", "error", err)
		}
	}
}

func (c *CompositionRoot) CreateGetDispatchReportQueryHandler() queries.GetDispatchReportQueryHandler {
	sources := queries.DispatchSources{
		Tickets:   ticketrepo.NewGormTicketRepository(c.dbzDB),
		Presence:  c.hr,
		Tracking:  visitcard.NewFeed(c.cfg.VisitCardSummaryURL, c.cfg.VisitCardToken, c.httpClient),
		Directory: c.directory,
	}
	return queries.NewGetDispatchReportQueryHandler(sources, c.clock, c.cfg.Location, c.cfg.DayStart, c.logger)
}

func (c *CompositionRoot) CreateFetchEngineerTicketsCommandHandler() commands.FetchEngineerTicketsCommandHandler {
	return commands.NewFetchEngineerTicketsCommandHandler(c.CreateGetDispatchReportQueryHandler(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSyncEmployeePhonesCommandHandler() commands.SyncEmployeePhonesCommandHandler {
	return commands.NewSyncEmployeePhonesCommandHandler(employeerepo.NewGormEmployeeRepository(c.nisDB), c.hr, c.logger)
}

func (c *CompositionRoot) CreateDeleteDeadGraphLinksCommandHandler() commands.DeleteDeadGraphLinksCommandHandler {
	return commands.NewDeleteDeadGraphLinksCommandHandler(
		sqlstore.NewGormUnitOfWorkFactory(c.nisDB),
		zabbixrepo.NewGormZabbixRepository(c.zabbixDB),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGenerateOverSpeedMetricsCommandHandler() commands.GenerateOverSpeedMetricsCommandHandler {
	return commands.NewGenerateOverSpeedMetricsCommandHandler(
		graphlinkrepo.NewGormGraphLinkRepository(c.nisDB),
		zabbixrepo.NewGormZabbixRepository(c.zabbixDB),
		textfile.NewWriter(),
		c.clock,
		commands.OverSpeedMetricsConfig{
			MetricName: c.cfg.OverSpeedMetricName,
			FilePath:   c.cfg.OverSpeedMetricFilePath,
			Threshold:  c.cfg.OverSpeedThreshold,
			Window:     c.cfg.OverSpeedWindow,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateGenerateGamasMetricsCommandHandler() (commands.GenerateGamasMetricsCommandHandler, error) {
	grouper, err := services.NewIncidentGrouper(c.cfg.GamasPeriod, c.cfg.GamasMaxAge, c.cfg.GamasCountThreshold)
	if err != nil {
		return commands.GenerateGamasMetricsCommandHandler{}, fmt.Errorf("gamas grouper: %w", err)
	}
	return commands.NewGenerateGamasMetricsCommandHandler(
		c.alerts,
		grouper,
		textfile.NewWriter(),
		c.clock,
		commands.GamasMetricsConfig{
			MetricName: c.cfg.GamasMetricName,
			FilePath:   c.cfg.GamasMetricFilePath,
			Location:   c.cfg.Location,
		},
		c.logger,
	), nil
}

func (c *CompositionRoot) nusacontactClient() *nusacontact.Client {
	return nusacontact.NewClient(nusacontact.Config{
		URL:         c.cfg.NusacontactSyncURL,
		APIKey:      c.cfg.NusacontactAPIKey,
		MaxAttempts: c.cfg.NusacontactSyncMaxAttempts,
		MetricsURL:  c.cfg.NusacontactMetricsURL,
	}, c.httpClient, c.logger)
}

func (c *CompositionRoot) CreateGenerateNusacontactQueueMetricsCommandHandler() commands.GenerateNusacontactQueueMetricsCommandHandler {
	return commands.NewGenerateNusacontactQueueMetricsCommandHandler(
		c.nusacontactClient(),
		textfile.NewWriter(),
		commands.NusacontactQueueMetricsConfig{
			MetricName: c.cfg.NusacontactQueueMetricName,
			FilePath:   c.cfg.NusacontactQueueMetricFilePath,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateSyncContactCommandHandler() commands.SyncContactCommandHandler {
	return commands.NewSyncContactCommandHandler(contactrepo.NewGormContactRepository(c.nisDB), c.nusacontactClient(), c.logger)
}

func (c *CompositionRoot) CreateSilenceAlertCommandHandler() commands.SilenceAlertCommandHandler {
	return commands.NewSilenceAlertCommandHandler(c.alerts, c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreateNotifyNextWeekBirthdaysCommandHandler() commands.NotifyNextWeekBirthdaysCommandHandler {
	return commands.NewNotifyNextWeekBirthdaysCommandHandler(
		c.hr,
		services.NewBirthdayCalendar(c.cfg.Location),
		c.notifier,
		c.clock,
		c.cfg.BirthdayPICPhones,
		c.logger,
	)
}

// CreateRouter wires every job to its handler.
func (c *CompositionRoot) CreateRouter() (*router.Router, error) {
	gamas, err := c.CreateGenerateGamasMetricsCommandHandler()
	if err != nil {
		return nil, err
	}
	return router.New(router.Handlers{
		FetchEngineerTickets:    c.CreateFetchEngineerTicketsCommandHandler(),
		SyncEmployeePhones:      c.CreateSyncEmployeePhonesCommandHandler(),
		DeleteDeadGraphLinks:    c.CreateDeleteDeadGraphLinksCommandHandler(),
		OverSpeedMetrics:        c.CreateGenerateOverSpeedMetricsCommandHandler(),
		GamasMetrics:            gamas,
		NusacontactQueueMetrics: c.CreateGenerateNusacontactQueueMetricsCommandHandler(),
		SyncContact:             c.CreateSyncContactCommandHandler(),
		SilenceAlert:            c.CreateSilenceAlertCommandHandler(),
		NotifyNextWeekBirthdays: c.CreateNotifyNextWeekBirthdaysCommandHandler(),
	}, c.logger), nil
}

func (c *CompositionRoot) CreateConsumer(dispatcher amqpin.Dispatcher) *amqpin.Consumer {
	return amqpin.NewConsumer(amqpin.Config{
		URL:            c.cfg.AMQPURL,
		Queue:          c.cfg.JobQueue,
		InitialBackoff: c.cfg.InitialBackoff,
		Workers:        c.cfg.JobWorkers,
	}, dispatcher, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer(dispatcher httpin.Dispatcher) *httpin.Server {
	return httpin.NewServer(dispatcher, c.CreateGetDispatchReportQueryHandler())
}

func (c *CompositionRoot) CreateJobManager(dispatcher jobs.Dispatcher) *jobs.JobManager {
	s := c.cfg.Schedules
	return jobs.NewJobManager([]jobs.Schedule{
		{Spec: s.FetchEngineerTickets, Job: router.Job{Name: router.JobFetchEngineerTickets, Notify: c.cfg.DispatchNotify}},
		{Spec: s.SyncEmployeePhones, Job: router.Job{Name: router.JobSyncEmployeePhones}},
		{Spec: s.DeleteDeadGraphLinks, Job: router.Job{Name: router.JobDeleteDeadGraphLinks}},
		{Spec: s.OverSpeedMetrics, Job: router.Job{Name: router.JobOverSpeedMetrics}},
		{Spec: s.GamasMetrics, Job: router.Job{Name: router.JobGamasMetrics}},
		{Spec: s.NusacontactQueueMetrics, Job: router.Job{Name: router.JobNusacontactQueueMetrics}},
		{Spec: s.NotifyNextWeekBirthdays, Job: router.Job{Name: router.JobNotifyNextWeekBirthdays}},
	}, dispatcher, c.cfg.Location, c.logger)
}
