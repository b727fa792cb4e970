package worker

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
)

// ScanStarter starts a deep scan
type ScanStarter interface {
	Start() (ScanStatus, error)
}

// ScanScheduler starts deep scans on a cron timetable. A tick that lands
// while a scan is running is skipped.
type ScanScheduler struct {
	starter  ScanStarter
	schedule string
	logger   *logger.Logger

	mu        sync.Mutex
	scheduler *cron.Cron
	entry     cron.EntryID
}

// NewScanScheduler validates schedule, a standard five-field cron expression
func NewScanScheduler(starter ScanStarter, schedule string, log *logger.Logger) (*ScanScheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid cron schedule: %w", err)
	}
	return &ScanScheduler{
		starter:  starter,
		schedule: schedule,
		logger:   log,
	}, nil
}

// Start registers the scan job and starts the cron loop
func (s *ScanScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler != nil {
		return fmt.Errorf("scheduler is already running")
	}

	c := cron.New()
	entry, err := c.AddFunc(s.schedule, s.Tick)
	if err != nil {
		return fmt.Errorf("failed to schedule scan: %w", err)
	}
	c.Start()

	s.scheduler = c
	s.entry = entry
	s.logger.WithFields(map[string]interface{}{
		"schedule": s.schedule,
	}).Info("Scan scheduler started")
	return nil
}

// Tick starts one scheduled scan
func (s *ScanScheduler) Tick() {
	if _, err := s.starter.Start(); err != nil {
		if errors.IsCode(err, errors.ErrCodeConflict) {
			s.logger.Debug("Scheduled scan skipped, a scan is already in progress")
			return
		}
		s.logger.ErrorWithErr(err, "Failed to start scheduled scan")
		return
	}
	s.logger.Info("Scheduled scan started")
}

// Stop halts the cron loop and waits for a running tick to return
func (s *ScanScheduler) Stop() {
	s.mu.Lock()
	c := s.scheduler
	s.scheduler = nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	s.logger.Info("Scan scheduler stopped")
}
