package worker

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/metrics"
)

// ScanState is the simulator lifecycle state
type ScanState string

// Scan states. A run moves idle -> running -> completing -> idle.
const (
	ScanIdle       ScanState = "idle"
	ScanRunning    ScanState = "running"
	ScanCompleting ScanState = "completing"
)

// ScanPhases are the status messages shown as progress advances
var ScanPhases = []string{
	"Connecting to AWS CloudWatch API...",
	"Analyzing Azure Cost Management usage metrics...",
	"Fetching GCP Billing Export datasets...",
	"Heuristic analysis of idle compute instances...",
	"Identifying orphaned EBS volumes and S3 buckets...",
	"Deep scan complete. Updating insights.",
}

// ProgressAt returns the progress after ticks increments, capped at 100
func ProgressAt(ticks int, increment float64) float64 {
	return math.Min(float64(ticks)*increment, 100)
}

// PhaseIndex maps progress in [0, 100] to one of count phases
func PhaseIndex(progress float64, count int) int {
	if count <= 0 {
		return 0
	}
	idx := int(math.Floor(progress / 100 * float64(count)))
	if idx < 0 {
		return 0
	}
	if idx > count-1 {
		return count - 1
	}
	return idx
}

// DiscoverySink receives the records found by a completed scan
type DiscoverySink interface {
	Discover(ctx context.Context, records []*resource.Resource) error
}

// ScanConfig controls the simulated scan timing
type ScanConfig struct {
	TickInterval time.Duration
	Increment    float64
	SettleDelay  time.Duration
	// Batch returns the records appended on completion
	Batch func() []*resource.Resource
}

// ScanStatus is a point-in-time view of the simulator
type ScanStatus struct {
	State         ScanState  `json:"state"`
	Progress      float64    `json:"progress"`
	Phase         int        `json:"phase"`
	Message       string     `json:"message"`
	CompletedRuns int        `json:"completed_runs"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// ScanSimulator runs at most one deep scan at a time. Records are appended
// only when a run reaches 100 and survives the settle delay.
type ScanSimulator struct {
	sink   DiscoverySink
	cfg    ScanConfig
	logger *logger.Logger

	root       context.Context
	rootCancel context.CancelFunc

	mu          sync.Mutex
	state       ScanState
	progress    float64
	completed   int
	startedAt   time.Time
	completedAt time.Time
	runCancel   context.CancelFunc
	done        chan struct{}
	closed      bool
}

// NewScanSimulator creates an idle simulator
func NewScanSimulator(sink DiscoverySink, cfg ScanConfig, log *logger.Logger) *ScanSimulator {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 40 * time.Millisecond
	}
	if cfg.Increment <= 0 {
		cfg.Increment = 1.2
	}
	if cfg.SettleDelay < 0 {
		cfg.SettleDelay = 0
	}
	if cfg.Batch == nil {
		cfg.Batch = resource.Discovered
	}
	root, cancel := context.WithCancel(context.Background())
	return &ScanSimulator{
		sink:       sink,
		cfg:        cfg,
		logger:     log,
		root:       root,
		rootCancel: cancel,
		state:      ScanIdle,
	}
}

// Start begins a run. It fails with a conflict while a run is active.
func (s *ScanSimulator) Start() (ScanStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.statusLocked(), errors.ServiceUnavailable("Scanner is shut down")
	}
	if s.state != ScanIdle {
		return s.statusLocked(), errors.Conflict("A deep scan is already in progress")
	}

	ctx, cancel := context.WithCancel(s.root)
	s.state = ScanRunning
	s.progress = 0
	s.startedAt = time.Now().UTC()
	s.runCancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)

	s.logger.WithFields(map[string]interface{}{
		"tick_interval": s.cfg.TickInterval.String(),
		"increment":     s.cfg.Increment,
	}).Info("Deep scan started")
	metrics.SetScanProgress(0)

	return s.statusLocked(), nil
}

func (s *ScanSimulator) run(ctx context.Context, done chan struct{}) {
	outcome := "cancelled"
	defer func() {
		s.mu.Lock()
		s.state = ScanIdle
		s.progress = 0
		s.runCancel = nil
		if outcome == "completed" {
			s.completed++
			s.completedAt = time.Now().UTC()
		}
		s.mu.Unlock()

		metrics.SetScanProgress(0)
		metrics.RecordScanRun(outcome)
		close(done)
	}()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Deep scan cancelled")
			return
		case <-ticker.C:
		}

		ticks++
		p := ProgressAt(ticks, s.cfg.Increment)

		s.mu.Lock()
		s.progress = p
		if p >= 100 {
			s.state = ScanCompleting
		}
		s.mu.Unlock()
		metrics.SetScanProgress(p)

		if p >= 100 {
			break
		}
	}

	timer := time.NewTimer(s.cfg.SettleDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.logger.Info("Deep scan cancelled before results were recorded")
		return
	case <-timer.C:
	}

	batch := s.cfg.Batch()
	if err := s.sink.Discover(ctx, batch); err != nil {
		outcome = "failed"
		s.logger.ErrorWithErr(err, "Failed to record deep scan results")
		return
	}

	outcome = "completed"
	s.logger.WithFields(map[string]interface{}{
		"discovered": len(batch),
		"ticks":      ticks,
	}).Info("Deep scan completed")
}

// Status returns the current simulator state
func (s *ScanSimulator) Status() ScanStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *ScanSimulator) statusLocked() ScanStatus {
	st := ScanStatus{
		State:         s.state,
		Progress:      s.progress,
		CompletedRuns: s.completed,
	}
	if s.state != ScanIdle {
		st.Phase = PhaseIndex(s.progress, len(ScanPhases))
		st.Message = ScanPhases[st.Phase]
	}
	if !s.startedAt.IsZero() {
		t := s.startedAt
		st.StartedAt = &t
	}
	if !s.completedAt.IsZero() {
		t := s.completedAt
		st.CompletedAt = &t
	}
	return st
}

// Wait blocks until the current run finishes or ctx is done. It returns
// immediately when idle.
func (s *ScanSimulator) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops the active run without recording results and waits for it to
// unwind. It reports whether a run was active.
func (s *ScanSimulator) Cancel() bool {
	s.mu.Lock()
	cancel, done := s.runCancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	<-done
	return true
}

// Close cancels any active run and rejects further starts
func (s *ScanSimulator) Close() {
	s.mu.Lock()
	s.closed = true
	done := s.done
	s.mu.Unlock()

	s.rootCancel()
	if done != nil {
		<-done
	}
	s.logger.Info("Deep scan simulator stopped")
}
