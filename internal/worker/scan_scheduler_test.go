package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
)

type stubStarter struct {
	calls int
	err   error
}

func (s *stubStarter) Start() (ScanStatus, error) {
	s.calls++
	return ScanStatus{State: ScanRunning}, s.err
}

func TestNewScanScheduler_RejectsBadSchedule(t *testing.T) {
	_, err := NewScanScheduler(&stubStarter{}, "every tuesday", logger.Nop())
	assert.Error(t, err)
}

func TestScanScheduler_Tick(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "starts scan"},
		{name: "skips while running", err: errors.Conflict("busy")},
		{name: "logs other failures", err: errors.Internal("boom", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			starter := &stubStarter{err: tt.err}
			s, err := NewScanScheduler(starter, "*/5 * * * *", logger.Nop())
			require.NoError(t, err)

			s.Tick()
			assert.Equal(t, 1, starter.calls)
		})
	}
}

func TestScanScheduler_StartStop(t *testing.T) {
	s, err := NewScanScheduler(&stubStarter{}, "@hourly", logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Start())
	assert.Error(t, s.Start(), "second start is rejected")
	s.Stop()
	s.Stop()
}
