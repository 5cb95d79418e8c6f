package monitoring

import (
	"fmt"
	"time"
)

// TickMonitor tracks loop cadence: how often input was polled, how many of
// those polls advanced the simulation, and how far apart the ticks landed.
// It belongs to the loop goroutine and is not safe for concurrent use.
type TickMonitor struct {
	target time.Duration

	polls   uint64
	skipped uint64
	ticks   uint64
	draws   uint64
	toggles uint64

	lastInterval  time.Duration
	totalInterval time.Duration
	lastWork      time.Duration
	maxWork       time.Duration
	startTime     time.Time
}

// Metrics is a snapshot of a TickMonitor.
type Metrics struct {
	Polls          uint64
	SkippedPolls   uint64
	Ticks          uint64
	Draws          uint64
	Toggles        uint64
	LastInterval   time.Duration
	AvgInterval    time.Duration
	LastTickWork   time.Duration
	MaxTickWork    time.Duration
	Uptime         time.Duration
	TargetTickRate float64
}

// NewTickMonitor creates a monitor for ticks expected every target.
func NewTickMonitor(target time.Duration) *TickMonitor {
	return &TickMonitor{target: target, startTime: time.Now()}
}

// Poll records one input poll. gated is true when the tick gate was
// still closed and the poll did not advance the simulation.
func (tm *TickMonitor) Poll(gated bool) {
	tm.polls++
	if gated {
		tm.skipped++
	}
}

// Tick records a simulation step taken interval after the previous one.
func (tm *TickMonitor) Tick(interval time.Duration) {
	tm.ticks++
	tm.lastInterval = interval
	tm.totalInterval += interval
}

// Draw records a presented frame.
func (tm *TickMonitor) Draw() { tm.draws++ }

// Toggle records a run-mode change.
func (tm *TickMonitor) Toggle() { tm.toggles++ }

// ProfiledTick runs fn and records how long it took.
func (tm *TickMonitor) ProfiledTick(fn func()) time.Duration {
	start := time.Now()
	fn()
	work := time.Since(start)
	tm.lastWork = work
	if work > tm.maxWork {
		tm.maxWork = work
	}
	return work
}

// Snapshot returns the current metrics.
func (tm *TickMonitor) Snapshot() Metrics {
	m := Metrics{
		Polls:        tm.polls,
		SkippedPolls: tm.skipped,
		Ticks:        tm.ticks,
		Draws:        tm.draws,
		Toggles:      tm.toggles,
		LastInterval: tm.lastInterval,
		LastTickWork: tm.lastWork,
		MaxTickWork:  tm.maxWork,
		Uptime:       time.Since(tm.startTime),
	}
	if tm.ticks > 0 {
		m.AvgInterval = tm.totalInterval / time.Duration(tm.ticks)
	}
	if tm.target > 0 {
		m.TargetTickRate = float64(time.Second) / float64(tm.target)
	}
	return m
}

// Alert is a cadence warning.
type Alert struct {
	Type      string
	Message   string
	Value     time.Duration
	Threshold time.Duration
}

// CheckAlerts reports ticks arriving well behind schedule, which means
// the loop or the display is not keeping up with the tick rate.
func (tm *TickMonitor) CheckAlerts() []Alert {
	var alerts []Alert
	if tm.ticks == 0 || tm.target <= 0 {
		return alerts
	}
	threshold := tm.target * 3 / 2
	if avg := tm.totalInterval / time.Duration(tm.ticks); avg > threshold {
		alerts = append(alerts, Alert{
			Type:      "slow_ticks",
			Message:   "Average tick interval is 50% over target",
			Value:     avg,
			Threshold: threshold,
		})
	}
	if tm.maxWork > tm.target {
		alerts = append(alerts, Alert{
			Type:      "long_tick",
			Message:   "A tick took longer than the tick interval",
			Value:     tm.maxWork,
			Threshold: tm.target,
		})
	}
	return alerts
}

// Lines formats the metrics for the on-screen overlay.
func (m Metrics) Lines() []string {
	return []string{
		fmt.Sprintf("ticks: %d  (target %.0f Hz)", m.Ticks, m.TargetTickRate),
		fmt.Sprintf("interval: last %v  avg %v", m.LastInterval, m.AvgInterval),
		fmt.Sprintf("polls: %d  gated: %d", m.Polls, m.SkippedPolls),
		fmt.Sprintf("draws: %d  toggles: %d", m.Draws, m.Toggles),
	}
}

// String is the one-line summary logged at exit.
func (m Metrics) String() string {
	return fmt.Sprintf("uptime=%v ticks=%d draws=%d polls=%d gated=%d toggles=%d avg_interval=%v max_tick_work=%v",
		m.Uptime.Round(time.Millisecond), m.Ticks, m.Draws, m.Polls, m.SkippedPolls, m.Toggles,
		m.AvgInterval, m.MaxTickWork)
}

// Reset clears all counters.
func (tm *TickMonitor) Reset() {
	target := tm.target
	*tm = TickMonitor{target: target, startTime: time.Now()}
}
