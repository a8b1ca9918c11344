// Package autoplay drives periodic simulation steps with a single
// cancellable timer.
package autoplay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the delay between automatic steps.
const DefaultInterval = 500 * time.Millisecond

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// TickMsg is delivered to the bubbletea loop when a step is due. Run
// identifies the start that scheduled it.
type TickMsg struct {
	Run  int
	Time time.Time
}

// Player is a start/stop handle around one repeating timer. Every start bumps
// the run id, so ticks scheduled before a stop are ignored once they arrive.
type Player struct {
	interval time.Duration
	state    State
	run      int

	acc  time.Duration
	last time.Time
}

func New(interval time.Duration) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Player{interval: interval}
}

// Toggle starts the timer when stopped and stops it when running. The returned
// command schedules the first tick, or is nil after a stop.
func (p *Player) Toggle() tea.Cmd {
	if p.state == Running {
		p.Stop()
		return nil
	}
	p.state = Running
	p.run++
	p.acc = 0
	p.last = time.Time{}
	return p.tick()
}

// Stop cancels the timer. Calling it while stopped does nothing.
func (p *Player) Stop() {
	p.state = Stopped
}

// Handle reports whether msg should trigger a step and, if so, schedules the
// next tick. Ticks from an earlier run or arriving after Stop are dropped.
func (p *Player) Handle(msg TickMsg) (bool, tea.Cmd) {
	if p.state != Running || msg.Run != p.run {
		return false, nil
	}
	return true, p.tick()
}

func (p *Player) tick() tea.Cmd {
	run := p.run
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return TickMsg{Run: run, Time: t}
	})
}

// Due is the frame-loop alternative to Handle. It accumulates the time since
// the previous call and fires at most once per call while running.
func (p *Player) Due(now time.Time) bool {
	if p.state != Running {
		p.last = time.Time{}
		return false
	}
	if p.last.IsZero() {
		p.last = now
		return false
	}
	p.acc += now.Sub(p.last)
	p.last = now
	if p.acc < p.interval {
		return false
	}
	p.acc -= p.interval
	if p.acc > p.interval {
		p.acc = 0
	}
	return true
}

// SetInterval changes the delay used for ticks scheduled from now on.
func (p *Player) SetInterval(d time.Duration) {
	if d > 0 {
		p.interval = d
	}
}

func (p *Player) Interval() time.Duration { return p.interval }
func (p *Player) State() State            { return p.state }
func (p *Player) Running() bool           { return p.state == Running }
