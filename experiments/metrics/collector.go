package metrics

import (
	"sync/atomic"
	"time"
)

// TurnStats is what a player did during one turn.
type TurnStats struct {
	Duration time.Duration
	Actions  int
	Placed   bool
	Bridges  int
}

type TurnMetric struct {
	Step     int
	Player   int // seat
	Side     string
	Strategy string
	TurnStats
}

type GameMetric struct {
	ID             string
	Players        int
	StartingPlayer int
	Winner         string // side, empty without a winner
	Status         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
}

type Collector interface {
	Start()
	AddAction()
	AddPlacement()
	AddBridge()
	Complete() TurnStats
}

type collector struct {
	startTime time.Time
	actions   atomic.Int32
	placed    atomic.Bool
	bridges   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.actions.Store(0)
	m.placed.Store(false)
	m.bridges.Store(0)
}

func (m *collector) AddAction() {
	m.actions.Add(1)
}

func (m *collector) AddPlacement() {
	m.placed.Store(true)
}

func (m *collector) AddBridge() {
	m.bridges.Add(1)
}

func (m *collector) Complete() TurnStats {
	return TurnStats{
		Duration: time.Since(m.startTime),
		Actions:  int(m.actions.Load()),
		Placed:   m.placed.Load(),
		Bridges:  int(m.bridges.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()              {}
func (m *dummyCollector) AddAction()          {}
func (m *dummyCollector) AddPlacement()       {}
func (m *dummyCollector) AddBridge()          {}
func (m *dummyCollector) Complete() TurnStats { return TurnStats{} }
