package searcher

import (
	"time"
)

type SearchMetric struct {
	StartTime   time.Time
	Duration    time.Duration
	Nodes       int // Positions visited, leaves included
	Expansions  int // Successor lists generated
	Evaluations int // Calls to the evaluation function
	Prunes      int // Alpha-beta cutoffs
	MaxDepth    int // Deepest ply reached below the root
}

type Collector interface {
	Start()
	AddNode(depth int)
	AddExpansion()
	AddEvaluation()
	AddPrune()
	Complete() SearchMetric
	// Last returns the metric of the most recently completed search
	Last() SearchMetric
}

type collector struct {
	current SearchMetric
	last    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.current = SearchMetric{StartTime: time.Now()}
}

func (m *collector) AddNode(depth int) {
	m.current.Nodes++
	if depth > m.current.MaxDepth {
		m.current.MaxDepth = depth
	}
}

func (m *collector) AddExpansion() {
	m.current.Expansions++
}

func (m *collector) AddEvaluation() {
	m.current.Evaluations++
}

func (m *collector) AddPrune() {
	m.current.Prunes++
}

func (m *collector) Complete() SearchMetric {
	m.current.Duration = time.Since(m.current.StartTime)
	m.last = m.current
	return m.last
}

func (m *collector) Last() SearchMetric {
	return m.last
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddNode(depth int)       {}
func (m *dummyCollector) AddExpansion()           {}
func (m *dummyCollector) AddEvaluation()          {}
func (m *dummyCollector) AddPrune()               {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
func (m *dummyCollector) Last() SearchMetric     { return SearchMetric{} }
