package sgdi

import "time"

// RunStats counts what happened during one run. It is owned by the loop and
// mutated only between rounds; it is not safe for concurrent use.
type RunStats struct {
	startTime        time.Time
	endTime          time.Time
	rounds           int
	productiveRounds int
	emptyRounds      int
	timeouts         int
	domainsFound     int
}

func NewRunStats() *RunStats {
	return &RunStats{}
}

func (s *RunStats) Start() {
	s.startTime = time.Now()
}

func (s *RunStats) End() {
	s.endTime = time.Now()
}

func (s *RunStats) RecordRound(newDomains int) {
	s.rounds++
	if newDomains > 0 {
		s.productiveRounds++
		s.domainsFound += newDomains
	} else {
		s.emptyRounds++
	}
}

func (s *RunStats) RecordTimeout() {
	s.rounds++
	s.timeouts++
}

func (s *RunStats) Duration() time.Duration {
	if s.endTime.IsZero() {
		return 0
	}
	return s.endTime.Sub(s.startTime)
}

func (s *RunStats) Summary() map[string]interface{} {
	return map[string]interface{}{
		"duration":          s.Duration().String(),
		"rounds":            s.rounds,
		"productive_rounds": s.productiveRounds,
		"empty_rounds":      s.emptyRounds,
		"timeouts":          s.timeouts,
		"domains_found":     s.domainsFound,
	}
}
