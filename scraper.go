package sgdi

import (
	"errors"

	"go.uber.org/zap"
)

type StopReason string

const (
	StopNoProgress StopReason = "no-progress"
	StopCapReached StopReason = "cap-reached"
	StopFatal      StopReason = "fatal"
)

type Result struct {
	Domains    []string
	StopReason StopReason
	Iterations int
	Stats      *RunStats
}

// Scraper owns one browser session and runs the scraping loop against it.
// It is not safe for concurrent use; a run is strictly sequential.
type Scraper struct {
	targetURL string
	options   *Options
	driver    Driver
	log       *zap.Logger
	domains   *DomainSet
	stats     *RunStats
}

// Launch starts a headless browser session for targetURL. An empty targetURL
// selects DefaultTargetURL. Errors returned here are setup failures; no
// scraping has happened yet.
func Launch(targetURL string, options *Options) (*Scraper, error) {
	if options == nil {
		options = DefaultOptions()
	}

	driver, err := NewChromeDriver(options)
	if err != nil {
		return nil, err
	}

	return NewScraper(targetURL, driver, options), nil
}

// NewScraper wires an arbitrary Driver, which is how tests run the loop
// against a fake session.
func NewScraper(targetURL string, driver Driver, options *Options) *Scraper {
	if options == nil {
		options = DefaultOptions()
	}
	if targetURL == "" {
		targetURL = DefaultTargetURL
	}

	log := options.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Scraper{
		targetURL: NormalizeURL(targetURL),
		options:   options,
		driver:    driver,
		log:       log,
		domains:   NewDomainSet(),
		stats:     NewRunStats(),
	}
}

// Run executes rounds of trigger, wait, extract and merge until a terminal
// condition. It always returns a Result carrying whatever was accumulated,
// even when it also returns an error.
func (s *Scraper) Run() (*Result, error) {
	s.stats.Start()
	defer s.stats.End()

	s.log.Info("loading initial page", zap.String("url", s.targetURL))
	if err := s.driver.Open(s.targetURL); err != nil {
		s.log.Error("failed to load initial page", zap.Error(err))
		return s.result(StopFatal, 0), err
	}

	iteration := 1
	noProgress := 0

	for iteration <= s.options.MaxIterations {
		s.log.Debug("calling trigger", zap.Int("iteration", iteration))

		if err := s.driver.TriggerLoad(iteration); err != nil {
			if errors.Is(err, ErrTriggerUnavailable) {
				s.log.Error("trigger function not available, stopping", zap.Error(err))
			} else {
				s.log.Error("error during iteration, stopping", zap.Int("iteration", iteration), zap.Error(err))
			}
			return s.result(StopFatal, iteration), err
		}

		ready, err := s.driver.AwaitResults(s.options.WaitTimeout)
		if err != nil {
			s.log.Error("error during iteration, stopping", zap.Int("iteration", iteration), zap.Error(err))
			return s.result(StopFatal, iteration), err
		}
		if !ready {
			s.stats.RecordTimeout()
			noProgress++
			s.log.Warn("timeout waiting for results",
				zap.Int("iteration", iteration),
				zap.Int("no_progress", noProgress))
			if noProgress >= s.options.NoProgressLimit {
				s.log.Info("no-progress limit reached, stopping", zap.Int("limit", s.options.NoProgressLimit))
				return s.result(StopNoProgress, iteration), nil
			}
			iteration++
			continue
		}

		markup, err := s.driver.Markup()
		if err != nil {
			s.log.Error("error during iteration, stopping", zap.Int("iteration", iteration), zap.Error(err))
			return s.result(StopFatal, iteration), err
		}

		found, scoped := ExtractResultDomains(markup)
		if !scoped {
			s.log.Warn("no search result elements found, parsing entire page",
				zap.Int("iteration", iteration))
		}

		added := s.domains.AddAll(found)
		s.stats.RecordRound(len(added))

		if len(added) > 0 {
			noProgress = 0
			s.log.Info("found new domains",
				zap.Int("iteration", iteration),
				zap.Int("count", len(added)),
				zap.Strings("domains", added))
			if s.options.OnNewDomains != nil {
				s.options.OnNewDomains(iteration, added)
			}
		} else {
			noProgress++
			s.log.Debug("no new domains",
				zap.Int("iteration", iteration),
				zap.Int("no_progress", noProgress))
			if noProgress >= s.options.NoProgressLimit {
				s.log.Info("no-progress limit reached, stopping", zap.Int("limit", s.options.NoProgressLimit))
				return s.result(StopNoProgress, iteration), nil
			}
		}

		iteration++
	}

	s.log.Info("iteration cap reached, stopping", zap.Int("cap", s.options.MaxIterations))
	return s.result(StopCapReached, s.options.MaxIterations), nil
}

// Close releases the underlying browser session.
func (s *Scraper) Close() error {
	return s.driver.Close()
}

func (s *Scraper) result(reason StopReason, iteration int) *Result {
	return &Result{
		Domains:    s.domains.Sorted(),
		StopReason: reason,
		Iterations: iteration,
		Stats:      s.stats,
	}
}

// Scrape runs a complete scrape of targetURL and releases the browser on all
// exit paths. The Result is non-nil whenever a session was established; a
// fatal round still hands back the partial accumulation alongside its error.
func Scrape(targetURL string, options *Options) (*Result, error) {
	s, err := Launch(targetURL, options)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Run()
}
