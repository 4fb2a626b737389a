package sgdi

import (
	"time"

	"go.uber.org/zap"
)

// DefaultTargetURL is the SGDI search results page listing .gov.sg entries.
const DefaultTargetURL = "https://www.sgdi.gov.sg/search-results?term=.gov.sg"

type WaitStrategy string

const (
	// WaitVisible polls until an element matching ResultsSelector is visible.
	WaitVisible WaitStrategy = "visible"
	// WaitFixedDelay sleeps FixedDelay each round instead of polling.
	WaitFixedDelay WaitStrategy = "sleep"
)

type Options struct {
	MaxIterations   int
	NoProgressLimit int
	WaitTimeout     time.Duration
	WaitStrategy    WaitStrategy
	FixedDelay      time.Duration
	ResultsSelector string
	Headless        bool
	BrowserBin      string
	UserAgent       string
	WindowSize      []int
	Logger          *zap.Logger
	OnNewDomains    func(iteration int, domains []string)
}

func DefaultOptions() *Options {
	return &Options{
		MaxIterations:   10000,
		NoProgressLimit: 1000,
		WaitTimeout:     15 * time.Second,
		WaitStrategy:    WaitVisible,
		FixedDelay:      3 * time.Second,
		ResultsSelector: "*[id*='TotalResult']",
		Headless:        true,
		BrowserBin:      "",
		UserAgent:       "",
		WindowSize:      []int{1600, 1000},
		Logger:          nil,
		OnNewDomains:    nil,
	}
}
