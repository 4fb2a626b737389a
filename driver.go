package sgdi

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// ErrTriggerUnavailable reports a page-side failure of the data-loading
// trigger: the function is missing or threw.
var ErrTriggerUnavailable = errors.New("page trigger function unavailable")

const triggerFunction = "LoadData"

// Driver is the browser capability the orchestrator runs against. AwaitResults
// reports false with a nil error on timeout; only Close releases the session.
type Driver interface {
	Open(url string) error
	TriggerLoad(iteration int) error
	AwaitResults(timeout time.Duration) (bool, error)
	Markup() (string, error)
	Close() error
}

type ChromeDriver struct {
	options   *Options
	browser   *rod.Browser
	page      *rod.Page
	closeOnce sync.Once
	closeErr  error
}

func NewChromeDriver(options *Options) (*ChromeDriver, error) {
	if options == nil {
		options = DefaultOptions()
	}

	l := launcher.New().
		Headless(options.Headless).
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-gpu")

	if len(options.WindowSize) == 2 {
		l = l.Set("window-size", fmt.Sprintf("%d,%d", options.WindowSize[0], options.WindowSize[1]))
	}

	if options.BrowserBin != "" {
		l = l.Bin(options.BrowserBin)
	}

	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if options.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: options.UserAgent}); err != nil {
			browser.Close()
			return nil, fmt.Errorf("failed to set user agent: %w", err)
		}
	}

	return &ChromeDriver{
		options: options,
		browser: browser,
		page:    page,
	}, nil
}

func (d *ChromeDriver) Open(url string) error {
	wait := d.page.WaitNavigation(proto.PageLifecycleEventNameLoad)
	if err := d.page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	wait()
	return nil
}

func (d *ChromeDriver) TriggerLoad(iteration int) error {
	_, err := d.page.Eval(fmt.Sprintf("() => %s(%d)", triggerFunction, iteration))
	if err != nil {
		var evalErr *rod.ErrEval
		if errors.As(err, &evalErr) {
			return fmt.Errorf("%w: %v", ErrTriggerUnavailable, err)
		}
		return fmt.Errorf("failed to call %s(%d): %w", triggerFunction, iteration, err)
	}
	return nil
}

func (d *ChromeDriver) AwaitResults(timeout time.Duration) (bool, error) {
	if d.options.WaitStrategy == WaitFixedDelay {
		time.Sleep(d.options.FixedDelay)
		return true, nil
	}

	page := d.page.Timeout(timeout)
	el, err := page.Element(d.options.ResultsSelector)
	if err != nil {
		if isTimeout(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed waiting for results marker: %w", err)
	}
	if err := el.WaitVisible(); err != nil {
		if isTimeout(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed waiting for results marker: %w", err)
	}
	return true, nil
}

func (d *ChromeDriver) Markup() (string, error) {
	html, err := d.page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read page source: %w", err)
	}
	return html, nil
}

// Close releases the browser. Safe to call more than once; only the first
// call closes.
func (d *ChromeDriver) Close() error {
	d.closeOnce.Do(func() {
		d.closeErr = d.browser.Close()
	})
	return d.closeErr
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
