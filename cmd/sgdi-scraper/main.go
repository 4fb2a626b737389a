package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WHKcoderox/scrape-sg-govt-email-domains"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := sgdi.DefaultOptions()

	var (
		url             string
		maxIterations   int
		noProgressLimit int
		waitTimeout     time.Duration
		fixedDelay      time.Duration
		sleepWait       bool
		textOut         string
		jsonOut         string
		browserBin      string
		headed          bool
		verbose         bool
	)

	cmd := &cobra.Command{
		Use:          "sgdi-scraper",
		Short:        "Scrape unique @*.gov.sg email domains from the SGDI search results page",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := sgdi.NewConsoleLogger(verbose)
			defer logger.Sync()

			options := sgdi.DefaultOptions()
			options.MaxIterations = maxIterations
			options.NoProgressLimit = noProgressLimit
			options.WaitTimeout = waitTimeout
			options.FixedDelay = fixedDelay
			if sleepWait {
				options.WaitStrategy = sgdi.WaitFixedDelay
			}
			options.BrowserBin = browserBin
			options.Headless = !headed
			options.Logger = logger

			result, runErr := sgdi.Scrape(url, options)
			if result != nil {
				if err := report(logger, result, textOut, jsonOut); err != nil && runErr == nil {
					runErr = err
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&url, "url", sgdi.DefaultTargetURL, "search results page to scrape")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", defaults.MaxIterations, "maximum number of LoadData iterations")
	cmd.Flags().IntVar(&noProgressLimit, "no-progress-limit", defaults.NoProgressLimit, "stop after this many consecutive rounds with no new domains")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", defaults.WaitTimeout, "per-round wait for the results marker")
	cmd.Flags().DurationVar(&fixedDelay, "fixed-delay", defaults.FixedDelay, "pause used by the sleep wait strategy")
	cmd.Flags().BoolVar(&sleepWait, "sleep-wait", false, "sleep a fixed delay each round instead of polling for the results marker")
	cmd.Flags().StringVar(&textOut, "text-out", "email_domains.txt", "path of the line-delimited text artifact")
	cmd.Flags().StringVar(&jsonOut, "json-out", "email_domains.json", "path of the JSON artifact")
	cmd.Flags().StringVar(&browserBin, "browser-bin", "", "browser binary to launch instead of the managed one")
	cmd.Flags().BoolVar(&headed, "headed", false, "run the browser with a visible window")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every round")

	return cmd
}

func report(logger *zap.Logger, result *sgdi.Result, textOut, jsonOut string) error {
	logger.Info("scraping complete",
		zap.String("reason", string(result.StopReason)),
		zap.Int("iterations", result.Iterations),
		zap.Int("domains", len(result.Domains)),
		zap.Any("stats", result.Stats.Summary()))

	if len(result.Domains) == 0 {
		logger.Info("no email domains found, nothing to save")
		return nil
	}

	for _, domain := range result.Domains {
		fmt.Println(domain)
	}

	if err := sgdi.WriteTextFile(textOut, result.Domains); err != nil {
		return err
	}
	logger.Info("results saved", zap.String("path", textOut))

	if err := sgdi.WriteJSONFile(jsonOut, result.Domains); err != nil {
		return err
	}
	logger.Info("results saved", zap.String("path", jsonOut))

	return nil
}
