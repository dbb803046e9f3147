package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/multisearch/internal/app"
	"github.com/hyperifyio/multisearch/internal/engines"
)

func main() {
	// Logging setup. Diagnostics go to stderr so the payload on stdout
	// stays machine-parseable.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		engineList    string
		pages         int
		proxy         string
		timeout       time.Duration
		format        string
		outPath       string
		uniqueURLs    bool
		uniqueDomains bool
		configPath    string
		resultsFile   string
		searxURL      string
		searxKey      string
		userAgent     string
		verbose       bool
	)

	flag.StringVar(&engineList, "engines", "", "Comma-separated engines to use (default: "+strings.Join(engines.DefaultNames(), ",")+")")
	flag.IntVar(&pages, "pages", 0, "Number of result pages to fetch per engine (default 3)")
	flag.StringVar(&proxy, "proxy", "", "HTTP or SOCKS proxy URL (e.g. socks5://127.0.0.1:9050)")
	flag.DurationVar(&timeout, "timeout", 0, "Per-engine timeout (default 10s)")
	flag.StringVar(&format, "output", "", "Output format: json, csv, text or pdf (default json)")
	flag.StringVar(&outPath, "o", "", "Write the payload to a file instead of stdout")
	flag.BoolVar(&uniqueURLs, "unique-urls", false, "Deduplicate results by URL across all engines")
	flag.BoolVar(&uniqueDomains, "unique-domains", false, "Deduplicate results by domain across all engines")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&resultsFile, "results.file", "", "JSON file backing the offline 'file' engine")
	flag.StringVar(&searxURL, "searx.url", "", "SearxNG base URL enabling the 'searx' engine")
	flag.StringVar(&searxKey, "searx.key", "", "SearxNG API key (optional)")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent for engine requests")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	cfg := app.Config{
		Query:         strings.Join(flag.Args(), " "),
		Pages:         pages,
		Proxy:         proxy,
		Timeout:       timeout,
		UniqueURLs:    uniqueURLs,
		UniqueDomains: uniqueDomains,
		Format:        format,
		OutputPath:    outPath,
		ResultsFile:   resultsFile,
		SearxURL:      searxURL,
		SearxKey:      searxKey,
		UserAgent:     userAgent,
		Verbose:       verbose,
	}
	if engineList != "" {
		cfg.Engines = app.SplitList(engineList)
	}

	// Precedence: flags over env over config file. Both overlays only fill
	// fields that are still unset.
	app.ApplyEnvToConfig(&cfg)
	if err := app.LoadConfigFile(configPath, &cfg); err != nil {
		log.Error().Err(err).Msg("config")
		os.Exit(1)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: resolving zero valid engines is the hard
		// failure of the pipeline; config and encoding problems are plain
		// errors. Zero results with warnings still exits 0.
		if errors.Is(err, engines.ErrNoValidEngines) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg, os.Stdout)
	if err != nil {
		return err
	}
	return a.Run(context.Background())
}

func usage() {
	prog := os.Args[0]
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <query>\n\n", prog)
	fmt.Fprintf(os.Stderr, "Search the web using multiple search engines simultaneously.\n\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s \"go concurrency patterns\"\n", prog)
	fmt.Fprintf(os.Stderr, "  %s -engines bing,yahoo -pages 5 \"machine learning\"\n", prog)
	fmt.Fprintf(os.Stderr, "  %s -unique-urls -output csv \"static site generators\"\n", prog)
	fmt.Fprintf(os.Stderr, "  %s -engines torch -proxy socks5://127.0.0.1:9050 \"onion services\"\n", prog)
}
