// Package crawl installs every generated configuration into an extension,
// loads the extension in a browser and saves the mutations it caused on a
// page as a signature.
package crawl

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/optionsinject/optionsinject/internal/script"
	"github.com/optionsinject/optionsinject/internal/signature"
)

// DefaultURL is the page visited for every configuration.
const DefaultURL = "http://127.0.0.1:3000"

// Defaults of Options.
const (
	DefaultPause   = 5 * time.Second
	DefaultTimeout = 2 * time.Minute
)

var configPattern = regexp.MustCompile(`config(\d+)\.json$`)

// ErrNoConfigs is returned when the configuration directory holds no configN.json.
var ErrNoConfigs = errors.New("no configN.json files found")

// Browser loads an unpacked extension, visits url and returns the mutation
// records the page collected, one JSON document each.
type Browser interface {
	Mutations(ctx context.Context, extensionDir, url string) ([]string, error)
}

// Options configures a Crawler.
type Options struct {
	ExtensionDir string
	URL          string        // defaults to DefaultURL
	SignatureDir string        // defaults to signature.DefaultDir
	Pause        time.Duration // wait between configurations
	Timeout      time.Duration // per configuration, defaults to DefaultTimeout
}

// Config is one configuration file and its number.
type Config struct {
	Path   string
	Number int
}

// Result lists the written signatures and the configurations that failed.
type Result struct {
	Signatures []string
	Failed     []Config
}

// Crawler runs configurations through a Browser.
type Crawler struct {
	browser Browser
	opts    Options
}

// New creates a Crawler.
func New(browser Browser, opts Options) *Crawler {
	if browser == nil {
		panic("crawl: browser is required")
	}

	if opts.URL == "" {
		opts.URL = DefaultURL
	}

	if opts.SignatureDir == "" {
		opts.SignatureDir = signature.DefaultDir
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &Crawler{browser: browser, opts: opts}
}

// Configs returns the configN.json files of dir ordered by number.
// Other JSON files are logged and skipped.
func Configs(dir string) ([]Config, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read configuration directory")
	}

	var configs []Config

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		m := configPattern.FindStringSubmatch(e.Name())
		if m == nil {
			log.Warn().Str("file", e.Name()).Msg("skipping file without configuration number")
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil {
			log.Warn().Err(err).Str("file", e.Name()).Msg("skipping file without configuration number")
			continue
		}

		configs = append(configs, Config{Path: filepath.Join(dir, e.Name()), Number: n})
	}

	slices.SortFunc(configs, func(a, b Config) int {
		return a.Number - b.Number
	})

	return configs, nil
}

// Run crawls every configuration of dir. A failing configuration is logged
// and recorded in the result, the remaining ones still run.
func (c *Crawler) Run(ctx context.Context, dir string) (Result, error) {
	var res Result

	configs, err := Configs(dir)
	if err != nil {
		return res, err
	}

	if len(configs) == 0 {
		return res, errors.Wrap(ErrNoConfigs, dir)
	}

	for i, cfg := range configs {
		if i > 0 {
			if err := sleep(ctx, c.opts.Pause); err != nil {
				return res, err
			}
		}

		p, err := c.visit(ctx, cfg)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}

			log.Error().Err(err).Str("config", cfg.Path).Msg("configuration failed")

			res.Failed = append(res.Failed, cfg)

			continue
		}

		log.Info().Str("config", cfg.Path).Str("signature", p).Msg("signature extracted")

		res.Signatures = append(res.Signatures, p)
	}

	return res, nil
}

func (c *Crawler) visit(ctx context.Context, cfg Config) (string, error) {
	if err := script.InstallFile(c.opts.ExtensionDir, cfg.Path); err != nil {
		return "", errors.Wrap(err, "install")
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	records, err := c.browser.Mutations(ctx, c.opts.ExtensionDir, c.opts.URL)
	if err != nil {
		return "", errors.Wrap(err, "browse")
	}

	data, err := signature.Build(records)
	if err != nil {
		return "", err
	}

	return signature.Write(c.opts.SignatureDir, cfg.Number, data)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
