package crawl

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

// DefaultSettle is how long the page is left alone after each load.
const DefaultSettle = 8 * time.Second

// MutationsExpression is evaluated on the page to read the recorded mutations.
const MutationsExpression = "myMutations"

// Chrome drives a local Chrome through the DevTools protocol.
type Chrome struct {
	ExecPath string        // browser binary, found on PATH when empty
	Headless bool          // run with the new headless mode, which loads extensions
	Settle   time.Duration // defaults to DefaultSettle
}

func (c Chrome) allocatorOptions(extensionDir string) []chromedp.ExecAllocatorOption {
	opts := append(slices.Clone(chromedp.DefaultExecAllocatorOptions[:]),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", false),
		chromedp.Flag("disable-extensions-except", extensionDir),
		chromedp.Flag("load-extension", extensionDir),
	)

	if c.Headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	} else {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	return opts
}

// Mutations starts a fresh browser with the extension, loads url twice so
// the extension is initialized, and returns the page's mutation records.
func (c Chrome) Mutations(ctx context.Context, extensionDir, url string) ([]string, error) {
	settle := c.Settle
	if settle <= 0 {
		settle = DefaultSettle
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, c.allocatorOptions(extensionDir)...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	var raw []any

	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(settle),
		chromedp.Navigate(url),
		chromedp.Sleep(settle),
		chromedp.Evaluate(MutationsExpression, &raw),
	)
	if err != nil {
		return nil, errors.Wrap(err, "chrome")
	}

	return records(raw)
}

// records keeps string entries as they are and encodes any other entry.
func records(raw []any) ([]string, error) {
	out := make([]string, 0, len(raw))

	for _, r := range raw {
		if s, ok := r.(string); ok {
			out = append(out, s)
			continue
		}

		data, err := json.Marshal(r)
		if err != nil {
			return nil, err
		}

		out = append(out, string(data))
	}

	return out, nil
}
