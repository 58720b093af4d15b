package cmd

import (
	"io"
	"os"
	"time"

	"github.com/nvmw/nvmw/src/internal/backend"
	"github.com/nvmw/nvmw/src/internal/catalog"
	"github.com/nvmw/nvmw/src/internal/config"
	"github.com/nvmw/nvmw/src/internal/nvm"
	"github.com/nvmw/nvmw/src/internal/ui"
	"github.com/schollz/progressbar/v3"
)

// newManager builds the Manager every command runs against. Tests replace
// it with one backed by a fake runner.
var newManager = defaultManager

func defaultManager() (*nvm.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	ui.Debug("Using nvm=%s node=%s", cfg.Tool, cfg.Runtime)

	return nvm.New(nvm.Options{
		Runner:   backend.NewExecRunner(),
		Tool:     cfg.Tool,
		Runtime:  cfg.Runtime,
		Catalog:  catalogSource(cfg),
		Timeouts: cfg.Timeouts,
	}), nil
}

// catalogSource picks the release index: the configured URL, else the
// node_mirror nvm is set up with, falling back to the official index.
func catalogSource(cfg *config.Config) catalog.Source {
	official := newHTTPSource(catalog.DefaultURL)

	primary := cfg.CatalogURL
	if primary == "" {
		if home, err := config.NVMHome(); err == nil {
			if settings, err := config.ReadBackendSettings(home); err == nil {
				primary = catalog.MirrorIndexURL(settings[config.SettingNodeMirror])
			}
		}
	}

	if primary == "" || primary == catalog.DefaultURL {
		return official
	}
	ui.Debug("Release index: %s (fallback %s)", primary, catalog.DefaultURL)
	return catalog.NewFallbackSource(newHTTPSource(primary), official)
}

func newHTTPSource(url string) *catalog.HTTPSource {
	source := catalog.NewHTTPSource(url)
	source.SetProgress(downloadProgress)
	return source
}

// downloadProgress draws a byte progress bar on stderr while the release
// index downloads. Debug output would interleave with the bar, so verbose
// runs go without it.
func downloadProgress(total int64) io.WriteCloser {
	if ui.IsQuiet() || ui.IsVerbose() {
		return nil
	}
	bar := progressbar.NewOptions64(
		total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Downloading release index"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(20),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return &progressWriter{bar: bar}
}

// progressWriter finishes the bar on Close. Bodies of unknown length
// never reach the bar's maximum on their own.
type progressWriter struct {
	bar *progressbar.ProgressBar
}

func (w *progressWriter) Write(p []byte) (int, error) {
	return w.bar.Write(p)
}

func (w *progressWriter) Close() error {
	return w.bar.Finish()
}
