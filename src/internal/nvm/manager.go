// Package nvm drives the nvm backend: it enumerates installed Node.js
// versions and runs use, install, uninstall and proxy commands, returning
// uniform outcomes. Nothing is cached between calls; every read goes back
// to the backend.
package nvm

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nvmw/nvmw/src/internal/backend"
	"github.com/nvmw/nvmw/src/internal/catalog"
	"github.com/nvmw/nvmw/src/internal/config"
	"github.com/nvmw/nvmw/src/internal/constants"
	"github.com/nvmw/nvmw/src/internal/proxy"
	"github.com/nvmw/nvmw/src/internal/ui"
	"github.com/nvmw/nvmw/src/internal/version"
)

// Options configures a Manager. Zero fields take defaults.
type Options struct {
	Runner   backend.Runner
	Tool     string         // nvm executable
	Runtime  string         // node executable
	Home     proxy.HomeFunc // nvm home resolver
	Proxies  proxy.Store
	Catalog  catalog.Source
	Timeouts backend.Timeouts
}

// Manager runs version-manager operations against the nvm backend.
type Manager struct {
	runner   backend.Runner
	tool     string
	runtime  string
	home     proxy.HomeFunc
	proxies  proxy.Store
	catalog  catalog.Source
	timeouts backend.Timeouts
}

// New creates a Manager from opts.
func New(opts Options) *Manager {
	m := &Manager{
		runner:   opts.Runner,
		tool:     opts.Tool,
		runtime:  opts.Runtime,
		home:     opts.Home,
		proxies:  opts.Proxies,
		catalog:  opts.Catalog,
		timeouts: opts.Timeouts.WithDefaults(),
	}
	if m.runner == nil {
		m.runner = backend.NewExecRunner()
	}
	if m.tool == "" {
		m.tool = constants.ToolNVM
	}
	if m.runtime == "" {
		m.runtime = constants.RuntimeNode
	}
	if m.home == nil {
		m.home = config.NVMHome
	}
	if m.proxies == nil {
		m.proxies = proxy.DefaultStore(m.home)
	}
	if m.catalog == nil {
		m.catalog = catalog.NewHTTPSource(catalog.DefaultURL)
	}
	return m
}

// ListInstalled returns the installed versions, newest first, with the
// one reported by "node -v" marked active. If the nvm home cannot be read
// the result is empty; if node cannot be queried no record is active.
func (m *Manager) ListInstalled(ctx context.Context) []VersionRecord {
	records := []VersionRecord{}

	home, err := m.home()
	if err != nil {
		ui.Debug("Cannot list installed versions: %v", err)
		return records
	}

	entries, err := os.ReadDir(home)
	if err != nil {
		ui.Debug("Error reading Node.js versions from %s: %v", home, err)
		return records
	}

	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		isDir := entry.IsDir() || entry.Type()&fs.ModeSymlink != 0
		if isDir && version.IsInstallDir(entry.Name()) {
			versions = append(versions, version.FromInstallDir(entry.Name()))
		}
	}
	version.SortDescending(versions)

	current, err := m.CurrentVersion(ctx)
	if err != nil {
		ui.Debug("No active version: %v", err)
	}

	for _, v := range versions {
		records = append(records, VersionRecord{
			Version: v,
			Active:  current != "" && version.Equal(v, current),
		})
	}
	return records
}

// CurrentVersion runs "node -v" and returns the version without its "v"
// prefix.
func (m *Manager) CurrentVersion(ctx context.Context) (string, error) {
	ctx, cancel := m.timeouts.Context(ctx, backend.Query)
	defer cancel()

	output, err := m.runner.Run(ctx, m.runtime, "-v")
	if err != nil {
		return "", fmt.Errorf("failed to query %s version: %w", m.runtime, err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(output)), "\n")
	current := strings.TrimPrefix(strings.TrimSpace(line), "v")
	if current == "" {
		return "", fmt.Errorf("%s -v printed no version", m.runtime)
	}
	return current, nil
}

// Activate switches the active Node.js version with "nvm use".
func (m *Manager) Activate(ctx context.Context, raw string) Outcome[string] {
	v, err := version.Normalize(raw)
	if err != nil {
		return fail[string](fmt.Sprintf(MsgInvalidVersion, raw), err)
	}

	if err := m.run(ctx, backend.Change, "use", v); err != nil {
		ui.Debug("Error using version %s: %v", v, err)
		return fail[string](MsgActivateFailed, err)
	}
	return succeed(v, fmt.Sprintf(MsgActivateOK, v))
}

// Install installs a Node.js version with "nvm install".
func (m *Manager) Install(ctx context.Context, raw string) Outcome[string] {
	v, err := version.Normalize(raw)
	if err != nil {
		return fail[string](fmt.Sprintf(MsgInvalidVersion, raw), err)
	}

	if err := m.run(ctx, backend.Install, "install", v); err != nil {
		ui.Debug("Error installing version %s: %v", v, err)
		return fail[string](MsgInstallFailed, err)
	}
	return succeed(v, fmt.Sprintf(MsgInstallOK, v))
}

// Remove uninstalls a Node.js version with "nvm uninstall". Whether
// removing an absent version fails is up to nvm.
func (m *Manager) Remove(ctx context.Context, raw string) Outcome[string] {
	v, err := version.Normalize(raw)
	if err != nil {
		return fail[string](fmt.Sprintf(MsgInvalidVersion, raw), err)
	}

	if err := m.run(ctx, backend.Change, "uninstall", v); err != nil {
		ui.Debug("Failed to uninstall Node.js version %s: %v", v, err)
		return fail[string](fmt.Sprintf(MsgRemoveFailed, v), err)
	}
	return succeed(v, fmt.Sprintf(MsgRemoveOK, v))
}

// GetProxy returns the proxy nvm is configured with. Read failures are
// logged and reported as no proxy.
func (m *Manager) GetProxy(ctx context.Context) proxy.Config {
	cfg, err := m.proxies.Load(ctx)
	if err != nil {
		ui.Debug("Error reading proxy settings: %v", err)
		return proxy.Config{}
	}
	return cfg
}

// SetProxy points nvm at http://host:port. Empty host and port clear the
// proxy. The backend's exit status is reported.
func (m *Manager) SetProxy(ctx context.Context, host, port string) Outcome[proxy.Config] {
	cfg := proxy.Config{Host: strings.TrimSpace(host), Port: strings.TrimSpace(port)}

	arg := "none"
	message := MsgProxyClearedOK
	if cfg.Host != "" || cfg.Port != "" {
		if err := proxy.Validate(cfg.Host, cfg.Port); err != nil {
			return fail[proxy.Config](fmt.Sprintf(MsgInvalidProxy, host, port), err)
		}
		arg = cfg.URL().String()
		message = fmt.Sprintf(MsgProxySetOK, cfg.Host, cfg.Port)
	}

	if err := m.run(ctx, backend.Change, "proxy", arg); err != nil {
		ui.Debug("Error setting proxy %s: %v", arg, err)
		return fail[proxy.Config](MsgProxyFailed, err)
	}
	return succeed(cfg, message)
}

// FetchRecommended downloads the release index, through the configured
// proxy when there is one.
func (m *Manager) FetchRecommended(ctx context.Context) Outcome[[]catalog.Entry] {
	proxyCfg := m.GetProxy(ctx)

	ctx, cancel := m.timeouts.Context(ctx, backend.Fetch)
	defer cancel()

	entries, err := m.catalog.Fetch(ctx, proxyCfg.URL())
	if err != nil {
		ui.Debug("Error when fetching versions: %v", err)
		return fail[[]catalog.Entry](MsgFetchFailed, err)
	}
	return succeed(entries, fmt.Sprintf(MsgFetchOK, len(entries)))
}

// run invokes the nvm tool under the timeout for class.
func (m *Manager) run(ctx context.Context, class backend.Class, args ...string) error {
	ctx, cancel := m.timeouts.Context(ctx, class)
	defer cancel()

	_, err := m.runner.Run(ctx, m.tool, args...)
	return err
}
