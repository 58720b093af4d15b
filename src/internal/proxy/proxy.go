// Package proxy reads and validates the HTTP proxy nvm uses for downloads.
package proxy

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("invalid proxy")

// Config is an HTTP proxy address. Both fields empty means no proxy.
type Config struct {
	Host string `json:"host"`
	Port string `json:"port"`
}

// IsSet reports whether a proxy host is configured.
func (c Config) IsSet() bool {
	return c.Host != ""
}

// URL returns http://host:port, or nil when no proxy is set.
func (c Config) URL() *url.URL {
	if !c.IsSet() {
		return nil
	}
	host := c.Host
	if c.Port != "" {
		host = net.JoinHostPort(c.Host, c.Port)
	}
	return &url.URL{Scheme: "http", Host: host}
}

// String renders the proxy for display.
func (c Config) String() string {
	if u := c.URL(); u != nil {
		return u.String()
	}
	return "none"
}

// settingPattern matches the proxy line nvm writes to settings.txt.
var settingPattern = regexp.MustCompile(`proxy:\s*(http://.+:\d+)`)

// Parse extracts the proxy from settings.txt content. A missing or
// malformed proxy line yields an empty Config.
func Parse(content string) Config {
	match := settingPattern.FindStringSubmatch(content)
	if match == nil {
		return Config{}
	}

	u, err := url.Parse(match[1])
	if err != nil {
		return Config{}
	}
	return Config{Host: u.Hostname(), Port: u.Port()}
}

// hostnamePattern accepts DNS names made of letters, digits, dots and dashes.
var hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*$`)

// Validate checks that host is a hostname or IP literal and port is a TCP
// port number.
func Validate(host, port string) error {
	if host == "" {
		return fmt.Errorf("%w: host is empty", ErrInvalid)
	}
	if net.ParseIP(host) == nil && !hostnamePattern.MatchString(host) {
		return fmt.Errorf("%w: host %q", ErrInvalid, host)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 || strconv.Itoa(n) != port {
		return fmt.Errorf("%w: port %q", ErrInvalid, port)
	}
	return nil
}
