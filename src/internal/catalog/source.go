// Package catalog fetches the Node.js release index.
package catalog

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// DefaultURL is the official Node.js release index.
const DefaultURL = "https://nodejs.org/download/release/index.json"

// Source retrieves the release index.
type Source interface {
	// Fetch returns entries in the order the index lists them. When
	// proxyURL is non-nil the request is routed through it.
	Fetch(ctx context.Context, proxyURL *url.URL) ([]Entry, error)
}

// Entry is one published release.
type Entry struct {
	Version    string `json:"version"`
	NpmVersion string `json:"npmVersion"`
	Date       string `json:"date,omitempty"`
	LTS        string `json:"lts,omitempty"` // codename, empty for non-LTS releases
	Security   bool   `json:"security,omitempty"`
}

// indexEntry is the wire shape of index.json.
type indexEntry struct {
	Version  string          `json:"version"`
	Npm      string          `json:"npm"`
	Date     string          `json:"date"`
	LTS      json.RawMessage `json:"lts"` // false or a codename
	Security bool            `json:"security"`
}

func (e indexEntry) toEntry() Entry {
	var lts string
	if len(e.LTS) > 0 {
		// false, null and malformed values all mean "not LTS"
		_ = json.Unmarshal(e.LTS, &lts)
	}
	return Entry{
		Version:    e.Version,
		NpmVersion: e.Npm,
		Date:       e.Date,
		LTS:        lts,
		Security:   e.Security,
	}
}

// Decode parses index.json content.
func Decode(data []byte) ([]Entry, error) {
	var raw []indexEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, r.toEntry())
	}
	return entries, nil
}

// MirrorIndexURL turns an nvm node_mirror base (e.g.
// "https://npmmirror.com/mirrors/node/") into its index.json URL.
func MirrorIndexURL(mirror string) string {
	mirror = strings.TrimSpace(mirror)
	if mirror == "" || mirror == "none" {
		return ""
	}
	if strings.HasSuffix(mirror, ".json") {
		return mirror
	}
	return strings.TrimRight(mirror, "/") + "/index.json"
}
