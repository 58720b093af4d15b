package catalog

import (
	"context"
	"errors"
	"net/url"
	"testing"
)

func TestDecode_LTSVariants(t *testing.T) {
	data := []byte(`[
		{"version":"v1.0.0","npm":"1.0.0","lts":false},
		{"version":"v2.0.0","npm":"2.0.0","lts":"Argon"},
		{"version":"v3.0.0","npm":"3.0.0","lts":null},
		{"version":"v4.0.0","npm":"4.0.0"},
		{"version":"v5.0.0","lts":42}
	]`)

	entries, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	wantLTS := []string{"", "Argon", "", "", ""}
	for i, want := range wantLTS {
		if entries[i].LTS != want {
			t.Errorf("entries[%d].LTS = %q, want %q", i, entries[i].LTS, want)
		}
	}
	if entries[4].NpmVersion != "" {
		t.Errorf("missing npm field should decode as empty, got %q", entries[4].NpmVersion)
	}
}

func TestDecode_NotAnArray(t *testing.T) {
	if _, err := Decode([]byte(`{"version":"v1.0.0"}`)); err == nil {
		t.Error("Decode() expected error for object")
	}
}

func TestMirrorIndexURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://npmmirror.com/mirrors/node/", want: "https://npmmirror.com/mirrors/node/index.json"},
		{in: "https://npmmirror.com/mirrors/node", want: "https://npmmirror.com/mirrors/node/index.json"},
		{in: "https://mirror.example.com/custom/index.json", want: "https://mirror.example.com/custom/index.json"},
		{in: "none", want: ""},
		{in: "  ", want: ""},
	}

	for _, tt := range tests {
		if got := MirrorIndexURL(tt.in); got != tt.want {
			t.Errorf("MirrorIndexURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// stubSource returns predefined responses.
type stubSource struct {
	entries []Entry
	err     error
	calls   int
}

func (s *stubSource) Fetch(_ context.Context, _ *url.URL) ([]Entry, error) {
	s.calls++
	return s.entries, s.err
}

func TestFallbackSource(t *testing.T) {
	mirrorEntries := []Entry{{Version: "v20.0.0", NpmVersion: "10.1.0"}}
	officialEntries := []Entry{{Version: "v18.0.0", NpmVersion: "8.6.0"}}

	t.Run("uses primary when successful", func(t *testing.T) {
		primary := &stubSource{entries: mirrorEntries}
		fallback := &stubSource{entries: officialEntries}

		entries, err := NewFallbackSource(primary, fallback).Fetch(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entries[0].Version != "v20.0.0" {
			t.Errorf("got %q, want primary entry", entries[0].Version)
		}
		if fallback.calls != 0 {
			t.Errorf("fallback called %d times, want 0", fallback.calls)
		}
	})

	t.Run("falls back on primary failure", func(t *testing.T) {
		primary := &stubSource{err: errors.New("mirror down")}
		fallback := &stubSource{entries: officialEntries}

		entries, err := NewFallbackSource(primary, fallback).Fetch(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entries[0].Version != "v18.0.0" {
			t.Errorf("got %q, want fallback entry", entries[0].Version)
		}
	})

	t.Run("both fail", func(t *testing.T) {
		primary := &stubSource{err: errors.New("mirror down")}
		fallback := &stubSource{err: errors.New("official down")}

		if _, err := NewFallbackSource(primary, fallback).Fetch(context.Background(), nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("does not fall back after cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		primary := &stubSource{err: context.Canceled}
		fallback := &stubSource{entries: officialEntries}

		if _, err := NewFallbackSource(primary, fallback).Fetch(ctx, nil); err == nil {
			t.Fatal("expected error, got nil")
		}
		if fallback.calls != 0 {
			t.Errorf("fallback called %d times, want 0", fallback.calls)
		}
	})
}
