package nvm

import "encoding/json"

// Outcome is the uniform result of every mutating operation and of the
// catalog fetch. Message is always safe to show to a user; the underlying
// error, when there is one, is kept in Err for Go callers and is never
// serialized.
type Outcome[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Payload T      `json:"payload,omitempty"`
	Err     error  `json:"-"`
}

// outcomeJSON is the wire form of an Outcome. Failures carry no payload.
type outcomeJSON[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Payload *T     `json:"payload,omitempty"`
}

func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	w := outcomeJSON[T]{Success: o.Success, Message: o.Message}
	if o.Success {
		w.Payload = &o.Payload
	}
	return json.Marshal(w)
}

func succeed[T any](payload T, message string) Outcome[T] {
	return Outcome[T]{Success: true, Message: message, Payload: payload}
}

func fail[T any](message string, err error) Outcome[T] {
	return Outcome[T]{Success: false, Message: message, Err: err}
}

// VersionRecord is one installed Node.js version.
type VersionRecord struct {
	Version string `json:"version"`
	Active  bool   `json:"active"`
}

// User-facing messages. Failure messages are deliberately generic; the
// backend's own output goes to the debug log.
const (
	MsgInvalidVersion = "Invalid Node.js version %q."
	MsgActivateOK     = "Now using Node.js v%s."
	MsgActivateFailed = "Failed to switch Node.js version. Please check logs."
	MsgInstallOK      = "Node.js version %s installed successfully."
	MsgInstallFailed  = "Failed to install Node.js version. Please check logs."
	MsgRemoveOK       = "Node.js version %s removed successfully."
	MsgRemoveFailed   = "Failed to remove Node.js version %s."
	MsgInvalidProxy   = "Invalid proxy %q:%q."
	MsgProxySetOK     = "Proxy %s:%s set successfully."
	MsgProxyClearedOK = "Proxy cleared successfully."
	MsgProxyFailed    = "Failed to set proxy. Please check logs."
	MsgFetchOK        = "Fetched %d releases."
	MsgFetchFailed    = "Failed to fetch recommended versions."
)
