// Package port defines the narrow interfaces the converter needs from its
// host environment. Capabilities are resolved once at startup and passed
// in explicitly instead of being looked up ambiently.
package port

import (
	"context"
	"errors"
)

// ErrUnavailable marks a required external capability that is missing or
// not responding. Surfaced to the caller, no retry.
var ErrUnavailable = errors.New("port: required capability unavailable")

// Fetcher retrieves the raw bytes behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Uploader delivers a finished file to a channel.
type Uploader interface {
	Upload(ctx context.Context, channelID, filename string, data []byte) error
}

// Notifier posts a plain-text message to a channel.
type Notifier interface {
	Send(ctx context.Context, channelID, text string) error
}
