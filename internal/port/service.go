package port

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/OTKUSteyler/IMGTOGIF/internal/pipeline"
)

// Service wires the conversion pipeline to its host capabilities: fetch a
// source image, convert it, upload the GIF, optionally announce it.
type Service struct {
	fetcher  Fetcher
	uploader Uploader
	notifier Notifier // optional; nil skips the announcement
}

// NewService builds a Service from explicitly resolved capabilities.
func NewService(fetcher Fetcher, uploader Uploader, notifier Notifier) *Service {
	return &Service{fetcher: fetcher, uploader: uploader, notifier: notifier}
}

// ConvertURL fetches the image behind rawURL, converts it with the given
// options and uploads the result to channelID. Failures surface once,
// tagged with the stage that failed; nothing is uploaded on error.
func (s *Service) ConvertURL(ctx context.Context, channelID, rawURL string, opts pipeline.Options) (*pipeline.Result, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("fetch: %w", ErrUnavailable)
	}
	if s.uploader == nil {
		return nil, fmt.Errorf("upload: %w", ErrUnavailable)
	}

	data, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	result, err := pipeline.Run(data, opts)
	if err != nil {
		return nil, err
	}

	if err := s.uploader.Upload(ctx, channelID, GifFilename(rawURL), result.Data); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	if s.notifier != nil {
		text := fmt.Sprintf("Converted %s %dx%d → GIF %dx%d (%d bytes)",
			result.Format, result.SrcWidth, result.SrcHeight, result.Width, result.Height, len(result.Data))
		if err := s.notifier.Send(ctx, channelID, text); err != nil {
			return nil, fmt.Errorf("notify: %w", err)
		}
	}
	return result, nil
}

// GifFilename derives the upload name from the source URL's last path
// element, swapping its extension for .gif.
func GifFilename(rawURL string) string {
	base := "image"
	if u, err := url.Parse(rawURL); err == nil {
		if b := path.Base(u.Path); b != "" && b != "/" && b != "." {
			base = strings.TrimSuffix(b, path.Ext(b))
		}
	}
	return base + ".gif"
}
