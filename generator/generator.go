// Package generator turns website URLs and contact records into QR code
// images on disk. It is the shared core behind the command-line flags and
// the interactive menu.
package generator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/openclaw/qrgen/config"
	"github.com/openclaw/qrgen/output"
	"github.com/openclaw/qrgen/qrimage"
	"github.com/openclaw/qrgen/vcard"
)

// ErrMissingURL is returned by Website when no URL is given.
var ErrMissingURL = errors.New("website URL is required")

// Service generates QR code images. Each call is independent; a Service holds
// no per-request state.
type Service struct {
	resolver output.Resolver
	writer   qrimage.Writer
	now      func() time.Time
	preview  io.Writer
	log      *slog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithClock sets the time source used to name output paths.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPreview renders every generated code on w as well as writing the file.
func WithPreview(w io.Writer) Option {
	return func(s *Service) { s.preview = w }
}

// New creates a Service that writes below cfg.OutputRoot.
func New(cfg *config.Config, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		resolver: output.Resolver{Root: cfg.OutputRoot},
		writer:   qrimage.Writer{ModuleSize: cfg.ModuleSize},
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Website writes a QR code for url and returns the image path. An empty
// explicit path selects a timestamped location.
func (s *Service) Website(url, explicit string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", ErrMissingURL
	}
	return s.generate(output.Website, url, explicit)
}

// Contact writes a QR code holding the vCard for c and returns the image
// path.
func (s *Service) Contact(c vcard.Contact, explicit string) (string, error) {
	card, err := vcard.Build(c)
	if err != nil {
		return "", err
	}
	return s.generate(output.Contact, card, explicit)
}

func (s *Service) generate(kind output.Kind, payload, explicit string) (string, error) {
	p := s.resolver.Resolve(kind, explicit, s.now())
	path := p.Path()
	s.log.Debug("resolved output path", "kind", kind, "path", path, "explicit", explicit != "")

	if err := output.Ensure(p); err != nil {
		return "", err
	}
	if err := s.writer.Write(payload, path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	s.log.Info("QR code saved", "kind", kind, "path", path, "payload_len", len(payload))

	if s.preview != nil {
		if err := qrimage.Preview(s.preview, payload); err != nil {
			s.log.Warn("QR preview failed", "error", err)
		}
	}
	return path, nil
}
