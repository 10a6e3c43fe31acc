package dwg

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/cadbin/encoding"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
	"github.com/arloliu/cadbin/internal/options"
)

// WriterConfig holds the settings of an ObjectWriter.
type WriterConfig struct {
	// revision overrides the document revision when valid.
	revision    format.Revision
	logger      zerolog.Logger
	notifier    Notifier
	codePage    *charmap.Charmap
	compression format.CompressionType
}

// WriterOption configures an ObjectWriter.
type WriterOption = options.Option[*WriterConfig]

func defaultWriterConfig() *WriterConfig {
	return &WriterConfig{
		logger:      zerolog.Nop(),
		codePage:    charmap.Windows1252,
		compression: format.CompressionNone,
	}
}

// WithRevision writes the document as rev instead of the revision in its
// header.
func WithRevision(rev format.Revision) WriterOption {
	return options.New(func(c *WriterConfig) error {
		if !rev.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidRevision, rev)
		}
		c.revision = rev

		return nil
	})
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.logger = logger
	})
}

// WithNotifier sets the receiver of write notifications. Notifications are
// also available from the resulting ObjectSection.
func WithNotifier(n Notifier) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.notifier = n
	})
}

// WithCodePage sets the code page of text written before R2007. The
// default is Windows-1252.
func WithCodePage(cp *charmap.Charmap) WriterOption {
	return options.New(func(c *WriterConfig) error {
		if cp == nil {
			return fmt.Errorf("%w: nil code page", errs.ErrValueOutOfRange)
		}
		c.codePage = cp

		return nil
	})
}

// WithSinkCompression sets the codec ObjectSection.WriteTo applies when
// flushing to a sink. The default is format.CompressionNone.
func WithSinkCompression(c format.CompressionType) WriterOption {
	return options.New(func(cfg *WriterConfig) error {
		if !c.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, c)
		}
		cfg.compression = c

		return nil
	})
}

func (c *WriterConfig) bitWriterOptions() []encoding.BitWriterOption {
	return []encoding.BitWriterOption{encoding.WithCodePage(c.codePage)}
}
