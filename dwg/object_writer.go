package dwg

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/encoding"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/internal/options"
	"github.com/arloliu/cadbin/internal/pool"
)

// ObjectWriter serializes the tables, block records and entities of a
// document into an object section.
//
// A writer is single use: the first call to Write consumes it.
type ObjectWriter struct {
	doc     *cad.Document
	cfg     *WriterConfig
	gates   Gates
	logger  zerolog.Logger
	bitOpts []encoding.BitWriterOption

	handles       *HandleMap
	section       *pool.ByteBuffer
	notifications []Notification
	current       cad.Object
	finished      bool
}

// NewObjectWriter creates a writer for doc.
//
// The target revision is the document revision unless WithRevision
// overrides it.
//
// Returns:
//   - errs.ErrNilObject if doc is nil
//   - errs.ErrUnsupportedRevision if the revision cannot be written
//   - any error returned by an option
func NewObjectWriter(doc *cad.Document, opts ...WriterOption) (*ObjectWriter, error) {
	if doc == nil {
		return nil, errs.ErrNilObject
	}

	cfg := defaultWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	rev := doc.Revision()
	if cfg.revision.IsValid() {
		rev = cfg.revision
	}
	if !rev.Supported() {
		return nil, fmt.Errorf("%w: %s (%s)", errs.ErrUnsupportedRevision, rev, rev.Code())
	}

	return &ObjectWriter{
		doc:     doc,
		cfg:     cfg,
		gates:   NewGates(rev),
		logger:  cfg.logger.With().Str("revision", rev.String()).Logger(),
		bitOpts: cfg.bitWriterOptions(),
		handles: NewHandleMap(),
	}, nil
}

// Gates returns the revision predicates of the writer.
func (w *ObjectWriter) Gates() Gates {
	return w.gates
}

// Write serializes the document.
//
// Objects are written in this order: the AppID, Layer, LineType,
// TextStyle, UCS and View tables (each control object followed by its
// entries), then the block control object and every block record with its
// entities. Entities without an encoder are skipped with a NotImplemented
// notification.
//
// Returns:
//   - errs.ErrWriterFinished if Write was already called
//   - errs.ErrValueOutOfRange if a value cannot be encoded
//   - errs.ErrDuplicateHandle if two objects share a handle
//   - errs.ErrUnresolvedHandle if a written record references an object
//     that was not written
func (w *ObjectWriter) Write() (section *ObjectSection, err error) {
	if w.finished {
		return nil, errs.ErrWriterFinished
	}
	w.finished = true

	w.section = pool.GetSectionBuffer()
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok || !errors.Is(perr, errs.ErrValueOutOfRange) {
				panic(r)
			}
			err = w.objectError(perr)
		}

		pool.PutSectionBuffer(w.section)
		w.section = nil

		if err != nil {
			section = nil
			w.logger.Error().Err(err).Msg("object section write aborted")
		}
	}()

	w.logger.Debug().Int("objects", int(w.doc.LastHandle())).Msg("writing object section")

	if err = w.writeObjects(); err != nil {
		return nil, err
	}
	if err = w.handles.Finalize(); err != nil {
		return nil, err
	}

	section = &ObjectSection{
		data:          slices.Clone(w.section.Bytes()),
		handles:       w.handles,
		notifications: w.notifications,
		revision:      w.gates.Revision,
		compression:   w.cfg.compression,
	}

	w.logger.Debug().
		Int("size", section.Len()).
		Int("handles", w.handles.Len()).
		Int("notifications", len(w.notifications)).
		Msg("object section written")

	return section, nil
}

func (w *ObjectWriter) writeObjects() error {
	doc := w.doc

	if err := writeTable(w, doc.AppIDs); err != nil {
		return err
	}
	if err := writeTable(w, doc.Layers); err != nil {
		return err
	}
	if err := writeTable(w, doc.LineTypes); err != nil {
		return err
	}
	if err := writeTable(w, doc.TextStyles); err != nil {
		return err
	}
	if err := writeTable(w, doc.UCSs); err != nil {
		return err
	}
	if err := writeTable(w, doc.Views); err != nil {
		return err
	}

	return w.writeBlockControl()
}

// objectError adds the object being written to an encoder panic.
func (w *ObjectWriter) objectError(err error) error {
	if w.current == nil {
		return err
	}

	return fmt.Errorf("%s %#x: %w", w.current.ObjectType(), uint64(w.current.Handle()), err)
}

func (w *ObjectWriter) newBitWriter() *encoding.BitWriter {
	return encoding.NewBitWriter(w.gates.Revision, w.bitOpts...)
}

func (w *ObjectWriter) notify(n Notification) {
	w.notifications = append(w.notifications, n)

	w.logger.Warn().
		Stringer("type", n.Type).
		Stringer("kind", n.Kind).
		Uint64("handle", uint64(n.Handle)).
		Msg(n.Message)

	if w.cfg.notifier != nil {
		w.cfg.notifier.Notify(n)
	}
}

// WriteObjects writes doc with a new ObjectWriter.
func WriteObjects(doc *cad.Document, opts ...WriterOption) (*ObjectSection, error) {
	w, err := NewObjectWriter(doc, opts...)
	if err != nil {
		return nil, err
	}

	return w.Write()
}
