// Package cadbin writes the object section of versioned, bit-packed CAD
// drawing files.
//
// The package provides convenience wrappers around the dwg package. A
// drawing is built in memory with the cad package and handed to Write,
// which encodes every table entry, block and entity into a single object
// section and returns it together with the handle map that locates each
// record.
//
// Basic usage:
//
//	doc := cad.NewDefaultDocument(format.R2018)
//	_ = doc.AddEntity(cad.NewLine(cad.XYZ{}, cad.XYZ{X: 10}))
//
//	section, err := cadbin.Write(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(section.Len(), section.Handles().Len())
//
// For more control, such as streaming several writes through one logger
// or inspecting gates, use the dwg package directly.
package cadbin

import (
	"io"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/dwg"
	"github.com/arloliu/cadbin/format"
)

// Write encodes the objects of doc with the document's own revision.
//
// Parameters:
//   - doc: The drawing to encode
//   - opts: Optional configuration functions (see dwg.WriterOption)
//
// Available options:
//   - dwg.WithRevision(format.R13 ... format.R2018)
//   - dwg.WithLogger(zerolog.Logger)
//   - dwg.WithNotifier(dwg.Notifier)
//   - dwg.WithCodePage(*charmap.Charmap)
//   - dwg.WithSinkCompression(format.CompressionNone|Zstd|S2|LZ4)
//
// Returns:
//   - *dwg.ObjectSection: The encoded section and its handle map.
//   - error: An error if the revision is unsupported, a value is out of
//     range or a referenced object was never written.
func Write(doc *cad.Document, opts ...dwg.WriterOption) (*dwg.ObjectSection, error) {
	return dwg.WriteObjects(doc, opts...)
}

// WriteAs encodes the objects of doc as rev, ignoring the revision stored
// in the document header.
//
// Example:
//
//	section, err := cadbin.WriteAs(doc, format.R14)
func WriteAs(doc *cad.Document, rev format.Revision, opts ...dwg.WriterOption) (*dwg.ObjectSection, error) {
	return dwg.WriteObjects(doc, append([]dwg.WriterOption{dwg.WithRevision(rev)}, opts...)...)
}

// WriteTo encodes doc and flushes the section to dst.
//
// The section is compressed with the codec selected by
// dwg.WithSinkCompression, uncompressed by default. Nothing is written to
// dst when encoding fails.
//
// Returns the number of bytes written to dst.
func WriteTo(dst io.Writer, doc *cad.Document, opts ...dwg.WriterOption) (int64, error) {
	section, err := dwg.WriteObjects(doc, opts...)
	if err != nil {
		return 0, err
	}

	return section.WriteTo(dst)
}
