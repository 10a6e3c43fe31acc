// Package dwg writes the object section of a drawing file.
//
// An ObjectWriter walks a cad.Document in a fixed order and emits one
// record per object:
//
//  1. the AppID, Layer, LineType, TextStyle, UCS and View tables, each as
//     its control object followed by its entries
//  2. the block control object
//  3. every block record as BLOCK, block header, owned entities, ENDBLK
//
// Each record is a modular-short byte size (plus, from R2010, a modular-char
// handle stream size) followed by a bit-packed body: the common prefix, the
// type-specific data stream and the handle stream. Field layout varies by
// revision; the encoders consult the Gates evaluated once per write.
//
// The result is an ObjectSection holding the concatenated records and a
// HandleMap from object handle to section offset. An outer framing layer
// uses that map to build the file's handle index.
//
// # Errors
//
// Values that cannot be encoded (an unknown line weight, more than 255
// line type segments) abort the write with errs.ErrValueOutOfRange. A
// record that references an object never written aborts it with
// errs.ErrUnresolvedHandle. Objects that have no encoder are skipped and
// reported as NotImplemented notifications; notifications never abort a
// write.
//
// # Example
//
//	doc := cad.NewDefaultDocument(format.R2000)
//	_ = doc.AddEntity(cad.NewLine(cad.XYZ{}, cad.XYZ{X: 10, Y: 5}))
//
//	section, err := dwg.WriteObjects(doc, dwg.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	_, err = section.WriteTo(file)
package dwg
