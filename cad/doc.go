// Package cad is the in-memory drawing document consumed by the object
// writer.
//
// A Document owns a fixed set of named tables (application ids, layers,
// line types, text styles, coordinate systems, views), the block record
// table and the entities owned by each block record. Every object receives
// a unique Handle from its document when it is added; handle 0 means
// "no object".
//
// # Building a document
//
//	doc := cad.NewDefaultDocument(format.R2000)
//
//	layer := cad.NewLayer("Walls")
//	layer.Color = cad.IndexColor(1)
//	if err := doc.Layers.Add(layer); err != nil {
//	    return err
//	}
//
//	line := cad.NewLine(cad.XYZ{}, cad.XYZ{X: 10, Y: 5})
//	line.Layer = layer
//	if err := doc.AddEntity(line); err != nil {
//	    return err
//	}
//
// Names are unique within a table ignoring letter case. The block record
// table always contains the model space and paper space records.
//
// The writer treats a document as read-only; all mutation happens through
// the builder methods of this package before a write starts. Attribute
// ranges (for example a wipeout's brightness) are enforced by the setters
// here, never by the encoders.
package cad
