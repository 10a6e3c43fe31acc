package encoding

import (
	"testing"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/format"
)

func BenchmarkBitWriter(b *testing.B) {
	b.Run("BitShort", func(b *testing.B) {
		w := NewBitWriter(format.R2000)
		defer w.Finish()
		b.ReportAllocs()
		for b.Loop() {
			w.Reset()
			for i := range 256 {
				w.WriteBitShort(int16(i * 37))
			}
		}
	})

	b.Run("LineRecord", func(b *testing.B) {
		w := NewBitWriter(format.R2000)
		defer w.Finish()
		start := cad.XYZ{X: 12.5, Y: 7.25}
		end := cad.XYZ{X: 12.5, Y: 19.75}
		b.ReportAllocs()
		for b.Loop() {
			w.Reset()
			w.WriteBit(true)
			w.WriteRawDouble(start.X)
			w.WriteBitDoubleWithDefault(end.X, start.X)
			w.WriteRawDouble(start.Y)
			w.WriteBitDoubleWithDefault(end.Y, start.Y)
			w.WriteBitThickness(0)
			w.WriteBitExtrusion(cad.ZAxis)
			w.WriteHandle(format.ReferenceHardPointer, 0x1F)
		}
	})

	b.Run("Text", func(b *testing.B) {
		w := NewBitWriter(format.R2000)
		defer w.Finish()
		b.ReportAllocs()
		for b.Loop() {
			w.Reset()
			w.WriteVariableText("Continuous")
		}
	})
}

func BenchmarkBitReader(b *testing.B) {
	w := NewBitWriter(format.R2000)
	for i := range 1024 {
		w.WriteBitDouble(float64(i) * 0.5)
	}
	data := append([]byte(nil), w.Bytes()...)
	w.Finish()

	b.ReportAllocs()
	for b.Loop() {
		r := NewBitReader(data, format.R2000, nil)
		for range 1024 {
			if _, err := r.ReadBitDouble(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
