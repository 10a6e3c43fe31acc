package cad

import (
	"fmt"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
)

// Kind identifies the concrete type of an entity.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindLine
	KindPoint
	KindCircle
	KindArc
	KindInsert
	KindBlock
	KindBlockEnd
	KindWipeout
)

var kindNames = [...]string{
	KindUnknown:  "Unknown",
	KindLine:     "Line",
	KindPoint:    "Point",
	KindCircle:   "Circle",
	KindArc:      "Arc",
	KindInsert:   "Insert",
	KindBlock:    "Block",
	KindBlockEnd: "BlockEnd",
	KindWipeout:  "Wipeout",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Entity is a graphical object owned by a block record.
type Entity interface {
	Object
	// Kind returns the concrete entity kind.
	Kind() Kind
	// Common returns the attributes shared by all entities.
	Common() *EntityBase
}

// EntityBase holds the attributes shared by every entity kind.
//
// A nil Layer or LineType is written as a null reference.
type EntityBase struct {
	objectBase

	Layer         *Layer
	LineType      *LineType
	Color         Color
	Transparency  Transparency
	LineTypeScale float64
	LineWeight    LineWeight
	IsInvisible   bool
}

func newEntityBase() EntityBase {
	return EntityBase{
		Color:         ByLayer,
		LineTypeScale: 1.0,
		LineWeight:    LineWeightByLayer,
	}
}

// Common implements Entity.
func (e *EntityBase) Common() *EntityBase {
	return e
}

// OwnerRecord returns the block record owning the entity, or nil.
func (e *EntityBase) OwnerRecord() *BlockRecord {
	rec, _ := e.owner.(*BlockRecord)
	return rec
}

// Line is a straight segment between two points.
type Line struct {
	EntityBase

	StartPoint XYZ
	EndPoint   XYZ
	Thickness  float64
	Normal     XYZ
}

// NewLine creates a line from start to end with the default extrusion.
func NewLine(start, end XYZ) *Line {
	return &Line{
		EntityBase: newEntityBase(),
		StartPoint: start,
		EndPoint:   end,
		Normal:     ZAxis,
	}
}

func (*Line) Kind() Kind                    { return KindLine }
func (*Line) ObjectType() format.ObjectType { return format.ObjectLine }

// Point is a single location.
type Point struct {
	EntityBase

	Location  XYZ
	Thickness float64
	Normal    XYZ
	// Rotation is the X axis angle in radians used for point display.
	Rotation float64
}

// NewPoint creates a point at location.
func NewPoint(location XYZ) *Point {
	return &Point{
		EntityBase: newEntityBase(),
		Location:   location,
		Normal:     ZAxis,
	}
}

func (*Point) Kind() Kind                    { return KindPoint }
func (*Point) ObjectType() format.ObjectType { return format.ObjectPoint }

// Circle is a full circle.
type Circle struct {
	EntityBase

	Center    XYZ
	Radius    float64
	Thickness float64
	Normal    XYZ
}

// NewCircle creates a circle.
func NewCircle(center XYZ, radius float64) *Circle {
	return &Circle{
		EntityBase: newEntityBase(),
		Center:     center,
		Radius:     radius,
		Normal:     ZAxis,
	}
}

func (*Circle) Kind() Kind                    { return KindCircle }
func (*Circle) ObjectType() format.ObjectType { return format.ObjectCircle }

// Arc is a circular arc running counter-clockwise from StartAngle to
// EndAngle, both in radians.
type Arc struct {
	Circle

	StartAngle float64
	EndAngle   float64
}

// NewArc creates an arc.
func NewArc(center XYZ, radius, startAngle, endAngle float64) *Arc {
	return &Arc{
		Circle:     *NewCircle(center, radius),
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

func (*Arc) Kind() Kind                    { return KindArc }
func (*Arc) ObjectType() format.ObjectType { return format.ObjectArc }

// Insert places a block definition.
type Insert struct {
	EntityBase

	Block       *BlockRecord
	InsertPoint XYZ
	XScale      float64
	YScale      float64
	ZScale      float64
	Rotation    float64
	Normal      XYZ
}

// NewInsert creates a unit-scale reference to block at point.
func NewInsert(block *BlockRecord, point XYZ) *Insert {
	return &Insert{
		EntityBase:  newEntityBase(),
		Block:       block,
		InsertPoint: point,
		XScale:      1,
		YScale:      1,
		ZScale:      1,
		Normal:      ZAxis,
	}
}

func (*Insert) Kind() Kind                    { return KindInsert }
func (*Insert) ObjectType() format.ObjectType { return format.ObjectInsert }

// Wipeout masks the entities behind a clipping boundary. It has no binary
// encoding and is reported as not implemented by the writer.
type Wipeout struct {
	EntityBase

	InsertPoint  XYZ
	UVector      XYZ
	VVector      XYZ
	Size         XY
	ClipBoundary []XY

	brightness uint8
	contrast   uint8
	fade       uint8
}

// NewWipeout creates a wipeout with brightness 50, contrast 50 and no fade.
func NewWipeout() *Wipeout {
	return &Wipeout{
		EntityBase: newEntityBase(),
		UVector:    XAxis,
		VVector:    YAxis,
		brightness: 50,
		contrast:   50,
	}
}

func (*Wipeout) Kind() Kind                    { return KindWipeout }
func (*Wipeout) ObjectType() format.ObjectType { return format.ObjectUnlisted }

// Brightness returns the image brightness, 0 to 100.
func (w *Wipeout) Brightness() uint8 { return w.brightness }

// Contrast returns the image contrast, 0 to 100.
func (w *Wipeout) Contrast() uint8 { return w.contrast }

// Fade returns the image fade, 0 to 100.
func (w *Wipeout) Fade() uint8 { return w.fade }

// SetBrightness sets the brightness, rejecting values above 100.
func (w *Wipeout) SetBrightness(v int) error {
	b, err := percent("brightness", v)
	if err != nil {
		return err
	}
	w.brightness = b

	return nil
}

// SetContrast sets the contrast, rejecting values above 100.
func (w *Wipeout) SetContrast(v int) error {
	c, err := percent("contrast", v)
	if err != nil {
		return err
	}
	w.contrast = c

	return nil
}

// SetFade sets the fade, rejecting values above 100.
func (w *Wipeout) SetFade(v int) error {
	f, err := percent("fade", v)
	if err != nil {
		return err
	}
	w.fade = f

	return nil
}

func percent(field string, v int) (uint8, error) {
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%w: %s %d not in 0-100", errs.ErrValueOutOfRange, field, v)
	}

	return uint8(v), nil //nolint:gosec
}
