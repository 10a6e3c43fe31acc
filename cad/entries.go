package cad

import (
	"math"

	"github.com/arloliu/cadbin/format"
)

type entryBase struct {
	objectBase

	name          string
	xrefDependent bool
}

// Name returns the entry name.
func (e *entryBase) Name() string {
	return e.name
}

// IsXrefDependent reports whether the entry comes from an external reference.
func (e *entryBase) IsXrefDependent() bool {
	return e.xrefDependent
}

// SetXrefDependent marks the entry as coming from an external reference.
func (e *entryBase) SetXrefDependent(v bool) {
	e.xrefDependent = v
}

func (e *entryBase) attach(doc *Document, owner Object) {
	e.handle = doc.nextHandle()
	e.owner = owner
}

// AppID registers an application name for extended data.
type AppID struct {
	entryBase
}

// NewAppID creates an application id entry.
func NewAppID(name string) *AppID {
	return &AppID{entryBase: entryBase{name: name}}
}

// ObjectType implements Object.
func (*AppID) ObjectType() format.ObjectType { return format.ObjectAppID }

// LayerFlags are the state bits of a layer.
type LayerFlags uint8

const (
	LayerFrozen             LayerFlags = 0x01
	LayerFrozenNewViewports LayerFlags = 0x02
	LayerLocked             LayerFlags = 0x04
)

// Layer is a named group of entities sharing display attributes.
type Layer struct {
	entryBase

	Flags      LayerFlags
	IsOn       bool
	PlotFlag   bool
	LineWeight LineWeight
	Color      Color
	LineType   *LineType
}

// NewLayer creates a layer that is on, plottable, white (index 7) and uses
// the default line weight.
func NewLayer(name string) *Layer {
	return &Layer{
		entryBase:  entryBase{name: name},
		IsOn:       true,
		PlotFlag:   true,
		LineWeight: LineWeightDefault,
		Color:      IndexColor(7),
	}
}

// ObjectType implements Object.
func (*Layer) ObjectType() format.ObjectType { return format.ObjectLayer }

// IsFrozen reports whether the frozen flag is set.
func (l *Layer) IsFrozen() bool { return l.Flags&LayerFrozen != 0 }

// IsLocked reports whether the locked flag is set.
func (l *Layer) IsLocked() bool { return l.Flags&LayerLocked != 0 }

// LineTypeShapeFlags describe the complex element of a line type segment.
type LineTypeShapeFlags int16

const (
	ShapeAbsoluteRotation LineTypeShapeFlags = 0x01
	ShapeText             LineTypeShapeFlags = 0x02
	ShapeShape            LineTypeShapeFlags = 0x04
)

// LineTypeSegment is one dash, dot or complex element of a line type pattern.
type LineTypeSegment struct {
	Length      float64
	ShapeNumber int16
	Offset      XY
	Scale       float64
	Rotation    float64
	ShapeFlags  LineTypeShapeFlags
	// Text is the embedded string of a text segment.
	Text string
}

// HasText reports whether the segment embeds text.
func (s LineTypeSegment) HasText() bool {
	return s.ShapeFlags&ShapeText != 0
}

// Reserved line type names.
const (
	LineTypeByLayerName    = "ByLayer"
	LineTypeByBlockName    = "ByBlock"
	LineTypeContinuousName = "Continuous"
)

// LineType is a named dash pattern.
type LineType struct {
	entryBase

	Description string
	Alignment   byte
	Segments    []LineTypeSegment
}

// NewLineType creates a line type with 'A' alignment and no segments.
func NewLineType(name string) *LineType {
	return &LineType{
		entryBase: entryBase{name: name},
		Alignment: 'A',
	}
}

// ObjectType implements Object.
func (*LineType) ObjectType() format.ObjectType { return format.ObjectLineType }

// PatternLength returns the total length of one pattern repetition.
func (lt *LineType) PatternLength() float64 {
	total := 0.0
	for _, s := range lt.Segments {
		total += math.Abs(s.Length)
	}

	return total
}

// HasText reports whether any segment embeds text.
func (lt *LineType) HasText() bool {
	for _, s := range lt.Segments {
		if s.HasText() {
			return true
		}
	}

	return false
}

// StyleFlags are the state bits of a text style.
type StyleFlags uint8

const (
	StyleIsShape      StyleFlags = 0x01
	StyleVerticalText StyleFlags = 0x04
)

// TextMirrorFlags are the text generation flags.
type TextMirrorFlags uint8

const (
	MirrorNone       TextMirrorFlags = 0
	MirrorBackward   TextMirrorFlags = 2
	MirrorUpsideDown TextMirrorFlags = 4
)

// StandardStyleName is the name of the default text style.
const StandardStyleName = "Standard"

// TextStyle is a named font configuration.
type TextStyle struct {
	entryBase

	Flags  StyleFlags
	Height float64
	Width  float64
	// ObliqueAngle is in radians; keeping it within ±85° is up to the caller.
	ObliqueAngle    float64
	MirrorFlags     TextMirrorFlags
	LastHeight      float64
	Filename        string
	BigFontFilename string
}

// NewTextStyle creates a text style with unit width factor and a last
// height of 0.2.
func NewTextStyle(name string) *TextStyle {
	return &TextStyle{
		entryBase:  entryBase{name: name},
		Width:      1.0,
		LastHeight: 0.2,
	}
}

// ObjectType implements Object.
func (*TextStyle) ObjectType() format.ObjectType { return format.ObjectStyle }

// UCS is a named user coordinate system.
type UCS struct {
	entryBase

	Origin               XYZ
	XAxis                XYZ
	YAxis                XYZ
	Elevation            float64
	OrthographicViewType int16
	OrthographicType     int16
}

// NewUCS creates a coordinate system aligned with the world axes.
func NewUCS(name string) *UCS {
	return &UCS{
		entryBase: entryBase{name: name},
		XAxis:     XAxis,
		YAxis:     YAxis,
	}
}

// ObjectType implements Object.
func (*UCS) ObjectType() format.ObjectType { return format.ObjectUCS }

// ViewModeFlags are the view mode bits.
type ViewModeFlags uint8

const (
	ViewPerspective    ViewModeFlags = 0x01
	ViewFrontClipping  ViewModeFlags = 0x02
	ViewBackClipping   ViewModeFlags = 0x04
	ViewFrontClippingZ ViewModeFlags = 0x10
)

// View is a named view.
type View struct {
	entryBase

	Height        float64
	Width         float64
	Center        XY
	Target        XYZ
	Direction     XYZ
	Angle         float64
	LensLength    float64
	FrontClipping float64
	BackClipping  float64
	ViewMode      ViewModeFlags
	RenderMode    uint8
	IsPaperSpace  bool
	IsPlottable   bool

	IsUcsAssociated     bool
	UcsOrigin           XYZ
	UcsXAxis            XYZ
	UcsYAxis            XYZ
	UcsElevation        float64
	UcsOrthographicType int16
}

// NewView creates a plan view looking down the Z axis with a 50mm lens.
func NewView(name string) *View {
	return &View{
		entryBase:  entryBase{name: name},
		Direction:  ZAxis,
		LensLength: 50,
		UcsXAxis:   XAxis,
		UcsYAxis:   YAxis,
	}
}

// ObjectType implements Object.
func (*View) ObjectType() format.ObjectType { return format.ObjectView }
