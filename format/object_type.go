package format

// ObjectType is the fixed type number written at the start of every
// object record.
type ObjectType int16

const (
	ObjectUnused          ObjectType = 0x00
	ObjectText            ObjectType = 0x01
	ObjectBlock           ObjectType = 0x04
	ObjectEndBlock        ObjectType = 0x05
	ObjectInsert          ObjectType = 0x07
	ObjectCircle          ObjectType = 0x12
	ObjectArc             ObjectType = 0x11
	ObjectLine            ObjectType = 0x13
	ObjectPoint           ObjectType = 0x1B
	ObjectBlockControl    ObjectType = 0x30
	ObjectBlockHeader     ObjectType = 0x31
	ObjectLayerControl    ObjectType = 0x32
	ObjectLayer           ObjectType = 0x33
	ObjectStyleControl    ObjectType = 0x34
	ObjectStyle           ObjectType = 0x35
	ObjectLineTypeControl ObjectType = 0x38
	ObjectLineType        ObjectType = 0x39
	ObjectViewControl     ObjectType = 0x3C
	ObjectView            ObjectType = 0x3D
	ObjectUCSControl      ObjectType = 0x3E
	ObjectUCS             ObjectType = 0x3F
	ObjectAppIDControl    ObjectType = 0x42
	ObjectAppID           ObjectType = 0x43

	// ObjectUnlisted marks kinds that are stored through the class section
	// and have no fixed type number.
	ObjectUnlisted ObjectType = -999
)

var objectTypeNames = map[ObjectType]string{
	ObjectUnused:          "UNUSED",
	ObjectText:            "TEXT",
	ObjectBlock:           "BLOCK",
	ObjectEndBlock:        "ENDBLK",
	ObjectInsert:          "INSERT",
	ObjectCircle:          "CIRCLE",
	ObjectArc:             "ARC",
	ObjectLine:            "LINE",
	ObjectPoint:           "POINT",
	ObjectBlockControl:    "BLOCK_CONTROL_OBJ",
	ObjectBlockHeader:     "BLOCK_HEADER",
	ObjectLayerControl:    "LAYER_CONTROL_OBJ",
	ObjectLayer:           "LAYER",
	ObjectStyleControl:    "STYLE_CONTROL_OBJ",
	ObjectStyle:           "STYLE",
	ObjectLineTypeControl: "LTYPE_CONTROL_OBJ",
	ObjectLineType:        "LTYPE",
	ObjectViewControl:     "VIEW_CONTROL_OBJ",
	ObjectView:            "VIEW",
	ObjectUCSControl:      "UCS_CONTROL_OBJ",
	ObjectUCS:             "UCS",
	ObjectAppIDControl:    "APPID_CONTROL_OBJ",
	ObjectAppID:           "APPID",
	ObjectUnlisted:        "UNLISTED",
}

func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}

	return "Unknown"
}

// IsEntity reports whether records of this type carry the common entity
// prefix rather than the common non-entity prefix.
func (t ObjectType) IsEntity() bool {
	switch t { //nolint: exhaustive
	case ObjectText, ObjectBlock, ObjectEndBlock, ObjectInsert, ObjectCircle,
		ObjectArc, ObjectLine, ObjectPoint:
		return true
	default:
		return false
	}
}
