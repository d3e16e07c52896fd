package grammar

import "github.com/wippyai/plykit/ply"

// Line is one parsed header statement. The concrete type is one of
// MagicNumber, Format, Comment, ObjInfo, Element, Property or EndHeader.
type Line interface {
	line()
}

// MagicNumber is the "ply" line.
type MagicNumber struct{}

// Format is a "format <encoding> <major>.<minor>" line.
type Format struct {
	Encoding ply.Encoding
	Version  ply.Version
}

// Comment is a "comment" line. Text may be empty.
type Comment struct {
	Text string
}

// ObjInfo is an "obj_info" line. Text may be empty.
type ObjInfo struct {
	Text string
}

// Element is an "element <name> <count>" line. Def has no properties.
type Element struct {
	Def ply.ElementDef
}

// Property is a scalar or list "property" line.
type Property struct {
	Def ply.PropertyDef
}

// EndHeader is the "end_header" line.
type EndHeader struct{}

func (MagicNumber) line() {}
func (Format) line()      {}
func (Comment) line()     {}
func (ObjInfo) line()     {}
func (Element) line()     {}
func (Property) line()    {}
func (EndHeader) line()   {}
