package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Bool
	Int
	Float
	Char
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	InfoBoolean BasicInfo = 1 << iota
	InfoInteger
	InfoFloat
	InfoNumeric = InfoInteger | InfoFloat
)

// Basic represents a scalar type: bool, int, float or char.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] is nil.
var Typ = []*Basic{
	Invalid: nil,
	Bool:    {kind: Bool, info: InfoBoolean, name: "bool"},
	Int:     {kind: Int, info: InfoInteger, name: "int"},
	Float:   {kind: Float, info: InfoFloat, name: "float"},
	Char:    {kind: Char, info: InfoInteger, name: "char"},
}
