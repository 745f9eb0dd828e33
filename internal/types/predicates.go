package types

// Identical reports whether x and y are identical types.
// Basic types are identical by kind, structs by declaration.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			if len(x.params) != len(y.params) || !Identical(x.result, y.result) {
				return false
			}
			for i := range x.params {
				if !Identical(x.params[i].Type(), y.params[i].Type()) {
					return false
				}
			}
			return true
		}
	}
	return false
}

// IsBasic reports whether t is a basic (scalar) type.
func IsBasic(t Type) bool {
	_, ok := t.(*Basic)
	return ok
}

// IsStruct reports whether t is a struct type.
func IsStruct(t Type) bool {
	_, ok := t.(*Struct)
	return ok
}

// IsNumeric reports whether t is int, float or char.
func IsNumeric(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.info&InfoNumeric != 0
}

// IsBoolean reports whether t is bool.
func IsBoolean(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.info&InfoBoolean != 0
}

// IsFloat reports whether t is float.
func IsFloat(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.kind == Float
}

// AssignableTo reports whether a value of type v can be stored in a
// location of type t. Scalars convert implicitly among themselves as they
// do in C; structs only to themselves.
func AssignableTo(v, t Type) bool {
	if Identical(v, t) {
		return true
	}
	return IsBasic(v) && IsBasic(t)
}

// Arithmetic returns the result type of a binary arithmetic operation on
// x and y: float if either side is float, int otherwise. It returns nil if
// either side is not numeric.
func Arithmetic(x, y Type) Type {
	if !IsNumeric(x) || !IsNumeric(y) {
		return nil
	}
	if IsFloat(x) || IsFloat(y) {
		return Typ[Float]
	}
	return Typ[Int]
}
