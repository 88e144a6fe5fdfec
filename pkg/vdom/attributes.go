package vdom

// Attribute is a single dynamic attribute instance supplied for one
// render, filling an AttrDynamic placeholder.
type Attribute struct {
	Name  string
	Value AttributeValue

	Namespace string

	// MountedElement records which host element the attribute was written
	// to, set by the reconciler at mount time.
	MountedElement ElementCell

	// Volatile mirrors TemplateAttribute.Volatile for dynamic attributes:
	// the host property may drift and must be force-reassigned.
	Volatile bool
}

// ValueKind is the AttributeValue type discriminator.
type ValueKind uint8

const (
	ValueText     ValueKind = iota // UTF-8 string
	ValueFloat                     // float64
	ValueInt                       // int64
	ValueBool                      // bool
	ValueListener                  // type-erased event callback
	ValueAny                       // opaque boxed value (equality + type identity only)
	ValueNone                      // explicit absence, distinct from an unset attribute
)

// String returns the string representation of the ValueKind.
func (k ValueKind) String() string {
	switch k {
	case ValueText:
		return "Text"
	case ValueFloat:
		return "Float"
	case ValueInt:
		return "Int"
	case ValueBool:
		return "Bool"
	case ValueListener:
		return "Listener"
	case ValueAny:
		return "Any"
	case ValueNone:
		return "None"
	default:
		return "Unknown"
	}
}

// AttributeValue is a closed tagged union of the values a dynamic
// attribute can carry. Kind selects which field is meaningful.
type AttributeValue struct {
	Kind     ValueKind
	Text     string
	Float    float64
	Int      int64
	Bool     bool
	Listener *Listener
	Any      AnyValue
}

// TextValue wraps a string.
func TextValue(s string) AttributeValue {
	return AttributeValue{Kind: ValueText, Text: s}
}

// FloatValue wraps a float64.
func FloatValue(f float64) AttributeValue {
	return AttributeValue{Kind: ValueFloat, Float: f}
}

// IntValue wraps an int64.
func IntValue(i int64) AttributeValue {
	return AttributeValue{Kind: ValueInt, Int: i}
}

// BoolValue wraps a bool.
func BoolValue(b bool) AttributeValue {
	return AttributeValue{Kind: ValueBool, Bool: b}
}

// NoneValue is the explicit-absence value. It compares equal to itself
// and signals "attribute removed" to the host backend.
func NoneValue() AttributeValue {
	return AttributeValue{Kind: ValueNone}
}

// AnyOf boxes an arbitrary comparable value as an opaque attribute value
// supporting only equality and type identity.
func AnyOf[T comparable](v T) AttributeValue {
	return AttributeValue{Kind: ValueAny, Any: BoxAny(v)}
}

// Equal reports variant-aware value equality, the diffing comparison:
// same-kind primitives compare by value, two listeners are always equal
// (only presence matters to a diff; callback identity is irrelevant), and
// Any values compare via their type-erased equality. Different kinds are
// never equal.
func (a AttributeValue) Equal(b AttributeValue) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValueText:
		return a.Text == b.Text
	case ValueFloat:
		return a.Float == b.Float
	case ValueInt:
		return a.Int == b.Int
	case ValueBool:
		return a.Bool == b.Bool
	case ValueListener:
		return true
	case ValueAny:
		if a.Any == nil || b.Any == nil {
			return a.Any == nil && b.Any == nil
		}
		return a.Any.Equals(b.Any)
	case ValueNone:
		return true
	default:
		return false
	}
}

// MatchesType reports whether both values have the same variant shape,
// independent of the contained value. The reconciler uses it to decide
// whether an in-place value update is legal or the node must be replaced.
func (a AttributeValue) MatchesType(b AttributeValue) bool {
	return a.Kind == b.Kind
}

// IsNone reports whether this is the explicit-absence value.
func (a AttributeValue) IsNone() bool {
	return a.Kind == ValueNone
}
