package node

// Kind identifies the type of value held by a Node.
type Kind uint8

const (
	Null     Kind = iota // Null is the JSON null literal, and the kind of an absent node.
	Boolean              // Boolean is true or false.
	Integer              // Integer is a signed 64-bit integral number.
	Double               // Double is a 64-bit floating point number.
	String               // String is a UTF-8 string.
	Array                // Array is an ordered list of nodes.
	Map                  // Map is a set of unique string keys mapped to nodes.
	KeyValue             // KeyValue is a map entry; no standalone node has this kind.
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Boolean:
		return "Boolean"
	case Integer:
		return "Integer"
	case Double:
		return "Double"
	case String:
		return "String"
	case Array:
		return "Array"
	case Map:
		return "Map"
	case KeyValue:
		return "KeyValue"
	default:
		return "Unknown"
	}
}

// IsContainer reports whether the kind holds child nodes.
func (k Kind) IsContainer() bool {
	return k == Array || k == Map
}

// IsNumber reports whether the kind is Integer or Double.
func (k Kind) IsNumber() bool {
	return k == Integer || k == Double
}
