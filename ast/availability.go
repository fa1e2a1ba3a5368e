package ast

import "fmt"

// Availability describes how usable a declaration is at the query site.
// The numeric values are the native availability codes.
type Availability uint32

const (
	// Available declarations are fully usable.
	Available Availability = 0
	// Deprecated declarations are usable but discouraged.
	Deprecated Availability = 1
	// Unavailable declarations are not usable.
	Unavailable Availability = 2
	// Inaccessible declarations are usable but not accessible from the
	// query site (for example a private member).
	Inaccessible Availability = 3
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "Available"
	case Deprecated:
		return "Deprecated"
	case Unavailable:
		return "Unavailable"
	case Inaccessible:
		return "Inaccessible"
	}
	return fmt.Sprintf("Availability(%d)", uint32(a))
}
