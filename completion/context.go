package completion

import "github.com/wtdcode/clang-rs/engine"

// Context describes which categories of completion were considered
// applicable at the query site. It is decoded once from the engine's raw
// bitmask and immutable afterwards.
//
// "No context available" (a zero mask or the engine's unknown sentinel) is
// represented by the absence of a Context, never by an all-false value.
type Context struct {
	// AllTypes indicates whether all possible types were included.
	AllTypes bool
	// AllValues indicates whether all possible values were included.
	AllValues bool
	// ClassTypeValues indicates whether values resolving to C++ class
	// types were included.
	ClassTypeValues bool
	// DotMembers indicates whether members accessed with the dot operator
	// were included.
	DotMembers bool
	// ArrowMembers indicates whether members accessed with the arrow
	// operator were included.
	ArrowMembers bool
	// EnumTags indicates whether enum tags were included.
	EnumTags bool
	// UnionTags indicates whether union tags were included.
	UnionTags bool
	// StructTags indicates whether struct tags were included.
	StructTags bool
	// ClassNames indicates whether C++ class names were included.
	ClassNames bool
	// Namespaces indicates whether C++ namespaces and namespace aliases
	// were included.
	Namespaces bool
	// NestedNameSpecifiers indicates whether C++ nested name specifiers
	// were included.
	NestedNameSpecifiers bool
	// MacroNames indicates whether macro names were included.
	MacroNames bool
	// NaturalLanguage indicates whether natural language results were
	// included.
	NaturalLanguage bool
	// ObjCObjectValues indicates whether values resolving to Objective-C
	// objects were included.
	ObjCObjectValues bool
	// ObjCSelectorValues indicates whether values resolving to Objective-C
	// selectors were included.
	ObjCSelectorValues bool
	// ObjCPropertyMembers indicates whether Objective-C properties
	// accessed with the dot operator were included.
	ObjCPropertyMembers bool
	// ObjCInterfaces indicates whether Objective-C interfaces were
	// included.
	ObjCInterfaces bool
	// ObjCProtocols indicates whether Objective-C protocols were included.
	ObjCProtocols bool
	// ObjCCategories indicates whether Objective-C categories were
	// included.
	ObjCCategories bool
	// ObjCInstanceMessages indicates whether Objective-C instance messages
	// were included.
	ObjCInstanceMessages bool
	// ObjCClassMessages indicates whether Objective-C class messages were
	// included.
	ObjCClassMessages bool
	// ObjCSelectorNames indicates whether Objective-C selector names were
	// included.
	ObjCSelectorNames bool
}

// decodeContext decodes the raw bitmask. A zero mask and the unknown
// sentinel both mean no context is available and decode to nil.
func decodeContext(mask uint64) *Context {
	if mask == 0 || mask == engine.ContextUnknown {
		return nil
	}
	return &Context{
		AllTypes:             mask&engine.ContextAnyType != 0,
		AllValues:            mask&engine.ContextAnyValue != 0,
		ClassTypeValues:      mask&engine.ContextClassTypeValue != 0,
		DotMembers:           mask&engine.ContextDotMemberAccess != 0,
		ArrowMembers:         mask&engine.ContextArrowMemberAccess != 0,
		EnumTags:             mask&engine.ContextEnumTag != 0,
		UnionTags:            mask&engine.ContextUnionTag != 0,
		StructTags:           mask&engine.ContextStructTag != 0,
		ClassNames:           mask&engine.ContextClassTag != 0,
		Namespaces:           mask&engine.ContextNamespace != 0,
		NestedNameSpecifiers: mask&engine.ContextNestedNameSpecifier != 0,
		MacroNames:           mask&engine.ContextMacroName != 0,
		NaturalLanguage:      mask&engine.ContextNaturalLanguage != 0,
		ObjCObjectValues:     mask&engine.ContextObjCObjectValue != 0,
		ObjCSelectorValues:   mask&engine.ContextObjCSelectorValue != 0,
		ObjCPropertyMembers:  mask&engine.ContextObjCPropertyAccess != 0,
		ObjCInterfaces:       mask&engine.ContextObjCInterface != 0,
		ObjCProtocols:        mask&engine.ContextObjCProtocol != 0,
		ObjCCategories:       mask&engine.ContextObjCCategory != 0,
		ObjCInstanceMessages: mask&engine.ContextObjCInstanceMessage != 0,
		ObjCClassMessages:    mask&engine.ContextObjCClassMessage != 0,
		ObjCSelectorNames:    mask&engine.ContextObjCSelectorName != 0,
	}
}
