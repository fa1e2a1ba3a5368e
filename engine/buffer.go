package engine

// StringRef locates one completion template inside a Buffer. Templates live
// in a flat arena owned by the buffer; nested optional sub-templates are
// referenced the same way as top-level ones. A StringRef is meaningless
// outside the buffer it came from and dangles once that buffer is disposed.
type StringRef uint32

// Raw chunk kind codes as reported by ChunkKind. These are wire values.
const (
	ChunkOptional        uint32 = 0
	ChunkTypedText       uint32 = 1
	ChunkText            uint32 = 2
	ChunkPlaceholder     uint32 = 3
	ChunkInformative     uint32 = 4
	ChunkCurrentParam    uint32 = 5
	ChunkLeftParen       uint32 = 6
	ChunkRightParen      uint32 = 7
	ChunkLeftBracket     uint32 = 8
	ChunkRightBracket    uint32 = 9
	ChunkLeftBrace       uint32 = 10
	ChunkRightBrace      uint32 = 11
	ChunkLeftAngle       uint32 = 12
	ChunkRightAngle      uint32 = 13
	ChunkComma           uint32 = 14
	ChunkResultType      uint32 = 15
	ChunkColon           uint32 = 16
	ChunkSemiColon       uint32 = 17
	ChunkEqual           uint32 = 18
	ChunkHorizontalSpace uint32 = 19
	ChunkVerticalSpace   uint32 = 20
)

// Completion context bits as reported by Contexts. These are wire values.
const (
	ContextAnyType             uint64 = 1 << 0
	ContextAnyValue            uint64 = 1 << 1
	ContextObjCObjectValue     uint64 = 1 << 2
	ContextObjCSelectorValue   uint64 = 1 << 3
	ContextClassTypeValue      uint64 = 1 << 4
	ContextDotMemberAccess     uint64 = 1 << 5
	ContextArrowMemberAccess   uint64 = 1 << 6
	ContextObjCPropertyAccess  uint64 = 1 << 7
	ContextEnumTag             uint64 = 1 << 8
	ContextUnionTag            uint64 = 1 << 9
	ContextStructTag           uint64 = 1 << 10
	ContextClassTag            uint64 = 1 << 11
	ContextNamespace           uint64 = 1 << 12
	ContextNestedNameSpecifier uint64 = 1 << 13
	ContextObjCInterface       uint64 = 1 << 14
	ContextObjCProtocol        uint64 = 1 << 15
	ContextObjCCategory        uint64 = 1 << 16
	ContextObjCInstanceMessage uint64 = 1 << 17
	ContextObjCClassMessage    uint64 = 1 << 18
	ContextObjCSelectorName    uint64 = 1 << 19
	ContextMacroName           uint64 = 1 << 20
	ContextNaturalLanguage     uint64 = 1 << 21

	// ContextUnknown is the sentinel the engine reports when the context
	// could not be determined. It is not a flag set.
	ContextUnknown uint64 = 1<<22 - 1
)

// Diagnostic is one raw diagnostic record attached to a completion buffer.
// Formatting and categorization beyond this record belong to the diagnostic
// subsystem, not to this seam.
type Diagnostic struct {
	Severity uint32
	Message  string
	File     string
	Line     uint32
	Column   uint32
}

// Buffer is the raw result set of one completion query. All accessors are
// pure reads into engine-owned memory; every string or template they expose
// is only valid until Dispose. Dispose must be called exactly once.
type Buffer interface {
	// NumResults returns the number of candidates.
	NumResults() uint32
	// Result returns the raw entity-kind code and template of candidate i.
	Result(i uint32) (kind uint32, ref StringRef)

	// Contexts returns the raw completion-context bitmask.
	Contexts() uint64
	// Container returns the raw entity-kind code of the containing entity
	// and whether its member list was only partially known. An invalid
	// kind code means no container.
	Container() (kind uint32, incomplete bool)
	// Selector returns the partial Objective-C selector typed so far, or
	// the empty string when the context is not a message send.
	Selector() string
	// ContainerUSR returns the USR of the containing entity, or the empty
	// string when unresolvable.
	ContainerUSR() string

	// NumDiagnostics returns the number of diagnostics raised while
	// preparing the completion context.
	NumDiagnostics() uint32
	// Diagnostic returns diagnostic i in emission order.
	Diagnostic(i uint32) Diagnostic

	// NumChunks returns the number of chunks in the given template.
	NumChunks(ref StringRef) uint32
	// ChunkKind returns the raw kind code of chunk i.
	ChunkKind(ref StringRef, i uint32) uint32
	// ChunkText returns the text payload of chunk i.
	ChunkText(ref StringRef, i uint32) string
	// ChunkString returns the nested template of an optional chunk i.
	ChunkString(ref StringRef, i uint32) StringRef

	// Priority returns the template's relevance key; smaller is better.
	Priority(ref StringRef) uint32
	// Availability returns the raw availability code of the template.
	Availability(ref StringRef) uint32
	// NumAnnotations returns the number of annotations on the template.
	NumAnnotations(ref StringRef) uint32
	// Annotation returns annotation i in declaration order.
	Annotation(ref StringRef, i uint32) string
	// BriefComment returns the documentation brief, or the empty string
	// when absent or not requested.
	BriefComment(ref StringRef) string
	// ParentName returns the name of the semantic parent, or the empty
	// string when the candidate has none.
	ParentName(ref StringRef) string

	// Dispose releases the buffer.
	Dispose()
}
