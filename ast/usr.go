package ast

// Usr is a Unified Symbol Resolution identifier. USRs name the same entity
// consistently across translation units and are treated as opaque here.
type Usr string

func (u Usr) String() string { return string(u) }
