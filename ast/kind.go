// Package ast defines the entity classification values shared by the
// completion model: the kind of AST entity a candidate produces, the
// availability of a declaration, and the Unified Symbol Resolution
// identifier that names an entity across translation units.
package ast

import "fmt"

// EntityKind categorizes an AST entity. The numeric values are the native
// cursor-kind codes reported by the engine and must not be renumbered.
type EntityKind uint32

const (
	KindUnexposedDecl                      EntityKind = 1
	KindStructDecl                         EntityKind = 2
	KindUnionDecl                          EntityKind = 3
	KindClassDecl                          EntityKind = 4
	KindEnumDecl                           EntityKind = 5
	KindFieldDecl                          EntityKind = 6
	KindEnumConstantDecl                   EntityKind = 7
	KindFunctionDecl                       EntityKind = 8
	KindVarDecl                            EntityKind = 9
	KindParmDecl                           EntityKind = 10
	KindObjCInterfaceDecl                  EntityKind = 11
	KindObjCCategoryDecl                   EntityKind = 12
	KindObjCProtocolDecl                   EntityKind = 13
	KindObjCPropertyDecl                   EntityKind = 14
	KindObjCIvarDecl                       EntityKind = 15
	KindObjCInstanceMethodDecl             EntityKind = 16
	KindObjCClassMethodDecl                EntityKind = 17
	KindObjCImplementationDecl             EntityKind = 18
	KindObjCCategoryImplDecl               EntityKind = 19
	KindTypedefDecl                        EntityKind = 20
	KindMethod                             EntityKind = 21
	KindNamespace                          EntityKind = 22
	KindLinkageSpec                        EntityKind = 23
	KindConstructor                        EntityKind = 24
	KindDestructor                         EntityKind = 25
	KindConversionFunction                 EntityKind = 26
	KindTemplateTypeParameter              EntityKind = 27
	KindNonTypeTemplateParameter           EntityKind = 28
	KindTemplateTemplateParameter          EntityKind = 29
	KindFunctionTemplate                   EntityKind = 30
	KindClassTemplate                      EntityKind = 31
	KindClassTemplatePartialSpecialization EntityKind = 32
	KindNamespaceAlias                     EntityKind = 33
	KindUsingDirective                     EntityKind = 34
	KindUsingDeclaration                   EntityKind = 35
	KindTypeAliasDecl                      EntityKind = 36
	KindObjCSynthesizeDecl                 EntityKind = 37
	KindObjCDynamicDecl                    EntityKind = 38
	KindAccessSpecifier                    EntityKind = 39

	KindObjCSuperClassRef EntityKind = 40
	KindObjCProtocolRef   EntityKind = 41
	KindObjCClassRef      EntityKind = 42
	KindTypeRef           EntityKind = 43
	KindBaseSpecifier     EntityKind = 44
	KindTemplateRef       EntityKind = 45
	KindNamespaceRef      EntityKind = 46
	KindMemberRef         EntityKind = 47
	KindLabelRef          EntityKind = 48
	KindOverloadedDeclRef EntityKind = 49
	KindVariableRef       EntityKind = 50

	// Invalid sentinels. KindInvalidCode is how the engine reports "no
	// containing entity" for a completion context, and KindNotImplemented
	// is the classification of keyword and snippet candidates.
	KindInvalidFile    EntityKind = 70
	KindNoDeclFound    EntityKind = 71
	KindNotImplemented EntityKind = 72
	KindInvalidCode    EntityKind = 73

	KindTranslationUnit EntityKind = 300

	KindMacroDefinition    EntityKind = 501
	KindMacroExpansion     EntityKind = 502
	KindInclusionDirective EntityKind = 503

	KindOverloadCandidate EntityKind = 700
)

var kindNames = map[EntityKind]string{
	KindUnexposedDecl:                      "UnexposedDecl",
	KindStructDecl:                         "StructDecl",
	KindUnionDecl:                          "UnionDecl",
	KindClassDecl:                          "ClassDecl",
	KindEnumDecl:                           "EnumDecl",
	KindFieldDecl:                          "FieldDecl",
	KindEnumConstantDecl:                   "EnumConstantDecl",
	KindFunctionDecl:                       "FunctionDecl",
	KindVarDecl:                            "VarDecl",
	KindParmDecl:                           "ParmDecl",
	KindObjCInterfaceDecl:                  "ObjCInterfaceDecl",
	KindObjCCategoryDecl:                   "ObjCCategoryDecl",
	KindObjCProtocolDecl:                   "ObjCProtocolDecl",
	KindObjCPropertyDecl:                   "ObjCPropertyDecl",
	KindObjCIvarDecl:                       "ObjCIvarDecl",
	KindObjCInstanceMethodDecl:             "ObjCInstanceMethodDecl",
	KindObjCClassMethodDecl:                "ObjCClassMethodDecl",
	KindObjCImplementationDecl:             "ObjCImplementationDecl",
	KindObjCCategoryImplDecl:               "ObjCCategoryImplDecl",
	KindTypedefDecl:                        "TypedefDecl",
	KindMethod:                             "Method",
	KindNamespace:                          "Namespace",
	KindLinkageSpec:                        "LinkageSpec",
	KindConstructor:                        "Constructor",
	KindDestructor:                         "Destructor",
	KindConversionFunction:                 "ConversionFunction",
	KindTemplateTypeParameter:              "TemplateTypeParameter",
	KindNonTypeTemplateParameter:           "NonTypeTemplateParameter",
	KindTemplateTemplateParameter:          "TemplateTemplateParameter",
	KindFunctionTemplate:                   "FunctionTemplate",
	KindClassTemplate:                      "ClassTemplate",
	KindClassTemplatePartialSpecialization: "ClassTemplatePartialSpecialization",
	KindNamespaceAlias:                     "NamespaceAlias",
	KindUsingDirective:                     "UsingDirective",
	KindUsingDeclaration:                   "UsingDeclaration",
	KindTypeAliasDecl:                      "TypeAliasDecl",
	KindObjCSynthesizeDecl:                 "ObjCSynthesizeDecl",
	KindObjCDynamicDecl:                    "ObjCDynamicDecl",
	KindAccessSpecifier:                    "AccessSpecifier",
	KindObjCSuperClassRef:                  "ObjCSuperClassRef",
	KindObjCProtocolRef:                    "ObjCProtocolRef",
	KindObjCClassRef:                       "ObjCClassRef",
	KindTypeRef:                            "TypeRef",
	KindBaseSpecifier:                      "BaseSpecifier",
	KindTemplateRef:                        "TemplateRef",
	KindNamespaceRef:                       "NamespaceRef",
	KindMemberRef:                          "MemberRef",
	KindLabelRef:                           "LabelRef",
	KindOverloadedDeclRef:                  "OverloadedDeclRef",
	KindVariableRef:                        "VariableRef",
	KindInvalidFile:                        "InvalidFile",
	KindNoDeclFound:                        "NoDeclFound",
	KindNotImplemented:                     "NotImplemented",
	KindInvalidCode:                        "InvalidCode",
	KindTranslationUnit:                    "TranslationUnit",
	KindMacroDefinition:                    "MacroDefinition",
	KindMacroExpansion:                     "MacroExpansion",
	KindInclusionDirective:                 "InclusionDirective",
	KindOverloadCandidate:                  "OverloadCandidate",
}

// IsInvalid reports whether the kind is one of the invalid sentinels.
func (k EntityKind) IsInvalid() bool {
	return k >= KindInvalidFile && k <= KindInvalidCode
}

func (k EntityKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EntityKind(%d)", uint32(k))
}
