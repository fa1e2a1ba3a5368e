// Package lsp converts decoded completion results into Language Server
// Protocol completion items, for embedding the completion model behind an
// LSP server.
package lsp

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/wtdcode/clang-rs/ast"
	"github.com/wtdcode/clang-rs/completion"
)

// Items converts every candidate of a result set into LSP completion items,
// in presentation order (the model's ranking drives both the item order and
// each item's sort text).
func Items(rs *completion.ResultSet) ([]protocol.CompletionItem, error) {
	results := rs.Results()
	completion.Sort(results)

	items := make([]protocol.CompletionItem, 0, len(results))
	for _, r := range results {
		item, err := Item(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Item converts one candidate.
func Item(r completion.Result) (protocol.CompletionItem, error) {
	chunks, err := r.String.Chunks()
	if err != nil {
		return protocol.CompletionItem{}, err
	}

	item := protocol.CompletionItem{
		Label:    label(r.String, chunks),
		Kind:     mapEntityKind(r.Kind),
		SortText: stringPtr(sortText(r.String)),
	}

	if detail := resultType(chunks); detail != "" {
		item.Detail = stringPtr(detail)
	}
	if brief, ok := r.String.BriefComment(); ok {
		item.Documentation = brief
	}
	if r.String.Availability() == ast.Deprecated {
		item.Tags = []protocol.CompletionItemTag{protocol.CompletionItemTagDeprecated}
	}

	insert, snippet := insertText(chunks)
	item.InsertText = stringPtr(insert)
	format := protocol.InsertTextFormatPlainText
	if snippet {
		format = protocol.InsertTextFormatSnippet
	}
	item.InsertTextFormat = &format

	return item, nil
}

// label prefers the typed text; templates without one (for example
// optional-only snippets) fall back to the concatenated chunk text.
func label(s completion.String, chunks []completion.Chunk) string {
	if typed, ok := s.TypedText(); ok {
		return typed
	}
	var b strings.Builder
	for _, chunk := range chunks {
		if text, ok := chunk.Text(); ok {
			b.WriteString(text)
		}
	}
	return b.String()
}

// sortText encodes the model's ordering rule into a string LSP clients sort
// lexicographically: zero-padded priority (ten digits, the full range of the
// engine's 32-bit value), then a separator ranking "no typed text" before
// any typed text, then the typed text itself.
func sortText(s completion.String) string {
	typed, ok := s.TypedText()
	if !ok {
		return fmt.Sprintf("%010d|0", s.Priority())
	}
	return fmt.Sprintf("%010d|1%s", s.Priority(), typed)
}

// resultType returns the text of the first result-type chunk, if any.
func resultType(chunks []completion.Chunk) string {
	for _, chunk := range chunks {
		if chunk.Kind() == completion.ResultType {
			text, _ := chunk.Text()
			return text
		}
	}
	return ""
}

// insertText renders the template as an LSP insert string and reports
// whether snippet placeholders were emitted. Informative, result-type, and
// optional chunks are display-only and excluded from insertion.
func insertText(chunks []completion.Chunk) (string, bool) {
	var b strings.Builder
	stop := 0
	for _, chunk := range chunks {
		switch chunk.Kind() {
		case completion.Informative, completion.ResultType, completion.Optional:
			// not inserted
		case completion.Placeholder, completion.CurrentParameter:
			stop++
			text, _ := chunk.Text()
			b.WriteString(fmt.Sprintf("${%d:%s}", stop, snippetEscape(text)))
		default:
			text, _ := chunk.Text()
			b.WriteString(text)
		}
	}
	return b.String(), stop > 0
}

// snippetEscape escapes the characters LSP snippet syntax reserves.
func snippetEscape(text string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "$", "\\$", "}", "\\}")
	return replacer.Replace(text)
}

// mapEntityKind maps entity kinds to LSP CompletionItemKind
func mapEntityKind(kind ast.EntityKind) *protocol.CompletionItemKind {
	var k protocol.CompletionItemKind
	switch kind {
	case ast.KindStructDecl, ast.KindUnionDecl:
		k = protocol.CompletionItemKindStruct
	case ast.KindClassDecl, ast.KindClassTemplate, ast.KindClassTemplatePartialSpecialization,
		ast.KindObjCInterfaceDecl, ast.KindObjCImplementationDecl:
		k = protocol.CompletionItemKindClass
	case ast.KindEnumDecl:
		k = protocol.CompletionItemKindEnum
	case ast.KindEnumConstantDecl:
		k = protocol.CompletionItemKindEnumMember
	case ast.KindFieldDecl, ast.KindObjCIvarDecl:
		k = protocol.CompletionItemKindField
	case ast.KindFunctionDecl, ast.KindFunctionTemplate, ast.KindOverloadCandidate:
		k = protocol.CompletionItemKindFunction
	case ast.KindMethod, ast.KindObjCInstanceMethodDecl, ast.KindObjCClassMethodDecl,
		ast.KindConversionFunction, ast.KindDestructor:
		k = protocol.CompletionItemKindMethod
	case ast.KindConstructor:
		k = protocol.CompletionItemKindConstructor
	case ast.KindVarDecl, ast.KindParmDecl, ast.KindVariableRef:
		k = protocol.CompletionItemKindVariable
	case ast.KindObjCPropertyDecl:
		k = protocol.CompletionItemKindProperty
	case ast.KindNamespace, ast.KindNamespaceAlias, ast.KindNamespaceRef:
		k = protocol.CompletionItemKindModule
	case ast.KindObjCProtocolDecl:
		k = protocol.CompletionItemKindInterface
	case ast.KindTypedefDecl, ast.KindTypeAliasDecl, ast.KindTemplateTypeParameter,
		ast.KindTypeRef:
		k = protocol.CompletionItemKindTypeParameter
	case ast.KindMacroDefinition:
		k = protocol.CompletionItemKindConstant
	case ast.KindNotImplemented:
		// keyword and snippet candidates
		k = protocol.CompletionItemKindKeyword
	default:
		k = protocol.CompletionItemKindText
	}
	return &k
}

func stringPtr(s string) *string {
	return &s
}
