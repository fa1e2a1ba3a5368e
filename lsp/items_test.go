package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/wtdcode/clang-rs/ast"
	"github.com/wtdcode/clang-rs/completion"
	"github.com/wtdcode/clang-rs/engine"
	"github.com/wtdcode/clang-rs/engine/replay"
)

func resultSet(t *testing.T, snap replay.Snapshot) *completion.ResultSet {
	t.Helper()
	tu, err := engine.NewTranslationUnit(replay.New(snap), "main.cpp")
	require.NoError(t, err)
	rs, err := completion.NewCompleter(tu, "main.cpp", 1, 1).Complete()
	require.NoError(t, err)
	t.Cleanup(rs.Close)
	return rs
}

func TestItemsRankedAndConverted(t *testing.T) {
	rs := resultSet(t, replay.Snapshot{
		DefaultOptions: uint32(engine.OptIncludeBriefComments),
		Results: []replay.Result{
			{Kind: uint32(ast.KindMethod), Template: 0},
			{Kind: uint32(ast.KindFieldDecl), Template: 1},
		},
		Templates: []replay.Template{
			{
				Priority:     35,
				Availability: uint32(ast.Deprecated),
				Brief:        "Resizes the widget.",
				Chunks: []replay.Chunk{
					{Kind: engine.ChunkResultType, Text: "void"},
					{Kind: engine.ChunkTypedText, Text: "resize"},
					{Kind: engine.ChunkLeftParen},
					{Kind: engine.ChunkPlaceholder, Text: "int w"},
					{Kind: engine.ChunkRightParen},
				},
			},
			{
				Priority: 8,
				Chunks:   []replay.Chunk{{Kind: engine.ChunkTypedText, Text: "width"}},
			},
		},
	})

	items, err := Items(rs)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// ranked: the priority-8 field first
	assert.Equal(t, "width", items[0].Label)
	assert.Equal(t, protocol.CompletionItemKindField, *items[0].Kind)
	assert.Equal(t, protocol.InsertTextFormatPlainText, *items[0].InsertTextFormat)
	assert.Empty(t, items[0].Tags)

	method := items[1]
	assert.Equal(t, "resize", method.Label)
	assert.Equal(t, protocol.CompletionItemKindMethod, *method.Kind)
	require.NotNil(t, method.Detail)
	assert.Equal(t, "void", *method.Detail)
	assert.Equal(t, "Resizes the widget.", method.Documentation)
	assert.Equal(t, []protocol.CompletionItemTag{protocol.CompletionItemTagDeprecated}, method.Tags)

	require.NotNil(t, method.InsertText)
	assert.Equal(t, "resize(${1:int w})", *method.InsertText)
	assert.Equal(t, protocol.InsertTextFormatSnippet, *method.InsertTextFormat)
}

func TestSortTextEncodesOrdering(t *testing.T) {
	rs := resultSet(t, replay.Snapshot{
		Results: []replay.Result{
			{Kind: uint32(ast.KindFunctionDecl), Template: 0},
			{Kind: uint32(ast.KindFunctionDecl), Template: 1},
			{Kind: uint32(ast.KindFunctionDecl), Template: 2},
		},
		Templates: []replay.Template{
			{Priority: 5, Chunks: []replay.Chunk{{Kind: engine.ChunkTypedText, Text: "abc"}}},
			// optional-only template: no typed text
			{Priority: 5, Chunks: []replay.Chunk{{Kind: engine.ChunkOptional, Template: 3}}},
			{Priority: 4, Chunks: []replay.Chunk{{Kind: engine.ChunkTypedText, Text: "zzz"}}},
			{Chunks: []replay.Chunk{{Kind: engine.ChunkPlaceholder, Text: "x"}}},
		},
	})

	items, err := Items(rs)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// lexicographic order of sort texts must match item order
	for i := 1; i < len(items); i++ {
		assert.Less(t, *items[i-1].SortText, *items[i].SortText)
	}
	// lower priority first, then absent typed text before present
	assert.Equal(t, "zzz", items[0].Label)
	assert.Equal(t, "abc", items[2].Label)
}

func TestSortTextWidePriorities(t *testing.T) {
	// the engine's priority scale is opaque; the padding must keep the
	// lexicographic order numeric across the full 32-bit range
	rs := resultSet(t, replay.Snapshot{
		Results: []replay.Result{
			{Kind: uint32(ast.KindFunctionDecl), Template: 0},
			{Kind: uint32(ast.KindFunctionDecl), Template: 1},
			{Kind: uint32(ast.KindFunctionDecl), Template: 2},
		},
		Templates: []replay.Template{
			{Priority: 100000000, Chunks: []replay.Chunk{{Kind: engine.ChunkTypedText, Text: "big"}}},
			{Priority: 99999999, Chunks: []replay.Chunk{{Kind: engine.ChunkTypedText, Text: "small"}}},
			{Priority: 2000000000, Chunks: []replay.Chunk{{Kind: engine.ChunkTypedText, Text: "max"}}},
		},
	})

	items, err := Items(rs)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "small", items[0].Label)
	assert.Equal(t, "big", items[1].Label)
	assert.Equal(t, "max", items[2].Label)
	for i := 1; i < len(items); i++ {
		assert.Less(t, *items[i-1].SortText, *items[i].SortText)
	}
}

func TestSnippetEscaping(t *testing.T) {
	rs := resultSet(t, replay.Snapshot{
		Results: []replay.Result{{Kind: uint32(ast.KindFunctionDecl), Template: 0}},
		Templates: []replay.Template{{
			Priority: 1,
			Chunks: []replay.Chunk{
				{Kind: engine.ChunkTypedText, Text: "fmt"},
				{Kind: engine.ChunkLeftParen},
				{Kind: engine.ChunkPlaceholder, Text: "${...}"},
				{Kind: engine.ChunkRightParen},
			},
		}},
	})

	items, err := Items(rs)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, `fmt(${1:\${...\}})`, *items[0].InsertText)
}

func TestUndecodableCandidateFails(t *testing.T) {
	rs := resultSet(t, replay.Snapshot{
		Results: []replay.Result{{Kind: uint32(ast.KindFunctionDecl), Template: 0}},
		Templates: []replay.Template{{
			Chunks: []replay.Chunk{{Kind: 99}},
		}},
	})

	_, err := Items(rs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized chunk kind")
}

func TestEntityKindMapping(t *testing.T) {
	tests := []struct {
		kind ast.EntityKind
		want protocol.CompletionItemKind
	}{
		{ast.KindStructDecl, protocol.CompletionItemKindStruct},
		{ast.KindClassDecl, protocol.CompletionItemKindClass},
		{ast.KindEnumConstantDecl, protocol.CompletionItemKindEnumMember},
		{ast.KindConstructor, protocol.CompletionItemKindConstructor},
		{ast.KindNamespace, protocol.CompletionItemKindModule},
		{ast.KindMacroDefinition, protocol.CompletionItemKindConstant},
		{ast.KindNotImplemented, protocol.CompletionItemKindKeyword},
		{ast.KindLabelRef, protocol.CompletionItemKindText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, *mapEntityKind(tt.kind), "kind %s", tt.kind)
	}
}
