// Package markdownify renders parsed document trees as translated,
// lightly-formatted markdown text.
//
// The input is a typed node tree produced by an external documentation
// build (sections, paragraphs, lists, tables, literal and raw blocks).
// Rendering walks the tree depth-first, translating titles and
// paragraphs through on-disk message catalogs, and returns one output
// string per call. Tables have no native syntax in the target dialect
// and are emitted as literal HTML tags while their cell content still
// flows through the translation path.
//
// Main API:
//   - Render(): render one tree in one language
//   - RenderLanguages(): render one tree into several languages concurrently
//
// Example:
//
//	root, err := markdownify.DecodeTree(treeFile)
//	if err != nil {
//	    // ...
//	}
//	text, err := markdownify.Render(root, "docs", "locale", "fr")
//
// Translation catalogs live at <localeDir>/<language>/<domain>.toml and
// are loaded lazily. A missing catalog, or rendering in the default
// language, falls back to the source text unchanged.
package markdownify

import (
	"io"

	"github.com/ocdsext/markdownify-go/internal/doctree"
)

// Node is one element of the parsed document tree.
type Node = doctree.Node

// Kind identifies the type of a node.
type Kind = doctree.Kind

// Node kinds recognized by the renderer. Trees may contain other kinds;
// they are ignored.
const (
	KindDocument       = doctree.KindDocument
	KindSection        = doctree.KindSection
	KindTitle          = doctree.KindTitle
	KindParagraph      = doctree.KindParagraph
	KindBlockQuote     = doctree.KindBlockQuote
	KindLiteralBlock   = doctree.KindLiteralBlock
	KindRaw            = doctree.KindRaw
	KindBulletList     = doctree.KindBulletList
	KindEnumeratedList = doctree.KindEnumeratedList
	KindListItem       = doctree.KindListItem
	KindTable          = doctree.KindTable
	KindColspec        = doctree.KindColspec
	KindTHead          = doctree.KindTHead
	KindTBody          = doctree.KindTBody
	KindRow            = doctree.KindRow
	KindEntry          = doctree.KindEntry
	KindText           = doctree.KindText
	KindSystemMessage  = doctree.KindSystemMessage
)

// NewNode creates a node of the given kind.
func NewNode(kind Kind) *Node {
	return doctree.New(kind)
}

// NewTextNode creates a node of the given kind carrying raw source text.
func NewTextNode(kind Kind, rawsource string) *Node {
	return doctree.NewText(kind, rawsource)
}

// DecodeTree reads a JSON-serialized document tree.
func DecodeTree(r io.Reader) (*Node, error) {
	return doctree.DecodeJSON(r)
}
