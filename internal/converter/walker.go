package converter

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/ocdsext/markdownify-go/internal/buffer"
	"github.com/ocdsext/markdownify-go/internal/doctree"
	"github.com/ocdsext/markdownify-go/internal/types"
)

// TranslateFunc maps a source message to its localized form. Messages
// without a translation are returned unchanged.
type TranslateFunc func(string) string

// writeContext tracks the structural render mode the walker is inside.
type writeContext string

const (
	contextNone       writeContext = ""
	contextBlockQuote writeContext = "block-quote"
	contextBlockRaw   writeContext = "block-raw"
	contextHeadCell   writeContext = "th"
	contextBodyCell   writeContext = "td"
)

// Walker traverses a document tree and renders it as translated
// markdown-dialect text. One Walker serves exactly one render call; it
// holds the full render state and is never shared or reused.
type Walker struct {
	buf       *buffer.TextBuffer
	translate TranslateFunc
	markup    *types.Markup

	// Whether we are writing output. Toggled off inside
	// system_message subtrees.
	writing bool
	// The writing context. The bottom entry is contextNone.
	contexts []writeContext
	// List item markers, one per open list.
	markers []string
	// Pending table column widths, flushed at the first row group.
	colspecs []int
	// For zebra tables.
	tableRowIndex int
}

// NewWalker creates a Walker rendering with the given translate
// function and markup configuration.
func NewWalker(translate TranslateFunc, config *types.RenderConfig) *Walker {
	if translate == nil {
		translate = func(s string) string { return s }
	}
	markup := config.Markup
	if markup == nil {
		markup = types.DefaultMarkup()
	}
	return &Walker{
		buf:       buffer.New(),
		translate: translate,
		markup:    markup,
		writing:   true,
		contexts:  []writeContext{contextNone},
		markers:   make([]string, 0),
		colspecs:  make([]int, 0),
	}
}

// Walk handles one traversal event. It is called with entering=true
// before a node's children and entering=false after them. Unrecognized
// kinds fall through to the default no-op branch.
func (w *Walker) Walk(n *doctree.Node, entering bool) {
	switch n.Kind {
	case doctree.KindDocument:
		if !entering {
			w.onEndDocument()
		}

	case doctree.KindSystemMessage:
		// Suppress all descendant output.
		w.writing = !entering

	case doctree.KindText:
		if entering {
			w.onText(n)
		}

	case doctree.KindRaw:
		if entering {
			w.onStartRaw(n)
		} else {
			w.onEndRaw(n)
		}

	case doctree.KindBlockQuote:
		if entering {
			w.pushContext(contextBlockQuote)
		} else {
			w.popContext()
		}

	case doctree.KindParagraph:
		if entering {
			w.onStartParagraph(n)
		} else {
			w.onEndParagraph()
		}

	case doctree.KindLiteralBlock:
		if entering {
			w.onStartLiteralBlock(n)
		} else {
			w.append("```\n\n")
		}

	case doctree.KindSection:
		if entering {
			w.onStartSection(n)
		}

	case doctree.KindTitle:
		if entering {
			w.translateNode(n)
		} else {
			w.append("\n\n")
		}

	case doctree.KindBulletList:
		if entering {
			w.markers = append(w.markers, w.markup.BulletMarker)
		} else {
			w.onEndList()
		}

	case doctree.KindEnumeratedList:
		if entering {
			w.markers = append(w.markers, w.markup.EnumeratedMarker)
		} else {
			w.onEndList()
		}

	case doctree.KindListItem:
		if entering {
			w.onStartItem()
		}

	case doctree.KindTable:
		if entering {
			w.onStartTable(n)
		} else {
			w.closeTag("table", "\n\n")
		}

	case doctree.KindColspec:
		if entering {
			w.onColspec(n)
		}

	case doctree.KindTHead:
		if entering {
			w.writeColspecs()
			w.htmlTag(n, "", "\n", false, attr{"valign", "bottom"})
		} else {
			w.closeTag("thead", "\n")
		}

	case doctree.KindTBody:
		if entering {
			w.writeColspecs()
			w.htmlTag(n, "", "\n", false, attr{"valign", "top"})
		} else {
			w.closeTag("tbody", "\n")
		}

	case doctree.KindRow:
		if entering {
			w.onStartRow()
		} else {
			w.closeTag("tr", "\n")
		}

	case doctree.KindEntry:
		if entering {
			w.onStartEntry(n)
		} else {
			w.onEndEntry()
		}

	default:
		// Unknown kinds are tolerated so upstream parser extensions
		// do not break rendering.
	}
}

// Result returns the rendered text.
func (w *Walker) Result() string {
	return w.buf.String()
}

// append writes text to the output unless writing is suppressed.
func (w *Walker) append(text string) {
	if w.writing {
		w.buf.Write(text)
	}
}

// translateNode looks up the node's stripped raw source and appends the
// localized form. Child text nodes do not emit outside block-raw
// context, so the text appears exactly once.
func (w *Walker) translateNode(n *doctree.Node) {
	message := strings.TrimSpace(n.RawSource)
	w.append(w.translate(message))
}

// --- Context stack ---

func (w *Walker) pushContext(c writeContext) {
	w.contexts = append(w.contexts, c)
}

func (w *Walker) popContext() writeContext {
	// The bottom contextNone entry is never popped.
	if len(w.contexts) <= 1 {
		return contextNone
	}
	top := w.contexts[len(w.contexts)-1]
	w.contexts = w.contexts[:len(w.contexts)-1]
	return top
}

func (w *Walker) context() writeContext {
	return w.contexts[len(w.contexts)-1]
}

// --- Text ---

func (w *Walker) onText(n *doctree.Node) {
	if w.context() == contextBlockRaw {
		w.append(n.RawSource)
	}
}

// --- Document ---

func (w *Walker) onEndDocument() {
	// Remove the extra newline left by the last child.
	w.buf.TrimTrailingNewline()
}

// --- Raw blocks ---

// Raw nodes nested in a paragraph participate inline; all others open a
// block-raw context so their text children are emitted verbatim.
func (w *Walker) onStartRaw(n *doctree.Node) {
	if p := n.Parent(); p == nil || p.Kind != doctree.KindParagraph {
		w.pushContext(contextBlockRaw)
	}
}

func (w *Walker) onEndRaw(n *doctree.Node) {
	if p := n.Parent(); p == nil || p.Kind != doctree.KindParagraph {
		w.popContext()
		w.append("\n\n")
	}
}

// --- Paragraphs ---

func (w *Walker) onStartParagraph(n *doctree.Node) {
	if w.context() == contextBlockQuote {
		w.append(w.markup.QuotePrefix)
	}
	w.translateNode(n)
}

func (w *Walker) onEndParagraph() {
	// Inside a table cell the closing tag follows the text directly.
	if c := w.context(); c != contextHeadCell && c != contextBodyCell {
		w.append("\n")
		if len(w.markers) == 0 {
			w.append("\n")
		}
	}
}

// --- Literal blocks ---

func (w *Walker) onStartLiteralBlock(n *doctree.Node) {
	w.append(fmt.Sprintf("```%s\n", n.StringAttr("language")))
	w.append(n.RawSource)
}

// --- Sections & titles ---

func (w *Walker) onStartSection(n *doctree.Node) {
	if level, ok := n.IntAttr("level"); ok && level > 0 {
		w.append(strings.Repeat("#", level) + " ")
	}
}

// --- Lists ---

func (w *Walker) onEndList() {
	if len(w.markers) > 0 {
		w.markers = w.markers[:len(w.markers)-1]
	}
	if len(w.markers) == 0 {
		w.append("\n")
	}
}

func (w *Walker) onStartItem() {
	if len(w.markers) == 0 {
		return
	}
	w.append(strings.Repeat(w.markup.ItemIndent, len(w.markers)-1))
	w.append(w.markers[len(w.markers)-1] + " ")
}

// --- Tables ---

func (w *Walker) onStartTable(n *doctree.Node) {
	w.tableRowIndex = 0
	w.htmlTag(n, "", "\n", false,
		attr{"border", w.markup.TableBorder},
		attr{"class", w.markup.TableClass},
	)
}

func (w *Walker) onColspec(n *doctree.Node) {
	width, _ := n.IntAttr("colwidth")
	w.colspecs = append(w.colspecs, width)
}

// writeColspecs flushes the pending column widths as a colgroup of
// percentage-width col tags. It runs at most once per table, at the
// first row group encountered. A zero total width skips the colgroup
// instead of dividing by zero.
func (w *Walker) writeColspecs() {
	if len(w.colspecs) == 0 {
		return
	}
	total := 0
	for _, width := range w.colspecs {
		total += width
	}
	if total == 0 {
		w.colspecs = w.colspecs[:0]
		return
	}
	w.htmlTag(nil, "colgroup", "\n", false)
	for _, width := range w.colspecs {
		// Round half up.
		percent := int(float64(width)*100.0/float64(total) + 0.5)
		w.htmlTag(nil, "col", "\n", true, attr{"width", fmt.Sprintf("%d%%", percent)})
	}
	w.colspecs = w.colspecs[:0]
	w.closeTag("colgroup", "\n")
}

func (w *Walker) onStartRow() {
	w.tableRowIndex++
	class := w.markup.RowEvenClass
	if w.tableRowIndex%2 == 1 {
		class = w.markup.RowOddClass
	}
	w.htmlTag(nil, "tr", "\n", false, attr{"class", class})
}

func (w *Walker) onStartEntry(n *doctree.Node) {
	tagname := contextBodyCell
	var atts []attr
	if gp := grandparent(n); gp != nil && gp.Kind == doctree.KindTHead {
		tagname = contextHeadCell
		atts = append(atts, attr{"class", w.markup.HeadCellClass})
	}
	w.pushContext(tagname)
	w.htmlTag(nil, string(tagname), "", false, atts...)
}

func (w *Walker) onEndEntry() {
	w.closeTag(string(w.popContext()), "\n")
}

func grandparent(n *doctree.Node) *doctree.Node {
	if p := n.Parent(); p != nil {
		return p.Parent()
	}
	return nil
}

// --- Tag assembly ---

type attr struct {
	name  string
	value string
}

// htmlTag emits an opening tag. With a node, the tag name is the node's
// kind and its non-empty attributes are included; overrides replace
// attributes of the same name. Attribute names are lowercased and
// emitted in sorted order to keep output deterministic.
func (w *Walker) htmlTag(n *doctree.Node, tagname, suffix string, empty bool, overrides ...attr) {
	if tagname == "" && n != nil {
		tagname = string(n.Kind)
	}

	atts := make(map[string]string)
	if n != nil {
		for name, value := range n.Attributes {
			if s := attrString(value); s != "" {
				atts[strings.ToLower(name)] = s
			}
		}
	}
	for _, o := range overrides {
		atts[strings.ToLower(o.name)] = o.value
	}

	names := make([]string, 0, len(atts))
	for name := range atts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := []string{tagname}
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%q", name, atts[name]))
	}

	infix := ""
	if empty {
		infix = " /"
	}
	w.append(fmt.Sprintf("<%s%s>", strings.Join(parts, " "), infix) + suffix)
}

func (w *Walker) closeTag(tagname, suffix string) {
	w.append(fmt.Sprintf("</%s>", tagname) + suffix)
}

// attrString renders an attribute value, dropping empty and zero values
// the way truthiness filtering does upstream.
func attrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case int:
		if v == 0 {
			return ""
		}
		return fmt.Sprintf("%d", v)
	case int64:
		if v == 0 {
			return ""
		}
		return fmt.Sprintf("%d", v)
	case float64:
		if v == 0 {
			return ""
		}
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		// Empty containers (docutils list attributes like ids/classes
		// decode from JSON as empty slices) count as falsy.
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			if rv.Len() == 0 {
				return ""
			}
		}
		return fmt.Sprintf("%v", v)
	}
}
