package converter

import (
	"strings"
	"testing"

	"github.com/ocdsext/markdownify-go/internal/doctree"
	"github.com/ocdsext/markdownify-go/internal/types"
)

func newTestWalker() *Walker {
	return NewWalker(nil, types.DefaultRenderConfig())
}

func paragraph(text string) *doctree.Node {
	return doctree.NewText(doctree.KindParagraph, text).
		Append(doctree.NewText(doctree.KindText, text))
}

// isContextKind reports whether the node pushes a context entry, given
// the same parent rule the walker applies to raw nodes.
func isContextKind(n *doctree.Node) bool {
	switch n.Kind {
	case doctree.KindBlockQuote, doctree.KindEntry:
		return true
	case doctree.KindRaw:
		p := n.Parent()
		return p == nil || p.Kind != doctree.KindParagraph
	default:
		return false
	}
}

func isListKind(n *doctree.Node) bool {
	return n.Kind == doctree.KindBulletList || n.Kind == doctree.KindEnumeratedList
}

// TestStackDepthInvariant checks that at every traversal event the open
// context and marker stack depths equal the nesting depth of the
// corresponding node kinds in the ancestor chain.
func TestStackDepthInvariant(t *testing.T) {
	tree := doctree.New(doctree.KindDocument).Append(
		doctree.New(doctree.KindBlockQuote).Append(
			paragraph("quoted"),
			doctree.New(doctree.KindBlockQuote).Append(paragraph("deeper")),
		),
		doctree.New(doctree.KindBulletList).Append(
			doctree.New(doctree.KindListItem).Append(
				paragraph("a"),
				doctree.New(doctree.KindEnumeratedList).Append(
					doctree.New(doctree.KindListItem).Append(paragraph("b")),
				),
			),
		),
		doctree.New(doctree.KindRaw).Append(
			doctree.NewText(doctree.KindText, "<raw/>"),
		),
		doctree.New(doctree.KindTable).Append(
			doctree.New(doctree.KindTBody).Append(
				doctree.New(doctree.KindRow).Append(
					doctree.New(doctree.KindEntry).Append(paragraph("cell")),
				),
			),
		),
	)

	w := newTestWalker()
	contextDepth := 0
	markerDepth := 0

	doctree.Walk(tree, func(n *doctree.Node, entering bool) {
		w.Walk(n, entering)

		if isContextKind(n) {
			if entering {
				contextDepth++
			} else {
				contextDepth--
			}
		}
		if isListKind(n) {
			if entering {
				markerDepth++
			} else {
				markerDepth--
			}
		}

		if got := len(w.contexts) - 1; got != contextDepth {
			t.Fatalf("at %s (entering=%v): context depth = %d, want %d",
				n.Kind, entering, got, contextDepth)
		}
		if got := len(w.markers); got != markerDepth {
			t.Fatalf("at %s (entering=%v): marker depth = %d, want %d",
				n.Kind, entering, got, markerDepth)
		}
	})

	if contextDepth != 0 || markerDepth != 0 {
		t.Fatalf("unbalanced traversal: contexts %d, markers %d", contextDepth, markerDepth)
	}
}

func TestContextStack_BottomNeverPopped(t *testing.T) {
	w := newTestWalker()
	for i := 0; i < 3; i++ {
		if got := w.popContext(); got != contextNone {
			t.Fatalf("popContext() on empty stack = %q, want none", got)
		}
	}
	if len(w.contexts) != 1 {
		t.Fatalf("context stack length = %d, want 1", len(w.contexts))
	}
}

func TestWriteColspecs_FlushedOnce(t *testing.T) {
	w := newTestWalker()
	w.colspecs = []int{30, 70}

	w.writeColspecs()
	first := w.Result()
	if !strings.Contains(first, `<col width="30%" />`) {
		t.Fatalf("first flush missing col tags:\n%s", first)
	}

	w.writeColspecs()
	if second := w.Result(); second != first {
		t.Errorf("second flush emitted output:\n%s", second)
	}
}

func TestWriteColspecs_ZeroTotal(t *testing.T) {
	w := newTestWalker()
	w.colspecs = []int{0, 0}
	w.writeColspecs()

	if got := w.Result(); got != "" {
		t.Errorf("zero total width should emit nothing, got %q", got)
	}
	if len(w.colspecs) != 0 {
		t.Errorf("pending colspecs not cleared: %v", w.colspecs)
	}
}

func TestHTMLTag_SortedAttributes(t *testing.T) {
	w := newTestWalker()
	n := doctree.New(doctree.KindTable).
		SetAttr("ids", "table-1").
		SetAttr("empty", "")
	w.htmlTag(n, "", "\n", false, attr{"border", "1"}, attr{"CLASS", "docutils"})

	want := "<table border=\"1\" class=\"docutils\" ids=\"table-1\">\n"
	if got := w.Result(); got != want {
		t.Errorf("htmlTag() = %q, want %q", got, want)
	}
}

func TestHTMLTag_EmptyContainersDropped(t *testing.T) {
	w := newTestWalker()
	n := doctree.New(doctree.KindTable).
		SetAttr("ids", []any{}).
		SetAttr("classes", []string{}).
		SetAttr("names", map[string]any{})
	w.htmlTag(n, "", "\n", false, attr{"border", "1"})

	want := "<table border=\"1\">\n"
	if got := w.Result(); got != want {
		t.Errorf("htmlTag() = %q, want %q", got, want)
	}
}

func TestWalker_WritingGate(t *testing.T) {
	w := newTestWalker()
	w.append("before ")
	w.Walk(doctree.New(doctree.KindSystemMessage), true)
	w.append("hidden")
	w.Walk(doctree.New(doctree.KindSystemMessage), false)
	w.append("after")

	if got := w.Result(); got != "before after" {
		t.Errorf("Result() = %q, want %q", got, "before after")
	}
}
