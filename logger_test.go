package markdownify

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// TestSetLogger_RoutesInternalMessages checks that SetLogger redirects
// messages from the internal packages too: a missing catalog is logged
// through the configured logger, never through the stdlib default.
func TestSetLogger_RoutesInternalMessages(t *testing.T) {
	var ours, stdlib bytes.Buffer

	original := Logger
	SetLogger(log.New(&ours, "", 0))
	defer SetLogger(original)

	prevOut := log.Writer()
	log.SetOutput(&stdlib)
	defer log.SetOutput(prevOut)

	root := NewNode(KindDocument).Append(paragraph("Hello"))
	if _, err := Render(root, "docs", t.TempDir(), "de"); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(ours.String(), "no docs catalog") {
		t.Errorf("configured logger did not receive the catalog message: %q", ours.String())
	}
	if stdlib.Len() != 0 {
		t.Errorf("stdlib default logger received output: %q", stdlib.String())
	}
}
