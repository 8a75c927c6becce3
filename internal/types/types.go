package types

// Markup defines the symbols and tag classes used in the rendered output.
type Markup struct {
	BulletMarker     string
	EnumeratedMarker string
	QuotePrefix      string
	ItemIndent       string

	// Table tag attributes. Tables have no native syntax in the target
	// dialect and are emitted as literal HTML tags.
	TableBorder   string
	TableClass    string
	HeadCellClass string
	RowOddClass   string
	RowEvenClass  string
}

// DefaultMarkup returns the default markup symbols.
func DefaultMarkup() *Markup {
	return &Markup{
		BulletMarker:     "*",
		EnumeratedMarker: "1.",
		QuotePrefix:      "> ",
		ItemIndent:       "  ",
		TableBorder:      "1",
		TableClass:       "docutils",
		HeadCellClass:    "head",
		RowOddClass:      "row-odd",
		RowEvenClass:     "row-even",
	}
}

// RenderConfig holds the render configuration.
type RenderConfig struct {
	Markup *Markup

	// DefaultLanguage is the language the source documents are written
	// in. Rendering in this language never consults a catalog.
	DefaultLanguage string
}

// DefaultRenderConfig returns the default render configuration.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Markup:          DefaultMarkup(),
		DefaultLanguage: "en",
	}
}
