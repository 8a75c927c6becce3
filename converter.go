package markdownify

import (
	"github.com/ocdsext/markdownify-go/internal/catalog"
	"github.com/ocdsext/markdownify-go/internal/converter"
	"github.com/ocdsext/markdownify-go/internal/doctree"
)

// Render renders the subtree rooted at root as translated markdown text.
//
// domain, localeDir and lang select the translation catalog at
// <localeDir>/<lang>/<domain>.toml. Rendering in the default language,
// or without a catalog for lang, uses the source text unchanged. A
// catalog that exists but cannot be parsed aborts the render.
//
// Render allocates fresh state per call and never mutates the tree, so
// independent calls may run in parallel.
func Render(root *Node, domain, localeDir, lang string, opts ...Option) (string, error) {
	options := applyOptions(opts...)

	config := options.Config
	if config == nil {
		config = DefaultConfig()
	}

	translate := catalog.TranslateFunc(options.Translate)
	if translate == nil {
		var err error
		translate, err = catalog.Lookup(domain, localeDir, lang, config.DefaultLanguage)
		if err != nil {
			return "", err
		}
	}

	walker := converter.NewWalker(converter.TranslateFunc(translate), config)
	doctree.Walk(root, walker.Walk)
	return walker.Result(), nil
}
