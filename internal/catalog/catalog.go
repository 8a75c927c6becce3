// Package catalog resolves translation catalogs into lookup functions.
//
// Catalogs are TOML message files on disk, organized as
// <localeDir>/<language>/<domain>.toml. They are loaded lazily on the
// first lookup and cached process-wide; the cached lookup functions are
// read-only and safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/ocdsext/markdownify-go/internal/logging"
)

// TranslateFunc maps a source message to its localized form.
type TranslateFunc func(string) string

// passthrough returns messages unchanged. Used when no catalog applies.
func passthrough(message string) string { return message }

type cacheKey struct {
	domain    string
	localeDir string
	lang      string
}

var (
	mu    sync.RWMutex
	cache = make(map[cacheKey]TranslateFunc)
)

// Lookup returns a translate function for the given domain, catalog
// directory and language. The default language and languages without a
// catalog pass messages through unchanged; a catalog that exists but
// cannot be parsed is an error.
func Lookup(domain, localeDir, lang, defaultLanguage string) (TranslateFunc, error) {
	if lang == "" || lang == defaultLanguage {
		return passthrough, nil
	}

	key := cacheKey{domain: domain, localeDir: localeDir, lang: lang}

	mu.RLock()
	fn, ok := cache[key]
	mu.RUnlock()
	if ok {
		return fn, nil
	}

	mu.Lock()
	defer mu.Unlock()
	if fn, ok := cache[key]; ok {
		return fn, nil
	}

	fn, err := load(domain, localeDir, lang, defaultLanguage)
	if err != nil {
		return nil, err
	}
	cache[key] = fn
	return fn, nil
}

func load(domain, localeDir, lang, defaultLanguage string) (TranslateFunc, error) {
	path := filepath.Join(localeDir, lang, domain+".toml")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Printf("catalog: no %s catalog for language %q, using source text", domain, lang)
		return passthrough, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	defaultTag, err := language.Parse(defaultLanguage)
	if err != nil {
		defaultTag = language.English
	}

	bundle := i18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	// The real file is named <domain>.toml; go-i18n infers the language
	// from the file name, so parse under a synthetic name carrying it.
	if _, err := bundle.ParseMessageFileBytes(data, fmt.Sprintf("%s.%s.toml", domain, lang)); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	localizer := i18n.NewLocalizer(bundle, lang)

	return func(message string) string {
		if message == "" {
			return ""
		}
		localized, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:      message,
			DefaultMessage: &i18n.Message{ID: message, Other: message},
		})
		if err != nil {
			return message
		}
		return localized
	}, nil
}
