package markdownify

import (
	"context"
	"fmt"
	"sync"
)

// RenderLanguages renders one tree into each of the given languages and
// returns the output keyed by language.
//
// Renders run concurrently, one goroutine per language: every call to
// Render owns its state and the catalog cache is read-only once loaded,
// so parallel renders are safe. The first failure cancels the result;
// languages already rendered are discarded.
func RenderLanguages(
	ctx context.Context,
	root *Node,
	domain string,
	localeDir string,
	languages []string,
	opts ...Option,
) (map[string]string, error) {
	results := make(map[string]string, len(languages))

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	for _, lang := range languages {
		wg.Add(1)
		go func(lang string) {
			defer wg.Done()

			if ctx.Err() != nil {
				return
			}

			text, err := Render(root, domain, localeDir, lang, opts...)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				Logger.Printf("render %s failed: %v", lang, err)
				if firstErr == nil {
					firstErr = fmt.Errorf("render %s: %w", lang, err)
				}
				return
			}
			results[lang] = text
		}(lang)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
