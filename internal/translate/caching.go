package translate

import (
	"context"
	"database/sql"

	"github.com/waylonwalker/senzu/internal/db"
)

// CachingTranslator serves translations from the sqlite cache and only
// calls the backend on a miss. Successful translations are written back,
// so the cache grows toward covering the whole (static) dataset.
type CachingTranslator struct {
	backend  Translator
	database *sql.DB
	target   string
}

// NewCachingTranslator wraps backend with the persistent cache.
func NewCachingTranslator(backend Translator, database *sql.DB, target string) *CachingTranslator {
	return &CachingTranslator{
		backend:  backend,
		database: database,
		target:   target,
	}
}

// Translate implements Translator.
func (c *CachingTranslator) Translate(ctx context.Context, text string) (string, error) {
	if cached, ok, err := db.GetTranslation(c.database, text, c.target); err == nil && ok {
		return cached, nil
	}

	translated, err := c.backend.Translate(ctx, text)
	if err != nil {
		return "", err
	}

	// A write failure loses persistence, not correctness
	_ = db.PutTranslation(c.database, text, c.target, translated)

	return translated, nil
}
