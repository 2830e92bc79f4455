package db

import (
	"database/sql"
	"time"

	"github.com/waylonwalker/senzu/internal/errors"
)

// GetTranslation looks up a cached translation. Returns ("", false, nil) on
// a cache miss.
func GetTranslation(db *sql.DB, sourceText, targetLanguage string) (string, bool, error) {
	query := `
		SELECT translated_text
		FROM translations
		WHERE source_text = ? AND target_language = ?
	`

	var translated string
	err := db.QueryRow(query, sourceText, targetLanguage).Scan(&translated)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewInternal(err)
	}

	return translated, true, nil
}

// PutTranslation stores a translation. Re-translating the same source text
// replaces the previous entry; translations never expire (static dataset).
func PutTranslation(db *sql.DB, sourceText, targetLanguage, translatedText string) error {
	query := `
		INSERT INTO translations (source_text, target_language, translated_text, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (source_text, target_language)
		DO UPDATE SET translated_text = excluded.translated_text
	`

	_, err := db.Exec(query, sourceText, targetLanguage, translatedText, time.Now().Unix())
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// CountTranslations returns the number of cached translations.
func CountTranslations(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM translations").Scan(&count); err != nil {
		return 0, errors.NewInternal(err)
	}
	return count, nil
}
