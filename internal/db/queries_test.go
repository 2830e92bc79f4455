package db

import "testing"

func TestTranslationRoundtrip(t *testing.T) {
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	// Miss before insert
	_, ok, err := GetTranslation(database, "El guerrero legendario", "en")
	if err != nil {
		t.Fatalf("GetTranslation failed: %v", err)
	}
	if ok {
		t.Error("GetTranslation hit before insert, want miss")
	}

	if err := PutTranslation(database, "El guerrero legendario", "en", "The legendary warrior"); err != nil {
		t.Fatalf("PutTranslation failed: %v", err)
	}

	got, ok, err := GetTranslation(database, "El guerrero legendario", "en")
	if err != nil {
		t.Fatalf("GetTranslation failed: %v", err)
	}
	if !ok {
		t.Fatal("GetTranslation miss after insert, want hit")
	}
	if got != "The legendary warrior" {
		t.Errorf("GetTranslation = %q, want %q", got, "The legendary warrior")
	}
}

func TestPutTranslation_ReplaceOnConflict(t *testing.T) {
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	if err := PutTranslation(database, "hola", "en", "hi"); err != nil {
		t.Fatalf("PutTranslation failed: %v", err)
	}
	if err := PutTranslation(database, "hola", "en", "hello"); err != nil {
		t.Fatalf("PutTranslation (replace) failed: %v", err)
	}

	got, ok, _ := GetTranslation(database, "hola", "en")
	if !ok || got != "hello" {
		t.Errorf("GetTranslation = (%q, %v), want (hello, true)", got, ok)
	}

	count, err := CountTranslations(database)
	if err != nil {
		t.Fatalf("CountTranslations failed: %v", err)
	}
	if count != 1 {
		t.Errorf("CountTranslations = %d, want 1", count)
	}
}

func TestTranslationsKeyedByLanguage(t *testing.T) {
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	if err := PutTranslation(database, "hola", "en", "hello"); err != nil {
		t.Fatalf("PutTranslation failed: %v", err)
	}
	if err := PutTranslation(database, "hola", "fr", "salut"); err != nil {
		t.Fatalf("PutTranslation failed: %v", err)
	}

	en, ok, _ := GetTranslation(database, "hola", "en")
	if !ok || en != "hello" {
		t.Errorf("en translation = (%q, %v), want (hello, true)", en, ok)
	}
	fr, ok, _ := GetTranslation(database, "hola", "fr")
	if !ok || fr != "salut" {
		t.Errorf("fr translation = (%q, %v), want (salut, true)", fr, ok)
	}
}
