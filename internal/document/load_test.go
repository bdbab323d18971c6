package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReadsAndSegments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("a\nb\n\nc\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
	if doc.Size != 7 {
		t.Fatalf("expected size 7, got %d", doc.Size)
	}
	if len(doc.Lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(doc.Lines))
	}
}

func TestLoadMissingFileIsUnavailable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
	var loadErr *Error
	if !errors.As(err, &loadErr) || loadErr.Op != "open" {
		t.Fatalf("expected *Error with op open, got %#v", err)
	}
}

func TestLoadDirectoryIsUnavailable(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrDocumentUnavailable) || !errors.Is(err, ErrIsDirectory) {
		t.Fatalf("expected directory error, got %v", err)
	}
}

func TestParseRejectsBinary(t *testing.T) {
	_, err := Parse("blob", []byte{0x01, 0x00, 0x02, 0x00, 0x03})
	if !errors.Is(err, ErrNotText) {
		t.Fatalf("expected ErrNotText, got %v", err)
	}
	if !errors.Is(err, ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable, got %v", err)
	}
}

func TestParseRejectsBinaryExtension(t *testing.T) {
	if _, err := Parse("image.png", []byte("looks like text")); !errors.Is(err, ErrNotText) {
		t.Fatalf("expected ErrNotText for .png, got %v", err)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse("empty.txt", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Paragraphs) != 0 {
		t.Fatalf("expected no paragraphs, got %d", len(doc.Paragraphs))
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 'A', 0x00, '\n', 0x00, '\n', 0x00, 'B', 0x00}
	doc, err := Parse("utf16.txt", content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Paragraphs) != 2 || doc.Paragraphs[0].Title() != "A" || doc.Paragraphs[1].Title() != "B" {
		t.Fatalf("unexpected paragraphs %#v", doc.Paragraphs)
	}
}

func TestDecodeStripsUTF8BOM(t *testing.T) {
	got, err := Decode([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "hi" {
		t.Fatalf("expected BOM stripped, got %q", got)
	}
}

func TestDecodeNormalizesToNFC(t *testing.T) {
	got, err := Decode([]byte("e\u0301"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "\u00e9" {
		t.Fatalf("expected NFC form, got %q", got)
	}
}
