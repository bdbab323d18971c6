// Package document loads a text document into memory and splits it into
// paragraphs.
//
// A paragraph is a maximal run of non-blank lines; one or more blank lines
// (lines that are empty after trimming whitespace) separate paragraphs.
// Documents are read fully before segmentation. UTF-8 with or without a BOM
// and UTF-16 with a BOM are accepted; anything that looks binary is rejected
// with ErrDocumentUnavailable.
package document
