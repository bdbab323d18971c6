// Parafold is a terminal navigator for plain text documents.
//
// It splits a document into paragraphs at blank lines and shows them as a
// collapsible outline: a paragraph list on the left and the document on the
// right, where each paragraph is either folded to its first line or shown in
// full.
//
// Usage:
//
//	parafold [flags] FILE
//	parafold outline FILE [--format yaml|json]
//	parafold version
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// UTF-8 fallback keeps non-ASCII text readable on terminals with an
	// unknown charset.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
