//go:build !windows

package app

// Unix terminals hand buffered input to tcell, which parses it normally.
func discardPendingInput() {}
