//go:build windows

package app

import "os"

func contSignals() []os.Signal {
	return nil
}

func terminationSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
