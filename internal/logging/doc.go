// Package logging provides structured logging for parafold.
//
// The terminal belongs to the navigator while it runs, so log output never
// goes to stdout or stderr. Entries are appended to a file instead, and
// logging is silent unless a level is requested:
//
//	if err := logging.Initialize("debug", ""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The level comes from the argument or, when that is empty, from the
// PARAFOLD_LOG_LEVEL environment variable. Valid values are "debug", "info",
// "warn" and "error". An empty path selects parafold.log in the system temp
// directory.
//
// All logging functions are safe for concurrent use.
package logging
