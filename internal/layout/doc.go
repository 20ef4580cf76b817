// Package layout measures wrapped text and computes review row frames.
//
// All values are in host units: points for a pixel host, terminal cells for
// the TUI. The package is pure and safe to call from any goroutine.
package layout
