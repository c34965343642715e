// Package internal holds the SDL plumbing behind the showcase screens: window and renderer
// lifetime, logging, theme, fonts, text rendering and small drawing helpers.
// Types and functions in this package are not part of the public API.
package internal
