// Package ui provides semantic text formatting for Titan's CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or the terminal doesn't support colors, text decorations are used
// instead:
//
//	ui.Code.Sprint("titan seal")       // `titan seal`
//	ui.Path.Sprint("~/vault.db")       // ~/vault.db
//	ui.Highlight.Sprint("github")      // 'github'
//	ui.Muted.Sprint("sealed")          // (sealed)
//
// RenderEntry and RenderEntries print password entries in the block layout
// used by the show, list and find commands. Passwords are masked unless the
// caller explicitly asks for them.
package ui
