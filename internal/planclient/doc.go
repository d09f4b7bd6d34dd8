// Package planclient holds the application state of a planning session and
// the rules for applying user input and service responses to it.
//
// A [Controller] owns the current plan, the selected files, the chat log
// and the loading indicator. It performs no I/O of its own: callers send
// requests (interactively from the TUI loop, or directly from the generate
// command) and feed the outcome back through the Finish methods. Every
// plan change rebuilds the calendar and the agenda from the same plan, so
// the two views never disagree.
//
// Controllers are not safe for concurrent use. The TUI mutates one only
// from its Update loop.
package planclient
