// Package tui is the terminal front end of Note Pilot.
//
// A single bubbletea model drives a [view.Board]: topics typed into the
// input start asynchronous suggestion fetches, finished suggestions appear
// as drafts, and accepted notes can be edited, searched, copied and deleted.
package tui
