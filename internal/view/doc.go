// Package view keeps the two projections of the note collection shown by the
// client: the main card list (drafts and saved notes) and the compact search
// grid of saved notes.
//
// A [Board] never owns note data. Every mutation goes through the injected
// [NoteStore] first and the projections are re-synchronized from it
// afterwards. Board is not safe for concurrent use; the terminal UI drives it
// from its single update loop.
package view
