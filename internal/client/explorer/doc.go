// Package explorer keeps the browsing state of the jobtracker client: the
// application list, the folder tree of the selected application, the
// cursor with its contents, breadcrumbs and the multi-select set.
//
// State changes go through Reduce, a pure function of (State, Action).
// Manager performs the remote calls and feeds their results back as
// actions. Every mutation is confirmed by the server and followed by a
// full rebuild; nothing is updated optimistically.
package explorer
