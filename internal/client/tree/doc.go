// Package tree holds the client-side view model of an application's folder
// hierarchy and the Builder that assembles it from the remote store.
//
// A forest is rebuilt from scratch after every mutation; nodes are never
// patched in place. Expansion toggles produce a new forest that shares
// untouched subtrees with the old one.
package tree
