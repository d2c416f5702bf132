// Package cli provides the interactive jobtracker command-line client.
//
// It wires configuration, the REST client, the explorer state manager and
// the document, chat, report and upload services into a line-oriented
// REPL. The prompt shows the breadcrumb path of the current location.
//
// Key features:
//   - Browse applications and folders (apps, open, cd, ls, tree, crumb)
//   - Create, rename, move, delete and index items
//   - Multi-select with bulk delete and bulk index
//   - View document text, chat with the assistant, generate reports
//   - Upload files and whole directories
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
