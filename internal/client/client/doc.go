// Package client is the remote store client of jobtracker.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract for the backend (see the Client
//     interface): applications, folders, documents, chat and reports.
//  2. A concrete REST/JSON implementation (see HTTPClient) that shapes
//     requests, tags each with an X-Request-ID, and maps failures to
//     sentinel errors.
//
// # Error Handling
//
// Transport failures wrap common.ErrUnavailable. Non-2xx responses are
// returned as *APIError, which unwraps to common.ErrorNotFound (404),
// common.ErrorInternal (5xx) or common.ErrorValidation (other 4xx). Inputs
// rejected before sending wrap common.ErrorValidation. Nothing is retried.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every call accepts a
// context.Context and honors cancellation.
package client
