// Package domain holds the entities of the board protocol.
//
// The board reports its state over a websocket stream as JSON envelopes.
// This package models the decoded form of those envelopes: segments, throws,
// status and event enumerations, and the per-frame Message. All enumerations
// are closed sets; mapping an unknown wire string is a decode error, never a
// fallback value.
//
// It also defines the sentinel errors shared across the module, checkable
// with errors.Is.
package domain
