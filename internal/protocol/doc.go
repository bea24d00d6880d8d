// Package protocol decodes the board's websocket wire format.
//
// Every frame is a JSON envelope discriminated by a "type" field. The stream
// carries several envelope kinds; only "state" frames concern this client,
// and Decode reports everything else as not applicable rather than as an
// error.
//
// Decoding is total and synchronous: it never blocks, never retries, and
// its only side effect is returning a decode error for the offending frame.
package protocol
