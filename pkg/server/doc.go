// Package server hosts element trees over HTTP and WebSocket.
//
// Each WebSocket connection becomes a Session: the server builds a fresh
// element tree for it, streams update batches out through a bounded
// outbox, and routes inbound DOM events back to the tree's listeners.
// All tree mutation for one session happens on that session's read
// goroutine, which matches the single-goroutine contract of ui.Client.
package server
