// Package transport carries outbound messages from the element tree to a
// connected session.
//
// The element tree never talks to a socket directly. Mutations hand their
// payloads to an Outbox, a bounded queue drained by a single background
// goroutine into a Sink (in production, a WebSocket session). Submission
// is non-blocking: when the queue is full the message is dropped and
// counted, and delivery failures are logged, never returned to the
// mutating caller.
package transport
