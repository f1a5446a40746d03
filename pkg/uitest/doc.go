// Package uitest provides testing helpers for element trees.
//
// The harness wraps a ui.Client with a recording dispatcher so tests can
// assert on the update batches an interaction produces, without a server
// or WebSocket connection.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := uitest.NewHarness()
//	    label := Counter(h.Client)
//
//	    h.Fire(t, label, "click", nil)
//
//	    uitest.ExpectText(t, h, label, "count: 1")
//	}
package uitest
