// Package ui implements the server-side element tree for Luma.
//
// Every widget on a connected page is an Element: a node with a tag,
// CSS classes, inline styles, component props, event listeners, text
// content, and named Slots holding ordered children. Elements are created
// and mutated on the server; each observable mutation serializes the
// element's owned subtree and pushes it to the browser through the
// client's Dispatcher.
//
// # Construction
//
// A Client owns all elements of one connected session. Elements attach to
// the currently active slot, which is managed as an explicit stack on the
// Client:
//
//	card := client.NewElement("q-card")
//	card.With(func() {
//	    client.NewElement("q-btn").Classes("primary", "", "")
//	})
//
// The scope-based nesting is sugar: Slot.NewElement attaches a child to an
// explicit slot regardless of the stack.
//
// # Mutation
//
// Classes, Style, Props, SetText and OnVisibilityChange merge their
// arguments into the element's state and trigger an update only when the
// observable state actually changed. Style and Props accept the compact
// string mini-languages parsed by package attrs.
//
// # Update propagation
//
// Update collects the mutated element's owned subtree (never siblings or
// ancestors), serializes every reachable element, and emits a single
// "update" message addressed to the client's session id. Dispatch is
// fire-and-forget; a client with no dispatcher (offline construction,
// tests) skips dispatch entirely.
package ui
