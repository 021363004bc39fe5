// Package ui contains the Bubble Tea program that renders the LearnAZ site.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, input, rendering and the detail modal.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so it is handled by a focused
//     function (key presses, mouse clicks, image probe results, timers,
//     catalog reloads). Anything unrouted goes to the focused bubbles input.
//   - Key presses are dispatched by focus: the modal captures every key while
//     open, then the search input, the tag prompt, the prompt composer and the
//     newsletter field, and finally the global and per-section bindings.
//
// State ownership:
//   - Filtering lives in internal/feed: the Adapter owns the FilterState and
//     runs a filter+render cycle on every query or tag change, and the Modal
//     owns the detail view lifecycle and image fallback policy.
//   - The rendered card list with its cursor and viewport lives in
//     internal/ui/state.List; the search buffer is an internal/ui/state.Input.
//   - The catalog snapshot is an internal/state.CatalogStore kept current by
//     the dispatcher when a backend.Watcher reports a reload.
//
// Asynchronous work (image probes, clipboard, saving prompts) runs through the
// internal/ui/command bus. Timed work (toast expiry, the subscribe delay and
// counter frames) goes through the model's scheduler. Every result carries a
// sequence number so late results are discarded.
package ui
