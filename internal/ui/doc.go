// Package ui is the terminal front end of the navigation demo, built on
// Bubble Tea.
//
// Core pieces:
//   - Model: the tea.Model that owns a nav.Controller and its frame queue
//   - Page / Screen: the demo's views and their mounted instances
//   - Compose: draws the two render slots onto one canvas, honoring their
//     offsets and stacking order
//   - KeybindRegistry / KeyHandler: single keys plus SPC-prefixed commands
package ui
