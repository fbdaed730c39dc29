// Package cli provides the terminal user interface for earthinspires.
//
// The package uses [Bubbletea] for the interactive UI and [Lipgloss] for
// styling. All components follow the standard Bubbletea Model-View-Update
// (MVU) architecture and read their state from a *core.App; they never
// keep their own copy of the snapshot list or theme.
//
// # Components
//
//   - Earth: the main screen with the globe, the capture and gallery
//     controls and the theme toggle
//   - Gallery: an overlay listing captured snapshots with delete
//   - Note prompt: a one-line input for capturing with a note
//
// # Styling
//
// Each theme has a palette of Lipgloss styles. The palette is shared by
// pointer and swapped in place when the theme changes, so every copy of the
// model renders with the new colors.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
