// Package ui contains the Bubble Tea program that simulates a small pixel
// display in the terminal.
//
// Frame loop:
//   - A tickMsg arrives every Options.Tick. The model reads the input source
//     (the key latch merged with any extra device source) and hands the
//     snapshot to the dispatcher, which runs one menu Update and one Draw into
//     the framebuffer.
//   - Terminals report key presses but not releases, so the latch holds a
//     press for exactly one frame and is reset after every tick. A held key
//     yields a new edge whenever an auto-repeat lands after an idle frame.
//   - The half-block screen string is rebuilt only on frames where the menu
//     actually redrew.
//
// Selections are handed to the command bus (internal/ui/command), whose
// handlers return ResultMsg values shown in the status area. Harness drives
// the same model without a terminal or timer for tests.
package ui
