// Package view renders the parts of the box viewer screen.
//
// Each component takes a small state struct and returns a string; none of
// them hold state between frames. Components that respond to the mouse
// also return a layout the model uses for hit testing.
//
//   - [RenderHeader]: ◀ Box N ▶ with disabled arrows at either end
//   - [GridView]: the entries of the box, with the cursor highlighted
//   - [RenderDetail]: the detail panel for the selected entry
//   - [RenderControls]: PREV / RETURN / ROAR / NEXT buttons
//   - [RenderHelpBar] and [RenderStatus]: the bottom lines
package view
