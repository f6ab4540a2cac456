// Package msg defines the messages the viewer's Bubble Tea event loop
// receives and the commands that produce them.
//
// Long-running work (box loads, clipboard writes) runs inside a [tea.Cmd]
// off the event loop and reports back with one of these message types.
package msg
