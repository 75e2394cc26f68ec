// Package ui implements the portfolio's terminal interface: a timed intro
// sequence that settles into an idle loop, and an interactive menu with a
// scrollable content panel. The model is driven entirely by key messages
// and a periodic tick that doubles as the animation clock.
package ui
