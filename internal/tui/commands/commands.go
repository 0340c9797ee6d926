// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/swipecal/internal/widget"
)

// FrameInterval is the delay between animation frames (about 60fps).
const FrameInterval = 16 * time.Millisecond

// AnimationFrameMsg advances the animation identified by Token.
type AnimationFrameMsg struct {
	Token widget.Token
	Time  time.Time
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Frame schedules the next frame of the animation identified by token.
func Frame(token widget.Token) tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return AnimationFrameMsg{Token: token, Time: t}
	})
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard copies text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied " + text}
	}
}
