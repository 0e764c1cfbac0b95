package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextEditor is a minimal multiline editor used for the lyrics edit buffer
type TextEditor struct {
	Lines  []string
	Row    int
	Col    int
	Width  int
	Height int
	Offset int

	Style       lipgloss.Style
	CursorStyle lipgloss.Style
	HintStyle   lipgloss.Style
}

// NewTextEditor creates an empty editor
func NewTextEditor(width, height int) TextEditor {
	return TextEditor{
		Lines:  []string{""},
		Width:  width,
		Height: height,
		Style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 1),
		CursorStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("212")),
		HintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetValue loads the buffer content and puts the cursor at the end
func (e *TextEditor) SetValue(value string) {
	e.Lines = strings.Split(value, "\n")
	if len(e.Lines) == 0 {
		e.Lines = []string{""}
	}
	e.Row = len(e.Lines) - 1
	e.Col = len(e.Lines[e.Row])
	e.ensureVisible()
}

// Value returns the buffer content
func (e *TextEditor) Value() string {
	return strings.Join(e.Lines, "\n")
}

// Clear resets the buffer
func (e *TextEditor) Clear() {
	e.Lines = []string{""}
	e.Row = 0
	e.Col = 0
	e.Offset = 0
}

// Update handles key messages
func (e TextEditor) Update(msg tea.Msg) (TextEditor, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			text := string(msg.Runes)
			if msg.Type == tea.KeySpace {
				text = " "
			}
			line := e.Lines[e.Row]
			e.Lines[e.Row] = line[:e.Col] + text + line[e.Col:]
			e.Col += len(text)

		case tea.KeyEnter:
			line := e.Lines[e.Row]
			before, after := line[:e.Col], line[e.Col:]
			e.Lines[e.Row] = before
			rest := append([]string{after}, e.Lines[e.Row+1:]...)
			e.Lines = append(e.Lines[:e.Row+1], rest...)
			e.Row++
			e.Col = 0

		case tea.KeyBackspace:
			if e.Col > 0 {
				line := e.Lines[e.Row]
				e.Lines[e.Row] = line[:e.Col-1] + line[e.Col:]
				e.Col--
			} else if e.Row > 0 {
				// Join with the previous line
				prev := e.Lines[e.Row-1]
				e.Col = len(prev)
				e.Lines[e.Row-1] = prev + e.Lines[e.Row]
				e.Lines = append(e.Lines[:e.Row], e.Lines[e.Row+1:]...)
				e.Row--
			}

		case tea.KeyDelete:
			line := e.Lines[e.Row]
			if e.Col < len(line) {
				e.Lines[e.Row] = line[:e.Col] + line[e.Col+1:]
			} else if e.Row < len(e.Lines)-1 {
				e.Lines[e.Row] = line + e.Lines[e.Row+1]
				e.Lines = append(e.Lines[:e.Row+1], e.Lines[e.Row+2:]...)
			}

		case tea.KeyUp:
			if e.Row > 0 {
				e.Row--
				e.clampCol()
			}
		case tea.KeyDown:
			if e.Row < len(e.Lines)-1 {
				e.Row++
				e.clampCol()
			}
		case tea.KeyLeft:
			if e.Col > 0 {
				e.Col--
			} else if e.Row > 0 {
				e.Row--
				e.Col = len(e.Lines[e.Row])
			}
		case tea.KeyRight:
			if e.Col < len(e.Lines[e.Row]) {
				e.Col++
			} else if e.Row < len(e.Lines)-1 {
				e.Row++
				e.Col = 0
			}
		case tea.KeyHome:
			e.Col = 0
		case tea.KeyEnd:
			e.Col = len(e.Lines[e.Row])
		}
		e.ensureVisible()
	}
	return e, nil
}

func (e *TextEditor) clampCol() {
	if e.Col > len(e.Lines[e.Row]) {
		e.Col = len(e.Lines[e.Row])
	}
}

func (e *TextEditor) visibleHeight() int {
	h := e.Height - 4 // border, padding, hint line
	if h < 1 {
		return 1
	}
	return h
}

func (e *TextEditor) ensureVisible() {
	visible := e.visibleHeight()
	if e.Row < e.Offset {
		e.Offset = e.Row
	} else if e.Row >= e.Offset+visible {
		e.Offset = e.Row - visible + 1
	}
}

// View renders the editor with a block cursor
func (e TextEditor) View() string {
	var sb strings.Builder

	visible := e.visibleHeight()
	end := e.Offset + visible
	if end > len(e.Lines) {
		end = len(e.Lines)
	}

	for i := e.Offset; i < end; i++ {
		line := e.Lines[i]
		if i == e.Row {
			before := line[:e.Col]
			after := ""
			cursor := e.CursorStyle.Render(" ")
			if e.Col < len(line) {
				cursor = e.CursorStyle.Render(string(line[e.Col]))
				after = line[e.Col+1:]
			}
			sb.WriteString(before + cursor + after)
		} else {
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(e.HintStyle.Render("time|text per line, e.g. 1:23.00|Hello"))

	return e.Style.Width(e.Width - 4).Render(sb.String())
}
