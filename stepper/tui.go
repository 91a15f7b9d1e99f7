package stepper

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ikle/enigma/code"
)

// TUI is the text user interface wrapping one Session. Grounded on
// debugger.TUI: the same App/Pages/Flex layout shape, traded for panes
// that matter to block stepping (block list, modal state, device trace)
// instead of CPU registers and memory.
type TUI struct {
	Session *Session

	App   *tview.Application
	Pages *tview.Pages

	MainLayout *tview.Flex

	BlockView   *tview.TextView
	StateView   *tview.TextView
	TraceView   *tview.TextView
	OutputView  *tview.TextView
	CommandLine *tview.InputField
}

// NewTUI builds a TUI over an existing Session.
func NewTUI(session *Session) *TUI {
	t := &TUI{
		Session: session,
		App:     tview.NewApplication(),
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.BlockView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.BlockView.SetBorder(true).SetTitle(" Blocks ")

	t.StateView = tview.NewTextView().SetDynamicColors(true)
	t.StateView.SetBorder(true).SetTitle(" Modal state ")

	t.TraceView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.TraceView.SetBorder(true).SetTitle(" Device trace ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandLine = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	t.CommandLine.SetBorder(true).SetTitle(" Command ")
	t.CommandLine.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.BlockView, 0, 2, false).
		AddItem(t.StateView, 10, 0, false)

	right := t.TraceView

	content := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(left, 0, 1, false).
		AddItem(right, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(content, 0, 4, false).
		AddItem(t.OutputView, 6, 0, false).
		AddItem(t.CommandLine, 3, 0, true)

	t.Pages = tview.NewPages().AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF10, tcell.KeyF11:
			t.execute("step")
			return nil
		case tcell.KeyF5:
			t.execute("run")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.CommandLine.GetText()
	if cmd != "" {
		t.execute(cmd)
		t.CommandLine.SetText("")
	}
}

// execute runs one stepper command: step, run, reset, break <n>, or
// clear <n>. Unrecognized commands are reported in the output pane
// rather than treated as fatal.
func (t *TUI) execute(cmd string) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return
	}

	switch strings.ToLower(fields[0]) {
	case "step", "s":
		if fatal := t.Session.Step(); fatal != nil {
			t.writeOutput(fmt.Sprintf("[red]%s[white]\n", fatal.Error()))
		}

	case "run", "r", "continue", "c":
		if fatal := t.Session.Run(); fatal != nil {
			t.writeOutput(fmt.Sprintf("[red]%s[white]\n", fatal.Error()))
		}

	case "reset":
		t.Session.Reset()
		t.writeOutput("session reset\n")

	case "break", "b":
		if len(fields) < 2 {
			t.writeOutput("usage: break <index>\n")
			break
		}
		var idx int
		if _, err := fmt.Sscanf(fields[1], "%d", &idx); err != nil {
			t.writeOutput(fmt.Sprintf("invalid index: %s\n", fields[1]))
			break
		}
		t.Session.Breakpoints.Add(idx)

	case "clear":
		if len(fields) < 2 {
			t.writeOutput("usage: clear <index>\n")
			break
		}
		var idx int
		if _, err := fmt.Sscanf(fields[1], "%d", &idx); err != nil {
			t.writeOutput(fmt.Sprintf("invalid index: %s\n", fields[1]))
			break
		}
		if err := t.Session.Breakpoints.Remove(idx); err != nil {
			t.writeOutput(err.Error() + "\n")
		}

	default:
		t.writeOutput(fmt.Sprintf("unknown command: %s\n", fields[0]))
	}

	t.RefreshAll()
}

func (t *TUI) writeOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text))
	t.OutputView.ScrollToEnd()
}

// RefreshAll redraws every pane from the current Session state.
func (t *TUI) RefreshAll() {
	t.updateBlockView()
	t.updateStateView()
	t.updateTraceView()
	t.App.Draw()
}

func (t *TUI) updateBlockView() {
	t.BlockView.Clear()

	var lines []string
	for i, b := range t.Session.Blocks {
		marker := "  "
		if i == t.Session.Index {
			marker = "->"
		}
		if t.Session.Breakpoints.At(i) {
			marker = "* "
		}
		lines = append(lines, fmt.Sprintf("%s %3d: line %d", marker, i, b.Pos.Line))
	}

	t.BlockView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateStateView() {
	t.StateView.Clear()

	s := t.Session.State
	lines := []string{
		fmt.Sprintf("motion:   %v", s.Active[code.Group1]),
		fmt.Sprintf("plane:    %v", s.Active[code.Group2]),
		fmt.Sprintf("distance: %v", s.Active[code.Group3]),
		fmt.Sprintf("feedmode: %v", s.Active[code.Group5]),
		fmt.Sprintf("units:    %v", s.Active[code.Group6]),
		fmt.Sprintf("cutter:   %v", s.Active[code.Group7]),
		fmt.Sprintf("coordsys: %v", s.Active[code.Group12]),
		fmt.Sprintf("axis:     %v", s.Axis),
	}
	t.StateView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateTraceView() {
	t.TraceView.Clear()
	t.TraceView.SetText(strings.Join(t.Session.TraceLines(), "\n"))
}

// Run starts the TUI event loop.
func (t *TUI) Run() error {
	t.RefreshAll()
	t.writeOutput("[green]enigma block stepper[white]\n")
	t.writeOutput("F11/step, F5/run, Ctrl+L refresh, Ctrl+C quit\n\n")

	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandLine).Run()
}

// Stop stops the TUI event loop.
func (t *TUI) Stop() {
	t.App.Stop()
}
