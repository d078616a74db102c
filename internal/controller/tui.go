package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// reservedLines is the space taken by the title and footer around the
// viewport.
const reservedLines = 4

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea to page long entry tables. Short
// tables, diffs and diagnostics go through the plain fallback.
type TUI struct {
	output   io.Writer
	fallback *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, fallback *SimpleUI) *TUI {
	return &TUI{output: output, fallback: fallback}
}

// DisplayResolution pages the entry table when it does not fit the terminal.
func (t *TUI) DisplayResolution(ctx context.Context, resolution m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !resolution.Verbose || resolution.Empty() {
		return t.fallback.DisplayResolution(ctx, resolution)
	}

	title := "Entries for " + m.ExtensionList(resolution.Extensions)
	model := newEntryPagerModel(title, RenderEntryTable(resolution.Entries))

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	// If the table fits, just print and exit
	if !model.needsPagination() {
		return t.fallback.DisplayResolution(ctx, resolution)
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	t.fallback.DisplayDiagnostics(resolution.Diagnostics)

	return nil
}

// DisplayDiff prints diffs without paging so watch output keeps scrolling.
func (t *TUI) DisplayDiff(ctx context.Context, diff string) error {
	return t.fallback.DisplayDiff(ctx, diff)
}

// entryPagerModel is the Bubble Tea model scrolling a rendered entry table.
type entryPagerModel struct {
	title    string
	content  string
	lines    int
	height   int
	viewport viewport.Model
}

func newEntryPagerModel(title, content string) entryPagerModel {
	model := entryPagerModel{
		title:   title,
		content: content,
		lines:   strings.Count(content, "\n") + 1,
	}

	return model.resize(80, 24)
}

func (epm entryPagerModel) resize(width, height int) entryPagerModel {
	epm.height = height

	available := height - reservedLines
	if available < 1 {
		available = 1
	}

	epm.viewport = viewport.New(width, available)
	epm.viewport.SetContent(epm.content)

	return epm
}

func (epm entryPagerModel) needsPagination() bool {
	return epm.lines > epm.height-reservedLines
}

func (epm entryPagerModel) Init() tea.Cmd {
	return nil
}

func (epm entryPagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		offset := epm.viewport.YOffset
		epm = epm.resize(msg.Width, msg.Height)
		epm.viewport.SetYOffset(offset)

		return epm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return epm, tea.Quit
		}
	}

	var cmd tea.Cmd

	epm.viewport, cmd = epm.viewport.Update(msg)

	return epm, cmd
}

func (epm entryPagerModel) View() string {
	footer := fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", epm.viewport.ScrollPercent()*100)

	return titleStyle.Render(epm.title) + "\n\n" + epm.viewport.View() + "\n" + footerStyle.Render(footer)
}
