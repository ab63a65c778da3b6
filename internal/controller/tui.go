package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayScenes shows curve summaries in a scrollable pager when the list is
// too long for the screen, otherwise prints once and exits.
func (t *TUI) DisplayScenes(infos []SceneInfo) error {
	model := newSceneListModel(infos)

	if f, ok := t.output.(*os.File); ok {
		if width, height, err := terminalSize(f); err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayCommits prints pending moves grouped per scene.
func (t *TUI) DisplayCommits(results []ScaleResult) error {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	curveStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	for _, res := range results {
		if res.Rejected {
			continue
		}

		header := fmt.Sprintf("%s - %s %s x%g (%s)",
			res.Path, res.Request.Axis(), res.Request.Strategy, res.Request.Factor, res.Request.Grouping)
		_, _ = fmt.Fprintln(t.output, headerStyle.Render(header))

		for _, move := range res.Commits.Moves {
			_, _ = fmt.Fprintf(t.output, "  %s  frame %g -> %g\n",
				curveStyle.Render(move.Curve), move.Time, move.New)
		}
	}

	return nil
}

// DisplayResults prints a styled summary line per scaled scene.
func (t *TUI) DisplayResults(results []ScaleResult) error {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	for _, res := range results {
		if res.Rejected {
			continue
		}

		_, _ = fmt.Fprintf(t.output, "%s: scaled %s key(s) on %s curve(s) in %s by %s (%s pivot, %s)\n",
			res.Path,
			accent.Render(fmt.Sprintf("%d", len(res.Commits.Moves))),
			accent.Render(fmt.Sprintf("%d", res.Curves)),
			res.Request.Axis(),
			accent.Render(fmt.Sprintf("%g", res.Request.Factor)),
			res.Request.Strategy, res.Request.Grouping)
	}

	return nil
}

// DisplayWarning prints a user-facing warning.
func (t *TUI) DisplayWarning(msg string) {
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	_, _ = fmt.Fprintln(t.output, warnStyle.Render("⚠ "+msg))
}

// sceneRow is one rendered line of the scene list.
type sceneRow struct {
	scene    string
	curve    string
	keys     int
	selected int
	first    float64
	last     float64
}

// sceneListModel is the Bubble Tea model paging through curve summaries.
type sceneListModel struct {
	rows     []sceneRow
	height   int
	width    int
	offset   int
	quitting bool
}

func newSceneListModel(infos []SceneInfo) sceneListModel {
	var rows []sceneRow

	for _, info := range infos {
		for _, curve := range info.Curves {
			rows = append(rows, sceneRow{
				scene:    string(info.Path),
				curve:    curve.Name,
				keys:     curve.Keys,
				selected: curve.Selected,
				first:    curve.First,
				last:     curve.Last,
			})
		}
	}

	return sceneListModel{rows: rows}
}

func (sm sceneListModel) Init() tea.Cmd {
	return nil
}

func (sm sceneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm sceneListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		sm.quitting = true
		return sm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		sm.quitting = true
		return sm, tea.Quit

	case "down", "j":
		sm.offset = clampOffset(sm.offset+1, sm.maxOffset())
		return sm, nil

	case "up", "k":
		sm.offset = clampOffset(sm.offset-1, sm.maxOffset())
		return sm, nil

	case "g", "home":
		sm.offset = 0
		return sm, nil

	case "G", "end":
		sm.offset = sm.maxOffset()
		return sm, nil

	case "d", "pgdown":
		sm.offset = clampOffset(sm.offset+sm.itemsPerPage(), sm.maxOffset())
		return sm, nil

	case "u", "pgup":
		sm.offset = clampOffset(sm.offset-sm.itemsPerPage(), sm.maxOffset())
		return sm, nil
	}

	return sm, nil
}

func clampOffset(offset, max int) int {
	if offset < 0 {
		return 0
	}

	if offset > max {
		return max
	}

	return offset
}

// itemsPerPage calculates how many rows fit on screen.
func (sm sceneListModel) itemsPerPage() int {
	if sm.height == 0 {
		return 10 // Default
	}

	// Header box (4), column header (2), footer (3), top margin (1).
	reserved := 10

	available := sm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (sm sceneListModel) maxOffset() int {
	maxOff := len(sm.rows) - sm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (sm sceneListModel) needsPagination() bool {
	return len(sm.rows) > sm.itemsPerPage() && sm.height > 0
}

func (sm sceneListModel) View() string {
	var b strings.Builder

	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                    Scalist - Keyframe Scaling                   ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n\n")

	if len(sm.rows) == 0 {
		b.WriteString("  📭 No curves found\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-20s %-24s %5s %8s  %s\n", "Scene", "Curve", "Keys", "Selected", "Range")

	start := sm.offset

	end := start + sm.itemsPerPage()
	if end > len(sm.rows) {
		end = len(sm.rows)
	}

	rows := sm.rows
	if sm.needsPagination() {
		rows = sm.rows[start:end]
	}

	for _, row := range rows {
		fmt.Fprintf(&b, "  %-20s %-24s %5d %8d  %g..%g\n",
			row.scene, row.curve, row.keys, row.selected, row.first, row.last)
	}

	b.WriteString("\n")

	if sm.needsPagination() {
		perPage := sm.itemsPerPage()
		currentPage := (sm.offset / perPage) + 1
		totalPages := (len(sm.rows) + perPage - 1) / perPage
		fmt.Fprintf(&b, "  Page %d/%d | Showing %d-%d of %d\n",
			currentPage, totalPages, start+1, end, len(sm.rows))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}
