package controller

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/scalist/internal/model"
)

// ApplyFunc runs one scaling operation and reports its outcome. The panel
// never touches the scene itself.
type ApplyFunc func(req m.ScaleRequest) (ScaleResult, error)

// PanelOptions configures the interactive scale panel.
type PanelOptions struct {
	ScenePath m.Path
	Presets   []float64
	// SliderMin/SliderMax are the displayed amount range, a hint next to the
	// input. FieldMin/FieldMax are the hard bounds enforced on apply.
	SliderMin float64
	SliderMax float64
	FieldMin  float64
	FieldMax  float64
	Apply     ApplyFunc
}

// ScalePanel owns the Bubble Tea program for the interactive panel.
type ScalePanel struct {
	output io.Writer
	opts   PanelOptions
}

// NewScalePanel creates the interactive panel.
func NewScalePanel(output io.Writer, opts PanelOptions) *ScalePanel {
	return &ScalePanel{output: output, opts: opts}
}

// Run blocks until the user quits the panel.
func (p *ScalePanel) Run() error {
	program := tea.NewProgram(newPanelModel(p.opts), tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// strategyItem is one pivot strategy row in the panel's list.
type strategyItem struct {
	strategy m.PivotStrategy
}

func (i strategyItem) FilterValue() string { return i.strategy.String() }

// strategyDelegate renders strategy rows with their axis tag.
type strategyDelegate struct{}

func (d strategyDelegate) Height() int  { return 1 }
func (d strategyDelegate) Spacing() int { return 0 }
func (d strategyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d strategyDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	it, ok := item.(strategyItem)
	if !ok {
		return
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	axisStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(6)

	if index == lm.Index() {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	_, _ = fmt.Fprintf(w, "%s %s",
		axisStyle.Render(it.strategy.Axis().String()),
		nameStyle.Render(it.strategy.String()))
}

// panelModel is the Bubble Tea model for the scale panel.
type panelModel struct {
	opts       PanelOptions
	strategies list.Model
	amount     textinput.Model
	grouping   m.Grouping
	preset     int
	status     string
	warning    bool
	width      int
	height     int
}

func newPanelModel(opts PanelOptions) panelModel {
	items := make([]list.Item, 0, len(m.PivotStrategies()))
	for _, strategy := range m.PivotStrategies() {
		items = append(items, strategyItem{strategy: strategy})
	}

	strategies := list.New(items, strategyDelegate{}, 40, len(items))
	strategies.SetShowPagination(false)
	strategies.SetShowFilter(false)
	strategies.SetShowHelp(false)
	strategies.SetShowTitle(false)
	strategies.SetShowStatusBar(false)

	amount := textinput.New()
	amount.Placeholder = "1.00"
	amount.SetValue("1.0")
	amount.CharLimit = 8
	amount.Width = 8

	return panelModel{
		opts:       opts,
		strategies: strategies,
		amount:     amount,
		grouping:   m.GroupUnified,
		preset:     -1,
	}
}

func (pm panelModel) Init() tea.Cmd {
	return nil
}

func (pm panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm panelModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if !pm.amount.Focused() || msg.String() == "ctrl+c" {
			return pm, tea.Quit
		}

	case "tab":
		if pm.amount.Focused() {
			pm.amount.Blur()
		} else {
			return pm, pm.amount.Focus()
		}

		return pm, nil

	case "m":
		if !pm.amount.Focused() {
			pm.grouping = toggleGrouping(pm.grouping)
			return pm, nil
		}

	case "[", "]":
		if len(pm.opts.Presets) > 0 && !pm.amount.Focused() {
			pm.preset = cyclePreset(pm.preset, len(pm.opts.Presets), msg.String() == "]")
			pm.amount.SetValue(strconv.FormatFloat(pm.opts.Presets[pm.preset], 'g', -1, 64))

			return pm, nil
		}

	case "enter":
		return pm.apply(), nil
	}

	if pm.amount.Focused() {
		var cmd tea.Cmd
		pm.amount, cmd = pm.amount.Update(msg)

		return pm, cmd
	}

	var cmd tea.Cmd
	pm.strategies, cmd = pm.strategies.Update(msg)

	return pm, cmd
}

func (pm panelModel) apply() panelModel {
	factor, err := strconv.ParseFloat(pm.amount.Value(), 64)
	if err != nil {
		pm.status = fmt.Sprintf("bad amount %q", pm.amount.Value())
		pm.warning = true

		return pm
	}

	if factor < pm.opts.FieldMin || factor > pm.opts.FieldMax {
		pm.status = fmt.Sprintf("amount must be within %g..%g", pm.opts.FieldMin, pm.opts.FieldMax)
		pm.warning = true

		return pm
	}

	item, ok := pm.strategies.SelectedItem().(strategyItem)
	if !ok {
		pm.status = "no pivot selected"
		pm.warning = true

		return pm
	}

	res, err := pm.opts.Apply(m.ScaleRequest{
		Strategy: item.strategy,
		Factor:   factor,
		Grouping: pm.grouping,
	})
	if err != nil {
		pm.status = fmt.Sprintf("error: %v", err)
		pm.warning = true

		return pm
	}

	if res.Rejected {
		pm.status = "select at least 2 keyframes"
		pm.warning = true

		return pm
	}

	pm.status = fmt.Sprintf("scaled %d key(s) on %d curve(s) in %s by %g",
		len(res.Commits.Moves), res.Curves, res.Request.Axis(), res.Request.Factor)
	pm.warning = false

	return pm
}

func toggleGrouping(g m.Grouping) m.Grouping {
	if g == m.GroupUnified {
		return m.GroupPerCurve
	}

	return m.GroupUnified
}

func cyclePreset(current, count int, forward bool) int {
	if forward {
		return (current + 1 + count) % count
	}

	if current < 0 {
		return count - 1
	}

	return (current - 1 + count) % count
}

func (pm panelModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Scalist - " + string(pm.opts.ScenePath))

	amount := fmt.Sprintf("%s %s %s   %s %s",
		labelStyle.Render("Amount:"),
		pm.amount.View(),
		labelStyle.Render(fmt.Sprintf("(%g..%g)", pm.opts.SliderMin, pm.opts.SliderMax)),
		labelStyle.Render("Grouping:"),
		accentStyle.Render(pm.grouping.String()),
	)

	listContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	status := ""
	if pm.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		if pm.warning {
			statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		}

		status = statusStyle.Render("  " + pm.status)
	}

	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	footer := footerStyle.Render(
		"  ↑/↓ pivot • tab amount • [/] presets • m grouping • enter apply • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"  "+amount,
		listContainer.Render(pm.strategies.View()),
		status,
		footer,
	)
}
