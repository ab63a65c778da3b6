package controller

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/scalist/internal/model"
)

func testPanelOptions(apply ApplyFunc) PanelOptions {
	return PanelOptions{
		ScenePath: "shot.yaml",
		Presets:   []float64{0.5, 1.0, 2.0},
		SliderMin: -2,
		SliderMax: 5,
		FieldMin:  -10,
		FieldMax:  10,
		Apply:     apply,
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, model panelModel, msg tea.Msg) panelModel {
	t.Helper()

	updated, _ := model.Update(msg)

	pm, ok := updated.(panelModel)
	if !ok {
		t.Fatalf("Update() returned %T, want panelModel", updated)
	}

	return pm
}

func TestPanelModel_DefaultsToUnifiedMiddleValue(t *testing.T) {
	model := newPanelModel(testPanelOptions(nil))

	if model.grouping != m.GroupUnified {
		t.Errorf("grouping = %v, want unified", model.grouping)
	}

	item, ok := model.strategies.SelectedItem().(strategyItem)
	if !ok {
		t.Fatal("no strategy selected")
	}

	if item.strategy != m.PivotMiddleValue {
		t.Errorf("default strategy = %v, want middle-value", item.strategy)
	}

	if model.amount.Value() != "1.0" {
		t.Errorf("default amount = %q, want 1.0", model.amount.Value())
	}
}

func TestPanelModel_GroupingToggle(t *testing.T) {
	model := newPanelModel(testPanelOptions(nil))

	model = update(t, model, keyMsg("m"))
	if model.grouping != m.GroupPerCurve {
		t.Errorf("grouping after m = %v, want per-curve", model.grouping)
	}

	model = update(t, model, keyMsg("m"))
	if model.grouping != m.GroupUnified {
		t.Errorf("grouping after second m = %v, want unified", model.grouping)
	}
}

func TestPanelModel_PresetCycling(t *testing.T) {
	model := newPanelModel(testPanelOptions(nil))

	model = update(t, model, keyMsg("]"))
	if model.amount.Value() != "0.5" {
		t.Errorf("amount after ] = %q, want 0.5", model.amount.Value())
	}

	model = update(t, model, keyMsg("]"))
	if model.amount.Value() != "1" {
		t.Errorf("amount after ]] = %q, want 1", model.amount.Value())
	}

	model = update(t, model, keyMsg("["))
	if model.amount.Value() != "0.5" {
		t.Errorf("amount after ]][ = %q, want 0.5", model.amount.Value())
	}
}

func TestPanelModel_PresetCyclingWrapsBackward(t *testing.T) {
	model := newPanelModel(testPanelOptions(nil))

	model = update(t, model, keyMsg("["))
	if model.amount.Value() != "2" {
		t.Errorf("amount after [ = %q, want 2", model.amount.Value())
	}
}

func TestPanelModel_ApplyCallsFunc(t *testing.T) {
	var got m.ScaleRequest

	apply := func(req m.ScaleRequest) (ScaleResult, error) {
		got = req

		return ScaleResult{
			Request: req,
			Commits: m.CommitSet{Moves: []m.Move{{}, {}}},
			Curves:  1,
		}, nil
	}

	model := newPanelModel(testPanelOptions(apply))
	model = update(t, model, keyMsg("m"))
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if got.Strategy != m.PivotMiddleValue {
		t.Errorf("applied strategy = %v, want middle-value", got.Strategy)
	}

	if got.Factor != 1.0 {
		t.Errorf("applied factor = %v, want 1.0", got.Factor)
	}

	if got.Grouping != m.GroupPerCurve {
		t.Errorf("applied grouping = %v, want per-curve", got.Grouping)
	}

	if model.warning {
		t.Errorf("unexpected warning status %q", model.status)
	}

	if !strings.Contains(model.status, "scaled 2 key(s)") {
		t.Errorf("status = %q, want success summary", model.status)
	}
}

func TestPanelModel_ApplyRejectedSelection(t *testing.T) {
	apply := func(req m.ScaleRequest) (ScaleResult, error) {
		return ScaleResult{Request: req, Rejected: true}, nil
	}

	model := newPanelModel(testPanelOptions(apply))
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if !model.warning {
		t.Error("rejected selection should set warning")
	}

	if !strings.Contains(model.status, "select at least 2 keyframes") {
		t.Errorf("status = %q, want selection warning", model.status)
	}
}

func TestPanelModel_ApplyError(t *testing.T) {
	apply := func(m.ScaleRequest) (ScaleResult, error) {
		return ScaleResult{}, errors.New("disk full")
	}

	model := newPanelModel(testPanelOptions(apply))
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if !model.warning {
		t.Error("apply error should set warning")
	}

	if !strings.Contains(model.status, "disk full") {
		t.Errorf("status = %q, want apply error", model.status)
	}
}

func TestPanelModel_ApplyBadAmount(t *testing.T) {
	applied := false
	apply := func(m.ScaleRequest) (ScaleResult, error) {
		applied = true
		return ScaleResult{}, nil
	}

	model := newPanelModel(testPanelOptions(apply))
	model.amount.SetValue("abc")

	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if applied {
		t.Error("bad amount must not reach the apply func")
	}

	if !model.warning || !strings.Contains(model.status, "bad amount") {
		t.Errorf("status = %q, want bad amount warning", model.status)
	}
}

func TestPanelModel_ApplyAmountOutOfBounds(t *testing.T) {
	applied := false
	apply := func(m.ScaleRequest) (ScaleResult, error) {
		applied = true
		return ScaleResult{}, nil
	}

	model := newPanelModel(testPanelOptions(apply))
	model.amount.SetValue("50")

	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if applied {
		t.Error("out of bounds amount must not reach the apply func")
	}

	if !model.warning || !strings.Contains(model.status, "within") {
		t.Errorf("status = %q, want bounds warning", model.status)
	}
}

func TestPanelModel_TabTogglesAmountFocus(t *testing.T) {
	model := newPanelModel(testPanelOptions(nil))

	model = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	if !model.amount.Focused() {
		t.Error("tab should focus the amount field")
	}

	// While focused, m edits the field instead of toggling grouping.
	model = update(t, model, keyMsg("m"))
	if model.grouping != m.GroupUnified {
		t.Error("m while editing must not toggle grouping")
	}

	model = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	if model.amount.Focused() {
		t.Error("tab should blur the amount field")
	}
}

func TestPanelModel_QuitKeys(t *testing.T) {
	isQuit := func(cmd tea.Cmd) bool {
		if cmd == nil {
			return false
		}

		_, ok := cmd().(tea.QuitMsg)

		return ok
	}

	model := newPanelModel(testPanelOptions(nil))

	_, cmd := model.Update(keyMsg("q"))
	if !isQuit(cmd) {
		t.Error("q should quit when the list has focus")
	}

	focused := update(t, model, tea.KeyMsg{Type: tea.KeyTab})

	_, cmd = focused.Update(keyMsg("q"))
	if isQuit(cmd) {
		t.Error("q while editing the amount should not quit")
	}

	_, cmd = focused.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should always quit")
	}
}

func TestPanelModel_ViewShowsSceneAndHints(t *testing.T) {
	model := newPanelModel(testPanelOptions(nil))
	view := model.View()

	for _, want := range []string{"shot.yaml", "Amount:", "(-2..5)", "unified", "enter apply"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q\nview:\n%s", want, view)
		}
	}
}
