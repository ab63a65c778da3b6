package controller

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func manyRowInfos(count int) []SceneInfo {
	info := SceneInfo{Path: "shot.yaml"}
	for i := range count {
		info.Curves = append(info.Curves, CurveInfo{
			Name: fmt.Sprintf("curve_%02d", i), Keys: 3, Selected: 2, First: 1, Last: 30,
		})
	}

	return []SceneInfo{info}
}

func TestTUI_DisplayScenes_PrintsWithoutPaging(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	if err := ui.DisplayScenes(manyRowInfos(3)); err != nil {
		t.Fatalf("DisplayScenes() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"Scalist - Keyframe Scaling", "curve_00", "curve_02", "1..30"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayScenes_Empty(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	if err := ui.DisplayScenes(nil); err != nil {
		t.Fatalf("DisplayScenes() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No curves found") {
		t.Fatalf("output missing empty message:\n%s", buf.String())
	}
}

func TestTUI_DisplayResults_SkipsRejected(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	if err := ui.DisplayResults([]ScaleResult{{Path: "shot.yaml", Rejected: true}}); err != nil {
		t.Fatalf("DisplayResults() error = %v", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("expected no output for rejected result, got:\n%s", buf.String())
	}
}

func TestTUI_DisplayCommits_PrintsMoves(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	if err := ui.DisplayCommits([]ScaleResult{sampleResult()}); err != nil {
		t.Fatalf("DisplayCommits() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"shot.yaml", "middle-value", "frame 10 -> 4", "frame 20 -> 6"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayWarning(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	ui.DisplayWarning("select at least 2 keyframes")

	if !strings.Contains(buf.String(), "select at least 2 keyframes") {
		t.Fatalf("output missing warning:\n%s", buf.String())
	}
}

func TestSceneListModel_Paging(t *testing.T) {
	model := newSceneListModel(manyRowInfos(30))
	model.height = 20 // 10 rows per page

	if !model.needsPagination() {
		t.Fatal("expected pagination for 30 rows on a 20 line screen")
	}

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = updated.(sceneListModel)

	if model.offset != 1 {
		t.Errorf("offset after j = %d, want 1", model.offset)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	model = updated.(sceneListModel)

	if model.offset != model.maxOffset() {
		t.Errorf("offset after G = %d, want %d", model.offset, model.maxOffset())
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	model = updated.(sceneListModel)

	if model.offset != 0 {
		t.Errorf("offset after g = %d, want 0", model.offset)
	}

	// Up from the top stays clamped.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	model = updated.(sceneListModel)

	if model.offset != 0 {
		t.Errorf("offset after k at top = %d, want 0", model.offset)
	}
}

func TestSceneListModel_Quit(t *testing.T) {
	model := newSceneListModel(manyRowInfos(3))

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if !updated.(sceneListModel).quitting {
		t.Error("q should set quitting")
	}

	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
}

func TestSceneListModel_WindowSize(t *testing.T) {
	model := newSceneListModel(manyRowInfos(3))

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model = updated.(sceneListModel)

	if model.width != 80 || model.height != 24 {
		t.Errorf("window size = %dx%d, want 80x24", model.width, model.height)
	}
}
