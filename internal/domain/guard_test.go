package domain

import (
	"testing"

	m "github.com/mouse-blink/scalist/internal/model"
	"github.com/stretchr/testify/assert"
)

func selectionOfSize(n int) m.Selection {
	samples := make([]m.Sample, 0, n)
	for i := range n {
		samples = append(samples, m.Sample{Time: float64(i + 1), Value: float64(i)})
	}

	return m.Selection{Curves: []m.CurveSelection{{Curve: "ball_ty", Samples: samples}}}
}

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		strategy m.PivotStrategy
		wantErr  bool
	}{
		{"two keys middle value", 2, m.PivotMiddleValue, false},
		{"many keys last time", 5, m.PivotLastTime, false},
		{"single key middle value rejected", 1, m.PivotMiddleValue, true},
		{"single key highest value rejected", 1, m.PivotHighestValue, true},
		{"single key last time rejected", 1, m.PivotLastTime, true},
		{"single key zero value accepted", 1, m.PivotZeroValue, false},
		{"single key current time accepted", 1, m.PivotCurrentTime, false},
		{"single key flip zero accepted", 1, m.PivotFlipZeroValue, false},
		{"single key flip mid rejected", 1, m.PivotFlipCurveValue, true},
		{"empty selection zero value rejected", 0, m.PivotZeroValue, true},
		{"empty selection middle value rejected", 0, m.PivotMiddleValue, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSelection(selectionOfSize(tt.size), tt.strategy)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInsufficientSelection)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSelectionCountsAcrossCurves(t *testing.T) {
	sel := m.Selection{Curves: []m.CurveSelection{
		{Curve: "ball_ty", Samples: []m.Sample{{Time: 1, Value: 0}}},
		{Curve: "ball_tx", Samples: []m.Sample{{Time: 4, Value: 2}}},
	}}

	assert.NoError(t, ValidateSelection(sel, m.PivotMiddleValue))
}
