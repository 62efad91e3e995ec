package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/sysgraph/internal/chart"
	"github.com/bamsammich/sysgraph/internal/raster"
	"github.com/bamsammich/sysgraph/internal/ui"
)

// statsWindow is the number of recent samples the title averages over.
const statsWindow = 30

// redrawFlag is the terminal's drawing surface: bubbletea repaints after
// every update, so a redraw request only has to invalidate the cached chart.
type redrawFlag struct {
	pending bool
}

func (f *redrawFlag) QueueDraw() { f.pending = true }

// monitorView is one titled card holding a live chart.
type monitorView struct {
	ui.Monitor

	graph  *chart.GraphArea
	redraw *redrawFlag
	canvas *raster.Canvas
	cached string
}

func newMonitorView(m ui.Monitor, params chart.Params) *monitorView {
	params.Color = m.Color
	flag := &redrawFlag{pending: true}
	return &monitorView{
		Monitor: m,
		graph:   chart.NewGraphArea(params, flag),
		redraw:  flag,
	}
}

// addValue feeds a sample to the chart and the title stats.
func (v *monitorView) addValue(x float64) {
	v.graph.AddValue(x)
	if v.Stats != nil {
		v.Stats.Add(x)
	}
}

// view renders the card at exactly width x height cells.
func (v *monitorView) view(width, height int) string {
	cols := max(width-2, 0)  // left and right border
	rows := max(height-3, 0) // top and bottom border, title

	content := v.header(cols)
	if rows > 0 {
		content += "\n" + v.chartCells(cols, rows)
	}
	return styleCard.Width(cols).Render(content)
}

func (v *monitorView) header(cols int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(hexColor(v.Color)).Render(v.Title)
	if v.Stats == nil {
		return title
	}
	snap := v.Stats.Snapshot(statsWindow)
	if snap.Samples == 0 {
		return title + styleStat.Render("  waiting…")
	}
	stat := fmt.Sprintf("  %s  avg %s  max %s",
		ui.FormatPercent(snap.Last), ui.FormatPercent(snap.Avg), ui.FormatPercent(snap.Max))
	line := title + styleStat.Render(stat)
	if lipgloss.Width(line) > cols {
		return title
	}
	return line
}

// chartCells rasterizes the chart into half-block cells. The result is
// cached until the chart requests a redraw or the size changes.
func (v *monitorView) chartCells(cols, rows int) string {
	pxW, pxH := cols, rows*2
	resized := v.canvas == nil || v.canvas.Bounds().Dx() != pxW || v.canvas.Bounds().Dy() != pxH
	if !resized && !v.redraw.pending {
		return v.cached
	}

	if resized {
		v.canvas = raster.New(pxW, pxH)
	} else {
		v.canvas.Clear()
	}
	v.canvas.Execute(v.graph.Draw(float64(pxW), float64(pxH)))
	v.cached = halfBlocks(v.canvas.Image(), background)
	v.redraw.pending = false
	return v.cached
}

// export renders the current chart at k times the terminal resolution.
func (v *monitorView) export(k float64) *raster.Canvas {
	w, h := 80, 32 // not yet drawn
	if v.canvas != nil {
		w, h = v.canvas.Bounds().Dx(), v.canvas.Bounds().Dy()
	}
	frame := v.graph.Frame(float64(w), float64(h)).Scaled(k)
	c := raster.New(int(frame.Width), int(frame.Height))
	c.Execute(chart.Render(frame))
	return c
}
