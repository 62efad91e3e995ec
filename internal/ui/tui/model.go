package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/sysgraph/internal/chart"
	"github.com/bamsammich/sysgraph/internal/event"
	"github.com/bamsammich/sysgraph/internal/raster"
	"github.com/bamsammich/sysgraph/internal/ui"
)

// exportScale is how much larger than the terminal a saved PNG is drawn.
const exportScale = 4

// Bubble Tea messages.
type sampleEventMsg event.Event
type channelDoneMsg struct{}
type tickMsg time.Time
type saveResultMsg struct {
	path string
	err  error
}

// readNextEvent returns a tea.Cmd that blocks on the event channel.
func readNextEvent(ch <-chan event.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return channelDoneMsg{}
		}
		return sampleEventMsg(ev)
	}
}

func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// saveModal manages the text input overlay for saving a PNG snapshot.
// cursor is a byte offset into input and always sits on a rune boundary.
type saveModal struct {
	active bool
	input  string
	cursor int
}

func (s *saveModal) insertRune(r rune) {
	enc := string(r)
	s.input = s.input[:s.cursor] + enc + s.input[s.cursor:]
	s.cursor += len(enc)
}

func (s *saveModal) backspace() {
	if s.cursor > 0 {
		_, n := utf8.DecodeLastRuneInString(s.input[:s.cursor])
		s.input = s.input[:s.cursor-n] + s.input[s.cursor:]
		s.cursor -= n
	}
}

func (s *saveModal) moveLeft() {
	if s.cursor > 0 {
		_, n := utf8.DecodeLastRuneInString(s.input[:s.cursor])
		s.cursor -= n
	}
}

func (s *saveModal) moveRight() {
	if s.cursor < len(s.input) {
		_, n := utf8.DecodeRuneInString(s.input[s.cursor:])
		s.cursor += n
	}
}

func (s *saveModal) render() string {
	prompt := styleSavePrompt.Render("Save to: ")
	cursor := styleSaveInput.Render("█")
	return "  " + prompt + styleSaveInput.Render(s.input[:s.cursor]) + cursor + styleSaveInput.Render(s.input[s.cursor:])
}

// Model is the root Bubble Tea model. Every chart mutation happens inside
// Update, so the charts are owned by the program's event loop.
type Model struct {
	events   <-chan event.Event
	monitors []*monitorView
	period   time.Duration
	started  time.Time

	width     int
	height    int
	paused    bool
	done      bool // event channel closed
	quitting  bool
	statusMsg string

	save saveModal
}

// NewModel creates a new TUI model with one card per monitor.
func NewModel(events <-chan event.Event, monitors []ui.Monitor, params chart.Params) Model {
	views := make([]*monitorView, len(monitors))
	for i, mon := range monitors {
		views[i] = newMonitorView(mon, params)
	}
	return Model{
		events:   events,
		monitors: views,
		period:   params.TickPeriod(),
		started:  time.Now(),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		readNextEvent(m.events),
		tickCmd(m.period),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sampleEventMsg:
		return m.handleSampleEvent(event.Event(msg))

	case channelDoneMsg:
		m.done = true
		return m, nil

	case tickMsg:
		if !m.paused {
			for _, v := range m.monitors {
				v.graph.Tick()
			}
		}
		return m, tickCmd(m.period)

	case saveResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
		} else {
			m.statusMsg = fmt.Sprintf("saved to %s", msg.path)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSampleEvent(ev event.Event) (tea.Model, tea.Cmd) {
	if ev.Monitor >= 0 && ev.Monitor < len(m.monitors) {
		v := m.monitors[ev.Monitor]
		switch ev.Type {
		case event.SampleReceived:
			v.addValue(ev.Value)
		case event.SampleFailed:
			if v.Stats != nil {
				v.Stats.AddFailed()
			}
		}
	}
	return m, readNextEvent(m.events)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// When save modal is active, capture all input.
	if m.save.active {
		return m.handleSaveKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case " ", "p":
		m.paused = !m.paused
		m.statusMsg = ""
		if m.paused {
			m.statusMsg = "paused"
		}
		return m, nil

	case "s":
		m.save.active = true
		m.save.input = fmt.Sprintf("sysgraph-%s.png", time.Now().Format("2006-01-02-150405"))
		m.save.cursor = len(m.save.input)
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleSaveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.save.active = false
		m.statusMsg = ""
		return m, nil

	case tea.KeyEnter:
		m.save.active = false
		return m, m.writeSnapshot(m.save.input)

	case tea.KeyBackspace:
		m.save.backspace()
		return m, nil

	case tea.KeyLeft:
		m.save.moveLeft()
		return m, nil

	case tea.KeyRight:
		m.save.moveRight()
		return m, nil

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.save.insertRune(r)
		}
		return m, nil
	}

	return m, nil
}

// writeSnapshot rasterizes every chart on the event loop, then encodes and
// writes the PNG in the returned command.
func (m Model) writeSnapshot(path string) tea.Cmd {
	canvases := make([]*raster.Canvas, len(m.monitors))
	for i, v := range m.monitors {
		canvases[i] = v.export(exportScale)
	}
	img := raster.Stack(canvases, exportScale, background)

	return func() tea.Msg {
		f, err := os.Create(path) //nolint:gosec // user-chosen path for snapshot output
		if err != nil {
			return saveResultMsg{path: path, err: err}
		}
		err = raster.WritePNG(f, img)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return saveResultMsg{path: path, err: err}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Header (1 line).
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	// Cards share what is left after header (1), status (1) and footer (1).
	if n := len(m.monitors); n > 0 {
		avail := max(m.height-3, 3*n)
		cards := make([]string, n)
		for i, v := range m.monitors {
			h := avail / n
			if i == n-1 {
				h = avail - h*(n-1)
			}
			cards[i] = v.view(m.width, h)
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
		b.WriteByte('\n')
	}

	// Save modal or status message.
	switch {
	case m.save.active:
		b.WriteString(m.save.render())
	case m.statusMsg != "":
		b.WriteString(styleStatus.Render("  " + m.statusMsg))
	}
	b.WriteByte('\n')

	// Footer.
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	state := fmt.Sprintf("%.0f Hz", float64(time.Second)/float64(m.period))
	switch {
	case m.done:
		state = "samplers stopped"
	case m.paused:
		state = "paused"
	}
	header := fmt.Sprintf("  %s  %d monitors  %s  up %s",
		styleHeaderLabel.Render("sysgraph"),
		len(m.monitors),
		state,
		ui.FormatDuration(time.Since(m.started)),
	)
	return styleHeader.Render(header)
}

func (m Model) renderFooter() string {
	type keybind struct {
		key   string
		label string
	}

	binds := []keybind{
		{"q", "quit"},
		{"space", "pause"},
		{"s", "save png"},
	}

	var parts []string
	for _, kb := range binds {
		parts = append(parts,
			styleKeybindKey.Render(kb.key)+" "+styleKeybindLabel.Render(kb.label))
	}

	return "  " + strings.Join(parts, "   ")
}
