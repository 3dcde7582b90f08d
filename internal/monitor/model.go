package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/refi64/axscale/internal/axis"
	"github.com/refi64/axscale/internal/device"
)

const (
	defaultBarWidth = 40
	minBarWidth     = 20
	maxBarWidth     = 50
)

type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
}

// axisRow is the live view state for one absolute axis.
type axisRow struct {
	code uint16
	info device.AxisInfo // driver-reported range at open
	last int32           // most recent sample
	min  int32           // bounds observed this session
	max  int32
	seen bool
	bar  progress.Model
}

// eventMsg delivers one translated device event to the model.
type eventMsg device.Event

// streamClosedMsg signals that the device event stream has ended.
type streamClosedMsg struct{}

// waitForEvent blocks on the device stream and hands the next event to
// the update loop.
func waitForEvent(events <-chan device.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// Model is the Bubble Tea model behind the live axis monitor.
type Model struct {
	dev   *device.Device
	rows  []axisRow
	keys  keyMap
	width int
	err   error
}

// New builds a monitor for an already opened device. One row is shown
// per absolute axis the device reports, in ascending axis order.
func New(dev *device.Device) Model {
	var rows []axisRow
	for code := axis.FirstAxis; code <= axis.LastAxis; code++ {
		info, ok := dev.Axis(code)
		if !ok {
			continue
		}
		rows = append(rows, axisRow{
			code: code,
			info: info,
			last: info.Value,
			bar:  newBar(defaultBarWidth),
		})
	}
	return Model{dev: dev, rows: rows, keys: keys}
}

func newBar(width int) progress.Model {
	return progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(width),
	)
}

// Init starts the event pump.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.dev.Events())
}

// Update handles key presses, terminal resizes, and device events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.resizeBars()

	case eventMsg:
		m.observe(device.Event(msg))
		return m, waitForEvent(m.dev.Events())

	case streamClosedMsg:
		m.err = m.dev.Err()
		return m, tea.Quit
	}

	return m, nil
}

// resizeBars rebuilds the per-axis bars to fit the terminal width.
func (m *Model) resizeBars() {
	barWidth := m.width - 44 // room for the label, value, and range columns
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	for i := range m.rows {
		m.rows[i].bar = newBar(barWidth)
	}
}

// observe folds one event into the row it belongs to.
func (m *Model) observe(ev device.Event) {
	if ev.Kind != device.EventAbsolute {
		return
	}
	for i := range m.rows {
		row := &m.rows[i]
		if row.code != ev.Axis {
			continue
		}
		row.last = ev.Value
		if !row.seen || ev.Value < row.min {
			row.min = ev.Value
		}
		if !row.seen || ev.Value > row.max {
			row.max = ev.Value
		}
		row.seen = true
		return
	}
}

// View renders the device header, one line per axis, and the help row.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("%s  (%s)", m.dev.Name(), m.dev.Path())))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(SubtitleStyle.Render("This device reports no absolute axes."))
		b.WriteString("\n")
	}

	for _, row := range m.rows {
		b.WriteString(renderRow(row))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.keys.Quit.Help().Key + ": " + m.keys.Quit.Help().Desc))
	return b.String()
}

// renderRow draws one axis line: label, bar position within the
// driver-reported range, raw value, and the bounds seen so far.
func renderRow(row axisRow) string {
	label := AxisLabelStyle.Render(fmt.Sprintf("axis %d", row.code))
	bar := row.bar.ViewAs(position(row))
	value := ValueStyle.Render(fmt.Sprintf("%6d", row.last))

	rangeStr := fmt.Sprintf("[%d..%d]", row.info.Min, row.info.Max)
	observed := "no samples yet"
	if row.seen {
		observed = fmt.Sprintf("seen %d..%d", row.min, row.max)
	}

	return fmt.Sprintf("%s  %s  %s  %s  %s",
		label, bar, value,
		SubtitleStyle.Render(rangeStr),
		SubtitleStyle.Render(observed))
}

// position maps the last sample into the driver-reported range as a
// fraction in [0, 1]. Samples outside the advertised range clamp to
// the nearest end, and a degenerate range pins the bar to zero.
func position(row axisRow) float64 {
	span := int64(row.info.Max) - int64(row.info.Min)
	if span <= 0 {
		return 0
	}
	frac := float64(int64(row.last)-int64(row.info.Min)) / float64(span)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// Err reports the stream failure that ended the session, if any.
func (m Model) Err() error {
	return m.err
}
