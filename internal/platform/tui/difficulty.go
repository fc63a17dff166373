package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/core"
)

var difficultyNotes = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "fewer 4s",
	config.DifficultyNormal: "classic odds",
	config.DifficultyHard:   "many 4s",
	config.DifficultyCustom: "from config",
}

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	options   []config.DifficultyPreset
	spawn4    float64
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	choosing  bool
	quitting  bool
}

// NewDifficultyModel creates a selector with the cursor on the preset matching
// the configured spawn4. Odds matching no preset add a custom entry first.
func NewDifficultyModel(width, height int, spawn4 float64) DifficultyModel {
	current := config.PresetFor(spawn4)
	options := config.Presets
	if current == config.DifficultyCustom {
		options = append([]config.DifficultyPreset{config.DifficultyCustom}, config.Presets...)
	}

	cursor := 0
	for i, p := range options {
		if p == current {
			cursor = i
		}
	}

	return DifficultyModel{
		options:   options,
		spawn4:    spawn4,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.options)-1)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.options)-1)
	case MenuActionSelect:
		m.choosing = false
		m.selected = m.options[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("2 0 4 8", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.options {
		line := fmt.Sprintf("  %-7s %3.0f%% fours, %s", p, m.odds(p)*100, difficultyNotes[p])
		if i == m.cursor {
			line = "> " + line[2:]
			b.WriteString(activeStyle.Render(centerText(line, m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(centerText("Enter: Select  |  Esc/Q: Quit", m.width)))

	return b.String()
}

func (m DifficultyModel) odds(p config.DifficultyPreset) float64 {
	if p == config.DifficultyCustom {
		return m.spawn4
	}
	return config.Spawn4ForPreset(p)
}

// Selected returns the chosen preset and whether a choice was made.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing || m.quitting {
		return "", false
	}
	return m.selected, true
}

// centerText pads text on the left so it is centered within width.
func centerText(text string, width int) string {
	w := core.TextWidth(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunDifficultySelector runs the selector and returns the chosen preset.
// ok is false when the user quit without choosing.
func RunDifficultySelector(width, height int, spawn4 float64) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(width, height, spawn4), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}
