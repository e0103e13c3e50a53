package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrPickerCancelled = errors.New("no demo selected")

// Choice is one entry of the demo picker.
type Choice struct {
	ID   string
	Name string
	Desc string
}

func (c Choice) Title() string       { return c.Name }
func (c Choice) Description() string { return c.Desc }
func (c Choice) FilterValue() string { return c.ID }

type pickerModel struct {
	list     list.Model
	chosen   string
	quitting bool
}

func newPickerModel(title string, choices []Choice) pickerModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = c
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Inherit(selectedStyle)

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		// Keys typed into the filter belong to the list
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if c, ok := m.list.SelectedItem().(Choice); ok {
				m.chosen = c.ID
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting || m.chosen != "" {
		return ""
	}
	return m.list.View()
}

// RunPicker shows the choices full screen and returns the chosen ID.
func RunPicker(title string, choices []Choice) (string, error) {
	p := tea.NewProgram(newPickerModel(title, choices), tea.WithAltScreen())
	res, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}

	final := res.(pickerModel)
	if final.chosen == "" {
		return "", ErrPickerCancelled
	}
	return final.chosen, nil
}
