package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// picker is a multi-select list. Space or Enter toggles the row under the
// cursor; Enter on the Confirm row finishes.
type picker struct {
	title    string
	items    []string
	selected map[int]bool
	cursor   int
	done     bool
}

func newPicker(title string, items []string, preselect bool) picker {
	p := picker{
		title:    title,
		items:    items,
		selected: make(map[int]bool, len(items)),
	}
	if preselect {
		for i := range items {
			p.selected[i] = true
		}
	}
	return p
}

func (p picker) Init() tea.Cmd { return nil }

func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		p.selected = nil
		p.done = true
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.items) {
			p.cursor++
		}
	case "enter", " ":
		if p.cursor == len(p.items) {
			if key.String() == "enter" {
				p.done = true
				return p, tea.Quit
			}
			return p, nil
		}
		p.selected[p.cursor] = !p.selected[p.cursor]
	case "a":
		for i := range p.items {
			p.selected[i] = true
		}
	case "n":
		for i := range p.items {
			p.selected[i] = false
		}
	}
	return p, nil
}

func (p picker) View() string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render(p.title) + "\n")
	b.WriteString("  " + mutedStyle.Render("space: toggle · a: all · n: none · esc: cancel") + "\n\n")

	for i, item := range p.items {
		check := "[ ]"
		if p.selected[i] {
			check = pickerSelectedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", check, item)
		if p.cursor == i {
			b.WriteString("  " + pickerCursorStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}

	b.WriteString("\n")
	if p.cursor == len(p.items) {
		b.WriteString("  " + pickerCursorStyle.Render("> [ Confirm ]") + "\n")
	} else {
		b.WriteString("    [ Confirm ]\n")
	}
	return b.String()
}

// Selected returns the indexes of the selected items in order, or nil if
// the picker was cancelled.
func (p picker) Selected() []int {
	if p.selected == nil {
		return nil
	}
	result := []int{}
	for i := range p.items {
		if p.selected[i] {
			result = append(result, i)
		}
	}
	return result
}

// runPicker shows the picker and returns the selected indexes. A nil
// result means the user cancelled.
func runPicker(title string, items []string, preselect bool) ([]int, error) {
	model, err := tea.NewProgram(newPicker(title, items, preselect)).Run()
	if err != nil {
		return nil, err
	}
	return model.(picker).Selected(), nil
}

// pickNames runs the picker over names and returns the chosen names.
func pickNames(title string, names []string) ([]string, error) {
	idx, err := runPicker(title, names, false)
	if err != nil || idx == nil {
		return nil, err
	}
	chosen := make([]string, 0, len(idx))
	for _, i := range idx {
		chosen = append(chosen, names[i])
	}
	return chosen, nil
}
