package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mfairley/credswap/internal/slot"
)

type menuChoice int

const (
	menuPersonal menuChoice = iota
	menuAPI
	menuStatus
	menuSetup
	menuQuit
)

var menuItems = []string{
	"Switch to personal",
	"Switch to API billing",
	"Show status",
	"Run setup",
	"Quit",
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuHighlight  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	menuMuted      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuError      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type menuKeymap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

var menuKeys = menuKeymap{
	Up:    key.NewBinding(key.WithKeys("up", "k")),
	Down:  key.NewBinding(key.WithKeys("down", "j")),
	Enter: key.NewBinding(key.WithKeys("enter")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// menuModel is the bare-invocation menu. It only picks an action; the
// action runs outside the TUI so prompts and errors print normally.
type menuModel struct {
	cursor int
	note   string
	isErr  bool
	choice menuChoice
	chosen bool
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, menuKeys.Quit):
			m.choice = menuQuit
			m.chosen = true
			return m, tea.Quit

		case key.Matches(msg, menuKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, menuKeys.Down):
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}

		case key.Matches(msg, menuKeys.Enter):
			m.choice = menuChoice(m.cursor)
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	s := fmt.Sprintf("\n  %s\n\n", menuTitleStyle.Render("credswap"))

	for i, item := range menuItems {
		if m.cursor == i {
			s += menuHighlight.Render(fmt.Sprintf("  > %s", item)) + "\n"
		} else {
			s += fmt.Sprintf("    %s\n", item)
		}
	}

	if m.note != "" {
		style := menuMuted
		if m.isErr {
			style = menuError
		}
		s += "\n  " + style.Render(m.note) + "\n"
	}

	s += "\n  " + menuMuted.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}

// runMenu loops: pick an action in the TUI, run it outside, show the
// outcome, re-enter the menu. A failed action reports and re-prompts.
func runMenu() error {
	var note string
	var isErr bool

	for {
		model := menuModel{note: note, isErr: isErr}
		out, err := tea.NewProgram(model).Run()
		if err != nil {
			return err
		}

		m := out.(menuModel)
		if !m.chosen || m.choice == menuQuit {
			return nil
		}

		note, isErr = "", false
		if res, err := runMenuChoice(m.choice); err != nil {
			note, isErr = err.Error(), true
		} else {
			note = res
		}
	}
}

func runMenuChoice(c menuChoice) (string, error) {
	switch c {
	case menuPersonal:
		if err := runSwitch("menu", slot.Personal); err != nil {
			return "", err
		}
		return "Switched to personal", nil

	case menuAPI:
		if err := runSwitch("menu", slot.ApiBilling); err != nil {
			return "", err
		}
		return "Switched to API billing", nil

	case menuStatus:
		mgr, closeLog, err := newManager("menu")
		if err != nil {
			return "", err
		}
		defer closeLog()
		if err := printStatus(mgr, false); err != nil {
			return "", err
		}
		return "", nil

	case menuSetup:
		if err := runSetup("menu", slot.Identities); err != nil {
			return "", err
		}
		return "Setup complete", nil
	}
	return "", nil
}
