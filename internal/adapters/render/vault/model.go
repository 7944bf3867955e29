// Package vault renders session, credential and binding views for the terminal.
package vault

import (
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")
	ErrNoPages               = errors.New("nothing to render")
)

// Page is one renderable screen.
type Page interface {
	render(s styles) string
}

type pagesReadyMsg struct{}

type model struct {
	pages  []Page
	styles styles
	output string
}

func newModel(pages []Page) model {
	return model{
		pages:  pages,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return pagesReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(pagesReadyMsg); !ok {
		return m, nil
	}

	blocks := make([]string, 0, len(m.pages))
	for _, page := range m.pages {
		blocks = append(blocks, page.render(m.styles))
	}
	m.output = strings.Join(blocks, "\n\n")
	return m, tea.Quit
}

func (m model) View() string {
	return m.output
}

// Render draws pages top to bottom, separated by a blank line. Nil pages are
// skipped.
func Render(pages ...Page) (string, error) {
	kept := make([]Page, 0, len(pages))
	for _, page := range pages {
		if page != nil {
			kept = append(kept, page)
		}
	}
	if len(kept) == 0 {
		return "", ErrNoPages
	}

	p := tea.NewProgram(
		newModel(kept),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
