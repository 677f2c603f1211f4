package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/INTERPOLALERT/back-to-life/internal/engine"
)

// RunHome starts the interactive home screen: today's quest, bonus quests
// and completion in one view.
func RunHome(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newHomeModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
