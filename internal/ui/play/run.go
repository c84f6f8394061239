package play

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"learnmaths/internal/game"
)

// Run plays the game until the player quits.
func Run(ctx context.Context, g *game.Game, in io.Reader, out io.Writer, opts Options) error {
	model := NewModel(ctx, g, opts)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
