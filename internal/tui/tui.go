// Package tui contains the interactive terminal client for the diary.
//
// The client is a single Bubble Tea program whose root model (appModel)
// routes between screens: welcome, login, register, the note list, a
// read-only note view and the note editor. Destructive actions and errors
// are rendered as overlays on top of the current screen.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// Run starts the interactive session. A persisted session skips the
// authentication screens and opens the note list directly; an expired token
// will surface as an error on the first server call, from where the user can
// log out and sign in again.
func (t *TUI) Run(ctx context.Context) error {
	var model appModel

	session, err := t.services.AuthService.RestoreSession(ctx)
	if err == nil {
		model = newMainAppModel(ctx, t.services, session)
	} else {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			t.logger.Err(err).Msg("error restoring saved session, starting unauthenticated")
		}
		model = newAuthAppModel(ctx, t.services)
	}

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}

	return nil
}
