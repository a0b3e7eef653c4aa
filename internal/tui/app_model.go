package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenEditor
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	currentScreen screen
	session       store.Session

	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	detail   detailModel
	editor   editorModel

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64

	err error
}

func newAuthAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, session store.Session) appModel {
	m := newAuthAppModel(ctx, services)
	m.session = session
	m.currentScreen = screenList
	m.list.email = session.Email
	m.list.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenList {
		return tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteNote(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.session = msg.session
		m.list.email = msg.session.Email
		m.list.loading = true
		m.currentScreen = screenList
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
	case notesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.list.notes = msg.notes
		if m.list.idx >= len(m.list.notes) {
			m.list.idx = len(m.list.notes) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case noteSavedMsg:
		m.editor.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		// land on the saved note, refresh the list in the background
		m.detail = detailModel{note: msg.note}
		m.currentScreen = screenDetail
		m.list.loading = true
		return m, m.cmdLoadNotes()
	case noteDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.pendingDelete = 0
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadNotes()
	case loggedOutMsg:
		// local state is always cleared, even when the server call failed
		m.session = store.Session{}
		m.list = newListModel()
		m.list.loading = false
		m.currentScreen = screenWelcome
		return m, nil
	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(fmt.Sprintf("Copy to clipboard failed: %v", msg.err))
		return m, nil
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenEditor:
		return m.updateEditor(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenEditor:
		body = m.editor.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.editor.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.login = newLoginModel()
			m.currentScreen = screenLogin
		} else {
			m.register = newRegisterModel()
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case "esc":
			m.currentScreen = screenWelcome
			return m, nil
		case "tab":
			m.login = focusNextLogin(m.login, 1)
			return m, nil
		case "shift+tab":
			m.login = focusNextLogin(m.login, -1)
			return m, nil
		case "enter":
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.LoginRequest{Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case "esc":
			m.currentScreen = screenWelcome
			return m, nil
		case "tab":
			m.register = focusNextRegister(m.register, 1)
			return m, nil
		case "shift+tab":
			m.register = focusNextRegister(m.register, -1)
			return m, nil
		case "enter":
			if m.register.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.register.inputs[0].Value())
			name := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if email == "" || name == "" || pass == "" || repeat == "" {
				m.showErrorf("All fields are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdSignup(models.SignupRequest{
				Email:           email,
				Name:            name,
				Password:        pass,
				ConfirmPassword: repeat,
			})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{note: note}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newNote):
		m.editor = newEditorModel(nil)
		m.currentScreen = screenEditor
	case key.Matches(keyMsg, keys.edit):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		// esc from the editor lands on the detail view, so it must show
		// the note being edited even when the editor was opened from here
		m.detail = detailModel{note: note}
		m.editor = newEditorModel(&note)
		m.currentScreen = screenEditor
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = note.Title
		m.pendingDelete = note.NoteID
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		note := m.detail.note
		m.editor = newEditorModel(&note)
		m.currentScreen = screenEditor
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.note.Title
		m.pendingDelete = m.detail.note.NoteID
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.note.Content == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.note.Content)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.editor.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case "tab", "shift+tab":
			m.editor.toggleFocus()
			return m, nil
		case "ctrl+s":
			if m.editor.submitting {
				return m, nil
			}
			req := m.editor.toRequest()
			if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
				m.showErrorf("Title and content are required")
				return m, nil
			}
			m.editor.submitting = true
			if m.editor.editing {
				return m, m.cmdUpdateNote(m.editor.noteID, req)
			}
			return m, m.cmdCreateNote(req)
		}
	}

	var cmd tea.Cmd
	if m.editor.focusTitle {
		m.editor.title, cmd = m.editor.title.Update(msg)
	} else {
		m.editor.content, cmd = m.editor.content.Update(msg)
	}
	return m, cmd
}

func (m appModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, req)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Signup(ctx, req)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		notes, err := svc.List(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m appModel) cmdCreateNote(req models.NoteRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		note, err := svc.Create(ctx, req)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdUpdateNote(noteID int64, req models.NoteRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		note, err := svc.Update(ctx, noteID, req)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdDeleteNote(noteID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		return noteDeletedMsg{err: svc.Delete(ctx, noteID)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel, dir int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel, dir int) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
