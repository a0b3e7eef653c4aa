package tui

import (
	"github.com/MKhiriev/go-diary/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

// editorModel is the note editor, used both for new notes and for editing
// existing ones. The title is a single-line input, the body a multi-line
// textarea, so enter inserts newlines and ctrl+s saves.
type editorModel struct {
	title      textinput.Model
	content    textarea.Model
	focusTitle bool
	editing    bool
	noteID     int64
	submitting bool
}

func newEditorModel(note *models.Note) editorModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "write your note..."
	content.SetWidth(60)
	content.SetHeight(12)

	m := editorModel{title: title, content: content, focusTitle: true}
	if note == nil {
		return m
	}

	m.editing = true
	m.noteID = note.NoteID
	m.title.SetValue(note.Title)
	m.content.SetValue(note.Content)
	return m
}

func (m editorModel) toRequest() models.NoteRequest {
	return models.NoteRequest{
		Title:   m.title.Value(),
		Content: m.content.Value(),
	}
}

func (m *editorModel) toggleFocus() {
	if m.focusTitle {
		m.title.Blur()
		m.content.Focus()
	} else {
		m.content.Blur()
		m.title.Focus()
	}
	m.focusTitle = !m.focusTitle
}

func (m editorModel) View() string {
	header := "New note"
	if m.editing {
		header = "Editing: " + m.title.Value()
	}

	out := titleStyle.Render(header) + "\n\n"
	out += "Title: [" + m.title.View() + "]\n\n"
	out += m.content.View() + "\n"

	if m.submitting {
		out += "\n[Saving...]\n"
	}

	out += "\n" + helpStyle.Render("ctrl+s save  tab switch field  esc cancel")
	return out
}
