package tui

import (
	"fmt"

	"github.com/MKhiriev/go-diary/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	notes   []models.Note
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	email   string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m listModel) View() string {
	header := titleStyle.Render("Diary")
	if m.email != "" {
		header += helpStyle.Render("  " + m.email)
	}
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.notes) == 0:
		out += "No notes yet. Press n to write the first one.\n"
	default:
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s\n",
				cursor,
				fitText(note.Title, 40),
				helpStyle.Render(note.UpdatedAt.Format("02 Jan 2006 15:04")),
			)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n new  enter open  e edit  d delete  r refresh  l logout  q quit")
	return out
}
