package tui

import (
	"fmt"

	"github.com/MKhiriev/go-diary/models"
)

type detailModel struct {
	note   models.Note
	status string
}

func (m detailModel) View() string {
	out := titleStyle.Render(m.note.Title) + "\n"
	out += helpStyle.Render(fmt.Sprintf("created %s, last edited %s",
		m.note.CreatedAt.Format("02 Jan 2006 15:04"),
		m.note.UpdatedAt.Format("02 Jan 2006 15:04"),
	)) + "\n\n"

	out += m.note.Content + "\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("e edit  d delete  c copy text  esc back")
	return out
}
