package formatter

import (
	"strings"

	"github.com/alexanderramin/logtime/internal/domain"
)

// FormatProject renders a project detail card.
func FormatProject(p *domain.Project) string {
	lines := []string{
		StyleBold.Render(p.DisplayName()),
		"",
		Field("CODE", Code(p.Code), 4),
		Field("NAME", domain.StrFromPtr(p.Name), 4),
		Field("DIR", domain.StrFromPtr(p.Directory), 4),
	}
	return RenderBox("", strings.Join(lines, "\n"))
}

// FormatProjectList renders all projects as a table.
func FormatProjectList(projects []*domain.Project) string {
	t := NewTable("CODE", "NAME", "DIRECTORY")
	for _, p := range projects {
		t.AddRow(Code(p.Code), domain.StrFromPtr(p.Name), Dim(domain.StrFromPtr(p.Directory)))
	}
	return Header("Projects") + "\n" + t.Render()
}
