package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuronexus/schemacheck/internal/domain"
)

var (
	dirStyle    = lipgloss.NewStyle().Bold(true).Foreground(info)
	schemaStyle = lipgloss.NewStyle().Foreground(fg)
	branchStyle = faintStyle
	ruleLine    = titleStyle.Render(strings.Repeat("=", 60))
)

// RenderStructure draws a directory tree followed by file statistics.
func RenderStructure(st *domain.Structure) string {
	var b strings.Builder

	b.WriteString("\n" + titleStyle.Render("JSON Schema Directory Structure:") + "\n")
	b.WriteString(ruleLine + "\n\n")
	b.WriteString(dirStyle.Render(st.Root.Name+"/") + "\n")
	renderChildren(&b, st.Root, "")
	b.WriteString("\n" + ruleLine + "\n")

	b.WriteString("\n" + titleStyle.Render("📊 Statistics:") + "\n")
	fmt.Fprintf(&b, "   Schema files (%s): %d\n", domain.SchemaSuffix, st.Stats.SchemaFiles)
	fmt.Fprintf(&b, "   Documentation files (.md): %d\n", st.Stats.DocFiles)
	fmt.Fprintf(&b, "   Total files: %d\n", st.Stats.Total())
	fmt.Fprintf(&b, "   Total size: %.1f KB\n\n", st.Stats.TotalKB())

	return b.String()
}

func renderChildren(b *strings.Builder, node *domain.TreeNode, prefix string) {
	for i, child := range node.Children {
		last := i == len(node.Children)-1

		branch, extension := "├── ", "│   "
		if last {
			branch, extension = "└── ", "    "
		}

		name := schemaStyle.Render(child.Name)
		if child.IsDir {
			name = dirStyle.Render(child.Name)
		}
		b.WriteString(branchStyle.Render(prefix+branch) + name + "\n")

		if child.IsDir {
			renderChildren(b, child, prefix+extension)
		}
	}
}
