package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ccparse/internal/ast"
)

type FooterOutput struct {
	Key       string `json:"key"`
	Separator string `json:"separator"`
	Value     string `json:"value"`
}

type CommitOutput struct {
	Type        string         `json:"type"`
	Scope       string         `json:"scope,omitempty"`
	Breaking    bool           `json:"breaking"`
	Description string         `json:"description"`
	Body        string         `json:"body,omitempty"`
	Footers     []FooterOutput `json:"footers,omitempty"`
}

// FormatCommitJSON prints the parsed commit as indented JSON.
func FormatCommitJSON(w io.Writer, commit *ast.Commit) error {
	out := CommitOutput{
		Type:        commit.Type,
		Scope:       commit.Scope,
		Breaking:    commit.Breaking,
		Description: commit.Description,
		Body:        commit.Body,
	}
	for _, f := range commit.Footers {
		out.Footers = append(out.Footers, FooterOutput{
			Key:       f.Key,
			Separator: f.Sep.String(),
			Value:     f.Value,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	breakingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// FormatCommitPretty renders the parsed commit as an aligned card.
func FormatCommitPretty(w io.Writer, commit *ast.Commit) error {
	rows := []struct {
		label string
		value string
	}{
		{"Type", commit.Type},
		{"Scope", commit.Scope},
		{"Description", commit.Description},
	}

	labelWidth := 0
	for _, r := range rows {
		if lw := runewidth.StringWidth(r.label); lw > labelWidth {
			labelWidth = lw
		}
	}
	if len(commit.Footers) > 0 && labelWidth < runewidth.StringWidth("Footers") {
		labelWidth = runewidth.StringWidth("Footers")
	}

	var sb strings.Builder
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		writeRow(&sb, r.label, r.value, labelWidth)
	}
	if commit.Breaking {
		writeRow(&sb, "Breaking", breakingStyle.Render("yes"), labelWidth)
	}
	if commit.HasBody() {
		writeRow(&sb, "Body", commit.Body, labelWidth)
	}
	for i, f := range commit.Footers {
		label := ""
		if i == 0 {
			label = "Footers"
		}
		sep := ": "
		if f.Sep == ast.SepSpaceHash {
			sep = " #"
		}
		writeRow(&sb, label, footerStyle.Render(f.Key+sep+f.Value), labelWidth)
	}

	_, err := fmt.Fprintln(w, cardStyle.Render(strings.TrimRight(sb.String(), "\n")))
	return err
}

func writeRow(sb *strings.Builder, label, value string, width int) {
	padded := runewidth.FillRight(label, width)
	lines := strings.Split(value, "\n")

	sb.WriteString(labelStyle.Render(padded))
	sb.WriteString("  ")
	sb.WriteString(lines[0])
	sb.WriteByte('\n')

	for _, line := range lines[1:] {
		sb.WriteString(strings.Repeat(" ", width+2))
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}
