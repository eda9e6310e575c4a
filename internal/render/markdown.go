package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	h1Style     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	h2Style     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	h3Style     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	codeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0"))
	boldStyle   = lipgloss.NewStyle().Bold(true)

	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	statStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Markdown renders log content for the terminal, styling headers, list
// bullets, fenced code markers, and **bold** spans line by line. The mapping
// is pure: input lines map to styled output lines in order.
func Markdown(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		out = append(out, renderLine(line))
	}
	return strings.Join(out, "\n")
}

func renderLine(line string) string {
	switch {
	case strings.HasPrefix(line, "# "):
		return h1Style.Render(line)
	case strings.HasPrefix(line, "## "):
		return h2Style.Render(line)
	case strings.HasPrefix(line, "### "):
		return h3Style.Render(line)
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return bulletStyle.Render("• ") + line[2:]
	case strings.HasPrefix(line, "```"):
		return codeStyle.Render(line)
	case strings.TrimSpace(line) == "":
		return ""
	default:
		return renderBoldSpans(line)
	}
}

// renderBoldSpans converts **text** markers into terminal bold runs.
// Unbalanced markers pass through untouched.
func renderBoldSpans(line string) string {
	var out strings.Builder

	for {
		start := strings.Index(line, "**")
		if start < 0 {
			out.WriteString(line)
			return out.String()
		}
		end := strings.Index(line[start+2:], "**")
		if end < 0 {
			out.WriteString(line)
			return out.String()
		}
		end += start + 2

		out.WriteString(line[:start])
		out.WriteString(boldStyle.Render(line[start+2 : end]))
		line = line[end+2:]
	}
}

// Banner styles the === framing lines around a day view.
func Banner(text string) string {
	return bannerStyle.Render(text)
}

// Header styles the summary heading.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Stat styles the statistics section heading.
func Stat(text string) string {
	return statStyle.Render(text)
}

// Section styles a summary section heading.
func Section(text string) string {
	return sectionStyle.Render(text)
}

// DayHeading styles the per-day divider inside the summary.
func DayHeading(text string) string {
	return bannerStyle.Render(text)
}

// Title styles an extracted entry title line.
func Title(text string) string {
	return titleStyle.Render(text)
}
