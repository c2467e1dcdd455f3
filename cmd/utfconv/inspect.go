package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/textconv/utf"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	formStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98")).
			Width(10)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newInspectCmd() *cobra.Command {
	var (
		interactive bool
		from        = utf.FormUTF8
	)
	cmd := &cobra.Command{
		Use:   "inspect [text]",
		Short: "Show text encoded in every form",
		Long: `Inspect encodes the given text in every form and prints the bytes and
progress counts. Go escapes such as \uFEFF or \xff are interpreted. With -i, or
with no text on a terminal, an interactive view is started.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := from
			tty := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
			if interactive || (len(args) == 0 && tty) {
				if !tty {
					return fmt.Errorf("interactive mode needs a terminal")
				}
				return runInteractive(src, strings.Join(args, ""))
			}

			var text string
			if len(args) == 1 {
				text = unescape(args[0])
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				text = string(b)
			}
			for _, row := range inspect([]byte(text), src, flags()) {
				fmt.Fprintln(cmd.OutOrStdout(), row.plain())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Interactive mode with TUI")
	formFlag(cmd.Flags(), &from, "from", "f", "Form the input text is held in")
	return cmd
}

// unescape interprets Go escape sequences, returning s unchanged when it is
// not a valid quoted body.
func unescape(s string) string {
	if u, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`); err == nil {
		return u
	}
	return s
}

type inspection struct {
	err      error
	form     utf.Form
	out      []byte
	progress utf.Progress
}

// inspect converts src, held as from, into every form. Bytes written before a
// failure are kept so partial progress shows.
func inspect(src []byte, from utf.Form, fl utf.Flags) []inspection {
	if src == nil {
		src = []byte{}
	}
	n := len(src) / from.UnitSize()
	rows := make([]inspection, 0, len(utf.Forms()))
	for _, to := range utf.Forms() {
		row := inspection{form: to}
		need, err := utf.TranscodeLength(to, src, from, n, fl)
		size := need.Written
		if err != nil {
			size = n * 4
		}
		dst := make([]byte, (size+1)*to.UnitSize())
		row.progress, row.err = utf.Transcode(dst, to, src, from, n, fl)
		row.out = dst[:row.progress.Written*to.UnitSize()]
		rows = append(rows, row)
	}
	return rows
}

func (r inspection) counts() string {
	return fmt.Sprintf("written=%d consumed=%d", r.progress.Written, r.progress.Consumed)
}

func (r inspection) hex() string {
	var b strings.Builder
	w := r.form.UnitSize()
	for i, c := range r.out {
		if i > 0 && i%w == 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}

func (r inspection) plain() string {
	line := fmt.Sprintf("%-9s %s  %s", r.form, r.counts(), r.hex())
	if r.err != nil {
		line += "  error: " + r.err.Error()
	}
	return line
}

type inspectModel struct {
	input    textinput.Model
	rows     []inspection
	from     utf.Form
	flags    utf.Flags
	selected int
}

func newInspectModel(from utf.Form, text string) inspectModel {
	ti := textinput.New()
	ti.Placeholder = `text, Go escapes like \uFEFF allowed`
	ti.CharLimit = 512
	ti.Width = 60
	ti.SetValue(text)
	ti.Focus()

	m := inspectModel{input: ti, from: from, flags: flags()}
	m.refresh()
	return m
}

func (m *inspectModel) refresh() {
	m.rows = inspect([]byte(unescape(m.input.Value())), m.from, m.flags)
}

func (m inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.rows)-1 {
				m.selected++
			}
			return m, nil
		case "tab":
			m.from = (m.from + 1) % utf.Form(len(utf.Forms()))
			m.refresh()
			return m, nil
		case "ctrl+b":
			m.flags ^= utf.ForbidBOM
			m.refresh()
			return m, nil
		case "ctrl+s":
			m.flags ^= utf.ErrorOnInvalid
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("utfconv inspect"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("source %s  forbid-bom=%t  strict=%t",
		m.from, m.flags&utf.ForbidBOM != 0, m.flags&utf.ErrorOnInvalid != 0)))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		name := formStyle.Render(row.form.String())
		if i == m.selected {
			name = selectedStyle.Render(fmt.Sprintf("%-10s", row.form))
		}
		b.WriteString(name)
		b.WriteString(" ")
		b.WriteString(countStyle.Render(row.counts()))
		b.WriteString("\n           ")
		if row.err != nil {
			b.WriteString(errorStyle.Render(row.err.Error()))
		} else {
			b.WriteString(resultStyle.Render(row.hex()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: select • tab: source form • ctrl+b: forbid BOM • ctrl+s: strict • esc: quit"))
	return b.String()
}

func runInteractive(from utf.Form, text string) error {
	p := tea.NewProgram(newInspectModel(from, unescape(text)), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
