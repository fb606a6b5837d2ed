package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/img2txt/ascii"
)

var errNotTerminal = errors.New("form requires an interactive terminal")

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (a *app) newFormCmd() *cobra.Command {
	cfg := ascii.Flags{
		OutputDir:  "output-dir",
		Width:      "width",
		Height:     "height",
		LineEnding: "line-ending",
		Preset:     "config",
	}.NewConfig()

	cmd := &cobra.Command{
		Use:   "form [flags] [image]",
		Short: "Collect the conversion fields in an interactive form",
		Long: `form opens a terminal form with fields for the image path, output folder,
width and height. Flags and the optional image argument prefill the fields.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errNotTerminal
			}

			err := cfg.ApplyPreset(cmd.Flags())
			if err != nil {
				return err
			}

			// Log output would corrupt the form.
			conv, err := cfg.NewConverter(slog.New(slog.DiscardHandler))
			if err != nil {
				return err
			}

			var source string
			if len(args) == 1 {
				source = args[0]
			}

			m := newFormModel(conv, source, cfg.OutputDir, cfg.Width, cfg.Height)

			_, err = tea.NewProgram(m).Run()
			if err != nil {
				return err
			}

			a.logger.Debug("form closed", slog.String("status", m.status))

			return nil
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(a.stderr, "register completions: %v\n", err)
	}

	return cmd
}

// Field indexes in form order.
const (
	fieldSource = iota
	fieldOutputDir
	fieldWidth
	fieldHeight
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldSource:    "Image path",
	fieldOutputDir: "Output folder",
	fieldWidth:     "Width",
	fieldHeight:    "Height",
}

// convertedMsg reports the outcome of a conversion started by the form.
type convertedMsg struct {
	err  error
	path string
}

// formModel is the bubbletea model for the conversion form.
type formModel struct {
	conv   *ascii.Converter
	status string
	values [fieldCount]string
	focus  int
	busy   bool
	failed bool
}

func newFormModel(conv *ascii.Converter, source, outputDir, width, height string) *formModel {
	m := &formModel{conv: conv}
	m.values[fieldSource] = source
	m.values[fieldOutputDir] = outputDir
	m.values[fieldWidth] = width
	m.values[fieldHeight] = height

	return m
}

// Init has nothing to start; the form waits for input.
func (m *formModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and conversion results.
func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case convertedMsg:
		m.busy = false
		m.failed = msg.err != nil

		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = "ASCII art created: " + msg.path
		}
	}

	return m, nil
}

func (m *formModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		return tea.Quit

	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount

	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount

	case "enter":
		if m.focus < fieldCount-1 {
			m.focus++

			return nil
		}

		return m.submit()

	case "ctrl+s":
		return m.submit()

	case "backspace":
		v := []rune(m.values[m.focus])
		if len(v) > 0 {
			m.values[m.focus] = string(v[:len(v)-1])
		}

	default:
		m.values[m.focus] += msg.Text
	}

	return nil
}

// submit validates the fields and, if they parse, returns a command that runs
// the conversion. Submits are ignored while a conversion is in flight.
func (m *formModel) submit() tea.Cmd {
	if m.busy {
		return nil
	}

	req, err := ascii.ParseRequest(
		m.values[fieldSource],
		m.values[fieldOutputDir],
		m.values[fieldWidth],
		m.values[fieldHeight],
	)
	if err != nil {
		m.status = err.Error()
		m.failed = true

		return nil
	}

	m.busy = true
	m.failed = false
	m.status = "Converting..."

	conv := m.conv

	return func() tea.Msg {
		return convertedMsg{path: req.OutputPath(), err: conv.Convert(req)}
	}
}

// View renders the form.
func (m *formModel) View() tea.View {
	return tea.NewView(m.render())
}

// render draws the fields, the status line and key help.
func (m *formModel) render() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("ASCII art converter"))
	sb.WriteString("\n\n")

	for i, label := range fieldLabels {
		value := m.values[i]

		if i == m.focus {
			sb.WriteString(focusStyle.Render("> " + label))
			sb.WriteString("\n  ")
			sb.WriteString(value)
			sb.WriteString("_\n")

			continue
		}

		sb.WriteString(labelStyle.Render("  " + label))
		sb.WriteString("\n  ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	switch {
	case m.status == "":
	case m.failed:
		sb.WriteString(errorStyle.Render("Error: " + m.status))
		sb.WriteString("\n\n")
	default:
		sb.WriteString(successStyle.Render(m.status))
		sb.WriteString("\n\n")
	}

	sb.WriteString(labelStyle.Render("tab/shift+tab move • enter next/convert • ctrl+s convert • esc quit"))
	sb.WriteString("\n")

	return sb.String()
}
