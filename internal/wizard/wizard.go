package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/opmodel/droidcraft/internal/output"
	"github.com/opmodel/droidcraft/internal/project"
)

// Options configures a wizard run.
type Options struct {
	// PackagePrefix is used to derive the default package name.
	PackagePrefix string

	// Input and Output default to the process terminal.
	Input  io.Reader
	Output io.Writer

	// Accessible switches huh to line-based prompts.
	Accessible bool
}

// CanPrompt reports whether both stdin and stdout are terminals.
func CanPrompt() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run asks every question in order, starting from base, and returns the
// collected configuration. Each question runs as its own form so defaults
// can depend on earlier answers.
func Run(ctx context.Context, base project.Config, opts Options) (project.Config, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	cfg := base
	theme := newTheme()
	currentStep := -1

	for _, q := range Questions(base, opts.PackagePrefix) {
		if q.Step != currentStep {
			currentStep = q.Step
			fmt.Fprintln(out, stepHeader(currentStep))
		}

		answer, field := buildField(q, &cfg)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(opts.Accessible).
			WithOutput(out)
		if opts.Input != nil {
			form = form.WithInput(opts.Input)
		}

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
				return project.Config{}, ErrCancelled
			}
			return project.Config{}, fmt.Errorf("wizard error: %w", err)
		}

		if err := Apply(&cfg, q.ID, answer()); err != nil {
			return project.Config{}, err
		}
		output.Debug("wizard answer", "question", q.ID, "value", answer())
	}

	return cfg, nil
}

// buildField creates the huh field for q and returns a getter for the
// answer in string form.
func buildField(q Question, cfg *project.Config) (func() string, huh.Field) {
	def := q.DefaultFor(*cfg)

	switch q.Type {
	case QuestionTypeSelect:
		selected := def
		opts := make([]huh.Option[string], len(q.Options))
		for i, o := range q.Options {
			key := o.Label
			if o.Desc != "" {
				key = o.Label + " - " + o.Desc
			}
			opts[i] = huh.NewOption(key, o.Value)
		}
		sel := huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(opts...).
			Value(&selected)
		return func() string { return selected }, sel

	case QuestionTypeConfirm:
		confirmed := def != "false"
		c := huh.NewConfirm().
			Title(q.Title).
			Description(q.Description).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed)
		return func() string { return strconv.FormatBool(confirmed) }, c

	default:
		var value string
		resolve := func() string {
			v := strings.TrimSpace(value)
			if v == "" {
				return def
			}
			return v
		}
		inp := huh.NewInput().
			Title(q.Title).
			Description(q.Description).
			Placeholder(def).
			Value(&value).
			Validate(func(string) error {
				candidate := *cfg
				return Apply(&candidate, q.ID, resolve())
			})
		return resolve, inp
	}
}

var (
	stepNumberStyle = output.StyleHeading
	stepTitleStyle  = lipgloss.NewStyle().Bold(true)
)

func stepHeader(i int) string {
	s := steps[i]
	return fmt.Sprintf("\n%s %s\n%s",
		stepNumberStyle.Render(fmt.Sprintf("Step %d/%d", i+1, len(steps))),
		stepTitleStyle.Render(s.Title),
		output.StyleDim.Render(s.Description),
	)
}

// newTheme creates a huh.Theme in the droidcraft palette.
func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := output.ColorAndroid
	accent := output.ColorCyan
	red := output.ColorBoldRed
	muted := output.ColorDimGray

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(primary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
