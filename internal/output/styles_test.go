package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "valid returns green", status: StatusValid, wantFG: ColorGreen},
		{name: "overwritten returns yellow", status: StatusOverwritten, wantFG: ColorYellow},
		{name: "invalid returns bold red", status: StatusInvalid, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Project generated")
	assert.Contains(t, result, "✔")
	assert.Contains(t, result, "Project generated")
}

func TestFormatVetCheck(t *testing.T) {
	t.Run("without detail has no trailing whitespace", func(t *testing.T) {
		stripped := stripAnsi(FormatVetCheck("Config file parsed", ""))
		assert.False(t, strings.HasSuffix(stripped, " "))
	})

	t.Run("details align", func(t *testing.T) {
		line1 := stripAnsi(FormatVetCheck("Config file found", "~/.droidcraft/config.yaml"))
		line2 := stripAnsi(FormatVetCheck("Preset exists", "xml"))

		assert.Equal(t,
			strings.Index(line1, "~/.droidcraft/config.yaml"),
			strings.Index(line2, "xml"),
			"detail text should align to same column")
	})
}

func TestFormatStatusLine(t *testing.T) {
	stripped := stripAnsi(FormatStatusLine("Demo.zip", StatusCreated))
	assert.Equal(t, "Demo.zip created", stripped)
}

// stripAnsi removes ANSI escape sequences for content assertions.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}
