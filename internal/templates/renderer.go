package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// FuncMap returns the template functions available to every template:
// the sprig text functions plus a few Gradle helpers.
func FuncMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["kotlinString"] = kotlinString
	funcs["groovyString"] = groovyString
	return funcs
}

// kotlinString quotes s as a Kotlin string literal.
func kotlinString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)
	return `"` + r.Replace(s) + `"`
}

// groovyString quotes s as a single-quoted Groovy string literal.
func groovyString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return `'` + r.Replace(s) + `'`
}

// Renderer executes embedded templates against one data value.
type Renderer struct {
	data any
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data any) *Renderer {
	return &Renderer{data: data}
}

// Render executes the named embedded template.
func (r *Renderer) Render(name TemplateName) (string, error) {
	var buf bytes.Buffer
	if err := android.ExecuteTemplate(&buf, string(name), r.data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// MustRender executes the named embedded template and panics on failure.
func (r *Renderer) MustRender(name TemplateName) string {
	out, err := r.Render(name)
	if err != nil {
		panic(err)
	}
	return out
}
