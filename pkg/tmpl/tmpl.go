// Package tmpl provides template rendering with the sprig function library
// for the text and HTML exporters.
package tmpl

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/charmbracelet/x/ansi"
)

// padRight pads s with spaces to a display width of n.
func padRight(n int, s string) string {
	w := ansi.StringWidth(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

// funcs are layered over sprig's and win on name clashes.
var funcs = map[string]any{
	"padRight": padRight,
	"width":    ansi.StringWidth,
}

func textFuncs() template.FuncMap {
	fm := sprig.TxtFuncMap()
	for k, v := range funcs {
		fm[k] = v
	}
	return fm
}

func htmlFuncs() htmltemplate.FuncMap {
	fm := sprig.HtmlFuncMap()
	for k, v := range funcs {
		fm[k] = v
	}
	return fm
}

// Render executes a text template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions: the sprig library plus
//   - padRight: pad a string to a display width (e.g., padRight 6 .Symbol)
//   - width: display width of a string
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(textFuncs()).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// RenderHTML is Render for html/template: data is escaped for the context
// it lands in.
func RenderHTML(tmpl string, data any) (string, error) {
	t, err := htmltemplate.New("").Funcs(htmlFuncs()).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
