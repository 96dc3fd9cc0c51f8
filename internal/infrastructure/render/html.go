package render

import (
	"bytes"
	"context"
	"embed"
	"html/template"
)

//go:embed templates/page.html
var templateFS embed.FS

// HTMLRenderer turns an assembled render tree into a self-contained printable
// HTML page. It is one possible backend; the tree itself stays
// backend-neutral.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates an HTML renderer with the embedded page shell
func NewHTMLRenderer() (*HTMLRenderer, error) {
	funcMap := template.FuncMap{
		"kind": func(n *Node) string { return string(n.Kind) },
		"attr": func(n *Node, key string) string { return n.Attr(key) },

		"safeCSS": safeCSS,
		"title":   titleCase,
	}

	tmpl, err := template.New("page.html").Funcs(funcMap).ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "failed to parse page template", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render executes the page shell over the assembled output
func (r *HTMLRenderer) Render(ctx context.Context, out *RenderOutput) (string, error) {
	if out == nil || out.Tree == nil {
		return "", NewRenderError(ErrCodeRenderFailed, "render output is nil", nil)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, out); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute page template", err)
	}
	return buf.String(), nil
}

// safeCSS marks a string as safe CSS, bypassing automatic escaping.
// SECURITY: Only use with trusted, non-user-generated content such as the
// configured branding colors.
func safeCSS(s string) template.CSS {
	return template.CSS(s)
}
