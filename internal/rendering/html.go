package rendering

import (
	"html/template"
	"strings"

	"github.com/reco/reco-builder/internal/templates"
)

// Mode selects the frame a layout tree is rendered into. The section markup
// is identical in both modes; that is what keeps preview and export WYSIWYG.
type Mode string

const (
	// Preview renders a fluid frame with editing affordances for the UI.
	Preview Mode = "preview"
	// Export renders a detached fixed-width page frame for capture.
	Export Mode = "export"
)

// A4 frame dimensions used by the export mode, mirrored by the exporter.
const (
	ExportPageWidth  = "210mm"
	ExportPageHeight = "297mm"
	ExportPadding    = "20mm"
)

// pageData feeds the page template. Mode is a plain string so template
// equality checks against literals work.
type pageData struct {
	Mode string
	Tree *templates.LayoutTree
}

// pageTemplate renders both document kinds: sections carry kind-specific
// classes and the stylesheet handles the differences. Theme values are
// compile-time constants from the registry, so they are safe to emit as CSS.
var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"css": func(s string) template.CSS { return template.CSS(s) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body {
  margin: 0;
  font-family: {{css .Tree.Theme.FontFamily}};
  color: {{css .Tree.Theme.TextColor}};
  line-height: 1.6;
  background: #ffffff;
}
{{if eq .Mode "export"}}
.page {
  width: {{css "` + ExportPageWidth + `"}};
  min-height: {{css "` + ExportPageHeight + `"}};
  padding: {{css "` + ExportPadding + `"}};
  box-sizing: border-box;
  background: #ffffff;
}
{{else}}
.page { max-width: 900px; margin: 0 auto; padding: 24px; background: #ffffff; }
{{end}}
.sec { margin-bottom: 25px; }
.sec h2 {
  color: {{css .Tree.Theme.AccentColor}};
  font-size: 18px;
  margin: 0 0 15px 0;
  {{if .Tree.Theme.UpperHeadings}}text-transform: uppercase; letter-spacing: 1px;{{end}}
  {{if .Tree.Theme.HeadingRule}}border-bottom: 2px solid {{css .Tree.Theme.AccentColor}}; padding-bottom: 5px;{{end}}
}
.sec-header {
  {{if .Tree.Theme.HeaderBG}}
  background: {{css .Tree.Theme.HeaderBG}};
  color: {{css .Tree.Theme.HeaderText}};
  padding: 30px;
  {{if eq .Mode "export"}}margin: -` + ExportPadding + ` -` + ExportPadding + ` 20px -` + ExportPadding + `;{{else}}margin-bottom: 20px;{{end}}
  {{else}}
  color: {{css .Tree.Theme.HeaderText}};
  border-bottom: 2px solid {{css .Tree.Theme.AccentColor}};
  padding-bottom: 12px;
  margin-bottom: 20px;
  {{end}}
  {{if .Tree.Theme.HeaderCenter}}text-align: center;{{end}}
}
.sec-header h1 { margin: 0; font-size: 28px; }
.sec-header .tag { margin-right: 16px; font-size: 14px; }
.item { margin-bottom: 14px; }
.item .row { display: flex; justify-content: space-between; align-items: baseline; }
.item h3 { margin: 0; font-size: 16px; }
.item .subtitle { color: {{css .Tree.Theme.AccentColor}}; font-weight: 600; }
.item .meta { color: {{css .Tree.Theme.MutedColor}}; font-size: 14px; }
.item .body { white-space: pre-wrap; text-align: justify; }
{{if .Tree.Theme.TagPills}}
.item .tag {
  display: inline-block;
  background: {{css .Tree.Theme.AccentColor}};
  color: #ffffff;
  border-radius: 10px;
  padding: 2px 10px;
  margin: 0 6px 6px 0;
  font-size: 13px;
}
{{else}}
.item .tag { margin-right: 10px; }
{{end}}
.sec-date { text-align: right; color: {{css .Tree.Theme.MutedColor}}; margin-bottom: 30px; }
.sec-recipient { margin-bottom: 30px; font-weight: bold; }
.sec-salutation { margin-bottom: 25px; }
.sec-opening .body, .sec-body .body, .sec-closing .body { margin-bottom: 20px; }
.sec-signature { margin-top: 40px; }
.sec-signature h3 { margin-top: 30px; }
</style>
</head>
<body class="{{.Mode}}">
<div class="page">
{{- range .Tree.Sections}}
<div class="sec sec-{{.Kind}}"{{if eq $.Mode "preview"}} data-editable="{{.Kind}}"{{end}}>
{{- if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{- range .Items}}
<div class="item">
{{- if or .Title .Meta}}
<div class="row">
{{- if .Title}}{{if eq $.Mode "preview"}}<h3 class="hoverable">{{.Title}}</h3>{{else}}<h3>{{.Title}}</h3>{{end}}{{end}}
{{- if .Meta}}<span class="meta">{{.Meta}}</span>{{end}}
</div>
{{- end}}
{{- if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}
{{- if .Body}}<div class="body">{{.Body}}</div>{{end}}
{{- if .Tags}}<div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
</div>
{{- end}}
</div>
{{- end}}
</div>
</body>
</html>
`))

// RenderHTML paints a layout tree into a full HTML document for the given
// mode. Preview and export share the section markup; only the outer frame
// and editing affordances differ.
func RenderHTML(tree *templates.LayoutTree, mode Mode) (string, error) {
	if tree == nil {
		return "", &RenderError{Message: "nil layout tree"}
	}
	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, pageData{Mode: string(mode), Tree: tree}); err != nil {
		return "", &RenderError{Message: "failed to execute page template", Cause: err}
	}
	return sb.String(), nil
}
