package main

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// initialisms are rendered upper case in Go identifiers.
var initialisms = map[string]string{
	"id":   "ID",
	"cml":  "CML",
	"atpc": "ATPC",
}

// goTitleCase converts "site_a_latitude" to "SiteALatitude".
func goTitleCase(name string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	}) {
		if up, ok := initialisms[strings.ToLower(part)]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

type levelData struct {
	Level   string
	Prefix  string
	Records []recordData
}

type recordData struct {
	ConstName string
	Name      string
	Comment   string
}

var namesTmpl = template.Must(template.New("names").Funcs(template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}).Parse(`// Code generated by cmlh5-defgen. DO NOT EDIT.

package {{.Package}}
{{if .Version}}
// DefinitionsVersion is the version of the definitions the constants were
// generated from.
const DefinitionsVersion = {{quote .Version}}
{{end}}
{{- range .Levels}}
{{if .Records}}
// Attribute names declared for the {{.Level}} level.
const (
{{- range .Records}}
	{{.ConstName}} = {{quote .Name}}{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
)
{{end}}
{{- end}}
`))

// Generate renders the attribute-name constants of defs as Go source.
func Generate(defs schema.Definitions, pkg string) (string, error) {
	data := struct {
		Package string
		Version string
		Levels  []levelData
	}{
		Package: pkg,
		Version: defs.Version,
	}

	for _, level := range schema.Levels() {
		ld := levelData{
			Level:  level.String(),
			Prefix: "Attr" + goTitleCase(level.String()),
		}
		for _, rec := range defs.Levels[level] {
			name := strings.TrimSpace(rec.Name)
			if name == "" {
				continue
			}
			desc := rec.Descriptor()
			comment := desc.Type.String()
			if desc.Unit != "" {
				comment += ", " + desc.Unit
			}
			if desc.Mandatory {
				comment += ", mandatory"
			}
			ld.Records = append(ld.Records, recordData{
				ConstName: ld.Prefix + goTitleCase(name),
				Name:      name,
				Comment:   comment,
			})
		}
		data.Levels = append(data.Levels, ld)
	}

	var b strings.Builder
	if err := namesTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
