package adapter

import (
	"bytes"
	"embed"
	"io/fs"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"

	m "github.com/mouse-blink/stamp/internal/model"
)

//go:embed templates
var builtinTemplates embed.FS

// ErrUnknownLicense is returned when a license id has no built-in template.
var ErrUnknownLicense = errors.New("unknown license")

// HeaderContext carries the values substituted into header templates.
type HeaderContext struct {
	Holder string
	Years  string
	// License is either a built-in license id (see Licenses) or the raw
	// license text itself.
	License string
}

// TemplateProvider renders the header block for a file format.
type TemplateProvider interface {
	// Render returns the header as trimmed lines, without trailing blanks.
	Render(format m.Format, ctx HeaderContext) ([]string, error)
}

type templateProvider struct {
	fsys  fs.FS
	funcs template.FuncMap
}

// NewTemplateProvider returns a TemplateProvider backed by the embedded
// format and license templates.
func NewTemplateProvider() TemplateProvider {
	sub, err := fs.Sub(builtinTemplates, "templates")
	if err != nil {
		panic(err)
	}

	return NewTemplateProviderFS(sub)
}

// NewTemplateProviderFS returns a TemplateProvider reading format/<key>.tmpl
// and license/<id>.tmpl from fsys.
func NewTemplateProviderFS(fsys fs.FS) TemplateProvider {
	return &templateProvider{fsys: fsys, funcs: sprig.TxtFuncMap()}
}

// Licenses lists the ids of the built-in license templates.
func Licenses() []string {
	entries, err := fs.ReadDir(builtinTemplates, "templates/license")
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), ".tmpl"))
	}

	sort.Strings(ids)

	return ids
}

func (p *templateProvider) Render(format m.Format, ctx HeaderContext) ([]string, error) {
	licenseSrc, err := p.licenseSource(ctx.License)
	if err != nil {
		return nil, err
	}

	license, err := p.execute("license", licenseSrc, ctx)
	if err != nil {
		return nil, err
	}

	formatSrc, err := fs.ReadFile(p.fsys, "format/"+format.Key()+".tmpl")
	if err != nil {
		return nil, errors.Wrapf(err, "no header template for %s", format)
	}

	ctx.License = license

	header, err := p.execute(format.Key(), string(formatSrc), ctx)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(header, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// licenseSource resolves a license id to its template. Anything that does
// not look like an id is taken as raw license text.
func (p *templateProvider) licenseSource(license string) (string, error) {
	if strings.ContainsAny(license, " \t\n") {
		return license, nil
	}

	src, err := fs.ReadFile(p.fsys, "license/"+strings.ToLower(license)+".tmpl")
	if err != nil {
		return "", errors.Wrapf(ErrUnknownLicense, "%q", license)
	}

	return string(src), nil
}

func (p *templateProvider) execute(name, src string, ctx HeaderContext) (string, error) {
	tmpl, err := template.New(name).Funcs(p.funcs).Parse(src)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s template", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", errors.Wrapf(err, "failed to render %s template", name)
	}

	return buf.String(), nil
}
