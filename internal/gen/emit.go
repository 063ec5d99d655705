package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
)

// Emit renders the generated source for a validated block-definition file
// and returns it gofmt-formatted.
func Emit(f *File) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	data := fileData{Package: f.Package}
	for _, b := range f.Blocks {
		data.Blocks = append(data.Blocks, newBlockData(b))
	}

	var buf bytes.Buffer
	if err := blockTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render blocks: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

type fileData struct {
	Package string
	Blocks  []blockData
}

type blockData struct {
	Name       string
	Arity      int
	TypeParams string // "T0, T1, T2"
	IdentList  string // "Generator, Forwarder, Stop"
	Params     string // "generator race.Op[T0], ..."
	Members    []memberData
}

type memberData struct {
	Ident string
	Param string
	Index int
	Type  string
}

func newBlockData(b Block) blockData {
	d := blockData{
		Name:      b.Name,
		Arity:     len(b.Identifiers),
		IdentList: strings.Join(b.Identifiers, ", "),
	}

	types := make([]string, len(b.Identifiers))
	params := make([]string, len(b.Identifiers))
	for i, ident := range b.Identifiers {
		typ := fmt.Sprintf("T%d", i)
		param := paramName(ident)
		types[i] = typ
		params[i] = fmt.Sprintf("%s race.Op[%s]", param, typ)
		d.Members = append(d.Members, memberData{
			Ident: ident,
			Param: param,
			Index: i,
			Type:  typ,
		})
	}
	d.TypeParams = strings.Join(types, ", ")
	d.Params = strings.Join(params, ", ")
	return d
}

// paramName derives an argument name from an identifier, avoiding keywords
// and the names the generated constructor already uses.
func paramName(ident string) string {
	name := strings.ToLower(ident[:1]) + ident[1:]
	if token.IsKeyword(name) || name == "opts" || name == "inner" || name == "err" {
		name = "op" + ident
	}
	return name
}

var blockTmpl = template.Must(template.New("blocks").Parse(`// Code generated by blockgen; DO NOT EDIT.

package {{.Package}}

import (
	"context"

	"github.com/cecil-the-coder/race-kit/pkg/race"
)
{{range .Blocks}}{{$b := .}}
// {{$b.Name}}ID identifies one member of the {{$b.Name}} block.
type {{$b.Name}}ID race.ID

// String returns the identifier's textual form.
func (id {{$b.Name}}ID) String() string {
	return string(id)
}

// Identifiers of the {{$b.Name}} block, in insertion order.
const (
{{- range $b.Members}}
	{{$b.Name}}{{.Ident}} {{$b.Name}}ID = "{{.Ident}}"
{{- end}}
)

// {{$b.Name}}Block links one operation per {{$b.Name}} identifier into a
// single first-wins race.
type {{$b.Name}}Block[{{$b.TypeParams}} any] struct {
	inner *race.Block{{$b.Arity}}[{{$b.TypeParams}}]
}

// Link{{$b.Name}} links the {{$b.Name}} operations in declaration order:
// {{$b.IdentList}}. That order is the block's insertion order and decides
// same-turn ties in favor of earlier members.
func Link{{$b.Name}}[{{$b.TypeParams}} any]({{$b.Params}}, opts ...race.Option) (*{{$b.Name}}Block[{{$b.TypeParams}}], error) {
	inner, err := race.Link{{$b.Arity}}(
{{- range $b.Members}}
		race.ID({{$b.Name}}{{.Ident}}), {{.Param}},
{{- end}}
		opts...,
	)
	if err != nil {
		return nil, err
	}
	return &{{$b.Name}}Block[{{$b.TypeParams}}]{inner: inner}, nil
}

// Turn performs one cooperative scheduling turn and reports whether the
// block has reached a terminal state.
func (b *{{$b.Name}}Block[{{$b.TypeParams}}]) Turn(ctx context.Context) bool {
	return b.inner.Turn(ctx)
}

// Await drives the block until one operation completes and returns the
// winning identifier with the populated result variant.
func (b *{{$b.Name}}Block[{{$b.TypeParams}}]) Await(ctx context.Context) ({{$b.Name}}ID, {{$b.Name}}Result[{{$b.TypeParams}}], error) {
	id, res, err := b.inner.Await(ctx)
	if err != nil {
		return "", {{$b.Name}}Result[{{$b.TypeParams}}]{}, err
	}
	return {{$b.Name}}ID(id), {{$b.Name}}Result[{{$b.TypeParams}}]{inner: res}, nil
}

// Discard abandons the block, tearing down every still-pending operation.
func (b *{{$b.Name}}Block[{{$b.TypeParams}}]) Discard() {
	b.inner.Discard()
}

// Winner returns the winning identifier and result variant once the block
// has completed.
func (b *{{$b.Name}}Block[{{$b.TypeParams}}]) Winner() ({{$b.Name}}ID, {{$b.Name}}Result[{{$b.TypeParams}}], bool) {
	id, res, ok := b.inner.Winner()
	if !ok {
		return "", {{$b.Name}}Result[{{$b.TypeParams}}]{}, false
	}
	return {{$b.Name}}ID(id), {{$b.Name}}Result[{{$b.TypeParams}}]{inner: res}, true
}

// {{$b.Name}}Result mirrors the {{$b.Name}} block's member structure on the
// output side. Exactly one branch is ever populated.
type {{$b.Name}}Result[{{$b.TypeParams}} any] struct {
	inner race.Result{{$b.Arity}}[{{$b.TypeParams}}]
}

// Which returns the identifier of the populated branch, or the empty
// identifier for the zero {{$b.Name}}Result.
func (r {{$b.Name}}Result[{{$b.TypeParams}}]) Which() {{$b.Name}}ID {
	switch r.inner.Which() {
{{- range $b.Members}}
	case {{.Index}}:
		return {{$b.Name}}{{.Ident}}
{{- end}}
	default:
		return ""
	}
}
{{range $b.Members}}
// {{.Ident}} returns the {{.Ident}} branch's output and whether it is the
// populated branch.
func (r {{$b.Name}}Result[{{$b.TypeParams}}]) {{.Ident}}() ({{.Type}}, bool) {
	return r.inner.V{{.Index}}()
}
{{end}}{{end}}`))
