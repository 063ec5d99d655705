package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// EmitArities renders the generic containers for every arity from 1 up to
// max: BlockN, LinkN and ResultN. pkg/race commits this output as
// block_gen.go; regenerating with a larger max raises the ceiling for named
// block definitions.
func EmitArities(pkg string, max int) ([]byte, error) {
	if !isIdent(pkg) || isExported(pkg) {
		return nil, &ConfigError{Field: "package", Message: "must be a lower-case Go package name"}
	}
	if max < 1 {
		return nil, &ConfigError{Field: "arities", Message: "maximum arity must be at least 1"}
	}

	data := arityFileData{Package: pkg, Max: max}
	for n := 1; n <= max; n++ {
		data.Arities = append(data.Arities, newArityData(n))
	}

	var buf bytes.Buffer
	if err := arityTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render arities: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

type arityFileData struct {
	Package string
	Max     int
	Arities []arityData
}

type arityData struct {
	N          int
	Noun       string // "1 operation" / "3 operations"
	TypeParams string // "T0, T1, T2"
	LinkParams string // "id0 ID, op0 Op[T0], ..."
	Branches   []branchData
}

type branchData struct {
	Index int
	Type  string
}

func newArityData(n int) arityData {
	d := arityData{N: n, Noun: fmt.Sprintf("%d operations", n)}
	if n == 1 {
		d.Noun = "1 operation"
	}

	types := make([]string, n)
	params := make([]string, n)
	for i := 0; i < n; i++ {
		types[i] = fmt.Sprintf("T%d", i)
		params[i] = fmt.Sprintf("id%d ID, op%d Op[T%d]", i, i, i)
		d.Branches = append(d.Branches, branchData{Index: i, Type: types[i]})
	}
	d.TypeParams = strings.Join(types, ", ")
	d.LinkParams = strings.Join(params, ", ")
	return d
}

var arityTmpl = template.Must(template.New("arities").Parse(`// Code generated by blockgen -arities {{.Max}} -package {{.Package}}; DO NOT EDIT.

package {{.Package}}

import "context"
{{range .Arities}}{{$a := .}}
// Block{{$a.N}} is a linked block of {{$a.Noun}} raced until one completes.
type Block{{$a.N}}[{{$a.TypeParams}} any] struct {
	eng engine
	res Result{{$a.N}}[{{$a.TypeParams}}]
}

// Link{{$a.N}} links {{$a.Noun}} into a block. The pair order is the block's
// insertion order and decides same-turn ties in favor of earlier pairs.
// The returned block has not been started; no operation is polled before
// the first Turn or Await call.
func Link{{$a.N}}[{{$a.TypeParams}} any]({{$a.LinkParams}}, opts ...Option) (*Block{{$a.N}}[{{$a.TypeParams}}], error) {
	b := &Block{{$a.N}}[{{$a.TypeParams}}]{}
	slots := []slot{
{{- range $a.Branches}}
		newSlot(id{{.Index}}, op{{.Index}}, func(v {{.Type}}) { b.res = Result{{$a.N}}[{{$a.TypeParams}}]{branch: {{.Index}}, valid: true, v{{.Index}}: v} }),
{{- end}}
	}
	if err := initEngine(&b.eng, slots, opts); err != nil {
		return nil, err
	}
	return b, nil
}

// Turn performs one cooperative scheduling turn and reports whether the
// block has reached a terminal state.
func (b *Block{{$a.N}}[{{$a.TypeParams}}]) Turn(ctx context.Context) bool {
	return b.eng.turn(ctx)
}

// Await drives the block until one operation completes and returns the
// winning identifier with the populated result variant. Cancelling ctx
// abandons the block and tears down every pending operation. Await on a
// completed block returns the same winner again.
func (b *Block{{$a.N}}[{{$a.TypeParams}}]) Await(ctx context.Context) (ID, Result{{$a.N}}[{{$a.TypeParams}}], error) {
	if err := b.eng.await(ctx); err != nil {
		return "", Result{{$a.N}}[{{$a.TypeParams}}]{}, err
	}
	id, _ := b.eng.winnerID()
	return id, b.res, nil
}

// Discard abandons the block without a winner, tearing down every
// still-pending operation exactly once.
func (b *Block{{$a.N}}[{{$a.TypeParams}}]) Discard() {
	b.eng.discard()
}

// Winner returns the winning identifier and result variant once the block
// has completed.
func (b *Block{{$a.N}}[{{$a.TypeParams}}]) Winner() (ID, Result{{$a.N}}[{{$a.TypeParams}}], bool) {
	id, ok := b.eng.winnerID()
	if !ok {
		return "", Result{{$a.N}}[{{$a.TypeParams}}]{}, false
	}
	return id, b.res, true
}

// Result{{$a.N}} holds the output of whichever member of a {{$a.N}}-operation block
// completed. Exactly one branch is ever populated.
type Result{{$a.N}}[{{$a.TypeParams}} any] struct {
	branch int
	valid  bool
{{- range $a.Branches}}
	v{{.Index}} {{.Type}}
{{- end}}
}

// Which returns the insertion position of the populated branch, or -1 for
// the zero Result{{$a.N}}.
func (r Result{{$a.N}}[{{$a.TypeParams}}]) Which() int {
	if !r.valid {
		return -1
	}
	return r.branch
}
{{range $a.Branches}}
// V{{.Index}} returns branch {{.Index}}'s output and whether it is the populated branch.
func (r Result{{$a.N}}[{{$a.TypeParams}}]) V{{.Index}}() ({{.Type}}, bool) {
	if !r.valid || r.branch != {{.Index}} {
		var zero {{.Type}}
		return zero, false
	}
	return r.v{{.Index}}, true
}
{{end}}{{end}}`))
