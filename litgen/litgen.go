// Package litgen generates one nominal codec type per literal value.
//
// A union branch is identified by type when branches are declared in
// application code, and Go cannot bake a literal value into a type
// parameter, so the type has to be generated: given a name and a
// literal, litgen emits a zero-field struct whose methods inline the
// literal and delegate matching to the lit.Match helpers. Name and
// literal travel together in one Def, so a generated type can never
// bind more than one literal.
//
// Definitions come from a YAML manifest:
//
//	package: cfg
//	literals:
//	  - name: ModeAuto
//	    str: auto
//	  - name: Threshold
//	    float: 3.1
//
// Exactly one of bool, char, int, float, str per entry. Output is
// deterministic: defs are emitted in manifest order and the source is
// run through the goimports formatter.
//
// NaN and Inf float literals are rejected: literal floats match by ==,
// so a NaN codec could never accept anything, and the wire formats do
// not all carry infinities.
package litgen

import (
	"bytes"
	"fmt"
	"go/token"
	"math"
	"strconv"
	"text/template"
	"unicode/utf8"

	"golang.org/x/tools/imports"
	"gopkg.in/yaml.v3"

	"github.com/Neumenon/litwire/lit"
)

// Def defines one generated codec type: a name and the single literal
// it binds. Value must hold bool, rune, int64, float64, or string
// according to Kind.
type Def struct {
	Name  string
	Kind  lit.Kind
	Value any
}

// Manifest is the parsed form of a litgen YAML manifest.
type Manifest struct {
	Package string
	Defs    []Def
}

type manifestFile struct {
	Package  string          `yaml:"package"`
	Literals []manifestEntry `yaml:"literals"`
}

type manifestEntry struct {
	Name  string   `yaml:"name"`
	Bool  *bool    `yaml:"bool"`
	Char  *string  `yaml:"char"`
	Int   *int64   `yaml:"int"`
	Float *float64 `yaml:"float"`
	Str   *string  `yaml:"str"`
}

// ParseManifest parses a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var mf manifestFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("litgen: parse manifest: %w", err)
	}
	if mf.Package == "" {
		return nil, fmt.Errorf("litgen: manifest missing package")
	}
	if len(mf.Literals) == 0 {
		return nil, fmt.Errorf("litgen: manifest has no literals")
	}

	defs := make([]Def, 0, len(mf.Literals))
	for i, e := range mf.Literals {
		def, err := e.toDef()
		if err != nil {
			return nil, fmt.Errorf("litgen: literals[%d]: %w", i, err)
		}
		defs = append(defs, def)
	}
	return &Manifest{Package: mf.Package, Defs: defs}, nil
}

func (e manifestEntry) toDef() (Def, error) {
	if e.Name == "" {
		return Def{}, fmt.Errorf("missing name")
	}

	var (
		kind  lit.Kind
		value any
		count int
	)
	if e.Bool != nil {
		kind, value, count = lit.KindBool, *e.Bool, count+1
	}
	if e.Char != nil {
		if utf8.RuneCountInString(*e.Char) != 1 {
			return Def{}, fmt.Errorf("%s: char literal %q is not a single rune", e.Name, *e.Char)
		}
		ch, _ := utf8.DecodeRuneInString(*e.Char)
		kind, value, count = lit.KindChar, ch, count+1
	}
	if e.Int != nil {
		kind, value, count = lit.KindInt, *e.Int, count+1
	}
	if e.Float != nil {
		kind, value, count = lit.KindFloat, *e.Float, count+1
	}
	if e.Str != nil {
		kind, value, count = lit.KindStr, *e.Str, count+1
	}
	if count != 1 {
		return Def{}, fmt.Errorf("%s: want exactly one of bool/char/int/float/str, got %d", e.Name, count)
	}
	return Def{Name: e.Name, Kind: kind, Value: value}, nil
}

// tmplDef is a Def lowered to template inputs.
type tmplDef struct {
	Name    string
	Kind    string // lit.Kind constant name
	KindDoc string // kind name for the doc comment
	Write   string // lit.Writer method name
	Match   string // lit.Match* helper name
	Literal string // Go source form of the literal
}

var genTemplate = template.Must(template.New("litgen").Parse(`// Code generated by litgen. DO NOT EDIT.

package {{.Package}}

import "github.com/Neumenon/litwire/lit"
{{range .Defs}}
// {{.Name}} is a codec bound to the {{.KindDoc}} literal {{.Literal}}.
type {{.Name}} struct{}

func ({{.Name}}) Kind() lit.Kind { return lit.{{.Kind}} }

func ({{.Name}}) Encode(w lit.Writer) error { return w.{{.Write}}({{.Literal}}) }

func ({{.Name}}) Decode(r lit.Reader) (lit.Unit, error) {
	return lit.{{.Match}}(r, {{.Literal}})
}
{{end}}`))

// Generate emits one Go source file defining a codec type per def.
func Generate(pkg string, defs []Def) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("litgen: bad package name %q", pkg)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("litgen: no defs")
	}

	lowered := make([]tmplDef, 0, len(defs))
	names := make(map[string]bool, len(defs))
	for _, d := range defs {
		td, err := lower(d)
		if err != nil {
			return nil, err
		}
		if names[d.Name] {
			return nil, fmt.Errorf("litgen: duplicate type name %q", d.Name)
		}
		names[d.Name] = true
		lowered = append(lowered, td)
	}

	var buf bytes.Buffer
	err := genTemplate.Execute(&buf, struct {
		Package string
		Defs    []tmplDef
	}{Package: pkg, Defs: lowered})
	if err != nil {
		return nil, fmt.Errorf("litgen: render: %w", err)
	}

	out, err := imports.Process(pkg+"_lit.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("litgen: format: %w", err)
	}
	return out, nil
}

func lower(d Def) (tmplDef, error) {
	if !token.IsIdentifier(d.Name) {
		return tmplDef{}, fmt.Errorf("litgen: bad type name %q", d.Name)
	}

	td := tmplDef{Name: d.Name, KindDoc: d.Kind.String()}
	switch d.Kind {
	case lit.KindBool:
		v, ok := d.Value.(bool)
		if !ok {
			return tmplDef{}, badValue(d)
		}
		td.Kind, td.Write, td.Match = "KindBool", "WriteBool", "MatchBool"
		td.Literal = strconv.FormatBool(v)

	case lit.KindChar:
		v, ok := d.Value.(rune)
		if !ok {
			return tmplDef{}, badValue(d)
		}
		td.Kind, td.Write, td.Match = "KindChar", "WriteChar", "MatchChar"
		td.Literal = strconv.QuoteRune(v)

	case lit.KindInt:
		v, ok := d.Value.(int64)
		if !ok {
			return tmplDef{}, badValue(d)
		}
		td.Kind, td.Write, td.Match = "KindInt", "WriteInt", "MatchInt"
		td.Literal = strconv.FormatInt(v, 10)

	case lit.KindFloat:
		v, ok := d.Value.(float64)
		if !ok {
			return tmplDef{}, badValue(d)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return tmplDef{}, fmt.Errorf("litgen: %s: float literal %v is not matchable", d.Name, v)
		}
		td.Kind, td.Write, td.Match = "KindFloat", "WriteFloat", "MatchFloat"
		td.Literal = formatFloatLiteral(v)

	case lit.KindStr:
		v, ok := d.Value.(string)
		if !ok {
			return tmplDef{}, badValue(d)
		}
		td.Kind, td.Write, td.Match = "KindStr", "WriteStr", "MatchStr"
		td.Literal = strconv.Quote(v)

	default:
		return tmplDef{}, fmt.Errorf("litgen: %s: unknown kind %d", d.Name, d.Kind)
	}
	return td, nil
}

func badValue(d Def) error {
	return fmt.Errorf("litgen: %s: value %v (%T) does not fit kind %s", d.Name, d.Value, d.Value, d.Kind)
}

// formatFloatLiteral renders a float64 so it stays a float in Go
// source (a bare 3 would be an untyped int constant, which is fine for
// the helper calls but misleading to read).
func formatFloatLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !bytes.ContainsAny([]byte(s), ".eE") {
		s += ".0"
	}
	return s
}
