// Package core implements cborgen's code generation: parse one Go
// source file, find its struct declarations, and for each emit a
// MarshalCBOR/UnmarshalCBOR pair driven by the runtime and decoder
// packages.
package core

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	tmplfs "github.com/janjongboom/qcbor-go/cborgen/templates"
)

// Options configures how generation runs.
type Options struct {
	Verbose bool
	// Structs, if non-empty, restricts generation to the named struct
	// types. Names must match Go type names exactly (no package
	// qualification).
	Structs []string
}

// Run generates CBOR code for a single Go source file, writing the
// result to outputPath.
func Run(inputPath, outputPath string, opts Options) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, inputPath, nil, parser.ParseComments)
	if err != nil {
		return err
	}
	return generateStructCode(file, outputPath, file.Name.Name, opts)
}

// fieldKind names the shape of a struct field cborgen knows how to
// encode. kindSlice carries a second fieldKind in elemKind for the
// element type.
type fieldKind int

const (
	kindInvalid fieldKind = iota
	kindString
	kindBytes
	kindBool
	kindInt
	kindUint
	kindFloat
	kindNested
	kindSlice
)

type fieldSpec struct {
	GoName   string
	CBORName string
	GoType   string // source-level type string, e.g. "int32"
	Kind     fieldKind
	ElemKind fieldKind
	ElemType string // for kindSlice: the source-level element type string
}

// CBORNameQuoted renders as a Go string literal for the template,
// since text/template has no built-in quoting verb.
func (f fieldSpec) CBORNameQuoted() string { return fmt.Sprintf("%q", f.CBORName) }

// EncodeBlock and DecodeBlock are computed once per fieldSpec by
// buildFieldCode and stashed here so the template can reference them
// directly without embedding Go control flow in template syntax.
type renderedField struct {
	fieldSpec
	EncodeBlock string
	DecodeBlock string
}

type structSpec struct {
	Name   string
	Fields []renderedField
}

var marshalTemplate = template.Must(template.ParseFS(tmplfs.FS, "marshal.go.tpl"))

func generateStructCode(file *ast.File, outputPath, pkg string, opts Options) error {
	var allowed map[string]struct{}
	if len(opts.Structs) > 0 {
		allowed = make(map[string]struct{}, len(opts.Structs))
		for _, name := range opts.Structs {
			if name = strings.TrimSpace(name); name != "" {
				allowed[name] = struct{}{}
			}
		}
	}

	var structs []structSpec
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			if len(allowed) > 0 {
				if _, ok := allowed[ts.Name.Name]; !ok {
					continue
				}
			}
			ss, err := buildStructSpec(ts.Name.Name, st)
			if err != nil {
				return fmt.Errorf("struct %s: %w", ts.Name.Name, err)
			}
			if len(ss.Fields) > 0 {
				structs = append(structs, ss)
				if opts.Verbose {
					fmt.Fprintf(os.Stderr, "cborgen: %s: %d field(s)\n", ss.Name, len(ss.Fields))
				}
			}
		}
	}

	if len(structs) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	data := struct {
		Package string
		Structs []structSpec
	}{Package: pkg, Structs: structs}
	if err := marshalTemplate.Execute(&buf, data); err != nil {
		return err
	}

	src, err := imports.Process(outputPath, buf.Bytes(), nil)
	if err != nil {
		if formatted, ferr := format.Source(buf.Bytes()); ferr == nil {
			src = formatted
		} else {
			// Neither goimports nor go/format could make sense of the
			// generated source; surface the original error, since the
			// raw buffer is more useful for debugging than a
			// format.Source failure on top of it.
			return err
		}
	}

	return os.WriteFile(outputPath, src, 0o644)
}

// buildStructSpec walks one struct's fields and resolves each to a
// fieldSpec cborgen knows how to render. Unexported fields and fields
// tagged `cbor:"-"` are skipped; a field of an unsupported type is a
// generation-time error, since cborgen fails closed rather than
// emit code that could panic at runtime on a type it guessed wrong
// about.
func buildStructSpec(name string, st *ast.StructType) (structSpec, error) {
	ss := structSpec{Name: name}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue // skip embedded/anonymous fields
		}
		goName := field.Names[0].Name
		if !ast.IsExported(goName) {
			continue
		}
		cborName, ignore := resolveTag(goName, field.Tag)
		if ignore {
			continue
		}
		fs, err := resolveFieldKind(goName, cborName, field.Type)
		if err != nil {
			return ss, err
		}
		enc, dec := buildFieldCode(fs)
		ss.Fields = append(ss.Fields, renderedField{fieldSpec: fs, EncodeBlock: enc, DecodeBlock: dec})
	}
	return ss, nil
}

// resolveTag applies cborgen's tag precedence: an explicit `cbor`
// tag wins, falling back to `json`, falling back to the Go field
// name. A tag value of "-" (in either namespace) drops the field.
func resolveTag(goName string, tag *ast.BasicLit) (cborName string, ignore bool) {
	if tag == nil {
		return goName, false
	}
	raw := tag.Value
	if len(raw) >= 2 && raw[0] == '`' && raw[len(raw)-1] == '`' {
		raw = raw[1 : len(raw)-1]
	}
	st := reflect.StructTag(raw)
	if v := st.Get("cbor"); v != "" {
		if v == "-" {
			return "", true
		}
		return strings.Split(v, ",")[0], false
	}
	if v := st.Get("json"); v != "" {
		if v == "-" {
			return "", true
		}
		return strings.Split(v, ",")[0], false
	}
	return goName, false
}

var intTypes = map[string]bool{"int": true, "int8": true, "int16": true, "int32": true, "int64": true}
var uintTypes = map[string]bool{"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true}
var floatTypes = map[string]bool{"float32": true, "float64": true}

func resolveFieldKind(goName, cborName string, expr ast.Expr) (fieldSpec, error) {
	fs := fieldSpec{GoName: goName, CBORName: cborName, GoType: exprString(expr)}

	switch t := expr.(type) {
	case *ast.Ident:
		switch {
		case t.Name == "string":
			fs.Kind = kindString
		case t.Name == "bool":
			fs.Kind = kindBool
		case intTypes[t.Name]:
			fs.Kind = kindInt
		case uintTypes[t.Name]:
			fs.Kind = kindUint
		case floatTypes[t.Name]:
			fs.Kind = kindFloat
		default:
			// A named type outside the builtin scalar set is assumed to
			// be a nested struct generating its own MarshalCBOR.
			fs.Kind = kindNested
		}
		return fs, nil

	case *ast.ArrayType:
		if t.Len != nil {
			return fieldSpec{}, fmt.Errorf("field %s: fixed-size arrays are not supported, use a slice", goName)
		}
		if elt, ok := t.Elt.(*ast.Ident); ok && elt.Name == "byte" {
			fs.Kind = kindBytes
			return fs, nil
		}
		elemSpec, err := resolveFieldKind(goName+"Elem", cborName, t.Elt)
		if err != nil {
			return fieldSpec{}, err
		}
		if elemSpec.Kind == kindSlice {
			return fieldSpec{}, fmt.Errorf("field %s: slices of slices are not supported", goName)
		}
		fs.Kind = kindSlice
		fs.ElemKind = elemSpec.Kind
		fs.ElemType = elemSpec.GoType
		return fs, nil

	default:
		return fieldSpec{}, fmt.Errorf("field %s: unsupported field type %s", goName, exprString(expr))
	}
}

func exprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.ArrayType:
		return "[]" + exprString(t.Elt)
	case *ast.StarExpr:
		return "*" + exprString(t.X)
	default:
		return ""
	}
}

// buildFieldCode renders the Go source for encoding and decoding one
// field, driven entirely by fs.Kind/ElemKind. The generated statements
// are gofmt-indifferent; imports.Process re-indents the whole file
// after all fields are assembled.
func buildFieldCode(fs fieldSpec) (encode, decode string) {
	switch fs.Kind {
	case kindString:
		encode = fmt.Sprintf("enc.AddBytes(runtime.TextStringMajor, []byte(v.%s))", fs.GoName)
		decode = fmt.Sprintf(`fv, o, ferr := decoder.ReadStringBytes(rest)
if ferr != nil {
	return b, decoder.WrapError(ferr, %q)
}
rest = o
v.%s = fv`, fs.CBORName, fs.GoName)

	case kindBytes:
		encode = fmt.Sprintf("enc.AddBytes(runtime.ByteStringMajor, v.%s)", fs.GoName)
		decode = fmt.Sprintf(`fv, o, ferr := decoder.ReadBytesBytes(rest, nil)
if ferr != nil {
	return b, decoder.WrapError(ferr, %q)
}
rest = o
v.%s = fv`, fs.CBORName, fs.GoName)

	case kindBool:
		encode = fmt.Sprintf("enc.AddBool(v.%s)", fs.GoName)
		decode = fmt.Sprintf(`fv, o, ferr := decoder.ReadBoolBytes(rest)
if ferr != nil {
	return b, decoder.WrapError(ferr, %q)
}
rest = o
v.%s = fv`, fs.CBORName, fs.GoName)

	case kindInt:
		encode = fmt.Sprintf("enc.AddInt(int64(v.%s))", fs.GoName)
		decode = fmt.Sprintf(`fv, o, ferr := decoder.ReadInt64Bytes(rest)
if ferr != nil {
	return b, decoder.WrapError(ferr, %q)
}
rest = o
v.%s = %s(fv)`, fs.CBORName, fs.GoName, fs.GoType)

	case kindUint:
		encode = fmt.Sprintf("enc.AddUint(uint64(v.%s))", fs.GoName)
		decode = fmt.Sprintf(`fv, o, ferr := decoder.ReadUint64Bytes(rest)
if ferr != nil {
	return b, decoder.WrapError(ferr, %q)
}
rest = o
v.%s = %s(fv)`, fs.CBORName, fs.GoName, fs.GoType)

	case kindFloat:
		encode = fmt.Sprintf("enc.AddFloat64(float64(v.%s))", fs.GoName)
		decode = fmt.Sprintf(`fv, o, ferr := decoder.ReadFloatBytes(rest)
if ferr != nil {
	return b, decoder.WrapError(ferr, %q)
}
rest = o
v.%s = %s(fv)`, fs.CBORName, fs.GoName, fs.GoType)

	case kindNested:
		encode = fmt.Sprintf("(&v.%s).MarshalCBOR(enc)", fs.GoName)
		decode = fmt.Sprintf(`o, ferr := (&v.%s).UnmarshalCBOR(rest)
if ferr != nil {
	return b, decoder.WrapError(ferr, %q)
}
rest = o`, fs.GoName, fs.CBORName)

	case kindSlice:
		elemEncode, elemAssign := sliceElemCode(fs)
		encode = fmt.Sprintf(`enc.OpenArray()
for _, item := range v.%s {
	%s
}
enc.CloseArray()`, fs.GoName, elemEncode)
		decode = fmt.Sprintf(`cnt, o, ferr := decoder.ReadArrayHeaderBytes(rest)
if ferr != nil {
	return b, decoder.WrapError(ferr, %q)
}
rest = o
items := make([]%s, 0, cnt)
for i := uint32(0); i < cnt; i++ {
	%s
}
v.%s = items`, fs.CBORName, fs.ElemType, elemAssign, fs.GoName)

	default:
		// resolveFieldKind never returns kindInvalid without an error,
		// so reaching here means a new kind was added without teaching
		// buildFieldCode about it.
		panic(fmt.Sprintf("cborgen: unhandled field kind for %s", fs.GoName))
	}
	return encode, decode
}

// sliceElemCode returns the loop body for encoding one "item" of a
// slice field, and the loop body for decoding one element into
// "items" (append-only; assumes ascending index i is irrelevant to
// CBOR array order, which it is).
func sliceElemCode(fs fieldSpec) (elemEncode, elemDecode string) {
	switch fs.ElemKind {
	case kindString:
		return "enc.AddBytes(runtime.TextStringMajor, []byte(item))",
			fmt.Sprintf(`fv, o, ferr := decoder.ReadStringBytes(rest)
	if ferr != nil {
		return b, decoder.WrapError(ferr, %q, i)
	}
	rest = o
	items = append(items, fv)`, fs.CBORName)
	case kindBytes:
		return "enc.AddBytes(runtime.ByteStringMajor, item)",
			fmt.Sprintf(`fv, o, ferr := decoder.ReadBytesBytes(rest, nil)
	if ferr != nil {
		return b, decoder.WrapError(ferr, %q, i)
	}
	rest = o
	items = append(items, fv)`, fs.CBORName)
	case kindBool:
		return "enc.AddBool(item)",
			fmt.Sprintf(`fv, o, ferr := decoder.ReadBoolBytes(rest)
	if ferr != nil {
		return b, decoder.WrapError(ferr, %q, i)
	}
	rest = o
	items = append(items, fv)`, fs.CBORName)
	case kindInt:
		return "enc.AddInt(int64(item))",
			fmt.Sprintf(`fv, o, ferr := decoder.ReadInt64Bytes(rest)
	if ferr != nil {
		return b, decoder.WrapError(ferr, %q, i)
	}
	rest = o
	items = append(items, %s(fv))`, fs.CBORName, fs.ElemType)
	case kindUint:
		return "enc.AddUint(uint64(item))",
			fmt.Sprintf(`fv, o, ferr := decoder.ReadUint64Bytes(rest)
	if ferr != nil {
		return b, decoder.WrapError(ferr, %q, i)
	}
	rest = o
	items = append(items, %s(fv))`, fs.CBORName, fs.ElemType)
	case kindFloat:
		return "enc.AddFloat64(float64(item))",
			fmt.Sprintf(`fv, o, ferr := decoder.ReadFloatBytes(rest)
	if ferr != nil {
		return b, decoder.WrapError(ferr, %q, i)
	}
	rest = o
	items = append(items, %s(fv))`, fs.CBORName, fs.ElemType)
	case kindNested:
		return "(&item).MarshalCBOR(enc)",
			fmt.Sprintf(`fv := new(%s)
	o, ferr := fv.UnmarshalCBOR(rest)
	if ferr != nil {
		return b, decoder.WrapError(ferr, %q, i)
	}
	rest = o
	items = append(items, *fv)`, fs.ElemType, fs.CBORName)
	default:
		panic(fmt.Sprintf("cborgen: unhandled slice element kind for %s", fs.GoName))
	}
}
