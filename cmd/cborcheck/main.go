// Command cborcheck is a manual test harness for the runtime and
// decoder packages: it encodes a single scalar, dumps a hex-encoded
// CBOR blob as a diagnostic tree, or round-trips one to check that
// decode-then-re-encode reproduces the original bytes.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/janjongboom/qcbor-go/decoder"
	"github.com/janjongboom/qcbor-go/runtime"
)

type encodeCmd struct {
	Value string `arg:"" help:"One scalar in u:/i:/s:/b: grammar, e.g. u:123, i:-5, s:\"hi\", b:0a0b0c"`
}

func (c *encodeCmd) Run() error {
	var buf [4096]byte
	enc := runtime.NewEncoder(buf[:])
	if err := encodeLiteral(enc, c.Value); err != nil {
		return err
	}
	out, err := enc.Finish()
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(out))
	return nil
}

type dumpCmd struct {
	Hex string `arg:"" help:"Hex-encoded CBOR blob to dump"`
}

func (c *dumpCmd) Run() error {
	b, err := hex.DecodeString(strings.TrimSpace(c.Hex))
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	_, err = dumpItem(os.Stdout, b, 0)
	return err
}

type roundtripCmd struct {
	Hex string `arg:"" help:"Hex-encoded CBOR blob to decode and re-encode"`
}

func (c *roundtripCmd) Run() error {
	original, err := hex.DecodeString(strings.TrimSpace(c.Hex))
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}

	var buf [65536]byte
	enc := runtime.NewEncoder(buf[:])
	if rest, err := reencodeItem(enc, original); err != nil {
		return fmt.Errorf("re-encode: %w", err)
	} else if len(rest) != 0 {
		return fmt.Errorf("re-encode: %d trailing byte(s) not consumed", len(rest))
	}
	reencoded, err := enc.Finish()
	if err != nil {
		return err
	}

	if hex.EncodeToString(reencoded) == hex.EncodeToString(original) {
		fmt.Println("identical")
		return nil
	}
	fmt.Printf("differs:\n  original:   %s\n  re-encoded: %s\n", hex.EncodeToString(original), hex.EncodeToString(reencoded))
	return nil
}

var cli struct {
	Encode    encodeCmd    `cmd:"" help:"Encode one scalar value and print its hex CBOR"`
	Dump      dumpCmd      `cmd:"" help:"Decode a hex CBOR blob and print a diagnostic tree"`
	Roundtrip roundtripCmd `cmd:"" help:"Decode then re-encode a hex CBOR blob, report whether it matches"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("cborcheck"),
		kong.Description("Manual encode/dump/roundtrip harness for the cbor runtime."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

// encodeLiteral parses value per the u:/i:/s:/b: grammar and appends
// the corresponding item to enc.
func encodeLiteral(enc *runtime.Encoder, value string) error {
	prefix, rest, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("missing kind prefix (want u:, i:, s: or b:): %q", value)
	}
	switch prefix {
	case "u":
		n, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return err
		}
		enc.AddUint(n)
	case "i":
		n, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return err
		}
		enc.AddInt(n)
	case "s":
		s, err := strconv.Unquote(rest)
		if err != nil {
			return fmt.Errorf("string literal must be double-quoted: %w", err)
		}
		enc.AddBytes(runtime.TextStringMajor, []byte(s))
	case "b":
		data, err := hex.DecodeString(rest)
		if err != nil {
			return err
		}
		enc.AddBytes(runtime.ByteStringMajor, data)
	default:
		return fmt.Errorf("unknown kind prefix %q", prefix)
	}
	return nil
}

// dumpItem decodes one complete item from b, writing an indented
// diagnostic line (and recursing into containers) to w, and returns
// the bytes left after it. Recursion here is fine — cborcheck is a
// host-side CLI, not the constrained core this module otherwise
// targets — but it still bounds itself against runtime.MaxNesting so
// adversarial input can't blow the stack.
func dumpItem(w *os.File, b []byte, depth int) ([]byte, error) {
	if depth > runtime.MaxNesting+1 {
		return b, fmt.Errorf("dump: nesting exceeds %d", runtime.MaxNesting)
	}
	indent := strings.Repeat("  ", depth)

	switch decoder.NextType(b) {
	case decoder.UintType:
		v, o, err := decoder.ReadUint64Bytes(b)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%suint %d\n", indent, v)
		return o, nil
	case decoder.IntType:
		v, o, err := decoder.ReadInt64Bytes(b)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%sint %d\n", indent, v)
		return o, nil
	case decoder.BinType:
		v, o, err := decoder.ReadBytesBytes(b, nil)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%sbytes %s\n", indent, hex.EncodeToString(v))
		return o, nil
	case decoder.StrType:
		v, o, err := decoder.ReadStringBytes(b)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%sstring %q\n", indent, v)
		return o, nil
	case decoder.BoolType:
		v, o, err := decoder.ReadBoolBytes(b)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%sbool %v\n", indent, v)
		return o, nil
	case decoder.NilType:
		o, err := decoder.ReadNilBytes(b)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%snull\n", indent)
		return o, nil
	case decoder.Float16Type, decoder.Float32Type, decoder.Float64Type:
		v, o, err := decoder.ReadFloatBytes(b)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%sfloat %v\n", indent, v)
		return o, nil
	case decoder.TagType:
		tag, o, err := decoder.ReadTagBytes(b)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%stag(%d)\n", indent, tag)
		return dumpItem(w, o, depth+1)
	case decoder.ArrayType:
		n, o, err := decoder.ReadArrayHeaderBytes(b)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%sarray(%d)\n", indent, n)
		for i := uint32(0); i < n; i++ {
			o, err = dumpItem(w, o, depth+1)
			if err != nil {
				return b, err
			}
		}
		return o, nil
	case decoder.MapType:
		n, o, err := decoder.ReadMapHeaderBytes(b)
		if err != nil {
			return b, err
		}
		fmt.Fprintf(w, "%smap(%d)\n", indent, n)
		for i := uint32(0); i < n; i++ {
			fmt.Fprintf(w, "%skey:\n", indent+"  ")
			if o, err = dumpItem(w, o, depth+2); err != nil {
				return b, err
			}
			fmt.Fprintf(w, "%sval:\n", indent+"  ")
			if o, err = dumpItem(w, o, depth+2); err != nil {
				return b, err
			}
		}
		return o, nil
	default:
		return b, fmt.Errorf("dump: unrecognized or unsupported item at offset")
	}
}

// reencodeItem decodes one complete item from b and replays it
// through enc, returning the bytes left after it. Like dumpItem it
// recurses rather than using an explicit work list, which is fine at
// the CLI layer.
func reencodeItem(enc *runtime.Encoder, b []byte) ([]byte, error) {
	switch decoder.NextType(b) {
	case decoder.UintType:
		v, o, err := decoder.ReadUint64Bytes(b)
		if err != nil {
			return b, err
		}
		enc.AddUint(v)
		return o, nil
	case decoder.IntType:
		v, o, err := decoder.ReadInt64Bytes(b)
		if err != nil {
			return b, err
		}
		enc.AddInt(v)
		return o, nil
	case decoder.BinType:
		v, o, err := decoder.ReadBytesBytes(b, nil)
		if err != nil {
			return b, err
		}
		enc.AddBytes(runtime.ByteStringMajor, v)
		return o, nil
	case decoder.StrType:
		v, o, err := decoder.ReadStringBytes(b)
		if err != nil {
			return b, err
		}
		enc.AddBytes(runtime.TextStringMajor, []byte(v))
		return o, nil
	case decoder.BoolType:
		v, o, err := decoder.ReadBoolBytes(b)
		if err != nil {
			return b, err
		}
		enc.AddBool(v)
		return o, nil
	case decoder.NilType:
		o, err := decoder.ReadNilBytes(b)
		if err != nil {
			return b, err
		}
		enc.AddNil()
		return o, nil
	case decoder.Float16Type, decoder.Float32Type, decoder.Float64Type:
		v, o, err := decoder.ReadFloatBytes(b)
		if err != nil {
			return b, err
		}
		enc.AddFloat64(v)
		return o, nil
	case decoder.TagType:
		tag, o, err := decoder.ReadTagBytes(b)
		if err != nil {
			return b, err
		}
		enc.AddTag(tag)
		return reencodeItem(enc, o)
	case decoder.ArrayType:
		n, o, err := decoder.ReadArrayHeaderBytes(b)
		if err != nil {
			return b, err
		}
		enc.OpenArray()
		for i := uint32(0); i < n; i++ {
			if o, err = reencodeItem(enc, o); err != nil {
				return b, err
			}
		}
		enc.CloseArray()
		return o, nil
	case decoder.MapType:
		n, o, err := decoder.ReadMapHeaderBytes(b)
		if err != nil {
			return b, err
		}
		enc.OpenMap()
		for i := uint32(0); i < n*2; i++ {
			if o, err = reencodeItem(enc, o); err != nil {
				return b, err
			}
		}
		enc.CloseMap()
		return o, nil
	default:
		return b, fmt.Errorf("reencode: unrecognized or unsupported item")
	}
}
