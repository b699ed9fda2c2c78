package templates

import "embed"

// FS exposes the codegen templates cborgen drives to emit each
// struct's MarshalCBOR/UnmarshalCBOR pair.
//
//go:embed *.go.tpl
var FS embed.FS
