package structs

// Containers exercises a slice of nested structs, cborgen's kindSlice
// over kindNested path.
type Containers struct {
	Items []Scalars `cbor:"items"`
}
