package encoding

// Encoder turns a value into a serialized document.
type Encoder interface {
	Encode(v any) ([]byte, error)
}
