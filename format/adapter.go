package format

// Marshal runs encode against a fresh Writer and returns the bytes it produced.
// An error from encode is returned as-is and no bytes are returned.
func Marshal(encode func(*Writer) error) ([]byte, error) {
	w := NewWriter()
	if err := encode(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal runs decode over raw. The decoder must consume the whole buffer:
// leftover bytes are reported as ErrTrailingData.
func Unmarshal(raw []byte, decode func(*Reader) error) error {
	r := NewReader(raw)
	if err := decode(r); err != nil {
		return err
	}
	if !r.Empty() {
		return ErrTrailingData
	}
	return nil
}
