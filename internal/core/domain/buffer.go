package domain

// Buffer is a growable text buffer.
type Buffer struct {
	data []byte
}

// Append adds s to the end of the buffer. Appending "" is a no-op.
func (b *Buffer) Append(s string) {
	if s == "" {
		return
	}
	if need := len(b.data) + len(s); need > cap(b.data) {
		data := make([]byte, len(b.data), max(minCapacity, 2*cap(b.data), need))
		copy(data, b.data)
		b.data = data
	}
	b.data = append(b.data, s...)
}

// AppendFlags adds flags separated from the previous content by one space.
// Appending "" is a no-op.
func (b *Buffer) AppendFlags(flags string) {
	if flags == "" {
		return
	}
	b.Append(" ")
	b.Append(flags)
}

// Len returns the length of the content in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// String returns the content.
func (b *Buffer) String() string {
	return string(b.data)
}
