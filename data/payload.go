package data

// Payload carries the bytes of a write as an ordered list of chunks.
// Callers that assemble an object from multiple parts must combine them
// before handing the payload to a store; adapters that cannot stream
// multi-chunk uploads reject them instead of truncating.
type Payload struct {
	Chunks [][]byte
}

// NewPayload creates a single-chunk payload from the given bytes.
func NewPayload(buffer []byte) Payload {
	return Payload{Chunks: [][]byte{buffer}}
}

// First returns the first chunk, or nil for an empty payload.
func (p Payload) First() []byte {
	if len(p.Chunks) == 0 {
		return nil
	}
	return p.Chunks[0]
}

// Combine flattens all chunks into a single contiguous buffer.
func (p Payload) Combine() []byte {
	var total int
	for _, chunk := range p.Chunks {
		total += len(chunk)
	}

	combined := make([]byte, 0, total)
	for _, chunk := range p.Chunks {
		combined = append(combined, chunk...)
	}

	return combined
}

// Size returns the combined length of all chunks in bytes.
func (p Payload) Size() int64 {
	var total int64
	for _, chunk := range p.Chunks {
		total += int64(len(chunk))
	}
	return total
}
