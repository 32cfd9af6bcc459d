package tokenizer

// StreamEncoder implements a simple streaming encoder by buffering input
// bytes and greedily flushing any prefix that is guaranteed not to
// participate in future merges. The final maxTokenByteLen-1 bytes are held
// back as a safety margin so merges that span push boundaries are preserved.
// Basic mode only; regex mode re-segments text and cannot commit a prefix.
type StreamEncoder struct {
	tok         *Tokenizer
	tailReserve int

	buf    []byte
	outBuf []int
}

// NewStreamEncoder returns a stream encoder over the tokenizer's current
// merge table.
func (t *Tokenizer) NewStreamEncoder() *StreamEncoder {
	tail := 0
	if t.maxTokenByteLen > 0 {
		tail = t.maxTokenByteLen - 1
	}

	return &StreamEncoder{
		tok:         t,
		tailReserve: tail,
	}
}

// Push consumes the next chunk of raw bytes and emits any finalized tokens.
func (st *StreamEncoder) Push(chunk []byte) []int {
	st.outBuf = st.outBuf[:0]
	if len(chunk) > 0 {
		st.buf = append(st.buf, chunk...)
	}

	st.emitCommitted()

	if len(st.outBuf) == 0 {
		return nil
	}
	return append([]int(nil), st.outBuf...)
}

// Flush encodes whatever bytes remain in the internal buffer and resets the
// encoder for a new stream.
func (st *StreamEncoder) Flush() []int {
	st.outBuf = st.outBuf[:0]
	if len(st.buf) > 0 {
		st.outBuf = append(st.outBuf, st.tok.EncodeBytes(st.buf)...)
		st.buf = st.buf[:0]
	}

	if len(st.outBuf) == 0 {
		return nil
	}
	return append([]int(nil), st.outBuf...)
}

func (st *StreamEncoder) emitCommitted() {
	emitLimit := len(st.buf) - st.tailReserve
	if emitLimit <= 0 {
		return
	}

	tokens := st.tok.EncodeBytes(st.buf)

	consumed := 0
	for _, id := range tokens {
		tokLen := len(st.tok.vocab[id])
		if consumed+tokLen > emitLimit {
			break
		}

		st.outBuf = append(st.outBuf, id)
		consumed += tokLen
	}

	if consumed > 0 {
		st.buf = st.buf[consumed:]
	}
}
