package events

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
)

// reader consumes a BCS payload of fixed-width fields.
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) next(n int) ([]byte, error) {
	if len(r.buf)-r.off < n {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, r.off, io.ErrUnexpectedEOF)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) objectID() (model.ObjectID, error) {
	var id model.ObjectID
	b, err := r.next(model.AddressLength)
	if err != nil {
		return id, err
	}
	copy(id[:], b)
	return id, nil
}

func (r *reader) i32() (int32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil //nolint:gosec // two's complement reinterpretation
}

func (r *reader) u64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) u128() (model.Uint128, error) {
	b, err := r.next(16)
	if err != nil {
		return model.Uint128{}, err
	}
	return model.Uint128{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}, nil
}

// finish fails when the payload has unread bytes.
func (r *reader) finish() error {
	if rest := len(r.buf) - r.off; rest != 0 {
		return fmt.Errorf("%d trailing bytes", rest)
	}
	return nil
}
