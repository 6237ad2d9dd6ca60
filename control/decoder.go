package control

import (
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// read fills buf from the input stream.
func (d *decoder) read(buf []byte) (err error) {
	_, err = io.ReadFull(d.r, buf)
	if err != nil {
		return Error.Wrap(err)
	}

	d.consumed += uint64(len(buf))

	return nil
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if size > math.MaxInt64 {
		return Error.New("invalid: seek=%d too large", size)
	}

	var n int64

	if d.s != nil {
		_, err = d.s.Seek(int64(size), io.SeekCurrent)
		n = int64(size)
	} else {
		n, err = io.CopyN(io.Discard, d.r, int64(size))
	}
	if err != nil {
		return Error.Wrap(err)
	}

	d.consumed += uint64(n)

	return nil
}

// skip moves past any unread bytes of the current block.
func (d *decoder) skip() (err error) {
	if d.finished || d.t == Unknown {
		return nil
	}

	size, err := d.Size()
	if err != nil {
		return err
	}

	// Data + 1 and Data + 2 carry their first byte in the control block.
	switch d.t {
	case Data1, Data2:
		size--
	}

	err = d.seek(size)
	if err != nil {
		return err
	}

	d.finished = true

	return nil
}

// Next advances to the next block. It returns false at the end of the stream
// or on error (see Err).
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	d.err = d.skip()
	if d.err != nil {
		return false
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = Error.Wrap(err)
		}

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current block.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := int(d.value[0]&d.t.Mask) + 1

		sb := make([]byte, sizeSize)
		err = d.read(sb)
		if err != nil {
			return 0, err
		}

		var size uint64
		for _, b := range sb {
			size = size<<8 | uint64(b)
		}

		if size >= math.MaxInt {
			return 0, Error.New("invalid: size=%d+1 too large", size)
		}

		d.size = size + 1
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case Data1, Data2:
		d.data = make([]byte, d.size)
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
		if err != nil {
			return nil, err
		}
	case DataSize, DataSizeSize:
		// The size is untrusted: let the stream bound the allocation.
		d.data, err = io.ReadAll(io.LimitReader(d.r, int64(d.size)))
		d.consumed += uint64(len(d.data))
		if err != nil {
			return nil, Error.Wrap(err)
		}

		if uint64(len(d.data)) != d.size {
			return nil, Error.Wrap(io.ErrUnexpectedEOF)
		}
	}

	d.finished = true

	return d.data, nil
}
