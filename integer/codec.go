package integer

import (
	"io"

	"github.com/calebcase/decint/control"
)

// Schema for an integer field.
type Schema struct {
	Nullable bool
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes x as a single data block. A nil x is written as a null block
// if the schema is nullable.
func (e *Encoder) Encode(x *Int) (err error) {
	defer Error.WrapP(&err)

	if x == nil {
		if !e.schema.Nullable {
			return Error.New("null integer in non-nullable field")
		}

		return e.ce.Null()
	}

	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next integer. A null block decodes as nil if the schema is
// nullable. It returns io.EOF at the end of the stream.
func (d *Decoder) Decode() (x *Int, err error) {
	ok := d.cd.Next()
	if !ok && d.cd.Err() == nil {
		return nil, io.EOF
	}

	defer Error.WrapP(&err)

	if !ok {
		return nil, d.cd.Err()
	}

	t := d.cd.Type()

	switch {
	case t == control.Null:
		if !d.schema.Nullable {
			return nil, Error.New("null integer in non-nullable field")
		}

		return nil, nil
	case !t.IsData():
		return nil, Error.New("unexpected block: %s", t.Abbr)
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, err
	}

	x = &Int{}

	err = x.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}

	return x, nil
}
