package datetime

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/davejbax/go-datetime/internal/ecma119"
	"github.com/davejbax/go-datetime/internal/encode"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
	"time"
)

// RecordFormat selects one of the ECMA-119 binary timestamp encodings
type RecordFormat int

const (
	// RecordShort is the 7-byte numerical form: years since 1900, month, day, hour, minute and second as single
	// bytes, then the UTC offset in 15 minute intervals. It covers the years 1900 to 2155 at one second precision.
	RecordShort RecordFormat = iota

	// RecordLong is the 17-byte form: the date and time to the centisecond as ASCII digits, then the UTC offset in
	// 15 minute intervals. It covers the years 1 to 9999.
	RecordLong
)

// Size returns the encoded length of the format in bytes
func (f RecordFormat) Size() int {
	if f == RecordLong {
		return ecma119.LongDateTimeSize
	}

	return ecma119.DateTimeSize
}

func (f RecordFormat) String() string {
	if f == RecordLong {
		return "long"
	}

	return "short"
}

// Record is a [DateTime] encoded as a binary timestamp. Precision beyond the format's is dropped, and a UTC offset
// that is not a whole number of quarter hours is written as UTC.
type Record struct {
	format RecordFormat
	short  ecma119.DateTime
	long   ecma119.LongDateTime
}

// Record encodes d in the given format. It fails with [ErrRecordRange] if d's year cannot be represented, and with
// d's own error if d is invalid.
func (d DateTime) Record(format RecordFormat) (Record, error) {
	if !d.valid {
		return Record{}, d.Err()
	}

	r := Record{format: format}

	var err error
	if format == RecordLong {
		r.long, err = encode.AsLongDateTime(d.t)
	} else {
		r.short, err = encode.AsDateTime(d.t)
	}
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrRecordRange, err)
	}

	return r, nil
}

func (r Record) Format() RecordFormat {
	return r.format
}

func (r Record) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)

	var err error
	if r.format == RecordLong {
		err = struc.Pack(cw, &r.long)
	} else {
		err = struc.Pack(cw, &r.short)
	}
	if err != nil {
		return cw.Count(), fmt.Errorf("failed to pack %s date-time record: %w", r.format, err)
	}

	return cw.Count(), nil
}

func (r Record) MarshalBinary() ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, r.format.Size()))
	if _, err := r.WriteTo(buff); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// ReadRecord decodes a binary timestamp of the given format from r, using the default calendar
func ReadRecord(r io.Reader, format RecordFormat) (DateTime, error) {
	return defaultCalendar.ReadRecord(r, format)
}

// ReadRecord decodes a binary timestamp of the given format from r. The result displays in a fixed zone with the
// record's UTC offset. A record that does not hold a valid date and time (including the all-zero long record, which
// means "not specified") gives [ErrInvalidRecord].
func (c *Calendar) ReadRecord(r io.Reader, format RecordFormat) (DateTime, error) {
	var t time.Time
	var err error

	if format == RecordLong {
		var long ecma119.LongDateTime
		if err := struc.Unpack(r, &long); err != nil {
			return DateTime{}, fmt.Errorf("failed to unpack long date-time record: %w", err)
		}
		t, err = long.Time()
	} else {
		var short ecma119.DateTime
		if err := struc.Unpack(r, &short); err != nil {
			return DateTime{}, fmt.Errorf("failed to unpack short date-time record: %w", err)
		}
		t, err = short.Time()
	}

	if errors.Is(err, ecma119.ErrMalformed) {
		return DateTime{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	} else if err != nil {
		return DateTime{}, err
	}

	return DateTime{t: t, valid: true, cal: c}, nil
}
