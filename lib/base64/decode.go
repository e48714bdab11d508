package base64

import (
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// DecodeString decodes the base64 text s back into bytes.
//
// Symbols from the standard and the URL-safe alphabet are accepted in any
// mix, and both "=" and "." are recognized as padding, so callers never
// need to know which variant produced the input. With stripLineBreaks set,
// every LF and CR is first removed from a private copy of s.
//
// A character outside both alphabets fails with ErrInvalidSymbol and no
// partial output is returned. After any stripping the input must be a
// positive multiple of 4 characters long, or decoding fails with
// ErrMalformedLength. The empty string decodes to empty output.
func DecodeString(s string, stripLineBreaks bool) ([]byte, error) {
	if len(s) == 0 {
		return []byte{}, nil
	}
	if stripLineBreaks {
		s = stripped(s)
	}
	if len(s) == 0 || len(s)%4 != 0 {
		log.WithFields(logger.Fields{
			"at":     "base64.DecodeString",
			"length": len(s),
			"reason": "length is not a positive multiple of 4",
		}).Debug("rejecting malformed base64 input")
		return nil, oops.Wrapf(ErrMalformedLength, "input length %d", len(s))
	}

	out := make([]byte, 0, len(s)/4*3)
	last := len(s) - 4

	for pos := 0; pos < last; pos += 4 {
		chunk, err := quadChunk(s, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, byte(chunk>>16), byte(chunk>>8), byte(chunk))
	}

	// The final quad is the only place padding is legal: a pad in the
	// fourth position leaves two trailing bytes, pads in the third and
	// fourth leave one. When the third symbol is a pad the fourth is not
	// examined.
	switch {
	case isPad(s[last+2]):
		i0, err := symbol(s, last)
		if err != nil {
			return nil, err
		}
		i1, err := symbol(s, last+1)
		if err != nil {
			return nil, err
		}
		chunk := uint(i0)<<6 | uint(i1)
		out = append(out, byte(chunk>>4))
	case isPad(s[last+3]):
		i0, err := symbol(s, last)
		if err != nil {
			return nil, err
		}
		i1, err := symbol(s, last+1)
		if err != nil {
			return nil, err
		}
		i2, err := symbol(s, last+2)
		if err != nil {
			return nil, err
		}
		chunk := uint(i0)<<12 | uint(i1)<<6 | uint(i2)
		out = append(out, byte(chunk>>10), byte(chunk>>2))
	default:
		chunk, err := quadChunk(s, last)
		if err != nil {
			return nil, err
		}
		out = append(out, byte(chunk>>16), byte(chunk>>8), byte(chunk))
	}

	return out, nil
}

// Decode decodes base64 text supplied as a byte slice. It is the view form
// of DecodeString and produces identical results for identical content.
func Decode(data []byte, stripLineBreaks bool) ([]byte, error) {
	return DecodeString(string(data), stripLineBreaks)
}

// symbol resolves the alphabet index of the character at offset pos.
func symbol(s string, pos int) (byte, error) {
	v := fromBase64[s[pos]]
	if v == invalidIndex {
		log.WithFields(logger.Fields{
			"at":     "base64.DecodeString",
			"offset": pos,
			"reason": "symbol outside both alphabets",
		}).Debug("rejecting invalid base64 input")
		return 0, oops.Wrapf(ErrInvalidSymbol, "symbol %q at offset %d", s[pos], pos)
	}
	return v, nil
}

// quadChunk combines the four symbols starting at pos into a 24-bit value.
func quadChunk(s string, pos int) (uint, error) {
	i0, err := symbol(s, pos)
	if err != nil {
		return 0, err
	}
	i1, err := symbol(s, pos+1)
	if err != nil {
		return 0, err
	}
	i2, err := symbol(s, pos+2)
	if err != nil {
		return 0, err
	}
	i3, err := symbol(s, pos+3)
	if err != nil {
		return 0, err
	}
	return uint(i0)<<18 | uint(i1)<<12 | uint(i2)<<6 | uint(i3), nil
}

// stripped returns a copy of s with every LF and CR removed.
func stripped(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' || c == '\r' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
