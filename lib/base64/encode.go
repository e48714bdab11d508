package base64

import (
	"strings"
)

// EncodeToString encodes data using the standard alphabet, or the URL- and
// filename-safe alphabet when urlSafe is set.
//
// Encoding never fails: every byte sequence, including the empty one, has
// exactly one encoding, ceil(len(data)/3)*4 characters long. Input whose
// length is not a multiple of 3 is padded with two symbols (one leftover
// byte) or one symbol (two leftover bytes).
func EncodeToString(data []byte, urlSafe bool) string {
	alphabet := StdAlphabet
	pad := byte(StdPadding)
	if urlSafe {
		alphabet = URLAlphabet
		pad = URLPadding
	}

	full := len(data) - len(data)%3
	out := make([]byte, 0, (len(data)+2)/3*4)

	for pos := 0; pos < full; pos += 3 {
		chunk := uint(data[pos])<<16 | uint(data[pos+1])<<8 | uint(data[pos+2])
		out = append(out,
			alphabet[chunk>>18],
			alphabet[chunk>>12&0x3f],
			alphabet[chunk>>6&0x3f],
			alphabet[chunk&0x3f])
	}

	switch len(data) - full {
	case 2:
		chunk := uint(data[full])<<8 | uint(data[full+1])
		out = append(out,
			alphabet[chunk>>10],
			alphabet[chunk>>4&0x3f],
			alphabet[chunk<<2&0x3f],
			pad)
	case 1:
		chunk := uint(data[full])
		out = append(out,
			alphabet[chunk>>2],
			alphabet[chunk<<4&0x3f],
			pad,
			pad)
	}

	return string(out)
}

// EncodeWrapped encodes data with the standard alphabet and inserts a line
// break after every width characters. The final character never carries a
// trailing break, so removing every line break recovers the EncodeToString
// output exactly. A non-positive width disables wrapping.
func EncodeWrapped(data []byte, width int) string {
	return insertLineBreaks(EncodeToString(data, false), width)
}

// EncodePEM encodes data in the PEM style: standard alphabet, 64-column lines.
func EncodePEM(data []byte) string {
	return EncodeWrapped(data, PEMLineLength)
}

// EncodeMIME encodes data in the MIME style: standard alphabet, 76-column lines.
func EncodeMIME(data []byte) string {
	return EncodeWrapped(data, MIMELineLength)
}

func insertLineBreaks(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + (len(s)-1)/width)
	for start := 0; start < len(s); start += width {
		end := start + width
		if end > len(s) {
			end = len(s)
		}
		if start > 0 {
			b.WriteByte(lineBreak)
		}
		b.WriteString(s[start:end])
	}
	return b.String()
}
