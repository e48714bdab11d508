package base64

import (
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// StdAlphabet is the standard base64 alphabet from RFC 4648 section 4.
const StdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// URLAlphabet is the URL- and filename-safe alphabet from RFC 4648 section 5.
// "+" is replaced with "-" and "/" with "_".
const URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// Padding symbols. URL-safe output is padded with "." instead of "=" so that
// encoded text stays safe in URLs and filenames without escaping.
const (
	StdPadding = '='
	URLPadding = '.'
)

// Line lengths for the wrapped output formats.
const (
	PEMLineLength  = 64
	MIMELineLength = 76
)

const lineBreak = '\n'

// invalidIndex marks bytes that belong to neither alphabet.
const invalidIndex = 64

// fromBase64 maps every possible input byte to its 6-bit value, or to
// invalidIndex. The table holds the union of both alphabets ("+" and "-"
// resolve to 62, "/" and "_" to 63), so decoding accepts either variant
// without being told which one produced the input. Padding symbols are not
// in the table; they are recognized by position in the final quad only.
var fromBase64 [256]byte

func init() {
	for i := range fromBase64 {
		fromBase64[i] = invalidIndex
	}
	for i := 0; i < len(StdAlphabet); i++ {
		fromBase64[StdAlphabet[i]] = byte(i)
	}
	for i := 0; i < len(URLAlphabet); i++ {
		fromBase64[URLAlphabet[i]] = byte(i)
	}
}

// isPad reports whether c is the padding symbol of either alphabet.
func isPad(c byte) bool {
	return c == StdPadding || c == URLPadding
}
