// Package base64 implements encoding and decoding of base64 text for both
// RFC 4648 alphabets, with optional line-wrapped output in the PEM (64
// column) and MIME (76 column) styles.
//
// Encoding is alphabet-specific: EncodeToString picks the standard or the
// URL-safe alphabet, and the URL-safe variant pads with "." instead of "="
// so its output needs no escaping in URLs or filenames. Decoding is
// alphabet-tolerant: a single reverse lookup table holds the union of both
// alphabets, and both padding symbols are accepted, so DecodeString handles
// output from either variant without being told which one produced it.
//
// Example usage:
//
//	encoded := base64.EncodeToString([]byte("Glib jocks quiz nymph to vex dwarf."), false)
//
//	decoded, err := base64.DecodeString(encoded, false)
//	if err != nil {
//	    // Handle error.
//	}
//
// Wrapped output inserts a line break after every 64 or 76 characters and
// round-trips through DecodeString with stripLineBreaks set:
//
//	armored := base64.EncodeMIME(payload)
//	payload, err = base64.DecodeString(armored, true)
//
// Decoding fails with ErrInvalidSymbol when the input contains a character
// from neither alphabet, and with ErrMalformedLength when the input, after
// any stripping, is not a positive multiple of 4 characters. Both are
// matched with errors.Is. All functions are pure and safe for concurrent
// use; the lookup tables are built once and never written again.
package base64
