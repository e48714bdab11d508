package exportable

import "github.com/go-i2p/go-base64/lib/base64"

func Fuzz(data []byte) int {
	base64.Decode(data, false)
	base64.Decode(data, true)

	encoded := base64.EncodeToString(data, false)
	decoded, err := base64.DecodeString(encoded, false)
	if err != nil {
		panic("round trip rejected valid encoding: " + err.Error())
	}
	if len(decoded) != len(data) {
		panic("round trip changed payload length")
	}

	urlEncoded := base64.EncodeToString(data, true)
	if _, err := base64.DecodeString(urlEncoded, false); err != nil {
		panic("round trip rejected url-safe encoding: " + err.Error())
	}

	wrapped := base64.EncodeMIME(data)
	if _, err := base64.DecodeString(wrapped, true); err != nil {
		panic("round trip rejected wrapped encoding: " + err.Error())
	}

	return 0
}
