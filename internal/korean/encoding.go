package korean

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
)

// candidateEncoding pairs a decoder with the label reported in warnings.
type candidateEncoding struct {
	name string
	dec  func([]byte) (string, error)
}

// DecodeCascade turns raw bytes into a string. If hint names a known
// encoding and strict decode under it succeeds, that wins outright.
// Otherwise UTF-8, UTF-8 w/ BOM, CP949, EUC-KR, and UTF-16 (when a BOM is
// present) are tried in order under a strict error policy; the first
// success wins. If every strict attempt fails, UTF-8 is retried with
// lossy replacement and a warning is returned.
func DecodeCascade(data []byte, hint string) (string, string, error) {
	if hint != "" {
		if dec, ok := encodingByName(hint); ok {
			if s, err := dec(data); err == nil {
				return s, "", nil
			}
		}
	}

	for _, c := range candidates() {
		if s, err := c.dec(data); err == nil {
			return s, "", nil
		}
	}

	s := decodeUTF8Lossy(data)
	return s, "decode fallback: all strict encodings failed, used UTF-8 with replacement", nil
}

func candidates() []candidateEncoding {
	return []candidateEncoding{
		{"utf-8", decodeUTF8Strict},
		{"utf-8-bom", decodeUTF8BOM},
		{"cp949", decodeWith(korean.EUCKR.NewDecoder())}, // x/text ships CP949 under the EUC-KR umbrella with cp949 extensions
		{"euc-kr", decodeWith(korean.EUCKR.NewDecoder())},
		{"utf-16le", decodeUTF16(false)},
		{"utf-16be", decodeUTF16(true)},
	}
}

func encodingByName(name string) (func([]byte) (string, error), bool) {
	switch normalizeEncodingName(name) {
	case "utf-8", "utf8":
		return decodeUTF8Strict, true
	case "cp949", "euc-kr", "euckr":
		return decodeWith(korean.EUCKR.NewDecoder()), true
	case "utf-16", "utf-16le":
		return decodeUTF16(false), true
	case "utf-16be":
		return decodeUTF16(true), true
	}
	return nil, false
}

func normalizeEncodingName(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c == '_' {
			c = '-'
		}
		b = append(b, c)
	}
	return string(b)
}

func decodeUTF8Strict(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}

func decodeUTF8BOM(data []byte) (string, error) {
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		return "", errInvalidUTF8
	}
	trimmed := bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(trimmed) {
		return "", errInvalidUTF8
	}
	return string(trimmed), nil
}

func decodeWith(dec *encoding.Decoder) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		out, err := dec.Bytes(data)
		if err != nil {
			return "", err
		}
		// x/text decoders substitute U+FFFD for invalid input instead of
		// failing; treat any substitution as a strict-decode failure.
		if bytes.ContainsRune(out, utf8.RuneError) {
			return "", decodeError("invalid multi-byte sequence")
		}
		return string(out), nil
	}
}

func decodeUTF16(bigEndian bool) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		bom := []byte{0xFF, 0xFE}
		if bigEndian {
			bom = []byte{0xFE, 0xFF}
		}
		if !bytes.HasPrefix(data, bom) {
			return "", errNoBOM
		}
		body := data[2:]
		if len(body)%2 != 0 {
			return "", errOddUTF16Length
		}
		u16 := make([]uint16, 0, len(body)/2)
		for i := 0; i < len(body); i += 2 {
			if bigEndian {
				u16 = append(u16, uint16(body[i])<<8|uint16(body[i+1]))
			} else {
				u16 = append(u16, uint16(body[i+1])<<8|uint16(body[i]))
			}
		}
		return string(utf16.Decode(u16)), nil
	}
}

func decodeUTF8Lossy(data []byte) string {
	dec := unicode.UTF8.NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil || !utf8.Valid(out) {
		return strictSanitizeUTF8(data)
	}
	return string(out)
}

// strictSanitizeUTF8 replaces invalid byte sequences with the Unicode
// replacement character, guaranteeing valid UTF-8 output as a last resort.
func strictSanitizeUTF8(data []byte) string {
	var b bytes.Buffer
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		b.WriteRune(r)
		data = data[size:]
	}
	return b.String()
}

type decodeError string

func (e decodeError) Error() string { return string(e) }

const (
	errInvalidUTF8    decodeError = "invalid utf-8"
	errNoBOM          decodeError = "no byte-order mark"
	errOddUTF16Length decodeError = "odd-length utf-16 payload"
)
