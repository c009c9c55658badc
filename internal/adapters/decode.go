package adapters

import "strings"

// DecodeText converts captured simulator output to text. Invalid UTF-8
// sequences are replaced, never rejected.
func DecodeText(data []byte) string {
	return strings.ToValidUTF8(string(data), "\uFFFD")
}
