package core

import (
	"regexp"

	"pkgforecaster/internal/types"
)

// instPattern matches "Inst <name> (<transition>)" anywhere in the text.
// RE2's \s is ASCII only, so the separators also admit vertical tab, NEL
// and Unicode spaces (\p{Z}).
var instPattern = regexp.MustCompile(`Inst[\s\x{0B}\x{85}\p{Z}]+([^\s\x{0B}\x{85}\p{Z}]+)[\s\x{0B}\x{85}\p{Z}]+\(([^)]+)\)`)

// ExtractRecords returns every update record found in text, in document
// order. Text without matches yields an empty slice.
func ExtractRecords(text string) []types.UpdateRecord {
	matches := instPattern.FindAllStringSubmatch(text, -1)
	records := make([]types.UpdateRecord, 0, len(matches))
	for _, match := range matches {
		records = append(records, types.UpdateRecord{
			Name:       match[1],
			Transition: match[2],
		})
	}
	return records
}
