// Package export encodes rewrite results for download.
package export

// Filename is the suggested name for a downloaded rewrite.
const Filename = "prompt_mirror_rewrite.txt"

// ToTxt returns the rewritten prompt as UTF-8 encoded bytes.
func ToTxt(rewrite string) []byte {
	return []byte(rewrite)
}
