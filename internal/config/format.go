package config

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format rewrites HCL source in canonical style: hclwrite spacing and
// indentation, at most one blank line in a row, and no blank lines just
// inside braces.
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing.
func Format(src []byte) []byte {
	formatted := hclwrite.Format(src)
	formatted = multipleBlankLines.ReplaceAll(formatted, []byte("\n\n"))
	formatted = blankLineAfterOpenBrace.ReplaceAll(formatted, []byte("{\n"))
	return blankLineBeforeCloseBrace.ReplaceAll(formatted, []byte("\n${1}"))
}
