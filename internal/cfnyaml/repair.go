// Where: internal/cfnyaml/repair.go
// What: Best-effort textual repair pass over rendered template text.
// Why: Catch residual syntax the structural rewrite missed.
package cfnyaml

import "regexp"

// The patterns are deliberately narrow: plain identifiers and single-quoted
// strings only. Double-quoted or multi-line scalars that slip through the
// structural pass stay as emitted.
var (
	longRefPattern    = regexp.MustCompile(`Ref:\s+(\w+)`)
	longGetAttPattern = regexp.MustCompile(`Fn::GetAtt:\s+\[\s*'?(\w+)'?,\s*'?(\w+)'?\s*\]`)
	longSubPattern    = regexp.MustCompile(`Fn::Sub:\s+'(.+?)'`)

	shortRefPattern    = regexp.MustCompile(`!Ref\s+(\w+)`)
	shortGetAttPattern = regexp.MustCompile(`!GetAtt\s+(\w+)\.(\w+)`)
	shortSubPattern    = regexp.MustCompile(`!Sub\s+'(.+?)'`)
)

func repair(text string, shortForm bool) string {
	if shortForm {
		text = longRefPattern.ReplaceAllString(text, "!Ref $1")
		text = longGetAttPattern.ReplaceAllString(text, "!GetAtt $1.$2")
		text = longSubPattern.ReplaceAllString(text, "!Sub '$1'")
		return text
	}
	text = shortRefPattern.ReplaceAllString(text, "Ref: $1")
	text = shortGetAttPattern.ReplaceAllString(text, "Fn::GetAtt: [$1, $2]")
	text = shortSubPattern.ReplaceAllString(text, "Fn::Sub: '$1'")
	return text
}
