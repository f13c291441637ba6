// Where: internal/cfnyaml/intrinsics.go
// What: CloudFormation intrinsic function name and tag tables.
// Why: Single source of truth for short-form/long-form mapping.
package cfnyaml

// IntrinsicNames lists the long-form keys the normalizer recognizes, in the
// order CloudFormation documents them.
var IntrinsicNames = []string{
	"Ref",
	"Fn::GetAtt",
	"Fn::Sub",
	"Fn::Join",
	"Fn::Select",
	"Fn::ImportValue",
	"Fn::GetAZs",
	"Fn::Split",
	"Fn::FindInMap",
	"Fn::Base64",
	"Fn::Cidr",
	"Fn::Transform",
	"Fn::If",
	"Fn::Equals",
	"Fn::Not",
	"Fn::And",
	"Fn::Or",
}

// longToTag maps long-form keys to their short-form YAML tags.
var longToTag = map[string]string{
	"Ref":             "!Ref",
	"Fn::GetAtt":      "!GetAtt",
	"Fn::Sub":         "!Sub",
	"Fn::Join":        "!Join",
	"Fn::Select":      "!Select",
	"Fn::ImportValue": "!ImportValue",
	"Fn::GetAZs":      "!GetAZs",
	"Fn::Split":       "!Split",
	"Fn::FindInMap":   "!FindInMap",
	"Fn::Base64":      "!Base64",
	"Fn::Cidr":        "!Cidr",
	"Fn::Transform":   "!Transform",
	"Fn::If":          "!If",
	"Fn::Equals":      "!Equals",
	"Fn::Not":         "!Not",
	"Fn::And":         "!And",
	"Fn::Or":          "!Or",
}

// tagToLong maps short-form YAML tags back to long-form keys. !Condition is
// accepted on parse even though it is not one of the recognized intrinsics;
// it always renders as an ordinary key.
var tagToLong = map[string]string{
	"!Condition": "Condition",
}

func init() {
	for long, tag := range longToTag {
		tagToLong[tag] = long
	}
}

// IsIntrinsic reports whether name is one of the recognized long-form
// intrinsic function keys.
func IsIntrinsic(name string) bool {
	_, ok := longToTag[name]
	return ok
}
