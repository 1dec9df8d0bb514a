package config

//go:generate go tool go-enum --marshal --names

// Rule extraction strategy used by the stylesheet parser.
// ENUM(regex, tokenizer)
type ExtractorMode int

// Specification of requested output type.
// ENUM(json, yaml)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
