// Package recipe describes a graph as data: an ordered list of registry
// generator steps, optional extra edges, and an optional layout section.
//
// Recipes are read from TOML (github.com/BurntSushi/toml) or YAML
// (gopkg.in/yaml.v3); the format follows the file extension.
//
//	directed = false
//	seed = 42
//	id_scheme = "decimal"
//
//	[[step]]
//	generator = "turan"
//	args = [6, 3]
//
//	[[edge]]
//	from = "0"
//	to = "5"
//
//	[layout]
//	kind = "circular"
//	width = 640
//	height = 480
//
// Steps are applied in order to one store through builder.Apply, so later
// generators continue numbering after earlier ones, exactly like composing
// constructors in code.
package recipe
