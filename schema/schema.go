package schema

import _ "embed"

//go:embed config.schema.json
var Bytes []byte
