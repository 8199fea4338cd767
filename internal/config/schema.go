package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	schemaData "github.com/mantw/mantw-cli/schema"
	"github.com/xeipuuv/gojsonschema"
)

var ErrSchema = errors.New("schema validation failed")

var schemaLoader = gojsonschema.NewBytesLoader(schemaData.Bytes)

// ValidateAgainstSchema checks a merged, not yet resolved config.
func ValidateAgainstSchema(cfg Config) error {
	if len(schemaData.Bytes) == 0 {
		return errors.New("schema not embedded")
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(b))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.Field()+": "+e.Description())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}
