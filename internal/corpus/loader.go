package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/items.json
var itemsJSON []byte

// Load decodes the embedded study corpus. The raw JSON is validated
// against the corpus schema before decoding, so shape errors surface
// here rather than as zero-valued items deep inside the curriculum.
func Load() ([]StudyItem, error) {
	return decode(itemsJSON)
}

func decode(raw []byte) ([]StudyItem, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile corpus schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("corpus failed schema validation: %w", err)
	}

	var items []StudyItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}

	return items, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal([]byte(itemsSchema), &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://items.json"
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
