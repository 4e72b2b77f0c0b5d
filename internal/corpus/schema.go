package corpus

// itemsSchema validates the embedded corpus file before decoding.
// Descriptive fields may carry the "Not specified" sentinel, so only
// the partition-relevant fields are constrained beyond type.
const itemsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "term", "definition", "kind", "category"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "term": {"type": "string", "minLength": 1},
      "definition": {"type": "string"},
      "kind": {
        "type": "string",
        "enum": [
          "concept", "tool", "command", "library",
          "service", "pattern", "framework", "language-feature"
        ]
      },
      "language": {"type": "string"},
      "project": {"type": "string"},
      "category": {"type": "string", "minLength": 1},
      "whatItIs": {"type": "string"},
      "whyItExists": {"type": "string"},
      "whereItRuns": {"type": "string"},
      "whatItTouches": {"type": "string"},
      "whatBreaks": {"type": "string"},
      "projectUsage": {"type": "string"},
      "commonConfusion": {"type": "string"}
    }
  }
}`
