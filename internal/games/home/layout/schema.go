package layout

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const mapSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "name", "tile_size", "spawn", "layers"],
  "additionalProperties": false,
  "properties": {
    "id": {"type": "string", "pattern": "^[a-z0-9_-]+$"},
    "name": {"type": "string", "minLength": 1},
    "tile_size": {"type": "integer", "minimum": 1},
    "spawn": {
      "type": "object",
      "required": ["col", "row"],
      "additionalProperties": false,
      "properties": {
        "col": {"type": "integer", "minimum": 0},
        "row": {"type": "integer", "minimum": 0}
      }
    },
    "objects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["code", "name"],
        "additionalProperties": false,
        "properties": {
          "code": {"type": "integer", "minimum": 0},
          "name": {"type": "string", "pattern": "^[a-z_]+$"}
        }
      }
    },
    "layers": {
      "type": "object",
      "required": ["boundary"],
      "additionalProperties": false,
      "properties": {
        "boundary": {"type": "string"},
        "floor": {"type": "string"},
        "object": {"type": "string"},
        "details": {"type": "string"}
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
)

// mapSchema returns the compiled map file schema.
func mapSchema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		schema = jsonschema.MustCompileString("homebound-map.schema.json", mapSchemaJSON)
	})
	return schema
}
