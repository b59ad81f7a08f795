package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema constrains a completion to a JSON object. Schemas are package
// constants in practice (see internal/hints), so compiled forms are
// cached by name for the life of the process.
type Schema struct {
	// Name identifies the schema to the provider (tool name, response
	// format name). Kebab-case.
	Name string

	// Description tells the model what the object represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

var compiledSchemas sync.Map // name → *jsonschema.Schema

// Validate checks a reply against the schema and returns a bad-output
// CallError on any violation, carrying the offending reply.
func (s *Schema) Validate(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return badOutput(raw, fmt.Errorf("reply is not JSON: %w", err))
	}

	compiled, err := s.compiled()
	if err != nil {
		return badOutput(raw, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return badOutput(raw, fmt.Errorf("reply violates schema %q: %w", s.Name, err))
	}
	return nil
}

func (s *Schema) compiled() (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants the definition as a decoded JSON value, not as
	// Go maps with arbitrary element types; a round trip normalizes it.
	def, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", s.Name, err)
	}
	var doc any
	if err := json.Unmarshal(def, &doc); err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", s.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register schema %q: %w", s.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	compiledSchemas.Store(s.Name, compiled)
	return compiled, nil
}
