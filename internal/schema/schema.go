// Package schema holds the static collection descriptors served on
// GET /schema for external data-viewer tools.
package schema

type Property struct {
	Title       string    `json:"title,omitempty"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Nullable    bool      `json:"nullable,omitempty"`
	Minimum     *float64  `json:"minimum,omitempty"`
	Default     any       `json:"default,omitempty"`
	Examples    []string  `json:"examples,omitempty"`
	Items       *Property `json:"items,omitempty"`
	Ref         string    `json:"$ref,omitempty"`
}

type Model struct {
	Title       string              `json:"title"`
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Properties  map[string]Property `json:"properties"`
	Required    []string            `json:"required"`
	Defs        map[string]Model    `json:"$defs,omitempty"`
}

// Entry binds a collection name to its model.
type Entry struct {
	Collection string
	Model      Model
}

type Registry struct {
	Collections []string         `json:"collections"`
	Models      map[string]Model `json:"models"`
}

// NewRegistry keeps collections in the order given.
func NewRegistry(entries ...Entry) Registry {
	r := Registry{
		Collections: make([]string, 0, len(entries)),
		Models:      make(map[string]Model, len(entries)),
	}
	for _, e := range entries {
		r.Collections = append(r.Collections, e.Collection)
		r.Models[e.Collection] = e.Model
	}
	return r
}

func Min(v float64) *float64 { return &v }

func String(title, description string) Property {
	return Property{Title: title, Type: "string", Description: description}
}

func OptionalString(title, description string) Property {
	return Property{Title: title, Type: "string", Description: description, Nullable: true}
}

func Number(title, description string, min *float64) Property {
	return Property{Title: title, Type: "number", Description: description, Minimum: min}
}

func Integer(title, description string, min *float64) Property {
	return Property{Title: title, Type: "integer", Description: description, Minimum: min}
}

func Boolean(title, description string, def bool) Property {
	return Property{Title: title, Type: "boolean", Description: description, Default: def}
}

func ArrayOf(title, ref string) Property {
	return Property{Title: title, Type: "array", Items: &Property{Ref: "#/$defs/" + ref}}
}
