package slate

import "encoding/json"

// DataMap holds the free-form data blob attached to most entities. The server
// returns it either as a JSON object or as a JSON-encoded string depending on
// the query path, so decoding accepts both.
type DataMap map[string]any

// UnmarshalJSON implements json.Unmarshaler.
func (d *DataMap) UnmarshalJSON(raw []byte) error {
	if string(raw) == "null" {
		*d = nil

		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return err
		}

		if encoded == "" {
			*d = DataMap{}

			return nil
		}

		raw = []byte(encoded)
	}

	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return err
	}

	*d = values

	return nil
}

// TypeEntry describes one configured folder, task, or product type of a
// project.
type TypeEntry struct {
	Name      string `json:"name"                yaml:"name"`
	ShortName string `json:"shortName,omitempty" yaml:"shortName,omitempty"`
	Icon      string `json:"icon,omitempty"      yaml:"icon,omitempty"`
	Color     string `json:"color,omitempty"     yaml:"color,omitempty"`
}

// StatusEntry describes one configured status of a project.
type StatusEntry struct {
	Name      string `json:"name"                yaml:"name"`
	ShortName string `json:"shortName,omitempty" yaml:"shortName,omitempty"`
	State     string `json:"state,omitempty"     yaml:"state,omitempty"`
	Icon      string `json:"icon,omitempty"      yaml:"icon,omitempty"`
	Color     string `json:"color,omitempty"     yaml:"color,omitempty"`
}

// Link represents one link between two entities.
type Link struct {
	ID          string `json:"id"                    yaml:"id"`
	LinkType    string `json:"linkType"              yaml:"linkType"`
	ProjectName string `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	EntityType  string `json:"entityType"            yaml:"entityType"`
	EntityID    string `json:"entityId"              yaml:"entityId"`
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	Direction   string `json:"direction"             yaml:"direction"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string `json:"author,omitempty"      yaml:"author,omitempty"`
}

// Link directions accepted by LinkOptions.Direction.
const (
	LinkDirectionIn  = "in"
	LinkDirectionOut = "out"
)

// Bool returns a pointer to b for use in options structs whose absence and
// false differ.
func Bool(b bool) *bool {
	return &b
}
