package domain

import "encoding/json"

// noneDefault is how the API spells a missing parameter default.
const noneDefault = "none"

// ConnectorValidator constrains a connector parameter value.
type ConnectorValidator struct {
	Min   int64   `json:"min" yaml:"min"`
	Max   int64   `json:"max" yaml:"max"`
	Regex *string `json:"regex,omitempty" yaml:"regex,omitempty"`
}

// ConnectorParameter describes a parameter a connector accepts.
type ConnectorParameter struct {
	Name        string              `json:"name" yaml:"name"`
	Default     *string             `json:"default" yaml:"default,omitempty"`
	Mandatory   bool                `json:"mandatory" yaml:"mandatory"`
	Type        string              `json:"type" yaml:"type"`
	Validator   *ConnectorValidator `json:"validator,omitempty" yaml:"validator,omitempty"`
	Description string              `json:"description" yaml:"description"`
}

// UnmarshalJSON maps the "none" and empty defaults to nil.
func (p *ConnectorParameter) UnmarshalJSON(data []byte) error {
	type alias ConnectorParameter
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Default != nil && (*raw.Default == noneDefault || *raw.Default == "") {
		raw.Default = nil
	}
	*p = ConnectorParameter(raw)
	return nil
}

// MarshalJSON writes a nil default back as "none".
func (p ConnectorParameter) MarshalJSON() ([]byte, error) {
	type alias ConnectorParameter
	raw := alias(p)
	if raw.Default == nil {
		none := noneDefault
		raw.Default = &none
	}
	return json.Marshal(raw)
}

// SourceConnector is an entry of the source connector catalogue.
type SourceConnector struct {
	ID               string               `json:"id" yaml:"id"`
	Name             string               `json:"name" yaml:"name"`
	Version          string               `json:"version" yaml:"version"`
	Description      string               `json:"description" yaml:"description"`
	DocumentationURL *string              `json:"documentationUrl,omitempty" yaml:"documentationUrl,omitempty"`
	Parameters       []ConnectorParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// DestinationConnector is an entry of the destination connector catalogue.
type DestinationConnector struct {
	ID               string               `json:"id" yaml:"id"`
	Name             string               `json:"name" yaml:"name"`
	Version          string               `json:"version" yaml:"version"`
	Description      string               `json:"description" yaml:"description"`
	DocumentationURL *string              `json:"documentationUrl,omitempty" yaml:"documentationUrl,omitempty"`
	Parameters       []ConnectorParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// MissingMandatory returns the mandatory parameters absent from given.
func MissingMandatory(params []ConnectorParameter, given []Parameter) []ConnectorParameter {
	set := make(map[string]struct{}, len(given))
	for _, p := range given {
		set[p.Name] = struct{}{}
	}
	var missing []ConnectorParameter
	for _, p := range params {
		if !p.Mandatory {
			continue
		}
		if _, ok := set[p.Name]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}
