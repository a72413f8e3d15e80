package domain

import (
	"fmt"
	"strings"
	"time"
)

// Parameter is a connector parameter value attached to a source or destination.
type Parameter struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// ParseParameter parses a "name=value" pair. The value may itself contain '='.
func ParseParameter(s string) (Parameter, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Parameter{}, fmt.Errorf("%w: %q", ErrInvalidParameter, s)
	}
	return Parameter{Name: name, Value: value}, nil
}

// ParseParameters parses a list of "name=value" pairs.
func ParseParameters(values []string) ([]Parameter, error) {
	params := make([]Parameter, 0, len(values))
	for _, v := range values {
		p, err := ParseParameter(v)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

// FormatParameters renders parameters as repeated --parameter flags.
func FormatParameters(params []Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("--parameter %s=%s", p.Name, p.Value))
	}
	return strings.Join(parts, " ")
}

// Status is the last connection check of a source or destination.
type Status struct {
	Status string     `json:"status" yaml:"status"`
	Date   *time.Time `json:"date,omitempty" yaml:"date,omitempty"`
}

// ErrorDetails explains why a workflow is in error.
type ErrorDetails struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

// Source is a Data Integration source: a connector plus its parameters.
type Source struct {
	ID             string      `json:"id" yaml:"id"`
	Name           string      `json:"name" yaml:"name"`
	Status         string      `json:"status" yaml:"status"`
	CreationDate   time.Time   `json:"creationDate" yaml:"creationDate"`
	LastUpdateDate *time.Time  `json:"lastUpdateDate,omitempty" yaml:"lastUpdateDate,omitempty"`
	ConnectorID    string      `json:"connectorId" yaml:"connectorId"`
	Parameters     []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// SourceSpec is the payload to create or update a source.
// ConnectorID is only sent on creation.
type SourceSpec struct {
	Name        string      `json:"name" yaml:"name"`
	ConnectorID *string     `json:"connectorId,omitempty" yaml:"connectorId,omitempty"`
	Parameters  []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Destination is a Data Integration destination.
type Destination struct {
	ID             string      `json:"id" yaml:"id"`
	Name           string      `json:"name" yaml:"name"`
	Status         string      `json:"status" yaml:"status"`
	CreationDate   time.Time   `json:"creationDate" yaml:"creationDate"`
	LastUpdateDate *time.Time  `json:"lastUpdateDate,omitempty" yaml:"lastUpdateDate,omitempty"`
	ConnectorID    string      `json:"connectorId" yaml:"connectorId"`
	Parameters     []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// DestinationSpec is the payload to create or update a destination.
type DestinationSpec struct {
	Name        string      `json:"name" yaml:"name"`
	ConnectorID *string     `json:"connectorId,omitempty" yaml:"connectorId,omitempty"`
	Parameters  []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// TableMeta is the metadata extracted for one table of a source.
type TableMeta struct {
	TableName string           `json:"tableName" yaml:"tableName"`
	Status    string           `json:"status" yaml:"status"`
	Error     *string          `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorCode *string          `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`
	StartedAt *time.Time       `json:"startedAt,omitempty" yaml:"startedAt,omitempty"`
	EndedAt   *time.Time       `json:"endedAt,omitempty" yaml:"endedAt,omitempty"`
	Metadata  []ColumnMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ColumnMetadata describes one column of a table.
type ColumnMetadata struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Cardinality int64  `json:"cardinality" yaml:"cardinality"`
	Min         int64  `json:"min" yaml:"min"`
	Max         int64  `json:"max" yaml:"max"`
}
