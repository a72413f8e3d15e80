package domain

import "time"

// Workflow schedules transfers from a source to a destination.
type Workflow struct {
	ID                string        `json:"id" yaml:"id"`
	Name              string        `json:"name" yaml:"name"`
	Description       *string       `json:"description,omitempty" yaml:"description,omitempty"`
	Region            string        `json:"region" yaml:"region"`
	SourceID          *string       `json:"sourceId,omitempty" yaml:"sourceId,omitempty"`
	SourceName        *string       `json:"sourceName,omitempty" yaml:"sourceName,omitempty"`
	DestinationID     *string       `json:"destinationId,omitempty" yaml:"destinationId,omitempty"`
	DestinationName   *string       `json:"destinationName,omitempty" yaml:"destinationName,omitempty"`
	Parameters        []Parameter   `json:"parameters" yaml:"parameters"`
	LastExecutionDate *time.Time    `json:"lastExecutionDate,omitempty" yaml:"lastExecutionDate,omitempty"`
	Schedule          *string       `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	Status            *string       `json:"status,omitempty" yaml:"status,omitempty"`
	ErrorDetails      *ErrorDetails `json:"errorDetails,omitempty" yaml:"errorDetails,omitempty"`
}

// WorkflowSpec is the payload to create a workflow.
type WorkflowSpec struct {
	Name          string  `json:"name" yaml:"name"`
	Region        string  `json:"region" yaml:"region"`
	Description   *string `json:"description,omitempty" yaml:"description,omitempty"`
	SourceID      string  `json:"sourceId" yaml:"sourceId"`
	DestinationID string  `json:"destinationId" yaml:"destinationId"`
	Schedule      *string `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Enabled       bool    `json:"enabled" yaml:"enabled"`
}

// WorkflowPatch is a partial workflow update. Nil fields are left unchanged.
type WorkflowPatch struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Schedule    *string `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p WorkflowPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Schedule == nil && p.Enabled == nil
}

// Job is one execution of a workflow.
type Job struct {
	ID        string     `json:"id" yaml:"id"`
	Status    string     `json:"status" yaml:"status"`
	CreatedAt time.Time  `json:"createdAt" yaml:"createdAt"`
	StartedAt *time.Time `json:"startedAt,omitempty" yaml:"startedAt,omitempty"`
	EndedAt   *time.Time `json:"endedAt,omitempty" yaml:"endedAt,omitempty"`
}

// JobPost is the payload that starts a job. The API requires the
// parameters field even though it is always empty.
type JobPost struct {
	Parameters []string `json:"parameters" yaml:"parameters"`
}

// NewJobPost returns a JobPost with an empty, non-nil parameter list.
func NewJobPost() JobPost {
	return JobPost{Parameters: []string{}}
}
