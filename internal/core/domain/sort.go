package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Sort keys accepted by list commands.
const (
	SortAge             = "age"
	SortUpdate          = "update"
	SortStatus          = "status"
	SortConnector       = "connector"
	SortName            = "name"
	SortLastExecution   = "last-execution"
	SortEnabled         = "enabled"
	SortSourceName      = "source-name"
	SortDestinationName = "destination-name"
)

// SourceSortKeys are the keys accepted for sources and destinations.
var SourceSortKeys = []string{SortAge, SortUpdate, SortStatus, SortConnector, SortName}

// WorkflowSortKeys are the keys accepted for workflows.
var WorkflowSortKeys = []string{SortLastExecution, SortStatus, SortEnabled, SortSourceName, SortDestinationName, SortName}

// JobSortKeys are the keys accepted for jobs.
var JobSortKeys = []string{SortAge, SortStatus}

// ValidateSortKey checks key against the accepted keys. An empty key is valid.
func ValidateSortKey(key string, accepted []string) error {
	if key == "" {
		return nil
	}
	for _, k := range accepted {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown sort key %q (expected one of %s)",
		ErrInvalidInput, key, strings.Join(accepted, ", "))
}

// less compares two items; ties keep the API order.
type less[T any] func(a, b T) bool

func sortSlice[T any](items []T, cmp less[T], desc bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return cmp(sorted[j], sorted[i])
		}
		return cmp(sorted[i], sorted[j])
	})
	return sorted
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func sourceLess(key string) less[Source] {
	switch key {
	case SortAge:
		return func(a, b Source) bool { return a.CreationDate.Before(b.CreationDate) }
	case SortUpdate:
		return func(a, b Source) bool { return timeOrZero(a.LastUpdateDate).Before(timeOrZero(b.LastUpdateDate)) }
	case SortStatus:
		return func(a, b Source) bool { return a.Status < b.Status }
	case SortConnector:
		return func(a, b Source) bool { return a.ConnectorID < b.ConnectorID }
	default:
		return func(a, b Source) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	}
}

// SortSources orders sources by key (name when empty). The input is not modified.
func SortSources(sources []Source, key string, desc bool) []Source {
	return sortSlice(sources, sourceLess(key), desc)
}

// SortDestinations orders destinations with the same keys as sources.
func SortDestinations(destinations []Destination, key string, desc bool) []Destination {
	cmp := sourceLess(key)
	return sortSlice(destinations, func(a, b Destination) bool {
		return cmp(Source(a), Source(b))
	}, desc)
}

// SortWorkflows orders workflows by key (name when empty).
func SortWorkflows(workflows []Workflow, key string, desc bool) []Workflow {
	var cmp less[Workflow]
	switch key {
	case SortLastExecution:
		cmp = func(a, b Workflow) bool {
			return timeOrZero(a.LastExecutionDate).Before(timeOrZero(b.LastExecutionDate))
		}
	case SortStatus:
		cmp = func(a, b Workflow) bool { return strOrEmpty(a.Status) < strOrEmpty(b.Status) }
	case SortEnabled:
		cmp = func(a, b Workflow) bool { return !a.Enabled && b.Enabled }
	case SortSourceName:
		cmp = func(a, b Workflow) bool { return strOrEmpty(a.SourceName) < strOrEmpty(b.SourceName) }
	case SortDestinationName:
		cmp = func(a, b Workflow) bool { return strOrEmpty(a.DestinationName) < strOrEmpty(b.DestinationName) }
	default:
		cmp = func(a, b Workflow) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	}
	return sortSlice(workflows, cmp, desc)
}

// SortJobs orders jobs by key (creation date when empty).
func SortJobs(jobs []Job, key string, desc bool) []Job {
	cmp := func(a, b Job) bool { return a.CreatedAt.Before(b.CreatedAt) }
	if key == SortStatus {
		cmp = func(a, b Job) bool { return a.Status < b.Status }
	}
	return sortSlice(jobs, cmp, desc)
}
