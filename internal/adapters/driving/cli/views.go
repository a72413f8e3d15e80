package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

// now is swapped in tests to pin ages.
var now = time.Now

const none = "-"

func str(s *string) string {
	if s == nil || *s == "" {
		return none
	}
	return *s
}

func date(t *time.Time) string {
	if t == nil {
		return none
	}
	return t.Format(time.RFC3339)
}

func params(ps []domain.Parameter) string {
	if len(ps) == 0 {
		return none
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Name + "=" + p.Value
	}
	return strings.Join(parts, ", ")
}

var sourceView = view[domain.Source]{
	columns: []column[domain.Source]{
		{"NAME", func(s domain.Source) string { return s.Name }},
		{"ID", func(s domain.Source) string { return s.ID }},
		{"CONNECTOR_ID", func(s domain.Source) string { return s.ConnectorID }},
		{"STATUS", func(s domain.Source) string { return s.Status }},
		{"AGE", func(s domain.Source) string { return domain.Age(s.CreationDate, now()) }},
		{"LAST_UPDATE", func(s domain.Source) string { return domain.AgeOrNow(s.LastUpdateDate, now()) }},
	},
	details: []column[domain.Source]{
		{"CREATION_DATE", func(s domain.Source) string { return date(&s.CreationDate) }},
		{"LAST_UPDATE_DATE", func(s domain.Source) string { return date(s.LastUpdateDate) }},
		{"PARAMETERS", func(s domain.Source) string { return params(s.Parameters) }},
	},
}

var destinationView = view[domain.Destination]{
	columns: []column[domain.Destination]{
		{"NAME", func(d domain.Destination) string { return d.Name }},
		{"ID", func(d domain.Destination) string { return d.ID }},
		{"CONNECTOR_ID", func(d domain.Destination) string { return d.ConnectorID }},
		{"STATUS", func(d domain.Destination) string { return d.Status }},
		{"AGE", func(d domain.Destination) string { return domain.Age(d.CreationDate, now()) }},
		{"LAST_UPDATE", func(d domain.Destination) string { return domain.AgeOrNow(d.LastUpdateDate, now()) }},
	},
	details: []column[domain.Destination]{
		{"CREATION_DATE", func(d domain.Destination) string { return date(&d.CreationDate) }},
		{"LAST_UPDATE_DATE", func(d domain.Destination) string { return date(d.LastUpdateDate) }},
		{"PARAMETERS", func(d domain.Destination) string { return params(d.Parameters) }},
	},
}

var sourceSpecView = view[domain.SourceSpec]{
	columns: []column[domain.SourceSpec]{
		{"NAME", func(s domain.SourceSpec) string { return s.Name }},
		{"CONNECTOR_ID", func(s domain.SourceSpec) string { return str(s.ConnectorID) }},
		{"PARAMETERS", func(s domain.SourceSpec) string { return params(s.Parameters) }},
	},
}

var destinationSpecView = view[domain.DestinationSpec]{
	columns: []column[domain.DestinationSpec]{
		{"NAME", func(s domain.DestinationSpec) string { return s.Name }},
		{"CONNECTOR_ID", func(s domain.DestinationSpec) string { return str(s.ConnectorID) }},
		{"PARAMETERS", func(s domain.DestinationSpec) string { return params(s.Parameters) }},
	},
}

var statusView = view[domain.Status]{
	columns: []column[domain.Status]{
		{"STATUS", func(s domain.Status) string { return s.Status }},
		{"DATE", func(s domain.Status) string { return date(s.Date) }},
	},
}

var tableMetaView = view[domain.TableMeta]{
	columns: []column[domain.TableMeta]{
		{"TABLE_NAME", func(t domain.TableMeta) string { return t.TableName }},
		{"STATUS", func(t domain.TableMeta) string { return t.Status }},
		{"COLUMNS", func(t domain.TableMeta) string { return strconv.Itoa(len(t.Metadata)) }},
		{"ERROR", func(t domain.TableMeta) string { return str(t.Error) }},
	},
}

func connectorParams(ps []domain.ConnectorParameter) string {
	if len(ps) == 0 {
		return none
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		part := p.Name + " (" + p.Type
		if p.Mandatory {
			part += ", mandatory"
		}
		parts[i] = part + ")"
	}
	return strings.Join(parts, ", ")
}

var sourceConnectorView = view[domain.SourceConnector]{
	columns: []column[domain.SourceConnector]{
		{"NAME", func(c domain.SourceConnector) string { return c.Name }},
		{"ID", func(c domain.SourceConnector) string { return c.ID }},
		{"VERSION", func(c domain.SourceConnector) string { return c.Version }},
	},
	details: []column[domain.SourceConnector]{
		{"DESCRIPTION", func(c domain.SourceConnector) string { return c.Description }},
		{"DOCUMENTATION_URL", func(c domain.SourceConnector) string { return str(c.DocumentationURL) }},
		{"PARAMETERS", func(c domain.SourceConnector) string { return connectorParams(c.Parameters) }},
	},
}

var destinationConnectorView = view[domain.DestinationConnector]{
	columns: []column[domain.DestinationConnector]{
		{"NAME", func(c domain.DestinationConnector) string { return c.Name }},
		{"ID", func(c domain.DestinationConnector) string { return c.ID }},
		{"VERSION", func(c domain.DestinationConnector) string { return c.Version }},
	},
	details: []column[domain.DestinationConnector]{
		{"DESCRIPTION", func(c domain.DestinationConnector) string { return c.Description }},
		{"DOCUMENTATION_URL", func(c domain.DestinationConnector) string { return str(c.DocumentationURL) }},
		{"PARAMETERS", func(c domain.DestinationConnector) string { return connectorParams(c.Parameters) }},
	},
}

var workflowView = view[domain.Workflow]{
	columns: []column[domain.Workflow]{
		{"NAME", func(w domain.Workflow) string { return w.Name }},
		{"ENABLED", func(w domain.Workflow) string { return strconv.FormatBool(w.Enabled) }},
		{"ID", func(w domain.Workflow) string { return w.ID }},
		{"SOURCE_NAME", func(w domain.Workflow) string { return str(w.SourceName) }},
		{"DESTINATION_NAME", func(w domain.Workflow) string { return str(w.DestinationName) }},
		{"SCHEDULE", func(w domain.Workflow) string { return str(w.Schedule) }},
		{"LAST_EXECUTION", func(w domain.Workflow) string { return domain.AgeOrNow(w.LastExecutionDate, now()) }},
		{"STATUS", func(w domain.Workflow) string { return str(w.Status) }},
	},
	details: []column[domain.Workflow]{
		{"DESCRIPTION", func(w domain.Workflow) string { return str(w.Description) }},
		{"REGION", func(w domain.Workflow) string { return w.Region }},
		{"SOURCE_ID", func(w domain.Workflow) string { return str(w.SourceID) }},
		{"DESTINATION_ID", func(w domain.Workflow) string { return str(w.DestinationID) }},
		{"LAST_EXECUTION_DATE", func(w domain.Workflow) string { return date(w.LastExecutionDate) }},
		{"ERROR", func(w domain.Workflow) string {
			if w.ErrorDetails == nil {
				return none
			}
			return w.ErrorDetails.Code + ": " + w.ErrorDetails.Description
		}},
	},
}

var workflowSpecView = view[domain.WorkflowSpec]{
	columns: []column[domain.WorkflowSpec]{
		{"NAME", func(w domain.WorkflowSpec) string { return w.Name }},
		{"REGION", func(w domain.WorkflowSpec) string { return w.Region }},
		{"DESCRIPTION", func(w domain.WorkflowSpec) string { return str(w.Description) }},
		{"SOURCE_ID", func(w domain.WorkflowSpec) string { return w.SourceID }},
		{"DESTINATION_ID", func(w domain.WorkflowSpec) string { return w.DestinationID }},
		{"SCHEDULE", func(w domain.WorkflowSpec) string { return str(w.Schedule) }},
		{"ENABLED", func(w domain.WorkflowSpec) string { return strconv.FormatBool(w.Enabled) }},
	},
}

var jobView = view[domain.Job]{
	columns: []column[domain.Job]{
		{"ID", func(j domain.Job) string { return j.ID }},
		{"STATUS", func(j domain.Job) string { return j.Status }},
		{"AGE", func(j domain.Job) string { return domain.Age(j.CreatedAt, now()) }},
		{"DURATION", func(j domain.Job) string { return domain.JobDuration(j.StartedAt, j.EndedAt, now()) }},
	},
	details: []column[domain.Job]{
		{"CREATED_AT", func(j domain.Job) string { return date(&j.CreatedAt) }},
		{"STARTED_AT", func(j domain.Job) string { return date(j.StartedAt) }},
		{"ENDED_AT", func(j domain.Job) string { return date(j.EndedAt) }},
	},
}

var meView = view[domain.Me]{
	columns: []column[domain.Me]{
		{"USER", func(m domain.Me) string { return str(m.User) }},
		{"DESCRIPTION", func(m domain.Me) string { return str(m.Description) }},
		{"ROLES", func(m domain.Me) string { return strings.Join(m.Roles, ", ") }},
	},
}

var credentialView = view[domain.CredentialDetails]{
	columns: []column[domain.CredentialDetails]{
		{"CREDENTIAL_ID", func(c domain.CredentialDetails) string { return strconv.FormatInt(c.CredentialID, 10) }},
		{"APPLICATION_ID", func(c domain.CredentialDetails) string { return strconv.FormatInt(c.ApplicationID, 10) }},
		{"STATUS", func(c domain.CredentialDetails) string { return c.Status }},
		{"CREATION", func(c domain.CredentialDetails) string { return c.Creation }},
		{"EXPIRATION", func(c domain.CredentialDetails) string { return str(c.Expiration) }},
		{"LAST_USE", func(c domain.CredentialDetails) string { return str(c.LastUse) }},
		{"ALLOWED_IPS", func(c domain.CredentialDetails) string {
			if len(c.AllowedIPs) == 0 {
				return none
			}
			return strings.Join(c.AllowedIPs, ", ")
		}},
		{"RULES", func(c domain.CredentialDetails) string {
			rules := make([]string, len(c.Rules))
			for i, r := range c.Rules {
				rules[i] = r.Method + " " + r.Path
			}
			return strings.Join(rules, ", ")
		}},
	},
}

var projectView = view[domain.Project]{
	columns: []column[domain.Project]{
		{"PROJECT_ID", func(p domain.Project) string { return p.ProjectID }},
		{"DESCRIPTION", func(p domain.Project) string { return p.Description }},
	},
}

var configView = view[domain.ConfigView]{
	columns: []column[domain.ConfigView]{
		{"NAME", func(c domain.ConfigView) string { return c.Name }},
		{"ENDPOINT_URL", func(c domain.ConfigView) string { return c.EndpointURL }},
		{"SELECTED", func(c domain.ConfigView) string {
			if c.Selected {
				return "*"
			}
			return ""
		}},
	},
	details: []column[domain.ConfigView]{
		{"CREATE_TOKEN_URL", func(c domain.ConfigView) string { return c.CreateTokenURL }},
		{"SERVICE_NAME", func(c domain.ConfigView) string {
			if c.Context == nil || c.Context.ServiceName == "" {
				return none
			}
			return c.Context.ServiceName
		}},
	},
}

var connectorParameterView = view[domain.ConnectorParameter]{
	columns: []column[domain.ConnectorParameter]{
		{"PARAMETER", func(p domain.ConnectorParameter) string { return p.Name }},
		{"TYPE", func(p domain.ConnectorParameter) string { return p.Type }},
		{"MANDATORY", func(p domain.ConnectorParameter) string { return strconv.FormatBool(p.Mandatory) }},
		{"DEFAULT", func(p domain.ConnectorParameter) string { return str(p.Default) }},
		{"VALIDATION", validatorHelp},
		{"DESCRIPTION", func(p domain.ConnectorParameter) string { return p.Description }},
	},
}

var workflowPatchView = view[domain.WorkflowPatch]{
	columns: []column[domain.WorkflowPatch]{
		{"NAME", func(p domain.WorkflowPatch) string { return str(p.Name) }},
		{"DESCRIPTION", func(p domain.WorkflowPatch) string { return str(p.Description) }},
		{"SCHEDULE", func(p domain.WorkflowPatch) string { return str(p.Schedule) }},
		{"ENABLED", func(p domain.WorkflowPatch) string {
			if p.Enabled == nil {
				return none
			}
			return strconv.FormatBool(*p.Enabled)
		}},
	},
}
