package services

import (
	"context"
	"sync"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driven"
)

// fakeAPI is an in-memory driven.APIClient. err, when set, is returned by
// every call.
type fakeAPI struct {
	mu sync.Mutex

	endpoint string
	creds    domain.Credentials

	details      *domain.CredentialDetails
	me           *domain.Me
	projects     []domain.Project
	sources      []domain.Source
	destinations []domain.Destination
	workflows    []domain.Workflow
	jobs         []domain.Job
	connectors   []domain.SourceConnector
	err          error

	calls       []string
	serviceName string
	lastPatch   *domain.WorkflowPatch
	lastSource  *domain.SourceSpec
}

var _ driven.APIClient = (*fakeAPI)(nil)

func (f *fakeAPI) record(name, serviceName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	f.serviceName = serviceName
	return f.err
}

// factory returns a driven.APIClientFactory handing out f.
func (f *fakeAPI) factory() driven.APIClientFactory {
	return func(endpoint string, creds domain.Credentials) (driven.APIClient, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.endpoint = endpoint
		f.creds = creds
		return f, nil
	}
}

func (f *fakeAPI) Me(_ context.Context) (*domain.Me, error) {
	if err := f.record("Me", ""); err != nil {
		return nil, err
	}
	return f.me, nil
}

func (f *fakeAPI) CurrentCredential(_ context.Context) (*domain.CredentialDetails, error) {
	if err := f.record("CurrentCredential", ""); err != nil {
		return nil, err
	}
	return f.details, nil
}

func (f *fakeAPI) ProjectList(_ context.Context) ([]string, error) {
	if err := f.record("ProjectList", ""); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(f.projects))
	for _, p := range f.projects {
		ids = append(ids, p.ProjectID)
	}
	return ids, nil
}

func (f *fakeAPI) Project(_ context.Context, sn string) (*domain.Project, error) {
	if err := f.record("Project", sn); err != nil {
		return nil, err
	}
	for _, p := range f.projects {
		if p.ProjectID == sn {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAPI) Projects(_ context.Context) ([]domain.Project, error) {
	if err := f.record("Projects", ""); err != nil {
		return nil, err
	}
	return f.projects, nil
}

func (f *fakeAPI) SourceConnectors(_ context.Context, sn string) ([]domain.SourceConnector, error) {
	if err := f.record("SourceConnectors", sn); err != nil {
		return nil, err
	}
	return f.connectors, nil
}

func (f *fakeAPI) SourceConnector(_ context.Context, sn, id string) (*domain.SourceConnector, error) {
	if err := f.record("SourceConnector", sn); err != nil {
		return nil, err
	}
	for _, c := range f.connectors {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAPI) DestinationConnectors(_ context.Context, sn string) ([]domain.DestinationConnector, error) {
	return nil, f.record("DestinationConnectors", sn)
}

func (f *fakeAPI) DestinationConnector(_ context.Context, sn, _ string) (*domain.DestinationConnector, error) {
	if err := f.record("DestinationConnector", sn); err != nil {
		return nil, err
	}
	return &domain.DestinationConnector{}, nil
}

func (f *fakeAPI) Sources(_ context.Context, sn string) ([]domain.Source, error) {
	if err := f.record("Sources", sn); err != nil {
		return nil, err
	}
	return f.sources, nil
}

func (f *fakeAPI) Source(_ context.Context, sn, id string) (*domain.Source, error) {
	if err := f.record("Source", sn); err != nil {
		return nil, err
	}
	for _, s := range f.sources {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAPI) SourceStatus(_ context.Context, sn, _ string) (*domain.Status, error) {
	if err := f.record("SourceStatus", sn); err != nil {
		return nil, err
	}
	return &domain.Status{Status: "OK"}, nil
}

func (f *fakeAPI) SourceMetadata(_ context.Context, sn, _ string) ([]domain.TableMeta, error) {
	return nil, f.record("SourceMetadata", sn)
}

func (f *fakeAPI) ExtractSourceMetadata(_ context.Context, sn, _ string) ([]domain.TableMeta, error) {
	return nil, f.record("ExtractSourceMetadata", sn)
}

func (f *fakeAPI) CreateSource(_ context.Context, sn string, spec domain.SourceSpec) (*domain.Source, error) {
	if err := f.record("CreateSource", sn); err != nil {
		return nil, err
	}
	f.lastSource = &spec
	return &domain.Source{ID: "new", Name: spec.Name, Parameters: spec.Parameters}, nil
}

func (f *fakeAPI) UpdateSource(_ context.Context, sn, id string, spec domain.SourceSpec) (*domain.Source, error) {
	if err := f.record("UpdateSource", sn); err != nil {
		return nil, err
	}
	f.lastSource = &spec
	return &domain.Source{ID: id, Name: spec.Name}, nil
}

func (f *fakeAPI) DeleteSource(_ context.Context, sn, _ string) error {
	return f.record("DeleteSource", sn)
}

func (f *fakeAPI) Destinations(_ context.Context, sn string) ([]domain.Destination, error) {
	if err := f.record("Destinations", sn); err != nil {
		return nil, err
	}
	return f.destinations, nil
}

func (f *fakeAPI) Destination(_ context.Context, sn, id string) (*domain.Destination, error) {
	if err := f.record("Destination", sn); err != nil {
		return nil, err
	}
	return &domain.Destination{ID: id}, nil
}

func (f *fakeAPI) DestinationStatus(_ context.Context, sn, _ string) (*domain.Status, error) {
	if err := f.record("DestinationStatus", sn); err != nil {
		return nil, err
	}
	return &domain.Status{Status: "OK"}, nil
}

func (f *fakeAPI) CreateDestination(_ context.Context, sn string, spec domain.DestinationSpec) (*domain.Destination, error) {
	if err := f.record("CreateDestination", sn); err != nil {
		return nil, err
	}
	return &domain.Destination{ID: "new", Name: spec.Name}, nil
}

func (f *fakeAPI) UpdateDestination(_ context.Context, sn, id string, spec domain.DestinationSpec) (*domain.Destination, error) {
	if err := f.record("UpdateDestination", sn); err != nil {
		return nil, err
	}
	return &domain.Destination{ID: id, Name: spec.Name}, nil
}

func (f *fakeAPI) DeleteDestination(_ context.Context, sn, _ string) error {
	return f.record("DeleteDestination", sn)
}

func (f *fakeAPI) Workflows(_ context.Context, sn string) ([]domain.Workflow, error) {
	if err := f.record("Workflows", sn); err != nil {
		return nil, err
	}
	return f.workflows, nil
}

func (f *fakeAPI) Workflow(_ context.Context, sn, id string) (*domain.Workflow, error) {
	if err := f.record("Workflow", sn); err != nil {
		return nil, err
	}
	return &domain.Workflow{ID: id}, nil
}

func (f *fakeAPI) CreateWorkflow(_ context.Context, sn string, spec domain.WorkflowSpec) (*domain.Workflow, error) {
	if err := f.record("CreateWorkflow", sn); err != nil {
		return nil, err
	}
	return &domain.Workflow{ID: "new", Name: spec.Name, Enabled: spec.Enabled}, nil
}

func (f *fakeAPI) UpdateWorkflow(_ context.Context, sn, id string, patch domain.WorkflowPatch) (*domain.Workflow, error) {
	if err := f.record("UpdateWorkflow", sn); err != nil {
		return nil, err
	}
	f.lastPatch = &patch
	wf := &domain.Workflow{ID: id}
	if patch.Enabled != nil {
		wf.Enabled = *patch.Enabled
	}
	return wf, nil
}

func (f *fakeAPI) DeleteWorkflow(_ context.Context, sn, _ string) error {
	return f.record("DeleteWorkflow", sn)
}

func (f *fakeAPI) Jobs(_ context.Context, sn, _ string) ([]domain.Job, error) {
	if err := f.record("Jobs", sn); err != nil {
		return nil, err
	}
	return f.jobs, nil
}

func (f *fakeAPI) Job(_ context.Context, sn, _, id string) (*domain.Job, error) {
	if err := f.record("Job", sn); err != nil {
		return nil, err
	}
	return &domain.Job{ID: id}, nil
}

func (f *fakeAPI) RunWorkflow(_ context.Context, sn, _ string) (*domain.Job, error) {
	if err := f.record("RunWorkflow", sn); err != nil {
		return nil, err
	}
	return &domain.Job{ID: "job", Status: "PENDING"}, nil
}

func (f *fakeAPI) StopJob(_ context.Context, sn, _, _ string) error {
	return f.record("StopJob", sn)
}
