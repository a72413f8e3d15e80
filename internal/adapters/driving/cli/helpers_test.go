package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/picker"
	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
	"github.com/ovh/ovhdata-cli/internal/logger"
)

// fakeContext implements driving.ContextService in memory.
type fakeContext struct {
	uuid        string
	current     string
	configs     map[string]domain.Config
	creds       *domain.Credentials
	serviceName string
	override    string
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		uuid:    "11111111-2222-3333-4444-555555555555",
		current: domain.DefaultConfigName,
		configs: domain.DefaultConfigs(),
	}
}

func (f *fakeContext) UUID() string                 { return f.uuid }
func (f *fakeContext) CurrentConfig() domain.Config { return f.configs[f.current] }

func (f *fakeContext) Configs() []domain.ConfigView {
	views := make([]domain.ConfigView, 0, len(f.configs))
	for _, name := range domain.ConfigNames() {
		views = append(views, f.view(name))
	}
	return views
}

func (f *fakeContext) view(name string) domain.ConfigView {
	v := domain.ConfigView{Config: f.configs[name], Selected: name == f.current}
	if name == f.current && f.serviceName != "" {
		v.Context = &domain.RuntimeContext{ServiceName: f.serviceName}
	}
	return v
}

func (f *fakeContext) Config(name string) (*domain.ConfigView, error) {
	if _, ok := f.configs[name]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, name)
	}
	v := f.view(name)
	return &v, nil
}

func (f *fakeContext) SetCurrentConfig(name string) (*domain.ConfigView, error) {
	if _, ok := f.configs[name]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, name)
	}
	f.current = name
	v := f.view(name)
	return &v, nil
}

func (f *fakeContext) Credentials() (domain.Credentials, bool) {
	if f.creds == nil {
		return domain.Credentials{}, false
	}
	return *f.creds, true
}

func (f *fakeContext) SaveCredentials(creds domain.Credentials) error {
	f.creds = &creds
	return nil
}

func (f *fakeContext) Logout() error {
	f.creds = nil
	f.serviceName = ""
	return nil
}

func (f *fakeContext) ServiceName() string {
	if f.override != "" {
		return f.override
	}
	return f.serviceName
}

func (f *fakeContext) SetServiceName(name string) error {
	f.serviceName = name
	return nil
}

func (f *fakeContext) OverrideServiceName(name string) { f.override = name }

// fakeAuth implements driving.AuthService.
type fakeAuth struct {
	contexts   *fakeContext
	details    *domain.CredentialDetails
	currentErr error
	loginErr   error
	loggedIn   *domain.Credentials
}

func (f *fakeAuth) Login(_ context.Context, creds domain.Credentials) (*domain.CredentialDetails, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.loggedIn = &creds
	_ = f.contexts.SaveCredentials(creds)
	return f.details, nil
}

func (f *fakeAuth) Current(_ context.Context) (*domain.CredentialDetails, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.details, nil
}

func (f *fakeAuth) Logout() error { return f.contexts.Logout() }

// fakeAccount implements driving.AccountService.
type fakeAccount struct {
	me       *domain.Me
	projects []domain.Project
	err      error
}

func (f *fakeAccount) Me(_ context.Context) (*domain.Me, error) { return f.me, f.err }

func (f *fakeAccount) Projects(_ context.Context) ([]domain.Project, error) {
	return f.projects, f.err
}

// fakeDI implements driving.DataIntegrationService and records its calls.
type fakeDI struct {
	serviceName string
	err         error

	sourceConnectors      []domain.SourceConnector
	destinationConnectors []domain.DestinationConnector
	sources               []domain.Source
	destinations          []domain.Destination
	workflows             []domain.Workflow
	jobs                  []domain.Job
	tables                []domain.TableMeta
	status                *domain.Status

	calls          []string
	lastOpts       driving.ListOptions
	sourceSpec     *domain.SourceSpec
	destSpec       *domain.DestinationSpec
	workflowSpec   *domain.WorkflowSpec
	workflowPatch  *domain.WorkflowPatch
	enabled        *bool
	lastWorkflowID string
}

func (f *fakeDI) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeDI) ServiceName() (string, error) {
	if f.serviceName == "" {
		return "", domain.ErrNoServiceName
	}
	return f.serviceName, nil
}

func (f *fakeDI) SourceConnectors(_ context.Context) ([]domain.SourceConnector, error) {
	f.record("SourceConnectors")
	return f.sourceConnectors, f.err
}

func (f *fakeDI) SourceConnector(_ context.Context, id string) (*domain.SourceConnector, error) {
	f.record("SourceConnector %s", id)
	for i := range f.sourceConnectors {
		if f.sourceConnectors[i].ID == id {
			return &f.sourceConnectors[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDI) DestinationConnectors(_ context.Context) ([]domain.DestinationConnector, error) {
	f.record("DestinationConnectors")
	return f.destinationConnectors, f.err
}

func (f *fakeDI) DestinationConnector(_ context.Context, id string) (*domain.DestinationConnector, error) {
	f.record("DestinationConnector %s", id)
	for i := range f.destinationConnectors {
		if f.destinationConnectors[i].ID == id {
			return &f.destinationConnectors[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDI) ListSources(_ context.Context, opts driving.ListOptions) ([]domain.Source, error) {
	f.record("ListSources")
	f.lastOpts = opts
	return f.sources, f.err
}

func (f *fakeDI) GetSource(_ context.Context, id string) (*domain.Source, error) {
	f.record("GetSource %s", id)
	for i := range f.sources {
		if f.sources[i].ID == id {
			return &f.sources[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDI) SourceStatus(_ context.Context, id string) (*domain.Status, error) {
	f.record("SourceStatus %s", id)
	return f.status, f.err
}

func (f *fakeDI) SourceMetadata(_ context.Context, id string) ([]domain.TableMeta, error) {
	f.record("SourceMetadata %s", id)
	return f.tables, f.err
}

func (f *fakeDI) ExtractSourceMetadata(_ context.Context, id string) ([]domain.TableMeta, error) {
	f.record("ExtractSourceMetadata %s", id)
	return f.tables, f.err
}

func (f *fakeDI) CreateSource(_ context.Context, spec domain.SourceSpec) (*domain.Source, error) {
	f.record("CreateSource")
	f.sourceSpec = &spec
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Source{ID: "src-new", Name: spec.Name, ConnectorID: *spec.ConnectorID}, nil
}

func (f *fakeDI) UpdateSource(_ context.Context, id string, spec domain.SourceSpec) (*domain.Source, error) {
	f.record("UpdateSource %s", id)
	f.sourceSpec = &spec
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Source{ID: id, Name: spec.Name}, nil
}

func (f *fakeDI) DeleteSource(_ context.Context, id string) error {
	f.record("DeleteSource %s", id)
	return f.err
}

func (f *fakeDI) ListDestinations(_ context.Context, opts driving.ListOptions) ([]domain.Destination, error) {
	f.record("ListDestinations")
	f.lastOpts = opts
	return f.destinations, f.err
}

func (f *fakeDI) GetDestination(_ context.Context, id string) (*domain.Destination, error) {
	f.record("GetDestination %s", id)
	for i := range f.destinations {
		if f.destinations[i].ID == id {
			return &f.destinations[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDI) DestinationStatus(_ context.Context, id string) (*domain.Status, error) {
	f.record("DestinationStatus %s", id)
	return f.status, f.err
}

func (f *fakeDI) CreateDestination(_ context.Context, spec domain.DestinationSpec) (*domain.Destination, error) {
	f.record("CreateDestination")
	f.destSpec = &spec
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Destination{ID: "dst-new", Name: spec.Name, ConnectorID: *spec.ConnectorID}, nil
}

func (f *fakeDI) UpdateDestination(_ context.Context, id string, spec domain.DestinationSpec) (*domain.Destination, error) {
	f.record("UpdateDestination %s", id)
	f.destSpec = &spec
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Destination{ID: id, Name: spec.Name}, nil
}

func (f *fakeDI) DeleteDestination(_ context.Context, id string) error {
	f.record("DeleteDestination %s", id)
	return f.err
}

func (f *fakeDI) ListWorkflows(_ context.Context, opts driving.ListOptions) ([]domain.Workflow, error) {
	f.record("ListWorkflows")
	f.lastOpts = opts
	return f.workflows, f.err
}

func (f *fakeDI) GetWorkflow(_ context.Context, id string) (*domain.Workflow, error) {
	f.record("GetWorkflow %s", id)
	for i := range f.workflows {
		if f.workflows[i].ID == id {
			return &f.workflows[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDI) CreateWorkflow(_ context.Context, spec domain.WorkflowSpec) (*domain.Workflow, error) {
	f.record("CreateWorkflow")
	f.workflowSpec = &spec
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Workflow{ID: "wf-new", Name: spec.Name, Region: spec.Region, Enabled: spec.Enabled}, nil
}

func (f *fakeDI) UpdateWorkflow(_ context.Context, id string, patch domain.WorkflowPatch) (*domain.Workflow, error) {
	f.record("UpdateWorkflow %s", id)
	f.workflowPatch = &patch
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Workflow{ID: id}, nil
}

func (f *fakeDI) SetWorkflowEnabled(_ context.Context, id string, enabled bool) (*domain.Workflow, error) {
	f.record("SetWorkflowEnabled %s %t", id, enabled)
	f.enabled = &enabled
	return &domain.Workflow{ID: id, Enabled: enabled}, f.err
}

func (f *fakeDI) DeleteWorkflow(_ context.Context, id string) error {
	f.record("DeleteWorkflow %s", id)
	return f.err
}

func (f *fakeDI) RunWorkflow(_ context.Context, id string) (*domain.Job, error) {
	f.record("RunWorkflow %s", id)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Job{ID: "job-new", Status: "PENDING"}, nil
}

func (f *fakeDI) ListJobs(_ context.Context, workflowID string, opts driving.ListOptions) ([]domain.Job, error) {
	f.record("ListJobs %s", workflowID)
	f.lastWorkflowID = workflowID
	f.lastOpts = opts
	return f.jobs, f.err
}

func (f *fakeDI) GetJob(_ context.Context, workflowID, id string) (*domain.Job, error) {
	f.record("GetJob %s %s", workflowID, id)
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDI) StopJob(_ context.Context, workflowID, id string) error {
	f.record("StopJob %s %s", workflowID, id)
	return f.err
}

// fakePrompter answers prompts from scripted queues and records the questions.
type fakePrompter struct {
	inputs   []string
	secrets  []string
	confirms []bool
	selects  []int

	asked []string
}

func (p *fakePrompter) Input(prompt, initial string) (string, error) {
	p.asked = append(p.asked, prompt)
	if len(p.inputs) == 0 {
		return "", fmt.Errorf("unexpected input prompt %q", prompt)
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	if answer == "" {
		return initial, nil
	}
	return answer, nil
}

func (p *fakePrompter) Secret(prompt string) (string, error) {
	p.asked = append(p.asked, prompt)
	if len(p.secrets) == 0 {
		return "", fmt.Errorf("unexpected secret prompt %q", prompt)
	}
	answer := p.secrets[0]
	p.secrets = p.secrets[1:]
	return answer, nil
}

func (p *fakePrompter) Confirm(prompt string) (bool, error) {
	p.asked = append(p.asked, prompt)
	if len(p.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt %q", prompt)
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *fakePrompter) Select(_ context.Context, title string, items []picker.Item, _ int) (int, error) {
	p.asked = append(p.asked, title)
	if len(p.selects) == 0 {
		return -1, fmt.Errorf("unexpected select %q", title)
	}
	idx := p.selects[0]
	p.selects = p.selects[1:]
	if idx < 0 {
		return -1, domain.ErrCanceled
	}
	if idx >= len(items) {
		return -1, fmt.Errorf("select %q: index %d out of %d items", title, idx, len(items))
	}
	return idx, nil
}

// testEnv holds the fakes wired into the commands by setupCLI.
type testEnv struct {
	ctx      *fakeContext
	auth     *fakeAuth
	account  *fakeAccount
	di       *fakeDI
	prompter *fakePrompter
}

// setupCLI installs fakes and resets every flag. Session logs go to a
// per-test temp dir.
func setupCLI(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("TMPDIR", t.TempDir())

	ctx := newFakeContext()
	env := &testEnv{
		ctx:      ctx,
		auth:     &fakeAuth{contexts: ctx},
		account:  &fakeAccount{},
		di:       &fakeDI{serviceName: "project-1"},
		prompter: &fakePrompter{},
	}

	oldPrompter := prompter
	oldNow := now
	prompter = env.prompter
	SetServices(Services{Context: env.ctx, Auth: env.auth, Account: env.account, DataIntegration: env.di})
	resetFlags(rootCmd)

	t.Cleanup(func() {
		prompter = oldPrompter
		now = oldNow
		SetServices(Services{})
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		_ = logger.Close()
	})
	return env
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireCalls(t *testing.T, di *fakeDI, calls ...string) {
	t.Helper()
	require.Equal(t, calls, di.calls)
}

func strPtr(s string) *string { return &s }
