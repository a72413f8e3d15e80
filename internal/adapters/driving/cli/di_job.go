package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

var diJobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage workflow jobs",
}

var diJobListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the jobs of a workflow",
	Args:    cobra.NoArgs,
	RunE:    runJobList,
}

var diJobGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a job",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJobGet,
}

var diJobStopCmd = &cobra.Command{
	Use:   "stop [id]",
	Short: "Stop a running job",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJobStop,
}

var (
	jobListFlags  listFlags
	jobOutput     string
	jobWorkflowID string
)

func init() {
	jobListFlags.register(diJobListCmd, domain.JobSortKeys, domain.SortAge)
	registerObjectOutput(diJobGetCmd, &jobOutput)
	for _, c := range []*cobra.Command{diJobListCmd, diJobGetCmd, diJobStopCmd} {
		c.Flags().StringVar(&jobWorkflowID, "workflow-id", "", "workflow ID (interactive if not set)")
	}

	diJobCmd.AddCommand(diJobListCmd, diJobGetCmd, diJobStopCmd)
	diCmd.AddCommand(diJobCmd)
}

func runJobList(cmd *cobra.Command, _ []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	opts, err := jobListFlags.options()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	workflowID := jobWorkflowID
	if workflowID == "" {
		if workflowID, err = pickWorkflow(ctx); err != nil {
			return err
		}
		printCommand(out(cmd), withServiceName("di job list --workflow-id "+workflowID, serviceName))
	}

	jobs, err := spin(cmd, "Loading jobs", func(ctx context.Context) ([]domain.Job, error) {
		return diService.ListJobs(ctx, workflowID, opts)
	})
	if err != nil {
		return err
	}
	return showList(cmd, "Jobs", jobView, jobs, &jobListFlags)
}

// jobIDs resolves the workflow and job ids, asking for the missing ones.
// A missing workflow always makes the job interactive as well.
func jobIDs(cmd *cobra.Command, args []string, serviceName, command string) (string, string, error) {
	ctx := cmd.Context()
	workflowID := jobWorkflowID
	var id string
	if len(args) > 0 {
		id = args[0]
	}
	if workflowID != "" && id != "" {
		return workflowID, id, nil
	}

	if workflowID == "" {
		var err error
		if workflowID, err = pickWorkflow(ctx); err != nil {
			return "", "", err
		}
	}
	jobs, err := diService.ListJobs(ctx, workflowID, defaultListOptions)
	if err != nil {
		return "", "", err
	}
	if id, err = pick(ctx, "Select a job", "job", jobView, jobs, jobID); err != nil {
		return "", "", err
	}
	printCommand(out(cmd), withServiceName(
		fmt.Sprintf("di job %s %s --workflow-id %s", command, id, workflowID), serviceName))
	return workflowID, id, nil
}

func runJobGet(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(jobOutput, objectOutputs); err != nil {
		return err
	}
	workflowID, id, err := jobIDs(cmd, args, serviceName, "get")
	if err != nil {
		return err
	}
	job, err := diService.GetJob(cmd.Context(), workflowID, id)
	if err != nil {
		return err
	}
	return printObject(out(cmd), jobView, *job, jobOutput)
}

func runJobStop(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	workflowID, id, err := jobIDs(cmd, args, serviceName, "stop")
	if err != nil {
		return err
	}
	if err := spinErr(cmd, "Stopping job", func(ctx context.Context) error {
		return diService.StopJob(ctx, workflowID, id)
	}); err != nil {
		return err
	}
	printSuccess(out(cmd), fmt.Sprintf("Job %s stopped", id))
	return nil
}
