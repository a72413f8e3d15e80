package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/picker"
	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

var diWorkflowCmd = &cobra.Command{
	Use:     "workflow",
	Aliases: []string{"wf"},
	Short:   "Manage workflows",
}

var diWorkflowListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workflows",
	Args:    cobra.NoArgs,
	RunE:    runWorkflowList,
}

var diWorkflowGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a workflow",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWorkflowGet,
}

var diWorkflowCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a workflow",
	Long: `Create a workflow moving data from a source to a destination.

Without --source-id or --destination-id they are chosen interactively,
and the description and schedule are asked for.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkflowCreate,
}

var diWorkflowUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a workflow",
	Long: `Update the name, description, schedule or state of a workflow.

Without any of --name, --description, --schedule or --enabled every field
is asked for, starting from the current values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkflowUpdate,
}

var diWorkflowDeleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a workflow",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runWorkflowDelete,
}

var diWorkflowRunCmd = &cobra.Command{
	Use:   "run [id]",
	Short: "Start a job of a workflow",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWorkflowRun,
}

var diWorkflowEnableCmd = &cobra.Command{
	Use:   "enable [id]",
	Short: "Enable a workflow",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkflowToggle(cmd, args, true)
	},
}

var diWorkflowDisableCmd = &cobra.Command{
	Use:   "disable [id]",
	Short: "Disable a workflow",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkflowToggle(cmd, args, false)
	},
}

var (
	workflowListFlags     listFlags
	workflowOutput        string
	workflowSourceID      string
	workflowDestinationID string
	workflowDescription   string
	workflowSchedule      string
	workflowRegion        string
	workflowDisabled      bool
	workflowName          string
	workflowEnabled       bool
	workflowScript        bool
)

func init() {
	workflowListFlags.register(diWorkflowListCmd, domain.WorkflowSortKeys, domain.SortName)
	for _, c := range []*cobra.Command{diWorkflowGetCmd, diWorkflowCreateCmd, diWorkflowUpdateCmd, diWorkflowRunCmd} {
		registerObjectOutput(c, &workflowOutput)
	}

	f := diWorkflowCreateCmd.Flags()
	f.StringVar(&workflowSourceID, "source-id", "", "source ID (interactive if not set)")
	f.StringVar(&workflowDestinationID, "destination-id", "", "destination ID (interactive if not set)")
	f.StringVarP(&workflowDescription, "description", "d", "", "workflow description")
	f.StringVarP(&workflowSchedule, "schedule", "s", "", "cron schedule of the workflow")
	f.StringVarP(&workflowRegion, "region", "r", "", "region where the workflow runs")
	f.BoolVar(&workflowDisabled, "disabled", false, "create the workflow disabled")
	_ = diWorkflowCreateCmd.MarkFlagRequired("region")

	f = diWorkflowUpdateCmd.Flags()
	f.StringVarP(&workflowName, "name", "n", "", "new name")
	f.StringVarP(&workflowDescription, "description", "d", "", "new description")
	f.StringVarP(&workflowSchedule, "schedule", "s", "", "new cron schedule")
	f.BoolVarP(&workflowEnabled, "enabled", "e", false, "enable or disable the workflow (--enabled=false)")

	diWorkflowDeleteCmd.Flags().BoolVarP(&workflowScript, "script", "s", false, "never prompt for confirmation")

	diWorkflowCmd.AddCommand(diWorkflowListCmd, diWorkflowGetCmd, diWorkflowCreateCmd, diWorkflowUpdateCmd,
		diWorkflowDeleteCmd, diWorkflowRunCmd, diWorkflowEnableCmd, diWorkflowDisableCmd)
	diCmd.AddCommand(diWorkflowCmd)
}

func runWorkflowList(cmd *cobra.Command, _ []string) error {
	if _, err := requireDI(); err != nil {
		return err
	}
	opts, err := workflowListFlags.options()
	if err != nil {
		return err
	}
	workflows, err := spin(cmd, "Loading workflows", func(ctx context.Context) ([]domain.Workflow, error) {
		return diService.ListWorkflows(ctx, opts)
	})
	if err != nil {
		return err
	}
	return showList(cmd, "Workflows", workflowView, workflows, &workflowListFlags)
}

// pickWorkflow lets the user choose a workflow.
func pickWorkflow(ctx context.Context) (string, error) {
	workflows, err := diService.ListWorkflows(ctx, defaultListOptions)
	if err != nil {
		return "", err
	}
	return pick(ctx, "Select a workflow", "workflow", workflowView, workflows, workflowID)
}

func workflowIDArg(cmd *cobra.Command, args []string, serviceName, command string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	id, err := pickWorkflow(cmd.Context())
	if err != nil {
		return "", err
	}
	printCommand(out(cmd), withServiceName(fmt.Sprintf("di workflow %s %s", command, id), serviceName))
	return id, nil
}

func runWorkflowGet(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(workflowOutput, objectOutputs); err != nil {
		return err
	}
	id, err := workflowIDArg(cmd, args, serviceName, "get")
	if err != nil {
		return err
	}
	workflow, err := diService.GetWorkflow(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printObject(out(cmd), workflowView, *workflow, workflowOutput)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps an empty answer to an absent value.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func runWorkflowCreate(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(workflowOutput, objectOutputs); err != nil {
		return err
	}
	ctx := cmd.Context()

	srcID := workflowSourceID
	missingSource := srcID == ""
	if missingSource {
		sources, err := diService.ListSources(ctx, defaultListOptions)
		if err != nil {
			return err
		}
		if srcID, err = pick(ctx, "Select a source", "source", sourceView, sources, sourceID); err != nil {
			return err
		}
	}

	dstID := workflowDestinationID
	missingDestination := dstID == ""
	if missingDestination {
		destinations, err := diService.ListDestinations(ctx, defaultListOptions)
		if err != nil {
			return err
		}
		if dstID, err = pick(ctx, "Select a destination", "destination",
			destinationView, destinations, destinationID); err != nil {
			return err
		}
	}

	interactive := missingSource || missingDestination
	description, schedule := workflowDescription, workflowSchedule
	if interactive {
		if description, err = prompter.Input("Enter a description (press enter to skip)", description); err != nil {
			return err
		}
		if schedule, err = prompter.Input("Enter a schedule (press enter to skip)", schedule); err != nil {
			return err
		}
	}

	spec := domain.WorkflowSpec{
		Name:          args[0],
		Region:        workflowRegion,
		Description:   optional(description),
		SourceID:      srcID,
		DestinationID: dstID,
		Schedule:      optional(schedule),
		Enabled:       !workflowDisabled,
	}

	if interactive {
		printDescription(out(cmd), workflowSpecView, spec)
		command := fmt.Sprintf("di workflow create %s --source-id %s --destination-id %s --region %s",
			spec.Name, spec.SourceID, spec.DestinationID, spec.Region)
		if spec.Description != nil {
			command += fmt.Sprintf(" --description %q", *spec.Description)
		}
		if spec.Schedule != nil {
			command += fmt.Sprintf(" --schedule %q", *spec.Schedule)
		}
		if !spec.Enabled {
			command += " --disabled"
		}
		printCommand(out(cmd), withServiceName(command, serviceName))
		if err := confirmOrCancel(fmt.Sprintf("Do you want to create the workflow %s?", spec.Name),
			"create workflow"); err != nil {
			return err
		}
	}

	workflow, err := spin(cmd, "Creating workflow", func(ctx context.Context) (*domain.Workflow, error) {
		return diService.CreateWorkflow(ctx, spec)
	})
	if err != nil {
		return err
	}
	return printObject(out(cmd), workflowView, *workflow, workflowOutput)
}

func runWorkflowUpdate(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(workflowOutput, objectOutputs); err != nil {
		return err
	}
	ctx := cmd.Context()

	id, err := workflowIDArg(cmd, args, serviceName, "update")
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	var patch domain.WorkflowPatch
	if flags.Changed("name") {
		patch.Name = &workflowName
	}
	if flags.Changed("description") {
		patch.Description = &workflowDescription
	}
	if flags.Changed("schedule") {
		patch.Schedule = &workflowSchedule
	}
	if flags.Changed("enabled") {
		patch.Enabled = &workflowEnabled
	}

	interactive := patch.IsEmpty()
	if interactive {
		if patch, err = askWorkflowPatch(ctx, id); err != nil {
			return err
		}
		printDescription(out(cmd), workflowPatchView, patch)
		printCommand(out(cmd), withServiceName(workflowUpdateCommand(id, patch), serviceName))
		if err := confirmOrCancel(fmt.Sprintf("Do you want to update the workflow %s?", id),
			"update workflow"); err != nil {
			return err
		}
	}

	workflow, err := spin(cmd, "Updating workflow", func(ctx context.Context) (*domain.Workflow, error) {
		return diService.UpdateWorkflow(ctx, id, patch)
	})
	if err != nil {
		return err
	}
	return printObject(out(cmd), workflowView, *workflow, workflowOutput)
}

// askWorkflowPatch asks every updatable field, starting from the current workflow.
func askWorkflowPatch(ctx context.Context, id string) (domain.WorkflowPatch, error) {
	current, err := diService.GetWorkflow(ctx, id)
	if err != nil {
		return domain.WorkflowPatch{}, err
	}
	name, err := prompter.Input("Enter the new name", current.Name)
	if err != nil {
		return domain.WorkflowPatch{}, err
	}
	description, err := prompter.Input("Enter the new description", deref(current.Description))
	if err != nil {
		return domain.WorkflowPatch{}, err
	}
	schedule, err := prompter.Input("Enter the new schedule", deref(current.Schedule))
	if err != nil {
		return domain.WorkflowPatch{}, err
	}
	start := 0
	if current.Enabled {
		start = 1
	}
	idx, err := prompter.Select(ctx, "Is the workflow enabled", []picker.Item{{Label: "false"}, {Label: "true"}}, start)
	if err != nil {
		return domain.WorkflowPatch{}, err
	}
	enabled := idx == 1

	return domain.WorkflowPatch{
		Name:        optional(name),
		Description: optional(description),
		Schedule:    optional(schedule),
		Enabled:     &enabled,
	}, nil
}

func workflowUpdateCommand(id string, patch domain.WorkflowPatch) string {
	command := "di workflow update " + id
	if patch.Name != nil {
		command += fmt.Sprintf(" --name %q", *patch.Name)
	}
	if patch.Enabled != nil {
		command += " --enabled=" + strconv.FormatBool(*patch.Enabled)
	}
	if patch.Description != nil {
		command += fmt.Sprintf(" --description %q", *patch.Description)
	}
	if patch.Schedule != nil {
		command += fmt.Sprintf(" --schedule %q", *patch.Schedule)
	}
	return command
}

func runWorkflowDelete(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	id, err := workflowIDArg(cmd, args, serviceName, "delete")
	if err != nil {
		return err
	}
	if !workflowScript {
		if err := confirmOrCancel(fmt.Sprintf("Are you sure you want to delete the workflow %s?", id),
			"delete workflow"); err != nil {
			return err
		}
	}
	if err := spinErr(cmd, "Deleting workflow", func(ctx context.Context) error {
		return diService.DeleteWorkflow(ctx, id)
	}); err != nil {
		return err
	}
	printSuccess(out(cmd), fmt.Sprintf("Workflow %s successfully deleted", id))
	return nil
}

func runWorkflowRun(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(workflowOutput, objectOutputs); err != nil {
		return err
	}
	id, err := workflowIDArg(cmd, args, serviceName, "run")
	if err != nil {
		return err
	}
	job, err := spin(cmd, "Running workflow", func(ctx context.Context) (*domain.Job, error) {
		return diService.RunWorkflow(ctx, id)
	})
	if err != nil {
		return err
	}
	return printObject(out(cmd), jobView, *job, workflowOutput)
}

func runWorkflowToggle(cmd *cobra.Command, args []string, enabled bool) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	verb := "disable"
	if enabled {
		verb = "enable"
	}
	id, err := workflowIDArg(cmd, args, serviceName, verb)
	if err != nil {
		return err
	}
	if _, err := spin(cmd, fmt.Sprintf("Workflow %sing", strings.TrimSuffix(verb, "e")),
		func(ctx context.Context) (*domain.Workflow, error) {
			return diService.SetWorkflowEnabled(ctx, id, enabled)
		}); err != nil {
		return err
	}
	printSuccess(out(cmd), fmt.Sprintf("Workflow %s %sd", id, verb))
	return nil
}
