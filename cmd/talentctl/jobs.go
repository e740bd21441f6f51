package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talentloop/talentloop-go/internal/api"
	"github.com/talentloop/talentloop-go/internal/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage job postings",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your job postings",
	RunE:  runJobsList,
}

var jobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a new job",
	RunE:  runJobsCreate,
}

var jobsActivateCmd = &cobra.Command{
	Use:   "activate <job-id>",
	Short: "Reactivate a job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setJobActive(cmd, args[0], true) },
}

var jobsDeactivateCmd = &cobra.Command{
	Use:   "deactivate <job-id>",
	Short: "Deactivate a job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setJobActive(cmd, args[0], false) },
}

var (
	jobsActiveOnly   bool
	jobsInactiveOnly bool
	jobsLimit        int
	jobsOffset       int

	jobTitle        string
	jobDescription  string
	jobVertical     string
	jobRoleType     string
	jobRequirements string
	jobLocation     string
	jobSalaryMin    int
	jobSalaryMax    int
)

func init() {
	jobsListCmd.Flags().BoolVar(&jobsActiveOnly, "active", false, "Only active jobs")
	jobsListCmd.Flags().BoolVar(&jobsInactiveOnly, "inactive", false, "Only inactive jobs")
	jobsListCmd.Flags().IntVar(&jobsLimit, "limit", 20, "Page size")
	jobsListCmd.Flags().IntVar(&jobsOffset, "offset", 0, "Page offset")

	jobsCreateCmd.Flags().StringVar(&jobTitle, "title", "", "Job title (required)")
	jobsCreateCmd.Flags().StringVar(&jobDescription, "description", "", "Job description (required)")
	jobsCreateCmd.Flags().StringVar(&jobVertical, "vertical", "", "Vertical, e.g. SOFTWARE (required)")
	jobsCreateCmd.Flags().StringVar(&jobRoleType, "role-type", "", "Role type within the vertical (required)")
	jobsCreateCmd.Flags().StringVar(&jobRequirements, "requirements", "", "Comma-separated requirements")
	jobsCreateCmd.Flags().StringVar(&jobLocation, "location", "", "Location")
	jobsCreateCmd.Flags().IntVar(&jobSalaryMin, "salary-min", 0, "Minimum salary")
	jobsCreateCmd.Flags().IntVar(&jobSalaryMax, "salary-max", 0, "Maximum salary")
	_ = jobsCreateCmd.MarkFlagRequired("title")
	_ = jobsCreateCmd.MarkFlagRequired("description")
	_ = jobsCreateCmd.MarkFlagRequired("vertical")
	_ = jobsCreateCmd.MarkFlagRequired("role-type")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsCreateCmd)
	jobsCmd.AddCommand(jobsActivateCmd)
	jobsCmd.AddCommand(jobsDeactivateCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsList(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := api.JobListOptions{Limit: jobsLimit, Offset: jobsOffset}
	switch {
	case jobsActiveOnly && jobsInactiveOnly:
		return fmt.Errorf("--active and --inactive are mutually exclusive")
	case jobsActiveOnly:
		active := true
		opts.Active = &active
	case jobsInactiveOnly:
		active := false
		opts.Active = &active
	}

	list, err := client.Employers.ListJobs(cmd.Context(), opts)
	if err != nil {
		return mapAuthError(store, err)
	}

	if len(list.Jobs) == 0 {
		fmt.Fprintln(os.Stdout, "No jobs found.")
		return nil
	}
	for _, job := range list.Jobs {
		state := "inactive"
		if job.IsActive {
			state = "active"
		}
		fmt.Fprintf(os.Stdout, "%s  %-8s %-10s %s\n", job.ID, state, job.Vertical, job.Title)
	}
	fmt.Fprintf(os.Stdout, "Showing %d of %d\n", len(list.Jobs), list.Total)
	return nil
}

func runJobsCreate(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	req := types.CreateJobRequest{
		Title:       jobTitle,
		Description: jobDescription,
		Vertical:    types.Vertical(strings.ToUpper(jobVertical)),
		RoleType:    jobRoleType,
		Location:    jobLocation,
	}
	for _, r := range strings.Split(jobRequirements, ",") {
		if r = strings.TrimSpace(r); r != "" {
			req.Requirements = append(req.Requirements, r)
		}
	}
	if cmd.Flags().Changed("salary-min") {
		req.SalaryMin = &jobSalaryMin
	}
	if cmd.Flags().Changed("salary-max") {
		req.SalaryMax = &jobSalaryMax
	}

	job, err := client.Employers.CreateJob(cmd.Context(), req)
	if err != nil {
		return mapAuthError(store, err)
	}
	fmt.Fprintf(os.Stdout, "Created job %s: %s\n", job.ID, job.Title)
	return nil
}

func setJobActive(cmd *cobra.Command, rawID string, active bool) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", rawID, err)
	}

	job, err := client.Employers.SetJobActive(cmd.Context(), id, active)
	if err != nil {
		return mapAuthError(store, err)
	}

	state := "deactivated"
	if job.IsActive {
		state = "activated"
	}
	fmt.Fprintf(os.Stdout, "Job %s %s: %s\n", job.ID, state, job.Title)
	return nil
}
