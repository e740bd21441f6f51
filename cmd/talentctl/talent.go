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

var talentCmd = &cobra.Command{
	Use:   "talent",
	Short: "Browse and manage the talent pool",
}

var talentBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse interviewed candidates",
	RunE:  runTalentBrowse,
}

var talentShowCmd = &cobra.Command{
	Use:   "show <candidate-id>",
	Short: "Show one candidate's full profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runTalentShow,
}

var talentStatusCmd = &cobra.Command{
	Use:   "status <candidate-id> <status>",
	Short: "Move a candidate to a new pipeline state",
	Args:  cobra.ExactArgs(2),
	RunE:  runTalentStatus,
}

var talentShortlistCmd = &cobra.Command{
	Use:   "shortlist <candidate-id>...",
	Short: "Shortlist one or more candidates",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return bulkStatus(cmd, args, types.MatchShortlisted)
	},
}

var talentRejectCmd = &cobra.Command{
	Use:   "reject <candidate-id>...",
	Short: "Reject one or more candidates",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return bulkStatus(cmd, args, types.MatchRejected)
	},
}

var talentContactCmd = &cobra.Command{
	Use:   "contact <candidate-id>",
	Short: "Request an introduction to a candidate",
	Args:  cobra.ExactArgs(1),
	RunE:  runTalentContact,
}

var talentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the current view as CSV",
	RunE:  runTalentExport,
}

var (
	browseVertical string
	browseRoleType string
	browseMinScore float64
	browseSearch   string
	browseLimit    int
	browseOffset   int

	contactMessage string
	exportDir      string
)

func browseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&browseVertical, "vertical", "", "Filter by vertical, e.g. SOFTWARE")
	cmd.Flags().StringVar(&browseRoleType, "role-type", "", "Filter by role type")
	cmd.Flags().Float64Var(&browseMinScore, "min-score", -1, "Minimum best score, 0-10")
	cmd.Flags().StringVar(&browseSearch, "search", "", "Free-text search")
}

func init() {
	browseFlags(talentBrowseCmd)
	talentBrowseCmd.Flags().IntVar(&browseLimit, "limit", 20, "Page size")
	talentBrowseCmd.Flags().IntVar(&browseOffset, "offset", 0, "Page offset")

	browseFlags(talentExportCmd)
	talentExportCmd.Flags().StringVar(&exportDir, "dir", ".", "Directory for the CSV file")

	talentContactCmd.Flags().StringVar(&contactMessage, "message", "", "Message to include with the introduction")

	talentCmd.AddCommand(talentBrowseCmd)
	talentCmd.AddCommand(talentShowCmd)
	talentCmd.AddCommand(talentStatusCmd)
	talentCmd.AddCommand(talentShortlistCmd)
	talentCmd.AddCommand(talentRejectCmd)
	talentCmd.AddCommand(talentContactCmd)
	talentCmd.AddCommand(talentExportCmd)
	rootCmd.AddCommand(talentCmd)
}

func currentBrowseOptions() api.BrowseOptions {
	opts := api.BrowseOptions{
		Vertical: types.Vertical(strings.ToUpper(browseVertical)),
		RoleType: browseRoleType,
		Search:   browseSearch,
		Limit:    browseLimit,
		Offset:   browseOffset,
	}
	if browseMinScore >= 0 {
		opts.MinScore = &browseMinScore
	}
	return opts
}

func runTalentBrowse(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	page, err := client.TalentPool.Browse(cmd.Context(), currentBrowseOptions())
	if err != nil {
		return mapAuthError(store, err)
	}

	if len(page.Candidates) == 0 {
		fmt.Fprintln(os.Stdout, "No candidates match.")
		return nil
	}
	for _, c := range page.Candidates {
		status := string(c.MatchStatus)
		if status == "" {
			status = "-"
		}
		fmt.Fprintf(os.Stdout, "%s  %-10s score %-5s %-12s %s\n",
			c.CandidateID, c.Vertical, formatScore(c.BestScore), status, c.Name)
	}
	fmt.Fprintf(os.Stdout, "Showing %d of %d\n", len(page.Candidates), page.Total)
	return nil
}

func runTalentShow(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid candidate id %q: %w", args[0], err)
	}

	detail, err := client.TalentPool.Profile(cmd.Context(), id)
	if err != nil {
		return mapAuthError(store, err)
	}

	if detail.Candidate != nil {
		c := detail.Candidate.Candidate
		fmt.Fprintf(os.Stdout, "%s <%s>\n", c.Name, c.Email)
		if c.University != "" {
			fmt.Fprintf(os.Stdout, "%s, %s\n", c.University, c.Major)
		}
		if len(c.TargetRoles) > 0 {
			fmt.Fprintf(os.Stdout, "Target roles: %s\n", strings.Join(c.TargetRoles, ", "))
		}
	}
	if detail.Profile != nil {
		fmt.Fprintf(os.Stdout, "%s  best %s over %d attempts\n",
			detail.Profile.Vertical, formatScore(detail.Profile.BestScore), detail.Profile.AttemptCount)
	}
	if detail.Completion != nil {
		fmt.Fprintf(os.Stdout, "Profile: resume=%t github=%t interview=%t education=%t\n",
			detail.Completion.HasResume, detail.Completion.HasGitHub,
			detail.Completion.HasInterview, detail.Completion.HasEducation)
	}
	if detail.Interview != nil {
		fmt.Fprintf(os.Stdout, "Best interview %s  score %s\n",
			detail.Interview.SessionID, formatScore(detail.Interview.TotalScore))
		if detail.Interview.AISummary != "" {
			fmt.Fprintf(os.Stdout, "%s\n", detail.Interview.AISummary)
		}
	}
	if detail.EmployerStatus != nil {
		fmt.Fprintf(os.Stdout, "Pipeline status: %s\n", detail.EmployerStatus.Status)
	}
	return nil
}

func runTalentStatus(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid candidate id %q: %w", args[0], err)
	}

	status, err := client.TalentPool.UpdateMatchStatus(cmd.Context(), id, types.MatchStatus(strings.ToUpper(args[1])))
	if err != nil {
		return mapAuthError(store, err)
	}
	fmt.Fprintf(os.Stdout, "Candidate %s is now %s\n", id, status.Status)
	return nil
}

func bulkStatus(cmd *cobra.Command, args []string, status types.MatchStatus) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ids := make([]uuid.UUID, 0, len(args))
	for _, raw := range args {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid candidate id %q: %w", raw, err)
		}
		ids = append(ids, id)
	}

	if err := client.TalentPool.BulkUpdateStatus(cmd.Context(), ids, status); err != nil {
		return mapAuthError(store, err)
	}
	fmt.Fprintf(os.Stdout, "Moved %d candidates to %s\n", len(ids), status)
	return nil
}

func runTalentContact(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid candidate id %q: %w", args[0], err)
	}

	status, err := client.TalentPool.Contact(cmd.Context(), id, contactMessage)
	if err != nil {
		return mapAuthError(store, err)
	}
	fmt.Fprintf(os.Stdout, "Introduction requested; candidate is now %s\n", status.Status)
	return nil
}

func runTalentExport(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	path, err := client.TalentPool.SaveCSV(cmd.Context(), exportDir, currentBrowseOptions())
	if err != nil {
		return mapAuthError(store, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}
