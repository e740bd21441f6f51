package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/talentloop/talentloop-go/internal/types"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Candidate profile, resume, and sharing",
}

var candidateDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the candidate dashboard",
	RunE:  runCandidateDashboard,
}

var candidateUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the candidate profile",
	RunE:  runCandidateUpdate,
}

var candidateUploadResumeCmd = &cobra.Command{
	Use:   "upload-resume <file>",
	Short: "Upload a resume for parsing",
	Args:  cobra.ExactArgs(1),
	RunE:  runCandidateUploadResume,
}

var candidateGitHubCmd = &cobra.Command{
	Use:   "github <username>",
	Short: "Link a GitHub account to the profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runCandidateGitHub,
}

var candidateSharingCmd = &cobra.Command{
	Use:   "sharing",
	Short: "Show or change profile sharing",
	RunE:  runCandidateSharing,
}

var (
	updName      string
	updPhone     string
	updRoles     string
	updUni       string
	updMajor     string
	updGradYear  int
	updGPA       float64
	sharingState string
)

func init() {
	candidateUpdateCmd.Flags().StringVar(&updName, "name", "", "Full name")
	candidateUpdateCmd.Flags().StringVar(&updPhone, "phone", "", "Phone number in international format")
	candidateUpdateCmd.Flags().StringVar(&updRoles, "target-roles", "", "Comma-separated target roles")
	candidateUpdateCmd.Flags().StringVar(&updUni, "university", "", "University")
	candidateUpdateCmd.Flags().StringVar(&updMajor, "major", "", "Major")
	candidateUpdateCmd.Flags().IntVar(&updGradYear, "graduation-year", 0, "Graduation year")
	candidateUpdateCmd.Flags().Float64Var(&updGPA, "gpa", -1, "GPA on a 4.0 scale")

	candidateSharingCmd.Flags().StringVar(&sharingState, "set", "", "Set sharing on or off")

	candidateCmd.AddCommand(candidateDashboardCmd)
	candidateCmd.AddCommand(candidateUpdateCmd)
	candidateCmd.AddCommand(candidateUploadResumeCmd)
	candidateCmd.AddCommand(candidateGitHubCmd)
	candidateCmd.AddCommand(candidateSharingCmd)
	rootCmd.AddCommand(candidateCmd)
}

func runCandidateDashboard(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	me, err := client.Candidates.Me(cmd.Context())
	if err != nil {
		return mapAuthError(store, err)
	}

	// Resume status and vertical standings are independent reads.
	var (
		resume   *types.ResumeStatus
		profiles []types.VerticalProfile
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		resume, err = client.Candidates.ResumeStatus(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		profiles, err = client.Verticals.CandidateProfiles(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return mapAuthError(store, err)
	}

	fmt.Fprintf(os.Stdout, "%s <%s>\n", me.Name, me.Email)
	if len(me.TargetRoles) > 0 {
		fmt.Fprintf(os.Stdout, "Target roles: %s\n", strings.Join(me.TargetRoles, ", "))
	}
	if me.GitHubUsername != "" {
		fmt.Fprintf(os.Stdout, "GitHub: %s\n", me.GitHubUsername)
	}

	if resume.HasResume {
		fmt.Fprintf(os.Stdout, "Resume: %s", resume.Filename)
		if resume.UploadedAt != nil {
			fmt.Fprintf(os.Stdout, " (uploaded %s)", resume.UploadedAt.Format("2006-01-02"))
		}
		fmt.Fprintln(os.Stdout)
	} else {
		fmt.Fprintln(os.Stdout, "Resume: none on file")
	}

	if len(profiles) == 0 {
		fmt.Fprintln(os.Stdout, "No interviews yet.")
		return nil
	}
	fmt.Fprintln(os.Stdout, "Verticals:")
	for _, p := range profiles {
		fmt.Fprintf(os.Stdout, "  %-12s best %s  attempts %d", p.Vertical, formatScore(p.BestScore), p.AttemptCount)
		if p.CanInterview {
			fmt.Fprint(os.Stdout, "  can interview now")
		} else if p.NextEligibleAt != nil {
			fmt.Fprintf(os.Stdout, "  next eligible %s", p.NextEligibleAt.Format("2006-01-02"))
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

func runCandidateUpdate(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	req := types.UpdateCandidateRequest{}
	if cmd.Flags().Changed("name") {
		req.Name = &updName
	}
	if cmd.Flags().Changed("phone") {
		req.Phone = &updPhone
	}
	if cmd.Flags().Changed("target-roles") {
		for _, role := range strings.Split(updRoles, ",") {
			if role = strings.TrimSpace(role); role != "" {
				req.TargetRoles = append(req.TargetRoles, role)
			}
		}
	}
	if cmd.Flags().Changed("university") {
		req.University = &updUni
	}
	if cmd.Flags().Changed("major") {
		req.Major = &updMajor
	}
	if cmd.Flags().Changed("graduation-year") {
		req.GraduationYear = &updGradYear
	}
	if cmd.Flags().Changed("gpa") {
		req.GPA = &updGPA
	}

	candidate, err := client.Candidates.Update(cmd.Context(), req)
	if err != nil {
		return mapAuthError(store, err)
	}
	fmt.Fprintf(os.Stdout, "Updated profile for %s\n", candidate.Name)
	return nil
}

func runCandidateUploadResume(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open resume: %w", err)
	}
	defer func() { _ = f.Close() }()

	parsed, err := client.Candidates.UploadResume(cmd.Context(), filepath.Base(args[0]), f)
	if err != nil {
		return mapAuthError(store, err)
	}

	fmt.Fprintf(os.Stdout, "Parsed %d experience entries, %d education entries, %d skills\n",
		len(parsed.Experience), len(parsed.Education), len(parsed.Skills))
	return nil
}

func runCandidateGitHub(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	data, err := client.Candidates.LinkGitHub(cmd.Context(), args[0])
	if err != nil {
		return mapAuthError(store, err)
	}

	fmt.Fprintf(os.Stdout, "Linked github.com/%s: %d public repos\n", args[0], len(data.Repos))
	return nil
}

func runCandidateSharing(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var settings *types.SharingSettings
	switch sharingState {
	case "":
		settings, err = client.Candidates.Sharing(cmd.Context())
	case "on":
		settings, err = client.Candidates.SetSharing(cmd.Context(), true)
	case "off":
		settings, err = client.Candidates.SetSharing(cmd.Context(), false)
	default:
		return fmt.Errorf("--set must be 'on' or 'off', got %q", sharingState)
	}
	if err != nil {
		return mapAuthError(store, err)
	}

	if !settings.Enabled {
		fmt.Fprintln(os.Stdout, "Profile sharing is off.")
		return nil
	}
	fmt.Fprintln(os.Stdout, "Profile sharing is on.")
	if settings.ShareURL != "" {
		fmt.Fprintf(os.Stdout, "Share link: %s\n", settings.ShareURL)
	}
	return nil
}

// formatScore renders a 0-10 score with one decimal, or a dash when absent.
func formatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *score)
}
