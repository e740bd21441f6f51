package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentloop/talentloop-go/internal/types"
)

var shareCmd = &cobra.Command{
	Use:   "share <token>",
	Short: "View a publicly shared candidate profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

var verticalsCmd = &cobra.Command{
	Use:   "verticals",
	Short: "List the platform's verticals and role types",
	RunE:  runVerticals,
}

var questionsCmd = &cobra.Command{
	Use:   "questions <vertical>",
	Short: "Show the interview question bank for a vertical",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuestions,
}

var questionsRoleType string

func init() {
	questionsCmd.Flags().StringVar(&questionsRoleType, "role-type", "", "Narrow to one role type")

	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(verticalsCmd)
	rootCmd.AddCommand(questionsCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	client, _, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	detail, err := client.Public.SharedProfile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if detail.Candidate == nil {
		fmt.Fprintln(os.Stdout, "This profile is not shared or the link has expired.")
		return nil
	}

	c := detail.Candidate.Candidate
	fmt.Fprintf(os.Stdout, "%s\n", c.Name)
	if c.University != "" {
		fmt.Fprintf(os.Stdout, "%s, %s\n", c.University, c.Major)
	}
	if detail.Profile != nil {
		fmt.Fprintf(os.Stdout, "%s  best %s\n", detail.Profile.Vertical, formatScore(detail.Profile.BestScore))
	}
	if detail.Interview != nil && detail.Interview.AISummary != "" {
		fmt.Fprintf(os.Stdout, "%s\n", detail.Interview.AISummary)
	}
	return nil
}

func runVerticals(cmd *cobra.Command, args []string) error {
	client, _, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	verticals, err := client.Verticals.List(cmd.Context())
	if err != nil {
		return err
	}

	for _, v := range verticals {
		fmt.Fprintf(os.Stdout, "%-12s %s\n", v.Vertical, v.Label)
		if len(v.RoleTypes) > 0 {
			fmt.Fprintf(os.Stdout, "  roles: %s\n", strings.Join(v.RoleTypes, ", "))
		}
	}
	return nil
}

func runQuestions(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	vertical := types.Vertical(strings.ToUpper(args[0]))
	questions, err := client.Questions.ForVertical(cmd.Context(), vertical, questionsRoleType)
	if err != nil {
		return mapAuthError(store, err)
	}

	if len(questions) == 0 {
		fmt.Fprintln(os.Stdout, "No questions found.")
		return nil
	}
	for _, q := range questions {
		fmt.Fprintf(os.Stdout, "%d. %s\n", q.Index+1, q.Text)
	}
	return nil
}
