package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talentloop/talentloop-go/internal/types"
)

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "Manage interview invite links",
}

var invitesCreateCmd = &cobra.Command{
	Use:   "create <job-id>",
	Short: "Mint a shareable invite link for a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvitesCreate,
}

var invitesListCmd = &cobra.Command{
	Use:   "list <job-id>",
	Short: "List invite links for a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvitesList,
}

var invitesDeactivateCmd = &cobra.Command{
	Use:   "deactivate <token>",
	Short: "Disable an invite link",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvitesDeactivate,
}

var invitesResolveCmd = &cobra.Command{
	Use:   "resolve <token>",
	Short: "Look up an invite link without logging in",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvitesResolve,
}

var (
	inviteMaxUses   int
	inviteExpiresIn time.Duration
)

func init() {
	invitesCreateCmd.Flags().IntVar(&inviteMaxUses, "max-uses", 1, "How many candidates may use the link")
	invitesCreateCmd.Flags().DurationVar(&inviteExpiresIn, "expires-in", 0, "Lifetime, e.g. 168h; zero means no expiry")

	invitesCmd.AddCommand(invitesCreateCmd)
	invitesCmd.AddCommand(invitesListCmd)
	invitesCmd.AddCommand(invitesDeactivateCmd)
	invitesCmd.AddCommand(invitesResolveCmd)
	rootCmd.AddCommand(invitesCmd)
}

func runInvitesCreate(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jobID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", args[0], err)
	}

	req := types.CreateInviteRequest{JobID: jobID, MaxUses: inviteMaxUses}
	if inviteExpiresIn > 0 {
		expiresAt := time.Now().Add(inviteExpiresIn)
		req.ExpiresAt = &expiresAt
	}

	invite, err := client.Invites.Create(cmd.Context(), req)
	if err != nil {
		return mapAuthError(store, err)
	}

	fmt.Fprintf(os.Stdout, "Invite link: %s\n", invite.InviteURL)
	fmt.Fprintf(os.Stdout, "Max uses: %d", invite.MaxUses)
	if invite.ExpiresAt != nil {
		fmt.Fprintf(os.Stdout, "  expires %s", invite.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Fprintln(os.Stdout)
	return nil
}

func runInvitesList(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jobID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", args[0], err)
	}

	invites, err := client.Invites.ListForJob(cmd.Context(), jobID)
	if err != nil {
		return mapAuthError(store, err)
	}

	if len(invites) == 0 {
		fmt.Fprintln(os.Stdout, "No invites for this job.")
		return nil
	}
	for _, invite := range invites {
		state := "inactive"
		if invite.IsActive {
			state = "active"
		}
		fmt.Fprintf(os.Stdout, "%-8s used %d/%d  %s\n", state, invite.UsedCount, invite.MaxUses, invite.InviteURL)
	}
	return nil
}

func runInvitesDeactivate(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := client.Invites.Deactivate(cmd.Context(), args[0]); err != nil {
		return mapAuthError(store, err)
	}
	fmt.Fprintln(os.Stdout, "Invite deactivated.")
	return nil
}

func runInvitesResolve(cmd *cobra.Command, args []string) error {
	client, _, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	invite, err := client.Invites.Resolve(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if !invite.IsActive {
		fmt.Fprintln(os.Stdout, "This invite link is no longer active.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "Invite for job %s, used %d/%d\n", invite.JobID, invite.UsedCount, invite.MaxUses)
	return nil
}
