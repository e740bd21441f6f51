package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talentloop/talentloop-go/internal/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store a session token",
}

var loginCandidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Log in as a candidate",
	RunE:  runLoginCandidate,
}

var loginEmployerCmd = &cobra.Command{
	Use:   "employer",
	Short: "Log in as an employer",
	RunE:  runLoginEmployer,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear stored session tokens",
	RunE:  runLogout,
}

var (
	loginEmail    string
	loginPassword string
)

func init() {
	for _, cmd := range []*cobra.Command{loginCandidateCmd, loginEmployerCmd} {
		cmd.Flags().StringVar(&loginEmail, "email", "", "Email address (required)")
		cmd.Flags().StringVar(&loginPassword, "password", "", "Password (required)")
		_ = cmd.MarkFlagRequired("email")
		_ = cmd.MarkFlagRequired("password")
	}

	loginCmd.AddCommand(loginCandidateCmd)
	loginCmd.AddCommand(loginEmployerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLoginCandidate(cmd *cobra.Command, args []string) error {
	client, _, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	candidate, err := client.Auth.LoginCandidate(cmd.Context(), types.LoginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Logged in as candidate %s\n", candidate.Name)
	return nil
}

func runLoginEmployer(cmd *cobra.Command, args []string) error {
	client, _, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	employer, err := client.Auth.LoginEmployer(cmd.Context(), types.LoginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Logged in as employer %s\n", employer.CompanyName)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	client, _, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := client.Auth.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Logged out.")
	return nil
}
