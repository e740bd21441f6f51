package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentloop/talentloop-go/internal/types"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a TalentLoop account",
}

var registerCandidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Register a candidate account",
	RunE:  runRegisterCandidate,
}

var registerEmployerCmd = &cobra.Command{
	Use:   "employer",
	Short: "Register an employer account",
	RunE:  runRegisterEmployer,
}

var (
	regName        string
	regEmail       string
	regPassword    string
	regPhone       string
	regTargetRoles string
	regCompany     string
)

func init() {
	registerCandidateCmd.Flags().StringVar(&regName, "name", "", "Full name (required)")
	registerCandidateCmd.Flags().StringVar(&regEmail, "email", "", "Email address (required)")
	registerCandidateCmd.Flags().StringVar(&regPassword, "password", "", "Password, min 8 characters (required)")
	registerCandidateCmd.Flags().StringVar(&regPhone, "phone", "", "Phone number in international format, e.g. +14155550123")
	registerCandidateCmd.Flags().StringVar(&regTargetRoles, "target-roles", "", "Comma-separated target roles")
	_ = registerCandidateCmd.MarkFlagRequired("name")
	_ = registerCandidateCmd.MarkFlagRequired("email")
	_ = registerCandidateCmd.MarkFlagRequired("password")

	registerEmployerCmd.Flags().StringVar(&regCompany, "company", "", "Company name (required)")
	registerEmployerCmd.Flags().StringVar(&regEmail, "email", "", "Email address (required)")
	registerEmployerCmd.Flags().StringVar(&regPassword, "password", "", "Password, min 8 characters (required)")
	_ = registerEmployerCmd.MarkFlagRequired("company")
	_ = registerEmployerCmd.MarkFlagRequired("email")
	_ = registerEmployerCmd.MarkFlagRequired("password")

	registerCmd.AddCommand(registerCandidateCmd)
	registerCmd.AddCommand(registerEmployerCmd)
	rootCmd.AddCommand(registerCmd)
}

func runRegisterCandidate(cmd *cobra.Command, args []string) error {
	client, _, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	req := types.RegisterCandidateRequest{
		Name:     regName,
		Email:    regEmail,
		Password: regPassword,
		Phone:    regPhone,
	}
	if regTargetRoles != "" {
		for _, role := range strings.Split(regTargetRoles, ",") {
			if role = strings.TrimSpace(role); role != "" {
				req.TargetRoles = append(req.TargetRoles, role)
			}
		}
	}

	candidate, err := client.Auth.RegisterCandidate(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Registered candidate %s (%s)\n", candidate.Name, candidate.Email)
	fmt.Fprintln(os.Stdout, "You are now logged in.")
	return nil
}

func runRegisterEmployer(cmd *cobra.Command, args []string) error {
	client, _, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	employer, err := client.Auth.RegisterEmployer(cmd.Context(), types.RegisterEmployerRequest{
		CompanyName: regCompany,
		Email:       regEmail,
		Password:    regPassword,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Registered employer %s (%s)\n", employer.CompanyName, employer.Email)
	if !employer.Verified {
		fmt.Fprintln(os.Stdout, "Your account is pending verification; talent pool access unlocks once verified.")
	}
	return nil
}
