package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talentloop/talentloop-go/internal/api"
	"github.com/talentloop/talentloop-go/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run and review AI-scored interviews",
}

var interviewStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new interview session",
	RunE:  runInterviewStart,
}

var interviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interview sessions",
	RunE:  runInterviewList,
}

var interviewShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session with per-question scores",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterviewShow,
}

var interviewCancelCmd = &cobra.Command{
	Use:   "cancel <session-id>",
	Short: "Cancel a pending or scheduled session",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterviewCancel,
}

var interviewUploadCmd = &cobra.Command{
	Use:   "upload-video <session-id> <response-id> <file>",
	Short: "Upload the recorded answer for one question",
	Args:  cobra.ExactArgs(3),
	RunE:  runInterviewUpload,
}

var interviewCodingCmd = &cobra.Command{
	Use:   "coding-results <session-id>",
	Short: "Fetch coding feedback, waiting for scoring to finish",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterviewCoding,
}

var (
	startCandidateID string
	startJobID       string
	startPractice    bool

	listStatus string
	listLimit  int
	listOffset int

	codingAttempts int
	codingInterval time.Duration
)

func init() {
	interviewStartCmd.Flags().StringVar(&startCandidateID, "candidate-id", "", "Candidate id (required)")
	interviewStartCmd.Flags().StringVar(&startJobID, "job-id", "", "Job id; omit for an open interview")
	interviewStartCmd.Flags().BoolVar(&startPractice, "practice", false, "Practice session, not scored for the talent pool")
	_ = interviewStartCmd.MarkFlagRequired("candidate-id")

	interviewListCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status, e.g. COMPLETED")
	interviewListCmd.Flags().IntVar(&listLimit, "limit", 20, "Page size")
	interviewListCmd.Flags().IntVar(&listOffset, "offset", 0, "Page offset")

	interviewCodingCmd.Flags().IntVar(&codingAttempts, "max-attempts", 0, "Polling attempt ceiling")
	interviewCodingCmd.Flags().DurationVar(&codingInterval, "interval", 0, "Wait between polling attempts")

	interviewCmd.AddCommand(interviewStartCmd)
	interviewCmd.AddCommand(interviewListCmd)
	interviewCmd.AddCommand(interviewShowCmd)
	interviewCmd.AddCommand(interviewCancelCmd)
	interviewCmd.AddCommand(interviewUploadCmd)
	interviewCmd.AddCommand(interviewCodingCmd)
	rootCmd.AddCommand(interviewCmd)
}

func runInterviewStart(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	candidateID, err := uuid.Parse(startCandidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate id %q: %w", startCandidateID, err)
	}

	opts := api.StartInterviewOptions{CandidateID: candidateID, Practice: startPractice}
	if startJobID != "" {
		jobID, err := uuid.Parse(startJobID)
		if err != nil {
			return fmt.Errorf("invalid job id %q: %w", startJobID, err)
		}
		opts.JobID = &jobID
	}

	interview, err := client.Interviews.Start(cmd.Context(), opts)
	if err != nil {
		return mapAuthError(store, err)
	}

	fmt.Fprintf(os.Stdout, "Started session %s (%s)\n", interview.ID, interview.Status)
	for _, r := range interview.Responses {
		fmt.Fprintf(os.Stdout, "  Q%d %s  %s\n", r.QuestionIndex+1, r.ID, r.QuestionText)
	}
	return nil
}

func runInterviewList(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	list, err := client.Interviews.List(cmd.Context(), api.InterviewListOptions{
		Status: types.InterviewStatus(strings.ToUpper(listStatus)),
		Limit:  listLimit,
		Offset: listOffset,
	})
	if err != nil {
		return mapAuthError(store, err)
	}

	if len(list.Interviews) == 0 {
		fmt.Fprintln(os.Stdout, "No sessions found.")
		return nil
	}
	for _, s := range list.Interviews {
		kind := "scored"
		if s.IsPractice {
			kind = "practice"
		}
		fmt.Fprintf(os.Stdout, "%s  %-12s %-8s score %s  %s\n",
			s.ID, s.Status, kind, formatScore(s.TotalScore), s.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(os.Stdout, "Showing %d of %d\n", len(list.Interviews), list.Total)
	return nil
}

func runInterviewShow(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", args[0], err)
	}

	s, err := client.Interviews.Get(cmd.Context(), id)
	if err != nil {
		return mapAuthError(store, err)
	}

	fmt.Fprintf(os.Stdout, "Session %s  %s  total %s\n", s.ID, s.Status, formatScore(s.TotalScore))
	if s.AISummary != "" {
		fmt.Fprintf(os.Stdout, "Summary: %s\n", s.AISummary)
	}
	for _, r := range s.Responses {
		fmt.Fprintf(os.Stdout, "\nQ%d: %s\n", r.QuestionIndex+1, r.QuestionText)
		fmt.Fprintf(os.Stdout, "  Score: %s\n", formatScore(r.AIScore))
		if r.ScoreDetails != nil {
			d := r.ScoreDetails
			fmt.Fprintf(os.Stdout, "  Communication %.1f  Technical %.1f  Problem solving %.1f  Relevance %.1f  Confidence %.1f\n",
				d.Communication, d.TechnicalDepth, d.ProblemSolving, d.Relevance, d.Confidence)
			for _, strength := range d.Strengths {
				fmt.Fprintf(os.Stdout, "  + %s\n", strength)
			}
			for _, concern := range d.Concerns {
				fmt.Fprintf(os.Stdout, "  - %s\n", concern)
			}
		}
	}
	return nil
}

func runInterviewCancel(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", args[0], err)
	}

	if err := client.Interviews.Cancel(cmd.Context(), id); err != nil {
		return mapAuthError(store, err)
	}
	fmt.Fprintf(os.Stdout, "Cancelled session %s\n", id)
	return nil
}

func runInterviewUpload(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	sessionID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", args[0], err)
	}
	responseID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid response id %q: %w", args[1], err)
	}

	f, err := os.Open(args[2])
	if err != nil {
		return fmt.Errorf("open video: %w", err)
	}
	defer func() { _ = f.Close() }()

	resp, err := client.Interviews.UploadResponseVideo(cmd.Context(), sessionID, responseID, filepath.Base(args[2]), f)
	if err != nil {
		return mapAuthError(store, err)
	}
	fmt.Fprintf(os.Stdout, "Uploaded answer for Q%d\n", resp.QuestionIndex+1)
	return nil
}

func runInterviewCoding(cmd *cobra.Command, args []string) error {
	client, store, log, err := newAPIClient()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", args[0], err)
	}

	var opts *api.PollOptions
	if codingAttempts > 0 || codingInterval > 0 {
		opts = &api.PollOptions{MaxAttempts: codingAttempts, Interval: codingInterval}
	}

	feedback, err := client.Interviews.PollCodingResults(cmd.Context(), id, opts)
	if err != nil {
		return mapAuthError(store, err)
	}

	if feedback.Status == types.FeedbackFailed {
		fmt.Fprintln(os.Stdout, "Coding evaluation failed; retry the exercise.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "Coding score: %s\n", formatScore(feedback.Score))
	if feedback.Analysis != "" {
		fmt.Fprintf(os.Stdout, "%s\n", feedback.Analysis)
	}
	for _, strength := range feedback.Strengths {
		fmt.Fprintf(os.Stdout, "+ %s\n", strength)
	}
	for _, concern := range feedback.Concerns {
		fmt.Fprintf(os.Stdout, "- %s\n", concern)
	}
	return nil
}
