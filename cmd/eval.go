package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/evaluation"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/hints"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/llm"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/misconception"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/rewards"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/store"
)

var evalCmd = &cobra.Command{
	Use:   "eval [request.json]",
	Short: "Evaluate an answer and award XP and coins",
	Long: `Reads an evaluation request (JSON) from the given file or stdin,
grades the answer, and appends the evaluation and reward events to the store.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		withLLM, _ := cmd.Flags().GetBool("feedback")

		req, err := readRequest(args)
		if err != nil {
			return err
		}

		res, err := evaluation.Evaluate(rewards.DefaultTables(), req)
		if err != nil {
			var reqErr *evaluation.RequestError
			if errors.As(err, &reqErr) {
				return fmt.Errorf("invalid request: %s: %s", reqErr.Field, reqErr.Message)
			}
			return err
		}

		if !dryRun {
			if err := persistResult(cmd, req, res); err != nil {
				return err
			}
		}

		if withLLM {
			rephraseFeedback(cmd, req, res)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		printResult(res)
		return nil
	},
}

func readRequest(args []string) (*evaluation.Request, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open request file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req evaluation.Request
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &req, nil
}

// persistResult appends the evaluation and its reward as two events
// sharing the evaluation ID.
func persistResult(cmd *cobra.Command, req *evaluation.Request, res *evaluation.Result) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	repo := s.EventRepo()

	ids := make([]string, 0, len(res.Misconceptions))
	for _, m := range res.Misconceptions {
		ids = append(ids, m.ID)
	}

	userAnswer := req.UserAnswer.Single()
	if req.QuestionType == evaluation.TypeStepByStep {
		userAnswer = strings.Join(req.UserAnswer.Steps(), " → ")
	}

	err = repo.AppendEvaluation(ctx, store.EvaluationEventData{
		EvaluationID:      res.ID,
		QuestionType:      string(req.QuestionType),
		Difficulty:        req.Difficulty,
		ExpectedAnswer:    res.CorrectAnswer,
		UserAnswer:        userAnswer,
		Correct:           res.IsCorrect,
		EquivalenceMethod: string(res.Method()),
		IsClose:           res.Verdict != nil && res.Verdict.IsClose,
		Skipped:           req.Skipped,
		MisconceptionIDs:  ids,
		CatalogVersion:    misconception.CatalogVersion,
		HintsUsed:         req.HintsUsed,
		TimeSpentSeconds:  req.TimeSpentSeconds,
	})
	if err != nil {
		return fmt.Errorf("append evaluation event: %w", err)
	}

	err = repo.AppendReward(ctx, store.RewardEventData{
		EvaluationID:  res.ID,
		XPTotal:       res.XP.Total,
		CoinTotal:     res.Coins.Total,
		XPBreakdown:   toMap(res.XP),
		CoinBreakdown: toMap(res.Coins),
		StreakFrozen:  res.StreakFrozen,
	})
	if err != nil {
		return fmt.Errorf("append reward event: %w", err)
	}
	return nil
}

// rephraseFeedback asks the configured LLM to phrase the feedback text.
// Failures leave the engine's deterministic feedback in place.
func rephraseFeedback(cmd *cobra.Command, req *evaluation.Request, res *evaluation.Result) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleWarn.Render("feedback: "+err.Error()))
		return
	}
	s, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleWarn.Render("feedback: "+err.Error()))
		return
	}
	defer s.Close()

	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, styleWarn.Render("LLM provider not configured: "+err.Error()))
		return
	}

	gen := hints.NewGenerator(provider, hints.DefaultGeneratorConfig())
	text, err := gen.Feedback(ctx, &hints.FeedbackRequest{
		QuestionType:   string(req.QuestionType),
		ExpectedAnswer: res.CorrectAnswer,
		UserAnswer:     req.UserAnswer.Single(),
		Correct:        res.IsCorrect,
		IsClose:        res.Verdict != nil && res.Verdict.IsClose,
		Misconceptions: res.Misconceptions,
		Fallback:       res.Feedback,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, styleWarn.Render("LLM feedback unavailable: "+err.Error()))
	}
	res.Feedback = text
}

func printResult(res *evaluation.Result) {
	if res.IsCorrect {
		fmt.Println(styleSuccess.Render("✓ Correct"), styleDim.Render("("+string(res.Method())+")"))
	} else {
		fmt.Println(styleError.Render("✗ Incorrect"))
	}
	fmt.Println(res.Feedback)

	for _, step := range res.StepResults {
		mark := styleSuccess.Render("✓")
		if !step.Correct {
			mark = styleError.Render("✗")
		}
		fmt.Printf("  %s step %d: %s", mark, step.StepNumber, step.Actual)
		if !step.Correct {
			fmt.Printf("  %s", styleDim.Render("expected "+step.Expected))
		}
		fmt.Println()
	}

	if len(res.Misconceptions) > 0 {
		fmt.Println()
		fmt.Println(styleHeading.Render("Detected error patterns"))
		seen := map[string]bool{}
		for _, m := range res.Misconceptions {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			fmt.Printf("  %s — %s\n", m.Name, m.RemediationHint)
		}
	}

	fmt.Println()
	fmt.Println(styleHeading.Render("Rewards"))
	fmt.Printf("  XP    %4d", res.XP.Total)
	if res.XP.Total > 0 {
		fmt.Printf("  %s", styleDim.Render(xpDetail(res)))
	}
	fmt.Println()
	fmt.Printf("  Coins %4d", res.Coins.Total)
	if len(res.Coins.Bonuses) > 0 {
		parts := make([]string, 0, len(res.Coins.Bonuses))
		for _, b := range res.Coins.Bonuses {
			parts = append(parts, fmt.Sprintf("%s ×%.2f", b.Type, b.Magnitude))
		}
		fmt.Printf("  %s", styleDim.Render(strings.Join(parts, ", ")))
	}
	fmt.Println()

	if res.StreakFrozen {
		fmt.Println(styleWarn.Render("  Streak freeze used — your streak survives this one."))
	}
}

func xpDetail(res *evaluation.Result) string {
	var parts []string
	add := func(label string, v float64) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s %+.1f", label, v))
		}
	}
	parts = append(parts, fmt.Sprintf("base %.0f", res.XP.Base))
	add("hints", -res.XP.HintPenalty)
	add("time", res.XP.TimeBonus)
	add("streak", res.XP.StreakBonus)
	add("equivalence", res.XP.EquivalenceBonus)
	return strings.Join(parts, ", ")
}

// toMap converts a breakdown struct to the JSON map shape the event
// store persists.
func toMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	return m
}

func init() {
	evalCmd.Flags().Bool("json", false, "Print the full result as JSON")
	evalCmd.Flags().Bool("dry-run", false, "Evaluate without writing events to the store")
	evalCmd.Flags().Bool("feedback", false, "Rephrase feedback with the configured LLM provider")
}
