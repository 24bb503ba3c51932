package cmd

import (
	"context"
	"fmt"
	"os"

	"focuslock/internal/llm"
	"focuslock/internal/questionbank"
	"focuslock/internal/questiongen"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the challenge question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bank questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		custom := make(map[string]bool)
		for _, q := range eng.CustomQuestions() {
			custom[q.ID] = true
		}

		for _, q := range eng.Bank().All() {
			origin := "seed"
			if custom[q.ID] {
				origin = "gen"
			}
			fmt.Printf("%-8s d%d  %-8s  %-6s  %s\n",
				q.ID, q.Difficulty, q.Category, origin, q.Prompt)
		}
		fmt.Printf("\n%d questions (%d generated).\n", eng.Bank().Size(), len(custom))
		return nil
	},
}

var bankGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate new questions with the configured LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryStr, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		category := questionbank.Category(categoryStr)
		valid := false
		for _, c := range questionbank.AllCategories() {
			if c == category {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown category %q", categoryStr)
		}
		if difficulty < questionbank.MinDifficulty || difficulty > questionbank.MaxDifficulty {
			return fmt.Errorf("difficulty must be %d-%d",
				questionbank.MinDifficulty, questionbank.MaxDifficulty)
		}

		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			return fmt.Errorf("question generation needs an API key")
		}

		existing := make([]string, 0, eng.Bank().Size())
		for _, q := range eng.Bank().All() {
			existing = append(existing, q.Prompt)
		}

		gen := questiongen.New(provider, questiongen.DefaultConfig())
		questions, err := gen.Generate(ctx, questiongen.GenerateInput{
			Category:        category,
			Difficulty:      difficulty,
			Count:           count,
			ExistingPrompts: existing,
		})
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		if err := eng.AddCustomQuestions(ctx, questions); err != nil {
			return fmt.Errorf("save questions: %w", err)
		}

		fmt.Printf("Added %d question(s):\n", len(questions))
		for _, q := range questions {
			fmt.Printf("  d%d  %s\n", q.Difficulty, q.Prompt)
		}
		return nil
	},
}

func init() {
	bankGenCmd.Flags().String("category", "math", "Question category: math, logic, or reading")
	bankGenCmd.Flags().Int("difficulty", 3, "Target difficulty (1-5)")
	bankGenCmd.Flags().Int("count", 5, "Number of questions to generate")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankGenCmd)
}
