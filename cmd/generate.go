package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyansh/neetdost/internal/questiongen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate NEET-pattern practice questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		chapters, _ := cmd.Flags().GetStringSlice("chapters")
		topics, _ := cmd.Flags().GetStringSlice("topics")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		provider, s, err := setup(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		gen := questiongen.New(provider, questiongen.DefaultConfig())
		questions, err := gen.Generate(cmd.Context(), questiongen.Params{
			Subject:    subject,
			Chapters:   chapters,
			Topics:     topics,
			Difficulty: questiongen.Difficulty(difficulty),
			Count:      count,
		})
		if err != nil {
			// The returned message is user-safe; the cause is diagnostic only.
			if cause := errors.Unwrap(err); cause != nil {
				fmt.Fprintf(os.Stderr, "diagnostic: %v\n", cause)
			}
			return err
		}

		for i, q := range questions {
			fmt.Printf("Q%d. [%s · %s · %s] %s\n", i+1, q.Subject, q.Chapter, q.Difficulty, q.QuestionText)
			for j, opt := range q.Options {
				marker := " "
				if j == q.CorrectOptionIndex {
					marker = "*"
				}
				fmt.Printf("  %s %c) %s\n", marker, 'A'+j, opt)
			}
			fmt.Printf("  Explanation: %s\n\n", q.Explanation)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("subject", "", "NEET subject (Physics, Chemistry, Biology)")
	generateCmd.Flags().StringSlice("chapters", nil, "Chapters to draw from (default: full syllabus)")
	generateCmd.Flags().StringSlice("topics", nil, "Topics to draw from (default: all topics)")
	generateCmd.Flags().String("difficulty", "Medium", "Difficulty: Easy, Medium, or Hard")
	generateCmd.Flags().Int("count", 5, "Number of questions to generate")
	generateCmd.MarkFlagRequired("subject")
}
