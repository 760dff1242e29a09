package cli

import (
	"fmt"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/spf13/cobra"
)

func newAssessmentCmd(a *App) *cobra.Command {
	var answers []int

	cmd := &cobra.Command{
		Use:   "assessment",
		Short: "List the assessment questions, or score a set of answers",
		Example: `  mindmate assessment
  mindmate assessment --answers 3,2,1,3,2,0,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			quiz := wellness.NewAssessment(c.Questions)
			out := cmd.OutOrStdout()

			if len(answers) == 0 {
				for i, q := range quiz.Questions() {
					fmt.Fprintf(out, "%s %s\n", formatter.Dim(fmt.Sprintf("%d.", i+1)), formatter.Bold(q.Prompt))
					for _, o := range q.Options {
						fmt.Fprintf(out, "   %s %s\n", formatter.StyleBlue.Render(fmt.Sprintf("%d", o.Value)), o.Label)
					}
				}
				return nil
			}

			if len(answers) != quiz.Len() {
				return fmt.Errorf("expected %d answers, got %d", quiz.Len(), len(answers))
			}
			for i, v := range answers {
				if !quiz.SelectAnswer(v) {
					return fmt.Errorf("answer %d for question %d is not one of its options", v, i+1)
				}
				quiz.Next()
			}
			result, _ := quiz.Result()
			fmt.Fprintln(out, formatter.FormatAssessmentResult(result, quiz.Questions(), quiz.MaxScore()))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&answers, "answers", nil, "Answer values in question order")

	return cmd
}
