package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/wellness"
)

const assessmentBarWidth = 24

// FormatQuestion renders the current question with its radio options.
// cursor is the option under the keyboard cursor, -1 for none.
func FormatQuestion(a *wellness.Assessment, cursor int) string {
	q, ok := a.Current()
	if !ok {
		return Dim("Assessment complete.")
	}
	pending, hasPending := a.Pending()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim(fmt.Sprintf("Question %d of %d", a.Index()+1, a.Len())),
		Dim(fmt.Sprintf("· %d%% complete", int(math.Round(a.ProgressPct()))))))
	b.WriteString(RenderCompactBar(a.ProgressPct()/100, assessmentBarWidth, false) + "\n\n")
	b.WriteString(Bold(q.Prompt) + "\n\n")

	for i, o := range q.Options {
		radio := Dim("○")
		label := StyleFg.Render(o.Label)
		if hasPending && o.Value == pending {
			radio = StyleGreen.Render("●")
			label = StyleGreen.Render(o.Label)
		}
		b.WriteString(Cursor(i == cursor) + radio + " " + label + "\n")
	}

	b.WriteString("\n")
	back := Dim("‹ Back")
	if a.CanGoBack() {
		back = StyleFg.Render("‹ Back")
	}
	nextLabel := "Next ›"
	if a.IsLast() {
		nextLabel = "Complete ✔"
	}
	next := Dim(nextLabel)
	if a.CanAdvance() {
		next = StyleGreen.Render(nextLabel)
	}
	b.WriteString(back + "    " + next)

	return RenderBox("Wellness Assessment", b.String())
}

// FormatAssessmentResult renders the submitted score and each recorded answer.
func FormatAssessmentResult(r *domain.AssessmentResult, questions []domain.Question, maxScore int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Score:"), Bold(fmt.Sprintf("%d / %d", r.Score, maxScore))))

	for i, v := range r.Answers {
		label := fmt.Sprintf("%d", v)
		prompt := fmt.Sprintf("Question %d", i+1)
		if i < len(questions) {
			prompt = questions[i].Prompt
			for _, o := range questions[i].Options {
				if o.Value == v {
					label = o.Label
					break
				}
			}
		}
		b.WriteString(fmt.Sprintf("%s %s\n   %s\n", Dim(fmt.Sprintf("%d.", i+1)), StyleFg.Render(prompt), StyleGreen.Render(label)))
	}
	return RenderBox("Assessment Results", strings.TrimRight(b.String(), "\n"))
}
