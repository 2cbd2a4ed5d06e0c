package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeMultipleChoiceLetterInHead(t *testing.T) {
	options := []string{"Nucleus", "Mitochondria", "Ribosome", "Chloroplast"}

	assert.True(t, gradeMultipleChoice("B", options, 1))
	assert.True(t, gradeMultipleChoice("b) because...", options, 1))
	assert.True(t, gradeMultipleChoice("  B is correct", options, 1))
	// Letter beyond the head window does not count on its own.
	assert.False(t, gradeMultipleChoice("the correct option here is b", options, 1))
}

func TestGradeMultipleChoiceLiteralText(t *testing.T) {
	options := []string{"Nucleus", "Mitochondria", "Ribosome", "Chloroplast"}

	assert.True(t, gradeMultipleChoice("It is the mitochondria.", options, 1))
	assert.True(t, gradeMultipleChoice("MITOCHONDRIA", options, 1))
	assert.False(t, gradeMultipleChoice("It is the nucleus.", options, 1))
}

func TestGradeMultipleChoiceOutOfRangeAnswer(t *testing.T) {
	options := []string{"a", "b"}

	assert.False(t, gradeMultipleChoice("a", options, -1))
	assert.False(t, gradeMultipleChoice("a", options, 2))
}

func TestGradeContainment(t *testing.T) {
	assert.True(t, gradeContainment("Paris is the capital.", "paris"))
	assert.False(t, gradeContainment("London, I believe.", "paris"))
}

func TestGradeUncertainty(t *testing.T) {
	assert.True(t, gradeUncertainty("I don't know the answer.", true))
	assert.True(t, gradeUncertainty("That is UNCLEAR to me.", true))
	assert.False(t, gradeUncertainty("The answer is 4.", true))

	assert.True(t, gradeUncertainty("The answer is 4.", false))
	assert.False(t, gradeUncertainty("I cannot answer that.", false))
}

func TestLetterPrompt(t *testing.T) {
	got := letterPrompt([]string{"one", "two", "three"})
	assert.Equal(t, "A) one\nB) two\nC) three", got)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, ratio(0, 0))
	assert.Equal(t, 0.5, ratio(1, 2))
}
