package result

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const realignmentAnswer = `Take a breath. Here is what matters today.

**DROP:**
* **Reorganize the garage:** It can wait until the weekend.
* **Reply to newsletter:** Not tied to any of your goals.

**FOCUS:**
* **Finish the budget:** Your financial security depends on it.
* **Call Mom:** Family is one of your core values.
  Keep it short.`

func TestNewRealignment_Sections(t *testing.T) {
	env := NewRealignment(realignmentAnswer)

	assert.Equal(t, realignmentAnswer, env.FilteredTodos)
	assert.Equal(t, []Item{
		{Title: "Reorganize the garage", Description: "It can wait until the weekend."},
		{Title: "Reply to newsletter", Description: "Not tied to any of your goals."},
	}, env.Drop)
	assert.Equal(t, []Item{
		{Title: "Finish the budget", Description: "Your financial security depends on it."},
		{Title: "Call Mom", Description: "Family is one of your core values.\n  Keep it short."},
	}, env.Focus)
	assert.Equal(t, "Finish the budget", env.TodaysFocus)
}

func TestNewRealignment_CaseInsensitive(t *testing.T) {
	env := NewRealignment("**drop:**\n* **A:** a\n**focus:**\n* **B:** b")

	require.Len(t, env.Drop, 1)
	require.Len(t, env.Focus, 1)
	assert.Equal(t, "B", env.TodaysFocus)
}

func TestNewRealignment_SkipsUnboldedBullets(t *testing.T) {
	env := NewRealignment("**DROP:**\n* plain bullet\n* **Bold:** kept\n**FOCUS:**\n* nothing bold")

	assert.Equal(t, []Item{{Title: "Bold", Description: "kept"}}, env.Drop)
	assert.Empty(t, env.Focus)
	assert.Empty(t, env.TodaysFocus)
}

func TestNewRealignment_MissingSections(t *testing.T) {
	tests := []string{
		"Just do the most important thing first.",
		"**DROP:**\n* **A:** only drop",
		"**FOCUS:**\n* **B:** only focus",
	}

	for _, text := range tests {
		env := NewRealignment(text)
		assert.Equal(t, text, env.FilteredTodos)
		assert.Nil(t, env.Drop)
		assert.Nil(t, env.Focus)
		assert.Empty(t, env.TodaysFocus)

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, env))
		assert.NotContains(t, buf.String(), `"drop"`)
		assert.Contains(t, buf.String(), `"filtered_todos"`)
	}
}
