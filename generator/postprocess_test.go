package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostProcess(t *testing.T) {
	d, err := PostProcess("\n\n오늘은 **맑았다**.\n\n")
	require.NoError(t, err)
	assert.Equal(t, "오늘은 **맑았다**.", d.Text)
	assert.Contains(t, d.HTML, "<strong>맑았다</strong>")
}

func TestPostProcessStripsFence(t *testing.T) {
	d, err := PostProcess("```markdown\n오늘의 일기\n```")
	require.NoError(t, err)
	assert.Equal(t, "오늘의 일기", d.Text)
}

func TestPostProcessEmpty(t *testing.T) {
	_, err := PostProcess("   \n")
	require.Error(t, err)
}

func TestPostProcessKeepsFirstWordOfFencedProse(t *testing.T) {
	d, err := PostProcess("```오늘은\n친구와 카페에 갔다.\n```")
	require.NoError(t, err)
	assert.Equal(t, "오늘은\n친구와 카페에 갔다.", d.Text)

	d, err = PostProcess("```\n비가 왔다.\n```")
	require.NoError(t, err)
	assert.Equal(t, "비가 왔다.", d.Text)

	d, err = PostProcess("```md\n산책.\n```")
	require.NoError(t, err)
	assert.Equal(t, "산책.", d.Text)
}

func TestIsInfoString(t *testing.T) {
	assert.True(t, isInfoString(""))
	assert.True(t, isInfoString("markdown"))
	assert.True(t, isInfoString("c++"))
	assert.False(t, isInfoString("오늘은"))
	assert.False(t, isInfoString("today was"))
	assert.False(t, isInfoString("Today"))
}
