package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bestiaryFixture = "Name\tMembers\tSlayer\tCombat\n" +
	"Chicken\tNo\t1\t1\n" +
	"Green dragon\tYes\t1\t79\n" +
	"Green dragon (level 88)\tYes\t1\t88\n" +
	"Kurask\tYes\t70\t106\n" +
	"Zulrah - Serpentine\tYes\t1\t725\n"

func TestLoadBestiary(t *testing.T) {
	// ARRANGE & ACT
	b, err := LoadBestiary(strings.NewReader(bestiaryFixture))
	require.NoError(t, err)

	// ASSERT
	level, ok := b.CombatLevel("Green dragon")
	assert.True(t, ok)
	assert.Equal(t, 79, level)

	level, ok = b.CombatLevel("Chicken")
	assert.True(t, ok)
	assert.Equal(t, 1, level)
}

func TestLoadBestiary_FirstOccurrenceWins(t *testing.T) {
	b, err := LoadBestiary(strings.NewReader(bestiaryFixture))
	require.NoError(t, err)

	// "Green dragon (level 88)" cleans to "Green dragon", which is
	// already present, so the level 79 row is kept.
	level, ok := b.CombatLevel("green dragon")
	assert.True(t, ok)
	assert.Equal(t, 79, level)
}

func TestLoadBestiary_CleansWikiSuffixes(t *testing.T) {
	b, err := LoadBestiary(strings.NewReader(bestiaryFixture))
	require.NoError(t, err)

	level, ok := b.CombatLevel("Zulrah")
	assert.True(t, ok)
	assert.Equal(t, 725, level)
}

func TestLoadBestiary_SkipsHeaderAndShortRows(t *testing.T) {
	input := "Name\tMembers\tSlayer\tCombat\nBroken row\nCow\tNo\t1\t2\n"

	b, err := LoadBestiary(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, b.Size())
	_, ok := b.CombatLevel("Name")
	assert.False(t, ok, "Header row should not produce an entry")
}

func TestCombatLevel_CaseInsensitive(t *testing.T) {
	b, err := LoadBestiary(strings.NewReader(bestiaryFixture))
	require.NoError(t, err)

	level, ok := b.CombatLevel("  KURASK ")
	assert.True(t, ok)
	assert.Equal(t, 106, level)
}

func TestCombatLevel_UnknownMonster(t *testing.T) {
	b, err := LoadBestiary(strings.NewReader(bestiaryFixture))
	require.NoError(t, err)

	_, ok := b.CombatLevel("Loch Ness monster")
	assert.False(t, ok)
}
