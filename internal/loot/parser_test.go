package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

func TestParse_Success(t *testing.T) {
	// ARRANGE
	text := "Zezima has looted:\n\n" +
		"2 x [Iron ore](https://example.com/iron) (120gp)\n" +
		"1 x [Dragon bones](https://example.com/bones)\n" +
		"From: [Green dragon](https://example.com/dragon)"

	// ACT
	event, err := Parse(text)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "Zezima", event.Username)
	assert.Equal(t, "Green dragon", event.Source)
	require.Len(t, event.Items, 2)
	assert.Equal(t, domain.ItemQuantity{Name: "Iron ore", Quantity: 2}, event.Items[0])
	assert.Equal(t, domain.ItemQuantity{Name: "Dragon bones", Quantity: 1}, event.Items[1])
}

func TestParse_PreservesItemOrder(t *testing.T) {
	text := "Zezima has looted:\n" +
		"1 x [Coins]\n" +
		"3 x [Yew logs]\n" +
		"1 x [Coins]\n"

	event, err := Parse(text)

	require.NoError(t, err)
	require.Len(t, event.Items, 3)
	assert.Equal(t, "Coins", event.Items[0].Name)
	assert.Equal(t, "Yew logs", event.Items[1].Name)
	assert.Equal(t, "Coins", event.Items[2].Name)
}

func TestParse_NoUser(t *testing.T) {
	_, err := Parse("2 x [Iron ore]")
	assert.ErrorIs(t, err, domain.ErrNoUser)

	_, err = Parse(" has looted:\n1 x [Coins]")
	assert.ErrorIs(t, err, domain.ErrNoUser)
}

func TestParse_UsernameTooLong(t *testing.T) {
	// 16 characters, one over the cap
	_, err := Parse("abcdefghijklmnop has looted:\n1 x [Coins]")
	assert.ErrorIs(t, err, domain.ErrUsernameTooLong)

	// Exactly 15 characters is accepted
	event, err := Parse("abcdefghijklmno has looted:\n1 x [Coins]")
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmno", event.Username)
}

func TestParse_NoItems(t *testing.T) {
	_, err := Parse("Zezima has looted:\n\nFrom: [Green dragon]")
	assert.ErrorIs(t, err, domain.ErrNoItems)
}

func TestParse_MalformedQuantityBecomesZero(t *testing.T) {
	text := "Zezima has looted:\nmany x [Coins]\n"

	event, err := Parse(text)

	require.NoError(t, err)
	require.Len(t, event.Items, 1)
	assert.Equal(t, "Coins", event.Items[0].Name)
	assert.Equal(t, int64(0), event.Items[0].Quantity)
}

func TestParse_NoSourceLine(t *testing.T) {
	event, err := Parse("Zezima has looted:\n1 x [Coins]\n")

	require.NoError(t, err)
	assert.Empty(t, event.Source)
}

func TestParse_UnterminatedItemBracket(t *testing.T) {
	event, err := Parse("Zezima has looted:\n5 x [Rune essence\n")

	require.NoError(t, err)
	require.Len(t, event.Items, 1)
	assert.Equal(t, "Rune essence", event.Items[0].Name)
	assert.Equal(t, int64(5), event.Items[0].Quantity)
}
