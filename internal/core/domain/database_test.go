package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_Empty(t *testing.T) {
	db := NewDatabase(nil, nil)

	assert.Empty(t, db.Literals())
	assert.Empty(t, db.StrokeLiterals())
	assert.Equal(t, 0, db.CharacterCount())
	_, ok := db.Character('亜')
	assert.False(t, ok)
}

func TestDatabase_LiteralsAscending(t *testing.T) {
	db := NewDatabase(map[rune]CharacterRecord{
		'唖': {Literal: '唖'},
		'亜': {Literal: '亜'},
		'个': {Literal: '个'},
	}, nil)

	assert.Equal(t, []rune{'个', '亜', '唖'}, db.Literals())
}

func TestDatabase_EitherSideAbsent(t *testing.T) {
	db := NewDatabase(
		map[rune]CharacterRecord{'亜': {Literal: '亜'}},
		map[rune]StrokeRecipe{'个': {Strokes: []PathDescriptor{{D: "M1,2"}}}},
	)

	_, ok := db.Strokes('亜')
	assert.False(t, ok)
	_, ok = db.Character('个')
	assert.False(t, ok)

	_, ok = db.Character('亜')
	assert.True(t, ok)
	_, ok = db.Strokes('个')
	assert.True(t, ok)
	assert.Equal(t, []rune{'个'}, db.StrokeLiterals())
}

func TestDatabase_AccessorsReturnCopies(t *testing.T) {
	db := NewDatabase(
		map[rune]CharacterRecord{'亜': {Literal: '亜', Meanings: []string{"Asia"}}},
		map[rune]StrokeRecipe{'亜': {Strokes: []PathDescriptor{{D: "M1,2"}}}},
	)

	rec, ok := db.Character('亜')
	require.True(t, ok)
	rec.Meanings[0] = "mutated"

	recipe, ok := db.Strokes('亜')
	require.True(t, ok)
	recipe.Strokes[0].D = "mutated"

	again, _ := db.Character('亜')
	assert.Equal(t, "Asia", again.Meanings[0])
	againRecipe, _ := db.Strokes('亜')
	assert.Equal(t, "M1,2", againRecipe.Strokes[0].D)
}
