package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlfreif/storybook/internal/book"
)

func TestCharacterCodes(t *testing.T) {
	assert.Equal(t, []string{"cu"}, book.CharacterCodes("cu-01.yaml"))
	assert.Equal(t, []string{"cu", "ha"}, book.CharacterCodes("cu-ha-02.yaml"))
	assert.Equal(t, []string{"cu", "em"}, book.CharacterCodes("cu-em-11.yaml"))
	assert.Empty(t, book.CharacterCodes("01.yaml"))
	// Segments longer or shorter than two letters are not codes.
	assert.Empty(t, book.CharacterCodes("cover-1.yaml"))
	assert.Empty(t, book.CharacterCodes("c-03.yaml"))
}

func TestOtherCharacters(t *testing.T) {
	assert.Equal(t, []string{"em"}, book.OtherCharacters("cu-em-05.yaml", "cu"))
	assert.Empty(t, book.OtherCharacters("cu-05.yaml", "cu"))
}

func TestSpreadNumber(t *testing.T) {
	t.Run("numeric final segment", func(t *testing.T) {
		n, ok := book.SpreadNumber("cu-07.yaml")
		assert.True(t, ok)
		assert.Equal(t, 7, n)

		n, ok = book.SpreadNumber("cu-em-11.yaml")
		assert.True(t, ok)
		assert.Equal(t, 11, n)
	})

	t.Run("non-numeric final segment is flagged, not parsed", func(t *testing.T) {
		_, ok := book.SpreadNumber("cu-intro.yaml")
		assert.False(t, ok)

		// A numeric segment in the middle does not count.
		_, ok = book.SpreadNumber("cu-03-draft.yaml")
		assert.False(t, ok)
	})
}

func TestInferNodeType(t *testing.T) {
	assert.Equal(t, book.NodeSolo, book.InferNodeType("cu-01.yaml"))
	assert.Equal(t, book.NodeMeeting, book.InferNodeType("cu-em-05.yaml"))
}

func TestNodeTypeValid(t *testing.T) {
	for _, nt := range book.NodeTypes {
		assert.True(t, nt.Valid(), nt)
	}
	assert.False(t, book.NodeType("duet").Valid())
	assert.False(t, book.NodeType("").Valid())
}

func TestPageID(t *testing.T) {
	assert.Equal(t, "cu-01", book.PageID("cu-01.yaml"))
	assert.Equal(t, "cu-01", book.PageID("cu-01"))
}
