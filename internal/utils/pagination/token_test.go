package pagination

import (
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	assert.NotEmpty(t, token, "Token should not be empty")

	parts, err := DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)

	_, err = DecodeMultiFieldToken("this is not base64!")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")
}

func TestOffsetTokenRoundTripAndScope(t *testing.T) {
	scope := "acc-1|sort_by=date|q=rent"
	token := EncodeOffsetToken(scope, 40)

	offset, err := DecodeOffsetToken(token, scope)
	require.NoError(t, err)
	assert.Equal(t, 40, offset)

	_, err = DecodeOffsetToken(token, "acc-2")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "does not match")

	_, err = DecodeOffsetToken(EncodeMultiFieldToken("cursor", "1", scope), scope)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = DecodeOffsetToken(EncodeMultiFieldToken(offsetMarker, "-3", scope), scope)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, next, err := Paginate(items, 2, "", "s")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, page)
	require.NotEmpty(t, next)

	page, next, err = Paginate(items, 2, next, "s")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, page)

	page, next, err = Paginate(items, 2, next, "s")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, page)
	assert.Empty(t, next, "Last page should not carry a next token")
}

func TestPaginateWithoutLimitReturnsAll(t *testing.T) {
	page, next, err := Paginate([]string{"x", "y"}, 0, "", "s")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, page)
	assert.Empty(t, next)
}

func TestPaginatePastEnd(t *testing.T) {
	page, next, err := Paginate([]int{1}, 10, EncodeOffsetToken("s", 7), "s")
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Empty(t, next)
}
