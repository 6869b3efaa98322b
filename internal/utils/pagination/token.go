package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
)

// MaxLimit caps the page size a client may request.
const MaxLimit = 500

const offsetMarker = "offset"

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pagination token format (base64 decode)", apperrors.ErrValidation)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// EncodeOffsetToken encodes a position into a result list. scope ties the
// token to the listing it was issued for (e.g. an account id plus the query).
func EncodeOffsetToken(scope string, offset int) string {
	return EncodeMultiFieldToken(offsetMarker, strconv.Itoa(offset), scope)
}

// DecodeOffsetToken returns the offset carried by token. Tokens issued for a
// different scope are rejected.
func DecodeOffsetToken(token, scope string) (int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	// scope may itself contain the separator, so rejoin the tail.
	if len(parts) < 3 || parts[0] != offsetMarker {
		return 0, fmt.Errorf("%w: invalid pagination token format (fields)", apperrors.ErrValidation)
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: invalid pagination token format (offset)", apperrors.ErrValidation)
	}
	if strings.Join(parts[2:], "|") != scope {
		return 0, fmt.Errorf("%w: pagination token does not match this query", apperrors.ErrValidation)
	}
	return offset, nil
}

// Paginate slices items into one page. A limit <= 0 returns everything from the
// token's offset on. The next token is empty on the last page.
func Paginate[T any](items []T, limit int, token, scope string) ([]T, string, error) {
	offset := 0
	if token != "" {
		var err error
		if offset, err = DecodeOffsetToken(token, scope); err != nil {
			return nil, "", err
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset >= len(items) {
		return []T{}, "", nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	next := ""
	if end < len(items) {
		next = EncodeOffsetToken(scope, end)
	}
	return items[offset:end], next, nil
}
