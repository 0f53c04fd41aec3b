package services

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/xayaplatform/xaya-move-api/internal/apperr"
)

// maxTokenID bounds token identifiers to uint256.
var maxTokenID = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// NormalizeTokenID converts a token identifier given as an integer,
// decimal string or 0x-prefixed hex string into a uint256 value.
func NormalizeTokenID(tokenID interface{}) (*big.Int, error) {
	var n *big.Int

	switch v := tokenID.(type) {
	case string:
		n = parseTokenIDString(v)
	case json.Number:
		n = parseTokenIDString(v.String())
	case float64:
		// encoding/json decodes untyped numbers as float64; only whole
		// values are valid identifiers.
		if v != float64(int64(v)) {
			return nil, apperr.New(apperr.KindInvalidArgument, "token ID must be an integer, got %v", v)
		}
		n = big.NewInt(int64(v))
	case int:
		n = big.NewInt(int64(v))
	case int64:
		n = big.NewInt(v)
	case uint64:
		n = new(big.Int).SetUint64(v)
	case *big.Int:
		n = new(big.Int).Set(v)
	default:
		return nil, apperr.New(apperr.KindInvalidArgument, "token ID must be an integer or string, got %T", tokenID)
	}

	if n == nil {
		return nil, apperr.New(apperr.KindInvalidArgument, "invalid token ID %q", tokenID)
	}
	if n.Sign() < 0 || n.Cmp(maxTokenID) > 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "token ID out of uint256 range")
	}
	return n, nil
}

func parseTokenIDString(s string) *big.Int {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return nil
		}
		return n
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil
	}
	return n
}
