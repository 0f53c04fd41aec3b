package services

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/xayaplatform/xaya-move-api/internal/apperr"
)

// NormalizeAddress validates an Ethereum address string and returns its
// checksummed form. Single-case input is checksummed first; mixed-case
// input must already carry a valid EIP-55 checksum.
func NormalizeAddress(addr string) (common.Address, error) {
	if addr == "" {
		return common.Address{}, apperr.New(apperr.KindInvalidArgument, "address must not be empty")
	}
	if !common.IsHexAddress(addr) {
		return common.Address{}, apperr.New(apperr.KindInvalidArgument, "invalid Ethereum address format: %q", addr)
	}

	hexPart := strings.TrimPrefix(addr, "0x")
	singleCase := hexPart == strings.ToLower(hexPart) || hexPart == strings.ToUpper(hexPart)

	parsed := common.HexToAddress(addr)
	if !singleCase && parsed.Hex() != "0x"+hexPart {
		return common.Address{}, apperr.New(apperr.KindInvalidArgument, "address %q is not a valid checksummed Ethereum address", addr)
	}
	return parsed, nil
}
