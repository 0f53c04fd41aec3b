package subgraph

import (
	"encoding/hex"
	"math/big"
)

// hexTokenID converts a token ID to the hex string the subgraph uses as
// a Name entity ID. The encoding matches AssemblyScript's
// ByteArray.fromBigInt: little-endian, variable length, with a sign
// byte appended when the top bit of the highest byte is set.
func hexTokenID(n *big.Int) string {
	if n.Sign() == 0 {
		return "0x00"
	}

	be := n.Bytes()
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	if le[len(le)-1]&0x80 != 0 {
		le = append(le, 0x00)
	}

	return "0x" + hex.EncodeToString(le)
}
