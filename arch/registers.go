package arch

import "fmt"

// RegisterCount is the number of general purpose registers V0-VF.
const RegisterCount = 16

// FlagRegister is the index of VF, the carry/borrow/collision side channel.
const FlagRegister = 0xf

// RegisterName returns the name associated with the given register index.
// The index is masked to 4 bits.
func RegisterName(n int) string {
	return fmt.Sprintf("V%X", n&0xf)
}
