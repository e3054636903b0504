package keypad

import "github.com/pkg/errors"

// KeyCount is the number of logical keys on the keypad.
const KeyCount = 16

// ErrDuplicateKey is returned when a layout maps one physical code to
// more than one logical key.
var ErrDuplicateKey = errors.New("physical key mapped twice")

// Layout maps each logical key 0x0-0xF to a host-specific physical code.
// A zero entry leaves the logical key unmapped.
type Layout [KeyCount]rune

// DefaultLayout places the 4x4 keypad on the left side of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  q w e r
//	7 8 9 E      a s d f
//	A 0 B F      z x c v
var DefaultLayout = Layout{
	0x0: 'x',
	0x1: '1',
	0x2: '2',
	0x3: '3',
	0x4: 'q',
	0x5: 'w',
	0x6: 'e',
	0x7: 'a',
	0x8: 's',
	0x9: 'd',
	0xa: 'z',
	0xb: 'c',
	0xc: '4',
	0xd: 'r',
	0xe: 'f',
	0xf: 'v',
}

// Validate returns an error if a physical code is bound to multiple keys.
func (l Layout) Validate() error {
	for i, a := range l {
		if a == 0 {
			continue
		}
		for j := i + 1; j < KeyCount; j++ {
			if l[j] == a {
				return errors.Wrapf(ErrDuplicateKey, "%q for keys %X and %X", a, i, j)
			}
		}
	}
	return nil
}

// Lookup returns the logical key bound to the given physical code.
// Returns false if the code is not mapped.
func (l Layout) Lookup(code rune) (int, bool) {
	if code == 0 {
		return 0, false
	}
	for i, c := range l {
		if c == code {
			return i, true
		}
	}
	return 0, false
}
