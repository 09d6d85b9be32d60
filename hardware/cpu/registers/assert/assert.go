package assert

import (
	"reflect"
	"testing"

	"github.com/jetsetilly/gopher65/hardware/cpu/registers"
)

// Assert is used to test equality between one value and another.
//
// The first value should be a register type (or a plain value resulting
// from a register operation); the second value is what the register is
// expected to hold. A StatusRegister can be compared against a string of
// eight flag characters, upper-case meaning set ("NV-BDIZC").
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()
	switch r := r.(type) {
	default:
		t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert Register failed (%#02x - wanted %#02x)", r.Value(), x)
			}
		}

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Address()) != x {
				t.Errorf("assert ProgramCounter failed (%#04x - wanted %#04x)", r.Address(), x)
			}
		}

	case registers.StatusRegister:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert StatusRegister failed (%#02x - wanted %#02x)", r.Value(), x)
			}

		case string:
			if len(x) != 8 {
				t.Fatalf("assert StatusRegister failed (flag string must be 8 chars)")
			}
			if x[0] != 'n' && !r.Sign || x[0] != 'N' && r.Sign {
				t.Errorf("assert StatusRegister failed (unexpected sign flag) [%s]", r)
			}
			if x[1] != 'v' && !r.Overflow || x[1] != 'V' && r.Overflow {
				t.Errorf("assert StatusRegister failed (unexpected overflow flag) [%s]", r)
			}
			if x[3] != 'b' && !r.Break || x[3] != 'B' && r.Break {
				t.Errorf("assert StatusRegister failed (unexpected break flag) [%s]", r)
			}
			if x[4] != 'd' && !r.Decimal || x[4] != 'D' && r.Decimal {
				t.Errorf("assert StatusRegister failed (unexpected decimal flag) [%s]", r)
			}
			if x[5] != 'i' && !r.InterruptDisable || x[5] != 'I' && r.InterruptDisable {
				t.Errorf("assert StatusRegister failed (unexpected interrupt disable flag) [%s]", r)
			}
			if x[6] != 'z' && !r.Zero || x[6] != 'Z' && r.Zero {
				t.Errorf("assert StatusRegister failed (unexpected zero flag) [%s]", r)
			}
			if x[7] != 'c' && !r.Carry || x[7] != 'C' && r.Carry {
				t.Errorf("assert StatusRegister failed (unexpected carry flag) [%s]", r)
			}
		}

	case uint8:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r) != x {
				t.Errorf("assert uint8 failed (%#02x - wanted %#02x)", r, x)
			}
		}

	case uint16:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

		case int:
			if int(r) != x {
				t.Errorf("assert uint16 failed (%#04x - wanted %#04x)", r, x)
			}
		}

	case string:
		if r != x.(string) {
			t.Errorf("assert string failed (%v - wanted %v)", r, x.(string))
		}

	case bool:
		if r != x.(bool) {
			t.Errorf("assert bool failed (%v - wanted %v)", r, x.(bool))
		}

	case int:
		if r != x.(int) {
			t.Errorf("assert int failed (%d - wanted %d)", r, x.(int))
		}
	}
}
