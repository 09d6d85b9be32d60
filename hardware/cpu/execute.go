// This file is part of Gopher65.
//
// Gopher65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65/hardware/memory/cpubus"
)

// sentinal error returned by execute() for operators missing from the
// switch. unreachable with a well-formed definitions table.
const UnknownOperator = "cpu: unknown operator %s"

// branch loads the PC with the branch target if the condition holds. a
// taken branch takes control of the PC; an untaken branch lets Step()
// advance the PC past the instruction as normal.
func (mc *CPU) branch(flag bool, target uint16) StepOutcome {
	if flag {
		mc.PC.Load(target)
		return OKPCModified
	}
	return OK
}

// relativeTarget resolves the branch target of the ZeroPageRelative
// addressing mode. the relative offset is the last byte of the three byte
// instruction.
func (mc *CPU) relativeTarget() uint16 {
	offset := uint16(mc.mem.Read(mc.PC.Address() + 2))
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}
	return mc.PC.Address() + 3 + offset
}

// shiftTarget selects the register a shift/rotate or accumulator inc/dec
// works on: the accumulator itself, or the scratch register primed with the
// memory operand.
func (mc *CPU) shiftTarget(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	mc.acc8.Load(value)
	return &mc.acc8
}

// execute performs the operation described by the definition. the operand
// address has already been resolved according to the addressing mode.
func (mc *CPU) execute(defn *instructions.Definition, address uint16) (StepOutcome, error) {
	// value holds the memory operand for read and read-modify-write
	// operators. RMW operators leave their result in value and it is
	// written back after the switch.
	var value uint8

	hasOperand := defn.AddressingMode != instructions.Implied &&
		defn.AddressingMode != instructions.Accumulator &&
		defn.AddressingMode != instructions.Stack &&
		defn.AddressingMode != instructions.ZeroPageRelative

	if hasOperand && (defn.Effect == instructions.Read || defn.Effect == instructions.RMW) {
		value = mc.mem.Read(address)
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.UpdateZeroSign(mc.Y.Value())

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Stz:
		mc.mem.Write(address, 0)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.UpdateZeroSign(mc.Y.Value())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Pha:
		mc.Push(mc.A.Value())

	case instructions.Phx:
		mc.Push(mc.X.Value())

	case instructions.Phy:
		mc.Push(mc.Y.Value())

	case instructions.Php:
		// the break bit is always set in the pushed copy
		mc.Push(mc.Status.Value() | 0x10)

	case instructions.Pla:
		mc.A.Load(mc.Pop())
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Plx:
		mc.X.Load(mc.Pop())
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Ply:
		mc.Y.Load(mc.Pop())
		mc.Status.UpdateZeroSign(mc.Y.Value())

	case instructions.Plp:
		mc.Status.Load(mc.Pop())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		if defn.AddressingMode != instructions.Immediate {
			mc.Status.Sign = value&0x80 == 0x80
			mc.Status.Overflow = value&0x40 == 0x40
		}

	case instructions.Asl:
		r := mc.shiftTarget(defn, value)
		mc.Status.Carry = r.ASL()
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Lsr:
		r := mc.shiftTarget(defn, value)
		mc.Status.Carry = r.LSR()
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Rol:
		r := mc.shiftTarget(defn, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Ror:
		r := mc.shiftTarget(defn, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Adc:
		// the decimal flag is deliberately not honoured. it can be set and
		// cleared but arithmetic is always binary
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Cmp:
		r := mc.acc8
		r.Load(mc.A.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.UpdateZeroSign(r.Value())

	case instructions.Cpx:
		r := mc.acc8
		r.Load(mc.X.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.UpdateZeroSign(r.Value())

	case instructions.Cpy:
		r := mc.acc8
		r.Load(mc.Y.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.UpdateZeroSign(r.Value())

	case instructions.Inc:
		r := mc.shiftTarget(defn, value)
		r.Add(1, false)
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Dec:
		r := mc.shiftTarget(defn, value)
		r.Add(0xff, false)
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.UpdateZeroSign(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.UpdateZeroSign(mc.Y.Value())

	case instructions.Tsb:
		mc.Status.Zero = value&mc.A.Value() == 0
		value |= mc.A.Value()

	case instructions.Trb:
		mc.Status.Zero = value&mc.A.Value() == 0
		value &^= mc.A.Value()

	case instructions.Rmb:
		value &^= 1 << defn.Bit

	case instructions.Smb:
		value |= 1 << defn.Bit

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Cld:
		mc.Status.Decimal = false

	case instructions.Sed:
		mc.Status.Decimal = true

	case instructions.Bpl:
		return mc.branch(!mc.Status.Sign, address), nil

	case instructions.Bmi:
		return mc.branch(mc.Status.Sign, address), nil

	case instructions.Bvc:
		return mc.branch(!mc.Status.Overflow, address), nil

	case instructions.Bvs:
		return mc.branch(mc.Status.Overflow, address), nil

	case instructions.Bcc:
		return mc.branch(!mc.Status.Carry, address), nil

	case instructions.Bcs:
		return mc.branch(mc.Status.Carry, address), nil

	case instructions.Bne:
		return mc.branch(!mc.Status.Zero, address), nil

	case instructions.Beq:
		return mc.branch(mc.Status.Zero, address), nil

	case instructions.Bra:
		return mc.branch(true, address), nil

	case instructions.Bbr:
		v := mc.mem.Read(address)
		return mc.branch(v&(1<<defn.Bit) == 0, mc.relativeTarget()), nil

	case instructions.Bbs:
		v := mc.mem.Read(address)
		return mc.branch(v&(1<<defn.Bit) != 0, mc.relativeTarget()), nil

	case instructions.Jmp:
		mc.PC.Load(address)
		return OKPCModified, nil

	case instructions.Jsr:
		// the pushed return address is the last byte of the JSR
		// instruction; RTS corrects by one when it pops
		ret := mc.PC.Address() + 2
		mc.Push(uint8(ret >> 8))
		mc.Push(uint8(ret))
		mc.PC.Load(address)
		return OKPCModified, nil

	case instructions.Rts:
		lo := mc.Pop()
		hi := mc.Pop()
		mc.PC.Load((uint16(hi)<<8 | uint16(lo)) + 1)
		return OKPCModified, nil

	case instructions.Brk:
		// the pushed address skips the padding byte that follows the BRK
		// opcode
		ret := mc.PC.Address() + 2
		mc.Push(uint8(ret >> 8))
		mc.Push(uint8(ret))
		mc.Push(mc.Status.Value() | 0x10)
		mc.Status.Break = true
		mc.PC.Load(mc.readPtr(cpubus.BrkVector))
		return OKPCModified, nil

	case instructions.Rti:
		mc.Status.Load(mc.Pop())
		lo := mc.Pop()
		hi := mc.Pop()
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))
		return OKPCModified, nil

	case instructions.Stp:
		return Stop, nil

	case instructions.Dbg:
		if mc.Debug {
			return EnterDebugger, nil
		}

	default:
		return OK, curated.Errorf(UnknownOperator, defn.Operator)
	}

	// write altered value back to memory for read-modify-write operators
	if defn.Effect == instructions.RMW {
		mc.mem.Write(address, value)
	}

	return OK, nil
}
