// SPDX-License-Identifier: MIT

package interpreter

import "github.com/katalvlaran/matrixsh/matrix"

// NumRegisters is the fixed number of matrix registers (r0..r9).
const NumRegisters = 10

// Bank is the fixed array of registers. The zero value holds ten empty matrices.
// Slots never share storage: Store takes ownership of what it is given.
type Bank struct {
	regs [NumRegisters]matrix.Dense
}

// At returns register i for in-place use. i must come from ParseRegister.
func (b *Bank) At(i int) *matrix.Dense { return &b.regs[i] }

// Store replaces register i wholesale, moving m's storage into the slot.
// m is left empty.
func (b *Bank) Store(i int, m *matrix.Dense) {
	b.regs[i] = *m.Move()
}

// Reset empties every register.
func (b *Bank) Reset() {
	b.regs = [NumRegisters]matrix.Dense{}
}
