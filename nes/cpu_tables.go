package nes

// instructions holds the per-opcode addressing mode, byte length and base
// cycle counts for all 256 opcodes, legal and illegal alike. Unofficial
// opcodes that alias a legal mnemonic's behavior (e.g. the various NOP/SBC
// duplicates) are named for what they actually do. The KIL rows keep their
// conventional name but run as a one-byte NOP (see CPU.kil).
var instructions = [256]instruction{
	{"BRK", modeImplied, 1, 7, 0}, {"ORA", modeIndexedIndirect, 2, 6, 0}, {"KIL", modeImplied, 0, 2, 0}, {"SLO", modeIndexedIndirect, 2, 8, 0},
	{"NOP", modeZeroPage, 2, 3, 0}, {"ORA", modeZeroPage, 2, 3, 0}, {"ASL", modeZeroPage, 2, 5, 0}, {"SLO", modeZeroPage, 2, 5, 0},
	{"PHP", modeImplied, 1, 3, 0}, {"ORA", modeImmediate, 2, 2, 0}, {"ASL", modeAccumulator, 1, 2, 0}, {"ANC", modeImmediate, 2, 2, 0},
	{"NOP", modeAbsolute, 3, 4, 0}, {"ORA", modeAbsolute, 3, 4, 0}, {"ASL", modeAbsolute, 3, 6, 0}, {"SLO", modeAbsolute, 3, 6, 0},
	{"BPL", modeRelative, 2, 2, 1}, {"ORA", modeIndirectIndexed, 2, 5, 1}, {"KIL", modeImplied, 0, 2, 0}, {"SLO", modeIndirectIndexed, 2, 8, 0},
	{"NOP", modeZeroPageX, 2, 4, 0}, {"ORA", modeZeroPageX, 2, 4, 0}, {"ASL", modeZeroPageX, 2, 6, 0}, {"SLO", modeZeroPageX, 2, 6, 0},
	{"CLC", modeImplied, 1, 2, 0}, {"ORA", modeAbsoluteY, 3, 4, 1}, {"NOP", modeImplied, 1, 2, 0}, {"SLO", modeAbsoluteY, 3, 7, 0},
	{"NOP", modeAbsoluteX, 3, 4, 1}, {"ORA", modeAbsoluteX, 3, 4, 1}, {"ASL", modeAbsoluteX, 3, 7, 0}, {"SLO", modeAbsoluteX, 3, 7, 0},
	{"JSR", modeAbsolute, 3, 6, 0}, {"AND", modeIndexedIndirect, 2, 6, 0}, {"KIL", modeImplied, 0, 2, 0}, {"RLA", modeIndexedIndirect, 2, 8, 0},
	{"BIT", modeZeroPage, 2, 3, 0}, {"AND", modeZeroPage, 2, 3, 0}, {"ROL", modeZeroPage, 2, 5, 0}, {"RLA", modeZeroPage, 2, 5, 0},
	{"PLP", modeImplied, 1, 4, 0}, {"AND", modeImmediate, 2, 2, 0}, {"ROL", modeAccumulator, 1, 2, 0}, {"ANC", modeImmediate, 2, 2, 0},
	{"BIT", modeAbsolute, 3, 4, 0}, {"AND", modeAbsolute, 3, 4, 0}, {"ROL", modeAbsolute, 3, 6, 0}, {"RLA", modeAbsolute, 3, 6, 0},
	{"BMI", modeRelative, 2, 2, 1}, {"AND", modeIndirectIndexed, 2, 5, 1}, {"KIL", modeImplied, 0, 2, 0}, {"RLA", modeIndirectIndexed, 2, 8, 0},
	{"NOP", modeZeroPageX, 2, 4, 0}, {"AND", modeZeroPageX, 2, 4, 0}, {"ROL", modeZeroPageX, 2, 6, 0}, {"RLA", modeZeroPageX, 2, 6, 0},
	{"SEC", modeImplied, 1, 2, 0}, {"AND", modeAbsoluteY, 3, 4, 1}, {"NOP", modeImplied, 1, 2, 0}, {"RLA", modeAbsoluteY, 3, 7, 0},
	{"NOP", modeAbsoluteX, 3, 4, 1}, {"AND", modeAbsoluteX, 3, 4, 1}, {"ROL", modeAbsoluteX, 3, 7, 0}, {"RLA", modeAbsoluteX, 3, 7, 0},
	{"RTI", modeImplied, 1, 6, 0}, {"EOR", modeIndexedIndirect, 2, 6, 0}, {"KIL", modeImplied, 0, 2, 0}, {"SRE", modeIndexedIndirect, 2, 8, 0},
	{"NOP", modeZeroPage, 2, 3, 0}, {"EOR", modeZeroPage, 2, 3, 0}, {"LSR", modeZeroPage, 2, 5, 0}, {"SRE", modeZeroPage, 2, 5, 0},
	{"PHA", modeImplied, 1, 3, 0}, {"EOR", modeImmediate, 2, 2, 0}, {"LSR", modeAccumulator, 1, 2, 0}, {"ALR", modeImmediate, 2, 2, 0},
	{"JMP", modeAbsolute, 3, 3, 0}, {"EOR", modeAbsolute, 3, 4, 0}, {"LSR", modeAbsolute, 3, 6, 0}, {"SRE", modeAbsolute, 3, 6, 0},
	{"BVC", modeRelative, 2, 2, 1}, {"EOR", modeIndirectIndexed, 2, 5, 1}, {"KIL", modeImplied, 0, 2, 0}, {"SRE", modeIndirectIndexed, 2, 8, 0},
	{"NOP", modeZeroPageX, 2, 4, 0}, {"EOR", modeZeroPageX, 2, 4, 0}, {"LSR", modeZeroPageX, 2, 6, 0}, {"SRE", modeZeroPageX, 2, 6, 0},
	{"CLI", modeImplied, 1, 2, 0}, {"EOR", modeAbsoluteY, 3, 4, 1}, {"NOP", modeImplied, 1, 2, 0}, {"SRE", modeAbsoluteY, 3, 7, 0},
	{"NOP", modeAbsoluteX, 3, 4, 1}, {"EOR", modeAbsoluteX, 3, 4, 1}, {"LSR", modeAbsoluteX, 3, 7, 0}, {"SRE", modeAbsoluteX, 3, 7, 0},
	{"RTS", modeImplied, 1, 6, 0}, {"ADC", modeIndexedIndirect, 2, 6, 0}, {"KIL", modeImplied, 0, 2, 0}, {"RRA", modeIndexedIndirect, 2, 8, 0},
	{"NOP", modeZeroPage, 2, 3, 0}, {"ADC", modeZeroPage, 2, 3, 0}, {"ROR", modeZeroPage, 2, 5, 0}, {"RRA", modeZeroPage, 2, 5, 0},
	{"PLA", modeImplied, 1, 4, 0}, {"ADC", modeImmediate, 2, 2, 0}, {"ROR", modeAccumulator, 1, 2, 0}, {"ARR", modeImmediate, 2, 2, 0},
	{"JMP", modeIndirect, 3, 5, 0}, {"ADC", modeAbsolute, 3, 4, 0}, {"ROR", modeAbsolute, 3, 6, 0}, {"RRA", modeAbsolute, 3, 6, 0},
	{"BVS", modeRelative, 2, 2, 1}, {"ADC", modeIndirectIndexed, 2, 5, 1}, {"KIL", modeImplied, 0, 2, 0}, {"RRA", modeIndirectIndexed, 2, 8, 0},
	{"NOP", modeZeroPageX, 2, 4, 0}, {"ADC", modeZeroPageX, 2, 4, 0}, {"ROR", modeZeroPageX, 2, 6, 0}, {"RRA", modeZeroPageX, 2, 6, 0},
	{"SEI", modeImplied, 1, 2, 0}, {"ADC", modeAbsoluteY, 3, 4, 1}, {"NOP", modeImplied, 1, 2, 0}, {"RRA", modeAbsoluteY, 3, 7, 0},
	{"NOP", modeAbsoluteX, 3, 4, 1}, {"ADC", modeAbsoluteX, 3, 4, 1}, {"ROR", modeAbsoluteX, 3, 7, 0}, {"RRA", modeAbsoluteX, 3, 7, 0},
	{"NOP", modeImmediate, 2, 2, 0}, {"STA", modeIndexedIndirect, 2, 6, 0}, {"NOP", modeImmediate, 2, 2, 0}, {"SAX", modeIndexedIndirect, 2, 6, 0},
	{"STY", modeZeroPage, 2, 3, 0}, {"STA", modeZeroPage, 2, 3, 0}, {"STX", modeZeroPage, 2, 3, 0}, {"SAX", modeZeroPage, 2, 3, 0},
	{"DEY", modeImplied, 1, 2, 0}, {"NOP", modeImmediate, 2, 2, 0}, {"TXA", modeImplied, 1, 2, 0}, {"XAA", modeImmediate, 2, 2, 0},
	{"STY", modeAbsolute, 3, 4, 0}, {"STA", modeAbsolute, 3, 4, 0}, {"STX", modeAbsolute, 3, 4, 0}, {"SAX", modeAbsolute, 3, 4, 0},
	{"BCC", modeRelative, 2, 2, 1}, {"STA", modeIndirectIndexed, 2, 6, 0}, {"KIL", modeImplied, 0, 2, 0}, {"AHX", modeIndirectIndexed, 2, 6, 0},
	{"STY", modeZeroPageX, 2, 4, 0}, {"STA", modeZeroPageX, 2, 4, 0}, {"STX", modeZeroPageY, 2, 4, 0}, {"SAX", modeZeroPageY, 2, 4, 0},
	{"TYA", modeImplied, 1, 2, 0}, {"STA", modeAbsoluteY, 3, 5, 0}, {"TXS", modeImplied, 1, 2, 0}, {"TAS", modeAbsoluteY, 3, 5, 0},
	{"SHY", modeAbsoluteX, 3, 5, 0}, {"STA", modeAbsoluteX, 3, 5, 0}, {"SHX", modeAbsoluteY, 3, 5, 0}, {"AHX", modeAbsoluteY, 3, 5, 0},
	{"LDY", modeImmediate, 2, 2, 0}, {"LDA", modeIndexedIndirect, 2, 6, 0}, {"LDX", modeImmediate, 2, 2, 0}, {"LAX", modeIndexedIndirect, 2, 6, 0},
	{"LDY", modeZeroPage, 2, 3, 0}, {"LDA", modeZeroPage, 2, 3, 0}, {"LDX", modeZeroPage, 2, 3, 0}, {"LAX", modeZeroPage, 2, 3, 0},
	{"TAY", modeImplied, 1, 2, 0}, {"LDA", modeImmediate, 2, 2, 0}, {"TAX", modeImplied, 1, 2, 0}, {"LAX", modeImmediate, 2, 2, 0},
	{"LDY", modeAbsolute, 3, 4, 0}, {"LDA", modeAbsolute, 3, 4, 0}, {"LDX", modeAbsolute, 3, 4, 0}, {"LAX", modeAbsolute, 3, 4, 0},
	{"BCS", modeRelative, 2, 2, 1}, {"LDA", modeIndirectIndexed, 2, 5, 1}, {"KIL", modeImplied, 0, 2, 0}, {"LAX", modeIndirectIndexed, 2, 5, 1},
	{"LDY", modeZeroPageX, 2, 4, 0}, {"LDA", modeZeroPageX, 2, 4, 0}, {"LDX", modeZeroPageY, 2, 4, 0}, {"LAX", modeZeroPageY, 2, 4, 0},
	{"CLV", modeImplied, 1, 2, 0}, {"LDA", modeAbsoluteY, 3, 4, 1}, {"TSX", modeImplied, 1, 2, 0}, {"LAS", modeAbsoluteY, 3, 4, 1},
	{"LDY", modeAbsoluteX, 3, 4, 1}, {"LDA", modeAbsoluteX, 3, 4, 1}, {"LDX", modeAbsoluteY, 3, 4, 1}, {"LAX", modeAbsoluteY, 3, 4, 1},
	{"CPY", modeImmediate, 2, 2, 0}, {"CMP", modeIndexedIndirect, 2, 6, 0}, {"NOP", modeImmediate, 2, 2, 0}, {"DCP", modeIndexedIndirect, 2, 8, 0},
	{"CPY", modeZeroPage, 2, 3, 0}, {"CMP", modeZeroPage, 2, 3, 0}, {"DEC", modeZeroPage, 2, 5, 0}, {"DCP", modeZeroPage, 2, 5, 0},
	{"INY", modeImplied, 1, 2, 0}, {"CMP", modeImmediate, 2, 2, 0}, {"DEX", modeImplied, 1, 2, 0}, {"AXS", modeImmediate, 2, 2, 0},
	{"CPY", modeAbsolute, 3, 4, 0}, {"CMP", modeAbsolute, 3, 4, 0}, {"DEC", modeAbsolute, 3, 6, 0}, {"DCP", modeAbsolute, 3, 6, 0},
	{"BNE", modeRelative, 2, 2, 1}, {"CMP", modeIndirectIndexed, 2, 5, 1}, {"KIL", modeImplied, 0, 2, 0}, {"DCP", modeIndirectIndexed, 2, 8, 0},
	{"NOP", modeZeroPageX, 2, 4, 0}, {"CMP", modeZeroPageX, 2, 4, 0}, {"DEC", modeZeroPageX, 2, 6, 0}, {"DCP", modeZeroPageX, 2, 6, 0},
	{"CLD", modeImplied, 1, 2, 0}, {"CMP", modeAbsoluteY, 3, 4, 1}, {"NOP", modeImplied, 1, 2, 0}, {"DCP", modeAbsoluteY, 3, 7, 0},
	{"NOP", modeAbsoluteX, 3, 4, 1}, {"CMP", modeAbsoluteX, 3, 4, 1}, {"DEC", modeAbsoluteX, 3, 7, 0}, {"DCP", modeAbsoluteX, 3, 7, 0},
	{"CPX", modeImmediate, 2, 2, 0}, {"SBC", modeIndexedIndirect, 2, 6, 0}, {"NOP", modeImmediate, 2, 2, 0}, {"ISC", modeIndexedIndirect, 2, 8, 0},
	{"CPX", modeZeroPage, 2, 3, 0}, {"SBC", modeZeroPage, 2, 3, 0}, {"INC", modeZeroPage, 2, 5, 0}, {"ISC", modeZeroPage, 2, 5, 0},
	{"INX", modeImplied, 1, 2, 0}, {"SBC", modeImmediate, 2, 2, 0}, {"NOP", modeImplied, 1, 2, 0}, {"SBC", modeImmediate, 2, 2, 0},
	{"CPX", modeAbsolute, 3, 4, 0}, {"SBC", modeAbsolute, 3, 4, 0}, {"INC", modeAbsolute, 3, 6, 0}, {"ISC", modeAbsolute, 3, 6, 0},
	{"BEQ", modeRelative, 2, 2, 1}, {"SBC", modeIndirectIndexed, 2, 5, 1}, {"KIL", modeImplied, 0, 2, 0}, {"ISC", modeIndirectIndexed, 2, 8, 0},
	{"NOP", modeZeroPageX, 2, 4, 0}, {"SBC", modeZeroPageX, 2, 4, 0}, {"INC", modeZeroPageX, 2, 6, 0}, {"ISC", modeZeroPageX, 2, 6, 0},
	{"SED", modeImplied, 1, 2, 0}, {"SBC", modeAbsoluteY, 3, 4, 1}, {"NOP", modeImplied, 1, 2, 0}, {"ISC", modeAbsoluteY, 3, 7, 0},
	{"NOP", modeAbsoluteX, 3, 4, 1}, {"SBC", modeAbsoluteX, 3, 4, 1}, {"INC", modeAbsoluteX, 3, 7, 0}, {"ISC", modeAbsoluteX, 3, 7, 0},
}

// buildOpcodeTable wires each of the 256 opcodes to its handler method.
func buildOpcodeTable(c *CPU) [256]func(*stepInfo) {
	return [256]func(*stepInfo){
		c.brk, c.ora, c.kil, c.slo, c.nop, c.ora, c.asl, c.slo,
		c.php, c.ora, c.asl, c.anc, c.nop, c.ora, c.asl, c.slo,
		c.bpl, c.ora, c.kil, c.slo, c.nop, c.ora, c.asl, c.slo,
		c.clc, c.ora, c.nop, c.slo, c.nop, c.ora, c.asl, c.slo,
		c.jsr, c.and, c.kil, c.rla, c.bit, c.and, c.rol, c.rla,
		c.plp, c.and, c.rol, c.anc, c.bit, c.and, c.rol, c.rla,
		c.bmi, c.and, c.kil, c.rla, c.nop, c.and, c.rol, c.rla,
		c.sec, c.and, c.nop, c.rla, c.nop, c.and, c.rol, c.rla,
		c.rti, c.eor, c.kil, c.sre, c.nop, c.eor, c.lsr, c.sre,
		c.pha, c.eor, c.lsr, c.alr, c.jmp, c.eor, c.lsr, c.sre,
		c.bvc, c.eor, c.kil, c.sre, c.nop, c.eor, c.lsr, c.sre,
		c.cli, c.eor, c.nop, c.sre, c.nop, c.eor, c.lsr, c.sre,
		c.rts, c.adc, c.kil, c.rra, c.nop, c.adc, c.ror, c.rra,
		c.pla, c.adc, c.ror, c.arr, c.jmp, c.adc, c.ror, c.rra,
		c.bvs, c.adc, c.kil, c.rra, c.nop, c.adc, c.ror, c.rra,
		c.sei, c.adc, c.nop, c.rra, c.nop, c.adc, c.ror, c.rra,
		c.nop, c.sta, c.nop, c.sax, c.sty, c.sta, c.stx, c.sax,
		c.dey, c.nop, c.txa, c.xaa, c.sty, c.sta, c.stx, c.sax,
		c.bcc, c.sta, c.kil, c.ahx, c.sty, c.sta, c.stx, c.sax,
		c.tya, c.sta, c.txs, c.tas, c.shy, c.sta, c.shx, c.ahx,
		c.ldy, c.lda, c.ldx, c.lax, c.ldy, c.lda, c.ldx, c.lax,
		c.tay, c.lda, c.tax, c.lax, c.ldy, c.lda, c.ldx, c.lax,
		c.bcs, c.lda, c.kil, c.lax, c.ldy, c.lda, c.ldx, c.lax,
		c.clv, c.lda, c.tsx, c.las, c.ldy, c.lda, c.ldx, c.lax,
		c.cpy, c.cmp, c.nop, c.dcp, c.cpy, c.cmp, c.dec, c.dcp,
		c.iny, c.cmp, c.dex, c.axs, c.cpy, c.cmp, c.dec, c.dcp,
		c.bne, c.cmp, c.kil, c.dcp, c.nop, c.cmp, c.dec, c.dcp,
		c.cld, c.cmp, c.nop, c.dcp, c.nop, c.cmp, c.dec, c.dcp,
		c.cpx, c.sbc, c.nop, c.isc, c.cpx, c.sbc, c.inc, c.isc,
		c.inx, c.sbc, c.nop, c.sbc, c.cpx, c.sbc, c.inc, c.isc,
		c.beq, c.sbc, c.kil, c.isc, c.nop, c.sbc, c.inc, c.isc,
		c.sed, c.sbc, c.nop, c.isc, c.nop, c.sbc, c.inc, c.isc,
	}
}
