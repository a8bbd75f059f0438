package cpu

// OpcodeEntry is one slot of a dispatch table: a mnemonic for diagnostics
// and debugging, and the closure that executes it. A nil Exec marks an
// opcode byte with no defined instruction.
type OpcodeEntry struct {
	Name string
	Exec func(c *CPU)
}

// primaryTable is the 256-entry dispatch table for un-prefixed opcodes.
// Eleven bytes (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4,
// 0xFC, 0xFD) are left as their zero value and fault as UnmappedOpcodeError
// if ever fetched.
var primaryTable = buildPrimaryTable()

func buildPrimaryTable() [256]OpcodeEntry {
	var t [256]OpcodeEntry

	t[0x00] = OpcodeEntry{"NOP", opNop(4)}
	t[0x01] = OpcodeEntry{"LD BC,d16", opLd16(Ld16_BC, Ld16_D16, 12)}
	t[0x02] = OpcodeEntry{"LD (BC),A", opLd(Ld_BCAddr, Ld_A, 8)}
	t[0x03] = OpcodeEntry{"INC BC", opIncRR(AT16_BC, 8)}
	t[0x04] = OpcodeEntry{"INC B", opInc8(AT8_B, 4)}
	t[0x05] = OpcodeEntry{"DEC B", opDec8(AT8_B, 4)}
	t[0x06] = OpcodeEntry{"LD B,d8", opLd(Ld_B, Ld_D8, 8)}
	t[0x07] = OpcodeEntry{"RLCA", opARotate(4, rlcShift)}
	t[0x08] = OpcodeEntry{"LD (a16),SP", opLd16(Ld16_A16Addr, Ld16_SP, 20)}
	t[0x09] = OpcodeEntry{"ADD HL,BC", opAddHL(AT16_BC, 8)}
	t[0x0A] = OpcodeEntry{"LD A,(BC)", opLd(Ld_A, Ld_BCAddr, 8)}
	t[0x0B] = OpcodeEntry{"DEC BC", opDecRR(AT16_BC, 8)}
	t[0x0C] = OpcodeEntry{"INC C", opInc8(AT8_C, 4)}
	t[0x0D] = OpcodeEntry{"DEC C", opDec8(AT8_C, 4)}
	t[0x0E] = OpcodeEntry{"LD C,d8", opLd(Ld_C, Ld_D8, 8)}
	t[0x0F] = OpcodeEntry{"RRCA", opARotate(4, rrcShift)}

	t[0x10] = OpcodeEntry{"STOP", opStop()}
	t[0x11] = OpcodeEntry{"LD DE,d16", opLd16(Ld16_DE, Ld16_D16, 12)}
	t[0x12] = OpcodeEntry{"LD (DE),A", opLd(Ld_DEAddr, Ld_A, 8)}
	t[0x13] = OpcodeEntry{"INC DE", opIncRR(AT16_DE, 8)}
	t[0x14] = OpcodeEntry{"INC D", opInc8(AT8_D, 4)}
	t[0x15] = OpcodeEntry{"DEC D", opDec8(AT8_D, 4)}
	t[0x16] = OpcodeEntry{"LD D,d8", opLd(Ld_D, Ld_D8, 8)}
	t[0x17] = OpcodeEntry{"RLA", opARotate(4, rlShift)}
	t[0x18] = OpcodeEntry{"JR r8", opJr(12)}
	t[0x19] = OpcodeEntry{"ADD HL,DE", opAddHL(AT16_DE, 8)}
	t[0x1A] = OpcodeEntry{"LD A,(DE)", opLd(Ld_A, Ld_DEAddr, 8)}
	t[0x1B] = OpcodeEntry{"DEC DE", opDecRR(AT16_DE, 8)}
	t[0x1C] = OpcodeEntry{"INC E", opInc8(AT8_E, 4)}
	t[0x1D] = OpcodeEntry{"DEC E", opDec8(AT8_E, 4)}
	t[0x1E] = OpcodeEntry{"LD E,d8", opLd(Ld_E, Ld_D8, 8)}
	t[0x1F] = OpcodeEntry{"RRA", opARotate(4, rrShift)}

	t[0x20] = OpcodeEntry{"JR NZ,r8", opJrCond(CondNZ, 12, 4)}
	t[0x21] = OpcodeEntry{"LD HL,d16", opLd16(Ld16_HL, Ld16_D16, 12)}
	t[0x22] = OpcodeEntry{"LD (HL+),A", opLd(Ld_HLIAddr, Ld_A, 8)}
	t[0x23] = OpcodeEntry{"INC HL", opIncRR(AT16_HL, 8)}
	t[0x24] = OpcodeEntry{"INC H", opInc8(AT8_H, 4)}
	t[0x25] = OpcodeEntry{"DEC H", opDec8(AT8_H, 4)}
	t[0x26] = OpcodeEntry{"LD H,d8", opLd(Ld_H, Ld_D8, 8)}
	t[0x27] = OpcodeEntry{"DAA", opDaa(4)}
	t[0x28] = OpcodeEntry{"JR Z,r8", opJrCond(CondZ, 12, 4)}
	t[0x29] = OpcodeEntry{"ADD HL,HL", opAddHL(AT16_HL, 8)}
	t[0x2A] = OpcodeEntry{"LD A,(HL+)", opLd(Ld_A, Ld_HLIAddr, 8)}
	t[0x2B] = OpcodeEntry{"DEC HL", opDecRR(AT16_HL, 8)}
	t[0x2C] = OpcodeEntry{"INC L", opInc8(AT8_L, 4)}
	t[0x2D] = OpcodeEntry{"DEC L", opDec8(AT8_L, 4)}
	t[0x2E] = OpcodeEntry{"LD L,d8", opLd(Ld_L, Ld_D8, 8)}
	t[0x2F] = OpcodeEntry{"CPL", opCpl(4)}

	t[0x30] = OpcodeEntry{"JR NC,r8", opJrCond(CondNC, 12, 4)}
	t[0x31] = OpcodeEntry{"LD SP,d16", opLd16(Ld16_SP, Ld16_D16, 12)}
	t[0x32] = OpcodeEntry{"LD (HL-),A", opLd(Ld_HLDAddr, Ld_A, 8)}
	t[0x33] = OpcodeEntry{"INC SP", opIncRR(AT16_SP, 8)}
	t[0x34] = OpcodeEntry{"INC (HL)", opInc8(AT8_HLAddr, 12)}
	t[0x35] = OpcodeEntry{"DEC (HL)", opDec8(AT8_HLAddr, 12)}
	t[0x36] = OpcodeEntry{"LD (HL),d8", opLd(Ld_HLAddr, Ld_D8, 12)}
	t[0x37] = OpcodeEntry{"SCF", opScf(4)}
	t[0x38] = OpcodeEntry{"JR C,r8", opJrCond(CondC, 12, 4)}
	t[0x39] = OpcodeEntry{"ADD HL,SP", opAddHL(AT16_SP, 8)}
	t[0x3A] = OpcodeEntry{"LD A,(HL-)", opLd(Ld_A, Ld_HLDAddr, 8)}
	t[0x3B] = OpcodeEntry{"DEC SP", opDecRR(AT16_SP, 8)}
	t[0x3C] = OpcodeEntry{"INC A", opInc8(AT8_A, 4)}
	t[0x3D] = OpcodeEntry{"DEC A", opDec8(AT8_A, 4)}
	t[0x3E] = OpcodeEntry{"LD A,d8", opLd(Ld_A, Ld_D8, 8)}
	t[0x3F] = OpcodeEntry{"CCF", opCcf(4)}

	ldRegTargets := [8]LdTarget{Ld_B, Ld_C, Ld_D, Ld_E, Ld_H, Ld_L, Ld_HLAddr, Ld_A}
	ldRegNames := [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			opcode := byte(0x40 + dst*8 + src)
			if opcode == 0x76 {
				t[opcode] = OpcodeEntry{"HALT", opHalt(4)}
				continue
			}
			cycles := uint8(4)
			if ldRegTargets[dst] == Ld_HLAddr || ldRegTargets[src] == Ld_HLAddr {
				cycles = 8
			}
			t[opcode] = OpcodeEntry{
				Name: "LD " + ldRegNames[dst] + "," + ldRegNames[src],
				Exec: opLd(ldRegTargets[dst], ldRegTargets[src], cycles),
			}
		}
	}

	at8Targets := [8]ArithmeticTarget8{AT8_B, AT8_C, AT8_D, AT8_E, AT8_H, AT8_L, AT8_HLAddr, AT8_A}
	at8Names := [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	aluRows := []struct {
		base uint8
		name string
		ctor func(ArithmeticTarget8, uint8) func(*CPU)
	}{
		{0x80, "ADD A,", opAdd},
		{0x88, "ADC A,", opAdc},
		{0x90, "SUB ", opSub},
		{0x98, "SBC A,", opSbc},
		{0xA0, "AND ", opAnd},
		{0xA8, "XOR ", opXor},
		{0xB0, "OR ", opOr},
		{0xB8, "CP ", opCp},
	}
	for _, row := range aluRows {
		for i := 0; i < 8; i++ {
			cycles := uint8(4)
			if at8Targets[i] == AT8_HLAddr {
				cycles = 8
			}
			t[row.base+byte(i)] = OpcodeEntry{row.name + at8Names[i], row.ctor(at8Targets[i], cycles)}
		}
	}

	t[0xC0] = OpcodeEntry{"RET NZ", opRetCond(CondNZ, 20, 12)}
	t[0xC1] = OpcodeEntry{"POP BC", opPop(PP_BC, 12)}
	t[0xC2] = OpcodeEntry{"JP NZ,a16", opJpCond(CondNZ, 16, 4)}
	t[0xC3] = OpcodeEntry{"JP a16", opJp(Addr_A16, 16)}
	t[0xC4] = OpcodeEntry{"CALL NZ,a16", opCallCond(CondNZ, 24, 12)}
	t[0xC5] = OpcodeEntry{"PUSH BC", opPush(PP_BC, 16)}
	t[0xC6] = OpcodeEntry{"ADD A,d8", opAdd(AT8_D8, 8)}
	t[0xC7] = OpcodeEntry{"RST 00H", opRst(0x00, 16)}
	t[0xC8] = OpcodeEntry{"RET Z", opRetCond(CondZ, 20, 12)}
	t[0xC9] = OpcodeEntry{"RET", opRet(16)}
	t[0xCA] = OpcodeEntry{"JP Z,a16", opJpCond(CondZ, 16, 4)}
	t[0xCB] = OpcodeEntry{"PREFIX CB", opPrefixCB(4)}
	t[0xCC] = OpcodeEntry{"CALL Z,a16", opCallCond(CondZ, 24, 12)}
	t[0xCD] = OpcodeEntry{"CALL a16", opCall(24)}
	t[0xCE] = OpcodeEntry{"ADC A,d8", opAdc(AT8_D8, 8)}
	t[0xCF] = OpcodeEntry{"RST 08H", opRst(0x08, 16)}

	t[0xD0] = OpcodeEntry{"RET NC", opRetCond(CondNC, 20, 12)}
	t[0xD1] = OpcodeEntry{"POP DE", opPop(PP_DE, 12)}
	t[0xD2] = OpcodeEntry{"JP NC,a16", opJpCond(CondNC, 16, 4)}
	t[0xD4] = OpcodeEntry{"CALL NC,a16", opCallCond(CondNC, 24, 12)}
	t[0xD5] = OpcodeEntry{"PUSH DE", opPush(PP_DE, 16)}
	t[0xD6] = OpcodeEntry{"SUB d8", opSub(AT8_D8, 8)}
	t[0xD7] = OpcodeEntry{"RST 10H", opRst(0x10, 16)}
	t[0xD8] = OpcodeEntry{"RET C", opRetCond(CondC, 20, 12)}
	t[0xD9] = OpcodeEntry{"RETI", opReti(16)}
	t[0xDA] = OpcodeEntry{"JP C,a16", opJpCond(CondC, 16, 4)}
	t[0xDC] = OpcodeEntry{"CALL C,a16", opCallCond(CondC, 24, 12)}
	t[0xDE] = OpcodeEntry{"SBC A,d8", opSbc(AT8_D8, 8)}
	t[0xDF] = OpcodeEntry{"RST 18H", opRst(0x18, 16)}

	t[0xE0] = OpcodeEntry{"LDH (a8),A", opLd(Ld_A8Addr, Ld_A, 12)}
	t[0xE1] = OpcodeEntry{"POP HL", opPop(PP_HL, 12)}
	t[0xE2] = OpcodeEntry{"LD (C),A", opLd(Ld_CAddr, Ld_A, 8)}
	t[0xE5] = OpcodeEntry{"PUSH HL", opPush(PP_HL, 16)}
	t[0xE6] = OpcodeEntry{"AND d8", opAnd(AT8_D8, 8)}
	t[0xE7] = OpcodeEntry{"RST 20H", opRst(0x20, 16)}
	t[0xE8] = OpcodeEntry{"ADD SP,r8", opAddSP(16)}
	t[0xE9] = OpcodeEntry{"JP (HL)", opJp(Addr_HL, 4)}
	t[0xEA] = OpcodeEntry{"LD (a16),A", opLd(Ld_A16Addr, Ld_A, 16)}
	t[0xEE] = OpcodeEntry{"XOR d8", opXor(AT8_D8, 8)}
	t[0xEF] = OpcodeEntry{"RST 28H", opRst(0x28, 16)}

	t[0xF0] = OpcodeEntry{"LDH A,(a8)", opLd(Ld_A, Ld_A8Addr, 12)}
	t[0xF1] = OpcodeEntry{"POP AF", opPop(PP_AF, 12)}
	t[0xF2] = OpcodeEntry{"LD A,(C)", opLd(Ld_A, Ld_CAddr, 8)}
	t[0xF3] = OpcodeEntry{"DI", opDi(4)}
	t[0xF5] = OpcodeEntry{"PUSH AF", opPush(PP_AF, 16)}
	t[0xF6] = OpcodeEntry{"OR d8", opOr(AT8_D8, 8)}
	t[0xF7] = OpcodeEntry{"RST 30H", opRst(0x30, 16)}
	t[0xF8] = OpcodeEntry{"LD HL,SP+r8", opLdHLSP(12)}
	t[0xF9] = OpcodeEntry{"LD SP,HL", opLd16(Ld16_SP, Ld16_HL, 8)}
	t[0xFA] = OpcodeEntry{"LD A,(a16)", opLd(Ld_A, Ld_A16Addr, 16)}
	t[0xFB] = OpcodeEntry{"EI", opEi(4)}
	t[0xFE] = OpcodeEntry{"CP d8", opCp(AT8_D8, 8)}
	t[0xFF] = OpcodeEntry{"RST 38H", opRst(0x38, 16)}

	return t
}
