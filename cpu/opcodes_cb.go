package cpu

// extendedTable is the 256-entry dispatch table for CB-prefixed opcodes:
// eight rotate/shift rows, then BIT/RES/SET over bits 0-7, each row
// spanning the eight targets B,C,D,E,H,L,(HL),A. Unlike the primary table
// every byte here is defined; the table is built by loop rather than by
// literal assignment because the layout is fully regular.
var extendedTable = buildExtendedTable()

func buildExtendedTable() [256]OpcodeEntry {
	var t [256]OpcodeEntry

	targets := [8]ArithmeticTarget8{AT8_B, AT8_C, AT8_D, AT8_E, AT8_H, AT8_L, AT8_HLAddr, AT8_A}
	names := [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

	shiftRows := []struct {
		base byte
		name string
		fn   shiftFn
	}{
		{0x00, "RLC ", rlcShift},
		{0x08, "RRC ", rrcShift},
		{0x10, "RL ", rlShift},
		{0x18, "RR ", rrShift},
		{0x20, "SLA ", slaShift},
		{0x28, "SRA ", sraShift},
		{0x38, "SRL ", srlShift},
	}
	for _, row := range shiftRows {
		for i := 0; i < 8; i++ {
			cycles := uint8(8)
			if targets[i] == AT8_HLAddr {
				cycles = 16
			}
			t[row.base+byte(i)] = OpcodeEntry{row.name + names[i], opCBShift(targets[i], cycles, row.fn)}
		}
	}
	for i := 0; i < 8; i++ {
		cycles := uint8(8)
		if targets[i] == AT8_HLAddr {
			cycles = 16
		}
		t[0x30+byte(i)] = OpcodeEntry{"SWAP " + names[i], opCBSwap(targets[i], cycles)}
	}

	for n := byte(0); n < 8; n++ {
		for i := 0; i < 8; i++ {
			cycles := uint8(8)
			if targets[i] == AT8_HLAddr {
				cycles = 16
			}
			t[0x40+n*8+byte(i)] = OpcodeEntry{bitName("BIT", n, names[i]), opBit(n, targets[i], cycles)}
			t[0x80+n*8+byte(i)] = OpcodeEntry{bitName("RES", n, names[i]), opRes(n, targets[i], cycles)}
			t[0xC0+n*8+byte(i)] = OpcodeEntry{bitName("SET", n, names[i]), opSet(n, targets[i], cycles)}
		}
	}

	return t
}

func bitName(mnemonic string, n byte, target string) string {
	digits := "01234567"
	return mnemonic + " " + string(digits[n]) + "," + target
}
