package cpu

// CBOpcodes is the CB-prefixed 256-entry dispatch table. The CB prefix
// dispatcher in Cpu.Step is transparent: the cost charged for a
// CB-prefixed instruction is entirely the handler's own charge() call;
// fetching the 0xCB byte itself is free.
var CBOpcodes = map[byte]Opcode{
	0x10: {"RL B", 2, rlR(regB)},
	0x11: {"RL C", 2, rlR(regC)},
	0x12: {"RL D", 2, rlR(regD)},
	0x13: {"RL E", 2, rlR(regE)},
	0x14: {"RL H", 2, rlR(regH)},
	0x15: {"RL L", 2, rlR(regL)},
	0x17: {"RL A", 2, rlR(regA)},

	0x7c: {"BIT 7,H", 2, bit7H},
}
