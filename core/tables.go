package core

// Fixed encoding tables of the target instruction format. They are only read
// after package initialization.

// controlTable maps an ALU mnemonic to its a-bit followed by c1..c6.
var controlTable = map[string]string{
	// a = 0
	"0":   "0101010",
	"1":   "0111111",
	"-1":  "0111010",
	"D":   "0001100",
	"A":   "0110000",
	"!D":  "0001101",
	"!A":  "0110001",
	"-D":  "0001111",
	"-A":  "0110011",
	"D+1": "0011111",
	"A+1": "0110111",
	"D-1": "0001110",
	"A-1": "0110010",
	"D+A": "0000010",
	"D-A": "0010011",
	"A-D": "0000111",
	"D&A": "0000000",
	"D|A": "0010101",

	// a = 1
	"M":   "1110000",
	"!M":  "1110001",
	"-M":  "1110011",
	"M+1": "1110111",
	"M-1": "1110010",
	"D+M": "1000010",
	"D-M": "1010011",
	"M-D": "1000111",
	"D&M": "1000000",
	"D|M": "1010101",
}

// destTable maps a destination register combination to d1..d3.
var destTable = map[string]string{
	"":    "000",
	"M":   "001",
	"D":   "010",
	"MD":  "011",
	"A":   "100",
	"AM":  "101",
	"AD":  "110",
	"AMD": "111",
}

// jumpTable maps a jump condition to j1..j3.
var jumpTable = map[string]string{
	"":    "000",
	"JGT": "001",
	"JEQ": "010",
	"JGE": "011",
	"JLT": "100",
	"JNE": "101",
	"JLE": "110",
	"JMP": "111",
}

// ControlBits returns the 7 control bits of an ALU mnemonic.
func ControlBits(comp string) (string, bool) {
	bits, ok := controlTable[comp]
	return bits, ok
}

// DestBits returns the 3 destination bits of a register combination.
func DestBits(dest string) (string, bool) {
	bits, ok := destTable[dest]
	return bits, ok
}

// JumpBits returns the 3 jump bits of a jump condition.
func JumpBits(jump string) (string, bool) {
	bits, ok := jumpTable[jump]
	return bits, ok
}

// IsRegister reports whether name is a non-empty register combination
// keyword such as "D" or "AM".
func IsRegister(name string) bool {
	_, ok := destTable[name]
	return ok && name != ""
}

// IsMnemonic reports whether comp names an ALU operation.
func IsMnemonic(comp string) bool {
	_, ok := controlTable[comp]
	return ok
}
