// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Operator defines the operation of an instruction, independent of its
// addressing mode.
type Operator int

// List of operators.
const (
	NoOperator Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented operators are in upper case. NOP and SBC have documented
	// equivalents but are kept separate so that they can be identified
	NOP
	LAX
	SAX
	SBC
	DCP
	ISC
	SLO
	RLA
	SRE
	RRA
	ANC
	ASR
	ARR
	AXS
	XAA
	AHX
	TAS
	SHY
	SHX
	LAS
	KIL
)

// the first undocumented operator in the list
const firstUndocumented = NOP

var operatorMnemonics = map[Operator]string{
	Adc: "ADC",
	And: "AND",
	Asl: "ASL",
	Bcc: "BCC",
	Bcs: "BCS",
	Beq: "BEQ",
	Bit: "BIT",
	Bmi: "BMI",
	Bne: "BNE",
	Bpl: "BPL",
	Brk: "BRK",
	Bvc: "BVC",
	Bvs: "BVS",
	Clc: "CLC",
	Cld: "CLD",
	Cli: "CLI",
	Clv: "CLV",
	Cmp: "CMP",
	Cpx: "CPX",
	Cpy: "CPY",
	Dec: "DEC",
	Dex: "DEX",
	Dey: "DEY",
	Eor: "EOR",
	Inc: "INC",
	Inx: "INX",
	Iny: "INY",
	Jmp: "JMP",
	Jsr: "JSR",
	Lda: "LDA",
	Ldx: "LDX",
	Ldy: "LDY",
	Lsr: "LSR",
	Nop: "NOP",
	Ora: "ORA",
	Pha: "PHA",
	Php: "PHP",
	Pla: "PLA",
	Plp: "PLP",
	Rol: "ROL",
	Ror: "ROR",
	Rti: "RTI",
	Rts: "RTS",
	Sbc: "SBC",
	Sec: "SEC",
	Sed: "SED",
	Sei: "SEI",
	Sta: "STA",
	Stx: "STX",
	Sty: "STY",
	Tax: "TAX",
	Tay: "TAY",
	Tsx: "TSX",
	Txa: "TXA",
	Txs: "TXS",
	Tya: "TYA",
	NOP: "NOP",
	LAX: "LAX",
	SAX: "SAX",
	SBC: "SBC",
	DCP: "DCP",
	ISC: "ISC",
	SLO: "SLO",
	RLA: "RLA",
	SRE: "SRE",
	RRA: "RRA",
	ANC: "ANC",
	ASR: "ASR",
	ARR: "ARR",
	AXS: "AXS",
	XAA: "XAA",
	AHX: "AHX",
	TAS: "TAS",
	SHY: "SHY",
	SHX: "SHX",
	LAS: "LAS",
	KIL: "KIL",
}

func (o Operator) String() string {
	if m, ok := operatorMnemonics[o]; ok {
		return m
	}
	return "???"
}

// Undocumented returns true if the operator is not part of the documented
// instruction set.
func (o Operator) Undocumented() bool {
	return o >= firstUndocumented
}
