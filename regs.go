package main

// register names a destination operand in AT&T assembler syntax. The
// expression grammar only ever targets the return-value register, but the
// producer takes the destination as a parameter rather than hardcoding it,
// the way a register-name table would in a backend with more than one.
type register string

const regRAX register = "%rax"
