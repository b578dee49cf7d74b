// Package node implements the programmable grid cell and its assembler.
//
// A node has two ordinary registers (ACC and BAK), the NIL sink, and four
// port registers (LEFT, RIGHT, UP and DOWN) that link it to its neighbors.
// A port is a one-slot mailbox owned by the writer. Reads and writes on a
// port block until the other side of the link completes the transfer.
//
// The assembler accepts the instruction set NOP, MOV, SWP, SAV, ADD, SUB,
// NEG, JMP, JEZ, JNZ, JGZ, JLZ, JRO and HALT, with labels and line comments.
package node
