/*
Package main implements bcc, a compiler for a minimal, pre-standard B-family
systems language.

The language is typeless and word-oriented. A compilation unit is a sequence
of top-level declarations: global scalars, global vectors (fixed-size,
word-aligned arrays), and functions. A function body is built from a small
statement grammar — blocks, labels, goto, return, if/else, while, switch/case
— over a single expression form: an integer literal or a character literal.
There are no local variables, no function parameters, no operators, and no
preprocessor.

The compiler is a single forward pass: lexing, recursive-descent parsing,
and x86-64 GNU assembly emission are fused into one pipeline with no
intermediate representation. Lookahead is handled by pushing bytes back onto
the input (see internal/srcio): usually a single byte, and up to five when
matching the "else" keyword after an if statement's body. Each
recognized construct is turned directly into assembly text appended to an
in-memory buffer.

	declare       -> global scalar/vector, or function
	function      -> prologue, one statement (the body), epilogue
	statement     -> block | goto | return | if/else | while | switch/case | label
	expression     -> integer literal | character literal

Control flow is implemented with monotonically-numbered labels
(.L.else.N, .L.start.N, .L.end.N, .L.stmts.N, .L.cmp.N, .L.case.N.V) rather
than an AST; a switch statement
collects its case values as they are parsed and emits a linear
compare-and-jump dispatch table after the body, falling through to the
switch's end label if nothing matches.

The driver (driver.go) turns a set of ".b" input files into assembly, and
optionally shells out to the system assembler (as) and linker (ld) to
produce an object file or a statically linked executable against the
external "-lb" runtime support library.
*/
package main
