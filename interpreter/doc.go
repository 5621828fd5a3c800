// Package interpreter runs the matrix register command language.
//
// A Session reads newline-delimited commands, splits each line with
// Tokenize and hands the tokens to a Dispatcher, which mutates a Bank of ten
// integer matrices (r0..r9):
//
//	exit
//	load  <Rn> <path>
//	print <Rn>
//	elem  <Rn> <i> <j>
//	add   <Rn> <Rn>
//	mul   <Rn> <Rn>
//
// Results go to the session output. A failed command writes exactly one
// error line (see Message) and the session continues; only end of input or
// `exit` ends it. `exit` travels as the ErrExit control signal so the
// process is never killed from inside a command.
package interpreter
