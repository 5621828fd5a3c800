// Package matrixsh is a small command interpreter over ten integer matrix
// registers.
//
// What is matrixsh?
//
//	A line-oriented shell that keeps registers r0..r9 and runs a fixed
//	instruction set against them:
//		• load  — read a matrix from a text file into a register
//		• print — write a register row by row
//		• elem  — read one bounds-checked element
//		• add   — element-wise addition in place
//		• mul   — matrix product, left operand replaced
//		• exit  — stop the session
//
// Every failed command prints one line and the session keeps going.
//
// Packages:
//
//	matrix/            — Dense integer matrix, sentinel errors, validators, options
//	interpreter/       — Tokenize, Dispatcher, Session, Loader, Bank, Message
//	internal/config/   — viper-backed configuration (file, env, flags)
//	internal/logging/  — logrus logger construction (stderr only)
//	cmd/matrixsh/      — the executable
//
// Quick example:
//
//	$ printf '2 2\n1 2\n3 4\n' > nums.txt
//	$ printf 'load r1 nums.txt\nadd r1 r1\nprint r1\n' | matrixsh
//	2 4
//	6 8
//
//	go install github.com/katalvlaran/matrixsh/cmd/matrixsh@latest
package matrixsh
