/*
Package vine is a tiny console DSL: interactive programs are described as
plain data and executed later by an interpreter.

A Program[T] is a value. Building one performs no I/O; it only records which
lines should be written, where input is awaited, and how the final result of
type T is produced. Interpretation is a separate step (see pkg/interp), so the
same program can run against a real terminal, a scripted console in tests, or
any other line-oriented device.

# Concept

A program is one of exactly three shapes. Write carries a line of text and
the program that follows it. Read suspends until a line of input arrives and
resumes with a continuation. Done ends the program with its result. AndThen
glues programs together: it replaces the Done at the end of the first program
with whatever the next step builds from its value. Everything else (Then,
Map, the examples under examples/) is sugar over these four pieces.

# Key Features

  - Inert descriptions: constructing a program never touches the console.
  - Composition over mutation: AndThen, Then and Map return new programs and
    leave their inputs untouched.
  - Sealed shape: the three variants are the whole language, so interpreters
    can switch over them exhaustively.
  - Iterative plumbing: composition and interpretation walk long write chains
    in constant stack space.

# Usage

Describe the interaction, then hand it to the interpreter:

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/vine"
		"github.com/aretw0/vine/pkg/interp"
	)

	func main() {
		greet := vine.AndThen(vine.ReadLine(), func(name string) vine.Program[int] {
			return vine.Then(vine.WriteLine("Hello "+name), func() vine.Program[int] {
				return vine.Pure(len(name))
			})
		})

		program := vine.Then(vine.WriteLine("What's your name?"), func() vine.Program[int] {
			return greet
		})

		length, err := interp.Run(program)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(length)
	}

The vine command under cmd/vine runs a small gallery of such programs.
*/
package vine
