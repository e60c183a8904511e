package cli

import (
	"github.com/aretw0/vine"
	"github.com/aretw0/vine/pkg/interp"
)

// Demo is one runnable program from the gallery.
type Demo struct {
	Name  string
	About string
	run   func(opts ...interp.Option) (any, error)
}

// Demos returns the gallery in presentation order.
func Demos() []Demo {
	return []Demo{
		{
			Name:  "greeting",
			About: "Asks for a name and yields its length. Built from raw nodes.",
			run:   runDemo(greetingProgram),
		},
		{
			Name:  "greeting-again",
			About: "The same interaction, written with the composition helpers.",
			run:   runDemo(greetingAgainProgram),
		},
		{
			Name:  "echo",
			About: "Repeats one line back.",
			run:   runDemo(echoProgram),
		},
		{
			Name:  "announced-echo",
			About: "Introduces itself before echoing.",
			run:   runDemo(announcedEchoProgram),
		},
		{
			Name:  "parrot",
			About: "Echoes every line until you say bye.",
			run:   runDemo(parrotProgram),
		},
	}
}

// runDemo erases the program's result type so that demos with different
// results fit one gallery.
func runDemo[T any](build func() vine.Program[T]) func(opts ...interp.Option) (any, error) {
	return func(opts ...interp.Option) (any, error) {
		return interp.Run(build(), opts...)
	}
}

// greetingProgram spells out every node the long way. The other demos lean
// on WriteLine/ReadLine and the composition helpers instead.
func greetingProgram() vine.Program[int] {
	return &vine.Write[int]{
		Text: "What's your name?",
		Next: &vine.Read[int]{Resume: func(name string) vine.Program[int] {
			return &vine.Write[int]{
				Text: "Hello " + name,
				Next: &vine.Done[int]{Value: len(name)},
			}
		}},
	}
}

func greetingAgainProgram() vine.Program[int] {
	return vine.Then(vine.WriteLine("Say your name again:"), func() vine.Program[int] {
		return vine.AndThen(vine.ReadLine(), func(name string) vine.Program[int] {
			return vine.Then(vine.WriteLine("Hi "+name), func() vine.Program[int] {
				return vine.Pure(len(name))
			})
		})
	})
}

func echoProgram() vine.Program[vine.Unit] {
	return vine.AndThen(vine.ReadLine(), func(line string) vine.Program[vine.Unit] {
		return vine.WriteLine(line)
	})
}

func announcedEchoProgram() vine.Program[vine.Unit] {
	return vine.Then(vine.WriteLine("I'm your echo"), echoProgram)
}

// parrotProgram loops. The recursive reference sits inside the read
// continuation, so each round is only built once its input arrived.
func parrotProgram() vine.Program[vine.Unit] {
	return vine.Then(vine.WriteLine("Say something (bye to stop):"), func() vine.Program[vine.Unit] {
		return vine.AndThen(vine.ReadLine(), func(line string) vine.Program[vine.Unit] {
			if line == "bye" {
				return vine.WriteLine("Bye!")
			}
			return vine.Then(vine.WriteLine(line), parrotProgram)
		})
	})
}
