package vine_test

import (
	"testing"

	"github.com/aretw0/vine"
	"github.com/aretw0/vine/pkg/interp"
	"github.com/aretw0/vine/pkg/interp/interptest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// runScripted interprets p against a fresh scripted console and returns the
// result with the recorded effect trace. Two programs are considered
// equivalent when, given the same script, both produce the same trace and
// the same result.
func runScripted[T any](t *testing.T, p vine.Program[T], script ...string) (T, []interptest.Op) {
	t.Helper()
	con := interptest.New(script...)
	value, err := interp.Run(p, interp.WithConsole(con))
	require.NoError(t, err)
	return value, con.Trace()
}

func requireEquivalent[T any](t *testing.T, left, right vine.Program[T], script ...string) {
	t.Helper()
	lv, lt := runScripted(t, left, script...)
	rv, rt := runScripted(t, right, script...)
	if diff := cmp.Diff(lt, rt); diff != "" {
		t.Fatalf("traces differ (-left +right):\n%s", diff)
	}
	require.Equal(t, lv, rv, "results differ")
}

// shout writes its input back amplified and yields the amplified value.
func shout(s string) vine.Program[string] {
	loud := s + "!"
	return vine.Then(vine.WriteLine(loud), func() vine.Program[string] {
		return vine.Pure(loud)
	})
}

// askAbout asks a follow-up question and combines both answers.
func askAbout(s string) vine.Program[string] {
	return vine.Then(vine.WriteLine("and about "+s+"?"), func() vine.Program[string] {
		return vine.AndThen(vine.ReadLine(), func(more string) vine.Program[string] {
			return vine.Pure(s + "/" + more)
		})
	})
}

func TestMonadLaws_LeftIdentity(t *testing.T) {
	// Binding a pure value is the same as applying the function directly.
	steps := map[string]func(string) vine.Program[string]{
		"Pure":  vine.Pure[string],
		"Shout": shout,
		"Ask":   askAbout,
	}
	for name, f := range steps {
		t.Run(name, func(t *testing.T) {
			requireEquivalent(t,
				vine.AndThen(vine.Pure("seed"), f),
				f("seed"),
				"first", "second")
		})
	}
}

func TestMonadLaws_RightIdentity(t *testing.T) {
	// Binding Pure onto a program changes nothing.
	programs := map[string]func() vine.Program[string]{
		"Pure":  func() vine.Program[string] { return vine.Pure("still") },
		"Read":  vine.ReadLine,
		"Shout": func() vine.Program[string] { return shout("hey") },
		"Ask":   func() vine.Program[string] { return askAbout("weather") },
	}
	for name, build := range programs {
		t.Run(name, func(t *testing.T) {
			requireEquivalent(t,
				vine.AndThen(build(), vine.Pure[string]),
				build(),
				"first", "second")
		})
	}
}

func TestMonadLaws_Associativity(t *testing.T) {
	// Grouping of binds is irrelevant; only the order of steps matters.
	programs := map[string]func() vine.Program[string]{
		"Pure": func() vine.Program[string] { return vine.Pure("base") },
		"Read": vine.ReadLine,
		"Ask":  func() vine.Program[string] { return askAbout("lunch") },
	}
	f, g := shout, askAbout
	for name, build := range programs {
		t.Run(name, func(t *testing.T) {
			requireEquivalent(t,
				vine.AndThen(vine.AndThen(build(), f), g),
				vine.AndThen(build(), func(s string) vine.Program[string] {
					return vine.AndThen(f(s), g)
				}),
				"first", "second", "third")
		})
	}
}
