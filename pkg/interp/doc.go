/*
Package interp executes vine programs against a console.

Run walks a program in a loop: Write nodes become output lines, Read nodes
block for input lines, Done ends the run with the program's value. The
console is pluggable. By default it is the process stdin/stdout, tests
usually swap in a scripted one (see the interptest subpackage).

Any console failure aborts the run: the error is wrapped and returned, no
retries, no partial results. Effects performed before the failure are not
undone.
*/
package interp
