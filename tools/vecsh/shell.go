package vecsh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/buildkite/shellwords"

	"github.com/clktmr/estd/vector"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
)

// Shell applies commands to a vector of ints.
type Shell struct {
	v   *vector.Vector[int]
	out io.Writer
}

func NewShell(v *vector.Vector[int], out io.Writer) *Shell {
	return &Shell{v: v, out: out}
}

type command struct {
	nargs int
	run   func(s *Shell, args []int)
}

var commands = map[string]command{
	"push":    {1, func(s *Shell, a []int) { s.v.PushBack(a[0]) }},
	"pop":     {0, func(s *Shell, a []int) { s.v.PopBack() }},
	"insert":  {2, func(s *Shell, a []int) { s.v.Insert(a[0], a[1]) }},
	"insertn": {3, func(s *Shell, a []int) { s.v.InsertN(a[0], a[1], a[2]) }},
	"emplace": {2, func(s *Shell, a []int) { s.v.Emplace(a[0]).Copy(a[1]) }},
	"erase":   {-1, (*Shell).erase},
	"assign":  {2, func(s *Shell, a []int) { s.v.Assign(a[0], a[1]) }},
	"clear":   {0, func(s *Shell, a []int) { s.v.Clear() }},
	"sort":    {0, func(s *Shell, a []int) { slices.Sort(s.v.Slice()) }},
	"reverse": {0, func(s *Shell, a []int) { slices.Reverse(s.v.Slice()) }},
	"at":      {1, func(s *Shell, a []int) { fmt.Fprintln(s.out, *s.v.At(a[0])) }},
	"front":   {0, func(s *Shell, a []int) { fmt.Fprintln(s.out, *s.v.Front()) }},
	"back":    {0, func(s *Shell, a []int) { fmt.Fprintln(s.out, *s.v.Back()) }},
	"print":   {0, func(s *Shell, a []int) { fmt.Fprintln(s.out, s.v.Slice()) }},
	"len":     {0, func(s *Shell, a []int) { fmt.Fprintln(s.out, s.v.Len(), s.v.Cap()) }},
}

func (s *Shell) erase(args []int) {
	if len(args) == 1 {
		s.v.Erase(args[0])
	} else {
		s.v.EraseRange(args[0], args[1])
	}
}

// Exec runs a single command line. Empty lines and comments are ignored.
func (s *Shell) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	words, err := shellwords.Split(line)
	if err != nil {
		return err
	}

	name := strings.ToLower(words[0])
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, words[0])
	}
	args := make([]int, 0, len(words)-1)
	for _, w := range words[1:] {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		args = append(args, n)
	}
	switch {
	case cmd.nargs >= 0 && len(args) != cmd.nargs,
		cmd.nargs < 0 && (len(args) < 1 || len(args) > 2):
		return fmt.Errorf("%s: %w", name, ErrArguments)
	}
	cmd.run(s, args)
	return nil
}

// Run executes r line by line and stops at the first error.
func (s *Shell) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		if err := s.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}
