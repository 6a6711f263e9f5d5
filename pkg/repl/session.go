package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/musemeta/bqshell/pkg/render"
	"github.com/musemeta/bqshell/pkg/util"
)

// State is the interactive loop's position.
type State int

const (
	AwaitingInput State = iota
	Executing
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting input"
	case Executing:
		return "executing"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Executor runs one SQL statement. Satisfied by *bqshell.Console.
type Executor interface {
	Execute(ctx context.Context, sql string) (*util.QueryResult, error)
}

// Session holds the interactive loop state. Transitions happen on discrete
// input events: a line received, end-of-input, or an interrupt. Query
// failures print an error marker and return the session to AwaitingInput;
// nothing inside the loop is fatal.
type Session struct {
	exec  Executor
	out   io.Writer
	state State
}

func NewSession(exec Executor, out io.Writer) *Session {
	return &Session{exec: exec, out: out, state: AwaitingInput}
}

func (s *Session) State() State {
	return s.state
}

// Done reports whether the session reached its terminal state.
func (s *Session) Done() bool {
	return s.state == Terminated
}

// IsQuit reports whether line is one of the quit tokens, ignoring case and
// surrounding whitespace.
func IsQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// HandleLine processes one input line. Empty input is a no-op, quit tokens
// terminate the session, anything else executes as SQL.
func (s *Session) HandleLine(ctx context.Context, line string) {
	if s.state == Terminated {
		return
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if IsQuit(line) {
		s.state = Terminated
		return
	}

	s.state = Executing
	s.execute(ctx, line)
	s.state = AwaitingInput
}

func (s *Session) execute(ctx context.Context, sql string) {
	fmt.Fprintln(s.out, "\n🔍 Custom query:")
	fmt.Fprintln(s.out, strings.Repeat("-", 60))
	fmt.Fprintf(s.out, "SQL: %s\n\n", sql)

	result, err := s.exec.Execute(ctx, sql)
	if err != nil {
		fmt.Fprintf(s.out, "   ❌ Error: %s\n", err)
		return
	}
	render.Query(s.out, result)
}

// HandleEOF terminates the session on end-of-input.
func (s *Session) HandleEOF() {
	s.state = Terminated
}

// HandleInterrupt terminates the session on an interrupt signal.
func (s *Session) HandleInterrupt() {
	if s.state == Terminated {
		return
	}
	fmt.Fprintln(s.out, "\n\nExiting...")
	s.state = Terminated
}

// Run drives the session from r line by line until a quit token,
// end-of-input, or context cancellation. It is the loop used when standard
// input is not a terminal.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for !s.Done() {
		if ctx.Err() != nil {
			s.HandleInterrupt()
			return nil
		}
		fmt.Fprint(s.out, "\nSQL> ")
		if !scanner.Scan() {
			s.HandleEOF()
			break
		}
		s.HandleLine(ctx, scanner.Text())
	}
	return scanner.Err()
}
