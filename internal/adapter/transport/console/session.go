package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/dayanaadylkhanova/randomiser/internal/entity"
	"github.com/dayanaadylkhanova/randomiser/internal/format"
)

const (
	prompt        = "> "
	endOfItems    = "."
	maxLineLength = 1 << 20
)

type tab string

const (
	tabNumbers tab = "numbers"
	tabDice    tab = "dice"
	tabShuffle tab = "shuffle"
	tabPick    tab = "pick"
)

const helpText = `commands:
  numbers LOWER UPPER [QTY] [unique] [keep]
  dice KIND [QTY] [percent] [keep]      KIND: d4 d6 d8 d10 d12 d20
  shuffle                               then one item per line, end with "."
  pick [QTY] [unique] [keep]            then one item per line, end with "."
  clear numbers|dice|shuffle|pick
  dice-kinds
  help
  quit`

// Session is a line-oriented front end for the randomiser. It keeps one
// output area per operation, like the tabs of a window.
type Session struct {
	log    *slog.Logger
	in     io.Reader
	out    *bufio.Writer
	rnd    Randomiser
	limits entity.Limits
	tabs   map[tab]string
}

func NewSession(log *slog.Logger, in io.Reader, out io.Writer, rnd Randomiser, limits entity.Limits) *Session {
	return &Session{
		log:    log,
		in:     in,
		out:    bufio.NewWriter(out),
		rnd:    rnd,
		limits: limits,
		tabs:   make(map[tab]string),
	}
}

// Run serves commands until quit, end of input or ctx cancellation.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errCh := make(chan error, 1)
	go s.readLoop(ctx, lines, errCh)

	s.log.Info("session started", "max_list_items", s.limits.MaxListItems)
	s.write(prompt)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("shutdown: session closed")
			return nil
		case err := <-errCh:
			return fmt.Errorf("read input: %w", err)
		case line, ok := <-lines:
			if !ok {
				s.log.Debug("input closed")
				return nil
			}
			if s.handle(ctx, line, lines) {
				return nil
			}
			s.write(prompt)
		}
	}
}

func (s *Session) readLoop(ctx context.Context, lines chan<- string, errCh chan<- error) {
	sc := bufio.NewScanner(s.in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := sc.Err(); err != nil {
		errCh <- err
		return
	}
	close(lines)
}

// handle runs one command and reports whether the session should end.
func (s *Session) handle(ctx context.Context, line string, lines <-chan string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.log.Debug("command", "name", cmd, "args", len(args))

	switch cmd {
	case "numbers", "n":
		s.numbers(args)
	case "dice", "d":
		s.dice(args)
	case "shuffle", "s":
		s.shuffle(ctx, args, lines)
	case "pick", "p":
		s.pick(ctx, args, lines)
	case "clear":
		s.clear(args)
	case "dice-kinds":
		for _, d := range entity.DieKinds() {
			s.writef("%-4s %s\n", d, d.Label())
		}
	case "help", "?":
		s.write(helpText + "\n")
	case "quit", "exit":
		return true
	default:
		s.fail(fmt.Sprintf("unknown command %q, try help", cmd))
	}
	return false
}

func (s *Session) numbers(args []string) {
	nums, opts, err := parseArgs(args, "unique", "keep")
	if err != nil {
		s.fail(err.Error())
		return
	}
	if len(nums) < 2 || len(nums) > 3 {
		s.fail("usage: numbers LOWER UPPER [QTY] [unique] [keep]")
		return
	}
	for _, b := range nums[:2] {
		if b < s.limits.MinBound || b > s.limits.MaxBound {
			s.fail(fmt.Sprintf("bounds must be between %d and %d", s.limits.MinBound, s.limits.MaxBound))
			return
		}
	}
	qty, ok := s.quantity(nums[2:])
	if !ok {
		return
	}

	out, err := s.rnd.GenerateNumbers(nums[0], nums[1], qty, !opts["unique"])
	if err != nil {
		s.failErr(err)
		return
	}
	s.show(tabNumbers, out.Text, out.Warning, opts["keep"])
}

func (s *Session) dice(args []string) {
	if len(args) == 0 {
		s.fail("usage: dice KIND [QTY] [percent] [keep]")
		return
	}
	die, err := entity.ParseDieKind(args[0])
	if err != nil {
		s.fail(err.Error())
		return
	}
	nums, opts, err := parseArgs(args[1:], "percent", "keep")
	if err != nil {
		s.fail(err.Error())
		return
	}
	if len(nums) > 1 {
		s.fail("usage: dice KIND [QTY] [percent] [keep]")
		return
	}
	qty, ok := s.quantity(nums)
	if !ok {
		return
	}

	percent := opts["percent"]
	if percent && !s.rnd.IsPercentageEligible(die, qty) {
		s.write("note: percentage rolls need exactly two 10-sided dice\n")
		percent = false
	}

	roll, err := s.rnd.RollDice(die, qty, percent)
	if err != nil {
		s.failErr(err)
		return
	}
	s.show(tabDice, roll.Text, "", opts["keep"])
}

func (s *Session) shuffle(ctx context.Context, args []string, lines <-chan string) {
	if len(args) != 0 {
		s.fail("usage: shuffle")
		return
	}
	raw, ok := s.readItems(ctx, lines)
	if !ok {
		return
	}
	out, err := s.rnd.ShuffleList(raw)
	if err != nil {
		s.failErr(err)
		return
	}
	s.show(tabShuffle, out.Text, out.Warning, false)
}

func (s *Session) pick(ctx context.Context, args []string, lines <-chan string) {
	nums, opts, err := parseArgs(args, "unique", "keep")
	if err != nil {
		s.fail(err.Error())
		return
	}
	if len(nums) > 1 {
		s.fail("usage: pick [QTY] [unique] [keep]")
		return
	}
	qty, ok := s.quantity(nums)
	if !ok {
		return
	}
	raw, ok := s.readItems(ctx, lines)
	if !ok {
		return
	}

	out, err := s.rnd.PickItems(raw, qty, !opts["unique"])
	if err != nil {
		s.failErr(err)
		return
	}
	s.show(tabPick, out.Text, out.Warning, opts["keep"])
}

func (s *Session) clear(args []string) {
	if len(args) != 1 {
		s.fail("usage: clear numbers|dice|shuffle|pick")
		return
	}
	t := tab(strings.ToLower(args[0]))
	switch t {
	case tabNumbers, tabDice, tabShuffle, tabPick:
		delete(s.tabs, t)
		s.writef("%s cleared\n", t)
	default:
		s.fail(fmt.Sprintf("unknown output %q", args[0]))
	}
}

// readItems collects lines up to a lone "." or end of input.
func (s *Session) readItems(ctx context.Context, lines <-chan string) (string, bool) {
	s.write(s.rnd.ListInstruction() + "\n")
	s.writef("(finish with a line containing only %q)\n", endOfItems)
	s.flush()

	var items []string
	for {
		select {
		case <-ctx.Done():
			return "", false
		case line, ok := <-lines:
			if !ok || line == endOfItems {
				return format.JoinList(items, "\n"), true
			}
			items = append(items, line)
		}
	}
}

// quantity applies the default and the configured bounds to an optional QTY.
func (s *Session) quantity(nums []int) (int, bool) {
	if len(nums) == 0 {
		return s.limits.MinQuantity, true
	}
	q := nums[0]
	if q < s.limits.MinQuantity || q > s.limits.MaxQuantity {
		s.fail(fmt.Sprintf("quantity must be between %d and %d", s.limits.MinQuantity, s.limits.MaxQuantity))
		return 0, false
	}
	return q, true
}

// show updates one output area and prints it in full.
func (s *Session) show(t tab, text, warning string, keep bool) {
	s.tabs[t] = format.Accumulate(s.tabs[t], text, keep)
	s.write(s.tabs[t] + "\n")
	if warning != "" {
		s.write("warning: " + strings.ReplaceAll(warning, "\n", " ") + "\n")
	}
}

func (s *Session) fail(msg string) {
	s.write("error: " + msg + "\n")
}

func (s *Session) failErr(err error) {
	s.log.Debug("operation failed", "err", err)
	s.fail(s.rnd.Explain(err))
}

func (s *Session) write(str string) {
	_, _ = s.out.WriteString(str)
	s.flush()
}

func (s *Session) writef(layout string, args ...any) {
	s.write(fmt.Sprintf(layout, args...))
}

func (s *Session) flush() {
	if err := s.out.Flush(); err != nil {
		s.log.Warn("flush failed", "err", err)
	}
}

// parseArgs splits tokens into integers and the named flags.
func parseArgs(args []string, allowed ...string) ([]int, map[string]bool, error) {
	var nums []int
	opts := make(map[string]bool, len(allowed))
	for _, a := range args {
		if n, err := strconv.Atoi(a); err == nil {
			nums = append(nums, n)
			continue
		}
		name := strings.ToLower(a)
		if !slices.Contains(allowed, name) {
			return nil, nil, fmt.Errorf("unknown option %q", a)
		}
		opts[name] = true
	}
	return nums, opts, nil
}
