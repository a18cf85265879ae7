// Package console implements a line-oriented command console over the
// GPIO layer. On a workstation it drives the simulated register file, so
// firmware pin maps can be exercised without a board.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"

	"msphal/config"
	"msphal/core"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
	ErrUnknownLine    = errors.New("pin not configured")
	ErrNotOutput      = errors.New("pin is not an output")
	ErrInvalidPort    = errors.New("invalid port")

	errQuit = errors.New("quit")
)

// Console executes commands against a set of configured lines
type Console struct {
	out io.Writer
	log *logrus.Entry

	// Prompt is written before each line read by Run
	Prompt string

	lines map[string]*config.Line // by label ("P1.0")
	names map[string]string       // line name -> label
}

// New creates a console writing responses to out
func New(out io.Writer, log *logrus.Entry) *Console {
	return &Console{
		out:   out,
		log:   log,
		lines: make(map[string]*config.Line),
		names: make(map[string]string),
	}
}

// Load configures every pin of a board and makes its names usable as
// command targets
func (c *Console) Load(board *config.Board) error {
	lines, err := config.Apply(board)
	if err != nil {
		return err
	}
	for name, line := range lines {
		c.add(name, line)
	}
	c.log.WithField("pins", len(lines)).Infof("loaded board %s", board.Name)
	return nil
}

func (c *Console) add(name string, line *config.Line) {
	label := line.Label()
	if prev, ok := c.lines[label]; ok && prev.Name != label && name == label {
		// Keep the board name when a pin is reconfigured by label
		line.Name = prev.Name
	}
	c.lines[label] = line
	if line.Name != label {
		c.names[line.Name] = label
	}
}

// Run reads commands from r until EOF or quit. Command errors are
// reported on the output and do not stop the loop.
func (c *Console) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		if c.Prompt != "" {
			fmt.Fprint(c.out, c.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		err := c.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			c.log.WithError(err).Debug("command failed")
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Exec runs a single command line
func (c *Console) Exec(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	cmd, ok := commands[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("%s: %w", args[0], ErrUnknownCommand)
	}
	if len(args)-1 < cmd.minArgs || len(args)-1 > cmd.maxArgs {
		return fmt.Errorf("usage: %s: %w", cmd.usage, ErrUsage)
	}

	c.log.WithField("cmd", args[0]).Debug(strings.Join(args[1:], " "))
	return cmd.run(c, args[1:])
}

// resolve finds a configured line by name or label
func (c *Console) resolve(target string) (*config.Line, error) {
	if label, ok := c.names[target]; ok {
		return c.lines[label], nil
	}
	port, index, err := config.ParsePin(target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, ErrUnknownLine)
	}
	line, ok := c.lines[config.Label(port, index)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", target, ErrUnknownLine)
	}
	return line, nil
}

// physical resolves a target to a port pin, configured or not
func (c *Console) physical(target string) (core.PortID, core.Pin, error) {
	if line, err := c.resolve(target); err == nil {
		return line.Port, line.Index, nil
	}
	return config.ParsePin(target)
}

func (c *Console) configure(label string, pin config.PinConfig) error {
	line, err := config.NewLine(label, pin)
	if err != nil {
		return err
	}
	c.add(label, line)
	fmt.Fprintf(c.out, "%s %s\n", line.Label(), pin.Mode)
	return nil
}

func (c *Console) report(line *config.Line) {
	fmt.Fprintf(c.out, "%s %s\n", c.display(line), line.State())
}

func (c *Console) display(line *config.Line) string {
	if line.Name != "" && line.Name != line.Label() {
		return line.Name + " (" + line.Label() + ")"
	}
	return line.Label()
}

func (c *Console) sortedLines() []*config.Line {
	labels := make([]string, 0, len(c.lines))
	for label := range c.lines {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lines := make([]*config.Line, len(labels))
	for i, label := range labels {
		lines[i] = c.lines[label]
	}
	return lines
}

func parsePort(s string) (core.PortID, error) {
	switch strings.ToUpper(s) {
	case "P1", "1":
		return core.Port1, nil
	case "P2", "2":
		return core.Port2, nil
	case "P3", "3":
		return core.Port3, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidPort)
}
