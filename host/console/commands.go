package console

import (
	"fmt"
	"sort"

	"msphal/config"
	"msphal/core"
)

type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int
	run     func(c *Console, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":    {"help", "list commands", 0, 0, cmdHelp},
		"out":     {"out <pin> [low|high]", "configure an output", 1, 2, cmdOut},
		"in":      {"in <pin> [up|down]", "configure a pulled input", 1, 2, cmdIn},
		"set":     {"set <pin> <low|high>", "write an output", 2, 2, cmdSet},
		"toggle":  {"toggle <pin>", "invert an output", 1, 1, cmdToggle},
		"read":    {"read <pin>", "read the pin level", 1, 1, cmdRead},
		"arm":     {"arm <pin> [falling|rising]", "arm the edge interrupt", 1, 2, cmdArm},
		"disarm":  {"disarm <pin>", "disable the edge interrupt", 1, 1, cmdDisarm},
		"clear":   {"clear <pin>", "clear the interrupt flag", 1, 1, cmdClear},
		"flags":   {"flags <port>", "show pending interrupt flags", 1, 1, cmdFlags},
		"drive":   {"drive <pin> <low|high>", "drive the pad from outside", 2, 2, cmdDrive},
		"release": {"release <pin>", "disconnect the outside driver", 1, 1, cmdRelease},
		"dump":    {"dump [port]", "show port registers", 0, 1, cmdDump},
		"lines":   {"lines", "list configured pins", 0, 0, cmdLines},
		"reset":   {"reset", "power-on reset", 0, 0, cmdReset},
		"quit":    {"quit", "leave the console", 0, 0, cmdQuit},
	}
	commands["exit"] = commands["quit"]
}

func cmdHelp(c *Console, args []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		if name != "exit" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(c.out, "  %-28s %s\n", commands[name].usage, commands[name].help)
	}
	return nil
}

func cmdOut(c *Console, args []string) error {
	port, index, err := config.ParsePin(args[0])
	if err != nil {
		return err
	}
	pin := config.PinConfig{Pin: args[0], Mode: config.ModeOutput, Initial: "low"}
	if len(args) > 1 {
		pin.Initial = args[1]
	}
	return c.configure(config.Label(port, index), pin)
}

func cmdIn(c *Console, args []string) error {
	port, index, err := config.ParsePin(args[0])
	if err != nil {
		return err
	}
	pin := config.PinConfig{Pin: args[0], Mode: config.ModeInput}
	if len(args) > 1 {
		switch args[1] {
		case "up":
		case "down":
			pin.Mode = config.ModeInputPullDown
		default:
			return fmt.Errorf("pull %q: %w", args[1], ErrUsage)
		}
	}
	return c.configure(config.Label(port, index), pin)
}

func output(c *Console, target string) (*config.Line, error) {
	line, err := c.resolve(target)
	if err != nil {
		return nil, err
	}
	if line.Output == nil {
		return nil, fmt.Errorf("%s: %w", line.Label(), ErrNotOutput)
	}
	return line, nil
}

func interrupt(c *Console, target string) (*config.Line, error) {
	line, err := c.resolve(target)
	if err != nil {
		return nil, err
	}
	if line.IRQ == nil {
		return nil, fmt.Errorf("%s: %w", line.Label(), config.ErrNoInterrupt)
	}
	return line, nil
}

func cmdSet(c *Console, args []string) error {
	line, err := output(c, args[0])
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(args[1])
	if err != nil {
		return err
	}
	line.Output.Write(level)
	c.report(line)
	return nil
}

func cmdToggle(c *Console, args []string) error {
	line, err := output(c, args[0])
	if err != nil {
		return err
	}
	line.Output.Toggle()
	c.report(line)
	return nil
}

func cmdRead(c *Console, args []string) error {
	if line, err := c.resolve(args[0]); err == nil {
		c.report(line)
		return nil
	}

	// PxIN is readable whatever the pin is configured as
	port, index, err := config.ParsePin(args[0])
	if err != nil {
		return err
	}
	level := core.Low
	if core.Snapshot(port).In&index.Mask() != 0 {
		level = core.High
	}
	fmt.Fprintf(c.out, "%s %s\n", config.Label(port, index), level)
	return nil
}

func cmdArm(c *Console, args []string) error {
	line, err := interrupt(c, args[0])
	if err != nil {
		return err
	}
	edge := core.FallingEdge
	if len(args) > 1 {
		if edge, err = config.ParseEdge(args[1]); err != nil {
			return err
		}
	}
	line.IRQ.Arm(edge)
	fmt.Fprintf(c.out, "%s armed %s\n", c.display(line), edge)
	return nil
}

func cmdDisarm(c *Console, args []string) error {
	line, err := interrupt(c, args[0])
	if err != nil {
		return err
	}
	line.IRQ.Disarm()
	fmt.Fprintf(c.out, "%s disarmed\n", c.display(line))
	return nil
}

func cmdClear(c *Console, args []string) error {
	line, err := interrupt(c, args[0])
	if err != nil {
		return err
	}
	line.IRQ.ClearPending()
	return nil
}

func cmdFlags(c *Console, args []string) error {
	port, err := parsePort(args[0])
	if err != nil {
		return err
	}
	if !core.Capable(port) {
		return fmt.Errorf("%s: %w", port, config.ErrNoInterrupt)
	}

	ifg := core.Snapshot(port).IFG
	fmt.Fprintf(c.out, "%s IFG=%02X", port, ifg)
	for index := core.Pin0; index <= core.Pin7; index++ {
		if ifg&index.Mask() != 0 {
			fmt.Fprintf(c.out, " %s", config.Label(port, index))
		}
	}
	fmt.Fprintln(c.out)
	return nil
}

func cmdDrive(c *Console, args []string) error {
	port, index, err := c.physical(args[0])
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(args[1])
	if err != nil {
		return err
	}
	core.Drive(port, index, level)
	return nil
}

func cmdRelease(c *Console, args []string) error {
	port, index, err := c.physical(args[0])
	if err != nil {
		return err
	}
	core.Release(port, index)
	return nil
}

func cmdDump(c *Console, args []string) error {
	ports := []core.PortID{core.Port1, core.Port2, core.Port3}
	if len(args) == 1 {
		port, err := parsePort(args[0])
		if err != nil {
			return err
		}
		ports = []core.PortID{port}
	}
	for _, port := range ports {
		fmt.Fprintln(c.out, core.Snapshot(port))
	}
	return nil
}

func cmdLines(c *Console, args []string) error {
	for _, line := range c.sortedLines() {
		kind := "input"
		if line.Output != nil {
			kind = "output"
		}
		fmt.Fprintf(c.out, "%s %s %s\n", c.display(line), kind, line.State())
	}
	return nil
}

func cmdReset(c *Console, args []string) error {
	core.Reset()
	c.lines = make(map[string]*config.Line)
	c.names = make(map[string]string)
	c.log.Info("power-on reset")
	return nil
}

func cmdQuit(c *Console, args []string) error {
	return errQuit
}
