package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
)

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	// Usage is the argument synopsis printed after the command name
	Usage() string
	Run(args []string) error
}

var errUsage = errors.New("invalid arguments")

// Registry holds the subcommands in the order they were registered
type Registry struct {
	order    []string
	commands map[string]Command
}

// NewRegistry creates a registry with the given commands
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		r.Register(cmd)
	}
	return r
}

// Register adds a command, a later command with the same name replaces the earlier one
func (r *Registry) Register(cmd Command) {
	if _, exists := r.commands[cmd.Name()]; !exists {
		r.order = append(r.order, cmd.Name())
	}
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Dispatch runs the command named by args[0]. "help <command>" prints that command's usage.
func (r *Registry) Dispatch(args []string, out io.Writer) error {
	if len(args) == 0 {
		r.PrintHelp(out)
		return errUsage
	}

	if args[0] == "help" {
		if len(args) > 1 {
			if cmd, ok := r.Get(args[1]); ok {
				printUsage(out, cmd)
				return nil
			}
		}
		r.PrintHelp(out)
		return nil
	}

	cmd, ok := r.Get(args[0])
	if !ok {
		r.PrintHelp(out)
		return fmt.Errorf("unknown command: %s", args[0])
	}

	err := cmd.Run(args[1:])
	if errors.Is(err, errUsage) {
		printUsage(out, cmd)
	}
	return err
}

// PrintHelp lists every command with its synopsis
func (r *Registry) PrintHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage: devtool <command> [args...]")
	fmt.Fprintln(out, "       devtool help <command>")
	fmt.Fprintln(out, "\nCommands:")

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range r.order {
		cmd := r.commands[name]
		fmt.Fprintf(tw, "  %s %s\t%s\n", cmd.Name(), cmd.Usage(), cmd.Description())
	}
	_ = tw.Flush()

	fmt.Fprintln(out, "\nSettings are read from the environment and .env, the same as the server.")
}

func printUsage(out io.Writer, cmd Command) {
	fmt.Fprintf(out, "Usage: devtool %s %s\n\n%s\n", cmd.Name(), cmd.Usage(), cmd.Description())
}
