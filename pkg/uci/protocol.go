package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Engine is the part of the engine the protocol drives directly. Search
// is launched through a separate, engine-specific surface.
type Engine interface {
	Info() (name, author, version string)
	Options() *Options
	Prepare()
	Clear()
}

// Protocol handles one serialized stream of host commands. Protocol
// replies go to out (stdout for a real host); diagnostics go to the
// logger so they never corrupt the protocol channel.
type Protocol struct {
	engine  Engine
	options *Options
	out     io.Writer
}

func New(engine Engine, out io.Writer) *Protocol {
	return &Protocol{
		engine:  engine,
		options: engine.Options(),
		out:     out,
	}
}

// Run processes commands line by line until "quit" or EOF.
func (p *Protocol) Run(in io.Reader, logger *slog.Logger) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		if commandLine == "" {
			continue
		}
		if err := p.Handle(commandLine); err != nil {
			logger.Warn("command failed", "command", commandLine, "error", err)
		}
	}
}

func (p *Protocol) Handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = p.uciCommand
	case "setoption":
		h = p.setOptionCommand
	case "isready":
		h = p.isReadyCommand
	case "ucinewgame":
		h = p.uciNewGameCommand
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(fields)
}

func (p *Protocol) uciCommand(fields []string) error {
	var name, author, version = p.engine.Info()
	fmt.Fprintf(p.out, "id name %s %s\n", name, version)
	fmt.Fprintf(p.out, "id author %s\n", author)
	for _, option := range p.options.All() {
		fmt.Fprintln(p.out, option.String())
	}
	fmt.Fprintln(p.out, "uciok")
	return nil
}

// Option names and string values may contain spaces, so everything
// between "name" and "value" is the name and everything after "value"
// is the value ("setoption name Clear Hash").
func (p *Protocol) setOptionCommand(fields []string) error {
	if len(fields) == 0 || fields[0] != "name" {
		return errors.New("invalid setoption arguments")
	}
	var valueIndex = findIndexString(fields, "value")
	var name, value string
	if valueIndex == -1 {
		name = strings.Join(fields[1:], " ")
	} else {
		name = strings.Join(fields[1:valueIndex], " ")
		value = strings.Join(fields[valueIndex+1:], " ")
	}
	if name == "" {
		return errors.New("invalid setoption arguments")
	}
	return p.options.Set(name, value)
}

func (p *Protocol) isReadyCommand(fields []string) error {
	p.engine.Prepare()
	fmt.Fprintln(p.out, "readyok")
	return nil
}

func (p *Protocol) uciNewGameCommand(fields []string) error {
	p.engine.Clear()
	return nil
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
