package call

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/LaSpruca/argster/coerce"
)

type palette struct {
	name, version, command, err *color.Color
}

func (p *Program) palette() palette {
	pal := palette{
		name:    color.New(color.Bold),
		version: color.New(color.FgHiBlack),
		command: color.New(color.FgGreen, color.Bold),
		err:     color.New(color.FgRed, color.Bold),
	}
	if p.NoColor {
		for _, c := range []*color.Color{pal.name, pal.version, pal.command, pal.err} {
			c.DisableColor()
		}
	}
	return pal
}

// PrintHelp writes help for the named command, or for the program when
// command is empty or unknown. A non-nil err is shown under the header.
func (p *Program) PrintHelp(w io.Writer, command string, err error) error {
	pal := p.palette()

	header := pal.name.Sprint(p.Name)
	if p.Version != "" {
		header += " " + pal.version.Sprint(p.Version)
	}
	fmt.Fprintln(w, header)
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}
	if err != nil {
		fmt.Fprintln(w, pal.err.Sprint("Error:"), err)
	}

	if cmd := p.lookup(command); cmd != nil {
		return p.writeCommandHelp(w, pal, cmd)
	}
	return p.writeCommands(w, pal)
}

func (p *Program) writeCommands(w io.Writer, pal palette) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:", p.Name, "<command> [arguments]")
	if len(p.commands) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	t := makeTable(w)
	for _, cmd := range p.commands {
		summary, _, _ := strings.Cut(cmd.Help, "\n")
		t.Append([]string{pal.command.Sprint(cmd.Name), summary})
	}
	t.Render()
	fmt.Fprintln(w, "\nRun \""+p.Name+" help <command>\" for more information on a command.")
	return nil
}

func (p *Program) writeCommandHelp(w io.Writer, pal palette, cmd *Command) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, pal.command.Sprint(cmd.Name))
	if cmd.Help != "" {
		fmt.Fprintln(w, cmd.Help)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, usage(p, cmd))
	if len(cmd.Params) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	t := makeTable(w)
	for _, param := range cmd.Params {
		long, short := "--"+param.Long, ""
		if param.Positional() {
			long = param.Long
		}
		if param.Short != "" {
			short = "-" + param.Short
		}
		t.Append([]string{long, short, param.Type.Name, param.Type.Desc, param.Type.Extra, param.Desc})
	}
	t.Render()
	return nil
}

func usage(p *Program, cmd *Command) string {
	parts := []string{"Usage:", p.Name, cmd.Name}
	for _, param := range cmd.Params {
		s := "--" + param.Long + " " + param.Type.Desc
		if param.Positional() {
			s = param.Type.Desc
		}
		switch param.Type.Extra {
		case coerce.Flag:
			if !param.Positional() {
				s = "--" + param.Long
			}
			s = "[" + s + "]"
		case coerce.Optional:
			s = "[" + s + "]"
		case coerce.List:
			s += " ..."
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func makeTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetBorder(false)
	t.SetHeaderLine(false)
	t.SetColumnSeparator("")
	t.SetCenterSeparator("")
	t.SetRowSeparator("")
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetTablePadding("   ")
	t.SetNoWhiteSpace(true)
	return t
}
