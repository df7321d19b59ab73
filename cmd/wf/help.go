package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wayfinder-nav/wayfinder/internal/ui"
)

// CommandCategory groups related commands in the help output.
type CommandCategory struct {
	Title    string
	Commands []CommandInfo
}

// CommandInfo is one command line in the help output.
type CommandInfo struct {
	Name string
	Desc string
}

// renderCategoryHelp prints the styled root help: title, tagline, command
// categories, and the global flags.
func renderCategoryHelp(title, tagline string, categories []CommandCategory, flags *pflag.FlagSet) {
	fmt.Println(ui.Header(title))
	fmt.Println(ui.Dim(tagline))
	fmt.Println()

	width := 0
	for _, cat := range categories {
		for _, c := range cat.Commands {
			if len(c.Name) > width {
				width = len(c.Name)
			}
		}
	}

	for _, cat := range categories {
		fmt.Println(ui.Section(cat.Title))
		for _, c := range cat.Commands {
			pad := strings.Repeat(" ", width-len(c.Name))
			fmt.Printf("  %s%s  %s\n", ui.Primary(c.Name), pad, c.Desc)
		}
		fmt.Println()
	}

	fmt.Println(ui.Section("Global Flags"))
	flags.VisitAll(func(f *pflag.Flag) {
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		fmt.Printf("  %-24s %s\n", ui.Primary(name), f.Usage)
	})
	fmt.Println()
	fmt.Println(ui.Dim("Use \"wf <command> --help\" for more information about a command."))
}
