package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/omrview/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  omrview config print")
	fmt.Fprintln(w, "  omrview config validate [--path FILE]")
	fmt.Fprintln(w, "  omrview config path")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "print":
		return runConfigPrint(args[1:])
	case "validate":
		return runConfigValidate(args[1:])
	case "path":
		path, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(path)
		return 0
	case "help", "-h", "--help":
		printConfigUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}

func runConfigPrint(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "config print takes no arguments")
		return 2
	}
	res, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	data, err := config.Marshal(res.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if res.File != "" {
		fmt.Printf("# loaded from %s\n", res.File)
	} else {
		fmt.Println("# defaults (no settings file)")
	}
	os.Stdout.Write(data)
	return 0
}

func runConfigValidate(args []string) int {
	fs := flag.NewFlagSet("config validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Settings file to validate (default: standard location)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	target := *path
	if target == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		target = p
	}

	res, err := config.LoadFromPath(target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if res.File == "" {
		fmt.Printf("%s not found; defaults are valid\n", target)
		return 0
	}
	fmt.Printf("%s is valid\n", target)
	return 0
}
