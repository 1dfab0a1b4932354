package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jsonshape/internal/config"
	"github.com/mcncl/jsonshape/internal/errors"
	"github.com/mcncl/jsonshape/internal/generator"
	"github.com/mcncl/jsonshape/internal/inference"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Target      string `help:"Target notation for the generated schema." short:"t" enum:"typescript,zod,prisma,mongoose" default:"typescript"`
	RootName    string `help:"Name for the root declaration. Defaults to Root (typescript, zod) or Model (prisma, mongoose)." short:"r"`
	Config      string `help:"Path to a config file. If not specified, .jsonshape.yml is searched for in the current directory and its parents." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug bool
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonshape"),
		kong.Description("Infer the shape of a JSON document and generate TypeScript, zod, Prisma or mongoose schemas"),
		kong.UsageOnError(),
	)

	// No arguments at all means the user probably wants to paste JSON
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonshape version %s\n", Version)
		return
	}

	if err := run(&Context{Debug: CLI.Debug}); err != nil {
		if errors.IsParseError(err) {
			// The error text replaces the generated output, commented out
			// so it stays inert in the target notation.
			fmt.Println(errors.CommentedError(err))
		} else {
			fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
			fmt.Fprintf(os.Stderr, "\nFor help, run: jsonshape --help\n")
		}
		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	target, err := generator.ParseTarget(cfg.Target)
	if err != nil {
		return err
	}

	// 1. Read the JSON input text
	jsonText, err := readInput()
	if err != nil {
		return err
	}

	// 2. Infer the FieldType tree
	engine := inference.NewEngineWithConfig(cfg)
	root, err := engine.Infer(jsonText)
	if err != nil {
		return err
	}

	// 3. Render it in the selected target notation
	gen := generator.NewGeneratorWithConfig(cfg)
	code, err := gen.Generate(root, target, cfg.RootName)
	if err != nil {
		return err
	}

	// 4. Output the result
	return writeOutput(code)
}

// loadConfig resolves the effective configuration from the config file
// (explicit path or discovered) and the CLI flags.
func loadConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Target, CLI.RootName)
	if err != nil {
		return nil, errors.NewInputError("failed to load configuration", err)
	}
	cfg.Dev.Debug = cfg.Dev.Debug || CLI.Debug
	return cfg, nil
}

// readInput reads JSON text from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(
					fmt.Sprintf("file '%s' not found", CLI.Input),
					errors.ErrFileNotFound,
				)
			}
			return "", errors.NewInputError(
				fmt.Sprintf("failed to read file '%s'", CLI.Input),
				err,
			)
		}
		if len(data) == 0 {
			return "", errors.NewInputError(
				fmt.Sprintf("input file '%s' is empty", CLI.Input),
				errors.ErrFileEmpty,
			)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Piped input
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(jsonData), nil
}

// writeOutput writes generated schema text to file or stdout
func writeOutput(code string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(code), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Generated schema written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSpace(code))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "jsonshape Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return jsonData, nil
}
