// dmxaddr - DMX512 address converter for Gray Logic
//
// dmxaddr parses a single DMX512 address in dotted ("1.511") or absolute
// ("1024") notation and prints its canonical fields, or builds an address
// from a universe and channel.
//
// Usage:
//
//	dmxaddr parse 1.9            # 1.009 (absolute 9)
//	dmxaddr parse 1024 -o json   # {"address":"2.512","universe":2,...}
//	dmxaddr format 3 210         # 3.210 (absolute 1234)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// configEnvVar names the environment variable holding the config file path.
const configEnvVar = "GRAYLOGIC_DMX_CONFIG"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command line, separated from main for testability.
//
// Parameters:
//   - args: Command-line arguments without the program name
//   - stdout: Destination for command output
//   - stderr: Destination for usage and help text
//
// Returns:
//   - error: nil on success, or the first failure
func run(args []string, stdout, stderr io.Writer) (err error) {
	a := &app{out: stdout}
	defer func() {
		err = errors.Join(err, a.close())
	}()

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}
