// Command checkctl loads a check-stage definition and an event document and
// reports whether the event satisfies the check, with an optional trace.
//
// Grounded on the teacher's cmd/graft/main.go: goptions flag parsing, the
// geofffranks simpleyaml/yaml file-loading pair, and ansi-colorized output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/geofffranks/simpleyaml"
	"github.com/geofffranks/yaml"
	"github.com/starkandwayne/goutils/ansi"
	"github.com/voxelbrain/goptions"

	"github.com/wayneeseguin/checkengine/internal/clog"
	"github.com/wayneeseguin/checkengine/pkg/checkengine"
	_ "github.com/wayneeseguin/checkengine/pkg/checkengine/operators" // register builders
)

// Version is set at release build time, mirroring the teacher's convention.
var Version = "(development)"

type options struct {
	Check   string `goptions:"-c, --check, obligatory, description='Path to the check-stage definition (YAML list or expression string), or - for stdin'"`
	Event   string `goptions:"-e, --event, obligatory, description='Path to the event document (YAML/JSON), or - for stdin'"`
	Trace   bool   `goptions:"-t, --trace, description='Print every traversed node trace, not just the final one'"`
	YAML    bool   `goptions:"--yaml, description='Print the full trace as a YAML document instead of plain lines'"`
	Debug   bool   `goptions:"-d, --debug, description='Enable debug logging'"`
	Version bool   `goptions:"-v, --version, description='Print version and exit'"`
	Help    bool   `goptions:"-h, --help"`
}

var getopts = func(o interface{}) {
	if err := goptions.Parse(o); err != nil {
		goptions.PrintHelp()
		os.Exit(1)
	}
}

var exit = os.Exit

func main() {
	var opts options
	getopts(&opts)

	if opts.Help {
		goptions.PrintHelp()
		exit(0)
	}
	if opts.Version {
		fmt.Println(Version)
		exit(0)
	}
	if opts.Debug {
		clog.SetLevel(clog.LevelDebug)
	}

	checkDef, err := loadValue(opts.Check)
	if err != nil {
		fmt.Fprintln(os.Stderr, ansi.Sprintf("@R{error loading check definition}: %s", err))
		exit(1)
	}
	event, err := loadValue(opts.Event)
	if err != nil {
		fmt.Fprintln(os.Stderr, ansi.Sprintf("@R{error loading event}: %s", err))
		exit(1)
	}

	clog.DEBUG("building check from %s", opts.Check)
	expr, err := checkengine.BuildCheck(checkDef)
	if err != nil {
		fmt.Fprintln(os.Stderr, ansi.Sprintf("@*R{check build failed}: %s", err))
		exit(1)
	}

	sink := &checkengine.SliceSink{}
	result := checkengine.EvaluateWithSink(expr, event, sink)

	if opts.YAML {
		printYAMLTrace(sink, result)
	} else if opts.Trace {
		for _, ev := range sink.Events {
			tag := ansi.Sprintf("@G{PASS}")
			if !ev.Success {
				tag = ansi.Sprintf("@R{FAIL}")
			}
			fmt.Printf("[%s] %s: %s\n", tag, ev.Node, ev.Message)
		}
	}

	if result.Success {
		fmt.Println(ansi.Sprintf("@G{%s}", result.Trace))
		exit(0)
	}
	fmt.Println(ansi.Sprintf("@R{%s}", result.Trace))
	exit(1)
}

// printYAMLTrace renders the trace and final result as a YAML document,
// using the same geofffranks/yaml fork the teacher uses for its own
// dataflow/vault-refs output (cmd/graft/main.go's yaml.Marshal calls).
func printYAMLTrace(sink *checkengine.SliceSink, result checkengine.Result) {
	type traceEvent struct {
		Node    string `yaml:"node"`
		Success bool   `yaml:"success"`
		Message string `yaml:"message"`
	}
	doc := struct {
		Success bool         `yaml:"success"`
		Trace   string       `yaml:"trace"`
		Events  []traceEvent `yaml:"events"`
	}{
		Success: result.Success,
		Trace:   result.Trace,
	}
	for _, ev := range sink.Events {
		doc.Events = append(doc.Events, traceEvent{Node: ev.Node, Success: ev.Success, Message: ev.Message})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, ansi.Sprintf("@R{error rendering YAML trace}: %s", err))
		return
	}
	fmt.Print(string(out))
}

// loadValue reads path (or stdin for "-") as YAML/JSON and lifts it into the
// checkengine Value domain.
func loadValue(path string) (checkengine.Value, error) {
	data, err := readFile(path)
	if err != nil {
		return checkengine.Value{}, err
	}

	y, err := simpleyaml.NewYaml(data)
	if err != nil {
		return checkengine.Value{}, ansi.Errorf("@R{malformed YAML/JSON}: %s", err)
	}

	raw, err := y.Map()
	if err == nil {
		return checkengine.FromInterface(raw), nil
	}

	arr, err := y.Array()
	if err == nil {
		return checkengine.FromInterface(arr), nil
	}

	str, err := y.String()
	if err == nil {
		return checkengine.StringValue(str), nil
	}

	return checkengine.Value{}, ansi.Errorf("@R{document root is neither a map, array, nor string}")
}

func readFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ansi.Errorf("@R{error reading file} @m{%s}: %s", path, err.Error())
	}
	defer f.Close()
	return io.ReadAll(f)
}
