package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-models2ts/pkg/orchestrator"
	"github.com/goliatone/go-models2ts/pkg/tsgen"
)

// multiFlag collects repeated flag values.
type multiFlag []string

func (f *multiFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *multiFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	var exclude multiFlag

	module := flag.String("module", "", "dotted name or filepath of the model module.\nDiscoverable submodules will also be checked.")
	output := flag.String("output", "", "file the typescript definitions should be written to")
	json2tsCmd := flag.String("json2ts-cmd", tsgen.DefaultCommand, "json2ts command to run.\nProvide this if it's not discoverable or only installed locally (example: 'yarn json2ts').")
	flag.Var(&exclude, "exclude", "name of a model which should be omitted from the results.\nThis option can be defined multiple times.")
	flag.Parse()

	if *module == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "models2ts: -module and -output are required")
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "models2ts: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	gen := orchestrator.New(orchestrator.WithLogger(logger))

	req := orchestrator.Request{
		Module:     *module,
		Output:     *output,
		Exclude:    exclude,
		JSON2TSCmd: *json2tsCmd,
	}

	if err := gen.Generate(context.Background(), req); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}
