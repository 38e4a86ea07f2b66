package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

func main() {
	// values in a local .env file are used as defaults for any env vars not already set
	_ = godotenv.Load()

	parser := flags.NewParser(nil, flags.Default)
	parser.AddCommand("sense", "Wait for a task to complete", docSense, &optsSense{})
	parser.AddCommand("export", "Export a file to a volume", docExport, &optsExport{})
	parser.AddCommand("import", "Import a file from a volume", docImport, &optsImport{})
	parser.AddCommand("worker", "Run deferred sensors", docWorker, &optsWorker{})
	parser.AddCommand("migrate", "Create or update the connection store schema", docMigrate, &optsMigrate{})
	parser.AddCommand("connection", "Add or update a stored connection", docConnection, &optsConnectionSet{})

	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case *flags.Error:
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}
}
