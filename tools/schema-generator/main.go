// Command schema-generator writes the numwidget.yml JSON schema to disk so
// editors can validate configuration files.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/grovetools/numwidget/config"
	"github.com/grovetools/numwidget/logging"
)

func main() {
	out := flag.String("out", filepath.Join("schema", "numwidget.schema.json"), "Output path")
	flag.Parse()

	log := logging.NewLogger("schema-generator")

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.WithError(err).Fatal("Error generating schema")
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.WithError(err).Fatal("Error creating schema directory")
	}
	if err := os.WriteFile(*out, schemaBytes, 0o644); err != nil {
		log.WithError(err).Fatal("Error writing schema file")
	}

	log.WithField("path", *out).Info("Generated schema")
}
