package config

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE string

// SchemaError reports a run file that does not satisfy the schema.
type SchemaError struct {
	Path    string
	Details string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema violation:\n%s", e.Details)
	}
	return fmt.Sprintf("%s: schema violation:\n%s", e.Path, e.Details)
}

// runSchema compiles the embedded schema and returns its #Run definition.
func runSchema(ctx *cue.Context) (cue.Value, error) {
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compile schema: %w", err)
	}
	return schema.LookupPath(cue.ParsePath("#Run")), nil
}

// Validate checks f against the embedded CUE schema.
func Validate(f *File) error {
	ctx := cuecontext.New()
	run, err := runSchema(ctx)
	if err != nil {
		return err
	}

	data := ctx.Encode(f)
	if err := data.Err(); err != nil {
		return fmt.Errorf("encode run file: %w", err)
	}

	if err := run.Unify(data).Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{Details: cueerrors.Details(err, nil)}
	}
	return nil
}

// validateDocument checks the run-file YAML itself against the schema.
// Decoding into File turns an absent number into 0, so required fields are
// only enforced here.
func validateDocument(filename string, data []byte) error {
	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	ctx := cuecontext.New()
	run, err := runSchema(ctx)
	if err != nil {
		return err
	}

	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := run.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{Details: cueerrors.Details(err, nil)}
	}
	return nil
}
