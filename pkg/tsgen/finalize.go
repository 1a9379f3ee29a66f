package tsgen

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-models2ts/pkg/model"
)

// Markers the compiler's output convention guarantees: the wrapper interface
// is emitted as a single flat block with no nested brace on its own line. If
// json2ts ever changes that shape, these errors fire rather than text surgery
// silently corrupting the output.
var (
	// ErrWrapperStartNotFound means the wrapper's opening declaration line
	// is missing from the compiler output.
	ErrWrapperStartNotFound = errors.New("tsgen: could not find the start of the " + model.WrapperName + " interface")
	// ErrWrapperEndNotFound means no lone closing brace followed the
	// wrapper's opening declaration.
	ErrWrapperEndNotFound = errors.New("tsgen: could not find the end of the " + model.WrapperName + " interface")
)

var bannerLines = []string{
	"/* tslint:disable */",
	"/* eslint-disable */",
	"/**",
	"/* This file was automatically generated from model definitions by running models2ts.",
	"/* Do not modify it by hand - just update the models and then re-run the generator.",
	"*/",
	"",
}

// Finalize rewrites the compiler's output file in place: the synthetic
// wrapper interface block is excised by exact line matching and the fixed
// regeneration banner is prepended.
func Finalize(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tsgen: read compiler output: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	open := "export interface " + model.WrapperName + " {"

	start, end := -1, -1
	for i, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		if trimmed == open {
			start = i
		} else if start >= 0 && trimmed == "}" {
			end = i
			break
		}
	}
	if start < 0 {
		return ErrWrapperStartNotFound
	}
	if end < 0 {
		return ErrWrapperEndNotFound
	}

	out := make([]string, 0, len(bannerLines)+len(lines))
	out = append(out, bannerLines...)
	out = append(out, lines[:start]...)
	out = append(out, lines[end+1:]...)

	if err := os.WriteFile(path, []byte(strings.Join(out, "\n")), 0o644); err != nil {
		return fmt.Errorf("tsgen: write finalized output: %w", err)
	}
	return nil
}
