package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"

	"passmeter/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var errCrackTimeArgs = errors.New("crack-time takes exactly one argument")

func check(cCtx *cli.Context) error {
	passwords := cCtx.Args().Slice()

	if len(passwords) == 0 {
		var err error

		if passwords, err = readLines(cCtx.App.Reader); err != nil {
			return fmt.Errorf("readLines: %w", err)
		}
	}

	b := newBackend(cCtx)

	for _, password := range passwords {
		report, err := b.Evaluate(cCtx.Context, password)
		if err != nil {
			return fmt.Errorf("backend.Evaluate: %w", err)
		}

		if err = output(cCtx, report, printReport); err != nil {
			return err
		}
	}

	return nil
}

func crackTime(cCtx *cli.Context) error {
	if cCtx.NArg() != 1 {
		return errCrackTimeArgs
	}

	bits, err := strconv.ParseFloat(cCtx.Args().First(), 64)
	if err != nil {
		return fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	response, err := newBackend(cCtx).CrackTime(cCtx.Context, bits)
	if err != nil {
		return fmt.Errorf("backend.CrackTime: %w", err)
	}

	return output(cCtx, response, func(w io.Writer, r rest.CrackTimeResponse) {
		fmt.Fprintln(w, r.CrackTime)
	})
}

func suggestCommand(cCtx *cli.Context) error {
	suggestions, err := newBackend(cCtx).Suggest(cCtx.Context, cCtx.Args().First(), cCtx.Int(CountFlag))
	if err != nil {
		return fmt.Errorf("backend.Suggest: %w", err)
	}

	return output(cCtx, rest.SuggestionsResponse{Suggestions: suggestions}, func(w io.Writer, r rest.SuggestionsResponse) {
		for _, s := range r.Suggestions {
			fmt.Fprintln(w, s)
		}
	})
}

func generate(cCtx *cli.Context) error {
	password, err := newBackend(cCtx).Generate(cCtx.Context)
	if err != nil {
		return fmt.Errorf("backend.Generate: %w", err)
	}

	return output(cCtx, rest.GenerateResponse{Password: password}, func(w io.Writer, r rest.GenerateResponse) {
		fmt.Fprintln(w, r.Password)
	})
}

// output writes v as one JSON line with --json, otherwise through render.
func output[T any](cCtx *cli.Context, v T, render func(io.Writer, T)) error {
	w := cCtx.App.Writer

	if cCtx.Bool(JSONFlag) {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("json.Encode: %w", err)
		}

		return nil
	}

	render(w, v)

	return nil
}

func printReport(w io.Writer, r rest.EvaluateResponse) {
	fmt.Fprintf(w, "score:       %d/100 (%s, %s)\n", r.Score, r.Strength, r.MeterColor)
	fmt.Fprintf(w, "crack time:  %s (%d bits)\n", r.CrackTime, r.EntropyBits)
	fmt.Fprintf(w, "criteria:    length=%s lower=%s upper=%s number=%s symbol=%s unique=%s\n",
		r.Criteria.Length, r.Criteria.Lower, r.Criteria.Upper,
		r.Criteria.Number, r.Criteria.Symbol, r.Criteria.Unique)

	if r.IsCommon {
		fmt.Fprintln(w, "warning:     contains a common password")
	}

	if r.Reference != nil {
		fmt.Fprintf(w, "zxcvbn:      %d/4, %s\n", r.Reference.Score, r.Reference.CrackTime)
	}

	if len(r.Suggestions) > 0 {
		fmt.Fprintf(w, "suggestions: %s\n", strings.Join(r.Suggestions, " "))
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err: %w", err)
	}

	return lines, nil
}
