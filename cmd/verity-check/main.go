// Command verity-check sends news text to a running verity server and prints
// the prediction as JSON.
//
//	verity-check "Scientists discover new planet similar to Earth"
//	echo "Breaking: secret alien invasion" | verity-check -pretty -out checks.jsonl
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/crimson-sun/verity/internal/client"
	"github.com/crimson-sun/verity/internal/model"
	"github.com/crimson-sun/verity/internal/output"
	"github.com/crimson-sun/verity/internal/output/file"
	"github.com/crimson-sun/verity/internal/output/multi"
	"github.com/crimson-sun/verity/internal/output/stdout"
)

const blankInputMessage = "Please enter some news text to analyze."

var errBlankInput = errors.New(blankInputMessage)

func main() {
	addr := flag.String("addr", envOr("VERITY_API_URL", "http://127.0.0.1:5000"), "verity server base URL")
	pretty := flag.Bool("pretty", false, "pretty-print JSON output")
	verbosity := flag.String("verbosity", "full", "output verbosity: minimal or full")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	outPath := flag.String("out", "", "also append the prediction as NDJSON to this file")
	flag.Parse()

	text, err := readText(flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.New(*addr, client.WithTimeout(*timeout))
	pred, err := c.Predict(ctx, text)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "verity-check: server returned %d: %s\n", apiErr.StatusCode, apiErr.Message())
		} else {
			fmt.Fprintf(os.Stderr, "verity-check: %v\n", err)
		}
		os.Exit(1)
	}

	if err := writePrediction(ctx, pred, output.ParseVerbosity(*verbosity), *pretty, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "verity-check: %v\n", err)
		os.Exit(1)
	}
}

func writePrediction(ctx context.Context, pred model.Prediction, verbosity output.Verbosity, pretty bool, outPath string) error {
	outputs := []output.Output{stdout.New(verbosity, pretty)}
	if outPath != "" {
		f, err := file.New(outPath, verbosity)
		if err != nil {
			return err
		}
		outputs = append(outputs, f)
	}

	out := multi.New(outputs...)
	if err := out.Write(ctx, pred); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// readText joins args with spaces, or reads all of stdin when there are no
// args. Whitespace-only input is rejected.
func readText(args []string, stdin io.Reader) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return "", errBlankInput
	}
	return text, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
