package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/theyuvrajyadav/currency-converter/internal/apperrors"
	"github.com/theyuvrajyadav/currency-converter/internal/format"
	"github.com/theyuvrajyadav/currency-converter/internal/parser"
	"github.com/theyuvrajyadav/currency-converter/internal/service"
)

const prompt = "Enter amount and currency (e.g., '100 USD to EUR'): "

// App is the command-line front end of the converter.
type App struct {
	converter service.Converter
	logger    *zap.Logger
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
}

func New(converter service.Converter, logger *zap.Logger, in io.Reader, out, errOut io.Writer) *App {
	return &App{
		converter: converter,
		logger:    logger,
		in:        in,
		out:       out,
		errOut:    errOut,
	}
}

// Run performs one conversion and returns the process exit code. Arguments
// are joined into a single query; with no arguments the app prompts, reads
// one line, and exits after that single round.
func (a *App) Run(ctx context.Context, args []string) int {
	var query string
	if len(args) > 0 {
		query = strings.Join(args, " ")
	} else {
		fmt.Fprint(a.out, prompt)
		line, err := bufio.NewReader(a.in).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(a.errOut, "Error: no input")
			return apperrors.ExitFailure
		}
		query = strings.TrimSpace(line)
	}

	req, err := parser.Parse(query)
	if err != nil {
		a.logger.Debug("Query rejected", zap.String("query", query), zap.Error(err))
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}

	res, err := a.converter.Convert(ctx, req)
	if err != nil {
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}

	fmt.Fprintln(a.out, format.Result(res))
	fmt.Fprintln(a.out, format.Pretty(res))
	return apperrors.ExitOK
}
