package cli

import (
	"log/slog"

	"github.com/macropower/fivesquare/pkg/numfile"
	"github.com/macropower/fivesquare/pkg/square"
	"github.com/macropower/fivesquare/pkg/tracing"
)

// Run reads a number from the input file, squares it, and writes the result
// to the output file. The first error is returned unmodified and nothing is
// written after it.
func Run(logger *slog.Logger, cfg Config) error {
	tracer := tracing.NewLoggingTracer(logger)

	span := tracer.StartSpan("read")
	span.SetBaggageItem("file", cfg.InputFile)

	number, err := numfile.Read(cfg.InputFile)
	span.SetError(err)
	span.Finish()

	if err != nil {
		return err
	}

	logger.Debug("read number", "number", number)

	span = tracer.StartSpan("compute")
	span.SetBaggageItem("number", number)

	result, err := square.Compute(number)
	span.SetError(err)
	span.Finish()

	if err != nil {
		return err
	}

	span = tracer.StartSpan("write")
	span.SetBaggageItem("file", cfg.OutputFile)

	err = numfile.Write(cfg.OutputFile, result)
	span.SetError(err)
	span.Finish()

	if err != nil {
		return err
	}

	logger.Debug("wrote result", "result", result, "file", cfg.OutputFile)

	return nil
}
