package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"asm10/internal/asm"
	"asm10/internal/cli"
	"asm10/internal/log"
)

// Assembler is the command that translates LCASM10 source into the object, entries, and externs
// artifacts.
//
//	asm10 assemble FILE...
func Assembler() cli.Command {
	return new(assembler)
}

type assembler struct {
	debug bool
}

func (assembler) Description() string {
	return "assemble LCASM10 source files into object code"
}

func (assembler) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `assemble FILE...

Assemble one or more source files, each given without its ".as" extension.
For each FILE, reads FILE.as and, if it assembles cleanly, writes FILE.ob and,
when applicable, FILE.ent and FILE.ext.`)

	return err
}

func (a *assembler) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("assemble", flag.ExitOnError)
	fs.BoolVar(&a.debug, "debug", false, "enable debug logging")

	return fs
}

// Run assembles each named file in order, per spec.md §6's external interface: it exits 0 if at
// least one file name was given, even when individual files have errors, and 1 only when none was.
func (a *assembler) Run(_ context.Context, args []string, stdout io.Writer, logger *log.Logger) int {
	if a.debug {
		log.LogLevel.Set(log.Debug)
	}

	if len(args) == 0 {
		fmt.Fprintln(stdout, "[Info] no file names were observed.")
		return 1
	}

	for _, base := range args {
		a.assembleFile(stdout, logger, base)
		fmt.Fprintln(stdout)
	}

	return 0
}

func (a *assembler) assembleFile(stdout io.Writer, logger *log.Logger, base string) {
	path := base + ".as"

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stdout, "[Info] Can't open the file %q.\n", path)
		return
	}
	defer f.Close()

	fmt.Fprintf(stdout, "[Info] Successfully opened the file %q.\n", path)

	res, report := asm.Translate(f)

	logger.Debug("translated source",
		"file", path,
		"ic", res.FinalIC,
		"dc", res.FinalDC,
		"errors", report.ErrorCount(),
	)

	if report.ErrorCount() == 0 {
		if err := writeArtifacts(base, res); err != nil {
			logger.Error("write failed", "out", base, "err", err)
			fmt.Fprintf(stdout, "[Error] Could not write output for %q: %s\n", base, err)

			return
		}

		fmt.Fprintf(stdout, "[Info] Created output files for the file %q.\n", path)

		return
	}

	report.WriteTo(stdout)

	plural := "s were"
	if report.ErrorCount() == 1 {
		plural = " was"
	}

	fmt.Fprintf(stdout, "[Info] A total of %d error%s found throughout %q.\n", report.ErrorCount(), plural, path)
}

func writeArtifacts(base string, res *asm.Result) error {
	if err := writeFile(base+".ob", func(w io.Writer) error { return asm.WriteObject(w, res) }); err != nil {
		return err
	}

	if len(res.Entries) > 0 {
		if err := writeFile(base+".ent", func(w io.Writer) error { return asm.WriteEntries(w, res.Entries) }); err != nil {
			return err
		}
	}

	if len(res.Externs) > 0 {
		if err := writeFile(base+".ext", func(w io.Writer) error { return asm.WriteExterns(w, res.Externs) }); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(name string, fn func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(f)
}
