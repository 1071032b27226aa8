// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program hjson converts documents between Hjson and JSON.
//
// With no input path the document is read from stdin; with no -o path the
// result is written to stdout. The extension of each path selects its
// syntax, as documented by ast.ParseFile and ast.WriteFile.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/hjson/ast"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Output options
	toJSON := flag.Bool("json", false, "Emit strict JSON instead of Hjson")
	outPath := flag.String("o", "", "Write output to this path (default stdout)")

	// Layout options
	indent := flag.String("indent", "  ", "Indentation unit")
	inline := flag.Bool("inline", false, "Render containers on a single line")
	quoteAlways := flag.Bool("quote-always", false, "Quote all strings and keys")
	multiline := flag.Bool("multiline", false, "Render strings spanning lines as ''' blocks")
	comments := flag.Bool("comments", false, "Preserve comments from the input")
	rootBraces := flag.Bool("root-braces", false, "Surround a root object with braces")
	hex := flag.Bool("hex", false, "Render integers in hexadecimal")

	// Logging options
	logLevel := flag.String("log-level", "warn", "Log level (trace, debug, info, warn, error, fatal)")
	prettyLogs := flag.Bool("pretty", false, "Enable pretty logging output")

	flag.Parse()
	setupLogging(*logLevel, *prettyLogs)

	if flag.NArg() > 1 {
		log.Fatal().Msg("At most one input path is allowed")
	}

	popts := ast.ParseOptions{KeepComments: *comments}
	wopts := &ast.WriterOptions{
		Indent:           *indent,
		Inline:           *inline,
		QuoteAlways:      *quoteAlways,
		MultilineStrings: *multiline,
		Comments:         *comments,
		EmitRootBraces:   *rootBraces,
		HexIntegers:      *hex,
	}

	var v ast.Value
	var err error
	if flag.NArg() == 1 {
		path := flag.Arg(0)
		v, err = popts.ParseFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Parsing input failed")
		}
		log.Debug().Str("path", path).Msg("Parsed input file")
	} else {
		data, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			log.Fatal().Err(rerr).Msg("Reading stdin failed")
		}
		v, err = popts.ParseBytes(data)
		if err != nil {
			log.Fatal().Err(err).Msg("Parsing stdin failed")
		}
		log.Debug().Int("bytes", len(data)).Msg("Parsed stdin")
	}

	if *outPath != "" {
		if *toJSON {
			log.Warn().Msg("The -json flag is ignored with -o; the output extension decides")
		}
		if err := ast.WriteFile(*outPath, v, wopts); err != nil {
			log.Fatal().Err(err).Str("path", *outPath).Msg("Writing output failed")
		}
		return
	}

	var text string
	if *toJSON {
		text, err = ast.ToJSON(v)
	} else {
		text, err = ast.Format(v, wopts)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Rendering output failed")
	}
	fmt.Println(text)
}

func setupLogging(level string, pretty bool) {
	var logLevel zerolog.Level
	switch level {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	case "fatal":
		logLevel = zerolog.FatalLevel
	default:
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
