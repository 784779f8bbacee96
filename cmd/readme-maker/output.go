package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/ruminaider/readme-maker/internal/commands"
	"github.com/ruminaider/readme-maker/internal/profile"
)

// reportProblems prints advisory validation warnings for rec.
func reportProblems(log zerolog.Logger, rec profile.Record) {
	for _, p := range profile.Validate(rec) {
		log.Debug().Str("problem", p).Msg("profile validation")
		printWarn("Warning: %s", p)
	}
}

// writeOutput generates the session's README. With toStdout the markdown
// is written to w and no files are created; otherwise README.md and the QR
// image go to dir.
func writeOutput(log zerolog.Logger, s *commands.Session, dir string, toStdout bool, w io.Writer) error {
	doc, err := commands.Generate(s)
	if err != nil {
		return err
	}
	if toStdout {
		_, err := fmt.Fprint(w, doc.Markdown)
		return err
	}

	written, err := commands.WriteDocument(dir, doc)
	for _, path := range written {
		printSuccess(w, "Wrote %s", path)
	}
	if err != nil {
		return err
	}
	log.Info().Str("template", s.Template.String()).Strs("files", written).Msg("readme generated")
	if s.IncludeQR && doc.QR == nil {
		printWarn("No QR code: set a QR URL or a GitHub URL")
	}
	return nil
}
