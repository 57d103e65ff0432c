package parser

import (
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

// Observer receives checkpoint events emitted while a file is parsed. It
// replaces direct writes to an output stream so callers can capture, redirect
// or silence parse diagnostics. Implementations must not retain the pointers
// beyond the call.
type Observer interface {
	// SectionFound is invoked for every entry of the section table, in file
	// order, including sections of unrecognized type.
	SectionFound(s SectionInfo)
	// HeaderParsed is invoked once after the header section is decoded.
	HeaderParsed(h *Header)
	// ConstraintParsed is invoked after each constraint record is decoded.
	ConstraintParsed(index int, c *Constraint)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) SectionFound(SectionInfo)          {}
func (NopObserver) HeaderParsed(*Header)              {}
func (NopObserver) ConstraintParsed(int, *Constraint) {}

// logObserver is the default observer. It reports progress through the gnark
// zerolog logger: sections and the header at debug level, the per-constraint
// firehose at trace level.
type logObserver struct {
	log zerolog.Logger
}

func newLogObserver() *logObserver {
	return &logObserver{log: logger.Logger()}
}

func (o *logObserver) SectionFound(s SectionInfo) {
	o.log.Debug().
		Uint32("type", s.Type).
		Int64("offset", s.Offset).
		Uint64("size", s.Size).
		Msg("r1cs section found")
}

func (o *logObserver) HeaderParsed(h *Header) {
	o.log.Debug().
		Uint32("fieldSize", h.FieldSize).
		Uint32("nWires", h.NWires).
		Uint32("nPubOut", h.NPubOut).
		Uint32("nPubIn", h.NPubIn).
		Uint32("nPrvtIn", h.NPrvtIn).
		Uint32("nConstraints", h.NConstraints).
		Msg("r1cs header parsed")
}

func (o *logObserver) ConstraintParsed(index int, c *Constraint) {
	o.log.Trace().
		Int("index", index).
		Int("aTerms", len(c.A)).
		Int("bTerms", len(c.B)).
		Int("cTerms", len(c.C)).
		Msg("r1cs constraint parsed")
}
