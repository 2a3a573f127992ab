package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/onedsix/internal/dice"
	"github.com/KirkDiggler/onedsix/internal/errors"
	"github.com/KirkDiggler/onedsix/internal/uuid"
)

// FaceType names the integer type dice expressions are rolled with
type FaceType string

const (
	FaceUint8  FaceType = "uint8"
	FaceUint16 FaceType = "uint16"
	FaceUint32 FaceType = "uint32"
	FaceUint64 FaceType = "uint64"
	FaceUint   FaceType = "uint"
	FaceInt8   FaceType = "int8"
	FaceInt16  FaceType = "int16"
	FaceInt32  FaceType = "int32"
	FaceInt64  FaceType = "int64"
	FaceInt    FaceType = "int"
)

// FaceTypes lists every supported face type
var FaceTypes = []FaceType{
	FaceUint8, FaceUint16, FaceUint32, FaceUint64, FaceUint,
	FaceInt8, FaceInt16, FaceInt32, FaceInt64, FaceInt,
}

// RunnerConfig holds the dependencies of a Runner. Zero values get sensible defaults.
type RunnerConfig struct {
	FaceType FaceType
	Complex  bool   // print every die instead of the total
	Seed     uint64 // 0 rolls against dice.DefaultSource
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *zerolog.Logger
	IDs      uuid.Generator
}

// Runner rolls dice expressions given on the command line
type Runner struct {
	faceType FaceType
	perDie   bool
	stdout   io.Writer
	stderr   io.Writer
	logger   zerolog.Logger
	ids      uuid.Generator
	source   dice.Source
}

// NewRunner creates a runner, rejecting unknown face types
func NewRunner(cfg *RunnerConfig) (*Runner, error) {
	if cfg == nil {
		cfg = &RunnerConfig{}
	}

	faceType := cfg.FaceType
	if faceType == "" {
		faceType = FaceUint32
	}
	if !slices.Contains(FaceTypes, faceType) {
		return nil, errors.InvalidArgumentf("unsupported face type %q, want one of %s", faceType, supportedList()).
			WithMeta("face_type", string(faceType))
	}

	r := &Runner{
		faceType: faceType,
		perDie:   cfg.Complex,
		stdout:   cfg.Stdout,
		stderr:   cfg.Stderr,
		logger:   zerolog.Nop(),
		ids:      cfg.IDs,
		source:   dice.DefaultSource(),
	}
	if cfg.Logger != nil {
		r.logger = *cfg.Logger
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	if r.ids == nil {
		r.ids = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.Seed != 0 {
		r.source = dice.NewSource(cfg.Seed)
	}

	return r, nil
}

// Run rolls every expression in order. Results go to stdout as "<input>: <result>"
// and failures to stderr as "<input>: <error>"; a failure does not stop the
// remaining expressions. The returned error reports how many failed.
func (r *Runner) Run(notations []string) error {
	failed := 0
	for _, notation := range notations {
		rollID := r.ids.New()
		logger := r.logger.With().Str("roll_id", rollID).Str("notation", notation).Logger()

		rendered, err := r.Render(notation, dice.WithLogger(logger))
		if err != nil {
			failed++
			logger.Info().Err(err).Str("code", string(errors.GetCode(err))).Msg("Dice expression rejected")
			fmt.Fprintf(r.stderr, "%s: %v\n", notation, err)
			continue
		}

		logger.Info().Str("result", rendered).Msg("Rolled dice expression")
		fmt.Fprintf(r.stdout, "%s: %s\n", notation, rendered)
	}

	if failed > 0 {
		return errors.Newf(errors.CodeInvalidArgument, "%d of %d dice expressions failed", failed, len(notations)).
			WithMeta("failed", failed)
	}
	return nil
}

// Render parses and rolls one expression with the runner's face type
func (r *Runner) Render(notation string, opts ...dice.Option) (string, error) {
	opts = append([]dice.Option{dice.WithSource(r.source)}, opts...)

	switch r.faceType {
	case FaceUint8:
		return render[uint8](notation, r.perDie, opts)
	case FaceUint16:
		return render[uint16](notation, r.perDie, opts)
	case FaceUint32:
		return render[uint32](notation, r.perDie, opts)
	case FaceUint64:
		return render[uint64](notation, r.perDie, opts)
	case FaceUint:
		return render[uint](notation, r.perDie, opts)
	case FaceInt8:
		return render[int8](notation, r.perDie, opts)
	case FaceInt16:
		return render[int16](notation, r.perDie, opts)
	case FaceInt32:
		return render[int32](notation, r.perDie, opts)
	case FaceInt64:
		return render[int64](notation, r.perDie, opts)
	case FaceInt:
		return render[int](notation, r.perDie, opts)
	default:
		return "", errors.InvalidArgumentf("unsupported face type %q", r.faceType)
	}
}

func render[F dice.Face](notation string, perDie bool, opts []dice.Option) (string, error) {
	pool, err := dice.Parse[F](notation, opts...)
	if err != nil {
		return "", err
	}
	if perDie {
		return pool.Verbose(), nil
	}
	return pool.String(), nil
}

func supportedList() string {
	names := make([]string, len(FaceTypes))
	for i, faceType := range FaceTypes {
		names[i] = string(faceType)
	}
	return strings.Join(names, ", ")
}
