package ports

import "github.com/bullseye-labs/boardlink/pkg/log"

// Logger is the structured logging port. It aliases pkg/log so adapters and
// the application layer share one field vocabulary.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors re-exported for call sites inside internal packages.
var (
	String   = log.String
	Int      = log.Int
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
