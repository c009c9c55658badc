package ports

import (
	"io"

	"pkgforecaster/internal/types"
)

type ReportWriterPort interface {
	Write(w io.Writer, sim types.Simulation, format types.OutputFormat) error
	WriteFile(path string, sim types.Simulation, format types.OutputFormat) error
}

type ReportReaderPort interface {
	ReadReport(path string) (types.Simulation, error)
}
