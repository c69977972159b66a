package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/output"
)

// ReportError logs err with its code and details, then writes the styled
// error line to w.
func ReportError(w io.Writer, err error) {
	logger := logging.GetLogger("cli")
	logger.Debug().
		Err(err).
		Str("code", string(errors.GetErrorCode(err))).
		Fields(errors.GetErrorDetails(err)).
		Msg("Command failed")

	fmt.Fprintln(w, output.FormatError(w, err))
}
