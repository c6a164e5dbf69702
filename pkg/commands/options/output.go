package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/store"
	"tableflip.dev/groupdo/pkg/todo"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// errorCode buckets err for scripts reading --json output.
func errorCode(err error) string {
	switch {
	case errors.Is(err, todo.ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, todo.ErrUrgencyOutOfRange):
		return "urgency_out_of_range"
	case errors.Is(err, store.ErrPersistenceWrite):
		return "write_failed"
	}
	return "error"
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
			"code":  errorCode(err),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
