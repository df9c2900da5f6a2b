package generator

import (
	"fmt"
	"io"

	"github.com/openmrn/cdi-gen/internal/templates"
)

// executeTemplate loads an embedded template and executes it into w.
func executeTemplate(w io.Writer, tmplName string, data interface{}) error {
	t, err := templates.Parse(tmplName, nil)
	if err != nil {
		return err
	}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmplName, err)
	}
	return nil
}
