package config

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// WriteTemplate renders cfg as a configuration file. Paths are written as
// they are held in cfg, so pass Default() for a portable template.
func WriteTemplate(w io.Writer, cfg *Config) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	project := body.AppendNewBlock("project", nil).Body()
	project.SetAttributeValue("entry", cty.StringVal(cfg.Project.Entry))
	project.SetAttributeValue("root", cty.StringVal(cfg.Project.Root))
	project.SetAttributeValue("extension", cty.StringVal(cfg.Project.Extension))
	project.SetAttributeValue("max_include_depth", cty.NumberIntVal(int64(cfg.Project.MaxIncludeDepth)))

	body.AppendNewline()

	logging := body.AppendNewBlock("logging", nil).Body()
	logging.SetAttributeValue("level", cty.StringVal(cfg.Logging.Level))
	logging.SetAttributeValue("format", cty.StringVal(cfg.Logging.Format))

	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("failed to write config template: %w", err)
	}
	return nil
}
