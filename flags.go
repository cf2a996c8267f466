package png2svg

import (
	"github.com/flanksource/commons/logger"
	"github.com/spf13/pflag"
)

// ConvertFlags holds the conversion options shared by the convert and
// batch commands
type ConvertFlags struct {
	Method    string
	Options   string
	Overwrite bool
	Recursive bool
}

type AllFlags struct {
	ConvertFlags
	logger.Flags
}

var Flags = AllFlags{
	ConvertFlags: ConvertFlags{
		Method: "autotrace",
	},
	Flags: logger.Flags{
		Level:        "info",
		LevelCount:   0,
		JsonLogs:     false,
		ReportCaller: false,
		LogToStderr:  true,
	},
}

// BindGlobalFlags adds logging flags to a pflag set (for Cobra persistent flags)
func BindGlobalFlags(flags *pflag.FlagSet) {
	flags.CountVarP(&Flags.Flags.LevelCount, "verbose", "v", "Increase logging level")
	flags.StringVar(&Flags.Flags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&Flags.Flags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")
}

// BindConvertFlags adds conversion flags to a pflag set
func BindConvertFlags(flags *pflag.FlagSet, c *ConvertFlags) {
	flags.StringVar(&c.Method, "method", c.Method,
		"Conversion method: autotrace, potrace, embed, aspose, convertapi")
	flags.StringVar(&c.Options, "options", c.Options,
		"Custom options to pass to the converter (e.g. '--filter-iterations 4')")
	flags.BoolVar(&c.Overwrite, "overwrite", c.Overwrite,
		"Overwrite output file if it exists")
}

func (a AllFlags) UseFlags() {
	logger.Configure(a.Flags)
}
