package rubygoals

import (
	"fmt"

	"github.com/paketo-buildpacks/packit/v2/pexec"
)

type ExecContext struct {
	Config Config
}

type ExecFunc func(ExecContext) error

// Exec runs the gem command with the configured arguments.
//
// Deprecated: run gem through the install goal's bin stubs instead.
func Exec(gem Executable, logger LogEmitter) ExecFunc {
	return func(context ExecContext) error {
		config := context.Config

		logger.Title("Gem")
		logger.Warning("DEPRECATED: the gem goal will be removed. Use the generated bin stubs instead.")
		logger.Break()

		args, err := ParseArgs(config.Gem.Args, config.Args)
		if err != nil {
			return err
		}

		logger.Invocation("gem", args)

		err = gem.Execute(pexec.Execution{
			Args:   args,
			Dir:    config.LaunchDirectory(),
			Stdout: logger.ActionWriter,
			Stderr: logger.ActionWriter,
		})
		if err != nil {
			return fmt.Errorf("failed to execute gem: %w", err)
		}

		return nil
	}
}
