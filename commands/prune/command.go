package pruneCmd

import (
	// Stdlib
	"errors"
	"os"

	// Internal
	"github.com/kwokoek/git-cleaner/app"
	"github.com/kwokoek/git-cleaner/config"
	"github.com/kwokoek/git-cleaner/errs"
	"github.com/kwokoek/git-cleaner/fileutil"
	"github.com/kwokoek/git-cleaner/git"
	"github.com/kwokoek/git-cleaner/log"
	"github.com/kwokoek/git-cleaner/prompt"
	"github.com/kwokoek/git-cleaner/prune"
	"github.com/kwokoek/git-cleaner/shell"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: `
  git-cleaner [-config=FILE] [-log=LEVEL] [-exclude=REGEXP ...] [-skip_malformed] PATH`,
	Short: "interactively delete stale remote branches",
	Long: `
  Go through the remote branches of the repository located in PATH,
  the least recently committed to first, and ask what to do with each one.

  Answer 'yes' (or 'y') to delete the branch, 'exit' (or 'x') to stop,
  anything else skips the branch. Deleting a branch must be confirmed
  once more, then the branch is deleted in the remote using

    git push --porcelain <remote> :<branch>

  and the local branch of the same name is deleted using git branch -D.
  Failing to delete the local branch is not treated as an error.

  Branches matching any -exclude pattern or any pattern listed under
  'exclude' in the configuration files are never offered.
	`,
	Action: run,
}

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

func run(cmd *gocli.Command, args []string) {
	if status := execute(args, cmd.Usage); status != exitOk {
		os.Exit(status)
	}
}

// execute runs the command and returns the exit status.
func execute(args []string, usage func()) int {
	if len(args) != 1 {
		usage()
		return exitUsage
	}
	dir := args[0]

	// Make sure there is something to work with before touching anything.
	if err := fileutil.EnsureDirectory(dir); err != nil {
		errs.Log(err)
		return exitError
	}

	cfg, err := app.Init(dir)
	if err != nil {
		errs.Log(err)
		return exitError
	}

	return exitStatus(runMain(dir, cfg))
}

// exitStatus reports the outcome of the session.
// Exiting on request is not an error.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return exitOk
	case errors.Is(err, prune.ErrUserExit):
		log.Println("\nExiting as requested. You are welcome to come back any time!")
		return exitOk
	default:
		errs.Log(err)
		return exitError
	}
}

func runMain(dir string, cfg *config.Config) error {
	exclude, err := cfg.ExcludePatterns()
	if err != nil {
		return errs.NewError("Compile the exclude patterns", err)
	}

	console := prompt.Stdio()
	out := console.Writer()

	session := &prune.Session{
		Lister: &git.Lister{Exclude: exclude},
		Reviewer: &prune.Reviewer{
			Prompter: console,
			Deleter: &prune.Confirmer{
				Prompter: console,
				Executor: &shell.Runner{StrictStderr: cfg.StrictStderrEnabled()},
				Out:      out,
			},
			Out: out,
			Options: prune.Options{
				SkipMalformed: cfg.SkipMalformedRecords(),
				MaxInfoWidth:  cfg.InfoWidth(),
			},
		},
		Out: out,
	}

	_, err = session.Run(dir)
	return err
}
