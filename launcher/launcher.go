package launcher

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ZenLiuCN/dino"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Launcher loads a module along its search chain and runs its entrypoint.
type Launcher struct {
	Options
	Stdout io.Writer
	Stderr io.Writer
	ExeDir string // directory of the launcher executable, last of the search chain
}

// New create a Launcher with the build-time defaults writing to the process streams.
func New() *Launcher {
	return &Launcher{Options: Defaults(), Stdout: os.Stdout, Stderr: os.Stderr, ExeDir: exeDir(os.Executable, os.Args[0])}
}

// exeDir falls back to the directory of argv0 when the executable path is unknown.
func exeDir(executable func() (string, error), argv0 string) string {
	exe, err := executable()
	if err != nil {
		return filepath.Dir(argv0)
	}
	return filepath.Dir(exe)
}

// Usage line of prog.
func Usage(prog string) string {
	return "Usage: " + filepath.Base(prog) + " [-option=value...] <module> [args...]\n"
}

// Run the launcher command line argv, prog is the launcher's own name. The result is the process exit code.
func (l *Launcher) Run(prog string, argv []string) int {
	opts, launchee := Parse(argv, l.Options)
	con := NewConsole(l.Stdout, l.Stderr, opts.Silent)
	if launchee.Module == "" {
		con.Printf("%s", Usage(prog))
		return 0
	}
	if opts.Verbose {
		log := newLogger(con.Err())
		defer log.Sync()
		prev := dino.Logger()
		dino.SetLogger(log)
		defer dino.SetLogger(prev)
	}
	return l.launch(opts, launchee, con)
}

func (l *Launcher) launch(opts Options, launchee Launchee, con *Console) int {
	b := backendFor(launchee.Module)
	dirs := []string{opts.Dir, ".", l.ExeDir}
	t, err := b.Load(launchee.Module, dirs)
	if err != nil {
		dino.Logger().Debug("load failed", zap.String("module", launchee.Module), zap.Error(err))
		con.Errorf("Error: module [%s] not found in ", b.FileName(launchee.Module))
		if opts.Dir != "" {
			con.Errorf("[%s], ", opts.Dir)
		}
		con.Errorf("working directory or [%s]\n", l.ExeDir)
		return ErrorCode
	}
	defer dino.SetOnError(dino.SetOnError(func(msg string) {
		con.Errorf("%s\n", msg)
	}))
	// native release failures reach the console through the callback above
	defer func() {
		if err := t.Close(); err != nil {
			dino.Logger().Debug("close failed", zap.String("path", t.Path()), zap.Error(err))
		}
	}()
	run, err := t.Entrypoint(opts.Entrypoint)
	if err != nil {
		dino.Logger().Debug("entrypoint failed", zap.String("entrypoint", opts.Entrypoint), zap.Error(err))
		con.Errorf("Error: entrypoint [%s] not found in module [%s]\n", opts.Entrypoint, t.Path())
		return ErrorCode
	}
	args := dino.NewArgs(t.Path(), launchee.Args[1:]...)
	con.Printf("Launching [int %s()] from [%s]\n\n", opts.Entrypoint, t.Path())
	start := time.Now()
	code, err := run.Call(args)
	if err != nil {
		con.Errorf("\nError: Unhandled exception in [%s]:\n\t%v\n", t.Path(), err)
		return ErrorCode
	}
	con.Printf("\nFinished running [%s] in %s\n", t.FileName(), Prettify(time.Since(start)))
	return code
}

func newLogger(w io.Writer) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}
