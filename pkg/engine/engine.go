package engine

import (
	"io"
	"log/slog"
	"math/bits"
	"os"
	"runtime"

	"github.com/gambitchess/gambit/pkg/uci"
)

const (
	Name    = "Gambit"
	Author  = "the Gambit authors"
	Version = "1.0"
)

// Engine owns the option registry and the state the options drive: the
// transposition table, the worker pool, the evaluation weights, the
// tablebase path and the debug log. Search itself lives elsewhere; this
// is the surface the UCI loop talks to.
type Engine struct {
	options *uci.Options
	log     *slog.Logger
	logFile *os.File

	transTable *transTable
	workers    []worker
	weights    evalWeights
	tbFiles    int
}

// Each worker carries its own copy of the evaluation weights so a
// running search never shares mutable eval state across threads.
type worker struct {
	weights evalWeights
	nodes   int64
}

// NewEngine builds the engine and registers the option catalog. Two
// defaults depend on the environment: Threads follows the number of
// logical CPUs, and the Hash ceiling depends on the pointer width of
// the build. Heavy allocations are deferred to Prepare.
func NewEngine(logger *slog.Logger) *Engine {
	var eng = &Engine{
		options: uci.NewOptions(),
		log:     logger,
	}

	var maxHashMB = 2048
	if bits.UintSize == 64 {
		maxHashMB = 1024 * 1024
	}
	var threads = runtime.NumCPU()
	if threads < 1 {
		threads = 1
	}

	var onEval = func(*uci.Option) { eng.initEval() }

	var o = eng.options
	o.Register(uci.NewStringOption("Debug Log File", "", eng.onLogFile))
	o.Register(uci.NewSpinOption("Contempt", 0, -100, 100, nil))
	o.Register(uci.NewSpinOption("Threads", threads, 1, 512, eng.onThreads))
	o.Register(uci.NewSpinOption("Hash", 16, 1, maxHashMB, eng.onHashSize))
	o.Register(uci.NewButtonOption("Clear Hash", eng.onClearHash))
	o.Register(uci.NewCheckOption("Ponder", false, nil))
	o.Register(uci.NewSpinOption("Material(mg)", 100, 0, 300, onEval))
	o.Register(uci.NewSpinOption("Material(eg)", 100, 0, 300, onEval))
	o.Register(uci.NewSpinOption("Mobility(mg)", 100, 0, 300, onEval))
	o.Register(uci.NewSpinOption("Mobility(eg)", 100, 0, 300, onEval))
	o.Register(uci.NewSpinOption("PawnStructure(mg)", 100, 0, 300, onEval))
	o.Register(uci.NewSpinOption("PawnStructure(eg)", 100, 0, 300, onEval))
	o.Register(uci.NewSpinOption("KingSafety(mg)", 100, 0, 300, onEval))
	o.Register(uci.NewSpinOption("KingSafety(eg)", 100, 0, 300, onEval))
	o.Register(uci.NewSpinOption("MultiPV", 1, 1, 500, nil))
	o.Register(uci.NewSpinOption("Skill Level", 20, 0, 20, nil))
	o.Register(uci.NewSpinOption("Move Overhead", 30, 0, 5000, nil))
	o.Register(uci.NewSpinOption("Minimum Thinking Time", 20, 0, 5000, nil))
	o.Register(uci.NewSpinOption("Slow Mover", 89, 10, 1000, nil))
	o.Register(uci.NewSpinOption("nodestime", 0, 0, 10000, nil))
	o.Register(uci.NewCheckOption("UCI_Chess960", false, nil))
	o.Register(uci.NewStringOption("SyzygyPath", "<empty>", eng.onTbPath))
	o.Register(uci.NewSpinOption("SyzygyProbeDepth", 1, 1, 100, nil))
	o.Register(uci.NewCheckOption("Syzygy50MoveRule", true, nil))
	o.Register(uci.NewSpinOption("SyzygyProbeLimit", 6, 0, 6, nil))

	eng.initEval()
	return eng
}

func (eng *Engine) Info() (name, author, version string) {
	return Name, Author, Version
}

func (eng *Engine) Options() *uci.Options {
	return eng.options
}

// Prepare reconciles the allocated state with the current option
// values. Called on isready, after the GUI has finished setting options.
func (eng *Engine) Prepare() {
	var hash = eng.options.Find("Hash").Int()
	if eng.transTable == nil {
		eng.transTable = newTransTable(hash)
	} else {
		eng.transTable.Resize(hash)
	}
	eng.resizeWorkers()
}

// Clear resets everything learned during the previous game.
func (eng *Engine) Clear() {
	if eng.transTable != nil {
		eng.transTable.Clear()
	}
	for i := range eng.workers {
		eng.workers[i].nodes = 0
	}
}

// Close releases the debug log file, if one was opened.
func (eng *Engine) Close() {
	if eng.logFile != nil {
		eng.logFile.Close()
		eng.logFile = nil
	}
}

func (eng *Engine) initEval() {
	eng.weights.init(eng.options)
	for i := range eng.workers {
		eng.workers[i].weights = eng.weights
	}
}

func (eng *Engine) resizeWorkers() {
	var threads = eng.options.Find("Threads").Int()
	if len(eng.workers) == threads {
		return
	}
	eng.workers = make([]worker, threads)
	for i := range eng.workers {
		eng.workers[i].weights = eng.weights
	}
}

func (eng *Engine) onHashSize(o *uci.Option) {
	if eng.transTable == nil {
		eng.transTable = newTransTable(o.Int())
		return
	}
	eng.transTable.Resize(o.Int())
}

func (eng *Engine) onClearHash(*uci.Option) {
	eng.Clear()
}

func (eng *Engine) onThreads(*uci.Option) {
	eng.resizeWorkers()
}

func (eng *Engine) onTbPath(o *uci.Option) {
	var files, err = scanTablebases(o.Text())
	if err != nil {
		eng.log.Warn("syzygy scan failed", "error", err)
	}
	eng.tbFiles = files
	eng.log.Info("syzygy tablebases", "files", files)
}

// onLogFile redirects the engine's diagnostic log to the named file;
// an empty value reverts to stderr.
func (eng *Engine) onLogFile(o *uci.Option) {
	if eng.logFile != nil {
		eng.logFile.Close()
		eng.logFile = nil
	}
	var w io.Writer = os.Stderr
	if path := o.Text(); path != "" {
		var f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			eng.log.Warn("cannot open debug log", "path", path, "error", err)
			return
		}
		eng.logFile = f
		w = f
	}
	eng.log = slog.New(slog.NewTextHandler(w, nil))
}
