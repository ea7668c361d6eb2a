// This file is part of pptsync.
//
// pptsync is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pptsync is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pptsync.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pptsync/pptsync/debugger"
	"github.com/pptsync/pptsync/debugger/debugapi"
	"github.com/pptsync/pptsync/logger"
	"github.com/pptsync/pptsync/modalflag"
	"github.com/pptsync/pptsync/notifications"
	"github.com/pptsync/pptsync/piece"
	"github.com/pptsync/pptsync/prefs"
	"github.com/pptsync/pptsync/random"
	"github.com/pptsync/pptsync/rewind"
	"github.com/pptsync/pptsync/snapshot"
	"github.com/pptsync/pptsync/statsview"
	"github.com/pptsync/pptsync/terminal/monitor"
	"github.com/pptsync/pptsync/terminal/plainterm"
	"github.com/pptsync/pptsync/userinput"
	"github.com/pptsync/pptsync/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. the SYNC mode provides its own handler so that the
	// target is detached cleanly.
	//
	// takes a chan struct{} argument, which is closed once the default
	// handler has been removed. see mainSync.noIntSig()
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

type mainSync struct {
	state chan stateRequest
}

// noIntSig removes the default interrupt handler and returns once it has
// gone. signal.Reset() removes every handler for the signal so an alternative
// handler must not be installed until noIntSig() returns.
func (sync *mainSync) noIntSig() {
	reset := make(chan struct{})
	sync.state <- stateRequest{req: reqNoIntSig, args: reset}
	<-reset
}

// service a stateRequest. returns true if the main thread should end.
func (sync *mainSync) service(state stateRequest, exitVal *int) bool {
	switch state.req {
	case reqQuit:
		if state.args != nil {
			if v, ok := state.args.(int); ok {
				*exitVal = v
			} else {
				panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
			}
		}
		return true

	case reqNoIntSig:
		signal.Reset(os.Interrupt)
		if reset, ok := state.args.(chan struct{}); ok {
			close(reset)
		} else {
			panic(fmt.Sprintf("%s requires a chan struct{} argument", reqNoIntSig))
		}
	}

	return false
}

// how often the plain terminal checks for a new prediction
const printInterval = 100 * time.Millisecond

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			done = sync.service(state, &exitVal)
		}
	}

	os.Exit(exitVal)
}

func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("SYNC", "PREDICT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "SYNC":
		err = syncMode(md, sync)

	case "PREDICT":
		err = predict(md, os.Stdout)

	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func predict(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	n := md.AddInt("n", 14, "number of pieces to predict")
	find := md.AddString("find", "", "list the seeds that begin with this sequence of pieces")
	md.AdditionalHelp("the seed argument is required unless -find is used. it can be in decimal or hexadecimal")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *find != "" {
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("a seed cannot be used with -find")
		}
		seq, err := piece.ParseSequence(*find)
		if err != nil {
			return err
		}
		for _, seed := range findSeeds(seq) {
			fmt.Fprintf(output, "%d\n", seed)
		}
		return nil
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("a seed is required")
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	seed, err := strconv.ParseUint(md.GetArg(0), 0, 16)
	if err != nil {
		return fmt.Errorf("seed must be a 16bit number: %w", err)
	}
	if *n < 0 {
		return fmt.Errorf("number of pieces cannot be negative")
	}

	gen := random.NewGenerator(uint32(seed))
	return plainterm.NewPlainTerminal(output).Predict(gen.Take(*n))
}

// findSeeds returns every seed whose sequence begins with seq, in ascending
// order.
func findSeeds(seq []piece.Piece) []uint16 {
	var seeds []uint16
	for seed := range uint32(math.MaxUint16) + 1 {
		if slices.Equal(random.NewGenerator(seed).Take(len(seq)), seq) {
			seeds = append(seeds, uint16(seed))
		}
	}
	return seeds
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}

func syncMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	process := md.AddString("process", "", "executable name of the target process")
	address := md.AddString("address", "", "address of the instruction to break on every tick")
	lookahead := md.AddInt("lookahead", -1, "number of pieces to predict")
	discriminant := md.AddString("discriminant", "", fmt.Sprintf("history discriminant (%s)", strings.Join(rewind.DiscriminantNames(), ", ")))
	seed := md.AddInt("seed", -1, "replace the seed of the next game")
	mon := md.AddBool("monitor", false, "full screen monitor")
	log := md.AddBool("log", false, "echo log to stdout")
	verbose := md.AddBool("verbose", false, "log every debug event")
	viz := md.AddString("memviz", "", "write a graph of the history to file on exit")
	prefsOverride := md.AddString("prefs", "", "override preferences (key::value; key::value)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *seed > 0xffff {
		return fmt.Errorf("seed must be a 16bit number")
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	pth, err := prefs.DefaultPath()
	if err != nil {
		return err
	}

	v, _, _ := version.Version()
	logger.Logf(logger.Allow, "pptsync", "%s %s", version.ApplicationName, v)

	dbgPrefs, err := debugger.NewPreferences(pth)
	if err != nil {
		return err
	}
	rwPrefs, err := rewind.NewPreferences(pth)
	if err != nil {
		return err
	}
	uiPrefs, err := userinput.NewPreferences(pth)
	if err != nil {
		return err
	}

	if *process != "" {
		if err := dbgPrefs.Process.Set(*process); err != nil {
			return err
		}
	}
	if *address != "" {
		if err := dbgPrefs.Address.Set(*address); err != nil {
			return err
		}
	}
	if *lookahead >= 0 {
		if err := rwPrefs.Lookahead.Set(*lookahead); err != nil {
			return err
		}
	}
	if *discriminant != "" {
		if err := rwPrefs.Discriminant.Set(*discriminant); err != nil {
			return err
		}
	}

	if *log && !*mon {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
		defer logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	queue, err := rwPrefs.NewQueue()
	if err != nil {
		return err
	}
	tracker := rewind.NewTracker(queue)
	notices := notifications.NewQueue()
	requests := userinput.NewRequests()
	restore := make(chan notifications.Restore, 1)

	// closed when the operator quits or when the synchroniser ends
	q := newQuitter()
	quit, stop := q.done(), q.stop

	// ctrl-c stops the synchroniser at the end of the current tick
	sync.noIntSig()
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		select {
		case <-intChan:
			logger.Log(logger.Allow, "pptsync", "interrupted. detaching at end of tick")
			stop()
		case <-quit:
		}
	}()

	engineDone := make(chan struct{})
	go func() {
		tracker.Run(notices.Out(), requests.Undo(), restore)
		close(engineDone)
	}()

	syncErr := make(chan error, 1)
	go func() {
		// debug events are delivered to the thread that attached to the target
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		syncErr <- synchronise(dbgPrefs, *seed, *verbose, notices, restore, quit)
		stop()
	}()

	// hot-keys. the monitor reads the terminal itself so the terminal key
	// reader is only used on windows when the monitor is active
	if !*mon || runtime.GOOS == "windows" {
		ctrl := userinput.NewControls(uiPrefs, requests)
		go func() {
			if err := userinput.Listen(ctrl, quit); err != nil {
				logger.Logf(logger.Allow, "userinput", "%v", err)
			}
			if ctrl.Quit {
				stop()
			}
		}()
	}

	pt := plainterm.NewPlainTerminal(os.Stdout)
	if *mon {
		m := monitor.NewMonitor(tracker, userinput.NewControls(uiPrefs, requests), stop)
		if err := m.Run(quit); err != nil {
			stop()
			logger.Logf(logger.Allow, "monitor", "%v", err)
		}
	} else {
		ticker := time.NewTicker(printInterval)
		defer ticker.Stop()
	loop:
		for {
			select {
			case <-quit:
				break loop
			case <-ticker.C:
				if _, err := pt.Update(tracker.Summary()); err != nil {
					logger.Logf(logger.Allow, "pptsync", "%v", err)
				}
			}
		}
	}

	err = <-syncErr
	notices.Close()
	<-engineDone

	if !*mon {
		_, _ = pt.Update(tracker.Summary())
	}

	if *viz != "" {
		if verr := visualise(tracker, *viz); verr != nil {
			logger.Logf(logger.Allow, "pptsync", "%v", verr)
		}
	}

	return err
}

// synchronise attaches to the target and runs the synchroniser until the stop
// channel is closed or until an error occurs. Must be called from a goroutine
// that is locked to its OS thread.
func synchronise(p *debugger.Preferences, seed int, verbose bool, notify notifications.Notify,
	restore <-chan notifications.Restore, stop <-chan struct{}) error {

	name := p.Process.String()
	pid, err := debugapi.FindProcess(name)
	if err != nil {
		return err
	}

	proc, first, err := debugapi.Attach(pid)
	if err != nil {
		return err
	}

	s, err := debugger.NewSession(proc, first, p.Address.Get().(uint64))
	if err != nil {
		_ = proc.Detach()
		return err
	}
	s.Verbose.Enabled = verbose

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-stop:
			s.Stop()
		case <-done:
		}
	}()

	defer func() {
		if err := s.Detach(); err != nil {
			logger.Logf(logger.Allow, "pptsync", "%v", err)
		}
	}()

	if seed >= 0 {
		if err := debugger.OverrideSeed(s, p.SeedAddress.Get().(uint64), uint16(seed)); err != nil {
			return err
		}
	}

	sy := debugger.NewSynchroniser(proc, snapshot.NewReader(snapshot.PuyoPuyoTetris), notify, restore)
	sy.Verbose.Enabled = verbose

	return s.Run(sy.Observe)
}

func visualise(tracker *rewind.Tracker, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	tracker.Visualise(f)
	logger.Logf(logger.Allow, "pptsync", "history graph written to %s", filename)

	return nil
}
