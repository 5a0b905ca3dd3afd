// This file is part of Shapemotion.
//
// Shapemotion is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shapemotion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shapemotion.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/shapemotion/environment"
	"github.com/jetsetilly/shapemotion/gui"
	"github.com/jetsetilly/shapemotion/gui/sdlplay"
	"github.com/jetsetilly/shapemotion/gui/termplay"
	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/hardware/preferences"
	"github.com/jetsetilly/shapemotion/logger"
	"github.com/jetsetilly/shapemotion/modalflag"
	"github.com/jetsetilly/shapemotion/performance"
	"github.com/jetsetilly/shapemotion/playmode"
	"github.com/jetsetilly/shapemotion/prefs"
	"github.com/jetsetilly/shapemotion/statsview"
	"github.com/jetsetilly/shapemotion/userinput"
	"github.com/jetsetilly/shapemotion/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. the playmode package provides a handler that allows
	// recordings to be completed.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// the period the main thread sleeps for when there is no GUI to service
const idleSleepPeriod = 10 * time.Millisecond

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
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

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not equal to nil.
				// set to nil explicitly
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				time.Sleep(idleSleepPeriod)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "TERM", "HEADLESS", "PLAYBACK", "PERFORMANCE", "VERSION")

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
	case "PLAY":
		err = play(md, sync)

	case "TERM":
		err = term(md, sync)

	case "HEADLESS":
		err = headless(md, sync)

	case "PLAYBACK":
		err = playback(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to the modes that run the emulation in real time.
type playFlags struct {
	prefs   *string
	record  *bool
	wav     *string
	dump    *string
	log     *bool
	profile *string
	stats   *bool
}

func addPlayFlags(md *modalflag.Modes, withLog bool) playFlags {
	f := playFlags{
		prefs:   md.AddString("prefs", "", "preferences for this session. eg. \"board.wdt.rate::500; board.wdt.divisor::10\""),
		record:  md.AddBool("record", false, "record user input to a file"),
		wav:     md.AddString("wav", "", "record audio to wav file"),
		dump:    md.AddString("dump", "", "write graphviz representation of the game state to file on exit"),
		profile: md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL (comma sep)"),
	}
	if withLog {
		f.log = md.AddBool("log", false, "echo debugging log to stdout")
	}
	if statsview.Available() {
		f.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// newEnvironment creates the main emulation environment. the prefs string is
// pushed onto the command line preferences stack while the preferences are
// loaded.
func newEnvironment(prefsString string) (*environment.Environment, error) {
	if prefsString != "" {
		prefs.PushCommandLineStack(prefsString)
		defer prefs.PopCommandLineStack()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	return environment.NewEnvironment(environment.MainEmulation, p)
}

func newBoard(prefsString string) (*hardware.Board, error) {
	env, err := newEnvironment(prefsString)
	if err != nil {
		return nil, err
	}
	return hardware.NewBoard(env)
}

// runPlay is the last part of the PLAY, TERM and HEADLESS modes.
func runPlay(md *modalflag.Modes, sync *mainSync, brd *hardware.Board, scr gui.GUI, f playFlags, pulse time.Duration, duration time.Duration) error {
	opts := playmode.Options{
		Record:        *f.record,
		Wav:           *f.wav,
		Dump:          *f.dump,
		PulseDuration: pulse,
		Duration:      duration,
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if !opts.Record {
			return fmt.Errorf("transcript can only be specified with -record in %s mode. use PLAYBACK mode for playback", md)
		}
		opts.Transcript = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	profile, err := performance.ParseProfileString(*f.profile)
	if err != nil {
		return err
	}

	if f.stats != nil && *f.stats {
		statsview.Launch(os.Stdout)
	}

	// turn off fallback ctrl-c handling. this so that the playmode can
	// end recordings gracefully
	sync.state <- stateRequest{req: reqNoIntSig}

	var msg string
	err = performance.RunProfiler(profile, "play", func() error {
		var err error
		msg, err = playmode.Play(brd, scr, opts)
		return err
	})
	if err != nil {
		return err
	}

	if msg != "" {
		fmt.Printf("! %s\n", msg)
	}

	return nil
}

// createGUI hands the creator function to the main thread and waits for the
// result.
func createGUI(sync *mainSync, creator func() (GuiCreator, error)) (gui.GUI, error) {
	sync.creator <- creator

	select {
	case g := <-sync.creation:
		return g.(gui.GUI), nil
	case err := <-sync.creationError:
		return nil, err
	}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scaling := md.AddFloat64("scale", sdlplay.DefaultScale, "display scaling")
	f := addPlayFlags(md, true)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *f.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	brd, err := newBoard(*f.prefs)
	if err != nil {
		return err
	}

	scr, err := createGUI(sync, func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(brd, float32(*scaling))
	})
	if err != nil {
		return err
	}

	return runPlay(md, sync, brd, scr, f, 0, 0)
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	audio := md.AddBool("audio", true, "play buzzer through the sound device")
	f := addPlayFlags(md, false)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the log would interfere with the terminal display
	logger.SetEcho(nil, false)

	brd, err := newBoard(*f.prefs)
	if err != nil {
		return err
	}

	scr, err := createGUI(sync, func() (GuiCreator, error) {
		return termplay.NewTermPlay(brd, nil, *audio)
	})
	if err != nil {
		return err
	}

	return runPlay(md, sync, brd, scr, f, userinput.DefaultPulse, 0)
}

func playback(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	display := md.AddBool("display", false, "display LCD in a window")
	scaling := md.AddFloat64("scale", sdlplay.DefaultScale, "display scaling (only valid if -display=true)")
	wav := md.AddString("wav", "", "record audio to wav file")
	dump := md.AddString("dump", "", "write graphviz representation of the game state to file on exit")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	brd, err := newBoard("")
	if err != nil {
		return err
	}

	var scr gui.GUI = gui.Stub{}
	if *display {
		scr, err = createGUI(sync, func() (GuiCreator, error) {
			return sdlplay.NewSdlPlay(brd, float32(*scaling))
		})
		if err != nil {
			return err
		}
	}

	sync.state <- stateRequest{req: reqNoIntSig}

	msg, err := playmode.Play(brd, scr, playmode.Options{
		Transcript: md.GetArg(0),
		Wav:        *wav,
		Dump:       *dump,
		Paced:      *display,
	})
	if err != nil {
		return err
	}

	fmt.Printf("! %s\n", msg)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	prefsString := md.AddString("prefs", "", "preferences for this session")
	uncapped := md.AddBool("uncapped", false, "run emulation as quickly as possible")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL (comma sep)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	env, err := newEnvironment(*prefsString)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prof, env, *uncapped, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.String())
	if *revision {
		_, rev, release := version.Version()
		fmt.Fprintf(md.Output, "revision: %s (release %v)\n", rev, release)
	}

	return nil
}
