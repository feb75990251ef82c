package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/madrijkaard/rkd-emulator-nes/internal/config"
	"github.com/madrijkaard/rkd-emulator-nes/internal/inesload"
	"github.com/madrijkaard/rkd-emulator-nes/internal/log"
	"github.com/madrijkaard/rkd-emulator-nes/internal/nescore"
)

const version = "0.1.0"

type CLI struct {
	Run     Run     `cmd:"" help:"Run a ROM for a number of frames and print a status summary." default:"true"`
	Version Version `cmd:"" help:"Show nestorcore's version."`

	Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
}

type Run struct {
	RomPath string `arg:"" name:"/path/to/rom" help:"iNES ROM to run." required:"true" type:"existingfile"`
	Frames  int    `name:"frames" help:"Number of frames to run before reporting status." default:"60"`
}

type Version struct{}

var vars = kong.Vars{
	"log_help": "Enable logging for specified modules.",
}

func main() {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("nestorcore"),
		kong.Description("NES emulator core driver."),
		kong.UsageOnError(),
		vars)
	checkf(err, "failed to build command line parser")

	ctx, err := parser.Parse(os.Args[1:])
	checkf(err, "failed to parse command line")

	switch ctx.Command() {
	case "version":
		fmt.Println("nestorcore", version)
	default:
		runROM(cli.Run)
	}
}

func runROM(r Run) {
	cfgDir, err := os.UserConfigDir()
	checkf(err, "failed to resolve config directory")
	cfg := config.LoadOrDefault(cfgDir)
	for _, name := range cfg.Logging.Modules {
		if mod, ok := log.ModuleByName(name); ok {
			log.EnableDebugModules(mod.Mask())
		}
	}

	cart, err := inesload.Load(r.RomPath)
	checkf(err, "failed to load ROM %q", r.RomPath)

	nes, err := nescore.PowerOn(cart)
	checkf(err, "failed to power on machine")

	for i := 0; i < r.Frames; i++ {
		if err := nes.Frame(); err != nil {
			fmt.Fprintf(os.Stderr, "halted after %d frames: %v\n", i, err)
			os.Exit(1)
		}
	}

	cfg.Save.LastCartridgePath = r.RomPath
	if err := config.Save(cfgDir, cfg); err != nil {
		log.ModEmu.Warnf("failed to save config: %v", err)
	}

	fmt.Printf("ran %d frames\n", r.Frames)
	fmt.Printf("PC=$%04X A=$%02X X=$%02X Y=$%02X SP=$%02X P=%s\n",
		nes.CPU.PC, nes.CPU.A, nes.CPU.X, nes.CPU.Y, nes.CPU.SP, nes.CPU.P)
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+": "+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
