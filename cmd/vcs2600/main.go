// This file is part of vcs2600.
//
// vcs2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcs2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcs2600.  If not, see <https://www.gnu.org/licenses/>.

// Command vcs2600 is the host front end around the emulation core in
// hardware/system: it loads a cartridge, opens an SDL display/audio surface,
// drives the system one frame at a time, and polls the keyboard-bound
// joystick and console switches, per spec.md's external-interfaces section.
// With no ROM argument it falls back to the interactive terminal picker
// over the user's saved ROM list.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/calloway-labs/vcs2600/cmd/vcs2600/picker"
	"github.com/calloway-labs/vcs2600/hardware/controller"
	"github.com/calloway-labs/vcs2600/hardware/memory/cartridge"
	"github.com/calloway-labs/vcs2600/hardware/system"
	"github.com/calloway-labs/vcs2600/paths"
	"github.com/calloway-labs/vcs2600/prefs"

	guisdl "github.com/calloway-labs/vcs2600/gui/sdl"
	"github.com/calloway-labs/vcs2600/gui/sdlaudio"
)

func main() {
	app := &cli.App{
		Name:  "vcs2600",
		Usage: "vcs2600 [rom-path]",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "scale", Value: 3, Usage: "window scale factor"},
			&cli.BoolFlag{Name: "superchip", Usage: "treat the cartridge as carrying SuperChip RAM"},
			&cli.StringFlag{Name: "bank-switching", Usage: "force a bank-switching scheme instead of guessing from size"},
			&cli.StringFlag{Name: "capture-wav", Usage: "record mixed audio output to this .wav path"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "vcs2600:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	configPath, err := paths.ResourcePath("", "settings.json")
	if err != nil {
		return err
	}
	if err := paths.MkdirAll(configPath); err != nil {
		return err
	}
	cfg, err := prefs.LoadConfig(configPath)
	if err != nil {
		return err
	}

	romPath := c.Args().First()
	addedByHand := romPath != ""
	if romPath == "" {
		romPath, err = picker.Choose(cfg)
		if err != nil {
			return err
		}
		if romPath == "" {
			return nil // user quit the picker without choosing
		}
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		return err
	}

	cart, err := cartridge.NewFromBytes(romPath, data, c.String("bank-switching"), c.Bool("superchip"))
	if err != nil {
		return err
	}

	if addedByHand {
		if err := cfg.AddROM(prefs.ROM{Path: romPath, BankSwitching: cart.Scheme(), SuperChipRAM: c.Bool("superchip")}); err != nil {
			return err
		}
	}

	display, err := guisdl.NewGUI(ntscPalette(), float32(c.Float64("scale")))
	if err != nil {
		return err
	}
	defer display.Close()

	audio, err := sdlaudio.NewAudio()
	if err != nil {
		return err
	}
	defer audio.Close()

	if wavPath := c.String("capture-wav"); wavPath != "" {
		if err := audio.EnableCapture(wavPath); err != nil {
			return err
		}
		defer audio.StopCapture()
	}

	vcs := system.New(cart, display, audio)
	if err := vcs.Reset(); err != nil {
		return err
	}

	if os.Getenv("VCS2600_STATS") == "1" {
		startStats()
	}

	for {
		quit, keys := display.PollInput()
		if quit {
			break
		}
		for _, k := range keys {
			bindInput(vcs, cfg.KeyBinds, k.Name, k.Pressed)
		}

		if err := vcs.RunFrame(); err != nil {
			return err
		}
	}

	return nil
}

// bindInput maps one keyboard transition onto either the console switch
// panel or player 0's joystick, according to the configured key-bind table.
// This is the glue between the host display surface's keyboard events and
// the core's controller package, per spec.md's external-interfaces section.
func bindInput(vcs *system.System, binds prefs.KeyBinds, key string, pressed bool) {
	switch key {
	case binds.Reset:
		vcs.Switches.SetGameReset(pressed)
	case binds.Select:
		vcs.Switches.SetGameSelect(pressed)
	case binds.Diff1:
		vcs.Switches.SetDifficulty0(pressed)
	case binds.Diff2:
		vcs.Switches.SetDifficulty1(pressed)
	case binds.Fire:
		vcs.Player0.Fire(pressed)
	case binds.Up:
		vcs.Player0.Digital(controller.Up, pressed)
	case binds.Down:
		vcs.Player0.Digital(controller.Down, pressed)
	case binds.Left:
		vcs.Player0.Digital(controller.Left, pressed)
	case binds.Right:
		vcs.Player0.Digital(controller.Right, pressed)
	}
}
