// Package cmd implements the command-line interface for cine.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cine-cli/cine/engine"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/library"
	"github.com/cine-cli/cine/playback"
	"github.com/cine-cli/cine/style"
	"github.com/cine-cli/cine/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntP("volume", "V", -1, "Playback volume from 0 to 100")
	playCmd.Flags().BoolP("loop", "l", false, "Restart from the first entry after the last one ends")
	playCmd.Flags().BoolP("shuffle", "S", false, "Shuffle the queue before playing")
}

// playCmd plays media files without the interactive interface.
var playCmd = &cobra.Command{
	Use:   "play [files or directories]",
	Short: "Play media files without the interactive interface",
	Long: "Play media files without the interactive interface.\n" +
		"Entries advance automatically. Closing the player window stops the run.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		files, err := library.Expand(args)
		handleErr(err)
		if len(files) == 0 {
			handleErr(errors.New("no playable files found"))
		}

		if lo.Must(cmd.Flags().GetBool("shuffle")) {
			files = lo.Shuffle(files)
		}

		eng := engine.NewMPV()
		controller := playback.NewController(eng)
		defer util.Ignore(controller.Close)

		added := controller.Add(files...)
		fmt.Printf("%s queued %s\n",
			icon.Get(icon.Play),
			style.Bold(util.Quantify(added, "file", "files")),
		)

		if volume := lo.Must(cmd.Flags().GetInt("volume")); volume >= 0 {
			controller.SetVolume(volume)
		} else {
			controller.SetVolume(viper.GetInt(key.PlayerVolume))
		}

		handleErr(controller.SelectAndPlay(0))

		loop := lo.Must(cmd.Flags().GetBool("loop"))
		runHeadless(controller, eng, loop)
	},
}

// runHeadless drives the poll cadence until the queue finishes, the
// engine goes away, or an interrupt arrives.
func runHeadless(controller *playback.Controller, eng engine.Engine, loop bool) {
	ticker := time.NewTicker(playback.PollInterval * time.Millisecond)
	defer ticker.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	last := controller.Playlist().Current()
	erase := func() {}

	for {
		select {
		case <-interrupt:
			erase()
			controller.Stop()
			return
		case <-eng.Wait():
			erase()
			return
		case <-ticker.C:
			controller.PollTick()

			if !controller.PollArmed() {
				erase()
				return
			}

			// A selection that moved backwards means the queue wrapped past
			// its last entry.
			current := controller.Playlist().Current()
			if current < last && !loop {
				erase()
				controller.Stop()
				return
			}
			if current != last {
				erase()
				entry, _ := controller.Playlist().At(current)
				fmt.Printf("%s %s\n", icon.Get(icon.Next), entry.Title)
			}
			last = current

			erase()
			erase = printTransportLine(controller)
		}
	}
}

// printTransportLine renders a single erasable status line for the
// current entry and returns its eraser.
func printTransportLine(controller *playback.Controller) func() {
	transport := controller.Transport()

	entry, ok := controller.Playlist().At(controller.Playlist().Current())
	if !ok {
		return func() {}
	}

	stateIcon := icon.Get(icon.Pause)
	if transport.IsPlaying {
		stateIcon = icon.Get(icon.Play)
	}

	return util.PrintErasable(fmt.Sprintf(
		"%s %s  %s / %s",
		stateIcon,
		entry.Title,
		util.FormatMs(transport.PositionMs),
		util.FormatMs(transport.LengthMs),
	))
}
