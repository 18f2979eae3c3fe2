package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fx/dsp/spectrum"
	"github.com/cwbudde/algo-fx/internal/wavio"
	"github.com/cwbudde/algo-fx/stats/level"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info file.{wav,mp3}",
		Short: "Print WAV or MP3 file properties and per-channel levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0])
		},
	}
}

func runInfo(cmd *cobra.Command, path string) error {
	info, err := wavio.Stat(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "File:        %s\n", path)
	fmt.Fprintf(w, "Duration:    %s\n", info.Duration)
	fmt.Fprintf(w, "Channels:    %d\n", info.Channels)
	fmt.Fprintf(w, "Bit depth:   %d\n", info.BitDepth)
	fmt.Fprintf(w, "Sample rate: %d Hz\n", info.SampleRate)
	fmt.Fprintf(w, "Frames:      %d\n", info.Frames)

	// Level statistics need decodable 16-bit data.
	if info.BitDepth != 16 || info.Frames == 0 {
		return nil
	}

	sig, err := wavio.ReadFile(path)
	if err != nil {
		return err
	}

	tr, err := spectrum.NewTransform(sig.Frames())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nChannel\tPeak [dB]\tRMS [dB]\tCrest [dB]\tDC\tClipped\tPeak [Hz]\tBass %%\tMid %%\tTreble %%\n")
	fmt.Fprintf(tw, "-------\t---------\t--------\t----------\t--\t-------\t---------\t------\t-----\t--------\n")

	for ch, st := range level.ForSignal(sig) {
		bins, err := tr.Forward(sig.Channel(ch))
		if err != nil {
			return err
		}

		sr := float64(sig.SampleRate)
		share := bandShare(spectrum.BandEnergy(bins, sr))

		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.5f\t%d\t%.1f\t%.1f\t%.1f\t%.1f\n",
			ch, st.PeakDB, st.RMSDB, st.CrestFactorDB, st.DC, st.Clipped, spectrum.PeakFrequency(bins, sr),
			share[spectrum.BandBass], share[spectrum.BandMid], share[spectrum.BandTreble])
	}

	return tw.Flush()
}

// bandShare converts band energies to percentages of the total.
func bandShare(energy [3]float64) [3]float64 {
	var total float64
	for _, e := range energy {
		total += e
	}

	var share [3]float64
	if total == 0 {
		return share
	}

	for i, e := range energy {
		share[i] = 100 * e / total
	}

	return share
}
