package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-i2p/go-base64/lib/base64"
	"github.com/go-i2p/go-base64/lib/config"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var log = logger.GetGoI2PLogger()

var (
	urlSafe     bool
	wrapWidth   int
	pemWrap     bool
	mimeWrap    bool
	stripBreaks bool
	outputPath  string
)

var rootCmd = &cobra.Command{
	Use:   "go-base64",
	Short: "Encode and decode base64 in the standard and URL-safe alphabets",
	Long: `go-base64 converts between raw bytes and base64 text.

Encoding writes the standard alphabet by default and can switch to the
URL-safe alphabet or wrap output at a fixed line width. Decoding accepts
both alphabets at once, including mixed input, and either '=' or '.' as
padding.`,
	SilenceUsage: true,
}

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a file or stdin to base64",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode base64 text from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

func init() {
	cobra.OnInitialize(config.InitConfig)

	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "",
		"config file (default is $HOME/.go-base64/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "",
		"write output to a file instead of stdout")

	encodeCmd.Flags().BoolVarP(&urlSafe, "url-safe", "u", false,
		"use the URL-safe alphabet with '.' padding")
	encodeCmd.Flags().IntVarP(&wrapWidth, "wrap", "w", 0,
		"insert a line break after every N symbols, 0 disables wrapping")
	encodeCmd.Flags().BoolVar(&pemWrap, "pem", false,
		"wrap output at 64 symbols per line")
	encodeCmd.Flags().BoolVar(&mimeWrap, "mime", false,
		"wrap output at 76 symbols per line")

	decodeCmd.Flags().BoolVarP(&stripBreaks, "strip-linebreaks", "s", false,
		"remove line breaks before decoding")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	cfg := config.NewToolConfigFromViper()
	if !cmd.Flags().Changed("url-safe") {
		urlSafe = cfg.URLSafe
	}
	if !cmd.Flags().Changed("wrap") {
		wrapWidth = cfg.Wrap
	}

	width := wrapWidth
	switch {
	case pemWrap:
		width = base64.PEMLineLength
	case mimeWrap:
		width = base64.MIMELineLength
	}

	if urlSafe && width > 0 {
		return oops.Errorf("wrapped output uses the standard alphabet, drop --url-safe or the wrap flag")
	}

	log.WithFields(logger.Fields{
		"at":    "main.runEncode",
		"bytes": len(data),
		"width": width,
	}).Debug("encoding input")

	var encoded string
	if width > 0 {
		encoded = base64.EncodeWrapped(data, width)
	} else {
		encoded = base64.EncodeToString(data, urlSafe)
	}

	return writeOutput([]byte(encoded), true)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("strip-linebreaks") {
		stripBreaks = config.NewToolConfigFromViper().StripLineBreaks
	}

	log.WithFields(logger.Fields{
		"at":    "main.runDecode",
		"bytes": len(data),
		"strip": stripBreaks,
	}).Debug("decoding input")

	// A trailing break belongs to the input medium, not the encoding
	decoded, err := base64.Decode(bytes.TrimRight(data, "\r\n"), stripBreaks)
	if err != nil {
		return err
	}

	return writeOutput(decoded, false)
}

// readInput reads the named file, or stdin when no argument (or "-") is
// given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, oops.Wrapf(err, "failed to read stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, oops.Wrapf(err, "failed to read %s", args[0])
	}
	return data, nil
}

// writeOutput writes to the --output file when set, otherwise to stdout.
// Text output to stdout gains a final line break so the shell prompt does
// not run into it.
func writeOutput(data []byte, text bool) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return oops.Wrapf(err, "failed to write %s", outputPath)
		}
		return nil
	}

	if _, err := os.Stdout.Write(data); err != nil {
		return oops.Wrapf(err, "failed to write stdout")
	}
	if text && len(data) > 0 {
		fmt.Println()
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
