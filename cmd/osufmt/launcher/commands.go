package launcher

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-osu-format/flags"
	"github.com/rony4d/go-osu-format/format"
	"github.com/rony4d/go-osu-format/layout"
)

// stdin is read when the input argument is "-".
var stdin io.Reader = os.Stdin

var (
	decodeCommand = cli.Command{
		Name:      "decode",
		Usage:     "Decode a record with a layout and print its fields",
		ArgsUsage: "<file|->",
		Flags:     append(flags.LayoutFlags(), flags.DecodeFlags()...),
		Action:    decodeAction,
	}
	encodeCommand = cli.Command{
		Name:      "encode",
		Usage:     "Encode one value per layout field",
		ArgsUsage: "<value>...",
		Flags:     append(flags.LayoutFlags(), flags.EncodeFlags()...),
		Action:    encodeAction,
	}
	presetsCommand = cli.Command{
		Name:   "presets",
		Usage:  "List the built-in layouts",
		Action: presetsAction,
	}
)

// setup builds the config and logger every command starts from.
func setup(ctx *cli.Context) (Config, *logrus.Logger, error) {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return Config{}, nil, err
	}
	log, err := NewLogger(cfg, logOutput)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, log, nil
}

func decodeAction(ctx *cli.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	l, err := cfg.Codec.ResolveLayout()
	if err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		return fmt.Errorf("decode takes exactly one input, got %d", ctx.NArg())
	}

	data, err := readInput(ctx.Args().First(), cfg.Codec.Hex)
	if err != nil {
		log.WithError(err).Error("Failed to read input")
		return err
	}
	offset := ctx.Int("offset")
	if offset < 0 || offset > len(data) {
		return fmt.Errorf("offset %d outside input of %d bytes", offset, len(data))
	}
	data = data[offset:]

	var (
		vals      []layout.Value
		remaining int
	)
	decode := func(r *format.Reader) error {
		var err error
		vals, err = layout.Decode(r, l)
		remaining = r.Remaining()
		return err
	}
	if cfg.Codec.Strict {
		err = format.Unmarshal(data, decode)
	} else {
		err = decode(format.NewReader(data))
	}

	// print whatever was decoded before reporting a failure
	if perr := printValues(ctx.App.Writer, cfg.Codec.Output, offset, vals); perr != nil {
		return perr
	}
	if err != nil {
		log.WithFields(logrus.Fields{
			"layout":  l.String(),
			"decoded": len(vals),
		}).WithError(err).Error("Decode failed")
		return err
	}
	if remaining > 0 {
		log.WithField("remaining", remaining).Info("Bytes left after the last field")
	}
	log.WithFields(logrus.Fields{"fields": len(vals), "bytes": len(data) - remaining}).Debug("Decoded record")
	return nil
}

func encodeAction(ctx *cli.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	l, err := cfg.Codec.ResolveLayout()
	if err != nil {
		return err
	}
	vals, err := layout.ParseValues(l, ctx.Args())
	if err != nil {
		return err
	}
	raw, err := format.Marshal(func(w *format.Writer) error {
		return layout.Encode(w, l, vals)
	})
	if err != nil {
		return err
	}

	if out := ctx.String("out"); out != "" {
		path := resolvePath(out)
		if err := ioutil.WriteFile(path, raw, 0o644); err != nil {
			log.WithError(err).Error("Failed to write output")
			return err
		}
		log.WithFields(logrus.Fields{"path": path, "bytes": len(raw)}).Info("Wrote record")
		return nil
	}
	_, err = fmt.Fprintln(ctx.App.Writer, hexutil.Encode(raw))
	return err
}

func presetsAction(ctx *cli.Context) error {
	for _, l := range layout.Presets() {
		if _, err := fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", l.Name, l); err != nil {
			return err
		}
	}
	return nil
}

// readInput loads a file (or stdin for "-"), decoding hex text when asked.
func readInput(name string, isHex bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = ioutil.ReadAll(stdin)
	} else {
		data, err = ioutil.ReadFile(resolvePath(name))
	}
	if err != nil {
		return nil, err
	}
	if !isHex {
		return data, nil
	}

	text := strings.Join(strings.Fields(string(data)), "")
	if !strings.HasPrefix(text, "0x") && !strings.HasPrefix(text, "0X") {
		text = "0x" + text
	}
	raw, err := hexutil.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("hex input: %w", err)
	}
	return raw, nil
}

func printValues(w io.Writer, output string, base int, vals []layout.Value) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		for _, v := range vals {
			if err := enc.Encode(jsonRecord{
				Index:  v.Index,
				Name:   v.Field.Name,
				Kind:   v.Field.Kind.String(),
				Offset: base + v.Offset,
				Value:  jsonValue(v.V),
			}); err != nil {
				return err
			}
		}
		return nil
	}
	for _, v := range vals {
		name := v.Field.Name
		if name == "" {
			name = fmt.Sprintf("#%d", v.Index)
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", base+v.Offset, name, v.Field.Kind, layout.FormatValue(v.V)); err != nil {
			return err
		}
	}
	return nil
}

type jsonRecord struct {
	Index  int         `json:"index"`
	Name   string      `json:"name,omitempty"`
	Kind   string      `json:"kind"`
	Offset int         `json:"offset"`
	Value  interface{} `json:"value"`
}

// jsonValue maps decoded values onto JSON: absent strings become null, non-finite floats
// become their text form since JSON has no literal for them.
func jsonValue(v interface{}) interface{} {
	switch v := v.(type) {
	case format.OptString:
		if !v.Valid {
			return nil
		}
		return v.Value
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return layout.FormatValue(v)
		}
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return layout.FormatValue(v)
		}
	}
	return v
}
