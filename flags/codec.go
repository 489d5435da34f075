package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// LayoutFlags select the field layout a command works on.

func LayoutFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "layout",
			Usage: "Comma-separated field list, e.g. \"mode:byte,version:int,player:string\" (overrides --preset)",
		},
		cli.StringFlag{
			Name:  "preset",
			Usage: "Named layout (replay|osudb|scoresdb|collectiondb)",
		},
	}
}

// DecodeFlags tune how input is read and how decoded values are printed.
func DecodeFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "hex",
			Usage: "Input is hex text (0x prefix optional, whitespace ignored) instead of raw bytes",
		},
		cli.BoolFlag{
			Name:  "strict",
			Usage: "Fail if bytes remain after the last field",
		},
		cli.IntFlag{
			Name:  "offset",
			Usage: "Skip this many bytes before decoding",
		},
		cli.StringFlag{
			Name:  "output",
			Usage: "Output format (text|json)",
			Value: "text",
		},
	}
}

// EncodeFlags control where encoded bytes go.
func EncodeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "out",
			Usage: "Write raw bytes to this file instead of printing hex",
		},
	}
}
