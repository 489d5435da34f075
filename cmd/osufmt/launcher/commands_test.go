package launcher

import (
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-osu-format/format"
	"github.com/rony4d/go-osu-format/layout"
)

// headerHex is mode=1, version=20210520, player="cookiezi".
const headerHex = "0x0158633401" + "0b08636f6f6b69657a69"

const headerLayout = "mode:byte,version:int,player:string"

// run executes the CLI and returns what it printed to the app writer.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prevLog := logOutput
	logOutput = ioutil.Discard
	defer func() { logOutput = prevLog }()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"osufmt"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, data, 0o644))
	return path
}

func TestPresetsCommand(t *testing.T) {
	out, err := run(t, "presets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(layout.PresetNames()))
	require.True(t, strings.HasPrefix(lines[0], "collectiondb\tversion:int,collection_count:int"))
}

func TestEncodeCommand(t *testing.T) {
	t.Run("hex output", func(t *testing.T) {
		out, err := run(t, "encode", "--layout", "byte,int,string", "1", "20210520", "cookiezi")
		require.NoError(t, err)
		require.Equal(t, headerHex+"\n", out)
	})

	t.Run("absent string", func(t *testing.T) {
		out, err := run(t, "encode", "--layout", "string,string", layout.AbsentToken, "")
		require.NoError(t, err)
		require.Equal(t, "0x000b00\n", out)
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "header.bin")
		out, err := run(t, "encode", "--layout", headerLayout, "--out", path, "1", "20210520", "cookiezi")
		require.NoError(t, err)
		require.Empty(t, out)

		raw, err := ioutil.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, headerHex, hexutil.Encode(raw))
	})

	t.Run("errors", func(t *testing.T) {
		_, err := run(t, "encode", "1")
		require.Equal(t, ErrNoLayout, err)

		_, err = run(t, "encode", "--layout", "byte", "1", "2")
		require.True(t, errors.Is(err, layout.ErrValueCount))

		_, err = run(t, "encode", "--layout", "byte", "300")
		require.True(t, errors.Is(err, layout.ErrValueMismatch))
	})
}

func TestDecodeCommand(t *testing.T) {
	hexFile := writeFile(t, "header.hex", []byte(headerHex+"\n"))

	t.Run("text", func(t *testing.T) {
		out, err := run(t, "decode", "--hex", "--layout", headerLayout, hexFile)
		require.NoError(t, err)
		require.Equal(t, "0\tmode\tbyte\t1\n1\tversion\tint\t20210520\n5\tplayer\tstring\t\"cookiezi\"\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "decode", "--hex", "--output", "json", "--layout", "byte,int,string", hexFile)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		require.JSONEq(t, `{"index":0,"kind":"byte","offset":0,"value":1}`, lines[0])
		require.JSONEq(t, `{"index":2,"kind":"string","offset":5,"value":"cookiezi"}`, lines[2])
	})

	t.Run("hex without prefix and with spaces", func(t *testing.T) {
		path := writeFile(t, "spaced.hex", []byte("01 58633401\n0b08 636f6f6b69657a69"))
		out, err := run(t, "decode", "--hex", "--layout", headerLayout, path)
		require.NoError(t, err)
		require.Contains(t, out, "\"cookiezi\"")
	})

	t.Run("raw file with offset", func(t *testing.T) {
		raw, err := format.Marshal(func(w *format.Writer) error {
			w.WriteShort(0xffff) // junk prefix
			w.WriteString(format.Absent)
			w.WriteBoolean(true)
			return nil
		})
		require.NoError(t, err)
		path := writeFile(t, "record.bin", raw)

		out, err := run(t, "decode", "--offset", "2", "--layout", "string,boolean", path)
		require.NoError(t, err)
		require.Equal(t, "2\t#0\tstring\t<absent>\n3\t#1\tboolean\ttrue\n", out)

		_, err = run(t, "decode", "--offset", "9", "--layout", "string", path)
		require.Error(t, err)
	})

	t.Run("stdin", func(t *testing.T) {
		prev := stdin
		stdin = strings.NewReader(headerHex)
		defer func() { stdin = prev }()

		out, err := run(t, "decode", "--hex", "--layout", "byte", "-")
		require.NoError(t, err)
		require.Equal(t, "0\t#0\tbyte\t1\n", out)
	})

	t.Run("strict rejects trailing bytes", func(t *testing.T) {
		out, err := run(t, "decode", "--hex", "--strict", "--layout", "byte,int", hexFile)
		require.Equal(t, format.ErrTrailingData, err)
		require.Contains(t, out, "20210520")

		_, err = run(t, "decode", "--hex", "--strict", "--layout", headerLayout, hexFile)
		require.NoError(t, err)
	})

	t.Run("truncated input", func(t *testing.T) {
		out, err := run(t, "decode", "--hex", "--layout", headerLayout+",score:int", hexFile)
		require.True(t, errors.Is(err, format.ErrEndOfFile))

		var fe *layout.FieldError
		require.True(t, errors.As(err, &fe))
		require.Equal(t, "score", fe.Field.Name)
		// the decoded prefix is still printed
		require.Contains(t, out, "\"cookiezi\"")
	})

	t.Run("bad input", func(t *testing.T) {
		_, err := run(t, "decode", "--hex", "--layout", "byte", writeFile(t, "bad.hex", []byte("0xzz")))
		require.Error(t, err)

		_, err = run(t, "decode", "--layout", "byte", filepath.Join(t.TempDir(), "missing.bin"))
		require.Error(t, err)

		_, err = run(t, "decode", "--layout", "byte")
		require.Error(t, err)
	})
}
