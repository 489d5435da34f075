package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal(t *testing.T) {
	var buf []byte

	t.Run("Write", func(t *testing.T) {
		var err error
		buf, err = Marshal(func(w *Writer) error {
			w.WriteInt(20210520)
			w.WriteString(Some("player"))
			w.WriteBoolean(true)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("Read", func(t *testing.T) {
		err := Unmarshal(buf, func(r *Reader) error {
			v, err := r.ReadInt()
			if err != nil {
				return err
			}
			require.Equal(t, uint32(20210520), v)

			s, err := r.ReadString()
			if err != nil {
				return err
			}
			require.Equal(t, Some("player"), s)

			ok, err := r.ReadBoolean()
			require.True(t, ok)
			return err
		})
		require.NoError(t, err)
	})

	t.Run("Trailing data", func(t *testing.T) {
		err := Unmarshal(buf, func(r *Reader) error {
			_, err := r.ReadInt()
			return err
		})
		require.Equal(t, ErrTrailingData, err)
		require.True(t, errors.Is(err, ErrInvalidData))
	})

	t.Run("Read error", func(t *testing.T) {
		err := Unmarshal(buf[:2], func(r *Reader) error {
			_, err := r.ReadInt()
			return err
		})
		require.ErrorIs(t, err, ErrEndOfFile)
	})
}

func TestMarshal_Err(t *testing.T) {
	errExp := errors.New("custom")

	buf, err := Marshal(func(w *Writer) error {
		w.WriteBoolean(false)
		return errExp
	})
	require.Equal(t, errExp, err)
	require.Nil(t, buf)

	err = Unmarshal(nil, func(r *Reader) error {
		return errExp
	})
	require.Equal(t, errExp, err)
}

func TestUnmarshal_Empty(t *testing.T) {
	buf, err := Marshal(func(w *Writer) error { return nil })
	require.NoError(t, err)
	require.Empty(t, buf)

	require.NoError(t, Unmarshal(buf, func(r *Reader) error { return nil }))
}
