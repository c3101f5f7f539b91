package fixwire

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMessage = "8=FIX.4.2|9=40|35=D|49=AFUNDMGR|56=ABROKER|15=USD|59=0|10=091|"

func newTestDecoder(opts ...Option) *Decoder {
	return NewDecoder(append([]Option{WithSeparator('|')}, opts...)...)
}

func TestDecodeEmptyMessage(t *testing.T) {
	_, err := newTestDecoder().Decode(nil)
	assert.ErrorIs(t, err, ErrLength)
}

func TestDecodeShortBuffers(t *testing.T) {
	// Every prefix below the structural minimum fails with ErrLength.
	dec := newTestDecoder()
	for n := 0; n < minMessageLen; n++ {
		_, err := dec.Decode([]byte(sampleMessage)[:n])
		assert.ErrorIs(t, err, ErrLength, "len %d", n)
	}
}

func TestDecodeSampleMessage(t *testing.T) {
	frame, err := newTestDecoder().Decode([]byte(sampleMessage))
	require.NoError(t, err)

	assert.Equal(t, sampleMessage, string(frame.Bytes()))
	assert.Equal(t, "FIX.4.2", string(frame.BeginString()))
	assert.Equal(t, "35=D|49=AFUNDMGR|56=ABROKER|15=USD|59=0|", string(frame.Payload()))
	assert.Equal(t, 40, len(frame.Payload()))
	assert.Equal(t, 15, frame.PayloadOffset())
}

func TestDecodeMinimalMessage(t *testing.T) {
	frame, err := newTestDecoder().Decode([]byte("8=?|9=5|35=?|10=183|"))
	require.NoError(t, err)

	assert.Equal(t, "?", string(frame.BeginString()))
	assert.Equal(t, "35=?|", string(frame.Payload()))
}

func TestDecodeEmptyPayloadGivenDeclaredLength(t *testing.T) {
	_, err := newTestDecoder().Decode([]byte("8=?|9=5|10=082|"))
	assert.ErrorIs(t, err, ErrLength)
}

func TestDecodeBodyLengthDisagreesWithBuffer(t *testing.T) {
	_, err := newTestDecoder().Decode([]byte("8=FIX.4.2|9=39|35=D|49=AFUNDMGR|56=ABROKER|15=USD|59=0|10=091|"))
	assert.ErrorIs(t, err, ErrLength)
}

func TestDecodeBadChecksum(t *testing.T) {
	corrupted := []byte("8=FIX.4.2|9=40|35=D|49=AFUNDMGR|56=ABROKER|15=USD|59=0|10=000|")

	_, err := newTestDecoder().Decode(corrupted)
	assert.ErrorIs(t, err, ErrCheckSum)

	// The same buffer passes once verification is off; the field is still
	// structurally validated.
	frame, err := newTestDecoder(WithChecksumVerification(false)).Decode(corrupted)
	require.NoError(t, err)
	assert.Equal(t, "FIX.4.2", string(frame.BeginString()))
}

func TestDecodeMalformedChecksumField(t *testing.T) {
	dec := newTestDecoder()
	cases := []string{
		"8=FIX.4.2|9=40|35=D|49=AFUNDMGR|56=ABROKER|15=USD|59=0|10=09a|", // non-digit
		"8=FIX.4.2|9=40|35=D|49=AFUNDMGR|56=ABROKER|15=USD|59=0|11=091|", // wrong tag
		"8=FIX.4.2|9=40|35=D|49=AFUNDMGR|56=ABROKER|15=USD|59=0|10w091|", // no equal sign
		"8=FIX.4.2|9=40|35=D|49=AFUNDMGR|56=ABROKER|15=USD|59=0|10=0915", // no trailing separator
	}
	for _, in := range cases {
		_, err := dec.Decode([]byte(in))
		assert.ErrorIs(t, err, ErrInvalid, "input %q", in)
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	dec := newTestDecoder()
	data := []byte(sampleMessage)

	first, err := dec.Decode(data)
	require.NoError(t, err)
	second, err := dec.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecodeEdgeCasesDontPanic(t *testing.T) {
	dec := newTestDecoder()
	cases := []string{
		"8=|9=0|10=225|",
		"8=|9=0|10=|",
		"8====|9=0|10=|",
		"|||9=0|10=|",
		"9999999999999",
		"-9999999999999",
		"==============",
		"9999999999999|",
		"|999999999999=|",
		"|999=999999999999999999|=",
		"8=A|9=999999999999999999999999999999|10=000|",
	}
	for _, in := range cases {
		_, err := dec.Decode([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestDecodeRandomInputTerminates(t *testing.T) {
	// Decoding arbitrary bytes must terminate with either a frame or one
	// of the three defined errors, never a panic.
	dec := newTestDecoder()
	rng := rand.New(rand.NewSource(0x51de))

	alphabets := [][]byte{
		{0x00},
		{'|'},
		{'='},
		{'8', '9', '0', '=', '|'},
		nil, // fully random bytes
	}
	for _, alphabet := range alphabets {
		for trial := 0; trial < 256; trial++ {
			data := make([]byte, rng.Intn(128))
			for i := range data {
				if alphabet == nil {
					data[i] = byte(rng.Intn(256))
				} else {
					data[i] = alphabet[rng.Intn(len(alphabet))]
				}
			}
			_, err := dec.Decode(data)
			if err != nil {
				assert.True(t,
					err == ErrLength || err == ErrInvalid || err == ErrCheckSum,
					"unexpected error %v for %q", err, data)
			}
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte(sampleMessage))
	f.Add([]byte("8=?|9=5|35=?|10=183|"))
	f.Add([]byte("8=?|9=5|10=082|"))
	f.Add([]byte("=============="))
	f.Add([]byte{})

	dec := newTestDecoder()
	f.Fuzz(func(t *testing.T, data []byte) {
		frame, err := dec.Decode(data)
		if err != nil {
			if err != ErrLength && err != ErrInvalid && err != ErrCheckSum {
				t.Fatalf("undefined error %v", err)
			}
			return
		}
		if len(frame.Payload()) > len(data) {
			t.Fatalf("payload larger than input")
		}
	})
}
