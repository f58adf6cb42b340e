package sample

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kitchenLine = "0002ppb| Appoquinimink|               Alfred G Waters Middle School|Kitchen Faucet"
	fillerLine  = "0002ppb| Appoquinimink|               Alfred G Waters Middle School|Water Bottle Filler Cafeteria"
	spigotLine  = "0160ppb|Sussex Vo-Tech|                                 Sussex Tech|Water Spigot In the Field"
)

var (
	kitchen = Sample{
		Level:    2,
		District: "Appoquinimink",
		School:   "Alfred G Waters Middle School",
		Location: "Kitchen Faucet",
	}
	filler = Sample{
		Level:    2,
		District: "Appoquinimink",
		School:   "Alfred G Waters Middle School",
		Location: "Water Bottle Filler Cafeteria",
	}
	spigot = Sample{
		Level:    160,
		District: "Sussex Vo-Tech",
		School:   "Sussex Tech",
		Location: "Water Spigot In the Field",
	}
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Sample
	}{
		{name: "kitchen faucet", line: kitchenLine, want: kitchen},
		{name: "bottle filler", line: fillerLine, want: filler},
		{name: "field spigot", line: spigotLine, want: spigot},
		{
			name: "trailing whitespace in location",
			line: spigotLine + "   \t",
			want: spigot,
		},
		{
			name: "level column only",
			line: "0042",
			want: Sample{Level: 42},
		},
		{
			name: "line ends inside district",
			line: "0042ppb|   Capit",
			want: Sample{Level: 42, District: "Capit"},
		},
		{
			name: "line ends before location",
			line: kitchenLine[:67],
			want: Sample{Level: 2, District: "Appoquinimink", School: "Alfred G Waters Middle School"},
		},
		{
			name: "unit suffix is ignored",
			line: "0007xyz" + Format(Sample{Level: 7, District: "Seaford", School: "Seaford HS", Location: "Gym"})[7:],
			want: Sample{Level: 7, District: "Seaford", School: "Seaford HS", Location: "Gym"},
		},
		{
			name: "level padded with spaces",
			line: "  15" + Format(Sample{Level: 15, District: "Seaford", School: "Seaford HS", Location: "Gym"})[4:],
			want: Sample{Level: 15, District: "Seaford", School: "Seaford HS", Location: "Gym"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_CharacterOffsets(t *testing.T) {
	// Non-ASCII characters shift byte offsets but not character offsets.
	s := Sample{Level: 12, District: "Lewes-Böhm", School: "École Élémentaire", Location: "Fontaine"}

	got, err := ParseLine(Format(s))
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestParseLine_InvalidLevel(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		value   string
		wantErr error
	}{
		{name: "empty line", line: "", value: "", wantErr: strconv.ErrSyntax},
		{name: "letters", line: "abcdppb|x", value: "abcd", wantErr: strconv.ErrSyntax},
		{name: "unit inside column", line: "2ppb| Appoquinimink|", value: "2ppb", wantErr: strconv.ErrSyntax},
		{name: "negative", line: "-002ppb| Appoquinimink|", value: "-002", wantErr: ErrNegativeLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "level", perr.Field)
			assert.Equal(t, tt.value, perr.Value)
			assert.Equal(t, 0, perr.Line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseLines(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		got, err := ParseLines([]string{kitchenLine, fillerLine, spigotLine})
		require.NoError(t, err)
		assert.Equal(t, []Sample{kitchen, filler, spigot}, got)
	})

	t.Run("one sample per line", func(t *testing.T) {
		lines := []string{spigotLine, kitchenLine, spigotLine, fillerLine}
		got, err := ParseLines(lines)
		require.NoError(t, err)
		require.Len(t, got, len(lines))
		assert.Equal(t, []Sample{spigot, kitchen, spigot, filler}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := ParseLines(nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("reports failing line number", func(t *testing.T) {
		_, err := ParseLines([]string{kitchenLine, fillerLine, "oops"})
		require.Error(t, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, 3, perr.Line)
		assert.Contains(t, err.Error(), "line 3")
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, kitchenLine, Format(kitchen))
	assert.Equal(t, fillerLine, Format(filler))
	assert.Equal(t, spigotLine, Format(spigot))
}

func TestSampleEquality(t *testing.T) {
	other := kitchen
	assert.True(t, other == kitchen)

	other.Location = "Kitchen Sink"
	assert.False(t, other == kitchen)
}
