package options_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galdiuz/archipeladoku/grid"
	"github.com/galdiuz/archipeladoku/options"
)

func TestDefault_Valid(t *testing.T) {
	opts := options.Default()
	require.NoError(t, opts.Validate())
	assert.Equal(t, 9, opts.BlockSize)
	assert.Equal(t, options.ProgressionShuffled, opts.Progression)
	assert.Equal(t, options.DifficultyEasy, opts.Difficulty)
	assert.Equal(t, options.ScoutingManual, opts.LocationScouting)
}

func TestValidate_Ranges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*options.Options)
		target error
	}{
		{"block size", func(o *options.Options) { o.BlockSize = 10 }, grid.ErrUnsupportedBlockSize},
		{"boards per cluster", func(o *options.Options) { o.BoardsPerCluster = 0 }, options.ErrInvalidOption},
		{"too few boards", func(o *options.Options) { o.NumberOfBoards = 2 }, options.ErrInvalidOption},
		{"board cap for 16", func(o *options.Options) { o.BlockSize = 16; o.NumberOfBoards = 37 }, options.ErrInvalidOption},
		{"ratio", func(o *options.Options) { o.EmojiTrapRatio = 1001 }, options.ErrInvalidOption},
		{"percent", func(o *options.Options) { o.PreFillNothingsPercent = -1 }, options.ErrInvalidOption},
		{"progression", func(o *options.Options) { o.Progression = "random" }, options.ErrUnknownProgression},
		{"difficulty", func(o *options.Options) { o.Difficulty = 0 }, options.ErrUnknownChoice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := options.Default()
			tc.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), tc.target)
		})
	}
}

func TestMaxBoards(t *testing.T) {
	assert.Equal(t, 100, options.MaxBoards(4))
	assert.Equal(t, 100, options.MaxBoards(9))
	assert.Equal(t, 64, options.MaxBoards(12))
	assert.Equal(t, 36, options.MaxBoards(16))
}

func TestLoad_OverDefaults(t *testing.T) {
	src := `
block_size: 4
number_of_boards: 3
boards_per_cluster: 3
progression: Fixed
difficulty: hard
`
	opts, err := options.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 4, opts.BlockSize)
	assert.Equal(t, 3, opts.NumberOfBoards)
	assert.Equal(t, options.ProgressionFixed, opts.Progression)
	assert.Equal(t, options.DifficultyHard, opts.Difficulty)
	assert.Equal(t, 150, opts.SolveRandomCellRatio, "absent keys keep defaults")
}

func TestLoad_Empty(t *testing.T) {
	opts, err := options.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, options.Default(), opts)
}

func TestLoad_Errors(t *testing.T) {
	_, err := options.Load(strings.NewReader("progression: sideways\n"))
	assert.ErrorIs(t, err, options.ErrUnknownProgression)

	_, err = options.Load(strings.NewReader("number_of_boards: 500\n"))
	assert.ErrorIs(t, err, options.ErrInvalidOption)

	_, err = options.Load(strings.NewReader("colour: blue\n"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	d, err := options.ParseDifficulty("3")
	require.NoError(t, err)
	assert.Equal(t, options.DifficultyMedium, d)
	assert.Equal(t, "medium", d.String())

	_, err = options.ParseLocationScouting("sometimes")
	assert.ErrorIs(t, err, options.ErrUnknownChoice)

	p, err := options.ParseProgression(" SHUFFLED ")
	require.NoError(t, err)
	assert.Equal(t, options.ProgressionShuffled, p)
}
