package options

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/galdiuz/archipeladoku/grid"
)

// ErrInvalidOption indicates an option value outside its allowed range.
var ErrInvalidOption = errors.New("options: invalid option value")

// Ranges from the option declarations.
const (
	MinBoardsPerCluster = 1
	MaxBoardsPerCluster = 100
	MinNumberOfBoards   = 3
	MaxNumberOfBoards   = 100
	MaxRatio            = 1000
	MaxPercent          = 100
)

// Options is the validated option bundle of one player.
type Options struct {
	BlockSize                  int              `yaml:"block_size"`
	BoardsPerCluster           int              `yaml:"boards_per_cluster"`
	NumberOfBoards             int              `yaml:"number_of_boards"`
	Difficulty                 Difficulty       `yaml:"difficulty"`
	Progression                Progression      `yaml:"progression"`
	LocationScouting           LocationScouting `yaml:"location_scouting"`
	SolveSelectedCellRatio     int              `yaml:"solve_selected_cell_ratio"`
	SolveRandomCellRatio       int              `yaml:"solve_random_cell_ratio"`
	RemoveRandomCandidateRatio int              `yaml:"remove_random_candidate_ratio"`
	EmojiTrapRatio             int              `yaml:"emoji_trap_ratio"`
	PreFillNothingsPercent     int              `yaml:"pre_fill_nothings_percent"`
}

// Default returns the default option bundle.
func Default() Options {
	return Options{
		BlockSize:                  9,
		BoardsPerCluster:           5,
		NumberOfBoards:             5,
		Difficulty:                 DifficultyEasy,
		Progression:                ProgressionShuffled,
		LocationScouting:           ScoutingManual,
		SolveSelectedCellRatio:     100,
		SolveRandomCellRatio:       150,
		RemoveRandomCandidateRatio: 300,
		EmojiTrapRatio:             0,
		PreFillNothingsPercent:     50,
	}
}

// MaxBoards returns the largest board count supported for blockSize.
func MaxBoards(blockSize int) int {
	switch {
	case blockSize >= 16:
		return 36
	case blockSize >= 12:
		return 64
	default:
		return MaxNumberOfBoards
	}
}

// Validate checks every field. The first violation is returned.
func (o Options) Validate() error {
	if _, _, err := grid.Dimensions(o.BlockSize); err != nil {
		return fmt.Errorf("block_size: %w", err)
	}
	if err := inRange("boards_per_cluster", o.BoardsPerCluster, MinBoardsPerCluster, MaxBoardsPerCluster); err != nil {
		return err
	}
	if err := inRange("number_of_boards", o.NumberOfBoards, MinNumberOfBoards, MaxBoards(o.BlockSize)); err != nil {
		return err
	}
	if _, err := ParseProgression(string(o.Progression)); err != nil {
		return fmt.Errorf("progression: %w", err)
	}
	if _, err := ParseDifficulty(fmt.Sprint(int(o.Difficulty))); err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	if _, err := ParseLocationScouting(string(o.LocationScouting)); err != nil {
		return fmt.Errorf("location_scouting: %w", err)
	}
	ratios := []struct {
		name  string
		value int
	}{
		{"solve_selected_cell_ratio", o.SolveSelectedCellRatio},
		{"solve_random_cell_ratio", o.SolveRandomCellRatio},
		{"remove_random_candidate_ratio", o.RemoveRandomCandidateRatio},
		{"emoji_trap_ratio", o.EmojiTrapRatio},
	}
	for _, r := range ratios {
		if err := inRange(r.name, r.value, 0, MaxRatio); err != nil {
			return err
		}
	}
	return inRange("pre_fill_nothings_percent", o.PreFillNothingsPercent, 0, MaxPercent)
}

func inRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s=%d not in [%d,%d]: %w", name, v, lo, hi, ErrInvalidOption)
	}
	return nil
}

// Load reads YAML over the defaults and validates the result. Absent keys
// keep their default; unknown keys are rejected.
func Load(r io.Reader) (Options, error) {
	opts := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("options: decode: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("options: %w", err)
	}
	defer f.Close()

	return Load(f)
}
