package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/galdiuz/archipeladoku/generate"
	"github.com/galdiuz/archipeladoku/options"
	"github.com/galdiuz/archipeladoku/schedule"
)

func loadOptions() (options.Options, error) {
	if optionsFile == "" {
		return options.Default(), nil
	}
	return options.LoadFile(optionsFile)
}

// contexts builds one generation context per player. Player seeds are
// derived from the root seed so that adding players never changes earlier ones.
func contexts() ([]*generate.Context, error) {
	if players < 1 {
		return nil, fmt.Errorf("players=%d: %w", players, options.ErrInvalidOption)
	}
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	entry := logrus.NewEntry(log)
	out := make([]*generate.Context, 0, players)
	for p := 1; p <= players; p++ {
		out = append(out, &generate.Context{
			Player:  p,
			Players: players,
			Seed:    schedule.DeriveSeed(seed, uint64(p)),
			Options: opts,
			Logger:  entry,
			ID:      id,
		})
	}
	return out, nil
}
