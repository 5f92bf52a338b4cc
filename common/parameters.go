package common

import (
	"fmt"

	bstoml "github.com/BurntSushi/toml"
	"github.com/pelletier/go-toml"
)

// training defaults
const LEARN_RATE = 0.01
const WEIGHT_DECAY = 0.0
const EPOCHS = 5
const STEPS_PER_EPOCH = 1000
const LOG_EVERY = 100
const SEED = 1

// TrainingParameters groups every knob of the full-batch training loop.
type TrainingParameters struct {
	LayerSizes    []int
	LearnRate     float64
	WeightDecay   float64
	Epochs        int
	StepsPerEpoch int
	LogEvery      int
	Seed          int64

	// SkipOutputUpdate leaves the output transition out of the decay and
	// update step. Off by default: every weight matrix is updated.
	SkipOutputUpdate bool
}

// DefaultParameters returns the default training parameters for the given
// layer sizes.
func DefaultParameters(sizes ...int) TrainingParameters {
	return TrainingParameters{
		LayerSizes:    sizes,
		LearnRate:     LEARN_RATE,
		WeightDecay:   WEIGHT_DECAY,
		Epochs:        EPOCHS,
		StepsPerEpoch: STEPS_PER_EPOCH,
		LogEvery:      LOG_EVERY,
		Seed:          SEED,
	}
}

// Check validates the parameters, failing fast on anything the training loop
// could not run with.
func (p TrainingParameters) Check() error {
	if len(p.LayerSizes) < 2 {
		return fmt.Errorf("common: need at least two layer sizes, got %v", p.LayerSizes)
	}
	if p.LearnRate <= 0 {
		return fmt.Errorf("common: learn rate must be positive, got %v", p.LearnRate)
	}
	if p.WeightDecay < 0 {
		return fmt.Errorf("common: weight decay must not be negative, got %v", p.WeightDecay)
	}
	if p.Epochs <= 0 || p.StepsPerEpoch <= 0 {
		return fmt.Errorf("common: epochs and steps per epoch must be positive, got %d x %d", p.Epochs, p.StepsPerEpoch)
	}
	return nil
}

// LoadParameters reads training parameters from a TOML file, starting from
// the defaults for every key the file does not set.
func LoadParameters(path string) (TrainingParameters, error) {
	p := DefaultParameters()
	if _, err := bstoml.DecodeFile(path, &p); err != nil {
		return p, err
	}
	return p, p.Check()
}

// ParseParameters decodes training parameters from a raw TOML document.
func ParseParameters(config string) (TrainingParameters, error) {
	p := DefaultParameters()
	if err := toml.Unmarshal([]byte(config), &p); err != nil {
		return p, err
	}
	return p, p.Check()
}
