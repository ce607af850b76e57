package cem

// LogGeneration is a struct meant for serializing per-generation
// results to a log file, for later analysis of an optimization run.
type LogGeneration struct {
	Generation       int       `json:"generation" yaml:"generation"`
	MeanFitness      float64   `json:"mean_fitness" yaml:"mean_fitness"`
	EliteMeanFitness float64   `json:"elite_mean_fitness" yaml:"elite_mean_fitness"`
	BestFitness      float64   `json:"best_fitness" yaml:"best_fitness"`
	BestWeights      []float64 `json:"best_weights" yaml:"best_weights,flow"`
}
