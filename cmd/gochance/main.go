// Demo entry point: builds the primitive distributions plus one composed
// model, samples each from its own universe, and prints empirical summaries.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"gochance/dist"
	"gochance/internal/testkit"
	"gochance/omega"
	"gochance/randvar"
)

type model struct {
	name  string
	lo    float64
	hi    float64
	build func(u *omega.Universe) (randvar.Variable, error)
}

type report struct {
	summary   testkit.Summary
	histogram string
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	seed := envUint("GOCHANCE_SEED", omega.DefaultSeed)
	samples := envInt("GOCHANCE_SAMPLES", 10000)

	models := []model{
		{"Uniform(0, 1)", 0, 1, func(u *omega.Universe) (randvar.Variable, error) {
			return dist.Uniform(u, 0.0, 1.0)
		}},
		{"Bernoulli(0.25)", 0, 1, func(u *omega.Universe) (randvar.Variable, error) {
			return dist.Bernoulli(u, 0.25)
		}},
		{"Normal(0, 1)", -4, 4, func(u *omega.Universe) (randvar.Variable, error) {
			return dist.Normal(u, 0.0, 1.0)
		}},
		{"Exponential(2)", 0, 4, func(u *omega.Universe) (randvar.Variable, error) {
			return dist.Exponential(u, 2.0)
		}},
		{"Cauchy(0, 1)", -8, 8, func(u *omega.Universe) (randvar.Variable, error) {
			return dist.Cauchy(u, 0.0, 1.0)
		}},
		// Randomized parameter: a Normal whose mean is itself uniform.
		{"Normal(Uniform(-1, 1), 0.5)", -3, 3, func(u *omega.Universe) (randvar.Variable, error) {
			mu, err := dist.Uniform(u, -1.0, 1.0)
			if err != nil {
				return nil, err
			}
			return dist.Normal(u, mu, 0.5)
		}},
	}

	// Each model gets its own universe, so the summaries can run in
	// parallel without touching shared generator state.
	reports := make([]report, len(models))
	var g errgroup.Group
	for i, m := range models {
		i, m := i, m
		g.Go(func() error {
			u := omega.NewSeeded(seed)
			v, err := m.build(u)
			if err != nil {
				return fmt.Errorf("building %s: %w", m.name, err)
			}
			data, err := testkit.Draw(u, v, samples)
			if err != nil {
				return fmt.Errorf("sampling %s: %w", m.name, err)
			}
			summary, err := testkit.Summarize(data)
			if err != nil {
				return fmt.Errorf("summarizing %s: %w", m.name, err)
			}
			reports[i] = report{summary: summary, histogram: testkit.Histogram(data, 20, m.lo, m.hi)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}

	log.Printf("Sampling %d draws per model (seed %d)", samples, seed)
	for i, m := range models {
		fmt.Printf("\n%s\n  %s\n%s", m.name, reports[i].summary, reports[i].histogram)
	}
}

func envUint(key string, fallback uint64) uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s=%q: %v", key, raw, err)
	}
	return v
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Fatalf("Invalid %s=%q: must be a positive integer", key, raw)
	}
	return v
}
