// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Example is one few-shot input/output pair shown to the generation
// service to steer output formatting.
type Example struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// DefaultExamples returns the built-in few-shot pairs used when no
// examples file is configured.
func DefaultExamples() []Example {
	return []Example{
		{
			Input: "This paper investigates the properties of dark matter halos using high-resolution " +
				"N-body simulations. We find a strong correlation between halo concentration and formation time.",
			Output: `**Title:** Dark Matter Halo Concentration and Formation Time
**Authors:** J. Doe, E. Black, et al.
**ArXiv Link:** http://arxiv.org/abs/2401.12345v1

### Data Used
This study primarily utilized data generated from high-resolution N-body cosmological simulations, specifically dark matter-only runs, which tracked the evolution of structure formation in a Lambda-CDM universe.

### Methodology
The methodology involved identifying dark matter halos at various cosmic epochs within the simulations and calculating their concentration parameters. Halo formation times were determined based on the accretion history of half their final mass. Correlation analysis was then performed between these two properties.

### Key Findings
The major finding is a strong, inverse correlation between a dark matter halo's final concentration and its formation time. Halos that formed earlier were found to be significantly more concentrated, suggesting that early assembly leads to denser inner structures.`,
		},
		{
			Input: "We present observations of a new exoplanet candidate using the Kepler space telescope. " +
				"Photometric analysis indicates a planet with a radius of 2.5 Earth radii and an orbital period of 15 days.",
			Output: `**Title:** Discovery and Characterization of Kepler-1234b
**Authors:** A. Smith, B. Jones, et al.
**ArXiv Link:** http://arxiv.org/abs/2402.67890v1

### Data Used
The research relied on photometric time-series data acquired by the Kepler space telescope, focusing on brightness measurements of the host star to detect periodic dimmings indicative of planetary transits.

### Methodology
The methodology involved analyzing the high-precision light curves to identify potential transit events. Follow-up photometric modeling was conducted to derive the planet's radius, orbital period, and other physical characteristics from the observed transit depths and durations.

### Key Findings
The key finding is the discovery of Kepler-1234b, a new exoplanet candidate. Preliminary characterization suggests it has a radius of approximately 2.5 Earth radii and an orbital period of 15 days, placing it in the 'super-Earth' or 'mini-Neptune' category. This discovery contributes to understanding exoplanet demographics.`,
		},
	}
}

// LoadExamples reads few-shot pairs from a YAML file: a list of
// {input, output} entries.
func LoadExamples(path string) ([]Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading examples file: %w", err)
	}
	var examples []Example
	if err := yaml.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("parsing examples file %s: %w", path, err)
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("examples file %s contains no entries", path)
	}
	return examples, nil
}
